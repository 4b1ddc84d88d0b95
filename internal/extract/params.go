package extract

import "fmt"

const (
	// DefaultThreshold is the alpha value a blurred pixel must exceed to
	// count as foreground.
	DefaultThreshold = 100

	// MinThreshold and MaxThreshold bound the accepted threshold.
	MinThreshold = 10
	MaxThreshold = 255

	// DefaultMinDimension is the smallest width and height an object must
	// have to be kept.
	DefaultMinDimension = 10
)

// Params controls one extraction run.
type Params struct {
	// Threshold is compared against the blurred alpha: pixels strictly
	// above it are foreground.
	Threshold int `json:"threshold"`

	// MinDimension drops regions narrower or shorter than this many pixels.
	MinDimension int `json:"min_dimension"`
}

// DefaultParams returns the parameters used when the caller sets none.
func DefaultParams() Params {
	return Params{
		Threshold:    DefaultThreshold,
		MinDimension: DefaultMinDimension,
	}
}

// Validate checks that p can be used for a run.
func (p Params) Validate() error {
	if p.Threshold < MinThreshold || p.Threshold > MaxThreshold {
		return fmt.Errorf("%w: threshold %d outside %d-%d", ErrInvalidParams, p.Threshold, MinThreshold, MaxThreshold)
	}
	if p.MinDimension < 0 {
		return fmt.Errorf("%w: min dimension %d is negative", ErrInvalidParams, p.MinDimension)
	}
	return nil
}
