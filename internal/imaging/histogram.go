package imaging

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/histogram"
)

// AlphaHistogramResult summarizes the alpha channel of an image.
//
// It helps choosing an extraction threshold: pixels whose alpha is at or
// below the threshold are treated as background.
type AlphaHistogramResult struct {
	// Bins holds the pixel count for every alpha value 0-255.
	Bins []int `json:"bins"`

	// TotalPixels is the number of pixels in the image.
	TotalPixels int `json:"total_pixels"`

	// TransparentPercent is the share (0-100) of pixels with alpha == 0.
	TransparentPercent float64 `json:"transparent_percent"`

	// OpaquePercent is the share (0-100) of pixels with alpha == 255.
	OpaquePercent float64 `json:"opaque_percent"`

	// PartialPercent is the share (0-100) of pixels with 0 < alpha < 255.
	PartialPercent float64 `json:"partial_percent"`
}

// AlphaHistogram counts alpha values over the whole image.
func AlphaHistogram(img image.Image) *AlphaHistogramResult {
	h := histogram.NewRGBAHistogram(img)

	bins := make([]int, 256)
	total := 0
	for i, n := range h.A.Bins {
		bins[i] = n
		total += n
	}

	result := &AlphaHistogramResult{
		Bins:        bins,
		TotalPixels: total,
	}
	if total == 0 {
		return result
	}

	partial := total - bins[0] - bins[255]
	result.TransparentPercent = percent(bins[0], total)
	result.OpaquePercent = percent(bins[255], total)
	result.PartialPercent = percent(partial, total)
	return result
}

// AbovePercent returns the share (0-100) of pixels whose alpha is strictly
// greater than threshold, before any blurring.
func (r *AlphaHistogramResult) AbovePercent(threshold int) float64 {
	if r.TotalPixels == 0 || threshold >= 255 {
		return 0
	}
	if threshold < 0 {
		threshold = -1
	}
	n := 0
	for v := threshold + 1; v < len(r.Bins); v++ {
		n += r.Bins[v]
	}
	return percent(n, r.TotalPixels)
}

func percent(n, total int) float64 {
	return math.Round(float64(n)/float64(total)*1000) / 10
}
