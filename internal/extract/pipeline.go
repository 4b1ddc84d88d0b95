package extract

import (
	"errors"
	"fmt"
	"image"

	"github.com/ironsheep/object-extract-mcp/internal/detection"
	"github.com/ironsheep/object-extract-mcp/internal/imaging"
)

// Run extracts the objects of img.
//
// # Errors
//
//   - ErrInvalidParams if p fails validation
//   - ErrUnreadableImage if img is nil or has no pixels
//   - ErrNoAlphaChannel if img carries no alpha channel
//
// Finding no objects is not an error; the returned Result is then empty.
func Run(img image.Image, p Params) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if img == nil {
		return nil, fmt.Errorf("%w: no image", ErrUnreadableImage)
	}

	mask, alpha, err := detection.BuildMask(img, p.Threshold)
	if err != nil {
		if errors.Is(err, detection.ErrEmptyImage) {
			return nil, fmt.Errorf("%w: %v", ErrUnreadableImage, err)
		}
		return nil, err
	}

	regions := detection.DetectRegions(mask)
	ordered := detection.OrderRegions(regions)

	objects, discarded, err := ExtractObjects(img, alpha, ordered, p.MinDimension)
	if err != nil {
		return nil, err
	}

	return &Result{
		Objects:   objects,
		Detected:  len(regions),
		Discarded: discarded,
		Params:    p,
	}, nil
}

// Open loads path through cache, classifying read and decode failures as
// ErrUnreadableImage.
func Open(cache *imaging.SourceCache, path string) (*imaging.Source, error) {
	src, err := cache.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableImage, err)
	}
	if src.Image.Bounds().Empty() {
		return nil, fmt.Errorf("%w: %s has no pixels", ErrUnreadableImage, path)
	}
	return src, nil
}
