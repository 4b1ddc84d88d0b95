package extract

import (
	"fmt"
	"image"

	"github.com/ironsheep/object-extract-mcp/internal/detection"
	"github.com/ironsheep/object-extract-mcp/internal/imaging"
)

// ExtractObjects crops every ordered region that is at least minDimension
// pixels wide and high.
//
// Colour channels come from img and alpha from the unbinarized plane, so
// the objects keep their original edge softness. Survivors keep the order
// of ordered and are numbered from 1. The second return value counts the
// regions dropped by the size filter.
func ExtractObjects(img image.Image, alpha *detection.AlphaPlane, ordered []detection.Region, minDimension int) ([]*imaging.Object, int, error) {
	objects := make([]*imaging.Object, 0, len(ordered))
	discarded := 0

	for _, r := range ordered {
		if r.Width() < minDimension || r.Height() < minDimension {
			discarded++
			continue
		}

		obj, err := imaging.CropObject(img, alpha, r.Bounds, len(objects)+1)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to crop region %v: %w", r.Bounds, err)
		}
		objects = append(objects, obj)
	}

	return objects, discarded, nil
}
