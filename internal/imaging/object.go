package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/object-extract-mcp/internal/detection"
)

// Object is one extracted foreground object.
//
// Image is a newly allocated straight-alpha raster whose origin is (0, 0).
// It shares no memory with the source image.
type Object struct {
	// Index is the 1-based position of the object in its extraction result.
	Index int

	// Bounds is the crop rectangle in source image coordinates.
	Bounds image.Rectangle

	// Image holds the cropped colour channels and the original alpha values.
	Image *image.NRGBA
}

// Width returns the object width in pixels.
func (o *Object) Width() int { return o.Bounds.Dx() }

// Height returns the object height in pixels.
func (o *Object) Height() int { return o.Bounds.Dy() }

// CropObject cuts the rectangle r out of img and composes a new RGBA image.
//
// Colour channels come from the source crop. The alpha channel is copied
// from alpha, the unbinarized alpha plane of the same source, so soft edges
// keep their original opacity.
//
// Returns an error if r is empty or not fully inside the source bounds.
func CropObject(img image.Image, alpha *detection.AlphaPlane, r image.Rectangle, index int) (*Object, error) {
	bounds := img.Bounds()
	if r.Empty() {
		return nil, fmt.Errorf("invalid crop region %v: empty", r)
	}
	if !r.In(bounds) {
		return nil, fmt.Errorf("crop region %v outside image bounds %v", r, bounds)
	}
	if !alpha.Rect.Eq(bounds) {
		return nil, fmt.Errorf("alpha plane bounds %v do not match image bounds %v", alpha.Rect, bounds)
	}

	cropped := imaging.Crop(img, r)

	w := r.Dx()
	for y := 0; y < r.Dy(); y++ {
		row := cropped.Pix[y*cropped.Stride : y*cropped.Stride+w*4]
		for x := 0; x < w; x++ {
			row[x*4+3] = alpha.At(r.Min.X+x, r.Min.Y+y)
		}
	}

	return &Object{
		Index:  index,
		Bounds: r,
		Image:  cropped,
	}, nil
}

// EncodedImage contains a PNG-encoded image as base64.
type EncodedImage struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// EncodePNG encodes img as a base64 PNG.
func EncodePNG(img image.Image) (*EncodedImage, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &EncodedImage{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
