package detection

import (
	"errors"
	"image"
)

var (
	// ErrNoAlphaChannel is returned when the source image carries no alpha
	// channel. A missing channel is never treated as fully opaque.
	ErrNoAlphaChannel = errors.New("image has no alpha channel")

	// ErrEmptyImage is returned for images with zero width or height.
	ErrEmptyImage = errors.New("image is empty")
)

// AlphaPlane holds the raw 8-bit alpha values of a source image.
//
// Rect is the bounds of the source image, so (x, y) coordinates used with
// At are the same coordinates used with the source. Pix is row-major with
// Rect.Dx() bytes per row.
type AlphaPlane struct {
	Rect image.Rectangle
	Pix  []uint8
}

// At returns the alpha value at (x, y), or 0 outside the plane.
func (p *AlphaPlane) At(x, y int) uint8 {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return 0
	}
	return p.Pix[(y-p.Rect.Min.Y)*p.Rect.Dx()+(x-p.Rect.Min.X)]
}

// HasAlpha reports whether img carries a usable alpha channel.
//
// The decision follows the concrete type produced by the Go image decoders:
//   - *image.NRGBA, *image.NRGBA64 and *image.NYCbCrA declare straight alpha
//     (PNG RGBA and gray+alpha, WebP with alpha).
//   - *image.RGBA, *image.RGBA64 and *image.Paletted count only when at least
//     one pixel is not fully opaque. The PNG decoder returns *image.RGBA for
//     truecolor files without an alpha channel, so a fully opaque RGBA image
//     is classified as having no alpha even though it stores a fourth channel.
//   - Gray, YCbCr and CMYK images never have alpha.
func HasAlpha(img image.Image) bool {
	switch m := img.(type) {
	case *image.NRGBA, *image.NRGBA64, *image.NYCbCrA:
		return true
	case *image.RGBA:
		return !m.Opaque()
	case *image.RGBA64:
		return !m.Opaque()
	case *image.Paletted:
		return !m.Opaque()
	case *image.Gray, *image.Gray16, *image.YCbCr, *image.CMYK:
		return false
	}
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return !o.Opaque()
	}
	return false
}

// ExtractAlpha copies the alpha channel of img into a new AlphaPlane.
//
// 16-bit sources are reduced to their high byte.
func ExtractAlpha(img image.Image) (*AlphaPlane, error) {
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, ErrEmptyImage
	}
	if !HasAlpha(img) {
		return nil, ErrNoAlphaChannel
	}

	width := bounds.Dx()
	height := bounds.Dy()
	plane := &AlphaPlane{
		Rect: bounds,
		Pix:  make([]uint8, width*height),
	}

	switch m := img.(type) {
	case *image.NRGBA:
		for y := 0; y < height; y++ {
			row := m.Pix[y*m.Stride : y*m.Stride+width*4]
			for x := 0; x < width; x++ {
				plane.Pix[y*width+x] = row[x*4+3]
			}
		}
	case *image.RGBA:
		// Premultiplication leaves the alpha byte untouched.
		for y := 0; y < height; y++ {
			row := m.Pix[y*m.Stride : y*m.Stride+width*4]
			for x := 0; x < width; x++ {
				plane.Pix[y*width+x] = row[x*4+3]
			}
		}
	default:
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				_, _, _, a := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
				plane.Pix[y*width+x] = uint8(a >> 8)
			}
		}
	}

	return plane, nil
}
