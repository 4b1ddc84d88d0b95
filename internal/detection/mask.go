package detection

import (
	"fmt"
	"image"
)

// Mask values.
const (
	Transparent uint8 = 0
	Opaque      uint8 = 255
)

// Mask is a binary opacity grid with the same bounds as its source image.
//
// Every entry of Pix is either Opaque or Transparent.
type Mask struct {
	Rect image.Rectangle
	Pix  []uint8
}

// NewMask allocates an all-transparent mask covering r.
func NewMask(r image.Rectangle) *Mask {
	return &Mask{
		Rect: r,
		Pix:  make([]uint8, r.Dx()*r.Dy()),
	}
}

// IsOpaque reports whether (x, y) is opaque. Points outside the mask are
// transparent.
func (m *Mask) IsOpaque(x, y int) bool {
	if !(image.Point{X: x, Y: y}).In(m.Rect) {
		return false
	}
	return m.Pix[(y-m.Rect.Min.Y)*m.Rect.Dx()+(x-m.Rect.Min.X)] == Opaque
}

// Set marks (x, y) opaque or transparent. Points outside the mask are ignored.
func (m *Mask) Set(x, y int, opaque bool) {
	if !(image.Point{X: x, Y: y}).In(m.Rect) {
		return
	}
	v := Transparent
	if opaque {
		v = Opaque
	}
	m.Pix[(y-m.Rect.Min.Y)*m.Rect.Dx()+(x-m.Rect.Min.X)] = v
}

// Count returns the number of opaque cells.
func (m *Mask) Count() int {
	n := 0
	for _, v := range m.Pix {
		if v == Opaque {
			n++
		}
	}
	return n
}

// BuildMask derives the binary detection mask of img.
//
// Parameters:
//   - img: Source image. Must carry an alpha channel (see HasAlpha).
//   - threshold: Alpha cutoff (0-255). A pixel is opaque when its blurred
//     alpha is strictly greater than threshold.
//
// Returns the mask together with the unblurred alpha plane, which the
// extractor uses to copy original alpha values into the cropped objects.
//
// # Errors
//
//   - ErrEmptyImage if img has zero width or height
//   - ErrNoAlphaChannel if img has no alpha channel
func BuildMask(img image.Image, threshold int) (*Mask, *AlphaPlane, error) {
	if threshold < 0 || threshold > 255 {
		return nil, nil, fmt.Errorf("threshold %d outside 0-255", threshold)
	}

	alpha, err := ExtractAlpha(img)
	if err != nil {
		return nil, nil, err
	}

	blurred := Blur3x3(alpha)
	return Binarize(blurred, uint8(threshold)), alpha, nil
}

// Blur3x3 applies a 3x3 Gaussian blur to an alpha plane.
//
// Uses the separable kernel 1-2-1 in both directions:
//
//	1 2 1
//	2 4 2
//	1 2 1
//
// Total kernel sum = 16; results are rounded to the nearest integer.
// Border pixels mirror the plane without repeating the edge, so x=-1 reads
// x=1 (reflect-101).
func Blur3x3(src *AlphaPlane) *AlphaPlane {
	width := src.Rect.Dx()
	height := src.Rect.Dy()
	kernel := [3]int{1, 2, 1}

	dst := &AlphaPlane{
		Rect: src.Rect,
		Pix:  make([]uint8, len(src.Pix)),
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			sum := 0
			for ky := -1; ky <= 1; ky++ {
				py := reflect101(y+ky, height)
				for kx := -1; kx <= 1; kx++ {
					px := reflect101(x+kx, width)
					sum += int(src.Pix[py*width+px]) * kernel[ky+1] * kernel[kx+1]
				}
			}
			dst.Pix[y*width+x] = uint8((sum + 8) / 16)
		}
	}
	return dst
}

// Binarize turns an alpha plane into a mask: values strictly greater than
// threshold become Opaque, everything else Transparent.
func Binarize(src *AlphaPlane, threshold uint8) *Mask {
	m := NewMask(src.Rect)
	for i, v := range src.Pix {
		if v > threshold {
			m.Pix[i] = Opaque
		}
	}
	return m
}

// reflect101 maps i into [0, n) by mirroring around the first and last
// index.
func reflect101(i, n int) int {
	if n == 1 {
		return 0
	}
	if i < 0 {
		return -i
	}
	if i >= n {
		return 2*n - 2 - i
	}
	return i
}
