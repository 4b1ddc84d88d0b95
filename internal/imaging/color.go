package imaging

import (
	"image"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorSummary describes the visible colour of an extracted object.
//
// The colour is the alpha-weighted mean of the object's pixels, so fully
// transparent padding inside the bounding box does not pull it towards black.
type ColorSummary struct {
	Hex string   `json:"hex"` // Hex format "#rrggbb"
	RGB RGBColor `json:"rgb"` // RGB components
	HSL HSLColor `json:"hsl"` // HSL representation

	// Coverage is the percentage (0-100) of the bounding box covered by
	// non-transparent pixels.
	Coverage float64 `json:"coverage"`

	// MeanAlpha is the average alpha (0-255) over the non-transparent pixels.
	MeanAlpha float64 `json:"mean_alpha"`
}

// ObjectColor computes the colour summary of a straight-alpha image.
//
// An image with no visible pixels yields a black summary with zero coverage.
func ObjectColor(img *image.NRGBA) ColorSummary {
	bounds := img.Bounds()
	total := bounds.Dx() * bounds.Dy()

	var sumR, sumG, sumB, sumA float64
	visible := 0

	for y := 0; y < bounds.Dy(); y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+bounds.Dx()*4]
		for x := 0; x < bounds.Dx(); x++ {
			px := row[x*4 : x*4+4]
			if px[3] == 0 {
				continue
			}
			a := float64(px[3])
			sumR += float64(px[0]) * a
			sumG += float64(px[1]) * a
			sumB += float64(px[2]) * a
			sumA += a
			visible++
		}
	}

	if visible == 0 || total == 0 {
		return summarize(colorful.Color{}, 0, 0)
	}

	c := colorful.Color{
		R: sumR / sumA / 255.0,
		G: sumG / sumA / 255.0,
		B: sumB / sumA / 255.0,
	}
	coverage := float64(visible) / float64(total) * 100
	return summarize(c.Clamped(), coverage, sumA/float64(visible))
}

func summarize(c colorful.Color, coverage, meanAlpha float64) ColorSummary {
	r, g, b := c.RGB255()
	h, s, l := c.Hsl()

	return ColorSummary{
		Hex: c.Hex(),
		RGB: RGBColor{R: r, G: g, B: b},
		HSL: HSLColor{
			H: int(math.Round(h)) % 360,
			S: int(math.Round(s * 100)),
			L: int(math.Round(l * 100)),
		},
		Coverage:  math.Round(coverage*10) / 10,
		MeanAlpha: math.Round(meanAlpha*10) / 10,
	}
}
