package imaging

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"golang.org/x/image/draw"
)

// DefaultBoxColor is the outline colour used by Annotate when none is given:
// opaque cyan.
const DefaultBoxColor = "#00BCD4FF"

// Annotate returns a copy of img with every box outlined and labelled with
// its 1-based index.
//
// Parameters:
//   - img: Source image; it is not modified.
//   - boxes: Rectangles in source coordinates, in the order they should be
//     numbered.
//   - boxColorHex: Outline colour as "#RRGGBB" or "#RRGGBBAA". Invalid or
//     empty values fall back to DefaultBoxColor.
//
// Labels are drawn inside the top-left corner of each box with a tiny 3x5
// digit font on a dark background.
func Annotate(img image.Image, boxes []image.Rectangle, boxColorHex string) *image.NRGBA {
	bounds := img.Bounds()
	boxColor, err := ParseHexColor(boxColorHex)
	if err != nil {
		boxColor, _ = ParseHexColor(DefaultBoxColor)
	}

	result := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(result, result.Bounds(), img, bounds.Min, draw.Src)

	labelColor := color.NRGBA{255, 255, 255, 255}
	bgColor := color.NRGBA{0, 0, 0, 180}

	for i, box := range boxes {
		r := box.Sub(bounds.Min).Intersect(result.Bounds())
		if r.Empty() {
			continue
		}
		drawOutline(result, r, boxColor)
		drawLabel(result, r.Min.X+2, r.Min.Y+2, strconv.Itoa(i+1), labelColor, bgColor)
	}

	return result
}

// drawOutline draws a one-pixel rectangle along the inside edge of r.
func drawOutline(img *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	for x := r.Min.X; x < r.Max.X; x++ {
		img.SetNRGBA(x, r.Min.Y, c)
		img.SetNRGBA(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.SetNRGBA(r.Min.X, y, c)
		img.SetNRGBA(r.Max.X-1, y, c)
	}
}

// ParseHexColor parses a hex color string like "#FF0000" or "#FF000080"
func ParseHexColor(hex string) (color.NRGBA, error) {
	if len(hex) == 0 {
		return color.NRGBA{}, fmt.Errorf("empty color string")
	}
	if hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint8 = 0, 0, 0, 255

	switch len(hex) {
	case 6:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.NRGBA{}, err
		}
		r = uint8(val >> 16)
		g = uint8(val >> 8)
		b = uint8(val)
	case 8:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.NRGBA{}, err
		}
		r = uint8(val >> 24)
		g = uint8(val >> 16)
		b = uint8(val >> 8)
		a = uint8(val)
	default:
		return color.NRGBA{}, fmt.Errorf("invalid hex color length")
	}

	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}

// digitGlyphs is a 3x5 pixel font for index labels.
var digitGlyphs = map[rune][]string{
	'0': {"111", "101", "101", "101", "111"},
	'1': {"010", "110", "010", "010", "111"},
	'2': {"111", "001", "111", "100", "111"},
	'3': {"111", "001", "111", "001", "111"},
	'4': {"101", "101", "111", "001", "001"},
	'5': {"111", "100", "111", "001", "111"},
	'6': {"111", "100", "111", "101", "111"},
	'7': {"111", "001", "001", "001", "001"},
	'8': {"111", "101", "111", "101", "111"},
	'9': {"111", "101", "111", "001", "111"},
}

// drawLabel draws a digit label with a background box at the given position.
// Characters without a glyph leave a gap.
func drawLabel(img *image.NRGBA, x, y int, text string, fg, bg color.NRGBA) {
	bounds := img.Bounds()
	charWidth := 4
	labelWidth := len(text) * charWidth
	labelHeight := 7

	for dy := -1; dy < labelHeight; dy++ {
		for dx := -1; dx < labelWidth; dx++ {
			px, py := x+dx, y+dy
			if (image.Point{X: px, Y: py}).In(bounds) {
				img.SetNRGBA(px, py, bg)
			}
		}
	}

	cx := x
	for _, ch := range text {
		glyph, ok := digitGlyphs[ch]
		if !ok {
			cx += charWidth
			continue
		}
		for row, line := range glyph {
			for col, pixel := range line {
				if pixel == '1' {
					px, py := cx+col, y+row
					if (image.Point{X: px, Y: py}).In(bounds) {
						img.SetNRGBA(px, py, fg)
					}
				}
			}
		}
		cx += charWidth
	}
}
