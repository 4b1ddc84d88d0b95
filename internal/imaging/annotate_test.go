package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input   string
		want    color.NRGBA
		wantErr bool
	}{
		{"#FF0000", color.NRGBA{255, 0, 0, 255}, false},
		{"00FF00", color.NRGBA{0, 255, 0, 255}, false},
		{"#0000FF80", color.NRGBA{0, 0, 255, 128}, false},
		{"#00bcd4ff", color.NRGBA{0, 188, 212, 255}, false},
		{"", color.NRGBA{}, true},
		{"#FFF", color.NRGBA{}, true},
		{"#GGGGGG", color.NRGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseHexColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHexColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseHexColor(%q): got %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestAnnotate(t *testing.T) {
	src := createInMemoryImage(50, 50, color.NRGBA{0, 0, 0, 0})
	red := color.NRGBA{255, 0, 0, 255}

	result := Annotate(src, []image.Rectangle{image.Rect(10, 10, 40, 40)}, "#FF0000")

	if result.Bounds() != src.Bounds() {
		t.Fatalf("bounds: got %v, want %v", result.Bounds(), src.Bounds())
	}

	tests := []struct {
		name string
		x, y int
		want color.NRGBA
	}{
		{"right edge", 39, 25, red},
		{"bottom edge", 25, 39, red},
		{"left edge", 10, 30, red},
		{"inside", 25, 25, color.NRGBA{0, 0, 0, 0}},
		{"outside", 45, 45, color.NRGBA{0, 0, 0, 0}},
		{"label glyph", 13, 12, color.NRGBA{255, 255, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := result.NRGBAAt(tt.x, tt.y); got != tt.want {
				t.Errorf("pixel (%d,%d): got %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}

	if got := src.NRGBAAt(39, 25); got.A != 0 {
		t.Error("Annotate modified the source image")
	}
}

func TestAnnotate_InvalidColorFallsBack(t *testing.T) {
	src := createInMemoryImage(30, 30, color.NRGBA{0, 0, 0, 0})

	result := Annotate(src, []image.Rectangle{image.Rect(2, 2, 28, 28)}, "not-a-color")

	want, _ := ParseHexColor(DefaultBoxColor)
	if got := result.NRGBAAt(27, 20); got != want {
		t.Errorf("outline: got %v, want %v", got, want)
	}
}

func TestAnnotate_BoxOutsideImage(t *testing.T) {
	src := createInMemoryImage(20, 20, color.NRGBA{9, 9, 9, 255})

	result := Annotate(src, []image.Rectangle{image.Rect(100, 100, 120, 120)}, "")

	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if got := result.NRGBAAt(x, y); got != (color.NRGBA{9, 9, 9, 255}) {
				t.Fatalf("pixel (%d,%d) changed: %v", x, y, got)
			}
		}
	}
}

func TestDrawLabel(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	fg := color.NRGBA{255, 255, 255, 255}
	bg := color.NRGBA{0, 0, 0, 255}

	drawLabel(img, 2, 2, "10", fg, bg)

	// '1' starts with "010" and '0' with "111".
	if got := img.NRGBAAt(3, 2); got != fg {
		t.Errorf("first glyph: got %v, want %v", got, fg)
	}
	if got := img.NRGBAAt(2, 2); got != bg {
		t.Errorf("first glyph gap: got %v, want %v", got, bg)
	}
	if got := img.NRGBAAt(6, 2); got != fg {
		t.Errorf("second glyph: got %v, want %v", got, fg)
	}
	if got := img.NRGBAAt(1, 1); got != bg {
		t.Errorf("background margin: got %v, want %v", got, bg)
	}

	// Near the edge nothing is drawn out of bounds.
	drawLabel(img, 18, 18, "99", fg, bg)
}
