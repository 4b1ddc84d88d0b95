package detection

import (
	"image"
	"testing"
)

func regionAt(x, y, w, h int) Region {
	return Region{Bounds: image.Rect(x, y, x+w, y+h), Area: w * h}
}

func TestOrderRegions(t *testing.T) {
	regions := []Region{
		regionAt(300, 150, 20, 20), // band 1
		regionAt(10, 120, 20, 20),  // band 1
		regionAt(200, 99, 20, 20),  // band 0
		regionAt(50, 0, 20, 20),    // band 0
		regionAt(0, 250, 20, 20),   // band 2
	}

	ordered := OrderRegions(regions)

	want := []image.Point{{50, 0}, {200, 99}, {10, 120}, {300, 150}, {0, 250}}
	if len(ordered) != len(want) {
		t.Fatalf("length: got %d, want %d", len(ordered), len(want))
	}
	for i, p := range want {
		if ordered[i].Bounds.Min != p {
			t.Errorf("position %d: got %v, want %v", i, ordered[i].Bounds.Min, p)
		}
	}
}

func TestOrderRegions_BandBeatsY(t *testing.T) {
	// Same band: the region further right comes later even though it is higher.
	regions := []Region{
		regionAt(80, 10, 10, 10),
		regionAt(20, 90, 10, 10),
	}

	ordered := OrderRegions(regions)
	if ordered[0].X() != 20 || ordered[1].X() != 80 {
		t.Errorf("got x order %d,%d, want 20,80", ordered[0].X(), ordered[1].X())
	}
}

func TestOrderRegions_StableTies(t *testing.T) {
	// Same band and same X: detector order must be kept.
	regions := []Region{
		regionAt(40, 30, 10, 10),
		regionAt(40, 10, 10, 10),
		regionAt(40, 70, 10, 10),
	}

	ordered := OrderRegions(regions)
	for i := range regions {
		if ordered[i] != regions[i] {
			t.Errorf("position %d: got %v, want %v", i, ordered[i].Bounds, regions[i].Bounds)
		}
	}
}

func TestOrderRegions_DoesNotModifyInput(t *testing.T) {
	regions := []Region{
		regionAt(100, 0, 10, 10),
		regionAt(0, 0, 10, 10),
	}

	_ = OrderRegions(regions)
	if regions[0].X() != 100 {
		t.Error("OrderRegions reordered its input slice")
	}
}

func TestOrderRegions_Empty(t *testing.T) {
	ordered := OrderRegions(nil)
	if len(ordered) != 0 {
		t.Errorf("length: got %d, want 0", len(ordered))
	}
}

func TestOrderRegions_Invariant(t *testing.T) {
	regions := []Region{
		regionAt(5, 310, 10, 10),
		regionAt(400, 5, 10, 10),
		regionAt(3, 199, 10, 10),
		regionAt(90, 100, 10, 10),
		regionAt(90, 150, 10, 10),
		regionAt(1, 5, 10, 10),
	}

	ordered := OrderRegions(regions)
	for i := 0; i < len(ordered); i++ {
		for j := i + 1; j < len(ordered); j++ {
			a, b := ordered[i], ordered[j]
			bandA, bandB := a.Y()/BandHeight, b.Y()/BandHeight
			if bandA > bandB {
				t.Errorf("%v precedes %v but is in a later band", a.Bounds, b.Bounds)
			}
			if bandA == bandB && a.X() > b.X() {
				t.Errorf("%v precedes %v in the same band but is further right", a.Bounds, b.Bounds)
			}
		}
	}
}
