package detection

import (
	"image"
)

// Region is one connected opaque area of a mask.
//
// Bounds is the tightest axis-aligned rectangle enclosing the region's outer
// boundary, in source image coordinates (Min inclusive, Max exclusive).
// Area counts the pixels enclosed by that boundary, holes included.
type Region struct {
	Bounds image.Rectangle
	Area   int
}

// X returns the left edge of the region.
func (r Region) X() int { return r.Bounds.Min.X }

// Y returns the top edge of the region.
func (r Region) Y() int { return r.Bounds.Min.Y }

// Width returns the horizontal extent of the region.
func (r Region) Width() int { return r.Bounds.Dx() }

// Height returns the vertical extent of the region.
func (r Region) Height() int { return r.Bounds.Dy() }

// Point represents a 2D coordinate in mask space.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// DetectRegions finds the external outlines of all opaque areas in a mask.
//
// # Algorithm
//
//  1. Closing: 3x3 dilate followed by 3x3 erode to bridge small gaps
//  2. Hole filling: transparent cells not reachable from the image border
//     (4-connected) become opaque, so only outer boundaries matter and
//     anything nested inside a hole joins its enclosing region
//  3. Labelling: 8-connected flood fill, started in raster order
//     (top-to-bottom, left-to-right)
//  4. Bounding box: min/max of every labelled cell
//
// Regions are returned in discovery order. An all-transparent mask yields
// an empty slice.
func DetectRegions(m *Mask) []Region {
	closed := Close(m)
	filled := fillHoles(closed)
	return labelRegions(filled)
}

// fillHoles returns a copy of m where every transparent cell that cannot be
// reached from the border through transparent 4-neighbours is opaque.
func fillHoles(m *Mask) *Mask {
	width := m.Rect.Dx()
	height := m.Rect.Dy()
	outside := make([]bool, width*height)
	stack := make([]Point, 0, 2*(width+height))

	push := func(x, y int) {
		i := y*width + x
		if m.Pix[i] == Transparent && !outside[i] {
			outside[i] = true
			stack = append(stack, Point{X: x, Y: y})
		}
	}

	for x := 0; x < width; x++ {
		push(x, 0)
		push(x, height-1)
	}
	for y := 0; y < height; y++ {
		push(0, y)
		push(width-1, y)
	}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if p.X > 0 {
			push(p.X-1, p.Y)
		}
		if p.X < width-1 {
			push(p.X+1, p.Y)
		}
		if p.Y > 0 {
			push(p.X, p.Y-1)
		}
		if p.Y < height-1 {
			push(p.X, p.Y+1)
		}
	}

	filled := NewMask(m.Rect)
	for i := range filled.Pix {
		if !outside[i] {
			filled.Pix[i] = Opaque
		}
	}
	return filled
}

// labelRegions groups opaque cells into 8-connected components.
func labelRegions(m *Mask) []Region {
	width := m.Rect.Dx()
	height := m.Rect.Dy()
	visited := make([]bool, width*height)
	regions := make([]Region, 0)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := y*width + x
			if m.Pix[i] != Opaque || visited[i] {
				continue
			}
			bounds, area := floodFill(m, visited, x, y)
			regions = append(regions, Region{
				Bounds: bounds.Add(m.Rect.Min),
				Area:   area,
			})
		}
	}

	return regions
}

// floodFill performs iterative flood-fill from a starting cell.
//
// Uses a stack-based approach (not recursive) to avoid stack overflow on
// large regions. Uses 8-connectivity (includes diagonal neighbours).
// Returns the bounding box in mask-local coordinates and the cell count.
func floodFill(m *Mask, visited []bool, startX, startY int) (image.Rectangle, int) {
	width := m.Rect.Dx()
	height := m.Rect.Dy()
	minX, minY := startX, startY
	maxX, maxY := startX, startY
	area := 0

	visited[startY*width+startX] = true
	stack := []Point{{X: startX, Y: startY}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		area++

		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx, ny := p.X+dx, p.Y+dy
				if nx < 0 || nx >= width || ny < 0 || ny >= height {
					continue
				}
				i := ny*width + nx
				if visited[i] || m.Pix[i] != Opaque {
					continue
				}
				visited[i] = true
				stack = append(stack, Point{X: nx, Y: ny})
			}
		}
	}

	return image.Rect(minX, minY, maxX+1, maxY+1), area
}
