package extract

import "github.com/ironsheep/object-extract-mcp/internal/imaging"

// Result is the output of one extraction run.
//
// Objects are in reading order and numbered 1..Count() without gaps. A
// Result is never modified after Run returns it.
type Result struct {
	// Objects holds the extracted objects in reading order.
	Objects []*imaging.Object

	// Detected is the number of regions found before size filtering.
	Detected int

	// Discarded is the number of regions dropped for being smaller than
	// Params.MinDimension in either direction.
	Discarded int

	// Params are the parameters the result was computed with.
	Params Params
}

// Count returns the number of extracted objects.
func (r *Result) Count() int {
	if r == nil {
		return 0
	}
	return len(r.Objects)
}

// IsEmpty reports whether no object survived extraction. An empty result
// is a successful run, not an error.
func (r *Result) IsEmpty() bool {
	return r.Count() == 0
}

// At returns the object at 0-based position i, or nil if i is out of range.
func (r *Result) At(i int) *imaging.Object {
	if i < 0 || i >= r.Count() {
		return nil
	}
	return r.Objects[i]
}
