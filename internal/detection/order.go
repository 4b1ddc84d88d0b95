package detection

import "sort"

// BandHeight is the height in pixels of the horizontal bands used to order
// regions.
const BandHeight = 100

// OrderRegions returns regions in reading order: top-to-bottom by band,
// then left-to-right within a band.
//
// Each region's band is Y / BandHeight, computed once before sorting. The
// sort is stable, so regions with the same band and X keep the order the
// detector discovered them in. The input slice is not modified.
func OrderRegions(regions []Region) []Region {
	type keyed struct {
		band   int
		x      int
		region Region
	}

	keys := make([]keyed, len(regions))
	for i, r := range regions {
		keys[i] = keyed{band: r.Y() / BandHeight, x: r.X(), region: r}
	}

	sort.SliceStable(keys, func(i, j int) bool {
		if keys[i].band != keys[j].band {
			return keys[i].band < keys[j].band
		}
		return keys[i].x < keys[j].x
	})

	ordered := make([]Region, len(keys))
	for i, k := range keys {
		ordered[i] = k.region
	}
	return ordered
}
