package layout

import (
	"sort"

	"github.com/astrowheel/astrowheel/pkg/astro"
)

const (
	// GlyphThreshold is the angular distance in degrees under which two
	// neighboring glyphs start to overlap.
	GlyphThreshold = 3.4

	// LabelThreshold is the tighter distance used for degree labels.
	LabelThreshold = 2.5
)

// PlacedPoint is one chart point after spacing adjustment. Placements are
// reported in position-sorted order around the wheel; Index points back
// into the caller's slice.
type PlacedPoint struct {
	Index    int     `json:"index"`
	AbsPos   float64 `json:"abs_pos"`
	Delta    float64 `json:"delta"`
	DistPrev float64 `json:"dist_prev"`
	DistNext float64 `json:"dist_next"`
}

// PlaceGlyphs sorts points by absolute position and spreads crowded
// neighbors apart. A group opens while the distance to the next point is
// under the threshold and closes by absorbing the first point past it.
// Pairs shift away from each other when there is room on either side, or
// push the surrounding points; longer runs spread evenly only when the
// slack around them covers the space they need.
func PlaceGlyphs(positions []float64, threshold float64) []PlacedPoint {
	n := len(positions)
	if n == 0 {
		return nil
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return positions[order[a]] < positions[order[b]]
	})

	placed := make([]PlacedPoint, n)
	for e, idx := range order {
		prev := positions[order[(e-1+n)%n]]
		next := positions[order[(e+1)%n]]
		placed[e] = PlacedPoint{
			Index:    idx,
			AbsPos:   positions[idx],
			DistPrev: astro.DegreeDiff(prev, positions[idx]),
			DistNext: astro.DegreeDiff(next, positions[idx]),
		}
	}

	var groups [][]int
	open := false
	for e := range placed {
		if placed[e].DistNext < threshold {
			if open {
				last := len(groups) - 1
				groups[last] = append(groups[last], e)
			} else {
				open = true
				groups = append(groups, []int{e})
			}
		} else {
			if open {
				last := len(groups) - 1
				groups[last] = append(groups[last], e)
			}
			open = false
		}
	}

	deltas := make([]float64, n)
	for _, g := range groups {
		switch {
		case len(g) == 2:
			adjustPair(placed, deltas, g, threshold)
		case len(g) >= 3:
			adjustRun(placed, deltas, g, threshold)
		}
	}

	for e := range placed {
		placed[e].Delta = deltas[e]
	}
	return placed
}

// adjustPair spreads two crowded glyphs apart, preferring free space next
// to the pair itself and falling back to pushing the surrounding points.
func adjustPair(placed []PlacedPoint, deltas []float64, g []int, t float64) {
	n := len(placed)
	a, b := g[0], g[1]
	nextToA := (a - 1 + n) % n
	nextToB := (b + 1) % n
	gap := placed[a].DistNext

	switch {
	case placed[a].DistPrev > 2*t && placed[b].DistNext > 2*t:
		deltas[a] = -(t - gap) / 2
		deltas[b] = +(t - gap) / 2
	case placed[a].DistPrev > 2*t:
		deltas[a] = -t
	case placed[b].DistNext > 2*t:
		deltas[b] = +t
	case placed[nextToA].DistPrev > 2.4*t && placed[nextToB].DistNext > 2.4*t:
		deltas[nextToA] = placed[a].DistPrev - 2*t
		deltas[a] = -0.5 * t
		deltas[nextToB] = -(placed[b].DistNext - 2*t)
		deltas[b] = +0.5 * t
	case placed[nextToA].DistPrev > 2*t:
		deltas[nextToA] = placed[a].DistPrev - 2.5*t
		deltas[a] = -1.2 * t
	case placed[nextToB].DistNext > 2*t:
		deltas[nextToB] = -(placed[b].DistNext - 2.5*t)
		deltas[b] = +1.2 * t
	}
}

// adjustRun spreads three or more crowded glyphs across the slack around
// them. Without enough slack the run stays put.
func adjustRun(placed []PlacedPoint, deltas []float64, g []int, t float64) {
	size := len(g)
	first, last := g[0], g[size-1]

	available := placed[first].DistPrev
	for _, e := range g {
		available += placed[e].DistNext
	}
	need := 3*t + 1.2*float64(size-1)*t
	if available <= need {
		return
	}

	xa := placed[first].DistPrev
	xb := placed[last].DistNext

	var startA float64
	switch {
	case xa > need/2 && xb > need/2:
		startA = xa - need/2
	case xa+xb > 0:
		startA = (available - need) / (xa + xb) * xa
	}

	deltas[first] = startA - placed[first].DistPrev + 1.5*t
	for k := 0; k < size-1; k++ {
		deltas[g[k+1]] = 1.2*t + deltas[g[k]] - placed[g[k]].DistNext
	}
}

// RingPlacement pairs spacing-adjusted points with their radial insets for
// one ring of glyphs. Both slices follow position-sorted order.
type RingPlacement struct {
	Points []PlacedPoint `json:"points"`
	Insets []float64     `json:"insets"`
}

// PlaceRing runs the glyph pass for one ring of chart points and assigns
// the tier's insets in draw order.
func PlaceRing(points []astro.ChartPoint, tier RadialTier) RingPlacement {
	positions := make([]float64, len(points))
	axis := make([]bool, len(points))
	for i, p := range points {
		positions[i] = p.AbsPos
		axis[i] = p.ID.IsAxis()
	}

	placed := PlaceGlyphs(positions, GlyphThreshold)
	sortedAxis := make([]bool, len(placed))
	for e, p := range placed {
		sortedAxis[e] = axis[p.Index]
	}

	return RingPlacement{Points: placed, Insets: tier.Insets(sortedAxis)}
}
