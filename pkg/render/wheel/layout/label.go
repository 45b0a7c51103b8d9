package layout

import (
	"sort"

	"github.com/astrowheel/astrowheel/pkg/astro"
)

// LabelOffsets spreads the degree labels of closely packed points. Labels
// tolerate tighter packing than glyphs, so this pass groups with its own
// threshold and fans each group out by a fixed pattern instead of moving
// neighbors. The returned offsets are indexed like positions.
func LabelOffsets(positions []float64, threshold float64) []float64 {
	n := len(positions)
	offsets := make([]float64, n)
	if n == 0 {
		return offsets
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return positions[order[a]] < positions[order[b]]
	})

	var groups [][]int
	open := false
	for e := 0; e < n; e++ {
		ia := order[e]
		ib := order[(e+1)%n]
		if astro.DegreeDiff(positions[ia], positions[ib]) <= threshold {
			if open {
				last := len(groups) - 1
				groups[last] = append(groups[last], ib)
			} else {
				groups = append(groups, []int{ia, ib})
				open = true
			}
		} else {
			open = false
		}
	}

	for _, g := range groups {
		switch len(g) {
		case 2:
			offsets[g[0]], offsets[g[1]] = -1.0, 1.0
		case 3:
			offsets[g[0]], offsets[g[1]], offsets[g[2]] = -1.5, 0, 1.5
		case 4:
			offsets[g[0]], offsets[g[1]], offsets[g[2]], offsets[g[3]] = -2.0, -1.0, 1.0, 2.0
		default:
			step := 4.0 / float64(len(g)-1)
			for j, idx := range g {
				offsets[idx] = -2.0 + step*float64(j)
			}
		}
	}
	return offsets
}
