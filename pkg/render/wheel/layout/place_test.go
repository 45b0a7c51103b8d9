package layout

import (
	"testing"

	"github.com/astrowheel/astrowheel/pkg/astro"
)

func deltasByInput(placed []PlacedPoint, n int) []float64 {
	deltas := make([]float64, n)
	for _, p := range placed {
		deltas[p.Index] = p.Delta
	}
	return deltas
}

func approxSlice(got, want []float64) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if !approx(got[i], want[i]) {
			return false
		}
	}
	return true
}

func TestPlaceGlyphsDeltas(t *testing.T) {
	tests := []struct {
		name      string
		positions []float64
		want      []float64
	}{
		{
			name:      "wide gaps leave every point in place",
			positions: []float64{10, 50, 90, 200},
			want:      []float64{0, 0, 0, 0},
		},
		{
			name:      "coincident pair splits symmetrically",
			positions: []float64{100, 100, 280},
			want:      []float64{-1.7, 1.7, 0},
		},
		{
			name:      "pair with room before it shifts the first glyph back",
			positions: []float64{100, 103, 108},
			want:      []float64{-3.4, 0, 0},
		},
		{
			name:      "pair with room after it shifts the second glyph forward",
			positions: []float64{100, 105, 108},
			want:      []float64{0, 0, 3.4},
		},
		{
			name:      "boxed-in pair pushes both neighbors",
			positions: []float64{90, 96, 99, 105, 200, 300},
			want:      []float64{-0.8, -1.7, 1.7, 0.8, 0, 0},
		},
		{
			name:      "boxed-in pair pushes only the previous neighbor",
			positions: []float64{90, 96, 99, 105, 110, 300},
			want:      []float64{-2.5, -4.08, 0, 0, 0, 0},
		},
		{
			name:      "boxed-in pair pushes only the following neighbor",
			positions: []float64{85, 91, 96, 99, 105, 290},
			want:      []float64{0, 0, 0, 4.08, 2.5, 0},
		},
		{
			name:      "run of three spreads across surrounding slack",
			positions: []float64{10, 100, 102, 104, 200},
			want:      []float64{0, -4.08, -2, 0.08, 0},
		},
		{
			name:      "run of three with no slack stays put",
			positions: []float64{100, 102, 104},
			want:      []float64{0, 0, 0},
		},
		{
			name:      "pair hugging the wrap seam with no room stays put",
			positions: []float64{358, 1},
			want:      []float64{0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			placed := PlaceGlyphs(tt.positions, GlyphThreshold)
			got := deltasByInput(placed, len(tt.positions))
			if !approxSlice(got, tt.want) {
				t.Errorf("PlaceGlyphs(%v) deltas = %v, want %v", tt.positions, got, tt.want)
			}
		})
	}
}

func TestPlaceGlyphsSortsByPosition(t *testing.T) {
	placed := PlaceGlyphs([]float64{300, 10, 200}, GlyphThreshold)

	wantIndex := []int{1, 2, 0}
	wantPos := []float64{10, 200, 300}
	for e := range placed {
		if placed[e].Index != wantIndex[e] || placed[e].AbsPos != wantPos[e] {
			t.Errorf("placed[%d] = {Index: %d, AbsPos: %v}, want {Index: %d, AbsPos: %v}",
				e, placed[e].Index, placed[e].AbsPos, wantIndex[e], wantPos[e])
		}
	}
}

func TestPlaceGlyphsWrapDistances(t *testing.T) {
	placed := PlaceGlyphs([]float64{350, 20, 180}, GlyphThreshold)

	// Sorted order is 20, 180, 350; the first and last points measure
	// their outer gaps across the 0 degree seam.
	if !approx(placed[0].DistPrev, 30) {
		t.Errorf("DistPrev across seam = %v, want 30", placed[0].DistPrev)
	}
	if !approx(placed[2].DistNext, 30) {
		t.Errorf("DistNext across seam = %v, want 30", placed[2].DistNext)
	}
}

func TestPlaceGlyphsDegenerateInput(t *testing.T) {
	if got := PlaceGlyphs(nil, GlyphThreshold); got != nil {
		t.Errorf("PlaceGlyphs(nil) = %v, want nil", got)
	}

	placed := PlaceGlyphs([]float64{42.5}, GlyphThreshold)
	if len(placed) != 1 {
		t.Fatalf("len(placed) = %d, want 1", len(placed))
	}
	if placed[0].Delta != 0 || placed[0].DistPrev != 0 || placed[0].DistNext != 0 {
		t.Errorf("single point placement = %+v, want zero delta and distances", placed[0])
	}
}

func TestPlaceRingAlternatesInsets(t *testing.T) {
	points := []astro.ChartPoint{
		{ID: astro.PointSun, Name: "Sun", AbsPos: 100},
		{ID: astro.PointMoon, Name: "Moon", AbsPos: 101},
	}

	ring := PlaceRing(points, TierSingle)
	if len(ring.Insets) != 2 {
		t.Fatalf("len(Insets) = %d, want 2", len(ring.Insets))
	}
	if ring.Insets[0] == ring.Insets[1] {
		t.Errorf("crowded pair shares inset %v, want alternating radii", ring.Insets[0])
	}
	if ring.Insets[0] != 94 || ring.Insets[1] != 74 {
		t.Errorf("Insets = %v, want [94 74]", ring.Insets)
	}
}

func TestPlaceRingAxisInset(t *testing.T) {
	points := []astro.ChartPoint{
		{ID: astro.PointSun, Name: "Sun", AbsPos: 10},
		{ID: astro.PointAscendant, Name: "Ascendant", AbsPos: 100},
		{ID: astro.PointMoon, Name: "Moon", AbsPos: 200},
	}

	ring := PlaceRing(points, TierSingle)
	want := []float64{94, 40, 74}
	for e, inset := range ring.Insets {
		if inset != want[e] {
			t.Errorf("Insets[%d] = %v, want %v", e, inset, want[e])
		}
	}
}
