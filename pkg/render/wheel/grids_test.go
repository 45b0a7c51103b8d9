package wheel

import (
	"fmt"
	"strings"
	"testing"

	"github.com/astrowheel/astrowheel/pkg/astro"
)

func TestDrawAspectGrid(t *testing.T) {
	chart := natalChart()
	settings := astro.DefaultSettings()
	active := settings.ActivePoints(&chart.First)

	out := drawAspectGrid(settings, active, chart.Aspects, natalGridX, natalGridY)

	// A triangle over n points has n diagonal cells plus n(n-1)/2 pair
	// cells.
	n := len(active)
	wantCells := n + n*(n-1)/2
	if got := strings.Count(out, "<rect"); got != wantCells {
		t.Errorf("cell count = %d, want %d for %d points", got, wantCells, n)
	}

	// The Sun-Moon square shows up exactly once.
	if got := strings.Count(out, `xlink:href="#orb90"`); got != 1 {
		t.Errorf("square icon count = %d, want 1", got)
	}
}

func TestDrawDoubleAspectGrid(t *testing.T) {
	chart := transitChart()
	settings := astro.DefaultSettings()
	active := settings.ActivePoints(&chart.First)

	out := drawDoubleAspectGrid(settings, active, chart.Aspects, standaloneGridX, standaloneGridY)

	// Full table: two header runs of n cells plus an n by n body.
	n := len(active)
	wantCells := 2*n + n*n
	if got := strings.Count(out, "<rect"); got != wantCells {
		t.Errorf("cell count = %d, want %d for %d points", got, wantCells, n)
	}
}

func TestDrawDoubleChartAspectListOverflow(t *testing.T) {
	settings := astro.DefaultSettings()

	edges := make([]astro.AspectEdge, aspectsPerColumn*aspectMaxColumns+3)
	for i := range edges {
		edges[i] = astro.AspectEdge{
			P1Name: "Sun", P2Name: "Moon",
			Aspect: "trine", Degrees: 120, Orbit: 2,
		}
	}

	out := drawDoubleChartAspectList("Overflow", edges, settings)

	if !strings.Contains(out, `translate(565,273)`) {
		t.Error("list anchor missing")
	}
	// The three overflow rows shift up into negative y within the last
	// column instead of extending past it.
	if !strings.Contains(out, fmt.Sprintf(`translate(%s,%s)`, fnum(6*aspectColumnW), fnum(-3*aspectLineH))) {
		t.Errorf("overflow rows not shifted up:\n%s", out)
	}
}

func TestDrawPlanetGrid(t *testing.T) {
	chart := natalChart()
	settings := astro.DefaultSettings()
	active := settings.ActivePoints(&chart.First)

	out := drawPlanetGrid("", active, settings, mainPlanetGridX)

	if strings.Contains(out, "font-size: 14px") {
		t.Error("untitled grid rendered a title")
	}
	for _, want := range []string{
		`xlink:href="#Sun"`,
		`xlink:href="#Lib"`,
		`xlink:href="#retrograde"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("planet grid missing %q", want)
		}
	}

	titled := drawPlanetGrid("Points for John", active, settings, mainPlanetGridX)
	if !strings.Contains(titled, "Points for John") {
		t.Error("titled grid missing its title")
	}
}

func TestDrawHouseGrid(t *testing.T) {
	chart := natalChart()
	out := drawHouseGrid(chart.First.Houses, mainHouseGridX)

	if got := strings.Count(out, "Cusp "); got != 12 {
		t.Errorf("cusp rows = %d, want 12", got)
	}
	// Single digit cusp numbers are padded so the colons align.
	if !strings.Contains(out, "Cusp &#160;&#160;9:") {
		t.Error("single digit cusp number not padded")
	}
	if !strings.Contains(out, "Cusp 10:") {
		t.Error("double digit cusp number padded")
	}
}

func TestHouseNumberFor(t *testing.T) {
	chart := natalChart()
	houses := chart.First.Houses

	tests := []struct {
		absPos float64
		want   int
	}{
		{10, 1},
		{39.9, 1},
		{40, 2},
		{196.5, 7},
		{9.9, 12},
		{350, 12},
	}

	for _, tt := range tests {
		if got := houseNumberFor(tt.absPos, houses); got != tt.want {
			t.Errorf("houseNumberFor(%v) = %d, want %d", tt.absPos, got, tt.want)
		}
	}
}

func TestDrawHouseComparisonGrid(t *testing.T) {
	chart := transitChart()
	chart.Mode = astro.ModeDualReturn
	settings := astro.DefaultSettings()

	out := drawHouseComparisonGrid(chart, settings)

	if !strings.Contains(out, "House Position Comparison") {
		t.Error("comparison grid missing title")
	}
	for _, want := range []string{"Return Point", "Return</text>", "Radix"} {
		if !strings.Contains(out, want) {
			t.Errorf("comparison grid missing %q", want)
		}
	}
	if !strings.Contains(out, `xlink:href="#Sun"`) {
		t.Error("comparison grid missing point rows")
	}
}
