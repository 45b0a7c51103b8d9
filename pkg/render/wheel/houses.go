package wheel

import (
	"bytes"
	"fmt"
	"math"
	"sort"

	"github.com/astrowheel/astrowheel/pkg/astro"
	"github.com/astrowheel/astrowheel/pkg/render/wheel/layout"
)

// House number text insets per wheel variant.
const (
	dualHouseNumberDropin     = 84
	externalHouseNumberDropin = 100
	singleHouseNumberDropin   = 48
)

// cuspLineColor returns the configured color of a house cusp line. The
// angular houses borrow the color of the axis point they start at; the
// rest share the standard cusp line token.
func cuspLineColor(number int, settings *astro.Settings) string {
	axis := map[int]astro.PointID{
		1:  astro.PointAscendant,
		10: astro.PointMediumCoeli,
		7:  astro.PointDescendant,
		4:  astro.PointImumCoeli,
	}
	if id, ok := axis[number]; ok {
		if ps, found := settings.PointByID(id); found {
			return ps.Color
		}
	}
	return "var(--astrowheel-chart-color-houses-radix-line)"
}

// sortedHouses returns the cusps ordered by house number.
func sortedHouses(houses []astro.HouseCusp) []astro.HouseCusp {
	out := make([]astro.HouseCusp, len(houses))
	copy(out, houses)
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

// drawHouseCusps draws the twelve cusp lines and house numbers for the
// first subject, plus the second subject's cusps on dual wheels. Transit
// mode hides the second subject's cusps and numbers entirely (opacity 0)
// but keeps them in the document for tooling.
func drawHouseCusps(geo layout.Geometry, chart *astro.Chart, settings *astro.Settings) string {
	r := geo.MainRadius
	dual := geo.Mode.IsDualWheel()

	houses := sortedHouses(chart.First.Houses)
	if len(houses) != 12 {
		return ""
	}
	var second []astro.HouseCusp
	if dual && chart.Second != nil {
		second = sortedHouses(chart.Second.Houses)
	}

	seventh := houses[6].AbsPos

	dropin, roff := geo.C3, geo.C1
	if dual {
		dropin, roff = layout.DualThirdInset, layout.DualSecondInset
	}

	numberDropin := float64(singleHouseNumberDropin)
	switch {
	case dual:
		numberDropin = dualHouseNumberDropin
	case geo.Mode == astro.ModeExternalNatal:
		numberDropin = externalHouseNumberDropin
	}

	var buf bytes.Buffer
	for i, h := range houses {
		offset := -math.Trunc(seventh) + math.Trunc(h.AbsPos)

		a := layout.RingPoint(r, dropin, offset)
		b := layout.RingPoint(r, roff, offset)

		next := houses[(i+1)%12]
		textOffset := offset + math.Trunc(astro.DegreeDiff(next.AbsPos, h.AbsPos)/2)

		color := cuspLineColor(h.Number, settings)

		if dual && len(second) == 12 {
			buf.WriteString(drawSecondaryCusp(geo, second, i, seventh, color))
		}

		text := layout.RingPoint(r, numberDropin, textOffset)
		fmt.Fprintf(&buf,
			`<g kr:node="Cusp"><line x1="%s" y1="%s" x2="%s" y2="%s" style="stroke: %s; stroke-width: 1px; stroke-dasharray: 3,2; stroke-opacity: .4;"/></g>`,
			fnum(a.X), fnum(a.Y), fnum(b.X), fnum(b.Y), color)
		fmt.Fprintf(&buf,
			`<g kr:node="HouseNumber"><text style="fill: var(--astrowheel-chart-color-house-number); fill-opacity: .6; font-size: 14px"><tspan x="%s" y="%s">%d</tspan></text></g>`,
			fnum(text.X-3), fnum(text.Y+3), h.Number)
	}
	return buf.String()
}

// drawSecondaryCusp draws one of the second subject's cusp lines between
// the transit band and the rim, rotated by the primary's seventh cusp.
func drawSecondaryCusp(geo layout.Geometry, second []astro.HouseCusp, i int, seventh float64, primaryColor string) string {
	r := geo.MainRadius
	h := second[i]

	offset := math.Mod(360-seventh+h.AbsPos, 360)
	a := layout.RingPoint(r, layout.DualFirstInset, offset)
	b := layout.RingPoint(r, 0, offset)

	next := second[(i+1)%12]
	textOffset := offset + math.Trunc(astro.DegreeDiff(next.AbsPos, h.AbsPos)/2)
	text := layout.RingPoint(r, 8, textOffset)

	color := "var(--astrowheel-chart-color-houses-transit-line)"
	if h.Number == 1 || h.Number == 10 || h.Number == 7 || h.Number == 4 {
		color = primaryColor
	}

	// Transit wheels suppress the outer cusp set; the elements stay in
	// the document at zero opacity.
	numberOpacity, lineOpacity := ".4", ".3"
	if geo.Mode == astro.ModeTransit {
		numberOpacity, lineOpacity = "0", "0"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf,
		`<g kr:node="HouseNumber"><text style="fill: var(--astrowheel-chart-color-house-number); fill-opacity: %s; font-size: 14px"><tspan x="%s" y="%s">%d</tspan></text></g>`,
		numberOpacity, fnum(text.X-3), fnum(text.Y+3), h.Number)
	fmt.Fprintf(&buf,
		`<g kr:node="Cusp"><line x1="%s" y1="%s" x2="%s" y2="%s" style="stroke: %s; stroke-width: 1px; stroke-opacity: %s;"/></g>`,
		fnum(a.X), fnum(a.Y), fnum(b.X), fnum(b.Y), color, lineOpacity)
	return buf.String()
}
