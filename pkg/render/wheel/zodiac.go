package wheel

import (
	"bytes"
	"fmt"

	"github.com/astrowheel/astrowheel/pkg/astro"
	"github.com/astrowheel/astrowheel/pkg/render/wheel/layout"
)

// Zodiac symbols sit 15 degrees into their slice, on the sign's middle ray.
const signSymbolOffset = 15

// Glyphs on the dual-wheel rim leave more room for the transit band.
const (
	dualSignDropin   = 54
	singleSignDropin = 18
)

// drawZodiacRing draws the twelve fixed sign wedges and their symbols.
// Dual-wheel charts anchor the wedges at the rim; single-wheel charts
// inset them by the first circle.
func drawZodiacRing(geo layout.Geometry, seventhCusp float64) string {
	r := geo.MainRadius
	offset := layout.RotationOffset(seventhCusp)

	var buf bytes.Buffer
	buf.WriteString(`<g kr:node="ZodiacRing">`)
	for _, sign := range astro.Signs {
		num := float64(sign.Num)

		dropin := geo.C1
		if geo.Mode.IsDualWheel() {
			dropin = 0
		}
		a := layout.RingPoint(r, dropin, 30*num+offset)
		b := layout.RingPoint(r, dropin, 30*(num+1)+offset)
		fmt.Fprintf(&buf,
			`<path d="M%s,%s L%s,%s A%s,%s 0 0,0 %s,%s z" style="fill: var(--astrowheel-chart-color-zodiac-bg-%d); fill-opacity: .5;"/>`,
			fnum(r), fnum(r), fnum(a.X), fnum(a.Y), fnum(r-dropin), fnum(r-dropin), fnum(b.X), fnum(b.Y), sign.Num)

		dropin = singleSignDropin + geo.C1
		if geo.Mode.IsDualWheel() {
			dropin = dualSignDropin
		}
		s := layout.RingPoint(r, dropin, 30*num+offset+signSymbolOffset)
		fmt.Fprintf(&buf,
			`<g transform="translate(-16,-16)"><use x="%s" y="%s" xlink:href="#%s" fill="var(--astrowheel-chart-color-zodiac-icon-%d)"/></g>`,
			fnum(s.X), fnum(s.Y), sign.Glyph, sign.Num)
	}
	buf.WriteString(`</g>`)
	return buf.String()
}

// tickOffset is one of the 72 five-degree rays, rotated by the chart's
// seventh cusp and wrapped into [0, 360].
func tickOffset(i int, seventhCusp float64) float64 {
	offset := float64(i*5) - seventhCusp
	if offset < 0 {
		offset += 360
	} else if offset > 360 {
		offset -= 360
	}
	return offset
}

// drawDegreeRing draws the 72 tick marks just outside the first circle.
func drawDegreeRing(geo layout.Geometry, seventhCusp float64) string {
	r := geo.MainRadius
	c1 := geo.C1
	if geo.Mode.IsDualWheel() {
		// Dual wheels tick the transit band boundary instead.
		return drawTransitRingDegreeSteps(geo, seventhCusp)
	}

	var buf bytes.Buffer
	buf.WriteString(`<g id="degreeRing">`)
	for i := 0; i < 72; i++ {
		offset := tickOffset(i, seventhCusp)
		a := layout.RingPoint(r, c1, offset)
		b := layout.RingPoint(r, c1-2, offset)
		fmt.Fprintf(&buf,
			`<line x1="%s" y1="%s" x2="%s" y2="%s" style="stroke: var(--astrowheel-chart-color-paper-0); stroke-width: 1px; stroke-opacity: .9;"/>`,
			fnum(a.X), fnum(a.Y), fnum(b.X), fnum(b.Y))
	}
	buf.WriteString(`</g>`)
	return buf.String()
}

// drawTransitRingDegreeSteps draws the tick ring on the outer rim of a
// dual wheel.
func drawTransitRingDegreeSteps(geo layout.Geometry, seventhCusp float64) string {
	r := geo.MainRadius

	var buf bytes.Buffer
	buf.WriteString(`<g id="transitRingDegreeSteps">`)
	for i := 0; i < 72; i++ {
		offset := tickOffset(i, seventhCusp)
		a := layout.RingPoint(r, 0, offset)
		b := layout.RingPoint(r, -2, offset)
		fmt.Fprintf(&buf,
			`<line x1="%s" y1="%s" x2="%s" y2="%s" style="stroke: var(--astrowheel-chart-color-zodiac-transit-ring-3); stroke-width: 1px; stroke-opacity: .9;"/>`,
			fnum(a.X), fnum(a.Y), fnum(b.X), fnum(b.Y))
	}
	buf.WriteString(`</g>`)
	return buf.String()
}

// drawTransitRing draws the wide band that carries the second subject's
// glyphs on dual wheels.
func drawTransitRing(geo layout.Geometry, seventhCusp float64) string {
	const bandOffset = 18
	r := geo.MainRadius

	var buf bytes.Buffer
	fmt.Fprintf(&buf,
		`<circle cx="%s" cy="%s" r="%s" style="fill: none; stroke: var(--astrowheel-chart-color-paper-1); stroke-width: 36px; stroke-opacity: .4;"/>`,
		fnum(r), fnum(r), fnum(r-bandOffset))
	fmt.Fprintf(&buf,
		`<circle cx="%s" cy="%s" r="%s" style="fill: none; stroke: var(--astrowheel-chart-color-zodiac-transit-ring-3); stroke-width: 1px; stroke-opacity: .6;"/>`,
		fnum(r), fnum(r), fnum(r))
	return buf.String()
}

func drawBackgroundCircle(geo layout.Geometry) string {
	r := geo.MainRadius
	return fmt.Sprintf(
		`<circle cx="%s" cy="%s" r="%s" style="fill: var(--astrowheel-chart-color-paper-1); stroke: var(--astrowheel-chart-color-paper-1);"/>`,
		fnum(r), fnum(r), fnum(r))
}

// drawFirstCircle draws the outermost structural circle: the inner edge
// of the zodiac band.
func drawFirstCircle(geo layout.Geometry) string {
	r := geo.MainRadius
	if geo.Mode.IsDualWheel() {
		return fmt.Sprintf(
			`<circle cx="%s" cy="%s" r="%s" style="fill: none; stroke: var(--astrowheel-chart-color-zodiac-radix-ring-2); stroke-width: 1px; stroke-opacity: .4;"/>`,
			fnum(r), fnum(r), fnum(r-layout.DualFirstInset))
	}
	return fmt.Sprintf(
		`<circle cx="%s" cy="%s" r="%s" style="fill: none; stroke: var(--astrowheel-chart-color-zodiac-radix-ring-2); stroke-width: 1px;"/>`,
		fnum(r), fnum(r), fnum(r-geo.C1))
}

func drawSecondCircle(geo layout.Geometry) string {
	r := geo.MainRadius
	if geo.Mode.IsDualWheel() {
		return fmt.Sprintf(
			`<circle cx="%s" cy="%s" r="%s" style="fill: var(--astrowheel-chart-color-paper-1); fill-opacity: .4; stroke: var(--astrowheel-chart-color-zodiac-radix-ring-1); stroke-opacity: .4; stroke-width: 1px;"/>`,
			fnum(r), fnum(r), fnum(r-layout.DualSecondInset))
	}
	return fmt.Sprintf(
		`<circle cx="%s" cy="%s" r="%s" style="fill: var(--astrowheel-chart-color-paper-1); fill-opacity: .2; stroke: var(--astrowheel-chart-color-zodiac-radix-ring-1); stroke-opacity: .4; stroke-width: 1px;"/>`,
		fnum(r), fnum(r), fnum(r-geo.C2))
}

// drawThirdCircle draws the innermost circle: the boundary of the aspect
// core.
func drawThirdCircle(geo layout.Geometry) string {
	r := geo.MainRadius
	inset := geo.C3
	if geo.Mode.IsDualWheel() {
		inset = layout.DualThirdInset
	}
	return fmt.Sprintf(
		`<circle cx="%s" cy="%s" r="%s" style="fill: var(--astrowheel-chart-color-paper-1); fill-opacity: .8; stroke: var(--astrowheel-chart-color-zodiac-radix-ring-0); stroke-width: 1px;"/>`,
		fnum(r), fnum(r), fnum(r-inset))
}
