package wheel

import (
	"bytes"
	"fmt"

	"github.com/astrowheel/astrowheel/pkg/astro"
)

// Anchor positions of the tabular document sections. The wheel occupies
// the left half of the canvas; everything tabular lives to its right.
const (
	natalGridX = 510.0
	natalGridY = 468.0

	standaloneGridX = 50.0
	standaloneGridY = 250.0

	mainPlanetGridX      = 620.0
	secondaryPlanetGridX = 870.0
	mainHouseGridX       = 720.0
	secondaryHouseGridX  = 970.0
)

const gridBoxSize = 14.0

const gridStroke = "var(--astrowheel-chart-color-paper-0)"
const gridFill = "var(--astrowheel-chart-color-paper-0)"

func gridBoxStyle() string {
	return fmt.Sprintf("stroke:%s; stroke-width: 0.5px; fill:none", gridStroke)
}

// matchesPair reports whether an edge connects the two points, in either
// direction.
func matchesPair(e astro.AspectEdge, a, b astro.PointID) bool {
	return (e.P1 == a && e.P2 == b) || (e.P1 == b && e.P2 == a)
}

// drawAspectGrid draws the triangular aspect grid of a single wheel:
// one diagonal of point glyphs climbing to the right, with each row
// holding the aspect cells against the points already placed.
func drawAspectGrid(settings *astro.Settings, active []astro.ChartPoint, aspects []astro.AspectEdge, xStart, yStart float64) string {
	var buf bytes.Buffer
	style := gridBoxStyle()

	reversed := make([]astro.ChartPoint, len(active))
	for i, p := range active {
		reversed[len(active)-1-i] = p
	}

	x, y := xStart, yStart
	for index, pa := range reversed {
		sa, ok := settings.PointByName(pa.Name)
		if !ok {
			continue
		}
		fmt.Fprintf(&buf,
			`<rect kr:node="AspectsGridRect" x="%s" y="%s" width="%s" height="%s" style="%s"/>`,
			fnum(x), fnum(y), fnum(gridBoxSize), fnum(gridBoxSize), style)
		fmt.Fprintf(&buf,
			`<use transform="scale(0.4)" x="%s" y="%s" xlink:href="#%s"/>`,
			fnum((x+2)*2.5), fnum((y+1)*2.5), sa.Name)

		x += gridBoxSize
		y -= gridBoxSize

		xa, ya := x, y+gridBoxSize
		for _, pb := range reversed[index+1:] {
			fmt.Fprintf(&buf,
				`<rect kr:node="AspectsGridRect" x="%s" y="%s" width="%s" height="%s" style="%s"/>`,
				fnum(xa), fnum(ya), fnum(gridBoxSize), fnum(gridBoxSize), style)
			xa += gridBoxSize

			for _, e := range aspects {
				if matchesPair(e, pa.ID, pb.ID) {
					fmt.Fprintf(&buf,
						`<use x="%s" y="%s" xlink:href="#orb%d"/>`,
						fnum(xa-gridBoxSize+1), fnum(ya+1), e.Degrees)
				}
			}
		}
	}
	return buf.String()
}

// drawDoubleAspectGrid draws the full square aspect table of a dual
// wheel: first-subject points along the bottom edge, second-subject
// points up the left edge, and one cell per ordered pair.
func drawDoubleAspectGrid(settings *astro.Settings, active []astro.ChartPoint, aspects []astro.AspectEdge, xIndent, yIndent float64) string {
	var buf bytes.Buffer
	style := gridBoxStyle()

	reversed := make([]astro.ChartPoint, len(active))
	for i, p := range active {
		reversed[len(active)-1-i] = p
	}

	x, y := xIndent, yIndent
	for _, p := range reversed {
		sp, ok := settings.PointByName(p.Name)
		if !ok {
			continue
		}
		fmt.Fprintf(&buf, `<rect x="%s" y="%s" width="%s" height="%s" style="%s"/>`,
			fnum(x), fnum(y), fnum(gridBoxSize), fnum(gridBoxSize), style)
		fmt.Fprintf(&buf, `<use transform="scale(0.4)" x="%s" y="%s" xlink:href="#%s"/>`,
			fnum((x+2)*2.5), fnum((y+1)*2.5), sp.Name)
		x += gridBoxSize
	}

	x, y = xIndent-gridBoxSize, yIndent-gridBoxSize
	for _, p := range reversed {
		sp, ok := settings.PointByName(p.Name)
		if !ok {
			continue
		}
		fmt.Fprintf(&buf, `<rect x="%s" y="%s" width="%s" height="%s" style="%s"/>`,
			fnum(x), fnum(y), fnum(gridBoxSize), fnum(gridBoxSize), style)
		fmt.Fprintf(&buf, `<use transform="scale(0.4)" x="%s" y="%s" xlink:href="#%s"/>`,
			fnum((x+2)*2.5), fnum((y+1)*2.5), sp.Name)
		y -= gridBoxSize
	}

	y = yIndent - gridBoxSize
	for _, pa := range reversed {
		xa, ya := xIndent, y
		y -= gridBoxSize

		for _, pb := range reversed {
			fmt.Fprintf(&buf, `<rect x="%s" y="%s" width="%s" height="%s" style="%s"/>`,
				fnum(xa), fnum(ya), fnum(gridBoxSize), fnum(gridBoxSize), style)
			xa += gridBoxSize

			for _, e := range aspects {
				if e.P1 == pa.ID && e.P2 == pb.ID {
					fmt.Fprintf(&buf, `<use x="%s" y="%s" xlink:href="#orb%d"/>`,
						fnum(xa-gridBoxSize+1), fnum(ya+1), e.Degrees)
				}
			}
		}
	}
	return buf.String()
}

// Column layout of the dual-wheel aspect list.
const (
	aspectsPerColumn = 14
	aspectColumnW    = 100.0
	aspectLineH      = 14.0
	aspectMaxColumns = 6
)

// drawDoubleChartAspectList draws the dual-wheel aspect list: glyph pair,
// class icon and orb per row, filling columns top to bottom. When the
// list overflows the last column the overflow rows shift upward instead
// of running off the canvas.
func drawDoubleChartAspectList(title string, aspects []astro.AspectEdge, settings *astro.Settings) string {
	var buf bytes.Buffer
	buf.WriteString(`<g transform="translate(565,273)">`)
	fmt.Fprintf(&buf,
		`<text y="-15" x="0" style="fill: %s; font-size: 14px;">%s:</text>`,
		gridFill, title)

	for i, e := range aspects {
		col := i / aspectsPerColumn
		xPos := float64(col) * aspectColumnW
		yPos := float64(i%aspectsPerColumn) * aspectLineH

		if col >= aspectMaxColumns {
			overflow := len(aspects) - aspectsPerColumn*aspectMaxColumns
			if overflow > 0 {
				yPos -= float64(overflow) * aspectLineH
			}
		}

		degrees := e.Degrees
		if s, ok := settings.AspectByName(e.Aspect); ok {
			degrees = s.Degree
		}

		fmt.Fprintf(&buf, `<g transform="translate(%s,%s)">`, fnum(xPos), fnum(yPos))
		fmt.Fprintf(&buf, `<use transform="scale(0.4)" x="0" y="3" xlink:href="#%s"/>`, e.P1Name)
		fmt.Fprintf(&buf, `<use x="15" y="0" xlink:href="#orb%d"/>`, degrees)
		fmt.Fprintf(&buf, `<g transform="translate(30,0)"><use transform="scale(0.4)" x="0" y="3" xlink:href="#%s"/></g>`, e.P2Name)
		fmt.Fprintf(&buf,
			`<text y="8" x="45" style="fill: %s; font-size: 10px;">%s</text>`,
			gridFill, astro.FormatDegrees(e.Orbit, astro.DegreeMinute))
		buf.WriteString(`</g>`)
	}

	buf.WriteString(`</g>`)
	return buf.String()
}

// planetGridWrapRow is the row at which a long point list folds into a
// second column to the left of the grid anchor.
const planetGridWrapRow = 22

// drawPlanetGrid draws one subject's point table: label, glyph, degrees
// within sign, sign glyph and a retrograde marker where applicable.
func drawPlanetGrid(title string, points []astro.ChartPoint, settings *astro.Settings, xPos float64) string {
	var buf bytes.Buffer

	if title != "" {
		fmt.Fprintf(&buf,
			`<g transform="translate(%s, 15)"><text style="fill:%s; font-size: 14px;">%s</text></g>`,
			fnum(xPos), gridFill, title)
	}

	lineHeight := 10.0
	offset := 0.0
	for i, p := range points {
		if i == planetGridWrapRow {
			lineHeight = 10
			offset = -125
		}
		setting, ok := settings.PointByName(p.Name)
		if !ok {
			continue
		}

		fmt.Fprintf(&buf, `<g transform="translate(%s,%s)">`, fnum(xPos+offset), fnum(30+lineHeight))
		fmt.Fprintf(&buf,
			`<text text-anchor="end" style="fill:%s; font-size: 10px;">%s</text>`,
			gridFill, setting.Label)
		fmt.Fprintf(&buf,
			`<g transform="translate(5,-8)"><use transform="scale(0.4)" xlink:href="#%s"/></g>`,
			setting.Name)
		fmt.Fprintf(&buf,
			`<text text-anchor="start" x="19" style="fill:%s; font-size: 10px;">%s</text>`,
			gridFill, astro.FormatDegrees(p.Position, astro.DegreeMinute))
		fmt.Fprintf(&buf,
			`<g transform="translate(60,-8)"><use transform="scale(0.3)" xlink:href="#%s"/></g>`,
			p.Sign)
		if p.Retrograde {
			buf.WriteString(`<g transform="translate(74,-6)"><use transform="scale(.5)" xlink:href="#retrograde"/></g>`)
		}
		buf.WriteString(`</g>`)
	}
	return buf.String()
}

// drawHouseGrid draws one subject's cusp table at a fixed column. Cusp
// numbers below ten are padded with non-breaking spaces so the colons
// line up.
func drawHouseGrid(houses []astro.HouseCusp, xPos float64) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<g transform="translate(%s,30)">`, fnum(xPos))

	lineIncrement := 10.0
	for _, h := range sortedHouses(houses) {
		number := fmt.Sprintf("%d", h.Number)
		if h.Number < 10 {
			number = "&#160;&#160;" + number
		}
		fmt.Fprintf(&buf, `<g transform="translate(0,%s)">`, fnum(lineIncrement))
		fmt.Fprintf(&buf,
			`<text text-anchor="end" x="40" style="fill:%s; font-size: 10px;">Cusp %s:</text>`,
			gridFill, number)
		fmt.Fprintf(&buf,
			`<g transform="translate(40,-8)"><use transform="scale(0.3)" xlink:href="#%s"/></g>`,
			h.Sign)
		fmt.Fprintf(&buf,
			`<text x="53" style="fill:%s; font-size: 10px;"> %s</text>`,
			gridFill, astro.FormatDegrees(h.Position, astro.DegreeMinute))
		buf.WriteString(`</g>`)
		lineIncrement += 14
	}

	buf.WriteString(`</g>`)
	return buf.String()
}

// houseNumberFor locates the house containing an absolute position by
// walking the cusp intervals, wrap included.
func houseNumberFor(absPos float64, houses []astro.HouseCusp) int {
	ordered := sortedHouses(houses)
	for i, h := range ordered {
		next := ordered[(i+1)%len(ordered)]
		span := astro.NormalizeDegree(next.AbsPos - h.AbsPos)
		into := astro.NormalizeDegree(absPos - h.AbsPos)
		if span > 0 && into < span {
			return h.Number
		}
	}
	return 0
}

// drawHouseComparisonGrid draws the return-chart house comparison: for
// each return point, the house it occupies in the return wheel and the
// house it projects into in the radix wheel.
func drawHouseComparisonGrid(chart *astro.Chart, settings *astro.Settings) string {
	var buf bytes.Buffer
	buf.WriteString(`<g transform="translate(1030,0)">`)
	fmt.Fprintf(&buf,
		`<text text-anchor="start" x="0" y="-15" style="fill:%s; font-size: 14px;">House Position Comparison</text>`,
		gridFill)

	lineIncrement := 10.0
	fmt.Fprintf(&buf,
		`<g transform="translate(0,%s)">`+
			`<text text-anchor="start" x="0" style="fill:%s; font-weight: bold; font-size: 10px;">Return Point</text>`+
			`<text text-anchor="start" x="77" style="fill:%s; font-weight: bold; font-size: 10px;">Return</text>`+
			`<text text-anchor="start" x="132" style="fill:%s; font-weight: bold; font-size: 10px;">Radix</text>`+
			`</g>`,
		fnum(lineIncrement), gridFill, gridFill, gridFill)
	lineIncrement += 15

	for _, p := range settings.ActivePoints(chart.Second) {
		setting, ok := settings.PointByName(p.Name)
		if !ok {
			continue
		}
		returnHouse := houseNumberFor(p.AbsPos, chart.Second.Houses)
		radixHouse := houseNumberFor(p.AbsPos, chart.First.Houses)

		fmt.Fprintf(&buf, `<g transform="translate(0,%s)">`, fnum(lineIncrement))
		fmt.Fprintf(&buf,
			`<g transform="translate(0,-9)"><use transform="scale(0.4)" xlink:href="#%s"/></g>`,
			setting.Name)
		fmt.Fprintf(&buf,
			`<text text-anchor="start" x="15" style="fill:%s; font-size: 10px;">%s</text>`,
			gridFill, setting.Label)
		fmt.Fprintf(&buf,
			`<text text-anchor="start" x="90" style="fill:%s; font-size: 10px;">%d</text>`,
			gridFill, returnHouse)
		fmt.Fprintf(&buf,
			`<text text-anchor="start" x="140" style="fill:%s; font-size: 10px;">%d</text>`,
			gridFill, radixHouse)
		buf.WriteString(`</g>`)
		lineIncrement += 12
	}

	buf.WriteString(`</g>`)
	return buf.String()
}
