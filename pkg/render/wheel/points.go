package wheel

import (
	"bytes"
	"fmt"

	"github.com/astrowheel/astrowheel/pkg/astro"
	"github.com/astrowheel/astrowheel/pkg/render/wheel/layout"
)

// glyphScale returns the symbol scale for the main ring. Crowded layouts
// shrink the glyphs slightly.
func glyphScale(mode astro.Mode) float64 {
	if mode.IsDualWheel() || mode == astro.ModeExternalNatal {
		return 0.8
	}
	return 1.0
}

// drawPoints draws the chart point glyphs for every ring and, for dual
// wheels, the rim degree labels. It returns the glyph fragment and the
// degree label fragment separately so the template can stack the labels
// above everything else.
func drawPoints(chart *astro.Chart, settings *astro.Settings, w *layout.Wheel) (string, string) {
	var buf bytes.Buffer
	seventh := w.SeventhCusp()
	geo := w.Geometry
	r := geo.MainRadius

	active := settings.ActivePoints(&chart.First)
	scale := glyphScale(chart.Mode)

	for e, pl := range w.Primary.Points {
		point := active[pl.Index]
		setting, ok := settings.PointByName(point.Name)
		if !ok {
			continue
		}
		inset := w.Primary.Insets[e]

		offset := layout.GlyphOffset(seventh, pl.AbsPos, pl.Delta)
		pos := layout.RingPoint(r, inset, offset)

		if chart.Mode == astro.ModeExternalNatal {
			// Pointer from the wheel body out to the displaced glyph:
			// a faint radial stem plus a brighter elbow that absorbs
			// the spacing adjustment.
			trueOffset := layout.GlyphOffset(seventh, pl.AbsPos, 0)
			stem1 := layout.RingPoint(r, geo.C3, trueOffset)
			stem2 := layout.RingPoint(r, inset+30, trueOffset)
			elbow := layout.RingPoint(r, inset+10, offset)
			fmt.Fprintf(&buf,
				`<line x1="%s" y1="%s" x2="%s" y2="%s" style="stroke-width:1px;stroke:%s;stroke-opacity:.3;"/>`,
				fnum(stem1.X), fnum(stem1.Y), fnum(stem2.X), fnum(stem2.Y), setting.Color)
			fmt.Fprintf(&buf,
				`<line x1="%s" y1="%s" x2="%s" y2="%s" style="stroke-width:1px;stroke:%s;stroke-opacity:.5;"/>`,
				fnum(stem2.X), fnum(stem2.Y), fnum(elbow.X), fnum(elbow.Y), setting.Color)
		}

		fmt.Fprintf(&buf,
			`<g kr:node="ChartPoint" kr:house="%s" kr:sign="%s" kr:slug="%s" transform="translate(-%s,-%s) scale(%s)">`,
			point.House, point.Sign, point.Name,
			fnum(12*scale), fnum(12*scale), fnum(scale))
		fmt.Fprintf(&buf,
			`<use x="%s" y="%s" xlink:href="#%s"/>`,
			fnum(pos.X/scale), fnum(pos.Y/scale), setting.Name)
		buf.WriteString(`</g>`)
	}

	var degreeText string
	if chart.Mode.IsDualWheel() && w.Secondary != nil && chart.Second != nil {
		degreeText = drawRimPoints(&buf, chart, settings, w)
	}
	return buf.String(), degreeText
}

// drawRimPoints draws the outer ring of a dual wheel: half-scale glyphs,
// a short tick across the rim for each point, and rotated degree labels.
// The labels go into their own fragment, returned to the caller.
func drawRimPoints(buf *bytes.Buffer, chart *astro.Chart, settings *astro.Settings, w *layout.Wheel) string {
	seventh := w.SeventhCusp()
	r := w.Geometry.MainRadius
	rim := layout.RimPoints(chart, settings)

	firstHouse, _ := chart.First.House(1)

	positions := make([]float64, len(w.Secondary.Points))
	for i, pl := range w.Secondary.Points {
		positions[i] = pl.AbsPos
	}
	labelShift := layout.LabelOffsets(positions, layout.LabelThreshold)

	var labels bytes.Buffer
	for e, pl := range w.Secondary.Points {
		point := rim[pl.Index]
		setting, ok := settings.PointByName(point.Name)
		if !ok {
			continue
		}
		inset := w.Secondary.Insets[e]
		offset := layout.OuterOffset(seventh, pl.AbsPos)

		pos := layout.RingPoint(r, inset, offset)
		fmt.Fprintf(buf,
			`<g class="transit-planet-name" transform="translate(-6,-6)"><g transform="scale(0.5)"><use x="%s" y="%s" xlink:href="#%s"/></g></g>`,
			fnum(pos.X*2), fnum(pos.Y*2), setting.Name)

		tickOut := layout.RingPoint(r, -3, offset)
		tickIn := layout.RingPoint(r, 3, offset)
		fmt.Fprintf(buf,
			`<line class="transit-planet-line" x1="%s" y1="%s" x2="%s" y2="%s" style="stroke: %s; stroke-width: 1px; stroke-opacity:.8;"/>`,
			fnum(tickOut.X), fnum(tickOut.Y), fnum(tickIn.X), fnum(tickIn.Y), setting.Color)

		// Degree labels rotate with the wheel and flip upright on the
		// left half so they never render upside down.
		rotate := firstHouse.AbsPos - pl.AbsPos
		anchor := "end"
		if rotate < -90 && rotate > -270 {
			rotate += 180
			anchor = "start"
		}
		if rotate < 270 && rotate > 90 {
			rotate -= 180
			anchor = "start"
		}
		xo := 1.0
		if anchor == "start" {
			xo = -1.0
		}

		labelOffset := offset + labelShift[e]
		p := layout.RingPoint(r, -3, labelOffset+xo)
		fmt.Fprintf(&labels, `<g transform="translate(%s,%s)">`, fnum(p.X), fnum(p.Y))
		fmt.Fprintf(&labels,
			`<text transform="rotate(%s)" text-anchor="%s" style="fill: %s; font-size: 10px;">%s</text></g>`,
			fnum(rotate), anchor, setting.Color,
			astro.FormatDegrees(point.Position, astro.DegreeOnly))
	}
	return labels.String()
}
