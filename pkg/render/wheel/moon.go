package wheel

import (
	"bytes"
	"fmt"

	"github.com/astrowheel/astrowheel/pkg/astro"
)

// moonPhaseParams computes the overlay circle of the lunar phase
// medallion from the Sun-Moon separation. The base disc sits at
// (20, 10) with radius 10; the overlay circle slides across it to carve
// the lit portion, quadrant by quadrant. Near the new and full moon the
// overlay radius grows quadratically so the terminator flattens out.
func moonPhaseParams(deg float64) (centerX, radius float64, ok bool) {
	switch {
	case deg < 90:
		maxR := deg
		if deg > 80 {
			maxR = maxR * maxR
		}
		return 20 + deg/90*(maxR+10), 10 + deg/90*maxR, true
	case deg < 180:
		maxR := 180 - deg
		if deg < 100 {
			maxR = maxR * maxR
		}
		return 20 + (deg-90)/90*(maxR+10) - (maxR + 10), 10 + maxR - (deg-90)/90*maxR, true
	case deg < 270:
		maxR := deg - 180
		if deg > 260 {
			maxR = maxR * maxR
		}
		return 20 + (deg-180)/90*(maxR+10), 10 + (deg-180)/90*maxR, true
	case deg < 361:
		maxR := 360 - deg
		if deg < 280 {
			maxR = maxR * maxR
		}
		return 20 + (deg-270)/90*(maxR+10) - (maxR + 10), 10 + maxR - (deg-270)/90*maxR, true
	}
	return 0, 0, false
}

// drawLunarPhase draws the phase medallion for the first subject. The
// whole group rotates with the subject's latitude so the terminator
// leans the way an observer there would see it. Charts without phase
// data render nothing.
func drawLunarPhase(chart *astro.Chart) string {
	phase := chart.First.LunarPhase
	if phase == nil {
		return ""
	}
	cx, radius, ok := moonPhaseParams(phase.DegreesBetweenSunMoon)
	if !ok {
		return ""
	}
	rotate := -90.0 - chart.First.Lat

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<g transform="rotate(%s 20 10)">`, fnum(rotate))
	buf.WriteString(`<defs><clipPath id="moonPhaseCutOffCircle"><circle cx="20" cy="10" r="10"/></clipPath></defs>`)
	buf.WriteString(`<circle cx="20" cy="10" r="10" style="fill: var(--astrowheel-chart-color-lunar-phase-0)"/>`)
	fmt.Fprintf(&buf,
		`<circle cx="%s" cy="10" r="%s" style="fill: var(--astrowheel-chart-color-lunar-phase-1)" clip-path="url(#moonPhaseCutOffCircle)"/>`,
		fnum(cx), fnum(radius))
	buf.WriteString(`<circle cx="20" cy="10" r="10" style="fill: none; stroke: var(--astrowheel-chart-color-lunar-phase-0); stroke-width: 0.5px; stroke-opacity: 0.5"/>`)
	buf.WriteString(`</g>`)
	return buf.String()
}
