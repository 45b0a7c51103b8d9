package wheel

import (
	"bytes"
	"fmt"
	"math"

	"github.com/astrowheel/astrowheel/pkg/astro"
	"github.com/astrowheel/astrowheel/pkg/render/wheel/layout"
)

// iconCollisionThreshold is the pixel distance under which two icons of
// the same aspect class collapse into one.
const iconCollisionThreshold = 16.0

// conjunctionIconInset pushes a conjunction icon inside the aspect ring,
// since the chord of two near-coincident points has no usable midpoint.
const conjunctionIconInset = 10.0

// renderedIcon is one emitted aspect icon. Icons of the same class are
// compared by pixel distance; different classes never suppress each
// other.
type renderedIcon struct {
	X, Y    float64
	Degrees int
}

// iconTracker accumulates icon positions during a single render pass.
// The tracker is owned by the caller of the drawing functions and
// discarded with the pass; no icon state survives a render.
type iconTracker struct {
	rendered []renderedIcon
}

func newIconTracker() *iconTracker {
	return &iconTracker{}
}

// collides reports whether an icon of the given class would land within
// the collision threshold of an already rendered icon of the same class.
func (t *iconTracker) collides(x, y float64, degrees int) bool {
	for _, r := range t.rendered {
		if r.Degrees != degrees {
			continue
		}
		if math.Hypot(x-r.X, y-r.Y) < iconCollisionThreshold {
			return true
		}
	}
	return false
}

func (t *iconTracker) add(x, y float64, degrees int) {
	t.rendered = append(t.rendered, renderedIcon{X: x, Y: y, Degrees: degrees})
}

// chordEndpoint is where an aspect chord attaches to the aspect ring.
func chordEndpoint(geo layout.Geometry, seventhCusp, absPos float64) layout.Point {
	ar := geo.AspectRadius()
	offset := -math.Trunc(seventhCusp) + math.Trunc(absPos)
	return layout.RingPoint(geo.MainRadius, geo.MainRadius-ar, offset)
}

// drawAspects draws one chord per aspect edge plus a small class icon at
// the chord's midpoint. Icons of the same class within the collision
// threshold collapse to the first one drawn; the chord is always drawn.
// Edges whose class has no configured color are skipped entirely.
func drawAspects(edges []astro.AspectEdge, geo layout.Geometry, seventhCusp float64, settings *astro.Settings, icons *iconTracker) string {
	var buf bytes.Buffer
	buf.WriteString(`<g kr:node="Aspects">`)
	for _, e := range edges {
		setting, ok := settings.AspectByName(e.Aspect)
		if !ok || setting.Color == "" {
			continue
		}

		a := chordEndpoint(geo, seventhCusp, e.P1AbsPos)
		b := chordEndpoint(geo, seventhCusp, e.P2AbsPos)

		fmt.Fprintf(&buf,
			`<g kr:node="Aspect" kr:aspectname="%s" kr:to="%s" kr:from="%s">`,
			e.Aspect, e.P1Name, e.P2Name)

		mx, my := (a.X+b.X)/2, (a.Y+b.Y)/2
		if setting.Degree == 0 {
			// Conjunction endpoints nearly coincide; place the icon
			// along the shared angle, inset from the ring.
			ar := geo.AspectRadius()
			offset := -math.Trunc(seventhCusp) + math.Trunc(e.P1AbsPos)
			p := layout.RingPoint(geo.MainRadius, geo.MainRadius-ar+conjunctionIconInset, offset)
			mx, my = p.X, p.Y
		}

		if !icons.collides(mx, my, setting.Degree) {
			fmt.Fprintf(&buf,
				`<g transform="translate(%s,%s) scale(0.75) translate(-5,-5)"><use xlink:href="#orb%d"/></g>`,
				fnum(mx), fnum(my), setting.Degree)
			icons.add(mx, my, setting.Degree)
		}

		fmt.Fprintf(&buf,
			`<line class="aspect" x1="%s" y1="%s" x2="%s" y2="%s" style="stroke: %s; stroke-width: 1; stroke-opacity: .9;"/>`,
			fnum(a.X), fnum(a.Y), fnum(b.X), fnum(b.Y), setting.Color)
		buf.WriteString(`</g>`)
	}
	buf.WriteString(`</g>`)
	return buf.String()
}
