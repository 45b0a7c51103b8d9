package layout

import (
	"github.com/astrowheel/astrowheel/pkg/astro"
	"github.com/astrowheel/astrowheel/pkg/errors"
)

// Wheel is the complete computed layout for one chart render: geometry,
// rotation and per-ring glyph placements. It carries everything the
// drawing pass needs besides the chart data itself and marshals cleanly
// for caching.
type Wheel struct {
	Geometry  Geometry       `json:"geometry"`
	Rotation  float64        `json:"rotation"`
	Primary   RingPlacement  `json:"primary"`
	Secondary *RingPlacement `json:"secondary,omitempty"`
}

// SeventhCusp is the rotation source: the primary subject's seventh house
// cusp, which RotationOffset turns into the shared ring rotation.
func (w *Wheel) SeventhCusp() float64 {
	return 360 - w.Rotation
}

// RimPoints is the active point set for the outer ring of a dual wheel.
// Transit charts drop the moving subject's house name points from the rim,
// where they would only restate the cusp lines.
func RimPoints(chart *astro.Chart, settings *astro.Settings) []astro.ChartPoint {
	active := settings.ActivePoints(chart.Second)
	if chart.Mode != astro.ModeTransit {
		return active
	}
	kept := active[:0:0]
	for _, p := range active {
		if astro.IsHouseName(p.Name) {
			continue
		}
		kept = append(kept, p)
	}
	return kept
}

// Build computes the layout for every ring of a chart. Dual-wheel modes
// place the second subject on the rim ring; single modes place only the
// first subject. The active point set comes from the settings tables.
func Build(chart *astro.Chart, settings *astro.Settings) (*Wheel, error) {
	geo, err := GeometryFor(chart.Mode)
	if err != nil {
		return nil, err
	}
	if err := geo.Validate(); err != nil {
		return nil, err
	}
	cusp, ok := chart.First.House(7)
	if !ok {
		return nil, errors.New(errors.ErrCodeConfiguration, "chart %q has no seventh house cusp to rotate by", chart.First.Name)
	}

	seventh := cusp.AbsPos
	w := &Wheel{
		Geometry: geo,
		Rotation: RotationOffset(seventh),
		Primary:  PlaceRing(settings.ActivePoints(&chart.First), TierFor(chart.Mode, RingPrimary)),
	}

	if chart.Mode.IsDualWheel() {
		if chart.Second == nil {
			return nil, errors.New(errors.ErrCodeInvalidMode, "chart mode %q needs a second subject", chart.Mode)
		}
		rim := PlaceRing(RimPoints(chart, settings), TierFor(chart.Mode, RingSecondary))
		w.Secondary = &rim
	}
	return w, nil
}
