package layout

import (
	"fmt"

	"github.com/astrowheel/astrowheel/pkg/astro"
	"github.com/astrowheel/astrowheel/pkg/errors"
)

// Dimensions shared by every chart mode.
const (
	DefaultMainRadius = 240
	DefaultHeight     = 550
)

// Document widths per chart mode.
const (
	singleWidth     = 870
	transitWidth    = 1250
	synastryWidth   = 1570
	dualReturnWidth = 1320
)

// Dual-wheel charts draw their structural rings at fixed insets instead of
// the per-mode circle table.
const (
	DualFirstInset  = 36
	DualSecondInset = 72
	DualThirdInset  = 160
)

// Geometry fixes the pixel dimensions of one rendered chart.
type Geometry struct {
	Mode       astro.Mode `json:"mode"`
	MainRadius float64    `json:"main_radius"`
	Width      float64    `json:"width"`
	Height     float64    `json:"height"`

	// Concentric circle insets from the rim, outermost first.
	C1 float64 `json:"c1"`
	C2 float64 `json:"c2"`
	C3 float64 `json:"c3"`
}

// GeometryFor returns the geometry table for a chart mode.
func GeometryFor(mode astro.Mode) (Geometry, error) {
	g := Geometry{
		Mode:       mode,
		MainRadius: DefaultMainRadius,
		Height:     DefaultHeight,
		C1:         0,
		C2:         36,
		C3:         120,
	}

	switch mode {
	case astro.ModeNatal, astro.ModeComposite, astro.ModeSingleReturn:
		g.Width = singleWidth
	case astro.ModeExternalNatal:
		g.Width = singleWidth
		g.C1, g.C2, g.C3 = 56, 92, 112
	case astro.ModeTransit:
		g.Width = transitWidth
	case astro.ModeSynastry:
		g.Width = synastryWidth
	case astro.ModeDualReturn:
		g.Width = dualReturnWidth
	default:
		return Geometry{}, errors.New(errors.ErrCodeInvalidMode, "no geometry for chart mode %q", mode)
	}
	return g, nil
}

// Validate reports a configuration error for dimensions no chart can be
// drawn with.
func (g Geometry) Validate() error {
	if g.MainRadius <= 0 {
		return errors.New(errors.ErrCodeConfiguration, "main radius must be positive, got %v", g.MainRadius)
	}
	if g.Width <= 0 || g.Height <= 0 {
		return errors.New(errors.ErrCodeConfiguration, "chart size %vx%v is not drawable", g.Width, g.Height)
	}
	return nil
}

// AspectRadius is the radius of the circle aspect chords attach to.
func (g Geometry) AspectRadius() float64 {
	if g.Mode.IsDualWheel() {
		return g.MainRadius - DualThirdInset
	}
	return g.MainRadius - g.C3
}

// ViewBox is the SVG viewBox of the full chart document.
func (g Geometry) ViewBox() string {
	return fmt.Sprintf("0 0 %d %d", int(g.Width), int(g.Height))
}

// WheelViewBox frames only the wheel, which the templates draw inside a
// group translated by (50, 50), plus a small margin.
func (g Geometry) WheelViewBox() string {
	const margin = 20
	side := 2*g.MainRadius + 2*margin
	return fmt.Sprintf("%d %d %d %d", 50-margin, 50-margin, int(side), int(side))
}

// GridViewBox frames only the aspect grid, drawn at (50, 250) with 14px
// cells. Dual modes draw a full table with a header column on the left;
// single modes draw a triangle.
func (g Geometry) GridViewBox(activePoints int) string {
	const (
		x0     = 50
		y0     = 250
		box    = 14
		margin = 10
	)

	n := activePoints
	if n < 1 {
		n = 1
	}

	left := x0 - margin
	if g.Mode.IsDualWheel() {
		left = x0 - box - margin
	}
	top := y0 - box*n - margin
	right := x0 + box*n + margin
	bottom := y0 + box + margin

	width := right - left
	if width < 1 {
		width = 1
	}
	height := bottom - top
	if height < 1 {
		height = 1
	}
	return fmt.Sprintf("%d %d %d %d", left, top, width, height)
}
