package layout

import "math"

// Point is a position in SVG user units.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PolarPoint maps a wheel angle onto a circle of the given radius centered
// at (radius, radius). The angle is slice*30 + offset degrees, running
// counter-clockwise with y inverted for screen coordinates. Callers pass
// whole zodiac sectors through slice and fractional degrees through offset.
func PolarPoint(slice, radius, offset float64) Point {
	angle := math.Pi/6*slice + math.Pi*offset/180
	return Point{
		X: radius * (math.Cos(angle) + 1),
		Y: radius * (-math.Sin(angle) + 1),
	}
}

// RingPoint returns the point inset user units inside the rim of a wheel
// with the given outer radius, at offset degrees. The inset shrinks the
// circle and shifts it back so the wheel stays centered at (radius, radius).
func RingPoint(radius, inset, offset float64) Point {
	p := PolarPoint(0, radius-inset, offset)
	return Point{X: p.X + inset, Y: p.Y + inset}
}

// RotationOffset rotates the wheel so the Ascendant axis lies horizontal,
// pointing left. Every ring of a chart shares this rotation.
func RotationOffset(seventhCusp float64) float64 {
	return 360 - seventhCusp
}

// GlyphOffset is the wheel angle of a placed glyph. Cusp and adjusted
// position truncate toward zero independently, keeping glyphs on
// whole-degree rays like the house cusps they sit between.
func GlyphOffset(seventhCusp, absPos, delta float64) float64 {
	return -math.Trunc(seventhCusp) + math.Trunc(absPos+delta)
}

// OuterOffset is the wheel angle of a glyph on the outer ring of a dual
// chart. Unlike GlyphOffset it keeps fractional degrees.
func OuterOffset(seventhCusp, absPos float64) float64 {
	offset := 360 - seventhCusp + absPos
	if offset > 360 {
		offset -= 360
	}
	return offset
}
