// Package wheel renders astrological charts as radial SVG wheels.
//
// The renderer takes a fully computed chart (celestial point positions,
// house cusps, aspects) and assembles an SVG document from geometry
// fragments: the zodiac ring, structural circles, house cusps, aspect
// chords, placed point glyphs, and the tabular side grids. Positions are
// never calculated here; ephemeris math happens upstream.
//
// Layout decisions (how crowded glyphs spread around the ring) live in
// the layout subpackage. Themes and SVG post-processing live in the
// styles subpackage. This package is the drawing and assembly layer:
//
//	svg, err := wheel.Render(chart, wheel.Options{Theme: styles.ThemeClassic})
//
// Rendering is pure and synchronous. The only mutable state is the
// per-render aspect icon tracker, created inside Render and discarded
// with the call.
package wheel
