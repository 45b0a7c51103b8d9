// Package render provides visualization rendering for chart documents.
//
// # Overview
//
// This package contains the rendering surfaces that transform chart data
// into visual outputs. It provides:
//
//   - Generic format conversion (SVG to PNG)
//   - The chart wheel renderer (in [wheel] subpackage)
//   - Aspect network diagrams (in [aspectnet] subpackage)
//
// # Format Conversion
//
// The [ToPNG] function converts any SVG to a raster image using the
// external rsvg-convert tool (from librsvg). It is shared by the wheel
// and aspect network renderers.
//
//	svg, err := wheel.Render(chart, opts)
//	png, err := render.ToPNG([]byte(svg), 2.0)  // 2x scale
//
// # Chart Wheels
//
// The [wheel] subpackage renders astrological charts as the traditional
// circular wheel: zodiac ring, house cusps, placed points, aspect chords,
// and the caption and grid furniture around them. This is the primary
// output of the module.
//
// Key wheel subpackages:
//   - [wheel/layout]: Point placement and wheel geometry
//   - [wheel/styles]: Color themes and SVG post-processing
//
// # Aspect Networks
//
// The [aspectnet] subpackage renders a chart's aspects as a graph diagram
// using Graphviz: points appear as nodes joined by aspect edges.
//
//	dot, err := aspectnet.ToDOT(chart, settings, aspectnet.Options{})
//	svg, err := aspectnet.RenderSVG(dot)
//
// [wheel]: github.com/astrowheel/astrowheel/pkg/render/wheel
// [wheel/layout]: github.com/astrowheel/astrowheel/pkg/render/wheel/layout
// [wheel/styles]: github.com/astrowheel/astrowheel/pkg/render/wheel/styles
// [aspectnet]: github.com/astrowheel/astrowheel/pkg/render/aspectnet
package render
