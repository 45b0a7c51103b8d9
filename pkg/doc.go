// Package pkg provides the core libraries for Astrowheel chart rendering.
//
// # Overview
//
// Astrowheel renders precomputed astrological chart documents as zodiac
// wheel visualizations. The pkg directory is organized into five main areas:
//
//  1. [astro] - Domain model (charts, points, aspects, settings, validation)
//  2. [render] - Visualization (wheel SVG, aspect network, raster conversion)
//  3. [pipeline] - Orchestration (load → layout → render)
//  4. [cache] / [store] - Infrastructure (artifact caching, chart persistence)
//  5. [io] - Chart document serialization
//
// # Architecture
//
// The typical data flow through Astrowheel:
//
//	Chart Document (JSON)
//	         ↓
//	    [io] package (decode + validate)
//	         ↓
//	    [render/wheel/layout] package (glyph placement + geometry)
//	         ↓
//	    [render/wheel] package (SVG assembly)
//	         ↓
//	    SVG/PNG/JSON/DOT output
//
// # Quick Start
//
// Load a chart document and render a wheel:
//
//	import (
//	    "github.com/astrowheel/astrowheel/pkg/io"
//	    "github.com/astrowheel/astrowheel/pkg/render/wheel"
//	)
//
//	// 1. Load and validate the chart
//	chart, _ := io.ImportChart("natal.json")
//
//	// 2. Render to SVG
//	svg, _ := wheel.Render(chart, wheel.Options{Theme: "classic"})
//
// Or run the full cached pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, _ := runner.Execute(ctx, pipeline.Options{
//	    ChartPath: "natal.json",
//	    Formats:   []string{"svg", "png"},
//	})
//
// # Main Packages
//
// ## Domain Model
//
// [astro] - Chart documents, subjects, points, house cusps, aspects, and the
// point/aspect settings tables (TOML-loadable with compiled-in defaults).
// Includes validation and sexagesimal degree formatting.
//
// ## Visualization
//
// [render/wheel] - The zodiac wheel SVG renderer: zodiac ring, house cusps,
// point glyphs, aspect lines, degree rings, lunar phase medallion, captions,
// and the sidebar grids. Single and dual wheel modes.
//
//   - [render/wheel/layout]: Glyph placement, overlap scattering, ring geometry
//   - [render/wheel/styles]: Embedded CSS themes, variable inlining, minify
//
// [render/aspectnet] - Aspect network diagrams (points as nodes, aspects as
// edges) emitted as DOT and rendered with Graphviz.
//
// [render] - Top-level utilities for format conversion (SVG to PNG).
//
// ## Infrastructure
//
// [pipeline] - Complete rendering pipeline (load → layout → render) used by
// the CLI and the HTTP service. Ensures consistent behavior across entry
// points, with per-stage content-hash caching.
//
// [cache] - Artifact caching with file, Redis, and null backends plus
// content-hash key builders.
//
// [store] - Chart document persistence with file and MongoDB backends.
//
// [io] - Chart document JSON import/export with strict validation.
//
// [observability] - Hook interfaces for render, cache, and store events with
// no-op defaults.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                   # All tests
//	go test ./pkg/render/wheel/...      # Specific package
//	go test -run Example                # Examples only
//
// [astro]: https://pkg.go.dev/github.com/astrowheel/astrowheel/pkg/astro
// [render]: https://pkg.go.dev/github.com/astrowheel/astrowheel/pkg/render
// [render/wheel]: https://pkg.go.dev/github.com/astrowheel/astrowheel/pkg/render/wheel
// [render/wheel/layout]: https://pkg.go.dev/github.com/astrowheel/astrowheel/pkg/render/wheel/layout
// [render/wheel/styles]: https://pkg.go.dev/github.com/astrowheel/astrowheel/pkg/render/wheel/styles
// [render/aspectnet]: https://pkg.go.dev/github.com/astrowheel/astrowheel/pkg/render/aspectnet
// [pipeline]: https://pkg.go.dev/github.com/astrowheel/astrowheel/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/astrowheel/astrowheel/pkg/cache
// [store]: https://pkg.go.dev/github.com/astrowheel/astrowheel/pkg/store
// [io]: https://pkg.go.dev/github.com/astrowheel/astrowheel/pkg/io
// [observability]: https://pkg.go.dev/github.com/astrowheel/astrowheel/pkg/observability
package pkg
