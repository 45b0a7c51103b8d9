// Package astro provides the core astrological data model: chart subjects,
// celestial points, house cusps, zodiac signs, and aspects.
//
// # Overview
//
// Astrowheel renders precomputed astrological data as wheel charts. This
// package provides the data structures that flow through the pipeline:
// a [Subject] carries the celestial points and house cusps of one chart
// wheel, and a [Chart] combines one or two subjects with a chart [Mode]
// (natal, transit, synastry, and so on).
//
// Ephemeris computation is out of scope. Positions arrive already computed,
// typically imported from JSON, and this package validates and organizes
// them for layout and rendering.
//
// # Celestial Points
//
// Every point carries a stable numeric [PointID] matching the glyph and
// color tables in [Settings]. The identifier, not the position in any
// list, decides how a point is rendered:
//
//	p := astro.ChartPoint{ID: astro.PointSun, Name: "Sun", AbsPos: 120.5, ...}
//	p.ID.IsAxis() // false
//
// Axes (Ascendant, Medium Coeli, Descendant, Imum Coeli) are points like
// any other, distinguished only by [PointID.IsAxis].
//
// # Aspects
//
// [ComputeAspects] and [ComputeDualAspects] find angular relationships
// between active points using the orb windows configured in [Settings].
// Matching walks the aspect table in order and the first window containing
// the integer-truncated angular distance wins.
//
// # Concurrency
//
// All types in this package are plain data. They are safe for concurrent
// reads; callers must synchronize writes.
package astro
