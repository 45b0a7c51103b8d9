// Package io provides JSON import and export for chart documents.
//
// # Overview
//
// This package enables serialization of pre-computed chart documents to and
// from a simple JSON format. The format is designed for:
//
//   - Decoupling rendering from ephemeris computation: any tool that can
//     produce positions can feed the renderer
//   - Caching of parsed chart data for faster re-rendering
//   - Round-trip preservation: import, render, export, and re-import identically
//
// # JSON Format
//
// A chart document has a mode, one or two subjects, and optional aspects:
//
//	{
//	  "mode": "Transit",
//	  "first": {
//	    "name": "John",
//	    "city": "Liverpool", "nation": "GB",
//	    "lat": 53.4, "lng": -2.98,
//	    "local_time": "1940-10-09T18:30:00+01:00",
//	    "zodiac_type": "Tropic",
//	    "house_system": "Placidus",
//	    "points": [
//	      {"id": 0, "name": "Sun", "sign": "Lib", "abs_pos": 196.5,
//	       "position": 16.5, "house": "Seventh_House"}
//	    ],
//	    "houses": [{"name": "First_House", "abs_pos": 10.0}, ...]
//	  },
//	  "second": {...},
//	  "aspects": [
//	    {"p1_name": "Sun", "p2_name": "Moon", "aspect": "square",
//	     "aspect_degrees": 90, "orbit": 1.2}
//	  ]
//	}
//
// Positions are ecliptic longitudes in degrees. The renderer never computes
// them; documents carry everything the wheel needs.
//
// # Import
//
// Use [ImportChart] to read a chart from a file path, or [ReadChart] to read
// from any io.Reader:
//
//	chart, err := io.ImportChart("natal.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Both functions reject unknown JSON fields and validate the document
// (twelve houses, in-range degrees and coordinates, second subject present
// for dual modes). Errors are wrapped with context about what failed.
//
// # Export
//
// Use [ExportChart] to write a chart to a file, or [WriteChart] to write to
// any io.Writer. [ExportArtifact] writes rendered outputs (SVG, PNG, DOT,
// serialized layouts) to a path or stdout.
//
// # Concurrency
//
// All functions in this package are safe to call concurrently with other
// readers of the same chart, but not with concurrent modifications. The
// [ReadChart] and [ImportChart] functions create independent chart instances
// that can be used and modified freely after import.
package io
