package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/astrowheel/astrowheel/pkg/astro"
)

// ReadChart decodes a JSON chart document from r.
//
// The input must be a JSON object with a "mode" and a "first" subject:
//
//	{
//	  "mode": "Natal",
//	  "first": {
//	    "name": "John",
//	    "lat": 53.4, "lng": -2.98,
//	    "local_time": "1940-10-09T18:30:00+01:00",
//	    "points": [...], "houses": [...]
//	  }
//	}
//
// Dual modes (Transit, Synastry, DualReturn, ExternalNatal) also require a
// "second" subject. Aspect edges are optional; charts without them render
// an empty aspect layer.
//
// ReadChart returns an error if:
//   - The JSON is malformed or contains unknown fields
//   - The chart fails validation (missing houses, out-of-range degrees,
//     missing second subject for a dual mode)
//
// Errors are wrapped with context. The returned chart is independent of r
// and can be modified safely. ReadChart does not close r.
func ReadChart(r io.Reader) (*astro.Chart, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var chart astro.Chart
	if err := dec.Decode(&chart); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := astro.ValidateChart(&chart); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	return &chart, nil
}

// ImportChart reads a JSON chart document at path.
//
// ImportChart opens the file, decodes it using [ReadChart], and closes the
// file. Errors wrap the underlying cause with the file path for context.
func ImportChart(path string) (*astro.Chart, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	chart, err := ReadChart(f)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}
	return chart, nil
}
