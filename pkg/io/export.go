package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/astrowheel/astrowheel/pkg/astro"
)

// WriteChart encodes a chart document as indented JSON and writes it to w.
// The output can be re-imported with [ReadChart] for round-trip processing.
func WriteChart(chart *astro.Chart, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(chart); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportChart writes a chart document to a JSON file at path.
// This is a convenience wrapper around [WriteChart] for file-based output.
func ExportChart(chart *astro.Chart, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteChart(chart, f)
}

// ExportArtifact writes a rendered artifact (SVG, PNG, DOT or serialized
// layout) to path. "-" writes to stdout.
func ExportArtifact(data []byte, path string) error {
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
