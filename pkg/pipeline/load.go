package pipeline

import (
	"fmt"
	"os"
	"strings"

	"github.com/astrowheel/astrowheel/pkg/astro"
	chartio "github.com/astrowheel/astrowheel/pkg/io"
)

// Load reads and validates a chart document from the configured source.
// Inline JSON takes precedence over a file path.
func Load(opts Options) (*astro.Chart, error) {
	if opts.ChartJSON != "" {
		chart, err := chartio.ReadChart(strings.NewReader(opts.ChartJSON))
		if err != nil {
			return nil, fmt.Errorf("inline chart: %w", err)
		}
		return chart, nil
	}
	return chartio.ImportChart(opts.ChartPath)
}

// loadSource returns the raw document bytes for cache keying. The load
// stage is keyed by the source content, not the path, so a moved file
// still hits.
func loadSource(opts Options) ([]byte, error) {
	if opts.ChartJSON != "" {
		return []byte(opts.ChartJSON), nil
	}
	data, err := os.ReadFile(opts.ChartPath)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", opts.ChartPath, err)
	}
	return data, nil
}
