package pipeline

import (
	"github.com/astrowheel/astrowheel/pkg/astro"
	"github.com/astrowheel/astrowheel/pkg/render/wheel/layout"
)

// GenerateLayout places a chart's points on the wheel and returns the
// complete placement: geometry table, rotation, primary ring and (for
// dual charts) the rim ring, with spacing adjustments applied.
//
// The result is the serializable intermediate between loading and
// rendering; the JSON output format exposes it directly.
func GenerateLayout(chart *astro.Chart, opts Options) (*layout.Wheel, error) {
	opts.SetRenderDefaults()
	return layout.Build(chart, opts.Settings)
}
