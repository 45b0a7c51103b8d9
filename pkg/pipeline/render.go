package pipeline

import (
	"encoding/json"
	"fmt"

	"github.com/astrowheel/astrowheel/pkg/astro"
	"github.com/astrowheel/astrowheel/pkg/render"
	"github.com/astrowheel/astrowheel/pkg/render/aspectnet"
	"github.com/astrowheel/astrowheel/pkg/render/wheel"
	"github.com/astrowheel/astrowheel/pkg/render/wheel/layout"
	"github.com/astrowheel/astrowheel/pkg/render/wheel/styles"
)

// Render generates output artifacts in the requested formats.
// The wheel layout parameter backs the JSON format; passing nil recomputes
// it on demand.
func Render(chart *astro.Chart, w *layout.Wheel, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte)

	// SVG backs PNG conversion, so render it once when either is asked for.
	var svg []byte
	if wantsFormat(opts.Formats, FormatSVG) || wantsFormat(opts.Formats, FormatPNG) {
		doc, err := renderSVG(chart, opts)
		if err != nil {
			return nil, fmt.Errorf("render svg: %w", err)
		}
		svg = []byte(doc)
	}

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = svg
		case FormatPNG:
			data, err = render.ToPNG(svg, opts.PNGScale)
		case FormatJSON:
			if w == nil {
				w, err = GenerateLayout(chart, opts)
				if err != nil {
					return nil, fmt.Errorf("render json: %w", err)
				}
			}
			data, err = json.MarshalIndent(w, "", "  ")
		case FormatDOT:
			var dot string
			dot, err = aspectnet.ToDOT(chart, opts.Settings, aspectnet.Options{
				Detailed: opts.Detailed,
				Theme:    styles.Theme(opts.Theme),
			})
			data = []byte(dot)
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// renderSVG dispatches to the document flavor the options ask for.
func renderSVG(chart *astro.Chart, opts Options) (string, error) {
	wheelOpts := wheel.Options{
		Theme:     styles.Theme(opts.Theme),
		CSS:       opts.CSS,
		InlineCSS: opts.InlineCSS,
		Minify:    opts.Minify,
		Settings:  opts.Settings,
		Logger:    opts.Logger,
	}

	switch {
	case opts.WheelOnly:
		return wheel.RenderWheelOnly(chart, wheelOpts)
	case opts.GridOnly:
		return wheel.RenderAspectGridOnly(chart, wheelOpts)
	default:
		return wheel.Render(chart, wheelOpts)
	}
}

func wantsFormat(formats []string, format string) bool {
	for _, f := range formats {
		if f == format {
			return true
		}
	}
	return false
}
