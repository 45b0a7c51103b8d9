package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/astrowheel/astrowheel/pkg/astro"
	chartio "github.com/astrowheel/astrowheel/pkg/io"
	"github.com/astrowheel/astrowheel/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output    string   // output file path (or base path for multiple formats)
	formats   []string // output formats: "svg", "png", "json", "dot"
	theme     string   // color theme name
	cssFile   string   // stylesheet file injected instead of a theme
	inlineCSS bool     // bake colors into attributes for CSS-less consumers
	minify    bool     // collapse inter-tag whitespace
	wheelOnly bool     // wheel without captions or grids
	gridOnly  bool     // aspect grid without the wheel
	detailed  bool     // positions and orbs in the aspect network
	scale     float64  // raster scale factor
	settings  string   // TOML settings file overriding the built-in tables
	noCache   bool     // bypass the artifact cache entirely
	refresh   bool     // re-read the chart document even when cached
}

// renderCommand creates the render command for generating chart visualizations.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{
		theme: pipeline.DefaultTheme,
		scale: pipeline.DefaultPNGScale,
	}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a chart document to SVG and friends",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple), '-' for stdout")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, json, dot (comma-separated)")
	cmd.Flags().StringVar(&opts.theme, "theme", opts.theme, "color theme: classic (default), dark, light")
	cmd.Flags().StringVar(&opts.cssFile, "css", "", "stylesheet file injected instead of a theme")
	cmd.Flags().BoolVar(&opts.inlineCSS, "inline-css", false, "bake theme colors into presentation attributes")
	cmd.Flags().BoolVar(&opts.minify, "minify", false, "collapse whitespace in SVG output")
	cmd.Flags().BoolVar(&opts.wheelOnly, "wheel-only", false, "render the wheel without captions or grids")
	cmd.Flags().BoolVar(&opts.gridOnly, "grid-only", false, "render only the aspect grid")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "positions and orbs in dot output")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "raster scale factor for png")
	cmd.Flags().StringVar(&opts.settings, "settings", "", "TOML settings file overriding the point and aspect tables")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-read the chart document even when cached")

	return cmd
}

// runRender executes the pipeline for the given chart document and writes
// every requested format.
func (c *CLI) runRender(cmd *cobra.Command, input string, opts *renderOpts) error {
	logger := loggerFromContext(cmd.Context())

	pipeOpts, err := buildPipelineOptions(input, opts)
	if err != nil {
		return err
	}
	pipeOpts.Logger = logger
	if pipeOpts.Theme == "" && pipeOpts.CSS == "" {
		printWarning("No theme selected; SVG output references unresolved CSS variables")
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	result, err := runner.Execute(cmd.Context(), *pipeOpts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d format(s)", len(opts.formats)))

	printSuccess("Rendered %s", filepath.Base(input))
	printStats(result.Stats.PointCount, result.Stats.AspectCount, result.CacheInfo.RenderHit)

	if opts.output == "-" {
		if len(opts.formats) != 1 {
			return fmt.Errorf("stdout output requires a single format")
		}
		return chartio.ExportArtifact(result.Artifacts[opts.formats[0]], "-")
	}

	base := basePath(opts.output, input)
	for _, format := range opts.formats {
		path := opts.output
		if path == "" || len(opts.formats) > 1 {
			path = base + "." + format
		}
		if err := chartio.ExportArtifact(result.Artifacts[format], path); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	return nil
}

// buildPipelineOptions translates CLI flags into pipeline options.
func buildPipelineOptions(input string, opts *renderOpts) (*pipeline.Options, error) {
	pipeOpts := &pipeline.Options{
		ChartPath: input,
		Refresh:   opts.refresh,
		Formats:   opts.formats,
		Theme:     opts.theme,
		InlineCSS: opts.inlineCSS,
		Minify:    opts.minify,
		WheelOnly: opts.wheelOnly,
		GridOnly:  opts.gridOnly,
		Detailed:  opts.detailed,
		PNGScale:  opts.scale,
	}

	if opts.cssFile != "" {
		css, err := os.ReadFile(opts.cssFile)
		if err != nil {
			return nil, fmt.Errorf("read stylesheet %s: %w", opts.cssFile, err)
		}
		pipeOpts.CSS = string(css)
		pipeOpts.Theme = ""
	}

	if opts.settings != "" {
		settings, err := astro.LoadSettings(opts.settings)
		if err != nil {
			return nil, err
		}
		pipeOpts.Settings = settings
	}

	if err := pipeOpts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	return pipeOpts, nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input. If output has a
// format extension (.svg, .png, ...), it strips that extension. This is used
// when generating multiple files (e.g., chart.svg, chart.png).
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
