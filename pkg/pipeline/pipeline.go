// Package pipeline provides the core chart rendering pipeline.
//
// This package implements the complete load → layout → render pipeline that
// can be used by CLI and API components. By centralizing this logic, we
// ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read and validate a chart document (JSON file or inline)
//  2. Layout: Place points on the wheel and compute geometry
//  3. Render: Generate output in various formats (SVG, PNG, JSON, DOT)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    ChartPath: "natal.json",
//	    Theme:     "classic",
//	    Formats:   []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Load only
//	chart, err := runner.Load(ctx, loadOpts)
//
//	// Layout with an existing chart
//	wheel, err := runner.ComputeLayout(ctx, chart, layoutOpts)
//
//	// Render with an existing chart
//	artifacts, err := runner.Render(ctx, chart, renderOpts)
package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/astrowheel/astrowheel/pkg/astro"
	"github.com/astrowheel/astrowheel/pkg/cache"
	"github.com/astrowheel/astrowheel/pkg/render/wheel/layout"
	"github.com/astrowheel/astrowheel/pkg/render/wheel/styles"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultTheme is the default chart color palette.
	DefaultTheme = string(styles.ThemeClassic)

	// DefaultPNGScale is the default raster scale factor. A scale of 2.0
	// produces a 2x resolution image suitable for high-DPI displays.
	DefaultPNGScale = 2.0
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
	FormatDOT  = "dot"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJSON: true,
	FormatDOT:  true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the rendering pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Load options
	ChartPath string `json:"chart_path,omitempty"` // Chart document file
	ChartJSON string `json:"chart_json,omitempty"` // Inline chart document (takes precedence)
	Refresh   bool   `json:"refresh,omitempty"`    // Bypass the load-stage cache

	// Render options
	Formats   []string `json:"formats,omitempty"`
	Theme     string   `json:"theme,omitempty"`
	CSS       string   `json:"css,omitempty"`        // Verbatim stylesheet, overrides Theme
	InlineCSS bool     `json:"inline_css,omitempty"` // Bake colors into attributes
	Minify    bool     `json:"minify,omitempty"`
	WheelOnly bool     `json:"wheel_only,omitempty"` // Render the wheel without captions or grids
	GridOnly  bool     `json:"grid_only,omitempty"`  // Render only the aspect grid
	Detailed  bool     `json:"detailed,omitempty"`   // Positions and orbs in DOT output
	PNGScale  float64  `json:"png_scale,omitempty"`

	// Runtime options (not serialized)
	Logger   *log.Logger     `json:"-"`
	Settings *astro.Settings `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Chart is the loaded chart document.
	Chart *astro.Chart

	// ChartHash is the content hash of the chart.
	ChartHash string

	// Wheel contains the computed placement and geometry.
	Wheel *layout.Wheel

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	PointCount  int
	AspectCount int
	LoadTime    time.Duration
	LayoutTime  time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LoadHit   bool // Whether the chart came from cache
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: svg, png, json, dot)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateTheme checks that a theme is valid. The empty theme is valid and
// leaves color tokens for the host document.
func ValidateTheme(theme string) error {
	if theme != "" && !styles.ValidThemes[styles.Theme(theme)] {
		return fmt.Errorf("invalid theme: %q (must be one of: classic, dark, light)", theme)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks required fields for the load stage.
func (o *Options) ValidateForLoad() error {
	if o.ChartPath == "" && o.ChartJSON == "" {
		return fmt.Errorf("chart_path or chart_json is required")
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Theme == "" && o.CSS == "" {
		o.Theme = DefaultTheme
	}
	if o.PNGScale == 0 {
		o.PNGScale = DefaultPNGScale
	}
	if o.Settings == nil {
		o.Settings = astro.DefaultSettings()
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.WheelOnly && o.GridOnly {
		return fmt.Errorf("wheel_only and grid_only are mutually exclusive")
	}
	return ValidateTheme(o.Theme)
}

// SettingsHash returns a content hash of the active settings tables so
// layouts computed under different point selections are cached separately.
func (o *Options) SettingsHash() string {
	s := o.Settings
	if s == nil {
		s = astro.DefaultSettings()
	}
	data, _ := json.Marshal(s)
	return cache.Hash(data)
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts(mode astro.Mode) cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Mode:         string(mode),
		SettingsHash: o.SettingsHash(),
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	theme := o.Theme
	if o.CSS != "" {
		// Verbatim CSS replaces the theme; fold it into the key.
		theme = "css:" + cache.Hash([]byte(o.CSS))
	}
	opts := cache.ArtifactKeyOpts{
		Format:    format,
		Theme:     theme,
		Minify:    o.Minify,
		InlineCSS: o.InlineCSS,
		WheelOnly: o.WheelOnly,
		GridOnly:  o.GridOnly,
		Detailed:  o.Detailed,
	}
	if format == FormatPNG {
		opts.Scale = o.PNGScale
	}
	return opts
}
