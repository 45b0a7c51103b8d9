package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/astrowheel/astrowheel/pkg/astro"
	"github.com/astrowheel/astrowheel/pkg/cache"
	chartio "github.com/astrowheel/astrowheel/pkg/io"
	"github.com/astrowheel/astrowheel/pkg/observability"
	"github.com/astrowheel/astrowheel/pkg/render/wheel/layout"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Load
	loadStart := time.Now()
	observability.Render().OnLoadStart(ctx, opts.ChartPath)
	chart, loadHit, err := r.LoadWithCacheInfo(ctx, opts)
	if err != nil {
		observability.Render().OnLoadComplete(ctx, "", 0, time.Since(loadStart), err)
		return nil, fmt.Errorf("load: %w", err)
	}
	observability.Render().OnLoadComplete(ctx, string(chart.Mode), len(chart.First.Points), time.Since(loadStart), nil)
	result.Chart = chart
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.PointCount = len(chart.First.Points)
	result.Stats.AspectCount = len(chart.Aspects)
	result.CacheInfo.LoadHit = loadHit

	// Content hash for cache keys and API responses
	if chartData, err := json.Marshal(chart); err == nil {
		result.ChartHash = cache.Hash(chartData)
	}

	r.Logger.Info("loaded chart",
		"mode", chart.Mode,
		"points", result.Stats.PointCount,
		"aspects", result.Stats.AspectCount,
		"duration", result.Stats.LoadTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	observability.Render().OnLayoutStart(ctx, string(chart.Mode), result.Stats.PointCount)
	w, layoutHit, err := r.ComputeLayoutWithCacheInfo(ctx, chart, opts)
	observability.Render().OnLayoutComplete(ctx, string(chart.Mode), time.Since(layoutStart), err)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Wheel = w
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.CacheInfo.LayoutHit = layoutHit

	r.Logger.Info("computed layout",
		"placed", len(w.Primary.Points),
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	observability.Render().OnRenderStart(ctx, opts.Formats)
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, chart, w, opts)
	observability.Render().OnRenderComplete(ctx, opts.Formats, time.Since(renderStart), err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// LoadWithCacheInfo loads a chart with caching and returns cache hit info.
// The cached value is the validated document, keyed by source content, so
// a hit skips re-validation.
func (r *Runner) LoadWithCacheInfo(ctx context.Context, opts Options) (*astro.Chart, bool, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	source, err := loadSource(opts)
	if err != nil {
		return nil, false, err
	}
	cacheKey := r.Keyer.ChartKey(cache.Hash(source))

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			chart, err := chartio.ReadChart(bytes.NewReader(data))
			if err == nil {
				observability.Cache().OnCacheHit(ctx, "chart")
				return chart, true, nil
			}
			// A stale or corrupt entry falls through to a fresh load.
		}
	}
	observability.Cache().OnCacheMiss(ctx, "chart")

	chart, err := chartio.ReadChart(bytes.NewReader(source))
	if err != nil {
		if opts.ChartPath != "" && opts.ChartJSON == "" {
			return nil, false, fmt.Errorf("import %s: %w", opts.ChartPath, err)
		}
		return nil, false, err
	}

	if !opts.Refresh {
		var buf bytes.Buffer
		if err := chartio.WriteChart(chart, &buf); err == nil {
			_ = r.Cache.Set(ctx, cacheKey, buf.Bytes(), cache.TTLChart)
			observability.Cache().OnCacheSet(ctx, "chart", buf.Len())
		}
	}

	return chart, false, nil
}

// Load is a convenience wrapper that calls LoadWithCacheInfo and discards the cache hit info.
func (r *Runner) Load(ctx context.Context, opts Options) (*astro.Chart, error) {
	chart, _, err := r.LoadWithCacheInfo(ctx, opts)
	return chart, err
}

// ComputeLayoutWithCacheInfo computes a wheel layout with caching and returns cache hit info.
func (r *Runner) ComputeLayoutWithCacheInfo(ctx context.Context, chart *astro.Chart, opts Options) (*layout.Wheel, bool, error) {
	opts.SetRenderDefaults()
	r.applyLogger(&opts)

	chartData, err := json.Marshal(chart)
	if err != nil {
		return nil, false, fmt.Errorf("serialize chart for cache key: %w", err)
	}
	chartHash := cache.Hash(chartData)
	cacheKey := r.Keyer.LayoutKey(chartHash, opts.LayoutKeyOpts(chart.Mode))

	if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
		var cached layout.Wheel
		if err := json.Unmarshal(data, &cached); err == nil {
			observability.Cache().OnCacheHit(ctx, "layout")
			return &cached, true, nil
		}
		// If deserialization fails, fall through to recompute
	}
	observability.Cache().OnCacheMiss(ctx, "layout")

	w, err := GenerateLayout(chart, opts)
	if err != nil {
		return nil, false, err
	}

	if data, err := json.Marshal(w); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout)
		observability.Cache().OnCacheSet(ctx, "layout", len(data))
	}

	return w, false, nil
}

// ComputeLayout is a convenience wrapper that calls ComputeLayoutWithCacheInfo and discards the cache hit info.
func (r *Runner) ComputeLayout(ctx context.Context, chart *astro.Chart, opts Options) (*layout.Wheel, error) {
	w, _, err := r.ComputeLayoutWithCacheInfo(ctx, chart, opts)
	return w, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, chart *astro.Chart, w *layout.Wheel, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	chartData, err := json.Marshal(chart)
	if err != nil {
		return nil, false, fmt.Errorf("serialize chart for cache key: %w", err)
	}
	cacheKeyHash := cache.Hash(chartData)

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(cacheKeyHash, opts.ArtifactKeyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			artifacts[format] = data
		} else {
			allCached = false
			break
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		observability.Cache().OnCacheHit(ctx, "artifact")
		return artifacts, true, nil
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	// Render all formats
	rendered, err := Render(chart, w, opts)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(cacheKeyHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	return rendered, false, nil
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, chart *astro.Chart, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, chart, nil, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
