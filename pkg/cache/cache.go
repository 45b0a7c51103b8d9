// Package cache provides pluggable caching for the render pipeline.
//
// Three backends are available: FileCache for CLI usage, RedisCache for the
// HTTP server, and NullCache when caching is disabled. Keys are generated
// through a Keyer so every stage of the pipeline (chart load, wheel layout,
// rendered artifact) shares one naming scheme.
package cache

import (
	"context"
	"time"
)

// TTLs per pipeline stage. Parsed charts are cheap to rebuild; layouts and
// rendered artifacts are keyed by content hashes so they stay valid until
// their inputs change.
const (
	TTLChart    = 24 * time.Hour
	TTLLayout   = 7 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is a byte-oriented cache with TTL support.
type Cache interface {
	// Get retrieves a value. The second return indicates a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// LayoutKeyOpts are the inputs that change a wheel layout for a given chart.
type LayoutKeyOpts struct {
	Mode         string `json:"mode"`
	SettingsHash string `json:"settings_hash"`
}

// ArtifactKeyOpts are the inputs that change a rendered artifact for a given
// layout.
type ArtifactKeyOpts struct {
	Format    string `json:"format"`
	Theme     string `json:"theme"`
	Minify    bool   `json:"minify"`
	InlineCSS bool   `json:"inline_css"`
	WheelOnly bool   `json:"wheel_only"`
	GridOnly  bool   `json:"grid_only"`
	Detailed  bool   `json:"detailed"`

	// Scale only matters for raster formats.
	Scale float64 `json:"scale,omitempty"`
}

// Keyer generates cache keys for pipeline stages.
type Keyer interface {
	// ChartKey keys a parsed chart document by the hash of its source bytes.
	ChartKey(sourceHash string) string

	// LayoutKey keys a computed wheel layout.
	LayoutKey(chartHash string, opts LayoutKeyOpts) string

	// ArtifactKey keys a rendered artifact.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key scheme.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ChartKey generates a key for chart document caching.
func (k *DefaultKeyer) ChartKey(sourceHash string) string {
	return "chart:" + sourceHash
}

// LayoutKey generates a key for layout caching.
func (k *DefaultKeyer) LayoutKey(chartHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", chartHash, opts)
}

// ArtifactKey generates a key for artifact caching.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
