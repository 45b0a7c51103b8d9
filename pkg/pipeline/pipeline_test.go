package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/astrowheel/astrowheel/pkg/astro"
	"github.com/astrowheel/astrowheel/pkg/cache"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"json", false},
		{"dot", false},
		{"pdf", true},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "json"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestValidateTheme(t *testing.T) {
	tests := []struct {
		theme   string
		wantErr bool
	}{
		{"classic", false},
		{"dark", false},
		{"light", false},
		{"", false}, // leaves tokens for the host document
		{"sepia", true},
	}

	for _, tt := range tests {
		err := ValidateTheme(tt.theme)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateTheme(%q) error = %v, wantErr %v", tt.theme, err, tt.wantErr)
		}
	}
}

func TestOptionsValidateAndSetDefaults(t *testing.T) {
	opts := Options{ChartJSON: "{}"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults: %v", err)
	}

	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats default = %v", opts.Formats)
	}
	if opts.Theme != DefaultTheme {
		t.Errorf("Theme default = %q", opts.Theme)
	}
	if opts.PNGScale != DefaultPNGScale {
		t.Errorf("PNGScale default = %v", opts.PNGScale)
	}
	if opts.Settings == nil || opts.Logger == nil {
		t.Error("Settings and Logger should be defaulted")
	}

	// Idempotent
	opts.Theme = "dark"
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("second call: %v", err)
	}
	if opts.Theme != "dark" {
		t.Error("second call should not re-apply defaults")
	}
}

func TestOptionsRequireChartSource(t *testing.T) {
	var opts Options
	if err := opts.ValidateAndSetDefaults(); err == nil {
		t.Error("missing chart source should fail")
	}
}

func TestOptionsRejectExclusiveFlags(t *testing.T) {
	opts := Options{ChartJSON: "{}", WheelOnly: true, GridOnly: true}
	if err := opts.ValidateAndSetDefaults(); err == nil {
		t.Error("wheel_only together with grid_only should fail")
	}
}

func TestOptionsCSSOverridesThemeDefault(t *testing.T) {
	opts := Options{ChartJSON: "{}", CSS: ":root { --x: red; }"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults: %v", err)
	}
	if opts.Theme != "" {
		t.Errorf("explicit CSS should suppress the theme default, got %q", opts.Theme)
	}
}

func TestArtifactKeyOpts(t *testing.T) {
	opts := Options{Theme: "classic", Minify: true, PNGScale: 2.0}

	svgKey := opts.ArtifactKeyOpts(FormatSVG)
	if svgKey.Scale != 0 {
		t.Error("scale should only apply to raster formats")
	}
	pngKey := opts.ArtifactKeyOpts(FormatPNG)
	if pngKey.Scale != 2.0 {
		t.Errorf("png key scale = %v", pngKey.Scale)
	}

	// Verbatim CSS replaces the theme in the key.
	opts.CSS = "svg { background: black; }"
	cssKey := opts.ArtifactKeyOpts(FormatSVG)
	if !strings.HasPrefix(cssKey.Theme, "css:") || cssKey.Theme == svgKey.Theme {
		t.Errorf("CSS should fold into the key theme: %q", cssKey.Theme)
	}
}

func TestSettingsHashChangesWithSettings(t *testing.T) {
	a := Options{}
	b := Options{Settings: astro.DefaultSettings().Clone()}
	b.Settings.Points[0].IsActive = !b.Settings.Points[0].IsActive

	if a.SettingsHash() == b.SettingsHash() {
		t.Error("different settings should hash differently")
	}
}

func TestExecute(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	opts := Options{
		ChartJSON: natalDocument,
		Formats:   []string{FormatSVG, FormatJSON, FormatDOT},
	}

	result, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if result.Chart == nil || result.Chart.First.Name != "John" {
		t.Error("chart missing from result")
	}
	if result.ChartHash == "" {
		t.Error("chart hash missing")
	}
	if result.Wheel == nil || len(result.Wheel.Primary.Points) == 0 {
		t.Error("wheel layout missing")
	}

	svg := string(result.Artifacts[FormatSVG])
	if !strings.Contains(svg, "<svg") || !strings.Contains(svg, "John - Natal") {
		t.Errorf("svg artifact wrong:\n%.200s", svg)
	}
	if !strings.Contains(string(result.Artifacts[FormatJSON]), `"geometry"`) {
		t.Error("json artifact should carry the layout")
	}
	if !strings.Contains(string(result.Artifacts[FormatDOT]), "graph G {") {
		t.Error("dot artifact wrong")
	}

	if result.Stats.PointCount == 0 {
		t.Error("stats should count points")
	}
}

func TestExecuteCaching(t *testing.T) {
	ctx := context.Background()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	runner := NewRunner(c, nil, nil)
	opts := Options{ChartJSON: natalDocument, Formats: []string{FormatSVG}}

	first, err := runner.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("first Execute: %v", err)
	}
	if first.CacheInfo.LoadHit || first.CacheInfo.LayoutHit || first.CacheInfo.RenderHit {
		t.Errorf("first run should miss everywhere: %+v", first.CacheInfo)
	}

	second, err := runner.Execute(ctx, Options{ChartJSON: natalDocument, Formats: []string{FormatSVG}})
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if !second.CacheInfo.LoadHit || !second.CacheInfo.LayoutHit || !second.CacheInfo.RenderHit {
		t.Errorf("second run should hit everywhere: %+v", second.CacheInfo)
	}
	if string(first.Artifacts[FormatSVG]) != string(second.Artifacts[FormatSVG]) {
		t.Error("cached artifact should match the rendered one")
	}
}

func TestExecuteRefreshBypassesLoadCache(t *testing.T) {
	ctx := context.Background()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	runner := NewRunner(c, nil, nil)

	if _, err := runner.Execute(ctx, Options{ChartJSON: natalDocument}); err != nil {
		t.Fatalf("prime: %v", err)
	}
	result, err := runner.Execute(ctx, Options{ChartJSON: natalDocument, Refresh: true})
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if result.CacheInfo.LoadHit {
		t.Error("refresh should bypass the load cache")
	}
}

func TestExecuteInvalidDocument(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	_, err := runner.Execute(context.Background(), Options{ChartJSON: `{"mode": "Natal"}`})
	if err == nil || !strings.Contains(err.Error(), "load") {
		t.Errorf("invalid document should fail the load stage: %v", err)
	}
}

func TestRenderWithoutLayout(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	chart, err := runner.Load(context.Background(), Options{ChartJSON: natalDocument})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	artifacts, err := runner.Render(context.Background(), chart, Options{
		ChartJSON: natalDocument,
		Formats:   []string{FormatJSON},
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(artifacts[FormatJSON]), `"rotation"`) {
		t.Error("layout should be recomputed on demand for json output")
	}
}
