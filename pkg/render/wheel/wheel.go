package wheel

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/charmbracelet/log"

	"github.com/astrowheel/astrowheel/pkg/astro"
	"github.com/astrowheel/astrowheel/pkg/errors"
	"github.com/astrowheel/astrowheel/pkg/render/wheel/layout"
	"github.com/astrowheel/astrowheel/pkg/render/wheel/styles"
)

// Options configures one render call.
type Options struct {
	// Theme selects an embedded palette. Empty leaves the color tokens
	// unresolved for the host document to style.
	Theme styles.Theme `json:"theme,omitempty"`

	// CSS is injected verbatim instead of a theme stylesheet when set.
	// The content is treated as opaque.
	CSS string `json:"css,omitempty"`

	// InlineCSS bakes the resolved color variables into attributes and
	// strips the <style> block, for consumers without CSS support.
	InlineCSS bool `json:"inline_css,omitempty"`

	// Minify collapses inter-tag whitespace in the output.
	Minify bool `json:"minify,omitempty"`

	// Settings overrides the built-in point and aspect tables.
	Settings *astro.Settings `json:"-"`

	Logger *log.Logger `json:"-"`
}

func (o *Options) setDefaults() {
	if o.Settings == nil {
		o.Settings = astro.DefaultSettings()
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
}

//go:embed templates/*.svg.tmpl
var templateFS embed.FS

var docTemplates = template.Must(template.New("").
	Funcs(template.FuncMap{
		"line": func(i int) int { return i * 14 },
	}).
	ParseFS(templateFS, "templates/*.svg.tmpl"))

// templateData carries every fragment slot of the chart document. The
// drawing functions fill the fragments; the template fixes the stacking
// order: background, zodiac, circles, cusps, aspects, points, grids,
// degree text.
type templateData struct {
	ViewBox    string
	Width      string
	Height     string
	Stylesheet string

	Title       string
	TopLeft     []string
	BottomLeft  []string
	Elements    string
	Qualities   string
	LunarPhase  string

	BackgroundCircle string
	ZodiacRing       string
	TransitRing      string
	DegreeRing       string
	FirstCircle      string
	SecondCircle     string
	ThirdCircle      string
	Houses           string
	Aspects          string
	Points           string

	AspectGrid            string
	DoubleChartAspectList string
	MainPlanetGrid        string
	SecondaryPlanetGrid   string
	MainHouseGrid         string
	SecondaryHouseGrid    string
	HouseComparisonGrid   string

	DegreeText string
}

// Render draws the complete chart document and returns it as SVG text.
func Render(chart *astro.Chart, opts Options) (string, error) {
	opts.setDefaults()

	data, err := buildTemplateData(chart, &opts)
	if err != nil {
		return "", err
	}
	return executeTemplate("chart.svg.tmpl", data, &opts)
}

// RenderWheelOnly draws only the radial wheel, without the caption and
// side grids, framed by a square viewBox.
func RenderWheelOnly(chart *astro.Chart, opts Options) (string, error) {
	opts.setDefaults()

	data, err := buildTemplateData(chart, &opts)
	if err != nil {
		return "", err
	}
	geo, err := layout.GeometryFor(chart.Mode)
	if err != nil {
		return "", err
	}
	data.ViewBox = geo.WheelViewBox()
	return executeTemplate("wheel_only.svg.tmpl", data, &opts)
}

// RenderAspectGridOnly draws only the triangular aspect grid,
// anchored at (50, 250) like the standalone grid drawing.
func RenderAspectGridOnly(chart *astro.Chart, opts Options) (string, error) {
	opts.setDefaults()

	if err := astro.ValidateChart(chart); err != nil {
		return "", err
	}
	geo, err := layout.GeometryFor(chart.Mode)
	if err != nil {
		return "", err
	}

	active := opts.Settings.ActivePoints(&chart.First)
	var grid string
	if chart.Mode.IsDualWheel() {
		grid = drawDoubleAspectGrid(opts.Settings, active, chart.Aspects, standaloneGridX, standaloneGridY)
	} else {
		grid = drawAspectGrid(opts.Settings, active, chart.Aspects, standaloneGridX, standaloneGridY)
	}

	data := &templateData{
		ViewBox:    geo.GridViewBox(len(active)),
		AspectGrid: grid,
	}
	return executeTemplate("aspect_grid_only.svg.tmpl", data, &opts)
}

func executeTemplate(name string, data *templateData, opts *Options) (string, error) {
	css := opts.CSS
	if css == "" {
		var err error
		css, err = styles.CSS(opts.Theme)
		if err != nil {
			return "", err
		}
	}
	data.Stylesheet = css

	var buf bytes.Buffer
	if err := docTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", errors.Wrap(errors.ErrCodeRender, err, "assembling chart document")
	}

	out := buf.String()
	if opts.InlineCSS {
		out = styles.InlineCSSVariables(out)
	}
	if opts.Minify {
		out = styles.Minify(out)
	}
	return out, nil
}

// buildTemplateData runs the layout engine and every drawing pass for a
// chart, mapping the mode to its fragment configuration.
func buildTemplateData(chart *astro.Chart, opts *Options) (*templateData, error) {
	if err := astro.ValidateChart(chart); err != nil {
		return nil, err
	}

	w, err := layout.Build(chart, opts.Settings)
	if err != nil {
		return nil, err
	}
	geo := w.Geometry
	seventh := w.SeventhCusp()

	opts.Logger.Debug("computed wheel layout",
		"mode", chart.Mode,
		"points", len(w.Primary.Points),
		"rotation", w.Rotation)

	data := &templateData{
		ViewBox: geo.ViewBox(),
		Width:   fnum(geo.Width),
		Height:  fnum(geo.Height),
		Title:   chartTitle(chart),
	}

	// The wheel itself is identical across modes up to geometry.
	data.BackgroundCircle = drawBackgroundCircle(geo)
	data.ZodiacRing = drawZodiacRing(geo, seventh)
	data.DegreeRing = drawDegreeRing(geo, seventh)
	data.FirstCircle = drawFirstCircle(geo)
	data.SecondCircle = drawSecondCircle(geo)
	data.ThirdCircle = drawThirdCircle(geo)
	data.Houses = drawHouseCusps(geo, chart, opts.Settings)

	icons := newIconTracker()
	data.Aspects = drawAspects(chart.Aspects, geo, seventh, opts.Settings, icons)

	points, degreeText := drawPoints(chart, opts.Settings, w)
	data.Points = points
	data.DegreeText = degreeText

	data.TopLeft = topLeftLines(chart)
	data.BottomLeft = bottomLeftLines(chart)
	data.LunarPhase = drawLunarPhase(chart)

	active := opts.Settings.ActivePoints(&chart.First)

	if chart.Mode.IsDualWheel() {
		data.TransitRing = drawTransitRing(geo, seventh)
		data.DoubleChartAspectList = drawDoubleChartAspectList(aspectListTitle(chart), chart.Aspects, opts.Settings)
	} else {
		data.AspectGrid = drawAspectGrid(opts.Settings, active, chart.Aspects, natalGridX, natalGridY)
	}

	// Transit charts carry no element or quality tallies.
	if chart.Mode != astro.ModeTransit {
		data.Elements = elementsLine(chart, opts.Settings)
		data.Qualities = qualitiesLine(chart, opts.Settings)
	}

	data.MainPlanetGrid = drawPlanetGrid(planetGridTitle(chart), active, opts.Settings, mainPlanetGridX)
	data.MainHouseGrid = drawHouseGrid(chart.First.Houses, mainHouseGridX)

	if chart.Second != nil && chart.Mode.IsDualWheel() {
		secondActive := opts.Settings.ActivePoints(chart.Second)
		data.SecondaryPlanetGrid = drawPlanetGrid(secondaryPlanetGridTitle(chart), secondActive, opts.Settings, secondaryPlanetGridX)
		if chart.Mode != astro.ModeTransit {
			data.SecondaryHouseGrid = drawHouseGrid(chart.Second.Houses, secondaryHouseGridX)
		}
	}

	if chart.Mode == astro.ModeDualReturn && chart.Second != nil {
		data.HouseComparisonGrid = drawHouseComparisonGrid(chart, opts.Settings)
	}

	return data, nil
}

// fnum formats an SVG coordinate or length. Two decimals keep documents
// stable across platforms without visible rounding.
func fnum(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
