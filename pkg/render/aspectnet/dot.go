package aspectnet

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/astrowheel/astrowheel/pkg/astro"
	"github.com/astrowheel/astrowheel/pkg/render/wheel/styles"
)

// Options configures aspect network rendering.
type Options struct {
	// Detailed includes sign positions in node labels and orbs on edges.
	// When false, only point and aspect names are shown.
	Detailed bool

	// Theme resolves point and aspect colors. DOT has no CSS support, so
	// the palette is baked into the output. Defaults to the classic theme.
	Theme styles.Theme
}

// ToDOT converts a chart's aspects to Graphviz DOT format for network
// visualization: points become nodes, aspects become undirected edges.
// The resulting DOT string can be rendered using [RenderSVG].
//
// Dual charts label nodes with their owner so the same planet from both
// subjects stays distinct.
func ToDOT(chart *astro.Chart, settings *astro.Settings, opts Options) (string, error) {
	if settings == nil {
		settings = astro.DefaultSettings()
	}
	theme := opts.Theme
	if theme == "" {
		theme = styles.ThemeClassic
	}
	colors, err := styles.Colors(theme)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=circo;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=ellipse, style=filled, fillcolor=white, fontsize=14, margin=\"0.1,0.05\"];\n")
	buf.WriteString("  edge [penwidth=1.5, fontsize=10];\n")
	buf.WriteString("\n")

	dual := chart.Mode.IsDualWheel() && chart.Second != nil

	writeNodes(&buf, &chart.First, chart.First.Name, dual, settings, colors, opts)
	if dual {
		buf.WriteString("\n")
		writeNodes(&buf, chart.Second, chart.Second.Name, dual, settings, colors, opts)
	}

	buf.WriteString("\n")
	for _, a := range chart.Aspects {
		setting, ok := settings.AspectByName(a.Aspect)
		if !ok || !setting.IsActive {
			continue
		}
		attrs := []string{fmt.Sprintf("color=%q", resolveColor(setting.Color, colors))}
		if opts.Detailed {
			attrs = append(attrs, fmt.Sprintf("label=%q", fmt.Sprintf("%s %.1f°", a.Aspect, a.Orbit)))
		}
		fmt.Fprintf(&buf, "  %q -- %q [%s];\n",
			nodeID(a.P1Name, a.P1Owner, dual),
			nodeID(a.P2Name, a.P2Owner, dual),
			strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}

func writeNodes(buf *bytes.Buffer, subject *astro.Subject, owner string, dual bool, settings *astro.Settings, colors map[string]string, opts Options) {
	for _, p := range settings.ActivePoints(subject) {
		setting, ok := settings.PointByName(p.Name)
		if !ok {
			continue
		}
		label := setting.Label
		if opts.Detailed {
			label = fmt.Sprintf("%s\n%s %s", setting.Label, p.Sign, astro.FormatDegrees(p.Position, astro.DegreeMinute))
		}
		attrs := []string{
			fmt.Sprintf("label=%q", label),
			fmt.Sprintf("color=%q", resolveColor(setting.Color, colors)),
		}
		fmt.Fprintf(buf, "  %q [%s];\n", nodeID(p.Name, owner, dual), strings.Join(attrs, ", "))
	}
}

// nodeID keeps the two subjects' points apart in dual charts. Aspect edges
// carry owner names; single charts leave them empty.
func nodeID(name, owner string, dual bool) string {
	if dual && owner != "" {
		return owner + ":" + name
	}
	return name
}

var colorTokenPattern = regexp.MustCompile(`var\(\s*(--[\w-]+)\s*\)`)

// resolveColor maps a settings color reference to a concrete value. Plain
// colors pass through untouched; unresolvable tokens fall back to black.
func resolveColor(ref string, colors map[string]string) string {
	m := colorTokenPattern.FindStringSubmatch(ref)
	if m == nil {
		return ref
	}
	if v, ok := colors[m[1]]; ok {
		return v
	}
	return "#000000"
}

// RenderSVG renders a DOT aspect network to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
