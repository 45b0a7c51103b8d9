// Package styles provides the color themes and SVG post-processing
// helpers used by the wheel renderer.
//
// Charts are emitted with CSS custom properties (var(--astrowheel-...))
// so a host page can restyle them. A Theme resolves those tokens to one
// of the embedded palettes; InlineCSSVariables bakes the palette into
// the document for consumers that cannot evaluate CSS variables.
package styles

import (
	"bytes"
	"embed"
	"encoding/xml"
	"regexp"
	"strings"

	"github.com/astrowheel/astrowheel/pkg/errors"
)

// ===== Themes =====

// Theme identifies one of the embedded chart color palettes.
type Theme string

// Available themes.
const (
	ThemeClassic Theme = "classic"
	ThemeDark    Theme = "dark"
	ThemeLight   Theme = "light"
)

// ValidThemes enumerates the palettes shipped with the renderer.
var ValidThemes = map[Theme]bool{
	ThemeClassic: true,
	ThemeDark:    true,
	ThemeLight:   true,
}

//go:embed themes/*.css
var themeFS embed.FS

// CSS returns the stylesheet body for a theme. The empty theme is valid
// and returns no CSS, leaving every color token unresolved so the host
// document can style the chart itself.
func CSS(theme Theme) (string, error) {
	if theme == "" {
		return "", nil
	}
	if !ValidThemes[theme] {
		return "", errors.New(errors.ErrCodeInvalidTheme, "unknown chart theme %q", theme)
	}
	data, err := themeFS.ReadFile("themes/" + string(theme) + ".css")
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidTheme, err, "loading chart theme %q", theme)
	}
	return string(data), nil
}

// Colors returns the resolved custom property table of a theme, mapping
// "--astrowheel-..." tokens to concrete color values. Renderers that emit
// formats without CSS support (DOT, for one) use this to look colors up
// directly. Nested var() references are resolved before returning.
func Colors(theme Theme) (map[string]string, error) {
	css, err := CSS(theme)
	if err != nil {
		return nil, err
	}

	values := map[string]string{}
	for _, m := range cssVariablePattern.FindAllStringSubmatch(css, -1) {
		values["--"+m[1]] = strings.TrimSpace(m[2])
	}

	for i := 0; i < maxInlinePasses; i++ {
		again := false
		for k, v := range values {
			if !varUsagePattern.MatchString(v) {
				continue
			}
			values[k] = varUsagePattern.ReplaceAllStringFunc(v, func(ref string) string {
				m := varUsagePattern.FindStringSubmatch(ref)
				if rv, ok := values[m[1]]; ok {
					return rv
				}
				return strings.Trim(m[2], ", ")
			})
			again = true
		}
		if !again {
			break
		}
	}
	return values, nil
}

// ===== CSS variable inlining =====

var (
	styleTagPattern    = regexp.MustCompile(`(?s)<style.*?>(.*?)</style>`)
	cssVariablePattern = regexp.MustCompile(`--([a-zA-Z0-9_-]+)\s*:\s*([^;]+);`)
	varUsagePattern    = regexp.MustCompile(`var\(\s*(--[\w-]+)\s*(?:,\s*([^)]+))?\s*\)`)
)

// maxInlinePasses bounds substitution when a variable's value itself
// contains var() references.
const maxInlinePasses = 10

// InlineCSSVariables resolves every var(--token) reference in the SVG
// against the custom properties declared in its <style> blocks, then
// strips those blocks from the document. A reference with no matching
// declaration resolves to its inline fallback, or to the empty string.
func InlineCSSVariables(svg string) string {
	values := map[string]string{}
	for _, block := range styleTagPattern.FindAllStringSubmatch(svg, -1) {
		for _, m := range cssVariablePattern.FindAllStringSubmatch(block[1], -1) {
			values["--"+m[1]] = strings.TrimSpace(m[2])
		}
	}

	out := styleTagPattern.ReplaceAllString(svg, "")
	for i := 0; i < maxInlinePasses && varUsagePattern.MatchString(out); i++ {
		out = varUsagePattern.ReplaceAllStringFunc(out, func(ref string) string {
			m := varUsagePattern.FindStringSubmatch(ref)
			if v, ok := values[m[1]]; ok {
				return v
			}
			if m[2] != "" {
				return strings.Trim(m[2], ", ")
			}
			return ""
		})
	}
	return out
}

// ===== Output normalization =====

var (
	interTagWhitespace = regexp.MustCompile(`>\s+<`)
	whitespaceRun      = regexp.MustCompile(`\s+`)
)

// Minify collapses the whitespace between adjacent tags and squeezes
// every remaining whitespace run to a single space.
func Minify(svg string) string {
	out := interTagWhitespace.ReplaceAllString(svg, "><")
	out = whitespaceRun.ReplaceAllString(out, " ")
	return strings.TrimSpace(out)
}

// NormalizeQuotes rewrites double quotes as single quotes so the SVG
// can sit inside a double-quoted HTML attribute.
func NormalizeQuotes(svg string) string {
	return strings.ReplaceAll(svg, `"`, "'")
}

// EscapeXML escapes s for use in XML text nodes and attribute values.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
