package wheel

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/astrowheel/astrowheel/pkg/astro"
)

const maxTitleName = 50
const maxLocationLength = 35

// captionDatetime includes the zone offset so two charts of the same
// wall-clock moment in different zones stay distinguishable.
const captionDatetime = "2006-01-02 15:04 [-07:00]"

// truncateName keeps a subject name within the title budget.
func truncateName(name string) string {
	if len(name) > maxTitleName {
		return name[:maxTitleName] + "…"
	}
	return name
}

// formatLocation shortens a location string to fit the caption column.
// Comma-separated locations drop the middle parts first; an ellipsis
// marks any remaining overflow.
func formatLocation(location string) string {
	if len(location) <= maxLocationLength {
		return location
	}
	parts := strings.Split(location, ",")
	if len(parts) > 1 {
		short := strings.TrimSpace(parts[0]) + ", " + strings.TrimSpace(parts[len(parts)-1])
		if len(short) > maxLocationLength {
			return short[:maxLocationLength] + "..."
		}
		return short
	}
	return location[:maxLocationLength] + "..."
}

// chartTitle composes the heading for a chart document.
func chartTitle(chart *astro.Chart) string {
	name := truncateName(chart.First.Name)

	switch chart.Mode {
	case astro.ModeNatal, astro.ModeExternalNatal:
		return name + " - Natal"
	case astro.ModeComposite:
		if chart.Second != nil {
			return fmt.Sprintf("Composite: %s & %s", name, truncateName(chart.Second.Name))
		}
		return name + " - Composite"
	case astro.ModeTransit:
		if chart.Second != nil {
			return fmt.Sprintf("%s - Transits %s", name, chart.Second.LocalTime.Format("02/01/06"))
		}
		return name + " - Transits"
	case astro.ModeSynastry:
		if chart.Second != nil {
			return fmt.Sprintf("Synastry: %s & %s", name, truncateName(chart.Second.Name))
		}
		return name + " - Synastry"
	case astro.ModeSingleReturn:
		return name + " - " + returnSuffix(chart, &chart.First)
	case astro.ModeDualReturn:
		moment := &chart.First
		if chart.Second != nil {
			moment = chart.Second
		}
		return name + " - " + returnSuffix(chart, moment)
	}
	return name
}

// returnSuffix labels a return chart with its kind and moment: solar
// returns recur yearly so the year suffices, lunar returns need the
// month as well.
func returnSuffix(chart *astro.Chart, moment *astro.Subject) string {
	if chart.ReturnType == astro.ReturnSolar {
		return fmt.Sprintf("Solar %s", moment.LocalTime.Format("2006"))
	}
	return fmt.Sprintf("Lunar %s", moment.LocalTime.Format("01/2006"))
}

// topLeftLines builds the caption block naming the subject, place and
// moment of the chart. Dual wheels lead with the subject name since the
// title already carries the pairing.
func topLeftLines(chart *astro.Chart) []string {
	first := &chart.First

	latitude := "Latitude: " + astro.FormatLatitude(first.Lat, "North", "South")
	longitude := "Longitude: " + astro.FormatLongitude(first.Lng, "East", "West")
	when := first.LocalTime.Format(captionDatetime)

	if chart.Mode.IsDualWheel() {
		return []string{
			first.Name,
			formatLocation(first.City) + ", " + first.Nation,
			when,
			latitude,
			longitude,
			"",
		}
	}

	return []string{
		"Location:",
		formatLocation(first.City) + ", " + first.Nation,
		latitude,
		longitude,
		when,
		"Day of Week: " + first.LocalTime.Weekday().String(),
	}
}

// bottomLeftLines builds the caption block describing the calculation
// frame: zodiac, house system and the lunar phase when known. Dual
// wheels report the moving subject's phase.
func bottomLeftLines(chart *astro.Chart) []string {
	first := &chart.First

	zodiac := "Zodiac: Tropical"
	if first.ZodiacType != "" && first.ZodiacType != "Tropic" {
		zodiac = "Ayanamsa: " + first.ZodiacType
	}

	domification := ""
	if first.HouseSystem != "" {
		domification = "Domification: " + first.HouseSystem
	}

	phaseSource := first
	if chart.Mode.IsDualWheel() && chart.Second != nil {
		phaseSource = chart.Second
	}

	lunation, phaseName := "", ""
	if phase := phaseSource.LunarPhase; phase != nil {
		lunation = fmt.Sprintf("Lunation Day: %d", phase.MoonPhase)
		phaseName = "Lunar Phase: " + phase.MoonPhaseName
	}

	return []string{zodiac, domification, lunation, phaseName}
}

// elementsLine draws the elemental weight tallies as a caption column.
func elementsLine(chart *astro.Chart, settings *astro.Settings) string {
	dist := astro.ComputeElementDistribution(chart, settings)
	rows := []string{
		fmt.Sprintf("Fire %d%%", dist.FirePercentage),
		fmt.Sprintf("Earth %d%%", dist.EarthPercentage),
		fmt.Sprintf("Air %d%%", dist.AirPercentage),
		fmt.Sprintf("Water %d%%", dist.WaterPercentage),
	}
	return captionColumn("Elements:", rows)
}

// qualitiesLine draws the modal quality tallies as a caption column.
func qualitiesLine(chart *astro.Chart, settings *astro.Settings) string {
	dist := astro.ComputeQualityDistribution(chart, settings)
	rows := []string{
		fmt.Sprintf("Cardinal %d%%", dist.CardinalPercentage),
		fmt.Sprintf("Fixed %d%%", dist.FixedPercentage),
		fmt.Sprintf("Mutable %d%%", dist.MutablePercentage),
	}
	return captionColumn("Qualities:", rows)
}

func captionColumn(title string, rows []string) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf,
		`<text style="fill: %s; font-size: 10px;">%s</text>`,
		gridFill, title)
	y := 12
	for _, row := range rows {
		fmt.Fprintf(&buf,
			`<text y="%d" style="fill: %s; font-size: 10px;">%s</text>`,
			y, gridFill, row)
		y += 12
	}
	return buf.String()
}

// aspectListTitle labels the dual-wheel aspect list for its mode.
func aspectListTitle(chart *astro.Chart) string {
	switch chart.Mode {
	case astro.ModeTransit:
		return chart.First.Name + " - Transit Aspects"
	case astro.ModeSynastry:
		if chart.Second != nil {
			return fmt.Sprintf("%s - %s Synastry Aspects", chart.First.Name, chart.Second.Name)
		}
		return chart.First.Name + " - Synastry Aspects"
	case astro.ModeDualReturn:
		return "Natal to Return Aspects"
	}
	return chart.First.Name + " - Aspects"
}

// planetGridTitle labels the first subject's point table. Single wheels
// skip the title since only one subject is on the canvas.
func planetGridTitle(chart *astro.Chart) string {
	switch chart.Mode {
	case astro.ModeDualReturn:
		return chart.First.Name + " (Inner Wheel)"
	case astro.ModeTransit, astro.ModeSynastry:
		return "Points for " + chart.First.Name
	}
	return ""
}

// secondaryPlanetGridTitle labels the second subject's point table.
func secondaryPlanetGridTitle(chart *astro.Chart) string {
	if chart.Second == nil {
		return ""
	}
	switch chart.Mode {
	case astro.ModeDualReturn:
		return "Return (Outer Wheel)"
	case astro.ModeTransit:
		return chart.Second.Name
	}
	return "Points for " + chart.Second.Name
}
