package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/astrowheel/astrowheel/pkg/astro"
	chartio "github.com/astrowheel/astrowheel/pkg/io"
)

// pointsCommand creates the points command for inspecting chart documents.
func (c *CLI) pointsCommand() *cobra.Command {
	var (
		second      bool
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "points [file]",
		Short: "Print or browse the points of a chart document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chart, err := chartio.ImportChart(args[0])
			if err != nil {
				return err
			}

			subject := &chart.First
			if second {
				if chart.Second == nil {
					return fmt.Errorf("chart has no second subject")
				}
				subject = chart.Second
			}

			if interactive {
				return browsePoints(subject)
			}
			printSubjectHeader(subject)
			fmt.Println(pointTable(subject.Points))
			return nil
		},
	}

	cmd.Flags().BoolVar(&second, "second", false, "show the second subject of a dual chart")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse points interactively")

	return cmd
}

// printSubjectHeader prints the subject identity above the point table.
func printSubjectHeader(s *astro.Subject) {
	printKeyValue("Subject", s.Name)
	printKeyValue("Born", s.LocalTime.Format("2006-01-02 15:04"))
	if s.City != "" {
		printKeyValue("Location", fmt.Sprintf("%s, %s", s.City, s.Nation))
	}
	printKeyValue("Latitude", astro.FormatLatitude(s.Lat, "N", "S"))
	printKeyValue("Longitude", astro.FormatLatitude(s.Lng, "E", "W"))
	printKeyValue("Houses", s.HouseSystem)
	fmt.Println()
}

// pointTable renders a subject's points as a bordered terminal table.
func pointTable(points []astro.ChartPoint) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, len(points))
	for i, p := range points {
		retro := ""
		if p.Retrograde {
			retro = "R"
		}
		rows[i] = []string{
			p.Name,
			p.Sign,
			astro.FormatDegrees(p.Position, astro.DegreeMinuteSecond),
			houseLabel(p.House),
			retro,
		}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Point", "Sign", "Position", "House", "Rx").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 4 {
				return StyleWarning
			}
			return StyleValue
		}).
		Render()
}

// houseLabel shortens canonical cusp names like "Seventh_House" for display.
func houseLabel(house string) string {
	if house == "" {
		return "—"
	}
	for i, name := range []string{
		"First_House", "Second_House", "Third_House", "Fourth_House",
		"Fifth_House", "Sixth_House", "Seventh_House", "Eighth_House",
		"Ninth_House", "Tenth_House", "Eleventh_House", "Twelfth_House",
	} {
		if house == name {
			return fmt.Sprintf("%d", i+1)
		}
	}
	return house
}

// browsePoints runs the interactive point browser and prints the detail of
// the selected point, if any.
func browsePoints(subject *astro.Subject) error {
	model := NewPointListModel(subject.Name, subject.Points)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return fmt.Errorf("point browser: %w", err)
	}

	m, ok := final.(PointListModel)
	if !ok || m.Selected == nil {
		return nil
	}

	p := m.Selected
	printNewline()
	printKeyValue("Point", fmt.Sprintf("%s %s", p.Name, p.Emoji))
	printKeyValue("Sign", p.Sign)
	printKeyValue("Position", astro.FormatDegrees(p.Position, astro.DegreeMinuteSecond))
	printKeyValue("Absolute", astro.FormatDegrees(p.AbsPos, astro.DegreeMinute))
	printKeyValue("Element", p.Element)
	printKeyValue("Quality", p.Quality)
	printKeyValue("House", houseLabel(p.House))
	if p.Retrograde {
		printKeyValue("Motion", "retrograde")
	}
	return nil
}
