package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/astrowheel/astrowheel/pkg/astro"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// PointListModel is the bubbletea model for interactive point browsing.
type PointListModel struct {
	Title    string
	Points   []astro.ChartPoint
	Cursor   int
	Selected *astro.ChartPoint
	Height   int
	Offset   int
}

// NewPointListModel creates a new point list model for a subject.
func NewPointListModel(title string, points []astro.ChartPoint) PointListModel {
	return PointListModel{
		Title:  title,
		Points: points,
		Height: 15,
	}
}

func (m PointListModel) Init() tea.Cmd {
	return nil
}

func (m PointListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Points)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			m.Selected = &m.Points[m.Cursor]
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m PointListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title + " / Chart Points"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Points) {
		end = len(m.Points)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		p := m.Points[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		retro := ""
		if p.Retrograde {
			retro = "R"
		}

		rows = append(rows, []string{
			cursor,
			p.Name,
			p.Sign,
			astro.FormatDegrees(p.Position, astro.DegreeMinute),
			houseLabel(p.House),
			retro,
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Point", "Sign", "Position", "House", "Rx").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return listSelectedStyle
			}
			if col == 5 {
				return StyleWarning
			}
			return StyleValue
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Points))))

	return b.String()
}
