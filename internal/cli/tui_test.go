package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/astrowheel/astrowheel/pkg/astro"
)

func testPoints() []astro.ChartPoint {
	return []astro.ChartPoint{
		{Name: "Sun", Sign: "Lib", Position: 16.5, House: "Seventh_House"},
		{Name: "Moon", Sign: "Aqu", Position: 3.2, House: "Eleventh_House"},
		{Name: "Mercury", Sign: "Sco", Position: 8.2, House: "Eighth_House", Retrograde: true},
	}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPointListNavigation(t *testing.T) {
	m := NewPointListModel("John", testPoints())

	next, _ := m.Update(keyMsg("down"))
	m = next.(PointListModel)
	if m.Cursor != 1 {
		t.Errorf("cursor = %d, want 1", m.Cursor)
	}

	next, _ = m.Update(keyMsg("up"))
	m = next.(PointListModel)
	if m.Cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.Cursor)
	}

	// Cursor stays in bounds.
	next, _ = m.Update(keyMsg("up"))
	m = next.(PointListModel)
	if m.Cursor != 0 {
		t.Errorf("cursor = %d, should not underflow", m.Cursor)
	}
}

func TestPointListSelection(t *testing.T) {
	m := NewPointListModel("John", testPoints())

	next, _ := m.Update(keyMsg("down"))
	m = next.(PointListModel)
	next, cmd := m.Update(keyMsg("enter"))
	m = next.(PointListModel)

	if m.Selected == nil || m.Selected.Name != "Moon" {
		t.Errorf("Selected = %+v, want Moon", m.Selected)
	}
	if cmd == nil {
		t.Error("enter should quit the program")
	}
}

func TestPointListQuit(t *testing.T) {
	m := NewPointListModel("John", testPoints())

	next, cmd := m.Update(keyMsg("q"))
	m = next.(PointListModel)

	if m.Selected != nil {
		t.Error("quit should not select a point")
	}
	if cmd == nil {
		t.Error("q should quit the program")
	}
}

func TestPointListView(t *testing.T) {
	m := NewPointListModel("John", testPoints())
	view := m.View()

	for _, want := range []string{"John", "Sun", "Moon", "Mercury", "[1/3]"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestPointListScrolling(t *testing.T) {
	points := make([]astro.ChartPoint, 30)
	for i := range points {
		points[i] = astro.ChartPoint{Name: "P", Sign: "Ari", Position: float64(i)}
	}
	m := NewPointListModel("Long", points)
	m.Height = 5

	for i := 0; i < 10; i++ {
		next, _ := m.Update(keyMsg("down"))
		m = next.(PointListModel)
	}
	if m.Cursor != 10 {
		t.Errorf("cursor = %d, want 10", m.Cursor)
	}
	if m.Offset != 6 {
		t.Errorf("offset = %d, want 6", m.Offset)
	}
}
