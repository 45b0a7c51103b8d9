package astro

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if len(s.Points) != NumPointIDs {
		t.Errorf("len(Points) = %d, want %d", len(s.Points), NumPointIDs)
	}
	if len(s.Aspects) != 11 {
		t.Errorf("len(Aspects) = %d, want 11", len(s.Aspects))
	}
	if s.General.AxisOrb != 1.0 {
		t.Errorf("AxisOrb = %v, want 1.0", s.General.AxisOrb)
	}

	if err := s.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	// The table is shared; repeated calls return the same instance.
	if DefaultSettings() != s {
		t.Error("DefaultSettings() returned a different instance")
	}
}

func TestDefaultSettingsPointTable(t *testing.T) {
	s := DefaultSettings()

	for i, p := range s.Points {
		if int(p.ID) != i {
			t.Errorf("Points[%d].ID = %d, want %d", i, p.ID, i)
		}
		if p.Name != PointID(i).String() {
			t.Errorf("Points[%d].Name = %q, want %q", i, p.Name, PointID(i).String())
		}
	}

	sun, ok := s.PointByName("Sun")
	if !ok || sun.ElementPoints != 40 {
		t.Errorf("Sun setting = %+v, %v", sun, ok)
	}
	mc, ok := s.PointByID(PointMediumCoeli)
	if !ok || mc.ElementPoints != 20 {
		t.Errorf("Medium_Coeli setting = %+v, %v", mc, ok)
	}

	// Mean nodes ship inactive; true nodes active.
	meanNode, _ := s.PointByName("Mean_Node")
	if meanNode.IsActive {
		t.Error("Mean_Node should be inactive by default")
	}
	trueNode, _ := s.PointByName("True_Node")
	if !trueNode.IsActive {
		t.Error("True_Node should be active by default")
	}
}

func TestDefaultSettingsAspectTable(t *testing.T) {
	s := DefaultSettings()

	wantOrbs := map[string]float64{
		"conjunction": 10,
		"opposition":  10,
		"trine":       8,
		"sextile":     6,
		"square":      5,
		"quintile":    1,
	}
	for name, orb := range wantOrbs {
		a, ok := s.AspectByName(name)
		if !ok {
			t.Errorf("aspect %q missing", name)
			continue
		}
		if a.Orb != orb {
			t.Errorf("aspect %q orb = %v, want %v", name, a.Orb, orb)
		}
		if !a.IsActive {
			t.Errorf("aspect %q should be active", name)
		}
	}

	active := s.ActiveAspects()
	if len(active) != 6 {
		t.Errorf("len(ActiveAspects()) = %d, want 6", len(active))
	}
	// Table order is matching precedence: conjunction first, opposition last.
	if active[0].Name != "conjunction" || active[len(active)-1].Name != "opposition" {
		t.Errorf("active order = %s..%s, want conjunction..opposition", active[0].Name, active[len(active)-1].Name)
	}
}

func TestActivePointsOrderedBySettings(t *testing.T) {
	subject := &Subject{
		Name: "Test",
		Points: []ChartPoint{
			{ID: PointMoon, Name: "Moon"},
			{ID: PointSun, Name: "Sun"},
			{ID: PointMeanNode, Name: "Mean_Node"},
		},
	}

	points := DefaultSettings().ActivePoints(subject)

	if len(points) != 2 {
		t.Fatalf("len = %d, want 2 (Mean_Node inactive)", len(points))
	}
	if points[0].Name != "Sun" || points[1].Name != "Moon" {
		t.Errorf("order = %s, %s, want Sun, Moon", points[0].Name, points[1].Name)
	}
}

func TestSettingsClone(t *testing.T) {
	original := DefaultSettings()
	clone := original.Clone()

	clone.Points[0].IsActive = false
	clone.Aspects[0].Orb = 99
	clone.General.AxisOrb = 5

	if !original.Points[0].IsActive {
		t.Error("mutating clone changed original point table")
	}
	if original.Aspects[0].Orb == 99 {
		t.Error("mutating clone changed original aspect table")
	}
	if original.General.AxisOrb == 5 {
		t.Error("mutating clone changed original general settings")
	}
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"no points", func(s *Settings) { s.Points = nil }},
		{"no aspects", func(s *Settings) { s.Aspects = nil }},
		{"unnamed point", func(s *Settings) { s.Points[3].Name = "" }},
		{"duplicate point", func(s *Settings) { s.Points[1].Name = s.Points[0].Name }},
		{"negative orb", func(s *Settings) { s.Aspects[0].Orb = -1 }},
		{"degree out of range", func(s *Settings) { s.Aspects[0].Degree = 181 }},
		{"negative axis orb", func(s *Settings) { s.General.AxisOrb = -0.5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings().Clone()
			tt.mutate(s)
			if err := s.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestLoadSettings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.toml")

	override := `
[general]
axis_orb = 2.5
`
	if err := os.WriteFile(path, []byte(override), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}

	if s.General.AxisOrb != 2.5 {
		t.Errorf("AxisOrb = %v, want 2.5 from override", s.General.AxisOrb)
	}
	// Untouched sections keep defaults.
	if len(s.Points) != NumPointIDs {
		t.Errorf("len(Points) = %d, want %d defaults preserved", len(s.Points), NumPointIDs)
	}

	if _, err := LoadSettings(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("LoadSettings(missing) = nil error, want error")
	}
}
