package astro

import (
	_ "embed"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/astrowheel/astrowheel/pkg/errors"
)

// PointSetting configures how one celestial point is calculated and drawn.
// Name keys glyph lookups in the SVG defs; Color references a CSS variable
// resolved by the active theme.
type PointSetting struct {
	ID            PointID `toml:"id" json:"id"`
	Name          string  `toml:"name" json:"name"`
	Label         string  `toml:"label" json:"label"`
	Color         string  `toml:"color" json:"color"`
	ElementPoints int     `toml:"element_points" json:"element_points"`
	IsActive      bool    `toml:"is_active" json:"is_active"`
}

// AspectSetting configures one aspect class: its exact angle, matching orb,
// and drawing color. Table order decides matching precedence.
type AspectSetting struct {
	Degree   int     `toml:"degree" json:"degree"`
	Name     string  `toml:"name" json:"name"`
	Color    string  `toml:"color" json:"color"`
	Orb      float64 `toml:"orb" json:"orb"`
	IsMajor  bool    `toml:"is_major" json:"is_major"`
	IsActive bool    `toml:"is_active" json:"is_active"`
}

// GeneralSettings holds thresholds that apply across chart types.
type GeneralSettings struct {
	// AxisOrb is the maximum orbit for aspects involving a chart axis.
	// Wider axis aspects are filtered out as noise.
	AxisOrb float64 `toml:"axis_orb" json:"axis_orb"`
}

// Settings is the full configurable surface of chart calculation and
// rendering: the celestial point table, the aspect class table, and
// general thresholds. Zero values are not usable; start from
// DefaultSettings or LoadSettings.
type Settings struct {
	General GeneralSettings `toml:"general" json:"general"`
	Points  []PointSetting  `toml:"celestial_points" json:"celestial_points"`
	Aspects []AspectSetting `toml:"aspects" json:"aspects"`
}

//go:embed default_settings.toml
var defaultSettingsTOML []byte

var (
	defaultSettings     *Settings
	defaultSettingsOnce sync.Once
)

// DefaultSettings returns the built-in settings table. The result is parsed
// once and shared; callers must not mutate it. Use Clone for a private copy.
func DefaultSettings() *Settings {
	defaultSettingsOnce.Do(func() {
		s := &Settings{}
		if err := toml.Unmarshal(defaultSettingsTOML, s); err != nil {
			// The embedded table is part of the build; a parse failure
			// is a programming error, not a runtime condition.
			panic("astro: invalid embedded default settings: " + err.Error())
		}
		defaultSettings = s
	})
	return defaultSettings
}

// LoadSettings reads a settings file in TOML format. Missing sections fall
// back to the built-in defaults, so a settings file can override just the
// aspect orbs or just the point table.
func LoadSettings(path string) (*Settings, error) {
	s := DefaultSettings().Clone()
	if _, err := toml.DecodeFile(path, s); err != nil {
		return nil, errors.Wrap(errors.ErrCodeConfiguration, err, "failed to load settings from %s", path)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Clone returns a deep copy safe for mutation.
func (s *Settings) Clone() *Settings {
	out := &Settings{
		General: s.General,
		Points:  make([]PointSetting, len(s.Points)),
		Aspects: make([]AspectSetting, len(s.Aspects)),
	}
	copy(out.Points, s.Points)
	copy(out.Aspects, s.Aspects)
	return out
}

// Validate checks the settings tables for unusable entries.
func (s *Settings) Validate() error {
	if len(s.Points) == 0 {
		return errors.New(errors.ErrCodeConfiguration, "settings define no celestial points")
	}
	if len(s.Aspects) == 0 {
		return errors.New(errors.ErrCodeConfiguration, "settings define no aspect classes")
	}

	seen := make(map[string]bool, len(s.Points))
	for _, p := range s.Points {
		if p.Name == "" {
			return errors.New(errors.ErrCodeConfiguration, "celestial point %d has no name", p.ID)
		}
		if seen[p.Name] {
			return errors.New(errors.ErrCodeConfiguration, "duplicate celestial point %q", p.Name)
		}
		seen[p.Name] = true
	}

	for _, a := range s.Aspects {
		if a.Orb < 0 {
			return errors.New(errors.ErrCodeConfiguration, "aspect %q has negative orb %v", a.Name, a.Orb)
		}
		if a.Degree < 0 || a.Degree > 180 {
			return errors.New(errors.ErrCodeConfiguration, "aspect %q has degree %d outside [0, 180]", a.Name, a.Degree)
		}
	}

	if s.General.AxisOrb < 0 {
		return errors.New(errors.ErrCodeConfiguration, "axis orb must not be negative")
	}

	return nil
}

// PointByName returns the setting for a canonical point name.
func (s *Settings) PointByName(name string) (PointSetting, bool) {
	for _, p := range s.Points {
		if p.Name == name {
			return p, true
		}
	}
	return PointSetting{}, false
}

// PointByID returns the setting for a point identifier.
func (s *Settings) PointByID(id PointID) (PointSetting, bool) {
	for _, p := range s.Points {
		if p.ID == id {
			return p, true
		}
	}
	return PointSetting{}, false
}

// ActivePoints returns the subject's points that are active in the
// settings, ordered by the settings table. Points the subject does not
// carry are skipped.
func (s *Settings) ActivePoints(subject *Subject) []ChartPoint {
	points := make([]ChartPoint, 0, len(s.Points))
	for _, ps := range s.Points {
		if !ps.IsActive {
			continue
		}
		if p, ok := subject.PointByName(ps.Name); ok {
			points = append(points, p)
		}
	}
	return points
}

// ActiveAspects returns the active aspect classes in table order.
// Matching precedence follows this order.
func (s *Settings) ActiveAspects() []AspectSetting {
	classes := make([]AspectSetting, 0, len(s.Aspects))
	for _, a := range s.Aspects {
		if a.IsActive {
			classes = append(classes, a)
		}
	}
	return classes
}

// AspectByName returns the setting for an aspect class name. Renderers use
// this for color lookups and skip edges whose class is not configured.
func (s *Settings) AspectByName(name string) (AspectSetting, bool) {
	for _, a := range s.Aspects {
		if a.Name == name {
			return a, true
		}
	}
	return AspectSetting{}, false
}
