package astro

import (
	"time"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Mode selects the wheel composition of a chart.
type Mode string

// Chart modes. Single-wheel modes place one subject's points inside the
// zodiac ring; dual-wheel modes add a second ring of points between the
// zodiac and the first subject's wheel.
const (
	ModeNatal         Mode = "Natal"
	ModeExternalNatal Mode = "ExternalNatal"
	ModeComposite     Mode = "Composite"
	ModeSingleReturn  Mode = "SingleReturn"
	ModeTransit       Mode = "Transit"
	ModeSynastry      Mode = "Synastry"
	ModeDualReturn    Mode = "DualReturn"
)

// ValidModes enumerates supported chart modes for validation and CLI help.
var ValidModes = map[Mode]bool{
	ModeNatal:         true,
	ModeExternalNatal: true,
	ModeComposite:     true,
	ModeSingleReturn:  true,
	ModeTransit:       true,
	ModeSynastry:      true,
	ModeDualReturn:    true,
}

// IsDualWheel reports whether the mode renders two rings of points.
func (m Mode) IsDualWheel() bool {
	switch m {
	case ModeTransit, ModeSynastry, ModeDualReturn:
		return true
	}
	return false
}

// RequiresSecondSubject reports whether the mode needs a second subject.
// Composite charts merge two subjects upstream and arrive as one.
func (m Mode) RequiresSecondSubject() bool {
	return m.IsDualWheel()
}

// Return chart flavors for SingleReturn and DualReturn modes.
const (
	ReturnSolar = "Solar"
	ReturnLunar = "Lunar"
)

// =============================================================================
// LunarPhase
// =============================================================================

// LunarPhase describes the Moon's illumination at the chart moment.
type LunarPhase struct {
	DegreesBetweenSunMoon float64 `json:"degrees_between_s_m" bson:"degrees_between_s_m"`
	MoonPhase             int     `json:"moon_phase" bson:"moon_phase"`
	MoonEmoji             string  `json:"moon_emoji,omitempty" bson:"moon_emoji,omitempty"`
	MoonPhaseName         string  `json:"moon_phase_name,omitempty" bson:"moon_phase_name,omitempty"`
}

// =============================================================================
// Subject
// =============================================================================

// Subject is one chart wheel's worth of data: a person or event with its
// computed celestial points and house cusps. Positions arrive precomputed;
// this package never runs ephemeris math.
type Subject struct {
	Name   string  `json:"name" bson:"name"`
	City   string  `json:"city,omitempty" bson:"city,omitempty"`
	Nation string  `json:"nation,omitempty" bson:"nation,omitempty"`
	Lat    float64 `json:"lat" bson:"lat"`
	Lng    float64 `json:"lng" bson:"lng"`

	// LocalTime is the chart moment in local civil time. The zone offset
	// carried by the value feeds the "[+HH:MM]" suffix in chart captions.
	LocalTime time.Time `json:"local_time" bson:"local_time"`
	TZName    string    `json:"tz_name,omitempty" bson:"tz_name,omitempty"`

	ZodiacType  string `json:"zodiac_type,omitempty" bson:"zodiac_type,omitempty"`
	HouseSystem string `json:"house_system,omitempty" bson:"house_system,omitempty"`

	Points     []ChartPoint `json:"points" bson:"points"`
	Houses     []HouseCusp  `json:"houses" bson:"houses"`
	LunarPhase *LunarPhase  `json:"lunar_phase,omitempty" bson:"lunar_phase,omitempty"`
}

// Point returns the subject's point with the given identifier.
func (s *Subject) Point(id PointID) (ChartPoint, bool) {
	for _, p := range s.Points {
		if p.ID == id {
			return p, true
		}
	}
	return ChartPoint{}, false
}

// PointByName returns the subject's point with the given canonical name.
func (s *Subject) PointByName(name string) (ChartPoint, bool) {
	for _, p := range s.Points {
		if p.Name == name {
			return p, true
		}
	}
	return ChartPoint{}, false
}

// House returns the cusp for a house number in [1, 12].
func (s *Subject) House(number int) (HouseCusp, bool) {
	for _, h := range s.Houses {
		if h.Number == number {
			return h, true
		}
	}
	return HouseCusp{}, false
}

// =============================================================================
// Chart
// =============================================================================

// Chart is the unit of work for the renderer: one or two subjects, a mode,
// and the aspects between their points. Aspects may arrive precomputed or
// be filled in by the pipeline from the chart's own positions.
type Chart struct {
	ID   string `json:"id,omitempty" bson:"_id,omitempty"`
	Mode Mode   `json:"mode" bson:"mode"`

	First  Subject  `json:"first" bson:"first"`
	Second *Subject `json:"second,omitempty" bson:"second,omitempty"`

	// ReturnType distinguishes solar from lunar returns in titles.
	// Only meaningful for SingleReturn and DualReturn modes.
	ReturnType string `json:"return_type,omitempty" bson:"return_type,omitempty"`

	Aspects []AspectEdge `json:"aspects,omitempty" bson:"aspects,omitempty"`
}
