package astro

import (
	"fmt"
)

// PointID is the stable numeric identifier of a celestial point. The values
// match the glyph and color tables in the default settings, so serialized
// charts stay readable across versions.
type PointID int

const (
	PointSun PointID = iota
	PointMoon
	PointMercury
	PointVenus
	PointMars
	PointJupiter
	PointSaturn
	PointUranus
	PointNeptune
	PointPluto
	PointMeanNode
	PointTrueNode
	PointChiron
	PointAscendant
	PointMediumCoeli
	PointDescendant
	PointImumCoeli
	PointMeanLilith
	PointMeanSouthNode
	PointTrueSouthNode
)

// NumPointIDs is the size of the built-in point table.
const NumPointIDs = 20

// pointNames maps PointID to its canonical name. Names use underscores
// for multi-word points, matching glyph identifiers in the SVG defs.
var pointNames = [NumPointIDs]string{
	PointSun:           "Sun",
	PointMoon:          "Moon",
	PointMercury:       "Mercury",
	PointVenus:         "Venus",
	PointMars:          "Mars",
	PointJupiter:       "Jupiter",
	PointSaturn:        "Saturn",
	PointUranus:        "Uranus",
	PointNeptune:       "Neptune",
	PointPluto:         "Pluto",
	PointMeanNode:      "Mean_Node",
	PointTrueNode:      "True_Node",
	PointChiron:        "Chiron",
	PointAscendant:     "Ascendant",
	PointMediumCoeli:   "Medium_Coeli",
	PointDescendant:    "Descendant",
	PointImumCoeli:     "Imum_Coeli",
	PointMeanLilith:    "Mean_Lilith",
	PointMeanSouthNode: "Mean_South_Node",
	PointTrueSouthNode: "True_South_Node",
}

// String returns the canonical point name, or a numeric fallback for
// identifiers outside the built-in table.
func (id PointID) String() string {
	if id >= 0 && int(id) < len(pointNames) {
		return pointNames[id]
	}
	return fmt.Sprintf("Point(%d)", int(id))
}

// IsAxis reports whether the point is one of the four chart angles
// (Ascendant, Medium Coeli, Descendant, Imum Coeli). Axes get dedicated
// placement radii and stricter aspect orbs.
func (id PointID) IsAxis() bool {
	switch id {
	case PointAscendant, PointMediumCoeli, PointDescendant, PointImumCoeli:
		return true
	}
	return false
}

// ParsePointID resolves a canonical point name to its identifier.
func ParsePointID(name string) (PointID, bool) {
	for id, n := range pointNames {
		if n == name {
			return PointID(id), true
		}
	}
	return 0, false
}

// PointType distinguishes planets and similar bodies from axial cusps.
type PointType string

const (
	PointTypePlanet    PointType = "Planet"
	PointTypeAxialCusp PointType = "AxialCusp"
	PointTypeHouse     PointType = "House"
)

// ChartPoint is a celestial point placed on the ecliptic: a planet, lunar
// node, asteroid, or chart angle. Positions are in decimal degrees.
type ChartPoint struct {
	ID         PointID   `json:"id" bson:"id"`
	Name       string    `json:"name" bson:"name"`
	Quality    string    `json:"quality" bson:"quality"`
	Element    string    `json:"element" bson:"element"`
	Sign       string    `json:"sign" bson:"sign"`
	SignNum    int       `json:"sign_num" bson:"sign_num"`
	Position   float64   `json:"position" bson:"position"` // Degrees within the sign [0, 30)
	AbsPos     float64   `json:"abs_pos" bson:"abs_pos"`   // Absolute ecliptic longitude [0, 360)
	Emoji      string    `json:"emoji,omitempty" bson:"emoji,omitempty"`
	PointType  PointType `json:"point_type" bson:"point_type"`
	House      string    `json:"house,omitempty" bson:"house,omitempty"`
	Retrograde bool      `json:"retrograde,omitempty" bson:"retrograde,omitempty"`
}

// houseNames indexes the twelve cusp names by house number minus one.
var houseNames = [12]string{
	"First_House",
	"Second_House",
	"Third_House",
	"Fourth_House",
	"Fifth_House",
	"Sixth_House",
	"Seventh_House",
	"Eighth_House",
	"Ninth_House",
	"Tenth_House",
	"Eleventh_House",
	"Twelfth_House",
}

// HouseName returns the canonical cusp name for a house number in [1, 12].
func HouseName(number int) string {
	if number < 1 || number > 12 {
		return fmt.Sprintf("House(%d)", number)
	}
	return houseNames[number-1]
}

// IsHouseName reports whether name is one of the twelve canonical cusp names.
func IsHouseName(name string) bool {
	for _, n := range houseNames {
		if n == name {
			return true
		}
	}
	return false
}

// HouseCusp is the boundary of one of the twelve houses. Cusps share the
// positional fields of ChartPoint so grids can render them uniformly.
type HouseCusp struct {
	Number   int     `json:"number" bson:"number"` // 1..12
	Name     string  `json:"name" bson:"name"`
	Sign     string  `json:"sign" bson:"sign"`
	SignNum  int     `json:"sign_num" bson:"sign_num"`
	Position float64 `json:"position" bson:"position"`
	AbsPos   float64 `json:"abs_pos" bson:"abs_pos"`
}
