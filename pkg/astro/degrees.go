package astro

import (
	"fmt"
	"math"
)

// NormalizeDegree maps an angle to the range [0, 360). Exact multiples of
// 360 normalize to positive zero, never to 360 or negative zero.
func NormalizeDegree(angle float64) float64 {
	m := math.Mod(angle, 360)
	if m < 0 {
		m += 360
	}
	if m == 0 {
		return 0
	}
	return m
}

// DegreeDiff returns the smallest angular distance between two angles,
// always in [0, 180].
func DegreeDiff(a, b float64) float64 {
	diff := math.Mod(math.Abs(a-b), 360)
	return math.Min(diff, 360-diff)
}

// DegreeSum adds two angles and normalizes the result to [0, 360).
func DegreeSum(a, b float64) float64 {
	return NormalizeDegree(a + b)
}

// DegreeFormat selects the precision of a formatted degree string.
type DegreeFormat int

const (
	// DegreeOnly renders like 17°.
	DegreeOnly DegreeFormat = iota + 1
	// DegreeMinute renders like 17°54'.
	DegreeMinute
	// DegreeMinuteSecond renders like 17°54'32".
	DegreeMinuteSecond
)

// FormatDegrees renders a decimal angle as a sexagesimal string.
// Components truncate rather than round, except seconds which round.
func FormatDegrees(dec float64, format DegreeFormat) string {
	degrees := int(dec)
	minutes := int((dec - float64(degrees)) * 60)
	seconds := int(math.Round((dec - float64(degrees) - float64(minutes)/60) * 3600))

	switch format {
	case DegreeOnly:
		return fmt.Sprintf("%d°", degrees)
	case DegreeMinute:
		return fmt.Sprintf("%d°%02d'", degrees, minutes)
	default:
		return fmt.Sprintf("%d°%02d'%02d\"", degrees, minutes, seconds)
	}
}

// FormatLatitude renders a latitude like 52°7'25" N. Negative values take
// the south label.
func FormatLatitude(coord float64, northLabel, southLabel string) string {
	sign := northLabel
	if coord < 0 {
		sign = southLabel
		coord = math.Abs(coord)
	}
	return formatCoordinate(coord, sign)
}

// FormatLongitude renders a longitude like 52°7'25" E. Negative values take
// the west label.
func FormatLongitude(coord float64, eastLabel, westLabel string) string {
	sign := eastLabel
	if coord < 0 {
		sign = westLabel
		coord = math.Abs(coord)
	}
	return formatCoordinate(coord, sign)
}

func formatCoordinate(coord float64, sign string) string {
	deg := int(coord)
	min := int((coord - float64(deg)) * 60)
	sec := int(math.Round(((coord-float64(deg))*60 - float64(min)) * 60))
	return fmt.Sprintf("%d°%d'%d\" %s", deg, min, sec, sign)
}
