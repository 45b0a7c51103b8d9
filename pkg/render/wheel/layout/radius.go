package layout

import "github.com/astrowheel/astrowheel/pkg/astro"

// Ring identifies which wheel a set of glyphs belongs to in a dual chart.
type Ring int

const (
	// RingPrimary is the inner wheel carrying the first subject.
	RingPrimary Ring = iota
	// RingSecondary is the rim ring carrying the second subject.
	RingSecondary
)

// RadialTier fixes how far inside the rim glyphs sit. Axis points stay on
// their own line; other points alternate between two insets so crowded
// neighbors stack like bricks instead of touching.
type RadialTier struct {
	Axis      float64
	Alternate [2]float64
}

// Inset tables per wheel variant.
var (
	TierSingle   = RadialTier{Axis: 40, Alternate: [2]float64{94, 74}}
	TierExternal = RadialTier{Axis: 10, Alternate: [2]float64{10, 10}}
	TierDualMain = RadialTier{Axis: 76, Alternate: [2]float64{130, 110}}
	TierDualRim  = RadialTier{Axis: 9, Alternate: [2]float64{26, 18}}
)

// TierFor returns the inset table for a chart mode and ring.
func TierFor(mode astro.Mode, ring Ring) RadialTier {
	if ring == RingSecondary {
		return TierDualRim
	}
	switch {
	case mode == astro.ModeExternalNatal:
		return TierExternal
	case mode.IsDualWheel():
		return TierDualMain
	default:
		return TierSingle
	}
}

// Insets assigns a radial inset to every point in draw order. Axis points
// do not consume an alternation slot.
func (t RadialTier) Insets(isAxis []bool) []float64 {
	insets := make([]float64, len(isAxis))
	alt := 0
	for i, axis := range isAxis {
		if axis {
			insets[i] = t.Axis
			continue
		}
		insets[i] = t.Alternate[alt]
		alt = 1 - alt
	}
	return insets
}
