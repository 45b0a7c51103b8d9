package astro

import (
	"testing"
)

func TestDistributePercentages(t *testing.T) {
	tests := []struct {
		name     string
		totals   map[string]float64
		expected map[string]int
	}{
		{
			name:     "even thirds round to 100",
			totals:   map[string]float64{"a": 1, "b": 1, "c": 1},
			expected: map[string]int{"a": 34, "b": 33, "c": 33},
		},
		{
			name:     "exact quarters",
			totals:   map[string]float64{"a": 25, "b": 25, "c": 25, "d": 25},
			expected: map[string]int{"a": 25, "b": 25, "c": 25, "d": 25},
		},
		{
			name:     "all zero stays zero",
			totals:   map[string]float64{"a": 0, "b": 0},
			expected: map[string]int{"a": 0, "b": 0},
		},
		{
			name:     "single bucket",
			totals:   map[string]float64{"a": 12.5},
			expected: map[string]int{"a": 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistributePercentages(tt.totals)
			for k, want := range tt.expected {
				if got[k] != want {
					t.Errorf("DistributePercentages()[%s] = %d, want %d", k, got[k], want)
				}
			}
		})
	}
}

func TestDistributePercentagesAlwaysSumsTo100(t *testing.T) {
	inputs := []map[string]float64{
		{"fire": 40, "earth": 40, "air": 40, "water": 20},
		{"fire": 1, "earth": 1, "air": 1, "water": 1},
		{"fire": 33.3, "earth": 33.3, "air": 33.4, "water": 0},
		{"fire": 7, "earth": 11, "air": 13, "water": 17},
	}

	for _, totals := range inputs {
		got := DistributePercentages(totals)
		sum := 0
		for _, v := range got {
			sum += v
		}
		if sum != 100 {
			t.Errorf("percentages for %v sum to %d, want 100", totals, sum)
		}
	}
}

// elementTestChart puts Sun in Aries (40 fire), Moon in Taurus (40 earth),
// Ascendant in Gemini (40 air), and Medium Coeli in Cancer (20 water).
// The second subject has a Leo Sun (40 fire).
func elementTestChart(mode Mode) *Chart {
	first := Subject{
		Name: "A",
		Points: []ChartPoint{
			{ID: PointSun, Name: "Sun", SignNum: 0},
			{ID: PointMoon, Name: "Moon", SignNum: 1},
			{ID: PointAscendant, Name: "Ascendant", SignNum: 2},
			{ID: PointMediumCoeli, Name: "Medium_Coeli", SignNum: 3},
		},
	}
	second := Subject{
		Name: "B",
		Points: []ChartPoint{
			{ID: PointSun, Name: "Sun", SignNum: 4},
		},
	}
	return &Chart{Mode: mode, First: first, Second: &second}
}

func TestComputeElementDistribution(t *testing.T) {
	d := ComputeElementDistribution(elementTestChart(ModeNatal), DefaultSettings())

	if d.Fire != 40 || d.Earth != 40 || d.Air != 40 || d.Water != 20 {
		t.Errorf("totals = %v/%v/%v/%v, want 40/40/40/20", d.Fire, d.Earth, d.Air, d.Water)
	}

	sum := d.FirePercentage + d.EarthPercentage + d.AirPercentage + d.WaterPercentage
	if sum != 100 {
		t.Errorf("percentages sum to %d, want 100", sum)
	}
	if d.WaterPercentage != 14 {
		t.Errorf("water percentage = %d, want 14", d.WaterPercentage)
	}
}

func TestComputeElementDistributionSynastryCombines(t *testing.T) {
	d := ComputeElementDistribution(elementTestChart(ModeSynastry), DefaultSettings())

	// Second subject's Leo Sun adds another 40 fire points.
	if d.Fire != 80 {
		t.Errorf("fire total = %v, want 80", d.Fire)
	}

	// Transit charts ignore the second subject.
	d = ComputeElementDistribution(elementTestChart(ModeTransit), DefaultSettings())
	if d.Fire != 40 {
		t.Errorf("transit fire total = %v, want 40", d.Fire)
	}
}

func TestComputeQualityDistribution(t *testing.T) {
	d := ComputeQualityDistribution(elementTestChart(ModeNatal), DefaultSettings())

	// Aries cardinal 40, Taurus fixed 40, Gemini mutable 40, Cancer cardinal 20.
	if d.Cardinal != 60 || d.Fixed != 40 || d.Mutable != 40 {
		t.Errorf("totals = %v/%v/%v, want 60/40/40", d.Cardinal, d.Fixed, d.Mutable)
	}

	sum := d.CardinalPercentage + d.FixedPercentage + d.MutablePercentage
	if sum != 100 {
		t.Errorf("percentages sum to %d, want 100", sum)
	}
}
