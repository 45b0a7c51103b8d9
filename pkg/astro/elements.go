package astro

import (
	"math"
	"sort"
)

// ElementDistribution holds weighted element totals and their rounded
// percentages. Percentages always sum to exactly 100 unless all totals
// are zero.
type ElementDistribution struct {
	Fire  float64 `json:"fire" bson:"fire"`
	Earth float64 `json:"earth" bson:"earth"`
	Air   float64 `json:"air" bson:"air"`
	Water float64 `json:"water" bson:"water"`

	FirePercentage  int `json:"fire_percentage" bson:"fire_percentage"`
	EarthPercentage int `json:"earth_percentage" bson:"earth_percentage"`
	AirPercentage   int `json:"air_percentage" bson:"air_percentage"`
	WaterPercentage int `json:"water_percentage" bson:"water_percentage"`
}

// QualityDistribution holds weighted quality totals and their rounded
// percentages.
type QualityDistribution struct {
	Cardinal float64 `json:"cardinal" bson:"cardinal"`
	Fixed    float64 `json:"fixed" bson:"fixed"`
	Mutable  float64 `json:"mutable" bson:"mutable"`

	CardinalPercentage int `json:"cardinal_percentage" bson:"cardinal_percentage"`
	FixedPercentage    int `json:"fixed_percentage" bson:"fixed_percentage"`
	MutablePercentage  int `json:"mutable_percentage" bson:"mutable_percentage"`
}

// accumulateElementPoints adds each active point's configured weight to the
// element of the sign it occupies.
func accumulateElementPoints(totals map[string]float64, subject *Subject, settings *Settings) {
	for _, ps := range settings.Points {
		if !ps.IsActive {
			continue
		}
		p, ok := subject.PointByName(ps.Name)
		if !ok {
			continue
		}
		if p.SignNum < 0 || p.SignNum >= len(Signs) {
			continue
		}
		totals[Signs[p.SignNum].Element] += float64(ps.ElementPoints)
	}
}

func accumulateQualityPoints(totals map[string]float64, subject *Subject, settings *Settings) {
	for _, ps := range settings.Points {
		if !ps.IsActive {
			continue
		}
		p, ok := subject.PointByName(ps.Name)
		if !ok {
			continue
		}
		if p.SignNum < 0 || p.SignNum >= len(Signs) {
			continue
		}
		totals[Signs[p.SignNum].Quality] += float64(ps.ElementPoints)
	}
}

// ComputeElementDistribution weighs the chart's active points by element.
// Synastry charts combine both subjects; every other mode uses the first
// subject only.
func ComputeElementDistribution(chart *Chart, settings *Settings) ElementDistribution {
	totals := map[string]float64{
		ElementFire:  0,
		ElementEarth: 0,
		ElementAir:   0,
		ElementWater: 0,
	}

	accumulateElementPoints(totals, &chart.First, settings)
	if chart.Mode == ModeSynastry && chart.Second != nil {
		accumulateElementPoints(totals, chart.Second, settings)
	}

	d := ElementDistribution{
		Fire:  totals[ElementFire],
		Earth: totals[ElementEarth],
		Air:   totals[ElementAir],
		Water: totals[ElementWater],
	}

	percentages := DistributePercentages(totals)
	d.FirePercentage = percentages[ElementFire]
	d.EarthPercentage = percentages[ElementEarth]
	d.AirPercentage = percentages[ElementAir]
	d.WaterPercentage = percentages[ElementWater]
	return d
}

// ComputeQualityDistribution weighs the chart's active points by quality
// using the same per-point weights as the element distribution.
func ComputeQualityDistribution(chart *Chart, settings *Settings) QualityDistribution {
	totals := map[string]float64{
		QualityCardinal: 0,
		QualityFixed:    0,
		QualityMutable:  0,
	}

	accumulateQualityPoints(totals, &chart.First, settings)
	if chart.Mode == ModeSynastry && chart.Second != nil {
		accumulateQualityPoints(totals, chart.Second, settings)
	}

	d := QualityDistribution{
		Cardinal: totals[QualityCardinal],
		Fixed:    totals[QualityFixed],
		Mutable:  totals[QualityMutable],
	}

	percentages := DistributePercentages(totals)
	d.CardinalPercentage = percentages[QualityCardinal]
	d.FixedPercentage = percentages[QualityFixed]
	d.MutablePercentage = percentages[QualityMutable]
	return d
}

// DistributePercentages converts weighted totals to integer percentages
// that sum to exactly 100, using largest-remainder rounding. All-zero
// input yields all-zero output. Ties resolve deterministically: larger
// fractional remainder first, then key order.
func DistributePercentages(totals map[string]float64) map[string]int {
	out := make(map[string]int, len(totals))

	var sum float64
	for _, v := range totals {
		sum += v
	}
	if sum <= 0 {
		for k := range totals {
			out[k] = 0
		}
		return out
	}

	type share struct {
		key       string
		floor     int
		remainder float64
	}

	shares := make([]share, 0, len(totals))
	allocated := 0
	for k, v := range totals {
		exact := v / sum * 100
		f := int(math.Floor(exact))
		shares = append(shares, share{key: k, floor: f, remainder: exact - float64(f)})
		allocated += f
	}

	sort.Slice(shares, func(i, j int) bool {
		if shares[i].remainder != shares[j].remainder {
			return shares[i].remainder > shares[j].remainder
		}
		return shares[i].key < shares[j].key
	})

	leftover := 100 - allocated
	for i := range shares {
		out[shares[i].key] = shares[i].floor
		if leftover > 0 {
			out[shares[i].key]++
			leftover--
		}
	}
	return out
}
