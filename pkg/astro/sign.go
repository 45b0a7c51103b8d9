package astro

// Elements and qualities as they appear in imported chart data.
const (
	ElementFire  = "Fire"
	ElementEarth = "Earth"
	ElementAir   = "Air"
	ElementWater = "Water"
)

const (
	QualityCardinal = "Cardinal"
	QualityFixed    = "Fixed"
	QualityMutable  = "Mutable"
)

// Sign describes one zodiac sign. Glyph is the three-letter identifier
// used for SVG symbol lookups (e.g. "#Ari").
type Sign struct {
	Num     int
	Glyph   string
	Label   string
	Element string
	Quality string
	Emoji   string
}

// Signs lists the twelve zodiac signs in ecliptic order, Aries first.
// Sign numbers in chart data index into this table.
var Signs = [12]Sign{
	{0, "Ari", "Aries", ElementFire, QualityCardinal, "♈"},
	{1, "Tau", "Taurus", ElementEarth, QualityFixed, "♉"},
	{2, "Gem", "Gemini", ElementAir, QualityMutable, "♊"},
	{3, "Can", "Cancer", ElementWater, QualityCardinal, "♋"},
	{4, "Leo", "Leo", ElementFire, QualityFixed, "♌"},
	{5, "Vir", "Virgo", ElementEarth, QualityMutable, "♍"},
	{6, "Lib", "Libra", ElementAir, QualityCardinal, "♎"},
	{7, "Sco", "Scorpio", ElementWater, QualityFixed, "♏"},
	{8, "Sag", "Sagittarius", ElementFire, QualityMutable, "♐"},
	{9, "Cap", "Capricorn", ElementEarth, QualityCardinal, "♑"},
	{10, "Aqu", "Aquarius", ElementAir, QualityFixed, "♒"},
	{11, "Pis", "Pisces", ElementWater, QualityMutable, "♓"},
}

// SignAt returns the sign containing an absolute ecliptic longitude.
func SignAt(absPos float64) Sign {
	n := int(absPos/30) % 12
	if n < 0 {
		n += 12
	}
	return Signs[n]
}

// SignByGlyph resolves a three-letter sign identifier like "Sco".
func SignByGlyph(glyph string) (Sign, bool) {
	for _, s := range Signs {
		if s.Glyph == glyph {
			return s, true
		}
	}
	return Sign{}, false
}
