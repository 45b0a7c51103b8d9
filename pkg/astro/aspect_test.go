package astro

import (
	"math"
	"testing"
)

func testSubject(name string, points ...ChartPoint) *Subject {
	return &Subject{Name: name, Points: points}
}

func TestComputeAspectsFindsKnownAngles(t *testing.T) {
	subject := testSubject("Natal",
		ChartPoint{ID: PointSun, Name: "Sun", AbsPos: 100},
		ChartPoint{ID: PointMoon, Name: "Moon", AbsPos: 220.5},
		ChartPoint{ID: PointMercury, Name: "Mercury", AbsPos: 110.9},
	)

	edges := ComputeAspects(subject, DefaultSettings())

	byPair := map[string]AspectEdge{}
	for _, e := range edges {
		byPair[e.P1Name+"/"+e.P2Name] = e
	}

	trine, ok := byPair["Sun/Moon"]
	if !ok {
		t.Fatal("expected Sun/Moon aspect")
	}
	if trine.Aspect != "trine" || trine.Degrees != 120 {
		t.Errorf("Sun/Moon = %s %d°, want trine 120°", trine.Aspect, trine.Degrees)
	}
	if math.Abs(trine.Orbit-0.5) > 1e-9 {
		t.Errorf("Sun/Moon orbit = %v, want 0.5", trine.Orbit)
	}
	if trine.P1 != PointSun || trine.P2 != PointMoon {
		t.Errorf("Sun/Moon ids = %d/%d, want %d/%d", trine.P1, trine.P2, PointSun, PointMoon)
	}

	// 10.9° separation truncates to 10, inside the conjunction orb.
	conj, ok := byPair["Sun/Mercury"]
	if !ok {
		t.Fatal("expected Sun/Mercury aspect")
	}
	if conj.Aspect != "conjunction" {
		t.Errorf("Sun/Mercury = %s, want conjunction", conj.Aspect)
	}
	if math.Abs(conj.Orbit-10.9) > 1e-9 {
		t.Errorf("Sun/Mercury orbit = %v, want 10.9", conj.Orbit)
	}
}

func TestComputeAspectsSkipsOppositePairs(t *testing.T) {
	subject := testSubject("Natal",
		ChartPoint{ID: PointAscendant, Name: "Ascendant", AbsPos: 0},
		ChartPoint{ID: PointDescendant, Name: "Descendant", AbsPos: 180},
		ChartPoint{ID: PointTrueNode, Name: "True_Node", AbsPos: 33},
		ChartPoint{ID: PointTrueSouthNode, Name: "True_South_Node", AbsPos: 213},
	)

	edges := ComputeAspects(subject, DefaultSettings())

	for _, e := range edges {
		if e.P1Name == "Ascendant" && e.P2Name == "Descendant" {
			t.Error("Ascendant/Descendant opposition should be skipped")
		}
		if e.P1Name == "True_Node" && e.P2Name == "True_South_Node" {
			t.Error("node axis opposition should be skipped")
		}
	}
}

func TestComputeAspectsInactiveClassesIgnored(t *testing.T) {
	// 30° separation is a semi-sextile, inactive by default.
	subject := testSubject("Natal",
		ChartPoint{ID: PointSun, Name: "Sun", AbsPos: 10},
		ChartPoint{ID: PointMoon, Name: "Moon", AbsPos: 40},
	)

	edges := ComputeAspects(subject, DefaultSettings())
	if len(edges) != 0 {
		t.Errorf("got %d edges, want 0 (semi-sextile inactive)", len(edges))
	}
}

func TestComputeDualAspects(t *testing.T) {
	first := testSubject("A",
		ChartPoint{ID: PointSun, Name: "Sun", AbsPos: 0},
		ChartPoint{ID: PointMoon, Name: "Moon", AbsPos: 120},
	)
	second := testSubject("B",
		ChartPoint{ID: PointSun, Name: "Sun", AbsPos: 90},
		ChartPoint{ID: PointMoon, Name: "Moon", AbsPos: 60.4},
	)

	edges := ComputeDualAspects(first, second, DefaultSettings())

	if len(edges) != 3 {
		t.Fatalf("got %d edges, want 3", len(edges))
	}

	for _, e := range edges {
		if e.P1Owner != "A" || e.P2Owner != "B" {
			t.Errorf("edge %s/%s owners = %s/%s, want A/B", e.P1Name, e.P2Name, e.P1Owner, e.P2Owner)
		}
	}

	byPair := map[string]string{}
	for _, e := range edges {
		byPair[e.P1Name+"/"+e.P2Name] = e.Aspect
	}

	if byPair["Sun/Sun"] != "square" {
		t.Errorf("A.Sun/B.Sun = %s, want square", byPair["Sun/Sun"])
	}
	if byPair["Sun/Moon"] != "sextile" {
		t.Errorf("A.Sun/B.Moon = %s, want sextile", byPair["Sun/Moon"])
	}
	if byPair["Moon/Moon"] != "sextile" {
		t.Errorf("A.Moon/B.Moon = %s, want sextile", byPair["Moon/Moon"])
	}
}

func TestFilterRelevantAspects(t *testing.T) {
	edges := []AspectEdge{
		{P1Name: "Sun", P2Name: "Moon", Orbit: 5},
		{P1Name: "Sun", P2Name: "Ascendant", Orbit: 2},
		{P1Name: "Medium_Coeli", P2Name: "Moon", Orbit: 0.5},
		{P1Name: "Sun", P2Name: "Ascendant", Orbit: -0.9},
	}

	relevant := FilterRelevantAspects(edges, 1.0)

	if len(relevant) != 3 {
		t.Fatalf("got %d relevant edges, want 3", len(relevant))
	}
	for _, e := range relevant {
		if e.P1Name == "Sun" && e.P2Name == "Ascendant" && e.Orbit == 2 {
			t.Error("wide axis aspect should be filtered")
		}
	}
}

func TestAspectEdgeIsMajor(t *testing.T) {
	majors := []int{0, 60, 90, 120, 180}
	for _, d := range majors {
		if !(AspectEdge{Degrees: d}).IsMajor() {
			t.Errorf("Degrees=%d IsMajor() = false, want true", d)
		}
	}
	for _, d := range []int{30, 45, 72, 135, 144, 150} {
		if (AspectEdge{Degrees: d}).IsMajor() {
			t.Errorf("Degrees=%d IsMajor() = true, want false", d)
		}
	}
}

func TestMatchAspectPrecedence(t *testing.T) {
	// A 7° separation could fall in an enlarged sextile window, but the
	// earlier conjunction class wins when its orb covers it.
	classes := []AspectSetting{
		{Degree: 0, Name: "conjunction", Orb: 10},
		{Degree: 60, Name: "sextile", Orb: 60},
	}

	edge, ok := matchAspect(classes, 0, 7)
	if !ok {
		t.Fatal("expected a match")
	}
	if edge.Aspect != "conjunction" {
		t.Errorf("matched %s, want conjunction", edge.Aspect)
	}
}
