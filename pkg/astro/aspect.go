package astro

import (
	"math"
)

// AspectEdge is one angular relationship between two chart points. P1 and
// P2 are the stable point identifiers used for glyph lookups; the owner
// fields distinguish the two wheels of dual charts.
type AspectEdge struct {
	P1Name   string  `json:"p1_name" bson:"p1_name"`
	P1Owner  string  `json:"p1_owner,omitempty" bson:"p1_owner,omitempty"`
	P1AbsPos float64 `json:"p1_abs_pos" bson:"p1_abs_pos"`
	P2Name   string  `json:"p2_name" bson:"p2_name"`
	P2Owner  string  `json:"p2_owner,omitempty" bson:"p2_owner,omitempty"`
	P2AbsPos float64 `json:"p2_abs_pos" bson:"p2_abs_pos"`

	// Aspect is the matched class name (e.g. "trine") and Degrees its exact
	// angle. Orbit is the deviation from that angle, Diff the raw position
	// difference before normalization.
	Aspect  string  `json:"aspect" bson:"aspect"`
	Degrees int     `json:"aspect_degrees" bson:"aspect_degrees"`
	Orbit   float64 `json:"orbit" bson:"orbit"`
	Diff    float64 `json:"diff" bson:"diff"`

	P1 PointID `json:"p1" bson:"p1"`
	P2 PointID `json:"p2" bson:"p2"`
}

// IsMajor reports whether the edge is one of the five Ptolemaic aspects.
func (a AspectEdge) IsMajor() bool {
	switch a.Degrees {
	case 0, 60, 90, 120, 180:
		return true
	}
	return false
}

// isOppositePair reports whether two points oppose each other by
// construction: the axis pairs and the lunar node pairs. Their aspects are
// geometric artifacts, so single-chart aspect runs skip them.
func isOppositePair(a, b string) bool {
	switch {
	case a == "Ascendant" && b == "Descendant", a == "Descendant" && b == "Ascendant":
		return true
	case a == "Medium_Coeli" && b == "Imum_Coeli", a == "Imum_Coeli" && b == "Medium_Coeli":
		return true
	case a == "True_Node" && b == "True_South_Node", a == "True_South_Node" && b == "True_Node":
		return true
	case a == "Mean_Node" && b == "Mean_South_Node", a == "Mean_South_Node" && b == "Mean_Node":
		return true
	}
	return false
}

// matchAspect finds the first aspect class whose orb window contains the
// angular distance between two positions. The distance truncates to an
// integer before the window comparison, so an 10.9° separation still
// counts as a 10° conjunction orb hit.
func matchAspect(classes []AspectSetting, p1, p2 float64) (AspectEdge, bool) {
	distance := DegreeDiff(p1, p2)
	truncated := float64(int(distance))

	for _, c := range classes {
		if truncated >= float64(c.Degree)-c.Orb && truncated <= float64(c.Degree)+c.Orb {
			return AspectEdge{
				Aspect:  c.Name,
				Degrees: c.Degree,
				Orbit:   distance - float64(c.Degree),
				Diff:    math.Abs(p1 - p2),
			}, true
		}
	}
	return AspectEdge{}, false
}

// ComputeAspects finds all aspects between the active points of a single
// subject. Pairs are visited once (no symmetric duplicates) and the
// always-opposite pairs (axes, lunar nodes) are skipped.
func ComputeAspects(subject *Subject, settings *Settings) []AspectEdge {
	points := settings.ActivePoints(subject)
	classes := settings.ActiveAspects()

	var edges []AspectEdge
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			if isOppositePair(points[i].Name, points[j].Name) {
				continue
			}

			edge, ok := matchAspect(classes, points[i].AbsPos, points[j].AbsPos)
			if !ok {
				continue
			}

			edge.P1Name = points[i].Name
			edge.P1Owner = subject.Name
			edge.P1AbsPos = points[i].AbsPos
			edge.P2Name = points[j].Name
			edge.P2Owner = subject.Name
			edge.P2AbsPos = points[j].AbsPos
			edge.P1 = points[i].ID
			edge.P2 = points[j].ID
			edges = append(edges, edge)
		}
	}
	return edges
}

// ComputeDualAspects finds all aspects between the active points of two
// subjects, first against second. Every cross pair is considered; the
// opposite-pair skip does not apply across wheels.
func ComputeDualAspects(first, second *Subject, settings *Settings) []AspectEdge {
	firstPoints := settings.ActivePoints(first)
	secondPoints := settings.ActivePoints(second)
	classes := settings.ActiveAspects()

	var edges []AspectEdge
	for i := range firstPoints {
		for j := range secondPoints {
			edge, ok := matchAspect(classes, firstPoints[i].AbsPos, secondPoints[j].AbsPos)
			if !ok {
				continue
			}

			edge.P1Name = firstPoints[i].Name
			edge.P1Owner = first.Name
			edge.P1AbsPos = firstPoints[i].AbsPos
			edge.P2Name = secondPoints[j].Name
			edge.P2Owner = second.Name
			edge.P2AbsPos = secondPoints[j].AbsPos
			edge.P1 = firstPoints[i].ID
			edge.P2 = secondPoints[j].ID
			edges = append(edges, edge)
		}
	}
	return edges
}

// FilterRelevantAspects drops aspects involving a chart axis unless the
// orbit is tighter than the axis orb threshold. Axes conjunct or oppose
// half the wheel at wide orbs, so they need a stricter window.
func FilterRelevantAspects(edges []AspectEdge, axisOrb float64) []AspectEdge {
	relevant := make([]AspectEdge, 0, len(edges))
	for _, e := range edges {
		p1Axis := isAxisName(e.P1Name)
		p2Axis := isAxisName(e.P2Name)
		if (p1Axis || p2Axis) && math.Abs(e.Orbit) >= axisOrb {
			continue
		}
		relevant = append(relevant, e)
	}
	return relevant
}

func isAxisName(name string) bool {
	id, ok := ParsePointID(name)
	return ok && id.IsAxis()
}
