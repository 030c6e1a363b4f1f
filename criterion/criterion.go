// Package criterion implements the two interchangeable nesting-score
// functions: convex-hull area and smallest-enclosing-circle area, each
// minimized to choose the next placement.
package criterion

import (
	"math/rand"
	"sort"

	"github.com/saebelma/nesting/geom"
	"github.com/saebelma/nesting/hull"
)

// Type selects which scoring function a Criterion implements.
type Type int

const (
	// ConvexHullArea scores a candidate by the area of the convex hull of
	// every placed vertex plus the probe polygon's vertices.
	ConvexHullArea Type = iota
	// SECArea scores a candidate by the area of the smallest enclosing
	// circle of the same vertex set.
	SECArea
)

// Criterion is the polymorphic scoring capability the nesting drivers
// consume: add a placed polygon's vertices to the running state, then
// evaluate a batch of candidate positions against a probe polygon.
type Criterion interface {
	AddPolygon(pos geom.IntegerVector, polygon geom.Polygon)
	// Evaluate scores every position in positions (iterated in the order
	// given -- callers must pass them in lexicographic order for
	// deterministic tie-breaking) and returns the best (lowest-scoring)
	// one. ok is false if positions is empty.
	Evaluate(positions []geom.IntegerVector, probe geom.Polygon) (best geom.IntegerVector, score float64, ok bool)
}

// New returns a fresh Criterion of the given type. rng is only consulted by
// SECArea (the convex-hull criterion is deterministic without it) but is
// required for a uniform constructor signature.
func New(t Type, rng *rand.Rand) Criterion {
	switch t {
	case SECArea:
		return &secCriterion{rng: rng}
	default:
		return &hullCriterion{}
	}
}

// InsertSorted inserts p into points, kept in ascending (x,y) order — the
// ordering spec 9 requires for the criterion's vertex set and the one
// tuple's multi-polygon scorer (package tuple) reuses verbatim rather than
// reimplementing.
func InsertSorted(points []geom.Point, p geom.Point) []geom.Point {
	i := sort.Search(len(points), func(i int) bool {
		if points[i].X() != p.X() {
			return points[i].X() > p.X()
		}
		return points[i].Y() > p.Y()
	})
	points = append(points, geom.Point{})
	copy(points[i+1:], points[i:])
	points[i] = p
	return points
}

func withTranslated(base []geom.Point, pos geom.IntegerVector, probe geom.Polygon) []geom.Point {
	out := append([]geom.Point(nil), base...)
	translated := probe.TranslateInt(pos)
	for _, v := range translated.Vertices {
		out = InsertSorted(out, v)
	}
	return out
}

type hullCriterion struct {
	vertices []geom.Point // hull-reduced after every AddPolygon
}

func (c *hullCriterion) AddPolygon(pos geom.IntegerVector, polygon geom.Polygon) {
	translated := polygon.TranslateInt(pos)
	for _, v := range translated.Vertices {
		c.vertices = InsertSorted(c.vertices, v)
	}
	c.vertices = hull.ConvexHullStream(c.vertices).Vertices
	sortPoints(c.vertices)
}

func (c *hullCriterion) Evaluate(positions []geom.IntegerVector, probe geom.Polygon) (geom.IntegerVector, float64, bool) {
	var (
		best    geom.IntegerVector
		bestArea = -1.0
		found    bool
	)
	for _, pos := range positions {
		pts := withTranslated(c.vertices, pos, probe)
		area := hull.ConvexHullStream(pts).Area()
		if !found || area < bestArea {
			best, bestArea, found = pos, area, true
		}
	}
	return best, bestArea, found
}

func sortPoints(pts []geom.Point) {
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X() != pts[j].X() {
			return pts[i].X() < pts[j].X()
		}
		return pts[i].Y() < pts[j].Y()
	})
}
