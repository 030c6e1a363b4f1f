package criterion

import (
	"math/rand"

	"github.com/saebelma/nesting/geom"
	"github.com/saebelma/nesting/hull"
	"github.com/saebelma/nesting/sec"
)

// secCriterion scores candidates by the area of the smallest enclosing
// circle of the augmented vertex set. It still maintains the hull-reduced
// vertex list as an optimization: the smallest enclosing circle of a point
// set depends only on its convex hull, so feeding SEC only the hull
// vertices bounds its input size exactly like hullCriterion does for area.
type secCriterion struct {
	vertices []geom.Point
	rng      *rand.Rand
}

func (c *secCriterion) AddPolygon(pos geom.IntegerVector, polygon geom.Polygon) {
	translated := polygon.TranslateInt(pos)
	for _, v := range translated.Vertices {
		c.vertices = InsertSorted(c.vertices, v)
	}
	c.vertices = hull.ConvexHullStream(c.vertices).Vertices
	sortPoints(c.vertices)
}

func (c *secCriterion) Evaluate(positions []geom.IntegerVector, probe geom.Polygon) (geom.IntegerVector, float64, bool) {
	var (
		best     geom.IntegerVector
		bestArea = -1.0
		found    bool
	)
	for _, pos := range positions {
		pts := withTranslated(c.vertices, pos, probe)
		reduced := hull.ConvexHullStream(pts).Vertices
		circle := sec.SmallestEnclosingCircle(reduced, c.rng)
		area := circle.Area()
		if !found || area < bestArea {
			best, bestArea, found = pos, area, true
		}
	}
	return best, bestArea, found
}
