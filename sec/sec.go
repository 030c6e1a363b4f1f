// Package sec computes the smallest enclosing circle of a point set via a
// Welzl-style randomized incremental construction, expected O(n).
package sec

import (
	"math"
	"math/rand"

	"github.com/saebelma/nesting/geom"
)

// SmallestEnclosingCircle returns the smallest circle enclosing all of
// points, using rng to shuffle the input. The caller supplies the RNG so
// that runs are reproducible given a fixed seed, per the engine's
// determinism contract.
func SmallestEnclosingCircle(points []geom.Point, rng *rand.Rand) geom.Circle {
	if len(points) == 0 {
		return geom.Circle{}
	}
	if len(points) == 1 {
		return geom.Circle{Center: points[0], Radius: 0}
	}

	pts := make([]geom.Point, len(points))
	copy(pts, points)
	rng.Shuffle(len(pts), func(i, j int) { pts[i], pts[j] = pts[j], pts[i] })

	c := circleFromTwo(pts[0], pts[1])
	for i := 2; i < len(pts); i++ {
		if c.Contains(pts[i]) {
			continue
		}
		c = circleWithBoundary1(pts[:i+1], i, pts[i])
	}
	return c
}

// circleWithBoundary1 rebuilds the circle so that pts[fixedIdx] lies on its
// boundary, considering only pts[:fixedIdx+1].
func circleWithBoundary1(pts []geom.Point, fixedIdx int, fixed geom.Point) geom.Circle {
	c := circleFromTwo(fixed, pts[0])
	for i := 1; i < fixedIdx; i++ {
		if c.Contains(pts[i]) {
			continue
		}
		c = circleWithBoundary2(pts[:i+1], fixed, pts[i])
	}
	return c
}

// circleWithBoundary2 rebuilds the circle so that both fixed and fixed2 lie
// on its boundary, considering only pts[:len(pts)].
func circleWithBoundary2(pts []geom.Point, fixed, fixed2 geom.Point) geom.Circle {
	c := circleFromTwo(fixed, fixed2)
	for i := 0; i < len(pts); i++ {
		if c.Contains(pts[i]) {
			continue
		}
		c = circumscribe(fixed, fixed2, pts[i])
	}
	return c
}

// circleFromTwo returns the circle with a, b as a diameter.
func circleFromTwo(a, b geom.Point) geom.Circle {
	center := geom.NewPoint((a.X()+b.X())/2, (a.Y()+b.Y())/2)
	return geom.Circle{Center: center, Radius: center.Dist(a)}
}

// circumscribe returns the circle through three points. If the three points
// are (numerically) collinear, it falls back to the circle spanning the two
// farthest-apart of the three, which is the best achievable enclosing
// circle for a degenerate triple and keeps the incremental construction
// from failing outright. The degeneracy is not surfaced to callers, and the
// input is not reshuffled and retried.
func circumscribe(a, b, c geom.Point) geom.Circle {
	ax, ay := a.X(), a.Y()
	bx, by := b.X(), b.Y()
	cx, cy := c.X(), c.Y()

	d := 2 * (ax*(by-cy) + bx*(cy-ay) + cx*(ay-by))
	if math.Abs(d) < 1e-9 {
		return largestPairCircle(a, b, c)
	}

	ux := ((ax*ax+ay*ay)*(by-cy) + (bx*bx+by*by)*(cy-ay) + (cx*cx+cy*cy)*(ay-by)) / d
	uy := ((ax*ax+ay*ay)*(cx-bx) + (bx*bx+by*by)*(ax-cx) + (cx*cx+cy*cy)*(bx-ax)) / d
	center := geom.NewPoint(ux, uy)
	return geom.Circle{Center: center, Radius: center.Dist(a)}
}

func largestPairCircle(a, b, c geom.Point) geom.Circle {
	cab := circleFromTwo(a, b)
	cbc := circleFromTwo(b, c)
	cac := circleFromTwo(a, c)
	best := cab
	if cbc.Radius > best.Radius {
		best = cbc
	}
	if cac.Radius > best.Radius {
		best = cac
	}
	return best
}
