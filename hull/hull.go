// Package hull computes the convex hull of a point set: a deterministic
// O(n log n) construction via a contour polygon followed by monotone
// correction, a presorted O(n) variant, and a streaming variant over an
// already key-ordered set (used by the nesting criterion, which maintains
// its vertex set in (x,y) order as placements accumulate).
package hull

import (
	"sort"

	"github.com/saebelma/nesting/geom"
)

// ConvexHull returns the convex hull of points, as a CCW polygon. Points are
// sorted internally; ties in x are broken by y, as required for a
// deterministic result.
func ConvexHull(points []geom.Point) geom.Polygon {
	sorted := make([]geom.Point, len(points))
	copy(sorted, points)
	sortByXY(sorted)
	return ConvexHullPresorted(sorted)
}

// ConvexHullPresorted is the O(n) variant: it assumes points is already
// sorted by (x,y) ascending and skips the sort step.
func ConvexHullPresorted(points []geom.Point) geom.Polygon {
	pts := dedupe(points)
	if len(pts) < 3 {
		return geom.Polygon{Vertices: pts}
	}
	lower, upper := buildContour(pts)
	contour := append(lower[:len(lower)-1:len(lower)-1], upper[:len(upper)-1]...)
	corrected := closeResidualConcavities(contour)
	return geom.Polygon{Vertices: corrected}
}

// ConvexHullStream is the convex hull of a point set that the caller already
// maintains in ascending (x,y) order (e.g. the nesting criterion's vertex
// set); it is identical to ConvexHullPresorted but named separately so
// call sites document that no additional sort is being performed.
func ConvexHullStream(orderedPoints []geom.Point) geom.Polygon {
	return ConvexHullPresorted(orderedPoints)
}

func sortByXY(pts []geom.Point) {
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X() != pts[j].X() {
			return pts[i].X() < pts[j].X()
		}
		return pts[i].Y() < pts[j].Y()
	})
}

func dedupe(sorted []geom.Point) []geom.Point {
	out := make([]geom.Point, 0, len(sorted))
	for i, p := range sorted {
		if i > 0 && p.Approx(sorted[i-1], 1e-12) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// buildContour implements spec 4.2 phase 1: two monotone chains, a lower
// one swept left to right and an upper one swept right to left, each
// keeping only the running extremal points that bound the set from below
// (resp. above).
func buildContour(sorted []geom.Point) (lower, upper []geom.Point) {
	lower = monotoneChain(sorted)

	rev := make([]geom.Point, len(sorted))
	for i, p := range sorted {
		rev[len(sorted)-1-i] = p
	}
	upper = monotoneChain(rev)
	return lower, upper
}

// monotoneChain builds one half of the hull over points already ordered by
// the sweep direction the caller wants: it appends each point in turn,
// popping the chain's tail whenever the tail no longer turns left (spec
// 4.2 phase 2's correction, applied incrementally rather than in a
// separate pass).
func monotoneChain(ordered []geom.Point) []geom.Point {
	var chain []geom.Point
	for _, p := range ordered {
		for len(chain) >= 2 {
			seg := geom.DirectedLineSegment{A: chain[len(chain)-2], B: chain[len(chain)-1]}
			if seg.LeftOf(p) {
				break
			}
			chain = chain[:len(chain)-1]
		}
		chain = append(chain, p)
	}
	return chain
}

// closeResidualConcavities is a final defensive pass guaranteeing the
// output is fully convex even across the seam where the lower and upper
// chains were joined. It repeats the same left-turn check cyclically
// until a full pass finds nothing to remove.
func closeResidualConcavities(v []geom.Point) []geom.Point {
	for {
		n := len(v)
		if n < 3 {
			return v
		}
		removed := false
		for i := 0; i < n; i++ {
			a := v[(i+n-1)%n]
			b := v[i]
			c := v[(i+1)%n]
			seg := geom.DirectedLineSegment{A: a, B: b}
			if !seg.LeftOf(c) {
				v = append(v[:i], v[i+1:]...)
				removed = true
				break
			}
		}
		if !removed {
			return v
		}
	}
}
