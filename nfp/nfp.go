// Package nfp computes the no-fit polygon of two convex polygons: the locus
// of reference-point positions of an orbiting polygon B such that B touches
// but does not overlap a fixed polygon A.
package nfp

import (
	"sort"

	"github.com/saebelma/nesting/geom"
)

type dirEdge struct {
	v     geom.Vector
	angle float64
}

// NoFitPolygon returns NFP(fixed, orbiting): both must be convex, CCW
// polygons. The reference point of fixed is its lowest-then-leftmost
// vertex; the reference point of orbiting is its highest-then-rightmost
// vertex (OrbitingRefPointIndex). The returned polygon is the locus of
// orbiting's reference point: its vertices are accumulated starting from
// fixed's reference point, and orbiting's reference point itself is not
// computed here.
func NoFitPolygon(fixed, orbiting geom.Polygon) geom.Polygon {
	edges := make([]dirEdge, 0, fixed.Len()+orbiting.Len())
	for i := 0; i < fixed.Len(); i++ {
		v := fixed.Edge(i).Vector()
		edges = append(edges, dirEdge{v: v, angle: v.Angle()})
	}
	for i := 0; i < orbiting.Len(); i++ {
		// reverse edges of the orbiting polygon
		v := orbiting.Edge(i).Vector().Neg()
		edges = append(edges, dirEdge{v: v, angle: v.Angle()})
	}

	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].angle < edges[j].angle
	})
	edges = mergeCollinear(edges)

	start := fixed.At(RefPointIndex(fixed))
	verts := make([]geom.Point, 0, len(edges))
	cur := start
	for _, e := range edges {
		verts = append(verts, cur)
		cur = cur.Add(e.v)
	}
	return geom.Polygon{Vertices: verts}
}

// mergeCollinear combines consecutive same-angle edges (inevitable whenever
// fixed and orbiting share a parallel side, e.g. nesting a shape against a
// copy of itself) into a single edge, so the Minkowski-sum construction
// doesn't leave a redundant vertex sitting in the middle of a straight run.
func mergeCollinear(edges []dirEdge) []dirEdge {
	out := edges[:0:0]
	for _, e := range edges {
		if n := len(out); n > 0 && anglesEqual(out[n-1].angle, e.angle) {
			out[n-1].v = out[n-1].v.Add(e.v)
			continue
		}
		out = append(out, e)
	}
	return out
}

func anglesEqual(a, b float64) bool {
	const eps = 1e-9
	d := a - b
	return d > -eps && d < eps
}

// RefPointIndex returns the index of p's lowest-then-leftmost vertex: the
// reference point used by the fixed polygon in a no-fit-polygon
// computation, and the bounding-box-independent "touch" anchor used
// throughout the raster pipeline. Same tie-break rule as
// geom.Polygon.ConvexVertexIndex, reused here rather than duplicated so the
// two can never drift apart.
func RefPointIndex(p geom.Polygon) int {
	return p.ConvexVertexIndex()
}

// OrbitingRefPointIndex returns the index of p's highest-then-rightmost
// vertex: the reference point of the orbiting polygon in a no-fit-polygon
// computation.
func OrbitingRefPointIndex(p geom.Polygon) int {
	best := 0
	for i := 1; i < p.Len(); i++ {
		v, b := p.At(i), p.At(best)
		if v.Y() > b.Y() || (v.Y() == b.Y() && v.X() > b.X()) {
			best = i
		}
	}
	return best
}
