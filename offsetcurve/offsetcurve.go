// Package offsetcurve builds the polygonized parallel curve of a polygon at
// a given clearance distance, and the offset curve: the same parallel curve
// with self-intersections iteratively removed until it is simple.
package offsetcurve

import (
	"math"

	"github.com/saebelma/nesting/geom"
)

// ParallelCurve returns the polygonized parallel curve of p at distance r:
// each edge's parallel segment on its right (outward, for a CCW polygon)
// side, joined at convex vertices by a circular arc of radius r,
// discretized so each arc chord has normal error at most maxNormalError.
// Reflex vertices are left as direct segment-to-segment joins, which
// self-intersect; OffsetCurve resolves those.
func ParallelCurve(p geom.Polygon, r, maxNormalError float64) geom.Polygon {
	n := p.Len()
	alphaMax := maxSubAngle(r, maxNormalError)

	pts := make([]geom.Point, 0, 2*n)
	for i := 0; i < n; i++ {
		edge := p.Edge(i)
		normal := outwardNormal(edge.Vector()).Scale(r)
		pts = append(pts, edge.A.Add(normal), edge.B.Add(normal))

		if !p.IsConvexAt(i + 1) {
			continue // reflex: let segments meet directly, self-intersecting
		}
		nextNormal := outwardNormal(p.Edge(i + 1).Vector()).Scale(r)
		vertex := p.At(i + 1)
		arc := geom.Arc{
			Center:     vertex,
			Radius:     r,
			StartAngle: normal.Angle(),
			EndAngle:   nextNormal.Angle(),
		}
		arcPts := arc.Polygonize(alphaMax)
		if len(arcPts) > 2 {
			pts = append(pts, arcPts[1:len(arcPts)-1]...)
		}
	}
	return geom.Polygon{Vertices: pts}
}

// maxSubAngle returns the largest central angle a single arc chord may span
// while keeping the chord-to-arc normal error within delta, per spec 4.6:
// alpha_max = 2*asin(sqrt((r+delta)^2 - r^2) / (r+delta)).
func maxSubAngle(r, delta float64) float64 {
	if r <= 0 {
		return math.Pi
	}
	if delta <= 0 {
		delta = 1e-6
	}
	rd := r + delta
	arg := math.Sqrt(rd*rd-r*r) / rd
	if arg > 1 {
		arg = 1
	}
	return 2 * math.Asin(arg)
}

func outwardNormal(v geom.Vector) geom.Vector {
	length := v.Length()
	if length < 1e-12 {
		return geom.Vector{}
	}
	return geom.Vector{DX: v.DY / length, DY: -v.DX / length}
}

// OffsetCurve returns the simple, CCW offset polygon of p at clearance r:
// the polygonized parallel curve (ParallelCurve), with self-intersections
// iteratively removed.
func OffsetCurve(p geom.Polygon, r, maxNormalError float64) geom.Polygon {
	return RemoveSelfIntersections(ParallelCurve(p, r, maxNormalError))
}

// RemoveSelfIntersections repeatedly scans p for a pair of non-consecutive
// edges that intersect; on each hit, the first edge's terminal vertex is
// replaced by the intersection point, every vertex strictly between the two
// edges is deleted, and the scan restarts. It terminates when a full scan
// finds no intersection (worst case O(n^3), negligible in practice for
// offset curves of realistic parts).
func RemoveSelfIntersections(p geom.Polygon) geom.Polygon {
	verts := append([]geom.Point(nil), p.Vertices...)
	for {
		n := len(verts)
		if n < 4 {
			break
		}
		poly := geom.Polygon{Vertices: verts}
		fixed := false
		for i := 0; i < n && !fixed; i++ {
			for j := i + 2; j < n && !fixed; j++ {
				if i == 0 && j == n-1 {
					continue // consecutive through the wraparound edge
				}
				e1, e2 := poly.Edge(i), poly.Edge(j)
				ip, ok := e1.Intersect(e2)
				if !ok {
					continue
				}
				next := make([]geom.Point, 0, n)
				next = append(next, verts[:i+1]...)
				next = append(next, ip)
				next = append(next, verts[j+1:]...)
				verts = next
				fixed = true
			}
		}
		if !fixed {
			break
		}
	}
	return geom.Polygon{Vertices: verts}
}
