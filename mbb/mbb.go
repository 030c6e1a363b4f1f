// Package mbb computes the minimum-area oriented bounding box of a convex
// polygon via rotating calipers.
package mbb

import (
	"math"

	"github.com/saebelma/nesting/geom"
)

// MinimumBoundingBox returns the minimum-area oriented rectangle enclosing
// the convex polygon hull.
//
// The rotating-calipers theorem guarantees the minimum-area bounding
// rectangle of a convex polygon always has one side flush with one of the
// polygon's edges; this walks all n hull edges (equivalent to sweeping all
// four calipers through their full pi/2 rotation and emitting a candidate
// rectangle at each stop) and keeps the minimum-area candidate.
func MinimumBoundingBox(hull geom.Polygon) geom.OrientedRectangle {
	n := hull.Len()
	best := geom.OrientedRectangle{}
	bestArea := math.Inf(1)

	for i := 0; i < n; i++ {
		edge := hull.Edge(i)
		dir := edge.Vector()
		length := dir.Length()
		if length < 1e-12 {
			continue
		}
		ux, uy := dir.DX/length, dir.DY/length // caliper axis
		nx, ny := -uy, ux                      // perpendicular axis

		minU, maxU := math.Inf(1), math.Inf(-1)
		minN, maxN := math.Inf(1), math.Inf(-1)
		for j := 0; j < n; j++ {
			p := hull.At(j)
			u := p.X()*ux + p.Y()*uy
			v := p.X()*nx + p.Y()*ny
			if u < minU {
				minU = u
			}
			if u > maxU {
				maxU = u
			}
			if v < minN {
				minN = v
			}
			if v > maxN {
				maxN = v
			}
		}

		area := (maxU - minU) * (maxN - minN)
		if area < bestArea {
			bestArea = area
			best = rectFromAxes(ux, uy, nx, ny, minU, maxU, minN, maxN)
		}
	}
	return best
}

func rectFromAxes(ux, uy, nx, ny, minU, maxU, minN, maxN float64) geom.OrientedRectangle {
	corner := func(u, v float64) geom.Point {
		return geom.NewPoint(u*ux+v*nx, u*uy+v*ny)
	}
	return geom.OrientedRectangle{Corners: [4]geom.Point{
		corner(minU, minN),
		corner(maxU, minN),
		corner(maxU, maxN),
		corner(minU, maxN),
	}}
}
