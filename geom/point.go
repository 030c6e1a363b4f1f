// Package geom is the computational-geometry kernel the nesting engine is
// built on: points, vectors, polygons, segments, circles and rectangles, all
// in double precision and all two-dimensional.
package geom

import (
	"math"

	"github.com/arl/gobj"
)

// Point is an immutable 2D point in real (double precision) coordinates.
//
// It is backed by a gobj.Vertex, the corpus's double-precision homogeneous
// vertex type, used here purely as a 2-component carrier.
type Point struct {
	v gobj.Vertex
}

// NewPoint returns the point (x, y).
func NewPoint(x, y float64) Point {
	return Point{v: gobj.NewVertex2D(x, y)}
}

// Origin is the point (0, 0).
var Origin = NewPoint(0, 0)

// X returns the point's x coordinate.
func (p Point) X() float64 { return p.v.X() }

// Y returns the point's y coordinate.
func (p Point) Y() float64 { return p.v.Y() }

// Add returns p translated by the given vector.
func (p Point) Add(v Vector) Point {
	return NewPoint(p.X()+v.DX, p.Y()+v.DY)
}

// Sub returns the vector from o to p.
func (p Point) Sub(o Point) Vector {
	return Vector{DX: p.X() - o.X(), DY: p.Y() - o.Y()}
}

// AddInt translates p by an IntegerVector.
func (p Point) AddInt(v IntegerVector) Point {
	return NewPoint(p.X()+float64(v.X), p.Y()+float64(v.Y))
}

// Dist returns the Euclidean distance between p and o.
func (p Point) Dist(o Point) float64 {
	dx, dy := p.X()-o.X(), p.Y()-o.Y()
	return math.Sqrt(dx*dx + dy*dy)
}

// Rotate returns p rotated by angle radians (CCW) around origin.
func (p Point) Rotate(origin Point, angle float64) Point {
	s, c := math.Sincos(angle)
	dx, dy := p.X()-origin.X(), p.Y()-origin.Y()
	return NewPoint(
		origin.X()+dx*c-dy*s,
		origin.Y()+dx*s+dy*c,
	)
}

// Rotate180 returns p rotated 180 degrees around origin. It is exact
// (no trigonometric rounding), unlike the general Rotate.
func (p Point) Rotate180(origin Point) Point {
	return NewPoint(2*origin.X()-p.X(), 2*origin.Y()-p.Y())
}

// Approx reports whether p and o are equal within eps.
func (p Point) Approx(o Point, eps float64) bool {
	return math.Abs(p.X()-o.X()) <= eps && math.Abs(p.Y()-o.Y()) <= eps
}

// Vector is a free 2D displacement in real coordinates.
type Vector struct {
	DX, DY float64
}

// Length returns the Euclidean norm of v.
func (v Vector) Length() float64 {
	return math.Sqrt(v.DX*v.DX + v.DY*v.DY)
}

// Cross returns the z component of the 2D cross product v x o.
func (v Vector) Cross(o Vector) float64 {
	return v.DX*o.DY - v.DY*o.DX
}

// Dot returns the dot product v . o.
func (v Vector) Dot(o Vector) float64 {
	return v.DX*o.DX + v.DY*o.DY
}

// Angle returns the angle of v from the positive x axis, in [0, 2*pi).
func (v Vector) Angle() float64 {
	a := math.Atan2(v.DY, v.DX)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// Scale returns v scaled by f.
func (v Vector) Scale(f float64) Vector {
	return Vector{DX: v.DX * f, DY: v.DY * f}
}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector{DX: v.DX + o.DX, DY: v.DY + o.DY}
}

// Neg returns -v.
func (v Vector) Neg() Vector {
	return Vector{DX: -v.DX, DY: -v.DY}
}
