package geom

import "github.com/arl/gobj"

// AxisAlignedRectangle is an axis-aligned box given by its bottom-left
// corner and its (non-negative) width and height.
type AxisAlignedRectangle struct {
	BottomLeft    Point
	Width, Height float64
}

// Area returns the rectangle's area.
func (r AxisAlignedRectangle) Area() float64 {
	return r.Width * r.Height
}

// Center returns the rectangle's geometric center.
func (r AxisAlignedRectangle) Center() Point {
	return NewPoint(r.BottomLeft.X()+r.Width/2, r.BottomLeft.Y()+r.Height/2)
}

// TopRight returns the rectangle's top-right corner.
func (r AxisAlignedRectangle) TopRight() Point {
	return NewPoint(r.BottomLeft.X()+r.Width, r.BottomLeft.Y()+r.Height)
}

// aabb accumulates a gobj.AABB over a sequence of points, then converts it
// to an AxisAlignedRectangle. Grounded in gobj.AABB, the corpus's
// double-precision bounding-box accumulator.
type aabb struct {
	box gobj.AABB
}

func newAABB() *aabb {
	return &aabb{box: gobj.NewAABB()}
}

func (a *aabb) extend(p Point) {
	if p.X() < a.box.MinX {
		a.box.MinX = p.X()
	}
	if p.X() > a.box.MaxX {
		a.box.MaxX = p.X()
	}
	if p.Y() < a.box.MinY {
		a.box.MinY = p.Y()
	}
	if p.Y() > a.box.MaxY {
		a.box.MaxY = p.Y()
	}
}

func (a *aabb) rect() AxisAlignedRectangle {
	return AxisAlignedRectangle{
		BottomLeft: NewPoint(a.box.MinX, a.box.MinY),
		Width:      a.box.MaxX - a.box.MinX,
		Height:     a.box.MaxY - a.box.MinY,
	}
}

// BoundingBox returns the axis-aligned bounding box of a non-empty point
// sequence.
func BoundingBox(pts []Point) AxisAlignedRectangle {
	box := newAABB()
	for _, p := range pts {
		box.extend(p)
	}
	return box.rect()
}

// OrientedRectangle is a (possibly rotated) rectangle given by its four
// corners in CCW order.
type OrientedRectangle struct {
	Corners [4]Point
}

// Area returns the rectangle's area via two edge lengths.
func (r OrientedRectangle) Area() float64 {
	w := r.Corners[0].Dist(r.Corners[1])
	h := r.Corners[1].Dist(r.Corners[2])
	return w * h
}
