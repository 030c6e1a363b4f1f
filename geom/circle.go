package geom

import "math"

// circleEps is the slack used by Circle.Contains so that points exactly on
// the boundary are treated as inside, per the data model's contract.
const circleEps = 1e-9

// Circle is a circle given by its center and radius.
type Circle struct {
	Center Point
	Radius float64
}

// Contains reports whether p lies within the circle, within circleEps.
func (c Circle) Contains(p Point) bool {
	return c.Center.Dist(p) <= c.Radius+circleEps
}

// Area returns the circle's area.
func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}
