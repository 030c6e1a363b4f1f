package geom

import "math"

// Line is an infinite line in coordinate form: A*x + B*y = C.
type Line struct {
	A, B, C float64
}

// LineThrough returns the line through p and q.
func LineThrough(p, q Point) Line {
	a := q.Y() - p.Y()
	b := p.X() - q.X()
	c := a*p.X() + b*p.Y()
	return Line{A: a, B: b, C: c}
}

// IntersectLine returns the intersection of l and o, and false if the lines
// are parallel (including coincident).
//
//	x = (c1*b2 - c2*b1) / (a1*b2 - a2*b1)
//	y = (a1*c2 - a2*c1) / (a1*b2 - a2*b1)
func (l Line) IntersectLine(o Line) (Point, bool) {
	den := l.A*o.B - o.A*l.B
	if math.Abs(den) < 1e-12 {
		return Point{}, false
	}
	x := (l.C*o.B - o.C*l.B) / den
	y := (l.A*o.C - o.A*l.C) / den
	return NewPoint(x, y), true
}

// Arc is a circular arc of the given radius around Center, spanning
// [StartAngle, EndAngle) radians counter-clockwise.
type Arc struct {
	Center             Point
	Radius             float64
	StartAngle, EndAngle float64
}

// PointAt returns the point on the arc at angle t (absolute, radians).
func (a Arc) PointAt(t float64) Point {
	return NewPoint(
		a.Center.X()+a.Radius*math.Cos(t),
		a.Center.Y()+a.Radius*math.Sin(t),
	)
}

// centralAngle returns the arc's sweep, normalized to [0, 2*pi).
func (a Arc) centralAngle() float64 {
	d := a.EndAngle - a.StartAngle
	for d < 0 {
		d += 2 * math.Pi
	}
	for d >= 2*math.Pi {
		d -= 2 * math.Pi
	}
	return d
}

// Polygonize discretizes the arc into n+1 points (n sub-angles each no
// larger than maxSubAngle), from StartAngle to EndAngle inclusive.
func (a Arc) Polygonize(maxSubAngle float64) []Point {
	alpha := a.centralAngle()
	if alpha == 0 {
		alpha = 2 * math.Pi
	}
	n := int(math.Ceil(alpha / maxSubAngle))
	if n < 1 {
		n = 1
	}
	pts := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		t := a.StartAngle + alpha*float64(i)/float64(n)
		pts = append(pts, a.PointAt(t))
	}
	return pts
}
