package geom

// DirectedLineSegment is a segment from A to B with an orientation: a point
// is "left of" the segment iff the cross product (p-a) x (b-a) is negative.
type DirectedLineSegment struct {
	A, B Point
}

// Vector returns the segment's direction vector, B - A.
func (s DirectedLineSegment) Vector() Vector {
	return s.B.Sub(s.A)
}

// LeftOf reports whether p is strictly to the left of the segment, per the
// data model's side-test contract: (p-a) x (b-a) < 0.
func (s DirectedLineSegment) LeftOf(p Point) bool {
	ab := s.Vector()
	ap := p.Sub(s.A)
	return ap.Cross(ab) < 0
}

// Line returns the infinite line through s, in coordinate form.
func (s DirectedLineSegment) Line() Line {
	return LineThrough(s.A, s.B)
}

// Intersect returns the intersection point of s and o, if the two segments
// actually cross (within each other's bounding box, with a small epsilon),
// and false otherwise (parallel lines or intersection point outside either
// segment).
func (s DirectedLineSegment) Intersect(o DirectedLineSegment) (Point, bool) {
	p, ok := s.Line().IntersectLine(o.Line())
	if !ok {
		return Point{}, false
	}
	const eps = 1e-7
	if !onSegment(p, s, eps) || !onSegment(p, o, eps) {
		return Point{}, false
	}
	return p, true
}

func onSegment(p Point, s DirectedLineSegment, eps float64) bool {
	minX, maxX := s.A.X(), s.B.X()
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := s.A.Y(), s.B.Y()
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return p.X() >= minX-eps && p.X() <= maxX+eps && p.Y() >= minY-eps && p.Y() <= maxY+eps
}
