package geom

import (
	"math"

	"github.com/arl/assertgo"
)

// Polygon is a simple polygon with vertices in counter-clockwise order.
// Edge i runs from vertex i to vertex (i+1) mod n.
type Polygon struct {
	Vertices []Point
}

// NewPolygon returns a polygon over the given vertices, assumed already in
// CCW order.
func NewPolygon(vertices ...Point) Polygon {
	return Polygon{Vertices: vertices}
}

// Len returns the number of vertices.
func (p Polygon) Len() int { return len(p.Vertices) }

// At returns the i-th vertex, with i taken modulo Len() (circular index, so
// negative i wraps around correctly).
func (p Polygon) At(i int) Point {
	n := len(p.Vertices)
	assert.True(n > 0, "At called on empty polygon")
	i %= n
	if i < 0 {
		i += n
	}
	return p.Vertices[i]
}

// Edge returns the directed edge from vertex i to vertex i+1.
func (p Polygon) Edge(i int) DirectedLineSegment {
	return DirectedLineSegment{A: p.At(i), B: p.At(i + 1)}
}

// InsideAngle returns the interior angle at vertex i, in (0, 2*pi).
func (p Polygon) InsideAngle(i int) float64 {
	prev := p.At(i - 1)
	cur := p.At(i)
	next := p.At(i + 1)
	v1 := prev.Sub(cur)
	v2 := next.Sub(cur)
	a := math.Atan2(v2.Cross(v1), v2.Dot(v1))
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// IsConvexAt reports whether the vertex at index i is a convex vertex of a
// CCW polygon (interior angle <= pi).
func (p Polygon) IsConvexAt(i int) bool {
	return p.InsideAngle(i) <= math.Pi+1e-9
}

// Area returns the polygon's (always non-negative) area via the shoelace
// formula.
func (p Polygon) Area() float64 {
	n := len(p.Vertices)
	if n < 3 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		a, b := p.Vertices[i], p.Vertices[(i+1)%n]
		sum += a.X()*b.Y() - b.X()*a.Y()
	}
	return math.Abs(sum) / 2
}

// Contains reports whether p0 lies inside the polygon, including its
// boundary. "Left of every CCW edge" only tests containment correctly for a
// convex polygon; since Polygon also carries concave offset curves (e.g. the
// offset of an L-shaped part), containment is a standard even-odd ray-cast
// against p0's horizontal ray, with an explicit boundary check so edge
// points still count as contained.
func (p Polygon) Contains(p0 Point) bool {
	n := len(p.Vertices)
	for i := 0; i < n; i++ {
		if onEdge(p.Edge(i), p0) {
			return true
		}
	}
	inside := false
	for i := 0; i < n; i++ {
		a, b := p.Vertices[i], p.Vertices[(i+1)%n]
		if (a.Y() > p0.Y()) != (b.Y() > p0.Y()) {
			xCross := a.X() + (p0.Y()-a.Y())*(b.X()-a.X())/(b.Y()-a.Y())
			if p0.X() < xCross {
				inside = !inside
			}
		}
	}
	return inside
}

func onEdge(s DirectedLineSegment, p Point) bool {
	const eps = 1e-9
	ab := s.Vector()
	ap := p.Sub(s.A)
	if math.Abs(ap.Cross(ab)) > eps {
		return false
	}
	return onSegment(p, s, eps)
}

// BoundingBox returns the polygon's axis-aligned bounding box.
func (p Polygon) BoundingBox() AxisAlignedRectangle {
	assert.True(len(p.Vertices) > 0, "BoundingBox of empty polygon")
	return BoundingBox(p.Vertices)
}

// RefPoint returns the polygon's intrinsic reference point: the bottom-left
// corner of its bounding box.
func (p Polygon) RefPoint() Point {
	return p.BoundingBox().BottomLeft
}

// Translate returns the polygon translated by v.
func (p Polygon) Translate(v Vector) Polygon {
	out := make([]Point, len(p.Vertices))
	for i, pt := range p.Vertices {
		out[i] = pt.Add(v)
	}
	return Polygon{Vertices: out}
}

// TranslateInt returns the polygon translated by an IntegerVector.
func (p Polygon) TranslateInt(v IntegerVector) Polygon {
	out := make([]Point, len(p.Vertices))
	for i, pt := range p.Vertices {
		out[i] = pt.AddInt(v)
	}
	return Polygon{Vertices: out}
}

// Rotate returns the polygon rotated by angle radians around origin.
func (p Polygon) Rotate(origin Point, angle float64) Polygon {
	out := make([]Point, len(p.Vertices))
	for i, pt := range p.Vertices {
		out[i] = pt.Rotate(origin, angle)
	}
	return Polygon{Vertices: out}
}

// Rotate180 returns the polygon rotated 180 degrees around its own
// bounding-box center, as a shorthand for Rotate(center, pi).
func (p Polygon) Rotate180() Polygon {
	center := p.BoundingBox().Center()
	out := make([]Point, len(p.Vertices))
	for i, pt := range p.Vertices {
		out[i] = pt.Rotate180(center)
	}
	// A 180 degree rotation is orientation-preserving (its matrix has
	// determinant +1), so the rotated vertices stay CCW-ordered as-is.
	return Polygon{Vertices: out}
}

// Normalize returns the polygon translated so its bounding-box center
// coincides with the origin.
func (p Polygon) Normalize() Polygon {
	c := p.BoundingBox().Center()
	return p.Translate(Vector{DX: -c.X(), DY: -c.Y()})
}

// Intersects reports whether p and o overlap, via brute-force pairwise edge
// intersection tests (O(nm)) plus a containment fallback for the case where
// one polygon lies entirely inside the other without any edge crossing.
func (p Polygon) Intersects(o Polygon) bool {
	for i := 0; i < p.Len(); i++ {
		e1 := p.Edge(i)
		for j := 0; j < o.Len(); j++ {
			e2 := o.Edge(j)
			if _, ok := e1.Intersect(e2); ok {
				return true
			}
		}
	}
	if p.Len() > 0 && o.Contains(p.Vertices[0]) {
		return true
	}
	if o.Len() > 0 && p.Contains(o.Vertices[0]) {
		return true
	}
	return false
}

// ConvexVertexIndex returns the index of some vertex known to lie on the
// convex hull of p: the lowest, then leftmost, vertex. Useful as a safe
// starting point for algorithms that need to start "from the outside".
func (p Polygon) ConvexVertexIndex() int {
	best := 0
	for i := 1; i < len(p.Vertices); i++ {
		v, b := p.Vertices[i], p.Vertices[best]
		if v.Y() < b.Y() || (v.Y() == b.Y() && v.X() < b.X()) {
			best = i
		}
	}
	return best
}
