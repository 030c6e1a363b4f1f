package geom_test

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/saebelma/nesting/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(side float64) geom.Polygon {
	return geom.NewPolygon(
		geom.NewPoint(0, 0),
		geom.NewPoint(side, 0),
		geom.NewPoint(side, side),
		geom.NewPoint(0, side),
	)
}

func TestPolygonArea(t *testing.T) {
	s := square(100)
	assert.InDelta(t, 10000, s.Area(), 1e-9)
}

// toOrbRing cross-checks the shoelace formula in Polygon.Area against an
// independent implementation (orb/planar) to catch a sign or winding bug
// that a self-consistent test would not.
func toOrbRing(p geom.Polygon) orb.Ring {
	ring := make(orb.Ring, p.Len())
	for i := 0; i < p.Len(); i++ {
		v := p.At(i)
		ring[i] = orb.Point{v.X(), v.Y()}
	}
	return ring
}

func TestPolygonAreaMatchesOrb(t *testing.T) {
	shapes := []geom.Polygon{
		square(100),
		square(7).Translate(geom.Vector{DX: -13, DY: 4}),
		square(50).Rotate180(),
	}
	for _, s := range shapes {
		want := math.Abs(planar.Area(toOrbRing(s)))
		assert.InDelta(t, want, s.Area(), 1e-6)
	}
}

func TestPolygonContains(t *testing.T) {
	s := square(100)
	require.True(t, s.Contains(geom.NewPoint(50, 50)))
	require.False(t, s.Contains(geom.NewPoint(150, 50)))
}

// lShape is concave: a half-plane containment test would reject points that
// are genuinely inside one arm but outside the half-plane bounded by an edge
// belonging to the other arm.
func lShape() geom.Polygon {
	return geom.NewPolygon(
		geom.NewPoint(0, 0), geom.NewPoint(80, 0),
		geom.NewPoint(80, 30), geom.NewPoint(30, 30),
		geom.NewPoint(30, 80), geom.NewPoint(0, 80),
	)
}

func TestPolygonContainsConcave(t *testing.T) {
	l := lShape()
	assert.True(t, l.Contains(geom.NewPoint(70, 10)))  // inside the horizontal arm
	assert.True(t, l.Contains(geom.NewPoint(10, 70)))  // inside the vertical arm
	assert.False(t, l.Contains(geom.NewPoint(60, 60))) // inside the bounding box but outside both arms
}

func TestPolygonRotate180Involution(t *testing.T) {
	s := square(100).Translate(geom.Vector{DX: 13, DY: -7})
	r := s.Rotate180().Rotate180()
	for i := range s.Vertices {
		assert.True(t, s.Vertices[i].Approx(r.Vertices[i], 1e-9))
	}
}

func TestPolygonRotate180StaysCCW(t *testing.T) {
	s := square(100)
	r := s.Rotate180()
	// area must be preserved and still computed positively by the shoelace
	// formula applied to the vertex order as stored.
	sum := 0.0
	n := r.Len()
	for i := 0; i < n; i++ {
		a, b := r.Vertices[i], r.Vertices[(i+1)%n]
		sum += a.X()*b.Y() - b.X()*a.Y()
	}
	assert.Greater(t, sum, 0.0)
}

func TestPolygonRefPointIsBoundingBoxBottomLeft(t *testing.T) {
	s := square(10).Translate(geom.Vector{DX: 3, DY: -4})
	ref := s.RefPoint()
	box := s.BoundingBox()
	assert.InDelta(t, box.BottomLeft.X(), ref.X(), 1e-9)
	assert.InDelta(t, box.BottomLeft.Y(), ref.Y(), 1e-9)
}

func TestCircularIndex(t *testing.T) {
	s := square(100)
	assert.Equal(t, s.At(0), s.At(4))
	assert.Equal(t, s.At(-1), s.At(3))
}

func TestDirectedLineSegmentLeftOf(t *testing.T) {
	seg := geom.DirectedLineSegment{A: geom.NewPoint(0, 0), B: geom.NewPoint(10, 0)}
	assert.True(t, seg.LeftOf(geom.NewPoint(5, 5)))
	assert.False(t, seg.LeftOf(geom.NewPoint(5, -5)))
}

func TestLineIntersectParallel(t *testing.T) {
	l1 := geom.LineThrough(geom.NewPoint(0, 0), geom.NewPoint(1, 0))
	l2 := geom.LineThrough(geom.NewPoint(0, 1), geom.NewPoint(1, 1))
	_, ok := l1.IntersectLine(l2)
	assert.False(t, ok)
}

func TestLineIntersectCross(t *testing.T) {
	l1 := geom.LineThrough(geom.NewPoint(0, 0), geom.NewPoint(10, 10))
	l2 := geom.LineThrough(geom.NewPoint(0, 10), geom.NewPoint(10, 0))
	p, ok := l1.IntersectLine(l2)
	require.True(t, ok)
	assert.InDelta(t, 5, p.X(), 1e-9)
	assert.InDelta(t, 5, p.Y(), 1e-9)
}

func TestArcPolygonize(t *testing.T) {
	a := geom.Arc{Center: geom.Origin, Radius: 10, StartAngle: 0, EndAngle: math.Pi}
	pts := a.Polygonize(math.Pi / 4)
	require.GreaterOrEqual(t, len(pts), 5)
	assert.True(t, pts[0].Approx(geom.NewPoint(10, 0), 1e-9))
	assert.True(t, pts[len(pts)-1].Approx(geom.NewPoint(-10, 0), 1e-6))
}

func TestIntegerVectorOrderAndEquality(t *testing.T) {
	a := geom.IntegerVector{X: 1, Y: 2}
	b := geom.IntegerVector{X: 1, Y: 2}
	c := geom.IntegerVector{X: 1, Y: 3}
	assert.True(t, a.Equal(b))
	assert.True(t, a.Less(c))
	assert.False(t, c.Less(a))
}
