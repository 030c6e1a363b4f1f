package hull_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/saebelma/nesting/geom"
	"github.com/saebelma/nesting/hull"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isConvexCCW(t *testing.T, p geom.Polygon) {
	t.Helper()
	n := p.Len()
	require.GreaterOrEqual(t, n, 3)
	for i := 0; i < n; i++ {
		seg := p.Edge(i)
		c := p.At(i + 2)
		assert.True(t, seg.LeftOf(c) || collinear(seg, c), "vertex %d breaks convexity", i)
	}
	assert.Greater(t, p.Area(), 0.0)
}

func collinear(s geom.DirectedLineSegment, p geom.Point) bool {
	ap := p.Sub(s.A)
	ab := s.Vector()
	return math.Abs(ap.Cross(ab)) < 1e-9
}

func TestConvexHullSquare(t *testing.T) {
	pts := []geom.Point{
		geom.NewPoint(0, 0), geom.NewPoint(10, 0),
		geom.NewPoint(10, 10), geom.NewPoint(0, 10),
		geom.NewPoint(5, 5), // interior point, must be dropped
	}
	h := hull.ConvexHull(pts)
	assert.Equal(t, 4, h.Len())
	isConvexCCW(t, h)
}

func TestConvexHullIdempotent(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	pts := make([]geom.Point, 40)
	for i := range pts {
		pts[i] = geom.NewPoint(r.Float64()*100, r.Float64()*100)
	}
	h1 := hull.ConvexHull(pts)
	h2 := hull.ConvexHull(h1.Vertices)
	assert.InDelta(t, h1.Area(), h2.Area(), 1e-6)
	assert.Equal(t, h1.Len(), h2.Len())
}

func TestConvexHullRandomIsConvex(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		n := 5 + r.Intn(30)
		pts := make([]geom.Point, n)
		for i := range pts {
			pts[i] = geom.NewPoint(r.Float64()*200-100, r.Float64()*200-100)
		}
		h := hull.ConvexHull(pts)
		if h.Len() >= 3 {
			isConvexCCW(t, h)
		}
	}
}

func TestConvexHullTriangle(t *testing.T) {
	pts := []geom.Point{geom.NewPoint(0, 0), geom.NewPoint(4, 0), geom.NewPoint(2, 4)}
	h := hull.ConvexHull(pts)
	assert.Equal(t, 3, h.Len())
	assert.InDelta(t, 8, h.Area(), 1e-9)
}
