package sec_test

import (
	"math/rand"
	"testing"

	"github.com/saebelma/nesting/geom"
	"github.com/saebelma/nesting/sec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmallestEnclosingCircleSquare(t *testing.T) {
	pts := []geom.Point{
		geom.NewPoint(0, 0), geom.NewPoint(10, 0),
		geom.NewPoint(10, 10), geom.NewPoint(0, 10),
	}
	c := sec.SmallestEnclosingCircle(pts, rand.New(rand.NewSource(1)))
	assert.InDelta(t, 5, c.Center.X(), 1e-6)
	assert.InDelta(t, 5, c.Center.Y(), 1e-6)
	assert.InDelta(t, 5*1.4142135623730951, c.Radius, 1e-6)
	for _, p := range pts {
		assert.True(t, c.Contains(p))
	}
}

func TestSmallestEnclosingCircleContainsAll(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	pts := make([]geom.Point, 50)
	for i := range pts {
		pts[i] = geom.NewPoint(r.Float64()*500, r.Float64()*500)
	}
	c := sec.SmallestEnclosingCircle(pts, rand.New(rand.NewSource(2)))
	for _, p := range pts {
		require.True(t, c.Contains(p))
	}
}

func TestSmallestEnclosingCircleDeterministic(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	pts := make([]geom.Point, 30)
	for i := range pts {
		pts[i] = geom.NewPoint(r.Float64()*100, r.Float64()*100)
	}
	c1 := sec.SmallestEnclosingCircle(pts, rand.New(rand.NewSource(42)))
	c2 := sec.SmallestEnclosingCircle(pts, rand.New(rand.NewSource(42)))
	assert.Equal(t, c1, c2)
}
