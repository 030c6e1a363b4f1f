package criterion_test

import (
	"math/rand"
	"testing"

	"github.com/saebelma/nesting/criterion"
	"github.com/saebelma/nesting/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(side float64) geom.Polygon {
	return geom.NewPolygon(
		geom.NewPoint(-side/2, -side/2), geom.NewPoint(side/2, -side/2),
		geom.NewPoint(side/2, side/2), geom.NewPoint(-side/2, side/2),
	)
}

func TestHullCriterionEvaluateEmpty(t *testing.T) {
	c := criterion.New(criterion.ConvexHullArea, nil)
	_, _, ok := c.Evaluate(nil, square(10))
	assert.False(t, ok)
}

func TestHullCriterionPrefersCloserPlacement(t *testing.T) {
	c := criterion.New(criterion.ConvexHullArea, nil)
	c.AddPolygon(geom.IntegerVector{}, square(10))

	positions := []geom.IntegerVector{{X: 1000, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 0}}
	best, _, ok := c.Evaluate(positions, square(10))
	require.True(t, ok)
	assert.Equal(t, geom.IntegerVector{X: 10, Y: 0}, best)
}

func TestSECCriterionEvaluateEmpty(t *testing.T) {
	c := criterion.New(criterion.SECArea, rand.New(rand.NewSource(1)))
	_, _, ok := c.Evaluate(nil, square(10))
	assert.False(t, ok)
}

func TestSECCriterionPrefersCloserPlacement(t *testing.T) {
	c := criterion.New(criterion.SECArea, rand.New(rand.NewSource(1)))
	c.AddPolygon(geom.IntegerVector{}, square(10))

	positions := []geom.IntegerVector{{X: 1000, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 0}}
	best, _, ok := c.Evaluate(positions, square(10))
	require.True(t, ok)
	assert.Equal(t, geom.IntegerVector{X: 10, Y: 0}, best)
}
