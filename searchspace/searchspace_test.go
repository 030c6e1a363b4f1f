package searchspace_test

import (
	"testing"

	"github.com/saebelma/nesting/geom"
	"github.com/saebelma/nesting/searchspace"
	"github.com/stretchr/testify/assert"
)

func TestAddPlacementBasics(t *testing.T) {
	s := searchspace.New()
	fit := []geom.IntegerVector{{X: 10, Y: 0}, {X: 0, Y: 10}}
	nofit := []geom.IntegerVector{{X: 0, Y: 0}}
	s.AddPlacement(geom.IntegerVector{}, fit, nofit, nil)

	assert.True(t, s.FitTotal.Contains(geom.IntegerVector{X: 10, Y: 0}))
	assert.True(t, s.FitTotal.Contains(geom.IntegerVector{X: 0, Y: 10}))
	assert.True(t, s.NoFitTotal.Contains(geom.IntegerVector{X: 0, Y: 0}))
	assert.True(t, s.FitTotal.Disjoint(s.NoFitTotal))
}

func TestAddPlacementNoFitWinsOverFit(t *testing.T) {
	s := searchspace.New()
	s.AddPlacement(geom.IntegerVector{}, []geom.IntegerVector{{X: 5, Y: 5}}, nil, nil)
	assert.True(t, s.FitTotal.Contains(geom.IntegerVector{X: 5, Y: 5}))

	s.AddPlacement(geom.IntegerVector{}, nil, []geom.IntegerVector{{X: 5, Y: 5}}, nil)
	assert.False(t, s.FitTotal.Contains(geom.IntegerVector{X: 5, Y: 5}))
	assert.True(t, s.NoFitTotal.Contains(geom.IntegerVector{X: 5, Y: 5}))
}

func TestAddPlacementFilter(t *testing.T) {
	s := searchspace.New()
	filter := func(v geom.IntegerVector) bool { return v.X >= 0 }
	s.AddPlacement(geom.IntegerVector{}, []geom.IntegerVector{{X: -1, Y: 0}, {X: 1, Y: 0}}, nil, filter)
	assert.False(t, s.FitTotal.Contains(geom.IntegerVector{X: -1, Y: 0}))
	assert.True(t, s.FitTotal.Contains(geom.IntegerVector{X: 1, Y: 0}))
}

func TestSpaceEmpty(t *testing.T) {
	s := searchspace.New()
	assert.True(t, s.Empty())
	s.AddPlacement(geom.IntegerVector{}, []geom.IntegerVector{{X: 1, Y: 1}}, nil, nil)
	assert.False(t, s.Empty())
}
