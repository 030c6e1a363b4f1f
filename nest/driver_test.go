package nest_test

import (
	"testing"

	"github.com/saebelma/nesting/config"
	"github.com/saebelma/nesting/criterion"
	"github.com/saebelma/nesting/geom"
	"github.com/saebelma/nesting/nest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(side float64) geom.Polygon {
	h := side / 2
	return geom.NewPolygon(
		geom.NewPoint(-h, -h),
		geom.NewPoint(h, -h),
		geom.NewPoint(h, h),
		geom.NewPoint(-h, h),
	)
}

func lShape() geom.Polygon {
	// Point-symmetric L: 80 wide, 80 tall, arm width 30, centered on the
	// origin after Normalize() inside the driver.
	return geom.NewPolygon(
		geom.NewPoint(0, 0),
		geom.NewPoint(80, 0),
		geom.NewPoint(80, 30),
		geom.NewPoint(30, 30),
		geom.NewPoint(30, 80),
		geom.NewPoint(0, 80),
	)
}

func noOverlap(t *testing.T, result nest.Result) {
	t.Helper()
	for i := range result.Placements {
		for j := i + 1; j < len(result.Placements); j++ {
			pi, pj := result.Placements[i], result.Placements[j]
			polyI := placedPolygon(result.Part, pi)
			polyJ := placedPolygon(result.Part, pj)
			assert.False(t, polyI.Intersects(polyJ), "placements %d and %d overlap", i, j)
		}
	}
}

func placedPolygon(part geom.Polygon, p nest.Placement) geom.Polygon {
	poly := part
	if p.Orientation == nest.R {
		poly = poly.Rotate180()
	}
	return poly.TranslateInt(p.Position)
}

func TestSquareInDiskPlacesAtLeastThree(t *testing.T) {
	params := config.NewParameters()
	params.TableRadius = 250
	params.PartClearance = 10
	params.Criterion = criterion.ConvexHullArea

	driver, st := nest.NewDriver(square(100), params, nil)
	require.False(t, st.Failed())

	result := driver.Run()
	assert.GreaterOrEqual(t, len(result.Placements), 3)
	noOverlap(t, result)

	first := result.Placements[0]
	assert.Equal(t, geom.Zero, first.Position)
	assert.Equal(t, nest.N, first.Orientation)
}

func TestLShapeUsesBothOrientations(t *testing.T) {
	params := config.NewParameters()
	params.TableRadius = 200
	params.PartClearance = 5
	params.Criterion = criterion.ConvexHullArea

	driver, st := nest.NewDriver(lShape(), params, nil)
	require.False(t, st.Failed())

	result := driver.Run()
	noOverlap(t, result)

	var sawN, sawR bool
	for _, p := range result.Placements {
		if p.Orientation == nest.N {
			sawN = true
		} else {
			sawR = true
		}
	}
	assert.True(t, sawN)
	assert.True(t, sawR)
}

func TestNoFeasibleFitYieldsEmptyOrSingleResult(t *testing.T) {
	params := config.NewParameters()
	params.TableRadius = 100
	params.PartClearance = 5

	driver, st := nest.NewDriver(square(400), params, nil)
	require.False(t, st.Failed())

	result := driver.Run()
	assert.LessOrEqual(t, len(result.Placements), 1)
	noOverlap(t, result)
}

func TestDeterministicReplayWithSECCriterion(t *testing.T) {
	params := config.NewParameters()
	params.TableRadius = 250
	params.PartClearance = 10
	params.Criterion = criterion.SECArea
	params.RNGSeed = 42

	d1, st := nest.NewDriver(square(100), params, nil)
	require.False(t, st.Failed())
	r1 := d1.Run()

	d2, st := nest.NewDriver(square(100), params, nil)
	require.False(t, st.Failed())
	r2 := d2.Run()

	assert.Equal(t, r1.Placements, r2.Placements)
}

func TestDefaultCriterionPlacesAtLeastTwo(t *testing.T) {
	params := config.NewParameters()
	params.TableRadius = 250
	params.PartClearance = 10

	driver, st := nest.NewDriver(square(100), params, nil)
	require.False(t, st.Failed())
	result := driver.Run()
	require.GreaterOrEqual(t, len(result.Placements), 2)
}

func TestInvalidInputRejectsDegeneratePolygon(t *testing.T) {
	params := config.NewParameters()
	_, st := nest.NewDriver(geom.NewPolygon(geom.NewPoint(0, 0), geom.NewPoint(1, 0)), params, nil)
	assert.True(t, st.Failed())
	assert.Equal(t, "invalid input: polygon has fewer than 3 vertices", st.Error())
}

func TestCompareCriteriaRunsBoth(t *testing.T) {
	params := config.NewParameters()
	params.TableRadius = 250
	params.PartClearance = 10

	hullResult, secResult, st := nest.CompareCriteria(square(100), params)
	require.False(t, st.Failed())
	assert.GreaterOrEqual(t, len(hullResult.Placements), 1)
	assert.GreaterOrEqual(t, len(secResult.Placements), 1)
}

func TestResultDensity(t *testing.T) {
	params := config.NewParameters()
	params.TableRadius = 250
	params.PartClearance = 10

	driver, st := nest.NewDriver(square(100), params, nil)
	require.False(t, st.Failed())
	result := driver.Run()
	assert.Greater(t, result.Density(), 0.0)
	assert.Less(t, result.Density(), 1.0)
}

func TestResultFootprintEnclosesEveryPlacement(t *testing.T) {
	params := config.NewParameters()
	params.TableRadius = 250
	params.PartClearance = 10

	driver, st := nest.NewDriver(square(100), params, nil)
	require.False(t, st.Failed())
	result := driver.Run()
	require.GreaterOrEqual(t, len(result.Placements), 1)

	box := result.Footprint()
	assert.Greater(t, box.Area(), 0.0)
	// every placement lies within the table disk, so its bounding square
	// (the loosest possible oriented box) bounds the footprint area too.
	assert.LessOrEqual(t, box.Area(), 4*params.TableRadius*params.TableRadius)
}
