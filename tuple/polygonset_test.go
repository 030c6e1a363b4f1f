package tuple

import (
	"testing"

	"github.com/saebelma/nesting/geom"
	"github.com/saebelma/nesting/nest"
	"github.com/stretchr/testify/assert"
)

func TestPolygonSetReflectFlipsOrientationAndPosition(t *testing.T) {
	g := PolygonSet{
		{Position: geom.Zero, Orientation: nest.N},
		{Position: geom.IntegerVector{X: 10, Y: 0}, Orientation: nest.N},
	}
	r := g.Reflect()
	assert.Equal(t, geom.Zero, r[0].Position)
	assert.Equal(t, nest.R, r[0].Orientation)
	assert.Equal(t, geom.IntegerVector{X: -10, Y: 0}, r[1].Position)
	assert.Equal(t, nest.R, r[1].Orientation)
}

func TestPolygonSetTranslate(t *testing.T) {
	g := PolygonSet{{Position: geom.IntegerVector{X: 1, Y: 1}, Orientation: nest.N}}
	out := g.Translate(geom.IntegerVector{X: 5, Y: 5})
	assert.Equal(t, geom.IntegerVector{X: 6, Y: 6}, out[0].Position)
}

func TestCaseForCombinations(t *testing.T) {
	assert.Equal(t, "NN", caseFor(nest.N, nest.N).String())
	assert.Equal(t, "NR", caseFor(nest.N, nest.R).String())
	assert.Equal(t, "RN", caseFor(nest.R, nest.N).String())
	assert.Equal(t, "RR", caseFor(nest.R, nest.R).String())
}
