package config_test

import (
	"testing"

	"github.com/saebelma/nesting/config"
	"github.com/saebelma/nesting/criterion"
	"github.com/saebelma/nesting/nesterr"
	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v2"
)

func TestNewParametersDefaults(t *testing.T) {
	p := config.NewParameters()
	assert.Equal(t, 1320.0, p.TableRadius)
	assert.Equal(t, 22.0, p.PartClearance)
	assert.Equal(t, 1.0, p.MaximumNormalDistanceForPolygonization)
	assert.Equal(t, int64(10), p.RasterStep)
	assert.Equal(t, criterion.ConvexHullArea, p.Criterion)
	assert.False(t, p.Validate().Failed())
}

func TestValidateRejectsNonPositiveFields(t *testing.T) {
	p := config.NewParameters()
	p.TableRadius = 0
	assert.Equal(t, nesterr.ConfigOutOfRange, p.Validate().Kind)

	p = config.NewParameters()
	p.PartClearance = -1
	assert.True(t, p.Validate().Failed())

	p = config.NewParameters()
	p.RasterStep = 0
	assert.True(t, p.Validate().Failed())
}

func TestParametersYAMLRoundTrip(t *testing.T) {
	p := config.NewParameters()
	p.Criterion = criterion.SECArea
	p.RNGSeed = 7

	bytes, err := yaml.Marshal(p)
	assert.NoError(t, err)

	var out config.Parameters
	assert.NoError(t, yaml.Unmarshal(bytes, &out))
	assert.Equal(t, p, out)
}
