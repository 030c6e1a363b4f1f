// Package config holds the nesting engine's tunable parameters, following
// the teacher corpus's settings-struct-with-defaults convention
// (sample/solomesh/settings.go, sample/tilemesh/settings.go): a plain
// struct, a constructor pre-filled with sensible defaults, and YAML struct
// tags so a caller that already has configuration bytes (from wherever it
// chooses to source them -- the engine itself performs no file I/O) can
// (de)serialize it.
package config

import (
	"github.com/saebelma/nesting/criterion"
	"github.com/saebelma/nesting/nesterr"
)

// Parameters bundles every tunable the nesting pipeline needs.
type Parameters struct {
	// TableRadius is the radius of the container disk.
	TableRadius float64 `yaml:"tableRadius"`
	// PartClearance is the minimum required distance between any pair of
	// parts, and between each part and the table boundary.
	PartClearance float64 `yaml:"partClearance"`
	// MaximumNormalDistanceForPolygonization bounds the chord-to-arc error
	// when polygonizing the parallel curve.
	MaximumNormalDistanceForPolygonization float64 `yaml:"maximumNormalDistanceForPolygonization"`
	// RasterStep is the integer lattice step used by the fit/no-fit
	// rasters and the search spaces.
	RasterStep int64 `yaml:"rasterStep"`
	// Criterion selects the scoring function used to pick the next
	// placement.
	Criterion criterion.Type `yaml:"criterion"`
	// RNGSeed seeds the smallest-enclosing-circle criterion's randomized
	// incremental construction, so runs are reproducible.
	RNGSeed int64 `yaml:"rngSeed"`
}

// NewParameters returns Parameters pre-filled with the engine's defaults.
func NewParameters() Parameters {
	return Parameters{
		TableRadius:                             1320,
		PartClearance:                            22,
		MaximumNormalDistanceForPolygonization:   1,
		RasterStep:                               10,
		Criterion:                                criterion.ConvexHullArea,
		RNGSeed:                                  0,
	}
}

// Validate returns a nesterr.Status of kind ConfigOutOfRange if any field is
// out of range, per spec 7; it is checked before any computation begins.
func (p Parameters) Validate() nesterr.Status {
	switch {
	case p.TableRadius <= 0:
		return nesterr.New(nesterr.ConfigOutOfRange, "tableRadius must be > 0")
	case p.PartClearance <= 0:
		return nesterr.New(nesterr.ConfigOutOfRange, "partClearance must be > 0")
	case p.MaximumNormalDistanceForPolygonization <= 0:
		return nesterr.New(nesterr.ConfigOutOfRange, "maximumNormalDistanceForPolygonization must be > 0")
	case p.RasterStep <= 0:
		return nesterr.New(nesterr.ConfigOutOfRange, "rasterStep must be > 0")
	default:
		return nesterr.Status{}
	}
}
