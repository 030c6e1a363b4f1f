// Package searchspace maintains the set of integer-lattice positions still
// available for the next part placement, incrementally updated as
// placements accumulate.
package searchspace

import (
	"github.com/arl/assertgo"
	"github.com/saebelma/nesting/geom"
	"github.com/saebelma/nesting/orderedset"
)

// Filter decides whether a candidate position is acceptable on its own
// terms (independent of overlap with other parts) -- for the simple
// driver, whether every vertex of the part translated by the candidate
// lies strictly inside the table disk.
type Filter func(geom.IntegerVector) bool

// Space is the search space: the disjoint union of FitTotal (positions that
// would not overlap any already-placed part) and NoFitTotal (positions that
// would).
type Space struct {
	FitTotal, NoFitTotal *orderedset.Set
}

// New returns an empty search space.
func New() *Space {
	return &Space{FitTotal: orderedset.New(), NoFitTotal: orderedset.New()}
}

// AddPlacement folds in a new placement at pos: fit and nofit are the
// fit/no-fit raster vectors for the orientation pair this placement
// introduces, still relative to the origin. Called once per placement.
func (s *Space) AddPlacement(pos geom.IntegerVector, fit, nofit []geom.IntegerVector, filter Filter) {
	for _, v := range fit {
		tv := v.Add(pos)
		if filter != nil && !filter(tv) {
			continue
		}
		if s.NoFitTotal.Contains(tv) {
			continue
		}
		s.FitTotal.Insert(tv)
	}
	for _, v := range nofit {
		tv := v.Add(pos)
		s.FitTotal.Remove(tv)
		s.NoFitTotal.Insert(tv)
	}
	assert.True(s.FitTotal.Disjoint(s.NoFitTotal), "searchspace: fit_total and nofit_total must stay disjoint")
}

// Empty reports whether no positions remain available.
func (s *Space) Empty() bool {
	return s.FitTotal.Len() == 0
}

// Clone returns an independent copy of s.
func (s *Space) Clone() *Space {
	return &Space{FitTotal: s.FitTotal.Clone(), NoFitTotal: s.NoFitTotal.Clone()}
}
