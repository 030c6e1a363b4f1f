// Package tuple implements the hybrid "tuple" nesting driver (spec 4.11):
// composing 1:1 pair spaces into 2:1, 2:2, 4:2 and 4:4 compound spaces via
// a handful of primitive Space operations, then performing a final bounded
// planar search over the resulting arrangements.
package tuple

import (
	"github.com/saebelma/nesting/geom"
	"github.com/saebelma/nesting/nofitspace"
	"github.com/saebelma/nesting/orderedset"
)

// Space is the paired ordered fit/no-fit integer-lattice set the tuple
// driver composes, generalizing nofitspace.Space (a single 1:1 case) to
// arbitrary anchor/probe polygon groups.
type Space struct {
	FitTotal, NoFitTotal *orderedset.Set
}

// NewSpace wraps a raw (fit, nofit) vector pair -- typically one case of a
// nofitspace.Rasters -- as a Space.
func NewSpace(fit, nofit []geom.IntegerVector) *Space {
	s := &Space{FitTotal: orderedset.New(), NoFitTotal: orderedset.New()}
	for _, v := range fit {
		s.FitTotal.Insert(v)
	}
	for _, v := range nofit {
		s.NoFitTotal.Insert(v)
	}
	return s
}

// Fit returns the space's fit vectors in lexicographic order.
func (s *Space) Fit() []geom.IntegerVector { return s.FitTotal.Items() }

// NoFit returns the space's no-fit vectors in lexicographic order.
func (s *Space) NoFit() []geom.IntegerVector { return s.NoFitTotal.Items() }

// Translate returns a new Space with every vector shifted by d.
func (s *Space) Translate(d geom.IntegerVector) *Space {
	out := &Space{FitTotal: orderedset.New(), NoFitTotal: orderedset.New()}
	for _, v := range s.FitTotal.Items() {
		out.FitTotal.Insert(v.Add(d))
	}
	for _, v := range s.NoFitTotal.Items() {
		out.NoFitTotal.Insert(v.Add(d))
	}
	return out
}

// Reflect returns a new Space with every vector point-reflected about the
// origin -- the same operation nofitspace.Build uses to derive the RR and
// RN cases from NN and NR.
func (s *Space) Reflect() *Space {
	out := &Space{FitTotal: orderedset.New(), NoFitTotal: orderedset.New()}
	for _, v := range s.FitTotal.Items() {
		out.FitTotal.Insert(v.Neg())
	}
	for _, v := range s.NoFitTotal.Items() {
		out.NoFitTotal.Insert(v.Neg())
	}
	return out
}

// merge folds other's vectors into a copy of s using SearchSpace's
// addPlacement rule (spec 4.8): survivors of other's fit set are added
// unless already in the no-fit total; every element of other's no-fit set
// is removed from the fit total and added to the no-fit total. other's
// vectors are assumed already translated into s's coordinate frame.
func (s *Space) merge(other *Space) *Space {
	out := &Space{FitTotal: s.FitTotal.Clone(), NoFitTotal: s.NoFitTotal.Clone()}
	for _, v := range other.FitTotal.Items() {
		if out.NoFitTotal.Contains(v) {
			continue
		}
		out.FitTotal.Insert(v)
	}
	for _, v := range other.NoFitTotal.Items() {
		out.FitTotal.Remove(v)
		out.NoFitTotal.Insert(v)
	}
	return out
}

// AddSubtract composes s with other translated by d: the compound space
// describing "does a probe group placed so that this constituent sits at
// offset d also clash here", per spec 4.11's 2:1/2:2/4:2/4:4 composition
// rule. This is s.merge(other.Translate(d)).
func (s *Space) AddSubtract(other *Space, d geom.IntegerVector) *Space {
	return s.merge(other.Translate(d))
}

// NewSpace3 is the spec's three-argument Space(s1, s2, d) constructor: the
// compound space formed from s1 and s2 translated by d.
func NewSpace3(s1, s2 *Space, d geom.IntegerVector) *Space {
	return s1.AddSubtract(s2, d)
}

// spaceFromCase wraps one case of rasters directly as a Space.
func spaceFromCase(rasters nofitspace.Rasters, c nofitspace.Case) *Space {
	sp := rasters.Cases[c]
	return NewSpace(sp.Fit, sp.NoFit)
}
