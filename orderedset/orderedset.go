// Package orderedset is a sorted-slice set of geom.IntegerVector, kept in
// lexicographic (x,y) order so that every iteration over it -- and
// therefore every tie-break in the criterion that consumes it -- is
// deterministic, as required by the engine's concurrency and resource
// model. A hash-map-backed set would break that determinism and must not
// be used here.
package orderedset

import (
	"sort"

	"github.com/saebelma/nesting/geom"
)

// Set is an ordered set of geom.IntegerVector.
type Set struct {
	items []geom.IntegerVector
}

// New returns an empty set.
func New() *Set {
	return &Set{}
}

// Len returns the number of elements.
func (s *Set) Len() int { return len(s.items) }

func (s *Set) search(v geom.IntegerVector) int {
	return sort.Search(len(s.items), func(i int) bool {
		return !s.items[i].Less(v)
	})
}

// Contains reports whether v is a member.
func (s *Set) Contains(v geom.IntegerVector) bool {
	i := s.search(v)
	return i < len(s.items) && s.items[i].Equal(v)
}

// Insert adds v, returning false if it was already present.
func (s *Set) Insert(v geom.IntegerVector) bool {
	i := s.search(v)
	if i < len(s.items) && s.items[i].Equal(v) {
		return false
	}
	s.items = append(s.items, geom.IntegerVector{})
	copy(s.items[i+1:], s.items[i:])
	s.items[i] = v
	return true
}

// Remove deletes v, returning false if it was not present.
func (s *Set) Remove(v geom.IntegerVector) bool {
	i := s.search(v)
	if i >= len(s.items) || !s.items[i].Equal(v) {
		return false
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return true
}

// Items returns the set's elements in ascending lexicographic order. The
// returned slice must not be mutated by the caller.
func (s *Set) Items() []geom.IntegerVector {
	return s.items
}

// Clone returns an independent copy of s.
func (s *Set) Clone() *Set {
	out := &Set{items: make([]geom.IntegerVector, len(s.items))}
	copy(out.items, s.items)
	return out
}

// Disjoint reports whether s and o share no elements.
func (s *Set) Disjoint(o *Set) bool {
	i, j := 0, 0
	for i < len(s.items) && j < len(o.items) {
		a, b := s.items[i], o.items[j]
		switch {
		case a.Equal(b):
			return false
		case a.Less(b):
			i++
		default:
			j++
		}
	}
	return true
}
