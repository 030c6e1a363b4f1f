package tuple

import (
	"math/rand"
	"sort"

	"github.com/saebelma/nesting/criterion"
	"github.com/saebelma/nesting/geom"
	"github.com/saebelma/nesting/hull"
	"github.com/saebelma/nesting/nest"
	"github.com/saebelma/nesting/nofitspace"
	"github.com/saebelma/nesting/sec"
)

// PlacedPart is one part within a polygon group: its position relative to
// the group's own local origin, and the orientation it is placed in.
type PlacedPart struct {
	Position    geom.IntegerVector
	Orientation nest.Orientation
}

// PolygonSet is a rigid group of parts, positioned relative to each other.
// Singles, pairs and quadruples are all PolygonSets of size 1, 2 and 4.
type PolygonSet []PlacedPart

// Translate returns a copy of g with every part's position shifted by d.
func (g PolygonSet) Translate(d geom.IntegerVector) PolygonSet {
	out := make(PolygonSet, len(g))
	for i, p := range g {
		out[i] = PlacedPart{Position: p.Position.Add(d), Orientation: p.Orientation}
	}
	return out
}

// Reflect returns g point-reflected about the origin, with every part's
// orientation flipped N<->R -- the group-level analogue of Space.Reflect.
func (g PolygonSet) Reflect() PolygonSet {
	out := make(PolygonSet, len(g))
	for i, p := range g {
		out[i] = PlacedPart{Position: p.Position.Neg(), Orientation: flip(p.Orientation)}
	}
	return out
}

func flip(o nest.Orientation) nest.Orientation {
	if o == nest.R {
		return nest.N
	}
	return nest.R
}

// Polygons returns every part's world-space polygon, using offsetN/offsetR
// as the N/R orientation of the underlying shape.
func (g PolygonSet) Polygons(offsetN, offsetR geom.Polygon) []geom.Polygon {
	out := make([]geom.Polygon, len(g))
	for i, p := range g {
		src := offsetN
		if p.Orientation == nest.R {
			src = offsetR
		}
		out[i] = src.TranslateInt(p.Position)
	}
	return out
}

// Vertices flattens every part's vertices into a single slice.
func (g PolygonSet) Vertices(offsetN, offsetR geom.Polygon) []geom.Point {
	var out []geom.Point
	for _, poly := range g.Polygons(offsetN, offsetR) {
		out = append(out, poly.Vertices...)
	}
	return out
}

// caseFor returns the nofitspace case with the given fixed (anchor) and
// orbiting (probe) orientations.
func caseFor(fixed, orbiting nest.Orientation) nofitspace.Case {
	switch {
	case fixed == nest.N && orbiting == nest.N:
		return nofitspace.NN
	case fixed == nest.N && orbiting == nest.R:
		return nofitspace.NR
	case fixed == nest.R && orbiting == nest.N:
		return nofitspace.RN
	default:
		return nofitspace.RR
	}
}

// compoundSpace builds the compound Space describing which relative
// positions of probe's reference part (probe[0]) leave every (anchor part,
// probe part) pair non-overlapping, generalizing the named SPACE_XX_YY
// compositions of spec 4.11 step 4-7 to arbitrary group sizes via the
// shared addSubtract/translate primitives.
func compoundSpace(anchor, probe PolygonSet, rasters nofitspace.Rasters) *Space {
	type entry struct {
		c   nofitspace.Case
		off geom.IntegerVector
	}
	var entries []entry
	for _, a := range anchor {
		for _, p := range probe {
			entries = append(entries, entry{
				c:   caseFor(a.Orientation, p.Orientation),
				off: a.Position.Sub(p.Position),
			})
		}
	}
	base := spaceFromCase(rasters, entries[0].c).Translate(entries[0].off)
	for _, e := range entries[1:] {
		base = base.merge(spaceFromCase(rasters, e.c).Translate(e.off))
	}
	return base
}

// scorer scores candidate positions for a probe PolygonSet against a
// running set of already-placed vertices, generalizing criterion's
// hull/SEC scoring (criterion/criterion.go, criterion/sec_criterion.go)
// from a single probe polygon to a probe group.
type scorer struct {
	t        criterion.Type
	rng      *rand.Rand
	vertices []geom.Point // hull-reduced
}

func newScorer(t criterion.Type, rng *rand.Rand) *scorer {
	return &scorer{t: t, rng: rng}
}

func (s *scorer) insert(p geom.Point) {
	s.vertices = criterion.InsertSorted(s.vertices, p)
}

// addGroup folds group's vertices (in world coordinates, already
// translated by the group's placement) into the running vertex set and
// re-reduces it to its convex hull.
func (s *scorer) addGroup(group PolygonSet, offsetN, offsetR geom.Polygon) {
	for _, v := range group.Vertices(offsetN, offsetR) {
		s.insert(v)
	}
	s.vertices = hull.ConvexHullStream(s.vertices).Vertices
	sort.Slice(s.vertices, func(i, j int) bool {
		if s.vertices[i].X() != s.vertices[j].X() {
			return s.vertices[i].X() < s.vertices[j].X()
		}
		return s.vertices[i].Y() < s.vertices[j].Y()
	})
}

func (s *scorer) area(pts []geom.Point) float64 {
	if s.t == criterion.SECArea {
		reduced := hull.ConvexHullStream(pts).Vertices
		return sec.SmallestEnclosingCircle(reduced, s.rng).Area()
	}
	return hull.ConvexHullStream(pts).Area()
}

// evaluate scores every position in positions: at each, probe (at that
// world position) is combined with the running vertex set and scored; the
// minimum-score position is returned. ok is false if positions is empty.
func (s *scorer) evaluate(positions []geom.IntegerVector, probe PolygonSet, offsetN, offsetR geom.Polygon) (best geom.IntegerVector, score float64, ok bool) {
	bestScore := -1.0
	for _, pos := range positions {
		pts := append([]geom.Point(nil), s.vertices...)
		for _, v := range probe.Translate(pos).Vertices(offsetN, offsetR) {
			pts = criterion.InsertSorted(pts, v)
		}
		a := s.area(pts)
		if !ok || a < bestScore {
			best, bestScore, ok = pos, a, true
		}
	}
	return best, bestScore, ok
}
