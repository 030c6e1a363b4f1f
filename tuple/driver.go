package tuple

import (
	"math"
	"math/rand"
	"strconv"

	"github.com/saebelma/nesting/config"
	"github.com/saebelma/nesting/geom"
	"github.com/saebelma/nesting/hull"
	"github.com/saebelma/nesting/nest"
	"github.com/saebelma/nesting/nesterr"
	"github.com/saebelma/nesting/nofitspace"
	"github.com/saebelma/nesting/offsetcurve"
	"github.com/saebelma/nesting/searchspace"
	"github.com/saebelma/nesting/sec"
	"github.com/saebelma/nesting/trace"
)

// Result is the output of a tuple-nesting run: placed parts already in
// table coordinates (the chosen search center has been translated to the
// origin, per spec 9's adopted convention).
type Result struct {
	Part        geom.Polygon
	TableRadius float64
	Placements  []PlacedPart
}

// Density returns the fraction of the table disk's area covered by placed
// parts, mirroring nest.Result.Density.
func (r Result) Density() float64 {
	tableArea := math.Pi * r.TableRadius * r.TableRadius
	if tableArea == 0 {
		return 0
	}
	return float64(len(r.Placements)) * r.Part.Area() / tableArea
}

// Footprint returns the minimum-area oriented bounding box enclosing every
// placed copy's vertices, via nest.FootprintOf (shared with
// nest.Result.Footprint).
func (r Result) Footprint() geom.OrientedRectangle {
	return nest.FootprintOf(r.Part, len(r.Placements), func(i int) (geom.IntegerVector, nest.Orientation) {
		p := r.Placements[i]
		return p.Position, p.Orientation
	})
}

// Run executes the full tuple-nesting pipeline (spec 4.11) on part with
// the given parameters, and returns the best of the three quadruple
// nesting types' final arrangements. bc is optional (nil is valid).
func Run(part geom.Polygon, params config.Parameters, bc *trace.BuildContext) (Result, nesterr.Status) {
	if st := params.Validate(); st.Failed() {
		return Result{}, st
	}
	if st := nest.Validate(part); st.Failed() {
		return Result{}, st
	}

	bc.Log(trace.Progress, "building offset curve and 1:1 rasters")
	bc.StartTimer(trace.TimerOffset)
	normalized := part.Normalize()
	offsetN := offsetcurve.OffsetCurve(normalized, params.PartClearance, params.MaximumNormalDistanceForPolygonization)
	offsetR := offsetN.Rotate180()
	bc.StopTimer(trace.TimerOffset)

	bc.StartTimer(trace.TimerRaster)
	rasters := nofitspace.Build(offsetN, params.RasterStep, params.MaximumNormalDistanceForPolygonization)
	bc.StopTimer(trace.TimerRaster)

	rng := rand.New(rand.NewSource(params.RNGSeed))

	// Phase 1: singles.
	singleN := PolygonSet{{Position: geom.Zero, Orientation: nest.N}}
	singleR := PolygonSet{{Position: geom.Zero, Orientation: nest.R}}

	// Phase 2: 1:1 spaces (already available as nofitspace.Rasters cases).
	spaceNN := spaceFromCase(rasters, nofitspace.NN)
	spaceNR := spaceFromCase(rasters, nofitspace.NR)

	// Phase 3: pair positions and polygon sets.
	pairScorerNN := newScorer(params.Criterion, rng)
	pairScorerNN.addGroup(singleN, offsetN, offsetR)
	posNN, _, okNN := pairScorerNN.evaluate(spaceNN.Fit(), singleN, offsetN, offsetR)

	pairScorerNR := newScorer(params.Criterion, rng)
	pairScorerNR.addGroup(singleN, offsetN, offsetR)
	posNR, _, okNR := pairScorerNR.evaluate(spaceNR.Fit(), singleR, offsetN, offsetR)

	if !okNN && !okNR {
		bc.Log(trace.Progress, "no feasible 1:1 pair position, tuple nesting yields a single part")
		return singlePartResult(normalized, offsetN, params.TableRadius, bc), nesterr.Status{}
	}

	var pairNN, pairNR, pairRR PolygonSet
	if okNN {
		pairNN = PolygonSet{{Position: geom.Zero, Orientation: nest.N}, {Position: posNN, Orientation: nest.N}}
		pairRR = pairNN.Reflect()
	}
	if okNR {
		pairNR = PolygonSet{{Position: geom.Zero, Orientation: nest.N}, {Position: posNR, Orientation: nest.R}}
	}

	bc.Log(trace.Progress, "assembled pair polygon sets")

	// Phases 4-7: build the three quadruple nesting types, each from its
	// own anchor/probe pair combination, composing compound spaces with
	// compoundSpace (the shared generalization of addSubtract/translate).
	type arrangement struct {
		name   string
		result []PlacedPart
	}
	var arrangements []arrangement

	if okNN {
		arr := buildQuadrupleArrangement(pairNN, pairNN, offsetN, offsetR, rasters, params, bc)
		arrangements = append(arrangements, arrangement{"NN_NN", arr})
	}
	if okNR {
		arr := buildQuadrupleArrangement(pairNR, pairNR, offsetN, offsetR, rasters, params, bc)
		arrangements = append(arrangements, arrangement{"NR_NR", arr})
	}
	if okNN {
		arr := buildQuadrupleArrangement(pairNN, pairRR, offsetN, offsetR, rasters, params, bc)
		arrangements = append(arrangements, arrangement{"NN_RR", arr})
	}

	if len(arrangements) == 0 {
		return singlePartResult(normalized, offsetN, params.TableRadius, bc), nesterr.Status{}
	}

	// Phase 9: bounded planar search, one per arrangement, keep the best.
	bestCount := -1
	bestMaxDist := 0.0
	var bestPlacements []PlacedPart
	for _, arr := range arrangements {
		count, maxDist, center, ok := gridSearch(arr.result, offsetN, offsetR, params.TableRadius, params.RasterStep, params.RNGSeed)
		if !ok {
			continue
		}
		bc.Log(trace.Progress, arr.name+": grid search found "+strconv.Itoa(count)+" polygons on table")
		if count > bestCount || (count == bestCount && maxDist < bestMaxDist) {
			bestCount = count
			bestMaxDist = maxDist
			bestPlacements = translateAndFilter(arr.result, center, offsetN, offsetR, params.TableRadius)
		}
	}

	if bestPlacements == nil {
		return singlePartResult(normalized, offsetN, params.TableRadius, bc), nesterr.Status{}
	}

	return Result{Part: normalized, TableRadius: params.TableRadius, Placements: bestPlacements}, nesterr.Status{}
}

func singlePartResult(part, offsetN geom.Polygon, tableRadius float64, bc *trace.BuildContext) Result {
	if !withinTable(offsetN, geom.Zero, tableRadius) {
		bc.Log(trace.Warning, "single part does not fit on the table")
		return Result{Part: part, TableRadius: tableRadius}
	}
	return Result{
		Part:        part,
		TableRadius: tableRadius,
		Placements:  []PlacedPart{{Position: geom.Zero, Orientation: nest.N}},
	}
}

// buildQuadrupleArrangement finds the best relative position of probePair
// next to anchorPair (phase 6), assembles the quadruple (phases 4-7 via
// compoundSpace), then runs the greedy self-nesting loop (phase 8).
func buildQuadrupleArrangement(anchorPair, probePair PolygonSet, offsetN, offsetR geom.Polygon, rasters nofitspace.Rasters, params config.Parameters, bc *trace.BuildContext) []PlacedPart {
	pairSpace := compoundSpace(anchorPair, probePair, rasters)

	quadScorer := newScorer(params.Criterion, rand.New(rand.NewSource(params.RNGSeed)))
	quadScorer.addGroup(anchorPair, offsetN, offsetR)
	pos, _, ok := quadScorer.evaluate(pairSpace.Fit(), probePair, offsetN, offsetR)
	if !ok {
		return anchorPair
	}

	quadruple := append(append(PolygonSet{}, anchorPair...), probePair.Translate(pos)...)

	selfSpace := compoundSpace(quadruple, quadruple, rasters)

	center, radius := enclosingCircle(quadruple, offsetN, offsetR, rand.New(rand.NewSource(params.RNGSeed)))
	p0 := geom.FromPoint(geom.NewPoint(-center.X(), -center.Y()), params.RasterStep)

	filter := func(v geom.IntegerVector) bool {
		return v.ToPoint().Dist(p0.ToPoint()) <= params.TableRadius+radius
	}

	placements := []geom.IntegerVector{p0}
	search := newSearchLoop(selfSpace, p0, filter)
	quadScorer2 := newScorer(params.Criterion, rand.New(rand.NewSource(params.RNGSeed)))
	quadScorer2.addGroup(quadruple.Translate(p0), offsetN, offsetR)

	bc.StartTimer(trace.TimerPlace)
	for {
		qpos, _, ok := quadScorer2.evaluate(search.FitTotal.Items(), quadruple, offsetN, offsetR)
		if !ok {
			break
		}
		search.AddPlacement(qpos, selfSpace.Fit(), selfSpace.NoFit(), filter)
		quadScorer2.addGroup(quadruple.Translate(qpos), offsetN, offsetR)
		placements = append(placements, qpos)
	}
	bc.StopTimer(trace.TimerPlace)

	var out PolygonSet
	for _, qp := range placements {
		out = append(out, quadruple.Translate(qp)...)
	}
	return out
}

// enclosingCircle returns the smallest enclosing circle of group's world
// vertices.
func enclosingCircle(group PolygonSet, offsetN, offsetR geom.Polygon, rng *rand.Rand) (geom.Point, float64) {
	vertices := group.Vertices(offsetN, offsetR)
	reduced := hull.ConvexHullStream(sortedCopy(vertices)).Vertices
	c := sec.SmallestEnclosingCircle(reduced, rng)
	return c.Center, c.Radius
}

func sortedCopy(pts []geom.Point) []geom.Point {
	out := append([]geom.Point(nil), pts...)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && less(out[j], out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

func less(a, b geom.Point) bool {
	if a.X() != b.X() {
		return a.X() < b.X()
	}
	return a.Y() < b.Y()
}

// newSearchLoop seeds a searchspace.Space with the quadruple's own static
// fit/no-fit raster (selfSpace), so the accumulating search below reuses the
// exact same fit/no-fit bookkeeping (and disjointness invariant) the simple
// driver's placement loop relies on in package searchspace, rather than a
// second, independent copy of it.
func newSearchLoop(selfSpace *Space, pos geom.IntegerVector, filter searchspace.Filter) *searchspace.Space {
	search := searchspace.New()
	search.AddPlacement(pos, selfSpace.Fit(), selfSpace.NoFit(), filter)
	return search
}

func withinTable(poly geom.Polygon, pos geom.IntegerVector, tableRadius float64) bool {
	r2 := tableRadius * tableRadius
	for _, v := range poly.Vertices {
		p := v.AddInt(pos)
		if p.X()*p.X()+p.Y()*p.Y() >= r2 {
			return false
		}
	}
	return true
}

// gridSearch implements spec 4.11 step 9: a 2D grid search over a square
// inscribed in the arrangement's smallest enclosing circle, at step R,
// counting how many of the arrangement's polygons lie entirely inside a
// table disk centered at each candidate grid point.
func gridSearch(arrangement []PlacedPart, offsetN, offsetR geom.Polygon, tableRadius float64, rasterStep, rngSeed int64) (bestCount int, bestMaxDist float64, bestCenter geom.Point, ok bool) {
	group := PolygonSet(arrangement)
	polys := group.Polygons(offsetN, offsetR)
	if len(polys) == 0 {
		return 0, 0, geom.Origin, false
	}
	vertices := group.Vertices(offsetN, offsetR)
	reduced := hull.ConvexHullStream(sortedCopy(vertices)).Vertices
	c := sec.SmallestEnclosingCircle(reduced, rand.New(rand.NewSource(rngSeed)))

	half := c.Radius / 1.4142135623730951 // side/2 of the square inscribed in the SEC
	step := float64(rasterStep)
	if step <= 0 {
		step = 1
	}

	bestCount = -1
	for x := c.Center.X() - half; x <= c.Center.X()+half; x += step {
		for y := c.Center.Y() - half; y <= c.Center.Y()+half; y += step {
			center := geom.NewPoint(x, y)
			count := 0
			maxDist := 0.0
			for _, poly := range polys {
				if withinTableOfCenter(poly, center, tableRadius) {
					count++
					for _, v := range poly.Vertices {
						if d := v.Dist(center); d > maxDist {
							maxDist = d
						}
					}
				}
			}
			if count > bestCount || (count == bestCount && count > 0 && maxDist < bestMaxDist) {
				bestCount, bestMaxDist, bestCenter, ok = count, maxDist, center, true
			}
		}
	}
	return bestCount, bestMaxDist, bestCenter, ok
}

func withinTableOfCenter(poly geom.Polygon, center geom.Point, tableRadius float64) bool {
	r2 := tableRadius * tableRadius
	for _, v := range poly.Vertices {
		dx, dy := v.X()-center.X(), v.Y()-center.Y()
		if dx*dx+dy*dy >= r2 {
			return false
		}
	}
	return true
}

// translateAndFilter translates arrangement so center becomes the origin
// (spec 9's adopted convention) and keeps only the parts that land
// entirely within the table disk.
func translateAndFilter(arrangement []PlacedPart, center geom.Point, offsetN, offsetR geom.Polygon, tableRadius float64) []PlacedPart {
	shift := geom.FromPoint(geom.NewPoint(-center.X(), -center.Y()), 1)
	var out []PlacedPart
	for _, p := range arrangement {
		shifted := PlacedPart{Position: p.Position.Add(shift), Orientation: p.Orientation}
		poly := PolygonSet{shifted}.Polygons(offsetN, offsetR)[0]
		if withinTableOfCenter(poly, geom.Origin, tableRadius) {
			out = append(out, shifted)
		}
	}
	return out
}
