// Package nest implements the simple nesting driver (spec 4.10): the
// one-part-at-a-time placement loop over a normal and a rotated search
// space, picking at each step the feasible position that minimizes a
// pluggable criterion.
package nest

import (
	"math"
	"math/rand"

	"github.com/saebelma/nesting/config"
	"github.com/saebelma/nesting/criterion"
	"github.com/saebelma/nesting/geom"
	"github.com/saebelma/nesting/hull"
	"github.com/saebelma/nesting/mbb"
	"github.com/saebelma/nesting/nesterr"
	"github.com/saebelma/nesting/nofitspace"
	"github.com/saebelma/nesting/offsetcurve"
	"github.com/saebelma/nesting/searchspace"
	"github.com/saebelma/nesting/trace"
)

// Orientation distinguishes the part's two allowed placement orientations:
// as given (N) or rotated 180 degrees about its bounding-box center (R).
type Orientation int

const (
	N Orientation = iota
	R
)

func (o Orientation) String() string {
	if o == R {
		return "R"
	}
	return "N"
}

// Placement is one placed copy of the part: an integer-lattice position and
// the orientation it was placed in.
type Placement struct {
	Position    geom.IntegerVector
	Orientation Orientation
}

// Result is the output of a completed simple-nesting run.
type Result struct {
	Part        geom.Polygon // normalized input part (bbox center at origin)
	TableRadius float64
	Placements  []Placement
}

// Density returns the fraction of the table disk's area covered by placed
// parts: len(Placements)*Part.Area() / (pi*TableRadius^2).
func (r Result) Density() float64 {
	tableArea := math.Pi * r.TableRadius * r.TableRadius
	if tableArea == 0 {
		return 0
	}
	return float64(len(r.Placements)) * r.Part.Area() / tableArea
}

// Footprint returns the minimum-area oriented bounding box (rotating
// calipers, package mbb) enclosing every placed copy's vertices — the
// material footprint an operator would actually cut from, as opposed to the
// circular table Density measures against.
func (r Result) Footprint() geom.OrientedRectangle {
	return FootprintOf(r.Part, len(r.Placements), func(i int) (geom.IntegerVector, Orientation) {
		p := r.Placements[i]
		return p.Position, p.Orientation
	})
}

// FootprintOf returns the minimum-area oriented bounding box enclosing every
// placed copy of part: at(i) gives the i-th placement's position and
// orientation. Shared by nest.Result.Footprint and tuple.Result.Footprint
// (package tuple has its own placement type but the same rotate-translate-
// collect-hull-mbb logic) so the two can't silently diverge.
func FootprintOf(part geom.Polygon, n int, at func(i int) (geom.IntegerVector, Orientation)) geom.OrientedRectangle {
	var vertices []geom.Point
	for i := 0; i < n; i++ {
		pos, o := at(i)
		poly := part
		if o == R {
			poly = poly.Rotate180()
		}
		poly = poly.TranslateInt(pos)
		vertices = append(vertices, poly.Vertices...)
	}
	if len(vertices) == 0 {
		return geom.OrientedRectangle{}
	}
	return mbb.MinimumBoundingBox(hull.ConvexHull(vertices))
}

// Driver runs the simple nesting protocol for a single part.
type Driver struct {
	params config.Parameters
	bc     *trace.BuildContext

	part             geom.Polygon // normalized original part, for table-containment and density
	offsetN, offsetR geom.Polygon
	rasters          nofitspace.Rasters

	searchN, searchR *searchspace.Space
	crit             criterion.Criterion

	placements []Placement
	done       bool
}

// Validate checks the spec 7 INVALID_INPUT conditions: fewer than 3
// vertices, zero area, or a self-intersecting (non-simple) boundary. Shared
// by both drivers (tuple.Run calls it too) so the two never drift apart on
// what counts as a valid part.
func Validate(part geom.Polygon) nesterr.Status {
	if part.Len() < 3 {
		return nesterr.New(nesterr.InvalidInput, "polygon has fewer than 3 vertices")
	}
	if part.Area() == 0 {
		return nesterr.New(nesterr.InvalidInput, "polygon has zero area")
	}
	n := part.Len()
	for i := 0; i < n; i++ {
		ei := part.Edge(i)
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue // wraparound-adjacent edges share a vertex, not a crossing
			}
			if _, ok := ei.Intersect(part.Edge(j)); ok {
				return nesterr.New(nesterr.InvalidInput, "polygon is not simple")
			}
		}
	}
	return nesterr.Status{}
}

func rngFor(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NewDriver validates params and part, builds the offset curve and no-fit
// rasters, and places the first copy at the origin. bc is optional (nil is
// valid) and receives progress logging and timing per SPEC_FULL.md 4.15.
func NewDriver(part geom.Polygon, params config.Parameters, bc *trace.BuildContext) (*Driver, nesterr.Status) {
	if st := params.Validate(); st.Failed() {
		return nil, st
	}
	if st := Validate(part); st.Failed() {
		return nil, st
	}

	bc.Log(trace.Progress, "normalizing part and building offset curve")
	bc.StartTimer(trace.TimerOffset)
	normalized := part.Normalize()
	offsetN := offsetcurve.OffsetCurve(normalized, params.PartClearance, params.MaximumNormalDistanceForPolygonization)
	offsetR := offsetN.Rotate180()
	bc.StopTimer(trace.TimerOffset)

	bc.Log(trace.Progress, "building fit/no-fit rasters")
	bc.StartTimer(trace.TimerRaster)
	rasters := nofitspace.Build(offsetN, params.RasterStep, params.MaximumNormalDistanceForPolygonization)
	bc.StopTimer(trace.TimerRaster)

	d := &Driver{
		params:  params,
		bc:      bc,
		part:    normalized,
		offsetN: offsetN,
		offsetR: offsetR,
		rasters: rasters,
		searchN: searchspace.New(),
		searchR: searchspace.New(),
		crit:    criterion.New(params.Criterion, rngFor(params.RNGSeed)),
	}

	filter := d.onTableFilter()
	bc.StartTimer(trace.TimerPlace)
	d.searchN.AddPlacement(geom.Zero, rasters.Cases[nofitspace.NN].Fit, rasters.Cases[nofitspace.NN].NoFit, filter)
	d.searchR.AddPlacement(geom.Zero, rasters.Cases[nofitspace.NR].Fit, rasters.Cases[nofitspace.NR].NoFit, filter)
	bc.StopTimer(trace.TimerPlace)

	if !filter(geom.Zero) {
		// The part itself doesn't fit inside the table at the origin: spec
		// 7's EMPTY_RESULT is a valid (non-error) outcome, not a failure.
		d.done = true
		bc.Log(trace.Warning, "part does not fit inside the table at the origin")
		return d, nesterr.Status{}
	}

	d.crit.AddPolygon(geom.Zero, d.offsetN)
	d.placements = append(d.placements, Placement{Position: geom.Zero, Orientation: N})
	bc.Log(trace.Progress, "placed first copy at origin, orientation N")

	return d, nesterr.Status{}
}

// onTableFilter builds the spec 4.10 filter: every vertex of the original
// (un-offset) part, translated by the candidate position, must lie
// strictly inside the table disk. Per the design note on the source's
// pointOnTable defect, the comparison is strict (< tableRadius^2, not <=):
// points exactly on the boundary are excluded, which is deliberate and is
// preserved here.
func (d *Driver) onTableFilter() searchspace.Filter {
	r2 := d.params.TableRadius * d.params.TableRadius
	return func(v geom.IntegerVector) bool {
		for _, vertex := range d.part.Vertices {
			p := vertex.AddInt(v)
			if p.X()*p.X()+p.Y()*p.Y() >= r2 {
				return false
			}
		}
		return true
	}
}

// Step runs a single iteration of the placement loop (spec 4.10 step 4),
// returning false once both search spaces are exhausted.
func (d *Driver) Step() bool {
	if d.done {
		return false
	}

	d.bc.StartTimer(trace.TimerCriterion)
	posN, scoreN, okN := d.crit.Evaluate(d.searchN.FitTotal.Items(), d.offsetN)
	posR, scoreR, okR := d.crit.Evaluate(d.searchR.FitTotal.Items(), d.offsetR)
	d.bc.StopTimer(trace.TimerCriterion)

	if !okN && !okR {
		d.done = true
		d.bc.Log(trace.Progress, "both search spaces exhausted, terminating")
		return false
	}

	var (
		chosenPos    geom.IntegerVector
		chosenOrient Orientation
	)
	switch {
	case okN && (!okR || scoreN <= scoreR):
		chosenPos, chosenOrient = posN, N
	default:
		chosenPos, chosenOrient = posR, R
	}

	filter := d.onTableFilter()
	d.bc.StartTimer(trace.TimerPlace)
	switch chosenOrient {
	case N:
		d.searchN.AddPlacement(chosenPos, d.rasters.Cases[nofitspace.NN].Fit, d.rasters.Cases[nofitspace.NN].NoFit, filter)
		d.searchR.AddPlacement(chosenPos, d.rasters.Cases[nofitspace.NR].Fit, d.rasters.Cases[nofitspace.NR].NoFit, filter)
		d.crit.AddPolygon(chosenPos, d.offsetN)
	case R:
		d.searchN.AddPlacement(chosenPos, d.rasters.Cases[nofitspace.RN].Fit, d.rasters.Cases[nofitspace.RN].NoFit, filter)
		d.searchR.AddPlacement(chosenPos, d.rasters.Cases[nofitspace.RR].Fit, d.rasters.Cases[nofitspace.RR].NoFit, filter)
		d.crit.AddPolygon(chosenPos, d.offsetR)
	}
	d.bc.StopTimer(trace.TimerPlace)

	d.placements = append(d.placements, Placement{Position: chosenPos, Orientation: chosenOrient})
	d.bc.Log(trace.Progress, "placed copy, orientation "+chosenOrient.String())
	return true
}

// Run drives the placement loop to completion and returns the result.
func (d *Driver) Run() Result {
	for d.Step() {
	}
	return Result{
		Part:        d.part,
		TableRadius: d.params.TableRadius,
		Placements:  d.placements,
	}
}

// CompareCriteria runs the simple driver once per available criterion
// (convex-hull area and smallest-enclosing-circle area) on the same part
// and parameters, so a caller can pick the denser result. Pure composition
// of NewDriver/Run; no new geometry (SPEC_FULL.md 4.13).
func CompareCriteria(part geom.Polygon, params config.Parameters) (hullResult, secResult Result, st nesterr.Status) {
	hullParams := params
	hullParams.Criterion = criterion.ConvexHullArea
	hullDriver, st := NewDriver(part, hullParams, nil)
	if st.Failed() {
		return Result{}, Result{}, st
	}
	hullResult = hullDriver.Run()

	secParams := params
	secParams.Criterion = criterion.SECArea
	secDriver, st := NewDriver(part, secParams, nil)
	if st.Failed() {
		return Result{}, Result{}, st
	}
	secResult = secDriver.Run()

	return hullResult, secResult, nesterr.Status{}
}
