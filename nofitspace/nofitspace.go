// Package nofitspace builds the fit/no-fit integer-lattice rasters for a
// polygon, for all four placement-orientation cases.
package nofitspace

import (
	"math"

	"github.com/saebelma/nesting/geom"
	"github.com/saebelma/nesting/hull"
	"github.com/saebelma/nesting/nfp"
	"github.com/saebelma/nesting/offsetcurve"
)

// Case identifies one of the four {normal,rotated} x {normal,rotated}
// placement combinations a fit/no-fit raster is built for.
type Case int

const (
	// NN is normal-fixed, normal-orbiting.
	NN Case = iota
	// RR is rotated-fixed, rotated-orbiting.
	RR
	// NR is normal-fixed, rotated-orbiting.
	NR
	// RN is rotated-fixed, normal-orbiting.
	RN
)

func (c Case) String() string {
	switch c {
	case NN:
		return "NN"
	case RR:
		return "RR"
	case NR:
		return "NR"
	case RN:
		return "RN"
	default:
		return "?"
	}
}

// Space holds, for a single case, the raster positions at which placing a
// second instance of the part would not overlap (Fit) or would overlap
// (NoFit) a first instance at the origin.
type Space struct {
	Fit, NoFit []geom.IntegerVector
}

// Rasters holds the four per-case Spaces.
type Rasters struct {
	Cases map[Case]Space
}

// Build computes the four fit/no-fit rasters for the offset polygon q
// (already expanded by the required clearance), using the given integer
// raster step and the polygonization error tolerance used when expanding
// the no-fit polygon outward in step 3 of the algorithm.
func Build(q geom.Polygon, rasterStep int64, maxNormalError float64) Rasters {
	qRot := q.Rotate180()

	cHull := hull.ConvexHull(q.Vertices)
	cRotHull := hull.ConvexHull(qRot.Vertices)

	spaceNN := computeCase(cHull, cHull, q, q, rasterStep, maxNormalError)
	spaceNR := computeCase(cHull, cRotHull, q, qRot, rasterStep, maxNormalError)

	return Rasters{Cases: map[Case]Space{
		NN: spaceNN,
		NR: spaceNR,
		RR: reflect(spaceNN),
		RN: reflect(spaceNR),
	}}
}

func reflect(s Space) Space {
	out := Space{
		Fit:   make([]geom.IntegerVector, len(s.Fit)),
		NoFit: make([]geom.IntegerVector, len(s.NoFit)),
	}
	for i, v := range s.Fit {
		out.Fit[i] = v.Neg()
	}
	for i, v := range s.NoFit {
		out.NoFit[i] = v.Neg()
	}
	return out
}

// computeCase implements spec 4.7 steps 1-6 for a single {fixed,orbiting}
// convex-hull pair and their underlying (possibly non-convex) offset
// polygons.
func computeCase(fixedHull, orbitingHull geom.Polygon, fixedQ, orbitingQ geom.Polygon, rasterStep int64, maxNormalError float64) Space {
	fullNFP := nfp.NoFitPolygon(fixedHull, orbitingHull)

	box := fixedQ.BoundingBox()
	iMax := ceilDiv(box.Width, rasterStep) + 1
	jMax := ceilDiv(box.Height, rasterStep) + 1

	expanded := offsetcurve.OffsetCurve(fullNFP, math.Sqrt2*float64(rasterStep), maxNormalError)

	// fullNFP already lives in the same world frame as fixedQ/orbitingQ (its
	// walk starts at fixed's own reference vertex, not an abstracted origin),
	// so the candidate test is simply: does translating orbiting's own
	// NFP-reference vertex by v land inside the (expanded) no-fit region?
	refOrbitingNFP := orbitingHull.At(nfp.OrbitingRefPointIndex(orbitingHull))

	var fit, noFit []geom.IntegerVector
	for i := -iMax; i <= iMax; i++ {
		for j := -jMax; j <= jMax; j++ {
			v := geom.IntegerVector{X: i * rasterStep, Y: j * rasterStep}
			probe := refOrbitingNFP.AddInt(v)
			if !expanded.Contains(probe) {
				continue // outside the (expanded) no-fit region: cannot overlap
			}
			if orbitingQ.TranslateInt(v).Intersects(fixedQ) {
				noFit = append(noFit, v)
			} else {
				fit = append(fit, v)
			}
		}
	}
	return Space{Fit: fit, NoFit: noFit}
}

// ceilDiv returns ceil(value/step) as an int64, clamped to [0, 1<<30] so a
// huge value/step ratio (a big part against a tiny RasterStep) can never
// feed a bogus or overflowed count into computeCase's raster scan.
func ceilDiv(value float64, step int64) int64 {
	if step <= 0 {
		step = 1
	}
	n := int64(math.Ceil(value / float64(step)))
	if n < 0 {
		return 0
	}
	const cap = int64(1) << 30
	if n > cap {
		return cap
	}
	return n
}
