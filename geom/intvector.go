package geom

// IntegerVector is a displacement on the integer raster lattice used by the
// fit/no-fit rasters and the search spaces. Two IntegerVectors are equal iff
// both components are equal; the ordering is lexicographic on (X, Y).
//
// Values are plain 64-bit integers, already expressed in the same length
// unit as the real geometry (i.e. with a raster step of R, every fit/no-fit
// raster vector has both components a multiple of R).
type IntegerVector struct {
	X, Y int64
}

// Zero is the zero IntegerVector.
var Zero = IntegerVector{}

// Equal reports whether v and o denote the same lattice offset.
//
// The source this engine is modeled on compares an IntegerVector against an
// unrelated IntegerPoint type in its equals method, so two IntegerVectors
// never compare equal there; ordered-set membership tests would be silently
// broken by that mistake, so here Equal compares IntegerVector to
// IntegerVector by value, as it must.
func (v IntegerVector) Equal(o IntegerVector) bool {
	return v.X == o.X && v.Y == o.Y
}

// Less reports whether v sorts strictly before o in lexicographic (X, Y)
// order.
func (v IntegerVector) Less(o IntegerVector) bool {
	if v.X != o.X {
		return v.X < o.X
	}
	return v.Y < o.Y
}

// Add returns v + o.
func (v IntegerVector) Add(o IntegerVector) IntegerVector {
	return IntegerVector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v IntegerVector) Sub(o IntegerVector) IntegerVector {
	return IntegerVector{X: v.X - o.X, Y: v.Y - o.Y}
}

// Neg returns the point reflection of v about the origin.
func (v IntegerVector) Neg() IntegerVector {
	return IntegerVector{X: -v.X, Y: -v.Y}
}

// ToPoint converts v to a real Point.
func (v IntegerVector) ToPoint() Point {
	return NewPoint(float64(v.X), float64(v.Y))
}

// FromPoint rounds p to the nearest lattice point at the given raster step.
func FromPoint(p Point, step int64) IntegerVector {
	return IntegerVector{
		X: roundToStep(p.X(), step),
		Y: roundToStep(p.Y(), step),
	}
}

func roundToStep(v float64, step int64) int64 {
	if step <= 0 {
		step = 1
	}
	f := v / float64(step)
	r := int64(f)
	frac := f - float64(r)
	if frac > 0.5 {
		r++
	} else if frac < -0.5 {
		r--
	}
	return r * step
}
