// Package nesterr defines the engine's typed status/error values, mirroring
// the flagged-status idiom the teacher corpus uses for its own build and
// query errors rather than ad hoc error strings.
package nesterr

import "fmt"

// Kind is one of the four error kinds the engine's error handling design
// distinguishes.
type Kind uint8

const (
	// None indicates success; no error.
	None Kind = iota
	// InvalidInput: the input polygon is not simple, has fewer than three
	// vertices, or has zero area.
	InvalidInput
	// GeometricDegeneracy: a geometric predicate failed on catastrophically
	// ill-conditioned input (e.g. a degenerate line intersection, or three
	// collinear points defeating the smallest-enclosing-circle predicate).
	GeometricDegeneracy
	// EmptyResult is not actually surfaced as an error: it is documented
	// here so callers can see it's part of the same taxonomy, but the
	// engine returns a valid empty placement list for it, never a Status.
	EmptyResult
	// ConfigOutOfRange: a configuration value (radius, clearance, raster
	// step) was non-positive.
	ConfigOutOfRange
)

// Status is a small typed error value carrying one of the Kinds above, plus
// a free-form detail message.
type Status struct {
	Kind   Kind
	Detail string
}

// New returns a Status of the given kind with the given detail message.
func New(kind Kind, detail string) Status {
	return Status{Kind: kind, Detail: detail}
}

// Error implements the error interface.
func (s Status) Error() string {
	switch s.Kind {
	case InvalidInput:
		return fmt.Sprintf("invalid input: %s", s.Detail)
	case GeometricDegeneracy:
		return fmt.Sprintf("geometric degeneracy: %s", s.Detail)
	case EmptyResult:
		return fmt.Sprintf("empty result: %s", s.Detail)
	case ConfigOutOfRange:
		return fmt.Sprintf("configuration out of range: %s", s.Detail)
	default:
		return s.Detail
	}
}

// Failed reports whether s represents a real failure (anything but None and
// EmptyResult, which is a valid, non-error outcome).
func (s Status) Failed() bool {
	return s.Kind != None && s.Kind != EmptyResult
}
