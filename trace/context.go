// Package trace provides BuildContext, an optional in-memory logger and
// timer accumulator threaded through preprocessing and the nesting drivers,
// modeled on the teacher corpus's rcContext/rcContexter pair: a pluggable
// logging-plus-timing facility that never performs file or network I/O
// itself.
package trace

import "time"

// Category is a log-entry category, mirroring rcLogCategory.
type Category int

const (
	// Progress reports ordinary forward progress (placements, raster
	// builds, phase transitions).
	Progress Category = iota
	// Warning reports a recoverable anomaly.
	Warning
	// Error reports a terminal condition for the current phase.
	Error
)

// Timer identifies one of the named timer buckets a BuildContext
// accumulates.
type Timer int

const (
	TimerOffset Timer = iota
	TimerRaster
	TimerPlace
	TimerCriterion
	timerCount
)

// Entry is a single recorded log line.
type Entry struct {
	Category Category
	Message  string
}

// BuildContext accumulates log entries and named timers across a nesting
// run. A nil *BuildContext is valid: every method is a no-op on a nil
// receiver, so callers that don't want tracing can pass nil and pay
// nothing, exactly as an rcContext can be constructed in disabled state.
type BuildContext struct {
	entries []Entry
	accum   [timerCount]time.Duration
	running [timerCount]time.Time
}

// New returns an empty, enabled BuildContext.
func New() *BuildContext {
	return &BuildContext{}
}

// Log appends a log entry. No-op on a nil receiver.
func (c *BuildContext) Log(cat Category, msg string) {
	if c == nil {
		return
	}
	c.entries = append(c.entries, Entry{Category: cat, Message: msg})
}

// Entries returns every recorded log entry, in order. Nil on a nil
// receiver.
func (c *BuildContext) Entries() []Entry {
	if c == nil {
		return nil
	}
	return c.entries
}

// StartTimer starts (or restarts) the named timer. No-op on a nil receiver.
func (c *BuildContext) StartTimer(t Timer) {
	if c == nil {
		return
	}
	c.running[t] = time.Now()
}

// StopTimer accumulates the elapsed time since the matching StartTimer into
// the named timer's total. No-op on a nil receiver or an unstarted timer.
func (c *BuildContext) StopTimer(t Timer) {
	if c == nil {
		return
	}
	if c.running[t].IsZero() {
		return
	}
	c.accum[t] += time.Since(c.running[t])
	c.running[t] = time.Time{}
}

// Elapsed returns the accumulated duration for the named timer. Zero on a
// nil receiver.
func (c *BuildContext) Elapsed(t Timer) time.Duration {
	if c == nil {
		return 0
	}
	return c.accum[t]
}
