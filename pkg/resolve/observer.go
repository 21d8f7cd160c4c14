package resolve

import "time"

// IterationStats summarizes one pass of the given-clause loop (§4.6), for
// an Observer to log or turn into metrics. It carries no reference back
// into Engine's internal state, so an Observer implementation never needs
// to worry about mutating the engine it is watching.
type IterationStats struct {
	Given      *Clause
	Generated  int
	Kept       int
	Discarded  int
	Elapsed    time.Duration
	Unprocessed int
	Processed   int
}

// Observer is notified once per given-clause iteration. It is the seam
// internal/obs uses to wire structured logging (logr) and metrics
// (prometheus) without pkg/resolve itself depending on either — the core
// saturation engine (§1's "core" scope) stays free of ambient-stack
// imports; §4.8 of SPEC_FULL.md describes the concrete wiring.
type Observer interface {
	OnIteration(IterationStats)
}

// NoopObserver discards every notification; it is the Engine's default so
// callers never need a nil check.
type NoopObserver struct{}

func (NoopObserver) OnIteration(IterationStats) {}
