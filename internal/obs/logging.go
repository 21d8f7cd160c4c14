package obs

import (
	"github.com/go-logr/logr"

	"github.com/gitrdm/resolve/pkg/resolve"
)

// LogObserver logs one line per given-clause iteration through a logr.Logger,
// at V(1) so a plain "prove" run stays quiet unless -v is passed (§6B).
type LogObserver struct {
	log logr.Logger
}

// NewLogObserver wraps log as a resolve.Observer.
func NewLogObserver(log logr.Logger) *LogObserver {
	return &LogObserver{log: log}
}

func (o *LogObserver) OnIteration(stats resolve.IterationStats) {
	l := o.log.V(1)
	if !l.Enabled() {
		return
	}
	given := "<nil>"
	if stats.Given != nil {
		given = stats.Given.String()
	}
	l.Info("given-clause iteration",
		"given", given,
		"generated", stats.Generated,
		"kept", stats.Kept,
		"discarded", stats.Discarded,
		"unprocessed", stats.Unprocessed,
		"processed", stats.Processed,
		"elapsed", stats.Elapsed,
	)
}

// MultiObserver fans one notification out to several observers — used to
// run logging and metrics side by side without Engine knowing about
// either concretely.
type MultiObserver struct {
	observers []resolve.Observer
}

// NewMultiObserver combines the given observers into one.
func NewMultiObserver(observers ...resolve.Observer) *MultiObserver {
	return &MultiObserver{observers: observers}
}

func (m *MultiObserver) OnIteration(stats resolve.IterationStats) {
	for _, o := range m.observers {
		o.OnIteration(stats)
	}
}
