// Package obs wires pkg/resolve.Observer to the ambient stack: structured
// logging (go-logr/logr, with a stdr sink for a plain CLI) and Prometheus
// metrics, per §4.8 of SPEC_FULL.md. pkg/resolve itself never imports
// either library — Observer is the seam this package sits behind.
package obs

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/gitrdm/resolve/pkg/resolve"
)

// MetricsObserver records per-iteration saturation statistics against a
// caller-supplied Prometheus registry — never the global default
// registry, so a provecorpus run with one Engine per problem file can
// give each a distinct registry without cross-talk.
type MetricsObserver struct {
	clausesGenerated prometheus.Counter
	clausesKept      prometheus.Counter
	clausesDiscarded prometheus.Counter
	iterations       prometheus.Counter
	iterationLatency prometheus.Histogram
	unprocessedSize  prometheus.Gauge
	processedSize    prometheus.Gauge
}

// NewMetricsObserver registers the saturation-loop metric set on reg and
// returns an Observer that updates them. runID labels every metric so a
// shared registry (e.g. one process in --watch mode, re-running on file
// change) can distinguish runs if the caller chooses to wrap reg with a
// ConstLabels-aware registerer; the simple case here is one registry per
// Engine, matching the "batch concurrency" design in DESIGN.md.
func NewMetricsObserver(reg prometheus.Registerer, runID string) *MetricsObserver {
	labels := prometheus.Labels{"run_id": runID}
	m := &MetricsObserver{
		clausesGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "resolve_clauses_generated_total",
			Help:        "Candidate clauses generated by resolution or factoring.",
			ConstLabels: labels,
		}),
		clausesKept: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "resolve_clauses_kept_total",
			Help:        "Generated clauses that survived the redundancy pipeline.",
			ConstLabels: labels,
		}),
		clausesDiscarded: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "resolve_clauses_discarded_total",
			Help:        "Generated clauses discarded as tautologies or subsumed.",
			ConstLabels: labels,
		}),
		iterations: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "resolve_iterations_total",
			Help:        "Given-clause loop iterations run.",
			ConstLabels: labels,
		}),
		iterationLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "resolve_iteration_seconds",
			Help:        "Wall-clock time spent processing one given clause.",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}),
		unprocessedSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "resolve_unprocessed_clauses",
			Help:        "Clauses currently in the unprocessed set U.",
			ConstLabels: labels,
		}),
		processedSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "resolve_processed_clauses",
			Help:        "Clauses currently in the processed set P.",
			ConstLabels: labels,
		}),
	}
	reg.MustRegister(
		m.clausesGenerated, m.clausesKept, m.clausesDiscarded,
		m.iterations, m.iterationLatency, m.unprocessedSize, m.processedSize,
	)
	return m
}

func (m *MetricsObserver) OnIteration(stats resolve.IterationStats) {
	m.clausesGenerated.Add(float64(stats.Generated))
	m.clausesKept.Add(float64(stats.Kept))
	m.clausesDiscarded.Add(float64(stats.Discarded))
	m.iterations.Inc()
	m.iterationLatency.Observe(stats.Elapsed.Seconds())
	m.unprocessedSize.Set(float64(stats.Unprocessed))
	m.processedSize.Set(float64(stats.Processed))
}
