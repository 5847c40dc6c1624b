package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// LookupMetrics holds Prometheus metrics for lookup-level observability.
type LookupMetrics struct {
	// Attempts counts settled lookup attempts, labeled by outcome
	// category ("none" for success).
	Attempts *prometheus.CounterVec

	// RejectedSubmits counts submits refused before any network call
	// (empty input).
	RejectedSubmits prometheus.Counter

	// Duration observes the wall time of one attempt against the
	// upstream API.
	Duration prometheus.Histogram
}

// NewLookupMetrics creates and registers lookup metrics under the given
// namespace.
func NewLookupMetrics(namespace string) *LookupMetrics {
	if namespace == "" {
		namespace = "minutes"
	}

	return &LookupMetrics{
		Attempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "lookup_attempts_total",
				Help:      "Settled lookup attempts by outcome category",
			},
			[]string{"category"},
		),
		RejectedSubmits: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "lookup_rejected_submits_total",
				Help:      "Submits refused before any network call",
			},
		),
		Duration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "lookup_duration_seconds",
				Help:      "Duration of one lookup attempt against the upstream API",
				Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
			},
		),
	}
}

// ObserveAttempt records one settled attempt.
func (m *LookupMetrics) ObserveAttempt(category string, elapsed time.Duration) {
	m.Attempts.WithLabelValues(category).Inc()
	m.Duration.Observe(elapsed.Seconds())
}
