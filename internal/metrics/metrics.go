package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewAssignmentsTotal returns a Prometheus counter for committed assignments
func NewAssignmentsTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "assignments_total",
		Help: "Total number of committed load assignments",
	})
}

// NewAssignmentConflictsTotal returns a Prometheus counter for assignment attempts lost to a concurrent commitment
func NewAssignmentConflictsTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "assignment_conflicts_total",
		Help: "Total number of assignment attempts rejected with a conflict",
	})
}

// NewSideEffectFailuresTotal returns a Prometheus counter vec for post-commit side-effect failures by kind
func NewSideEffectFailuresTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "side_effect_failures_total",
		Help: "Total number of non-critical post-commit side-effect failures",
	}, []string{"kind"})
}

// NewSettlementSweepTotal returns a Prometheus counter vec for settlement sweep outcomes
func NewSettlementSweepTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "settlement_sweep_total",
		Help: "Total number of loads processed by the settlement sweep",
	}, []string{"operation"})
}

// NewWalletRetriesTotal returns a Prometheus counter for retry attempts performed by the wallet gateway
func NewWalletRetriesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "wallet_retries_total",
		Help: "Total number of retry attempts performed by the wallet gateway",
	})
}

// NewRateLimitExceededTotal returns a Prometheus counter for HTTP requests rejected by the rate limiter
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// Labeled adapts a single-label CounterVec to the Inc(kind) shape the
// services count with.
type Labeled struct {
	vec *prometheus.CounterVec
}

// NewLabeled wraps a counter vec.
func NewLabeled(vec *prometheus.CounterVec) Labeled {
	return Labeled{vec: vec}
}

// Inc increments the counter for the given kind.
func (l Labeled) Inc(kind string) {
	if l.vec == nil {
		return
	}
	l.vec.WithLabelValues(kind).Inc()
}

// NewOutboxRetriesTotal returns a Prometheus counter for outbox delivery retries
func NewOutboxRetriesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "outbox_retries_total",
		Help: "Total number of outbox rows that failed delivery and were retried",
	})
}
