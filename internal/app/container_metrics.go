package app

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"loadboard/internal/metrics"
)

// metricsOut exposes every domain counter under a dig name so providers can
// pick the one they feed.
type metricsOut struct {
	dig.Out

	RateLimitExceededTotal   prometheus.Counter     `name:"rate_limit_exceeded_total"`
	WalletRetriesTotal       prometheus.Counter     `name:"wallet_retries_total"`
	AssignmentsTotal         prometheus.Counter     `name:"assignments_total"`
	AssignmentConflictsTotal prometheus.Counter     `name:"assignment_conflicts_total"`
	SideEffectFailuresTotal  *prometheus.CounterVec `name:"side_effect_failures_total"`
	SettlementSweepTotal     *prometheus.CounterVec `name:"settlement_sweep_total"`
	OutboxRetriesTotal       prometheus.Counter     `name:"outbox_retries_total"`
}

// provideMetrics registers the domain counters with the default registerer.
// An already-registered collector is reused, so rebuilding the container in
// one process does not panic.
func provideMetrics() (metricsOut, error) {
	var out metricsOut
	var err error

	if out.RateLimitExceededTotal, err = registerCounter("rate_limit_exceeded_total", metrics.NewRateLimitExceededTotal()); err != nil {
		return out, err
	}
	if out.WalletRetriesTotal, err = registerCounter("wallet_retries_total", metrics.NewWalletRetriesTotal()); err != nil {
		return out, err
	}
	if out.AssignmentsTotal, err = registerCounter("assignments_total", metrics.NewAssignmentsTotal()); err != nil {
		return out, err
	}
	if out.AssignmentConflictsTotal, err = registerCounter("assignment_conflicts_total", metrics.NewAssignmentConflictsTotal()); err != nil {
		return out, err
	}
	if out.SideEffectFailuresTotal, err = registerCounterVec("side_effect_failures_total", metrics.NewSideEffectFailuresTotal()); err != nil {
		return out, err
	}
	if out.SettlementSweepTotal, err = registerCounterVec("settlement_sweep_total", metrics.NewSettlementSweepTotal()); err != nil {
		return out, err
	}
	if out.OutboxRetriesTotal, err = registerCounter("outbox_retries_total", metrics.NewOutboxRetriesTotal()); err != nil {
		return out, err
	}
	return out, nil
}

func registerCounter(name string, c prometheus.Counter) (prometheus.Counter, error) {
	err := prometheus.DefaultRegisterer.Register(c)
	if err == nil {
		return c, nil
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
			return existing, nil
		}
	}
	return nil, fmt.Errorf("register %s: %w", name, err)
}

func registerCounterVec(name string, v *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	err := prometheus.DefaultRegisterer.Register(v)
	if err == nil {
		return v, nil
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
			return existing, nil
		}
	}
	return nil, fmt.Errorf("register %s: %w", name, err)
}
