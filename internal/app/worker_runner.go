package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"loadboard/internal/config"
	"loadboard/internal/logx"
	"loadboard/internal/outbox"
	"loadboard/internal/service/settlement"
	"loadboard/internal/transport/kafka"
)

// WorkerRunner runs the settlement sweep and the outbox drain loops
type WorkerRunner struct {
	runFn func(*dig.Container) error
}

// NewWorkerRunner returns a new WorkerRunner
func NewWorkerRunner() *WorkerRunner {
	return &WorkerRunner{runFn: runWorker}
}

// MustRun starts the worker loops using the provided DI container
func (r *WorkerRunner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	panic(err)
}

func runWorker(container *dig.Container) error {
	return container.Invoke(workerRun)
}

func workerRun(
	ctx context.Context,
	pool *pgxpool.Pool,
	logger logx.Logger,
	cfg *config.Config,
	settle *settlement.Service,
	drainer *outbox.Drainer,
	producer *kafka.Producer,
) error {
	if drainer == nil {
		return fmt.Errorf("outbox drainer is nil: worker container misconfigured")
	}
	defer closeWorker(pool, logger, producer)

	logger.Info("loadboard-worker started")
	go runSettlementSweep(ctx, logger, settle, cfg.Settlement.SweepInterval)
	return drainer.Run(ctx, cfg.Outbox.DrainInterval)
}

// runSettlementSweep verifies overdue PODs and settles ready loads on a
// fixed cadence until the context ends.
func runSettlementSweep(ctx context.Context, logger logx.Logger, svc *settlement.Service, interval time.Duration) {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			res, err := svc.Sweep(ctx)
			if err != nil {
				if ctx.Err() == nil {
					logger.Error("settlement sweep failed", logx.Err(err))
				}
				continue
			}
			if res.PodVerified > 0 || res.Settled > 0 || res.Failed > 0 {
				logger.Info("settlement sweep finished",
					logx.Int("pod_verified", res.PodVerified),
					logx.Int("settled", res.Settled),
					logx.Int("failed", res.Failed),
				)
			}
		}
	}
}

func closeWorker(pool *pgxpool.Pool, logger logx.Logger, producer *kafka.Producer) {
	if err := producer.Close(); err != nil {
		logger.Error("kafka producer close error", logx.Err(err))
	}
	if pool != nil {
		pool.Close()
	}
}
