//go:generate mockgen -source=drainer.go -destination=outbox_mocks_test.go -package=outbox

package outbox

import (
	"context"
	"time"

	"loadboard/internal/logx"
	"loadboard/internal/repository"
	"loadboard/internal/transport/kafka"
)

type outboxRepository interface {
	ListPending(ctx context.Context, maxAttempts, limit int) ([]repository.OutboxRow, error)
	MarkDone(ctx context.Context, id int64) error
	MarkFailed(ctx context.Context, id int64, lastErr string) error
}

type publisher interface {
	Publish(env kafka.Envelope) error
}

type counter interface {
	Inc()
}

// Drainer pushes committed outbox rows to the event stream. Rows are
// written in the same transaction as the state change they describe; the
// drainer is the at-least-once delivery leg.
type Drainer struct {
	repo        outboxRepository
	pub         publisher
	logger      logx.Logger
	retries     counter
	maxAttempts int
	batchSize   int
}

// NewDrainer creates a new outbox Drainer.
func NewDrainer(repo outboxRepository, pub publisher, maxAttempts int, logger logx.Logger, retries counter) *Drainer {
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	return &Drainer{
		repo:        repo,
		pub:         pub,
		logger:      logger,
		retries:     retries,
		maxAttempts: maxAttempts,
		batchSize:   100,
	}
}

// DrainOnce delivers one batch. A failed row keeps its place in the table
// with a bumped attempt counter; rows past the ceiling are left for manual
// remediation and stop being selected.
func (d *Drainer) DrainOnce(ctx context.Context) (int, error) {
	rows, err := d.repo.ListPending(ctx, d.maxAttempts, d.batchSize)
	if err != nil {
		return 0, err
	}

	delivered := 0
	for _, row := range rows {
		if ctx.Err() != nil {
			return delivered, ctx.Err()
		}

		if err := d.pub.Publish(kafka.Envelope{
			LoadID:     row.LoadID,
			Kind:       row.Kind,
			Payload:    row.Payload,
			OccurredAt: row.CreatedAt,
		}); err != nil {
			if kafka.IsPermanent(err) {
				// переигрывать бессмысленно, пусть разбирается дежурный
				d.logger.Error("outbox row undeliverable",
					logx.Int64("outbox_id", row.ID),
					logx.String("kind", row.Kind),
					logx.Err(err),
				)
			} else {
				if d.retries != nil {
					d.retries.Inc()
				}
				d.logger.Warn("outbox delivery failed",
					logx.Int64("outbox_id", row.ID),
					logx.String("kind", row.Kind),
					logx.Int("attempts", row.Attempts+1),
					logx.Err(err),
				)
			}
			if mErr := d.repo.MarkFailed(ctx, row.ID, err.Error()); mErr != nil {
				return delivered, mErr
			}
			continue
		}

		if err := d.repo.MarkDone(ctx, row.ID); err != nil {
			return delivered, err
		}
		delivered++
	}
	return delivered, nil
}

// Run drains on a fixed interval until the context ends.
func (d *Drainer) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, err := d.DrainOnce(ctx); err != nil && ctx.Err() == nil {
				d.logger.Error("outbox drain pass failed", logx.Err(err))
			}
		}
	}
}
