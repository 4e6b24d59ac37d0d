package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// OutboxRow is one pending side-effect intent.
type OutboxRow struct {
	ID        int64
	LoadID    int64
	Kind      string
	Payload   []byte
	Attempts  int
	CreatedAt time.Time
}

// OutboxRepo stores side-effect intents written in the same transaction as
// the primary commit and drained out-of-band.
type OutboxRepo struct {
	db *pgxpool.Pool
}

// NewOutboxRepo creates a new OutboxRepo.
func NewOutboxRepo(db *pgxpool.Pool) *OutboxRepo {
	return &OutboxRepo{db: db}
}

// ListPending returns undone rows under the attempt ceiling, oldest first.
func (r *OutboxRepo) ListPending(ctx context.Context, maxAttempts, limit int) ([]OutboxRow, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, load_id, kind, payload, attempts, created_at
        FROM outbox
        WHERE done_at IS NULL AND attempts < $1
        ORDER BY id
        LIMIT $2
    `, maxAttempts, limit)
	if err != nil {
		return nil, fmt.Errorf("list pending outbox: %w", err)
	}
	defer rows.Close()

	var out []OutboxRow
	for rows.Next() {
		var row OutboxRow
		if err := rows.Scan(&row.ID, &row.LoadID, &row.Kind, &row.Payload, &row.Attempts, &row.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan outbox row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// MarkDone stamps a row as delivered.
func (r *OutboxRepo) MarkDone(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `UPDATE outbox SET done_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark outbox %d done: %w", id, err)
	}
	return nil
}

// MarkFailed bumps the attempt counter and records the last error.
func (r *OutboxRepo) MarkFailed(ctx context.Context, id int64, lastErr string) error {
	_, err := r.db.Exec(ctx, `
        UPDATE outbox SET attempts = attempts + 1, last_error = $2 WHERE id = $1
    `, id, lastErr)
	if err != nil {
		return fmt.Errorf("mark outbox %d failed: %w", id, err)
	}
	return nil
}
