package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"loadboard/internal/ports/assigntx"
)

// SettlementRepo represents the settlement repository.
type SettlementRepo struct {
	db *pgxpool.Pool
}

// NewSettlementRepo creates a new SettlementRepo.
func NewSettlementRepo(db *pgxpool.Pool) *SettlementRepo {
	return &SettlementRepo{db: db}
}

// AutoVerifyPOD marks proof-of-delivery verified for loads that sat
// DELIVERED past the grace cutoff, recording an audit event per load.
// Returns the ids of the loads it verified.
func (r *SettlementRepo) AutoVerifyPOD(ctx context.Context, cutoff time.Time) ([]int64, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	rows, err := tx.Query(ctx, `
        UPDATE loads
        SET pod_verified = true, updated_at = now()
        WHERE status = 'DELIVERED'
          AND NOT pod_verified
          AND delivered_at IS NOT NULL
          AND delivered_at < $1
        RETURNING id
    `, cutoff)
	if err != nil {
		return nil, fmt.Errorf("auto verify pod: %w", err)
	}
	ids, err := collectIDs(rows)
	if err != nil {
		return nil, fmt.Errorf("auto verify pod: %w", err)
	}

	for _, id := range ids {
		if _, err := tx.Exec(ctx, `
            INSERT INTO load_events (load_id, event_type, actor_id, payload, created_at)
            SELECT $1, 'POD_AUTO_VERIFIED', 0, '{}', now()
            WHERE NOT EXISTS (
                SELECT 1 FROM load_events WHERE load_id = $1 AND event_type = 'POD_AUTO_VERIFIED'
            )
        `, id); err != nil {
			return nil, fmt.Errorf("record pod verification for load %d: %w", id, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	return ids, nil
}

// ListSettleReady returns ids of loads ready for settlement: DELIVERED,
// POD verified and still financially PENDING.
func (r *SettlementRepo) ListSettleReady(ctx context.Context) ([]int64, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id
        FROM loads
        WHERE status = 'DELIVERED'
          AND pod_verified
          AND settlement_status = 'PENDING'
        ORDER BY id
    `)
	if err != nil {
		return nil, fmt.Errorf("list settle ready: %w", err)
	}
	ids, err := collectIDs(rows)
	if err != nil {
		return nil, fmt.Errorf("list settle ready: %w", err)
	}
	return ids, nil
}

// WithTx opens a settlement transaction and executes fn within it.
func (r *SettlementRepo) WithTx(ctx context.Context, fn func(tx assigntx.SettlementTx) error) (err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			err = tx.Rollback(ctx)
			if err != nil {
				panic(err)
			}
			panic(p)
		}
	}()

	wrapped := &TxRepo{tx: tx}

	if err := fn(wrapped); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback tx: %w (original error: %s)", rbErr, err.Error())
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func collectIDs(rows pgx.Rows) ([]int64, error) {
	defer rows.Close()
	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// MarkSettled transitions a load's settlement to PAID and stamps settled_at.
func (r *TxRepo) MarkSettled(ctx context.Context, loadID int64, at time.Time) error {
	ct, err := r.querier().Exec(ctx, `
        UPDATE loads
        SET settlement_status = 'PAID', settled_at = $2, updated_at = now()
        WHERE id = $1
    `, loadID, at)
	if err != nil {
		return fmt.Errorf("mark load %d settled: %w", loadID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("load %d not found", loadID)
	}
	return nil
}
