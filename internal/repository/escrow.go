package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EscrowRepo persists escrow holds and fee reservations, 1:1 per load.
type EscrowRepo struct {
	db *pgxpool.Pool
}

// NewEscrowRepo creates a new EscrowRepo.
func NewEscrowRepo(db *pgxpool.Pool) *EscrowRepo {
	return &EscrowRepo{db: db}
}

// InsertHold records a successful escrow hold. The unique load_id
// constraint makes a duplicate insert surface as 23505.
func (r *EscrowRepo) InsertHold(ctx context.Context, loadID, amountMinor int64, txID string) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO escrow_holds (load_id, amount_minor, transaction_id, status, created_at)
        VALUES ($1, $2, $3, 'HELD', now())
    `, loadID, amountMinor, txID)
	if err != nil {
		return fmt.Errorf("insert escrow hold for load %d: %w", loadID, err)
	}
	return nil
}

// MarkHoldReleased moves a hold out of HELD into the given terminal state
// (RELEASED or REFUNDED).
func (r *EscrowRepo) MarkHoldReleased(ctx context.Context, loadID int64, state string) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE escrow_holds SET status = $2 WHERE load_id = $1 AND status = 'HELD'
    `, loadID, state)
	if err != nil {
		return false, fmt.Errorf("release escrow hold for load %d: %w", loadID, err)
	}
	return ct.RowsAffected() > 0, nil
}

// GetHeldAmount returns the held amount for a load, or 0 when nothing is held.
func (r *EscrowRepo) GetHeldAmount(ctx context.Context, loadID int64) (int64, error) {
	var amount int64
	err := r.db.QueryRow(ctx, `
        SELECT COALESCE((SELECT amount_minor FROM escrow_holds WHERE load_id = $1 AND status = 'HELD'), 0)
    `, loadID).Scan(&amount)
	if err != nil {
		return 0, fmt.Errorf("get held amount for load %d: %w", loadID, err)
	}
	return amount, nil
}

// InsertFeeReservation records a platform fee reservation.
func (r *EscrowRepo) InsertFeeReservation(ctx context.Context, loadID, amountMinor int64, txID string) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO fee_reservations (load_id, amount_minor, transaction_id, created_at)
        VALUES ($1, $2, $3, now())
    `, loadID, amountMinor, txID)
	if err != nil {
		return fmt.Errorf("insert fee reservation for load %d: %w", loadID, err)
	}
	return nil
}
