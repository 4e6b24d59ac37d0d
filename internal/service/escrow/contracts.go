//go:generate mockgen -source=contracts.go -destination=escrow_mocks_test.go -package=escrow

package escrow

import (
	"context"

	"loadboard/internal/domain"
)

type escrowRepository interface {
	InsertHold(ctx context.Context, loadID, amountMinor int64, txID string) error
	MarkHoldReleased(ctx context.Context, loadID int64, state string) (bool, error)
	GetHeldAmount(ctx context.Context, loadID int64) (int64, error)
	InsertFeeReservation(ctx context.Context, loadID, amountMinor int64, txID string) error
}

// eventLedger reads and appends marker events outside a transaction.
type eventLedger interface {
	HasEvent(ctx context.Context, loadID int64, t domain.EventType) (bool, error)
	InsertEvent(ctx context.Context, ev *domain.LoadEvent) error
}

type wallet interface {
	Hold(ctx context.Context, loadID, amountMinor int64) (string, error)
	Release(ctx context.Context, loadID int64) (string, error)
	Refund(ctx context.Context, loadID int64) (string, error)
}
