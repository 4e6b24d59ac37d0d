//go:generate mockgen -source=contracts.go -destination=assignment_mocks_test.go -package=assignment

package assignment

import (
	"context"

	"loadboard/internal/domain"
	"loadboard/internal/ports/assigntx"
)

type assignRepository interface {
	WithTx(ctx context.Context, fn func(tx assigntx.Repository) error) error
	GetLoad(ctx context.Context, loadID int64) (*domain.Load, error)
	UpdateTripTracking(ctx context.Context, loadID int64, url string) error
	HasEvent(ctx context.Context, loadID int64, t domain.EventType) (bool, error)
	InsertEvent(ctx context.Context, ev *domain.LoadEvent) error
}

type escrowManager interface {
	Hold(ctx context.Context, load *domain.Load) domain.HoldResult
	Refund(ctx context.Context, loadID int64) domain.RefundResult
	ReserveFee(ctx context.Context, load *domain.Load) domain.HoldResult
}

type tracker interface {
	Enable(ctx context.Context, loadID, truckID int64) (string, error)
}

type notifier interface {
	Notify(ctx context.Context, recipientID int64, kind string, payload map[string]any) error
}

type invalidator interface {
	Invalidate(ctx context.Context, loadID, truckID int64, orgIDs ...int64)
}

type counter interface {
	Inc()
}

type labeledCounter interface {
	Inc(kind string)
}
