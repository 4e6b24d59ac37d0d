package assigntx

import (
	"context"
	"time"

	"loadboard/internal/domain"
)

// Repository is the set of persistence operations available inside an
// assignment transaction. Reads marked ForUpdate take row locks; callers
// must treat any value read before the transaction began as stale.
type Repository interface {
	GetLoadForUpdate(ctx context.Context, loadID int64) (*domain.Load, error)
	GetTruck(ctx context.Context, truckID int64) (*domain.Truck, error)

	// FindActiveLoadByTruck returns the non-terminal load currently bound to
	// the truck, or nil when the truck is free.
	FindActiveLoadByTruck(ctx context.Context, truckID int64) (*domain.Load, error)

	// ClearStaleTruckBindings detaches the truck from loads already in a
	// terminal status, healing orphaned assignments before a new commit.
	ClearStaleTruckBindings(ctx context.Context, truckID int64) (int64, error)

	SetLoadAssignment(ctx context.Context, loadID, truckID int64) error
	ClearLoadAssignment(ctx context.Context, loadID int64, to domain.LoadStatus) error
	UpdateLoadStatus(ctx context.Context, loadID int64, status domain.LoadStatus) error

	InsertTrip(ctx context.Context, t *domain.Trip) error
	CancelTripByLoad(ctx context.Context, loadID int64) error
	UpdateTripStatusByLoad(ctx context.Context, loadID int64, status domain.TripStatus) error

	GetOfferForUpdate(ctx context.Context, offerID int64) (*domain.Offer, error)
	UpdateOfferStatus(ctx context.Context, offerID int64, status domain.OfferStatus) error

	// CancelPendingOffers cancels every PENDING offer referencing the load
	// except the one being resolved; pass 0 to cancel all of them.
	CancelPendingOffers(ctx context.Context, loadID, exceptOfferID int64) (int64, error)

	MarkPostingMatched(ctx context.Context, truckID int64) error
	ReactivatePosting(ctx context.Context, truckID int64) error
	SetTruckAvailability(ctx context.Context, truckID int64, available bool) error

	InsertEvent(ctx context.Context, ev *domain.LoadEvent) error
	HasEvent(ctx context.Context, loadID int64, t domain.EventType) (bool, error)

	AppendOutbox(ctx context.Context, loadID int64, kind string, payload []byte) error
}

// SettlementTx is the transactional view used by the settlement sweep.
type SettlementTx interface {
	GetLoadForUpdate(ctx context.Context, loadID int64) (*domain.Load, error)
	MarkSettled(ctx context.Context, loadID int64, at time.Time) error
	UpdateLoadStatus(ctx context.Context, loadID int64, status domain.LoadStatus) error
	InsertEvent(ctx context.Context, ev *domain.LoadEvent) error
	HasEvent(ctx context.Context, loadID int64, t domain.EventType) (bool, error)
	AppendOutbox(ctx context.Context, loadID int64, kind string, payload []byte) error
}

// Runner is a transaction runner.
type Runner interface {
	WithTx(ctx context.Context, fn func(tx Repository) error) error
}
