//go:generate mockgen -source=contracts.go -destination=offers_mocks_test.go -package=offers

package offers

import (
	"context"

	"loadboard/internal/domain"
	"loadboard/internal/ports/assigntx"
	"loadboard/internal/service/assignment"
)

type offerRepository interface {
	WithTx(ctx context.Context, fn func(tx assigntx.Repository) error) error
	GetLoad(ctx context.Context, loadID int64) (*domain.Load, error)
	GetTruck(ctx context.Context, truckID int64) (*domain.Truck, error)
	InsertOffer(ctx context.Context, o *domain.Offer) error
	ListOffersByLoad(ctx context.Context, loadID int64) ([]domain.Offer, error)
}

// assignCoordinator is the transactional assignment protocol an approval
// funnels into.
type assignCoordinator interface {
	CommitAssign(ctx context.Context, tx assigntx.Repository, cmd assignment.AssignCommand) (*assignment.PendingAssign, error)
	FinalizeAssign(ctx context.Context, p *assignment.PendingAssign) domain.AssignResult
}
