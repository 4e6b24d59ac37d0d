//go:generate mockgen -source=contracts.go -destination=settlement_mocks_test.go -package=settlement

package settlement

import (
	"context"
	"time"

	"loadboard/internal/domain"
	"loadboard/internal/ports/assigntx"
)

type settlementRepository interface {
	AutoVerifyPOD(ctx context.Context, cutoff time.Time) ([]int64, error)
	ListSettleReady(ctx context.Context) ([]int64, error)
	WithTx(ctx context.Context, fn func(tx assigntx.SettlementTx) error) error
}

type escrowManager interface {
	Release(ctx context.Context, loadID int64) domain.RefundResult
}

type labeledCounter interface {
	Inc(kind string)
}
