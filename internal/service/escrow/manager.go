package escrow

import (
	"context"
	"fmt"

	"loadboard/internal/domain"
	"loadboard/internal/logx"
)

// feeRateBps is the platform fee in basis points of the load price.
const feeRateBps = 500

// Manager applies 1:1-per-load financial holds after an assignment commits.
// Every operation is idempotent per load via marker events: an existing
// success marker means the work is already done and the call is a no-op.
type Manager struct {
	wallet wallet
	repo   escrowRepository
	events eventLedger
	logger logx.Logger
}

// NewManager creates a new escrow Manager.
func NewManager(w wallet, repo escrowRepository, events eventLedger, logger logx.Logger) *Manager {
	return &Manager{wallet: w, repo: repo, events: events, logger: logger}
}

// Hold reserves the load price from the shipper's wallet. A failure is
// surfaced in the result, never as an error that could unwind the caller.
func (m *Manager) Hold(ctx context.Context, load *domain.Load) domain.HoldResult {
	done, err := m.events.HasEvent(ctx, load.ID, domain.EventEscrowFunded)
	if err != nil {
		return domain.HoldResult{Err: fmt.Sprintf("check escrow marker: %v", err)}
	}
	if done {
		return domain.HoldResult{Success: true, AmountMinor: load.PriceMinor}
	}

	txID, err := m.wallet.Hold(ctx, load.ID, load.PriceMinor)
	if err != nil {
		m.logger.Warn("escrow hold failed",
			logx.Int64("load_id", load.ID),
			logx.Err(err),
		)
		return domain.HoldResult{Err: err.Error()}
	}

	if err := m.repo.InsertHold(ctx, load.ID, load.PriceMinor, txID); err != nil {
		return domain.HoldResult{Err: fmt.Sprintf("record escrow hold: %v", err)}
	}
	m.mark(ctx, load.ID, domain.EventEscrowFunded, domain.EventPayload{
		Success:       true,
		AmountMinor:   load.PriceMinor,
		TransactionID: txID,
	})
	return domain.HoldResult{Success: true, AmountMinor: load.PriceMinor, TransactionID: txID}
}

// Refund returns held funds to the shipper during unassignment.
func (m *Manager) Refund(ctx context.Context, loadID int64) domain.RefundResult {
	amount, err := m.repo.GetHeldAmount(ctx, loadID)
	if err != nil || amount == 0 {
		if err != nil {
			m.logger.Warn("escrow refund lookup failed", logx.Int64("load_id", loadID), logx.Err(err))
		}
		return domain.RefundResult{}
	}

	txID, err := m.wallet.Refund(ctx, loadID)
	if err != nil {
		m.logger.Warn("escrow refund failed", logx.Int64("load_id", loadID), logx.Err(err))
		return domain.RefundResult{}
	}
	if _, err := m.repo.MarkHoldReleased(ctx, loadID, "REFUNDED"); err != nil {
		m.logger.Warn("escrow refund bookkeeping failed", logx.Int64("load_id", loadID), logx.Err(err))
	}
	m.mark(ctx, loadID, domain.EventEscrowRefunded, domain.EventPayload{
		Success:       true,
		AmountMinor:   amount,
		TransactionID: txID,
	})
	return domain.RefundResult{Success: true, AmountMinor: amount, TransactionID: txID}
}

// Release pays remaining held funds out to the carrier during settlement.
func (m *Manager) Release(ctx context.Context, loadID int64) domain.RefundResult {
	amount, err := m.repo.GetHeldAmount(ctx, loadID)
	if err != nil || amount == 0 {
		if err != nil {
			m.logger.Warn("escrow release lookup failed", logx.Int64("load_id", loadID), logx.Err(err))
		}
		return domain.RefundResult{}
	}

	txID, err := m.wallet.Release(ctx, loadID)
	if err != nil {
		m.logger.Warn("escrow release failed", logx.Int64("load_id", loadID), logx.Err(err))
		return domain.RefundResult{}
	}
	if _, err := m.repo.MarkHoldReleased(ctx, loadID, "RELEASED"); err != nil {
		m.logger.Warn("escrow release bookkeeping failed", logx.Int64("load_id", loadID), logx.Err(err))
	}
	return domain.RefundResult{Success: true, AmountMinor: amount, TransactionID: txID}
}

// ReserveFee reserves the platform service fee for the load.
func (m *Manager) ReserveFee(ctx context.Context, load *domain.Load) domain.HoldResult {
	done, err := m.events.HasEvent(ctx, load.ID, domain.EventFeeReserved)
	if err != nil {
		return domain.HoldResult{Err: fmt.Sprintf("check fee marker: %v", err)}
	}
	if done {
		return domain.HoldResult{Success: true}
	}

	fee := load.PriceMinor * feeRateBps / 10000
	txID, err := m.wallet.Hold(ctx, load.ID, fee)
	if err != nil {
		m.logger.Warn("fee reservation failed",
			logx.Int64("load_id", load.ID),
			logx.Err(err),
		)
		return domain.HoldResult{Err: err.Error()}
	}
	if err := m.repo.InsertFeeReservation(ctx, load.ID, fee, txID); err != nil {
		return domain.HoldResult{Err: fmt.Sprintf("record fee reservation: %v", err)}
	}
	m.mark(ctx, load.ID, domain.EventFeeReserved, domain.EventPayload{
		Success:       true,
		AmountMinor:   fee,
		TransactionID: txID,
	})
	return domain.HoldResult{Success: true, AmountMinor: fee, TransactionID: txID}
}

// mark writes the idempotency marker; losing it is tolerable, the next
// attempt re-checks against the ledger.
func (m *Manager) mark(ctx context.Context, loadID int64, t domain.EventType, p domain.EventPayload) {
	if err := m.events.InsertEvent(ctx, &domain.LoadEvent{LoadID: loadID, Type: t, Payload: p}); err != nil {
		m.logger.Warn("marker event write failed",
			logx.Int64("load_id", loadID),
			logx.String("event", string(t)),
			logx.Err(err),
		)
	}
}
