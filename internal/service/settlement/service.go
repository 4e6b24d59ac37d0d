package settlement

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"loadboard/internal/apperr"
	"loadboard/internal/domain"
	"loadboard/internal/identity"
	"loadboard/internal/logx"
	"loadboard/internal/ports/assigntx"
)

// Service automates the financial close of delivered loads. A periodic
// sweep auto-verifies proof of delivery after the grace window and settles
// every verified, still-pending load; the manual path lets the shipper or
// an admin settle one load explicitly.
type Service struct {
	repo        settlementRepository
	escrow      escrowManager
	logger      logx.Logger
	graceWindow time.Duration
	now         func() time.Time
	sweeps      labeledCounter
}

// NewService creates a new settlement Service.
func NewService(repo settlementRepository, escrow escrowManager, graceWindow time.Duration, logger logx.Logger, sweeps labeledCounter) *Service {
	if graceWindow <= 0 {
		graceWindow = 48 * time.Hour
	}
	return &Service{
		repo:        repo,
		escrow:      escrow,
		logger:      logger,
		graceWindow: graceWindow,
		now:         func() time.Time { return time.Now().UTC() },
		sweeps:      sweeps,
	}
}

// SweepResult summarizes one sweep pass.
type SweepResult struct {
	PodVerified int
	Settled     int
	Failed      int
}

// Sweep runs one settlement pass: verify overdue PODs, then settle every
// ready load. Failures on individual loads are counted and logged, never
// fatal to the pass.
func (s *Service) Sweep(ctx context.Context) (SweepResult, error) {
	var res SweepResult

	cutoff := s.now().Add(-s.graceWindow)
	verified, err := s.repo.AutoVerifyPOD(ctx, cutoff)
	if err != nil {
		return res, fmt.Errorf("auto verify pod: %w", err)
	}
	res.PodVerified = len(verified)
	for range verified {
		s.count("pod_verified")
	}

	ready, err := s.repo.ListSettleReady(ctx)
	if err != nil {
		return res, fmt.Errorf("list settle ready: %w", err)
	}
	for _, loadID := range ready {
		if err := s.settleOne(ctx, loadID); err != nil {
			res.Failed++
			s.count("failed")
			s.logger.Warn("settlement failed",
				logx.Int64("load_id", loadID),
				logx.Err(err),
			)
			continue
		}
		res.Settled++
		s.count("settled")
	}

	if res.PodVerified > 0 || res.Settled > 0 || res.Failed > 0 {
		s.logger.Info("settlement sweep finished",
			logx.Int("pod_verified", res.PodVerified),
			logx.Int("settled", res.Settled),
			logx.Int("failed", res.Failed),
		)
	}
	return res, nil
}

// Approve settles a single load on request. The caller must own the load
// (shipper organization) or carry the admin override, and the load must be
// DELIVERED with its proof of delivery verified.
func (s *Service) Approve(ctx context.Context, loadID int64, actor identity.Actor) error {
	if loadID <= 0 {
		return fmt.Errorf("%w: load id is required", apperr.ErrInvalid)
	}

	err := s.repo.WithTx(ctx, func(tx assigntx.SettlementTx) error {
		load, err := tx.GetLoadForUpdate(ctx, loadID)
		if err != nil {
			return err
		}
		if load == nil {
			return fmt.Errorf("%w: load %d", apperr.ErrNotFound, loadID)
		}
		if !actor.Role.Admin() && !(actor.Role == domain.RoleShipper && actor.OrgID == load.ShipperOrgID) {
			return fmt.Errorf("%w: only the load's shipper may settle it", apperr.ErrForbidden)
		}
		return s.settleLocked(ctx, tx, load)
	})
	if err != nil {
		return err
	}

	s.release(ctx, loadID)
	return nil
}

// settleOne re-reads and settles a single ready load in its own
// transaction, so one stuck load cannot poison the batch.
func (s *Service) settleOne(ctx context.Context, loadID int64) error {
	err := s.repo.WithTx(ctx, func(tx assigntx.SettlementTx) error {
		load, err := tx.GetLoadForUpdate(ctx, loadID)
		if err != nil {
			return err
		}
		if load == nil {
			return fmt.Errorf("%w: load %d", apperr.ErrNotFound, loadID)
		}
		return s.settleLocked(ctx, tx, load)
	})
	if err != nil {
		return err
	}

	s.release(ctx, loadID)
	return nil
}

// settleLocked performs the settlement writes against a load already held
// under a row lock. The conditions are re-checked here; the listing that
// produced the candidate is stale by definition.
func (s *Service) settleLocked(ctx context.Context, tx assigntx.SettlementTx, load *domain.Load) error {
	if load.Status != domain.LoadDelivered {
		return fmt.Errorf("%w: load %d is %s, settlement requires DELIVERED", apperr.ErrInvalidState, load.ID, load.Status)
	}
	if !load.PodVerified {
		return fmt.Errorf("%w: load %d has no verified proof of delivery", apperr.ErrInvalidState, load.ID)
	}
	if load.SettlementStatus != domain.SettlementPending {
		return fmt.Errorf("%w: load %d settlement is %s", apperr.ErrInvalidState, load.ID, load.SettlementStatus)
	}

	done, err := tx.HasEvent(ctx, load.ID, domain.EventSettled)
	if err != nil {
		return err
	}
	if done {
		return nil
	}

	at := s.now()
	if err := tx.MarkSettled(ctx, load.ID, at); err != nil {
		return err
	}
	if err := tx.UpdateLoadStatus(ctx, load.ID, domain.LoadCompleted); err != nil {
		return err
	}
	if err := tx.InsertEvent(ctx, &domain.LoadEvent{
		LoadID:  load.ID,
		Type:    domain.EventSettled,
		Payload: domain.EventPayload{AmountMinor: load.PriceMinor, Success: true},
	}); err != nil {
		return err
	}

	raw, err := json.Marshal(map[string]any{"amount_minor": load.PriceMinor, "settled_at": at})
	if err != nil {
		return fmt.Errorf("marshal outbox payload: %w", err)
	}
	return tx.AppendOutbox(ctx, load.ID, "load.settled", raw)
}

// release pays the held funds out after the settlement committed. A wallet
// hiccup here is recoverable: the hold row stays HELD and remediation can
// replay the payout.
func (s *Service) release(ctx context.Context, loadID int64) {
	if out := s.escrow.Release(ctx, loadID); !out.Success {
		s.logger.Warn("escrow payout pending after settlement", logx.Int64("load_id", loadID))
	}
}

func (s *Service) count(kind string) {
	if s.sweeps != nil {
		s.sweeps.Inc(kind)
	}
}
