package offers

import (
	"context"
	"fmt"
	"time"

	"loadboard/internal/apperr"
	"loadboard/internal/domain"
	"loadboard/internal/identity"
	"loadboard/internal/logx"
	"loadboard/internal/ports/assigntx"
	"loadboard/internal/service/assignment"
)

// Service manages the offer lifecycle: creation, resolution and expiry.
// Offers expire lazily; no scheduler touches them. An expired offer is
// detected and marked the first time someone acts on it or lists it.
type Service struct {
	repo             offerRepository
	coord            assignCoordinator
	logger           logx.Logger
	defaultTTL       time.Duration
	operationTimeout time.Duration
	now              func() time.Time
}

// NewService creates a new offer Service.
func NewService(repo offerRepository, coord assignCoordinator, defaultTTL, timeout time.Duration, logger logx.Logger) *Service {
	if defaultTTL <= 0 {
		defaultTTL = 24 * time.Hour
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Service{
		repo:             repo,
		coord:            coord,
		logger:           logger,
		defaultTTL:       defaultTTL,
		operationTimeout: timeout,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

// CreateCommand describes a new offer. A zero TTL falls back to the
// service default.
type CreateCommand struct {
	Kind    domain.OfferKind
	LoadID  int64
	TruckID int64
	Actor   identity.Actor
	TTL     time.Duration
}

// Create validates the parties and persists a PENDING offer.
func (s *Service) Create(ctx context.Context, cmd CreateCommand) (*domain.Offer, error) {
	if cmd.LoadID <= 0 || cmd.TruckID <= 0 {
		return nil, fmt.Errorf("%w: load and truck ids are required", apperr.ErrInvalid)
	}
	switch cmd.Kind {
	case domain.KindLoadRequest, domain.KindTruckRequest, domain.KindMatchProposal:
	default:
		return nil, fmt.Errorf("%w: unknown offer kind %q", apperr.ErrInvalid, cmd.Kind)
	}

	ctx, cancel := context.WithTimeout(ctx, s.operationTimeout)
	defer cancel()

	load, err := s.repo.GetLoad(ctx, cmd.LoadID)
	if err != nil {
		return nil, err
	}
	if load == nil {
		return nil, fmt.Errorf("%w: load %d", apperr.ErrNotFound, cmd.LoadID)
	}
	if !load.Status.Assignable() {
		return nil, fmt.Errorf("%w: load %d is %s, not open for offers", apperr.ErrInvalidState, load.ID, load.Status)
	}

	truck, err := s.repo.GetTruck(ctx, cmd.TruckID)
	if err != nil {
		return nil, err
	}
	if truck == nil {
		return nil, fmt.Errorf("%w: truck %d", apperr.ErrNotFound, cmd.TruckID)
	}
	if !truck.IsAvailable {
		return nil, fmt.Errorf("%w: truck %d is not available", apperr.ErrInvalidState, truck.ID)
	}

	if err := s.createAuthority(cmd, load, truck); err != nil {
		return nil, err
	}

	ttl := cmd.TTL
	if ttl <= 0 {
		ttl = s.defaultTTL
	}
	offer := &domain.Offer{
		Kind:      cmd.Kind,
		LoadID:    cmd.LoadID,
		TruckID:   cmd.TruckID,
		Status:    domain.OfferPending,
		CreatedBy: cmd.Actor.UserID,
		ExpiresAt: s.now().Add(ttl),
	}
	if err := s.repo.InsertOffer(ctx, offer); err != nil {
		return nil, err
	}

	s.logger.Info("offer created",
		logx.Int64("offer_id", offer.ID),
		logx.String("kind", string(offer.Kind)),
		logx.Int64("load_id", offer.LoadID),
		logx.Int64("truck_id", offer.TruckID),
	)
	return offer, nil
}

// createAuthority enforces who may open each offer kind: carriers request
// loads for their own trucks, shippers request trucks for their own loads,
// dispatchers propose matches.
func (s *Service) createAuthority(cmd CreateCommand, load *domain.Load, truck *domain.Truck) error {
	if cmd.Actor.Role.Admin() {
		return nil
	}
	switch cmd.Kind {
	case domain.KindLoadRequest:
		if cmd.Actor.Role == domain.RoleCarrier && cmd.Actor.OrgID == truck.CarrierOrgID {
			return nil
		}
		return fmt.Errorf("%w: a load request must come from the truck's carrier", apperr.ErrForbidden)
	case domain.KindTruckRequest:
		if !cmd.Actor.CanRequestTruck(truck.CarrierOrgID) {
			return fmt.Errorf("%w: actor may not request this truck", apperr.ErrForbidden)
		}
		if cmd.Actor.Role == domain.RoleShipper && cmd.Actor.OrgID != load.ShipperOrgID {
			return fmt.Errorf("%w: a truck request must come from the load's shipper", apperr.ErrForbidden)
		}
		return nil
	default: // match proposal
		if !cmd.Actor.CanPropose() {
			return fmt.Errorf("%w: only dispatchers may propose matches", apperr.ErrForbidden)
		}
		return nil
	}
}

// ResolveCommand acts on an existing offer.
type ResolveCommand struct {
	OfferID int64
	Actor   identity.Actor
}

// Approve resolves a PENDING offer into an assignment. The offer check,
// the expiry check and the assignment protocol share one transaction, so a
// successful approval and its assignment commit or roll back together.
// Re-approving an APPROVED offer is an idempotent no-op.
func (s *Service) Approve(ctx context.Context, cmd ResolveCommand) (domain.ResolveResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.operationTimeout)
	defer cancel()

	var (
		res     domain.ResolveResult
		pending *assignment.PendingAssign
		expired bool
	)
	err := s.repo.WithTx(ctx, func(tx assigntx.Repository) error {
		offer, err := s.lockPending(ctx, tx, cmd.OfferID, domain.OfferApproved, &res, &expired)
		if err != nil || offer == nil {
			return err
		}

		if err := s.resolveAuthority(ctx, tx, cmd.Actor, offer); err != nil {
			return err
		}

		pending, err = s.coord.CommitAssign(ctx, tx, assignment.AssignCommand{
			LoadID:  offer.LoadID,
			TruckID: offer.TruckID,
			Actor:   cmd.Actor,
			OfferID: offer.ID,
			// Ownership was already established per offer kind above.
			Authorize: func(*domain.Truck) error { return nil },
		})
		if err != nil {
			return err
		}

		if err := tx.UpdateOfferStatus(ctx, offer.ID, domain.OfferApproved); err != nil {
			return err
		}
		if err := tx.InsertEvent(ctx, &domain.LoadEvent{
			LoadID:  offer.LoadID,
			Type:    domain.EventOfferApproved,
			ActorID: cmd.Actor.UserID,
			Payload: domain.EventPayload{OfferID: offer.ID, OfferKind: offer.Kind},
		}); err != nil {
			return err
		}

		offer.Status = domain.OfferApproved
		res = domain.ResolveResult{Offer: *offer}
		return nil
	})
	if err != nil {
		return domain.ResolveResult{}, err
	}
	if expired {
		return res, fmt.Errorf("%w: offer %d expired", apperr.ErrInvalidState, res.Offer.ID)
	}
	if res.AlreadyResolved {
		return res, nil
	}

	result := s.coord.FinalizeAssign(ctx, pending)
	res.Assignment = &result
	s.logger.Info("offer approved",
		logx.Int64("offer_id", res.Offer.ID),
		logx.Int64("load_id", result.LoadID),
		logx.Int64("truck_id", result.TruckID),
	)
	return res, nil
}

// Reject resolves a PENDING offer to REJECTED. Re-rejecting is an
// idempotent no-op; rejecting an offer in any other resolved state is an
// error naming that state.
func (s *Service) Reject(ctx context.Context, cmd ResolveCommand) (domain.ResolveResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.operationTimeout)
	defer cancel()

	var (
		res     domain.ResolveResult
		expired bool
	)
	err := s.repo.WithTx(ctx, func(tx assigntx.Repository) error {
		offer, err := s.lockPending(ctx, tx, cmd.OfferID, domain.OfferRejected, &res, &expired)
		if err != nil || offer == nil {
			return err
		}
		if err := s.resolveAuthority(ctx, tx, cmd.Actor, offer); err != nil {
			return err
		}
		if err := tx.UpdateOfferStatus(ctx, offer.ID, domain.OfferRejected); err != nil {
			return err
		}
		if err := tx.InsertEvent(ctx, &domain.LoadEvent{
			LoadID:  offer.LoadID,
			Type:    domain.EventOfferRejected,
			ActorID: cmd.Actor.UserID,
			Payload: domain.EventPayload{OfferID: offer.ID, OfferKind: offer.Kind},
		}); err != nil {
			return err
		}
		offer.Status = domain.OfferRejected
		res = domain.ResolveResult{Offer: *offer}
		return nil
	})
	if err != nil {
		return domain.ResolveResult{}, err
	}
	if expired {
		return res, fmt.Errorf("%w: offer %d expired", apperr.ErrInvalidState, res.Offer.ID)
	}
	return res, nil
}

// Cancel withdraws a PENDING offer. Only its creator or an admin may do so.
func (s *Service) Cancel(ctx context.Context, cmd ResolveCommand) (domain.ResolveResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.operationTimeout)
	defer cancel()

	var (
		res     domain.ResolveResult
		expired bool
	)
	err := s.repo.WithTx(ctx, func(tx assigntx.Repository) error {
		offer, err := s.lockPending(ctx, tx, cmd.OfferID, domain.OfferCancelled, &res, &expired)
		if err != nil || offer == nil {
			return err
		}
		if !cmd.Actor.Role.Admin() && offer.CreatedBy != cmd.Actor.UserID {
			return fmt.Errorf("%w: only the offer's creator may withdraw it", apperr.ErrForbidden)
		}
		if err := tx.UpdateOfferStatus(ctx, offer.ID, domain.OfferCancelled); err != nil {
			return err
		}
		offer.Status = domain.OfferCancelled
		res = domain.ResolveResult{Offer: *offer}
		return nil
	})
	if err != nil {
		return domain.ResolveResult{}, err
	}
	if expired {
		return res, fmt.Errorf("%w: offer %d expired", apperr.ErrInvalidState, res.Offer.ID)
	}
	return res, nil
}

// ListByLoad returns the offers of a load. Offers past their expiry that
// were never marked are presented as EXPIRED without a write; the marking
// happens on the next resolution attempt.
func (s *Service) ListByLoad(ctx context.Context, loadID int64) ([]domain.Offer, error) {
	if loadID <= 0 {
		return nil, fmt.Errorf("%w: load id is required", apperr.ErrInvalid)
	}
	out, err := s.repo.ListOffersByLoad(ctx, loadID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	for i := range out {
		if out[i].Status == domain.OfferPending && out[i].ExpiredAt(now) {
			out[i].Status = domain.OfferExpired
		}
	}
	return out, nil
}

// lockPending locks the offer and handles the shared resolution preamble.
// It returns a nil offer with a nil error when the caller has nothing left
// to do: the offer was already in the target state (idempotent no-op) or
// it just got lazily expired. The expiry write must survive, so it commits
// with the transaction and the invalid-state error is raised afterward.
func (s *Service) lockPending(
	ctx context.Context,
	tx assigntx.Repository,
	offerID int64,
	target domain.OfferStatus,
	res *domain.ResolveResult,
	expired *bool,
) (*domain.Offer, error) {
	offer, err := tx.GetOfferForUpdate(ctx, offerID)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, fmt.Errorf("%w: offer %d", apperr.ErrNotFound, offerID)
	}
	if offer.Status == target {
		*res = domain.ResolveResult{Offer: *offer, AlreadyResolved: true}
		return nil, nil
	}
	if offer.Status.Resolved() {
		return nil, fmt.Errorf("%w: offer %d is %s", apperr.ErrInvalidState, offer.ID, offer.Status)
	}
	if offer.ExpiredAt(s.now()) {
		if err := tx.UpdateOfferStatus(ctx, offer.ID, domain.OfferExpired); err != nil {
			return nil, err
		}
		if err := tx.InsertEvent(ctx, &domain.LoadEvent{
			LoadID:  offer.LoadID,
			Type:    domain.EventOfferExpired,
			Payload: domain.EventPayload{OfferID: offer.ID, OfferKind: offer.Kind},
		}); err != nil {
			return nil, err
		}
		offer.Status = domain.OfferExpired
		*res = domain.ResolveResult{Offer: *offer}
		*expired = true
		return nil, nil
	}
	return offer, nil
}

// resolveAuthority enforces who may approve or reject: the load's shipper
// for a load request, the truck's carrier for a truck request or a match
// proposal. Dispatchers propose, they never resolve.
func (s *Service) resolveAuthority(ctx context.Context, tx assigntx.Repository, actor identity.Actor, offer *domain.Offer) error {
	if actor.Role.Admin() {
		return nil
	}
	switch offer.Kind {
	case domain.KindLoadRequest:
		load, err := tx.GetLoadForUpdate(ctx, offer.LoadID)
		if err != nil {
			return err
		}
		if load == nil {
			return fmt.Errorf("%w: load %d", apperr.ErrNotFound, offer.LoadID)
		}
		if actor.Role == domain.RoleShipper && actor.OrgID == load.ShipperOrgID {
			return nil
		}
		return fmt.Errorf("%w: only the load's shipper may resolve this request", apperr.ErrForbidden)
	default:
		truck, err := tx.GetTruck(ctx, offer.TruckID)
		if err != nil {
			return err
		}
		if truck == nil {
			return fmt.Errorf("%w: truck %d", apperr.ErrNotFound, offer.TruckID)
		}
		if actor.CanApprove(truck.CarrierOrgID) {
			return nil
		}
		return fmt.Errorf("%w: only the truck's carrier may resolve this offer", apperr.ErrForbidden)
	}
}
