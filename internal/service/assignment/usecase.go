package assignment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"loadboard/internal/apperr"
	"loadboard/internal/domain"
	"loadboard/internal/identity"
	"loadboard/internal/logx"
	"loadboard/internal/ports/assigntx"
)

// Coordinator converts an approved match into a durable commitment: load
// assigned, truck busy, competing offers cancelled, trip created. The
// commitment itself is atomic; everything after the commit is best-effort.
type Coordinator struct {
	repo             assignRepository
	escrow           escrowManager
	tracking         tracker
	notify           notifier
	cache            invalidator
	logger           logx.Logger
	operationTimeout time.Duration
	now              func() time.Time

	assignments      counter
	conflicts        counter
	sideEffectErrors labeledCounter
}

// Options carries the optional observability collaborators.
type Options struct {
	Assignments      counter
	Conflicts        counter
	SideEffectErrors labeledCounter
}

// NewCoordinator creates a new assignment Coordinator.
func NewCoordinator(
	repo assignRepository,
	escrow escrowManager,
	tracking tracker,
	notify notifier,
	cache invalidator,
	timeout time.Duration,
	logger logx.Logger,
	opts Options,
) *Coordinator {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Coordinator{
		repo:             repo,
		escrow:           escrow,
		tracking:         tracking,
		notify:           notify,
		cache:            cache,
		logger:           logger,
		operationTimeout: timeout,
		now:              func() time.Time { return time.Now().UTC() },
		assignments:      opts.Assignments,
		conflicts:        opts.Conflicts,
		sideEffectErrors: opts.SideEffectErrors,
	}
}

func (c *Coordinator) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.operationTimeout)
}

func (c *Coordinator) countConflict() {
	if c.conflicts != nil {
		c.conflicts.Inc()
	}
}

// AssignCommand is one assignment attempt. OfferID is non-zero when the
// attempt resolves an offer; that offer is spared from sibling cancellation.
// Authorize, when set, replaces the default carrier-ownership check; the
// offer resolution path supplies its own per-kind policy.
type AssignCommand struct {
	LoadID    int64
	TruckID   int64
	Actor     identity.Actor
	OfferID   int64
	Authorize func(truck *domain.Truck) error
}

// PendingAssign is a committed assignment whose post-commit work has not run
// yet. CommitAssign produces it inside a transaction; FinalizeAssign consumes
// it after the commit.
type PendingAssign struct {
	Load   *domain.Load
	Truck  *domain.Truck
	Result domain.AssignResult
}

// Assign executes the atomic assignment protocol. The load's status and
// assigned_truck_id are re-read under a row lock inside the transaction;
// values observed before it began are never trusted.
func (c *Coordinator) Assign(ctx context.Context, cmd AssignCommand) (domain.AssignResult, error) {
	if cmd.LoadID <= 0 || cmd.TruckID <= 0 {
		return domain.AssignResult{}, fmt.Errorf("%w: load and truck ids are required", apperr.ErrInvalid)
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	var pending *PendingAssign
	err := c.repo.WithTx(ctx, func(tx assigntx.Repository) error {
		var err error
		pending, err = c.CommitAssign(ctx, tx, cmd)
		return err
	})
	if err != nil {
		// Conflicts inside CommitAssign are counted there; a conflict with
		// pending set means the unique-index backstop fired at commit time.
		if errors.Is(err, apperr.ErrConflict) && pending != nil {
			c.countConflict()
		}
		return domain.AssignResult{}, err
	}

	return c.FinalizeAssign(ctx, pending), nil
}

// CommitAssign runs the transactional half of the protocol against an open
// transaction. Callers that embed it in a wider transaction (offer approval)
// must pass the returned PendingAssign to FinalizeAssign once the commit
// succeeds.
func (c *Coordinator) CommitAssign(ctx context.Context, tx assigntx.Repository, cmd AssignCommand) (*PendingAssign, error) {
	load, err := tx.GetLoadForUpdate(ctx, cmd.LoadID)
	if err != nil {
		return nil, err
	}
	if load == nil {
		return nil, fmt.Errorf("%w: load %d", apperr.ErrNotFound, cmd.LoadID)
	}
	if load.AssignedTruckID != nil {
		c.countConflict()
		return nil, fmt.Errorf("%w: load %d already assigned to truck %d", apperr.ErrConflict, load.ID, *load.AssignedTruckID)
	}
	if !load.Status.Assignable() {
		return nil, fmt.Errorf("%w: load %d is %s, not assignable", apperr.ErrInvalidState, load.ID, load.Status)
	}

	truck, err := tx.GetTruck(ctx, cmd.TruckID)
	if err != nil {
		return nil, err
	}
	if truck == nil {
		return nil, fmt.Errorf("%w: truck %d", apperr.ErrNotFound, cmd.TruckID)
	}
	if cmd.Authorize != nil {
		if err := cmd.Authorize(truck); err != nil {
			return nil, err
		}
	} else if !cmd.Actor.CanApprove(truck.CarrierOrgID) {
		return nil, fmt.Errorf("%w: only the truck's carrier organization may commit it", apperr.ErrForbidden)
	}

	// Heal orphaned bindings left on terminal loads before checking for
	// a live conflict.
	if cleared, err := tx.ClearStaleTruckBindings(ctx, truck.ID); err != nil {
		return nil, err
	} else if cleared > 0 {
		c.logger.Warn("cleared stale truck bindings",
			logx.Int64("truck_id", truck.ID),
			logx.Int64("count", cleared),
		)
	}

	active, err := tx.FindActiveLoadByTruck(ctx, truck.ID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		c.countConflict()
		return nil, fmt.Errorf("%w: truck %d is committed to load %d", apperr.ErrConflict, truck.ID, active.ID)
	}

	if err := tx.SetLoadAssignment(ctx, load.ID, truck.ID); err != nil {
		return nil, err
	}

	trip := &domain.Trip{
		LoadID:       load.ID,
		TruckID:      truck.ID,
		Status:       domain.TripAssigned,
		PickupCity:   load.PickupCity,
		DeliveryCity: load.DeliveryCity,
		AssignedAt:   c.now(),
	}
	if err := tx.InsertTrip(ctx, trip); err != nil {
		return nil, err
	}

	cancelled, err := tx.CancelPendingOffers(ctx, load.ID, cmd.OfferID)
	if err != nil {
		return nil, err
	}
	if err := tx.MarkPostingMatched(ctx, truck.ID); err != nil {
		return nil, err
	}
	if err := tx.SetTruckAvailability(ctx, truck.ID, false); err != nil {
		return nil, err
	}

	if err := tx.InsertEvent(ctx, &domain.LoadEvent{
		LoadID:  load.ID,
		Type:    domain.EventAssigned,
		ActorID: cmd.Actor.UserID,
		Payload: domain.EventPayload{
			TruckID: truck.ID,
			TripID:  trip.ID,
			OfferID: cmd.OfferID,
		},
	}); err != nil {
		return nil, err
	}
	if err := c.appendStreamIntent(ctx, tx, load.ID, "load.assigned", map[string]any{
		"truck_id": truck.ID,
		"trip_id":  trip.ID,
	}); err != nil {
		return nil, err
	}

	return &PendingAssign{
		Load:  load,
		Truck: truck,
		Result: domain.AssignResult{
			LoadID:          load.ID,
			TruckID:         truck.ID,
			TripID:          trip.ID,
			CancelledOffers: int(cancelled),
		},
	}, nil
}

// FinalizeAssign runs the best-effort work that follows a committed
// assignment: metrics, cache invalidation and the guarded side effects.
func (c *Coordinator) FinalizeAssign(ctx context.Context, p *PendingAssign) domain.AssignResult {
	if c.assignments != nil {
		c.assignments.Inc()
	}
	result := p.Result
	c.logger.Info("load assigned",
		logx.String("event", "load_assigned"),
		logx.Int64("load_id", result.LoadID),
		logx.Int64("truck_id", result.TruckID),
		logx.Int64("trip_id", result.TripID),
		logx.Int("cancelled_offers", result.CancelledOffers),
	)

	c.cache.Invalidate(ctx, result.LoadID, result.TruckID, p.Load.ShipperOrgID, p.Truck.CarrierOrgID)
	result.Warnings = c.runPostCommit(ctx, p.Load, p.Truck)
	return result
}

// UnassignCommand releases a truck from a load.
type UnassignCommand struct {
	LoadID int64
	Actor  identity.Actor
}

// Unassign reverses an assignment that has not progressed past
// PICKUP_PENDING, returning the load to SEARCHING. Held escrow funds are
// refunded best-effort after the commit.
func (c *Coordinator) Unassign(ctx context.Context, cmd UnassignCommand) (domain.UnassignResult, error) {
	if cmd.LoadID <= 0 {
		return domain.UnassignResult{}, fmt.Errorf("%w: load id is required", apperr.ErrInvalid)
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	var (
		result domain.UnassignResult
		load   *domain.Load
	)

	err := c.repo.WithTx(ctx, func(tx assigntx.Repository) error {
		var err error
		load, err = tx.GetLoadForUpdate(ctx, cmd.LoadID)
		if err != nil {
			return err
		}
		if load == nil {
			return fmt.Errorf("%w: load %d", apperr.ErrNotFound, cmd.LoadID)
		}
		if load.Status != domain.LoadAssigned && load.Status != domain.LoadPickupPending {
			return fmt.Errorf("%w: cannot unassign load %d in status %s", apperr.ErrInvalidState, load.ID, load.Status)
		}
		if load.AssignedTruckID == nil {
			return fmt.Errorf("%w: load %d has no assigned truck", apperr.ErrInvalidState, load.ID)
		}
		truckID := *load.AssignedTruckID

		truck, err := tx.GetTruck(ctx, truckID)
		if err != nil {
			return err
		}
		if truck == nil {
			return fmt.Errorf("%w: truck %d", apperr.ErrNotFound, truckID)
		}
		if !c.canUnassign(cmd.Actor, load, truck) {
			return fmt.Errorf("%w: actor may not unassign this load", apperr.ErrForbidden)
		}

		if err := tx.ClearLoadAssignment(ctx, load.ID, domain.LoadSearching); err != nil {
			return err
		}
		if err := tx.CancelTripByLoad(ctx, load.ID); err != nil {
			return err
		}
		if err := tx.SetTruckAvailability(ctx, truckID, true); err != nil {
			return err
		}
		if err := tx.ReactivatePosting(ctx, truckID); err != nil {
			return err
		}
		if err := tx.InsertEvent(ctx, &domain.LoadEvent{
			LoadID:  load.ID,
			Type:    domain.EventUnassigned,
			ActorID: cmd.Actor.UserID,
			Payload: domain.EventPayload{TruckID: truckID},
		}); err != nil {
			return err
		}
		if err := c.appendStreamIntent(ctx, tx, load.ID, "load.unassigned", map[string]any{
			"truck_id": truckID,
		}); err != nil {
			return err
		}

		result = domain.UnassignResult{
			LoadID:  load.ID,
			TruckID: truckID,
			Status:  domain.LoadSearching,
		}
		return nil
	})
	if err != nil {
		return domain.UnassignResult{}, err
	}

	refund := c.escrow.Refund(ctx, result.LoadID)
	result.Refunded = refund.Success

	c.cache.Invalidate(ctx, result.LoadID, result.TruckID, load.ShipperOrgID)
	c.logger.Info("load unassigned",
		logx.Int64("load_id", result.LoadID),
		logx.Int64("truck_id", result.TruckID),
		logx.Any("refunded", result.Refunded),
	)
	return result, nil
}

// ChangeStatusCommand drives a lifecycle transition outside the
// assign/unassign paths.
type ChangeStatusCommand struct {
	LoadID int64
	To     domain.LoadStatus
	Actor  identity.Actor
}

// ChangeStatus applies a state-machine transition. The edge check and the
// role check fail differently: a missing edge is an invalid-state error, a
// role restriction is forbidden.
func (c *Coordinator) ChangeStatus(ctx context.Context, cmd ChangeStatusCommand) (*domain.Load, error) {
	if cmd.LoadID <= 0 || !cmd.To.Valid() {
		return nil, fmt.Errorf("%w: load id and a valid target status are required", apperr.ErrInvalid)
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	var (
		load          *domain.Load
		releasedTruck int64
	)
	err := c.repo.WithTx(ctx, func(tx assigntx.Repository) error {
		var err error
		load, err = tx.GetLoadForUpdate(ctx, cmd.LoadID)
		if err != nil {
			return err
		}
		if load == nil {
			return fmt.Errorf("%w: load %d", apperr.ErrNotFound, cmd.LoadID)
		}

		res := domain.ValidateTransition(load.Status, cmd.To, cmd.Actor.Role)
		if !res.Valid {
			if res.RoleForbidden {
				return fmt.Errorf("%w: %s", apperr.ErrForbidden, res.Reason)
			}
			return fmt.Errorf("%w: %s", apperr.ErrInvalidState, res.Reason)
		}

		if cmd.To == domain.LoadCancelled && load.AssignedTruckID != nil {
			// Cancellation is terminal: the binding must not survive it.
			// Same release sequence as Unassign, keeping the target status.
			truckID := *load.AssignedTruckID
			if err := tx.ClearLoadAssignment(ctx, load.ID, cmd.To); err != nil {
				return err
			}
			if err := tx.SetTruckAvailability(ctx, truckID, true); err != nil {
				return err
			}
			if err := tx.ReactivatePosting(ctx, truckID); err != nil {
				return err
			}
			releasedTruck = truckID
		} else if err := tx.UpdateLoadStatus(ctx, load.ID, cmd.To); err != nil {
			return err
		}
		if tripStatus, ok := tripStatusFor(cmd.To); ok {
			if err := tx.UpdateTripStatusByLoad(ctx, load.ID, tripStatus); err != nil {
				return err
			}
		}
		if err := tx.InsertEvent(ctx, &domain.LoadEvent{
			LoadID:  load.ID,
			Type:    domain.EventStatusChanged,
			ActorID: cmd.Actor.UserID,
			Payload: domain.EventPayload{FromStatus: load.Status, ToStatus: cmd.To, TruckID: releasedTruck},
		}); err != nil {
			return err
		}

		load.Status = cmd.To
		return nil
	})
	if err != nil {
		return nil, err
	}

	truckID := int64(0)
	if load.AssignedTruckID != nil {
		truckID = *load.AssignedTruckID
	}
	if releasedTruck != 0 {
		load.AssignedTruckID = nil
		refund := c.escrow.Refund(ctx, load.ID)
		c.logger.Info("truck released on cancellation",
			logx.Int64("load_id", load.ID),
			logx.Int64("truck_id", releasedTruck),
			logx.Any("refunded", refund.Success),
		)
	}
	c.cache.Invalidate(ctx, load.ID, truckID, load.ShipperOrgID)
	return load, nil
}

// tripStatusFor maps the load statuses that mirror onto the trip.
func tripStatusFor(s domain.LoadStatus) (domain.TripStatus, bool) {
	switch s {
	case domain.LoadPickupPending:
		return domain.TripPickupPending, true
	case domain.LoadInTransit:
		return domain.TripInTransit, true
	case domain.LoadDelivered:
		return domain.TripDelivered, true
	case domain.LoadCompleted:
		return domain.TripCompleted, true
	case domain.LoadCancelled:
		return domain.TripCancelled, true
	}
	return "", false
}

func (c *Coordinator) canUnassign(actor identity.Actor, load *domain.Load, truck *domain.Truck) bool {
	if actor.Role.Admin() {
		return true
	}
	switch actor.Role {
	case domain.RoleShipper:
		return actor.OrgID == load.ShipperOrgID
	case domain.RoleCarrier:
		return actor.OrgID == truck.CarrierOrgID
	}
	return false
}

func (c *Coordinator) appendStreamIntent(ctx context.Context, tx assigntx.Repository, loadID int64, kind string, payload map[string]any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal outbox payload: %w", err)
	}
	return tx.AppendOutbox(ctx, loadID, kind, raw)
}
