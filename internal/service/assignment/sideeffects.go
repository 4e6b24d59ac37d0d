package assignment

import (
	"context"
	"fmt"

	"loadboard/internal/domain"
	"loadboard/internal/logx"
)

// runPostCommit attempts the non-critical side effects of a fresh
// assignment: escrow hold, fee reservation, tracking enablement and party
// notifications. Each is independently fault-tolerant; a failure is
// recorded as a warning and never unwinds the committed assignment.
func (c *Coordinator) runPostCommit(ctx context.Context, load *domain.Load, truck *domain.Truck) []string {
	var warnings []string

	if hold := c.escrow.Hold(ctx, load); !hold.Success {
		warnings = append(warnings, c.sideEffectWarning(ctx, load.ID, "escrow", hold.Err))
	}
	if fee := c.escrow.ReserveFee(ctx, load); !fee.Success {
		warnings = append(warnings, c.sideEffectWarning(ctx, load.ID, "fee", fee.Err))
	}

	warnings = append(warnings, c.enableTracking(ctx, load, truck)...)

	for _, target := range []struct {
		recipient int64
		kind      string
	}{
		{load.ShipperID, "load_assigned"},
		{truck.CarrierID, "truck_committed"},
	} {
		if err := c.notify.Notify(ctx, target.recipient, target.kind, map[string]any{
			"load_id":  load.ID,
			"truck_id": truck.ID,
		}); err != nil {
			warnings = append(warnings, c.sideEffectWarning(ctx, load.ID, "notification", err.Error()))
		}
	}
	return warnings
}

// enableTracking is guarded by the TRACKING_ENABLED marker, so a retried
// assignment response does not enable tracking twice.
func (c *Coordinator) enableTracking(ctx context.Context, load *domain.Load, truck *domain.Truck) []string {
	done, err := c.repo.HasEvent(ctx, load.ID, domain.EventTrackingOn)
	if err != nil {
		return []string{c.sideEffectWarning(ctx, load.ID, "tracking", err.Error())}
	}
	if done {
		return nil
	}

	url, err := c.tracking.Enable(ctx, load.ID, truck.ID)
	if err != nil {
		return []string{c.sideEffectWarning(ctx, load.ID, "tracking", err.Error())}
	}
	if err := c.repo.UpdateTripTracking(ctx, load.ID, url); err != nil {
		return []string{c.sideEffectWarning(ctx, load.ID, "tracking", err.Error())}
	}
	if err := c.repo.InsertEvent(ctx, &domain.LoadEvent{
		LoadID:  load.ID,
		Type:    domain.EventTrackingOn,
		Payload: domain.EventPayload{TruckID: truck.ID, Success: true},
	}); err != nil {
		c.logger.Warn("tracking marker write failed", logx.Int64("load_id", load.ID), logx.Err(err))
	}
	return nil
}

// sideEffectWarning logs, counts and records the failure for manual
// remediation, returning the user-visible warning string.
func (c *Coordinator) sideEffectWarning(ctx context.Context, loadID int64, kind, detail string) string {
	if c.sideEffectErrors != nil {
		c.sideEffectErrors.Inc(kind)
	}
	c.logger.Warn("post-commit side effect failed",
		logx.Int64("load_id", loadID),
		logx.String("kind", kind),
		logx.String("detail", detail),
	)
	if err := c.repo.InsertEvent(ctx, &domain.LoadEvent{
		LoadID:  loadID,
		Type:    domain.EventSideEffectWarn,
		Payload: domain.EventPayload{Error: detail, Notes: map[string]any{"kind": kind}},
	}); err != nil {
		c.logger.Warn("warning event write failed", logx.Int64("load_id", loadID), logx.Err(err))
	}
	return fmt.Sprintf("%s: %s", kind, detail)
}
