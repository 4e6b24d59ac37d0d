package domain

import "time"

// EventType identifies a load event kind.
type EventType string

// List of possible load event types. Types used as idempotency markers
// are unique per load; see the (load_id, event_type) marker constraint.
const (
	EventAssigned       EventType = "ASSIGNED"
	EventUnassigned     EventType = "UNASSIGNED"
	EventStatusChanged  EventType = "STATUS_CHANGED"
	EventEscrowFunded   EventType = "ESCROW_FUNDED"
	EventEscrowRefunded EventType = "ESCROW_REFUNDED"
	EventFeeReserved    EventType = "FEE_RESERVED"
	EventOfferApproved  EventType = "OFFER_APPROVED"
	EventOfferRejected  EventType = "OFFER_REJECTED"
	EventOfferExpired   EventType = "OFFER_EXPIRED"
	EventPodAutoVerify  EventType = "POD_AUTO_VERIFIED"
	EventSettled        EventType = "SETTLED"
	EventTrackingOn     EventType = "TRACKING_ENABLED"
	EventSideEffectWarn EventType = "SIDE_EFFECT_WARNING"
)

// Marker reports whether at most one event of this type may exist per load.
// Marker presence is the idempotency signal for the matching side effect.
func (t EventType) Marker() bool {
	switch t {
	case EventEscrowFunded, EventEscrowRefunded, EventFeeReserved,
		EventPodAutoVerify, EventSettled, EventTrackingOn:
		return true
	}
	return false
}

// LoadEvent is an append-only audit and idempotency ledger entry.
type LoadEvent struct {
	ID        int64
	LoadID    int64
	Type      EventType
	ActorID   int64
	Payload   EventPayload
	CreatedAt time.Time
}

// EventPayload carries the typed metadata of a load event. One struct per
// event kind; Notes is the only open-ended field.
type EventPayload struct {
	TruckID       int64            `json:"truck_id,omitempty"`
	TripID        int64            `json:"trip_id,omitempty"`
	FromStatus    LoadStatus       `json:"from_status,omitempty"`
	ToStatus      LoadStatus       `json:"to_status,omitempty"`
	OfferID       int64            `json:"offer_id,omitempty"`
	OfferKind     OfferKind        `json:"offer_kind,omitempty"`
	AmountMinor   int64            `json:"amount_minor,omitempty"`
	TransactionID string           `json:"transaction_id,omitempty"`
	Success       bool             `json:"success,omitempty"`
	Error         string           `json:"error,omitempty"`
	Notes         map[string]any   `json:"notes,omitempty"`
}

// HoldResult represents the outcome of an escrow hold or fee reservation.
type HoldResult struct {
	Success       bool
	AmountMinor   int64
	TransactionID string
	Err           string
}

// RefundResult represents the outcome of an escrow refund.
type RefundResult struct {
	Success       bool
	AmountMinor   int64
	TransactionID string
}
