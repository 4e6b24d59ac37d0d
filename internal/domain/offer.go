package domain

import "time"

// OfferKind discriminates the three directional offer flavors.
type OfferKind string

// List of possible offer kinds
const (
	// KindLoadRequest - a carrier requesting a specific load.
	KindLoadRequest OfferKind = "LOAD_REQUEST"
	// KindTruckRequest - a shipper requesting a specific truck.
	KindTruckRequest OfferKind = "TRUCK_REQUEST"
	// KindMatchProposal - a dispatcher-initiated suggestion.
	KindMatchProposal OfferKind = "MATCH_PROPOSAL"
)

// Offer is a directional, expiring proposal to assign a truck to a load.
// The owning party resolves it: the shipper for a load request, the
// truck-owning carrier for a truck request or a match proposal.
type Offer struct {
	ID        int64
	Kind      OfferKind
	LoadID    int64
	TruckID   int64
	Status    OfferStatus
	CreatedBy int64
	ExpiresAt time.Time
	CreatedAt time.Time
}

// ExpiredAt reports whether the offer is past its expiry at the given instant.
func (o Offer) ExpiredAt(now time.Time) bool {
	return !o.ExpiresAt.IsZero() && o.ExpiresAt.Before(now)
}

// ResolveResult represents the outcome of resolving an offer.
type ResolveResult struct {
	Offer           Offer
	AlreadyResolved bool
	Assignment      *AssignResult
}
