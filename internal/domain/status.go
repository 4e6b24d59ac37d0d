package domain

type (
	// LoadStatus represents the lifecycle status of a load.
	LoadStatus string
	// TripStatus represents the status of a trip.
	TripStatus string
	// OfferStatus represents the resolution status of an offer.
	OfferStatus string
	// PostingStatus represents the status of a truck availability posting.
	PostingStatus string
	// SettlementStatus represents the financial settlement state of a load.
	SettlementStatus string
)

// List of possible load statuses
const (
	LoadDraft         LoadStatus = "DRAFT"
	LoadPosted        LoadStatus = "POSTED"
	LoadSearching     LoadStatus = "SEARCHING"
	LoadOffered       LoadStatus = "OFFERED"
	LoadAssigned      LoadStatus = "ASSIGNED"
	LoadUnposted      LoadStatus = "UNPOSTED"
	LoadExpired       LoadStatus = "EXPIRED"
	LoadPickupPending LoadStatus = "PICKUP_PENDING"
	LoadInTransit     LoadStatus = "IN_TRANSIT"
	LoadDelivered     LoadStatus = "DELIVERED"
	LoadCompleted     LoadStatus = "COMPLETED"
	LoadException     LoadStatus = "EXCEPTION"
	LoadCancelled     LoadStatus = "CANCELLED"
)

// List of possible trip statuses
const (
	TripAssigned      TripStatus = "ASSIGNED"
	TripPickupPending TripStatus = "PICKUP_PENDING"
	TripInTransit     TripStatus = "IN_TRANSIT"
	TripDelivered     TripStatus = "DELIVERED"
	TripCompleted     TripStatus = "COMPLETED"
	TripCancelled     TripStatus = "CANCELLED"
)

// List of possible offer statuses
const (
	OfferPending   OfferStatus = "PENDING"
	OfferApproved  OfferStatus = "APPROVED"
	OfferRejected  OfferStatus = "REJECTED"
	OfferCancelled OfferStatus = "CANCELLED"
	OfferExpired   OfferStatus = "EXPIRED"
)

// List of possible posting statuses
const (
	PostingActive    PostingStatus = "ACTIVE"
	PostingMatched   PostingStatus = "MATCHED"
	PostingCancelled PostingStatus = "CANCELLED"
	PostingExpired   PostingStatus = "EXPIRED"
)

// List of possible settlement statuses
const (
	SettlementPending SettlementStatus = "PENDING"
	SettlementPaid    SettlementStatus = "PAID"
)

var allowedLoadStatuses = [...]LoadStatus{
	LoadDraft, LoadPosted, LoadSearching, LoadOffered, LoadAssigned,
	LoadUnposted, LoadExpired, LoadPickupPending, LoadInTransit,
	LoadDelivered, LoadCompleted, LoadException, LoadCancelled,
}

var allowedOfferStatuses = [...]OfferStatus{
	OfferPending, OfferApproved, OfferRejected, OfferCancelled, OfferExpired,
}

// Valid checks if the LoadStatus is valid
func (s LoadStatus) Valid() bool {
	for _, v := range allowedLoadStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Terminal reports whether the status releases the assigned truck.
// A truck bound only to a terminal load is free to take new work.
func (s LoadStatus) Terminal() bool {
	switch s {
	case LoadDelivered, LoadCompleted, LoadCancelled, LoadExpired:
		return true
	}
	return false
}

// Assignable reports whether a truck may be committed to a load in this status.
func (s LoadStatus) Assignable() bool {
	switch s {
	case LoadPosted, LoadSearching, LoadOffered:
		return true
	}
	return false
}

// Valid checks if the OfferStatus is valid
func (s OfferStatus) Valid() bool {
	for _, v := range allowedOfferStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Resolved reports whether the offer can no longer be acted on.
func (s OfferStatus) Resolved() bool {
	return s != OfferPending
}
