package domain

import "time"

// TruckType represents the equipment class of a truck or a load's requirement.
type TruckType string

// List of possible truck types
const (
	TruckFlatbed      TruckType = "flatbed"
	TruckDryVan       TruckType = "dry_van"
	TruckContainer    TruckType = "container"
	TruckTautliner    TruckType = "tautliner"
	TruckRefrigerated TruckType = "refrigerated"
	TruckReefer       TruckType = "reefer"
)

// Load represents a shippable unit posted by a shipper.
type Load struct {
	ID              int64
	ShipperID       int64
	ShipperOrgID    int64
	Status          LoadStatus
	AssignedTruckID *int64

	PickupCity   string
	DeliveryCity string
	TruckType    TruckType
	WeightKg     float64
	PriceMinor   int64

	PodVerified      bool
	SettlementStatus SettlementStatus
	DeliveredAt      *time.Time
	SettledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Truck is owned by a carrier organization.
type Truck struct {
	ID           int64
	CarrierID    int64
	CarrierOrgID int64
	Type         TruckType
	MaxWeightKg  float64
	CurrentCity  string
	IsAvailable  bool
}

// TruckPosting is a carrier's availability advertisement.
// At most one ACTIVE posting per truck; that rule is enforced upstream.
type TruckPosting struct {
	ID              int64
	TruckID         int64
	Status          PostingStatus
	OriginCity      string
	DestinationCity string
	AvailableFrom   time.Time
	AvailableUntil  time.Time
	CapacityKg      float64
}

// AssignResult represents the outcome of committing a truck to a load.
type AssignResult struct {
	LoadID          int64
	TruckID         int64
	TripID          int64
	CancelledOffers int
	Warnings        []string
}

// UnassignResult represents the outcome of releasing a truck from a load.
type UnassignResult struct {
	LoadID   int64
	TruckID  int64
	Status   LoadStatus
	Refunded bool
}
