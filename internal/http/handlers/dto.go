package handlers

import "time"

type assignRequest struct {
	TruckID int64 `json:"truck_id"`
	OfferID int64 `json:"offer_id,omitempty"`
}

type statusRequest struct {
	Status string `json:"status"`
}

type createOfferRequest struct {
	Kind     string `json:"kind"`
	LoadID   int64  `json:"load_id"`
	TruckID  int64  `json:"truck_id"`
	TTLHours int    `json:"ttl_hours,omitempty"`
}

type assignResultDTO struct {
	LoadID          int64    `json:"load_id"`
	TruckID         int64    `json:"truck_id"`
	TripID          int64    `json:"trip_id"`
	CancelledOffers int      `json:"cancelled_offers"`
	Warnings        []string `json:"warnings,omitempty"`
}

type unassignResultDTO struct {
	LoadID   int64  `json:"load_id"`
	TruckID  int64  `json:"truck_id"`
	Status   string `json:"status"`
	Refunded bool   `json:"refunded"`
}

type loadDTO struct {
	ID               int64  `json:"id"`
	Status           string `json:"status"`
	AssignedTruckID  *int64 `json:"assigned_truck_id,omitempty"`
	PickupCity       string `json:"pickup_city"`
	DeliveryCity     string `json:"delivery_city"`
	TruckType        string `json:"truck_type"`
	WeightKg         float64 `json:"weight_kg"`
	PriceMinor       int64  `json:"price_minor"`
	PodVerified      bool   `json:"pod_verified"`
	SettlementStatus string `json:"settlement_status"`
}

type offerDTO struct {
	ID        int64     `json:"id"`
	Kind      string    `json:"kind"`
	LoadID    int64     `json:"load_id"`
	TruckID   int64     `json:"truck_id"`
	Status    string    `json:"status"`
	CreatedBy int64     `json:"created_by"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

type resolveResultDTO struct {
	Offer           offerDTO         `json:"offer"`
	AlreadyResolved bool             `json:"already_resolved,omitempty"`
	Assignment      *assignResultDTO `json:"assignment,omitempty"`
}

type matchDTO struct {
	LoadID              int64    `json:"load_id"`
	TruckID             int64    `json:"truck_id"`
	Score               float64  `json:"score"`
	Reasons             []string `json:"reasons,omitempty"`
	DeadheadKm          float64  `json:"deadhead_km"`
	WithinDeadheadLimit bool     `json:"within_deadhead_limit"`
	ExactMatch          bool     `json:"exact_match"`
}
