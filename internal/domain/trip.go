package domain

import "time"

// Trip is created atomically with assignment, 1:1 with an assigned load.
// Pickup and delivery fields are snapshots of the load at commit time.
type Trip struct {
	ID           int64
	LoadID       int64
	TruckID      int64
	Status       TripStatus
	PickupCity   string
	DeliveryCity string
	AssignedAt   time.Time
	TrackingURL  string
}
