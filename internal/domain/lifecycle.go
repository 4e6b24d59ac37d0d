package domain

import "fmt"

// loadTransitions is the fixed adjacency table of the load lifecycle.
// Absent edges are deliberate: IN_TRANSIT has no direct edge to CANCELLED,
// cancellation in transit must route through EXCEPTION. CANCELLED is
// terminal. EXCEPTION is the recovery hub.
var loadTransitions = map[LoadStatus][]LoadStatus{
	LoadDraft:         {LoadPosted, LoadCancelled},
	LoadPosted:        {LoadSearching, LoadOffered, LoadAssigned, LoadUnposted, LoadCancelled, LoadExpired},
	LoadSearching:     {LoadOffered, LoadAssigned, LoadUnposted, LoadCancelled, LoadExpired},
	LoadOffered:       {LoadAssigned, LoadSearching, LoadUnposted, LoadCancelled, LoadExpired},
	LoadAssigned:      {LoadPickupPending, LoadInTransit, LoadSearching, LoadException, LoadCancelled},
	LoadUnposted:      {LoadPosted, LoadCancelled},
	LoadExpired:       {LoadPosted, LoadCancelled},
	LoadPickupPending: {LoadInTransit, LoadSearching, LoadException, LoadCancelled},
	LoadInTransit:     {LoadDelivered, LoadException},
	LoadDelivered:     {LoadCompleted, LoadException},
	LoadCompleted:     {LoadException},
	LoadException:     {LoadSearching, LoadAssigned, LoadCancelled, LoadCompleted},
	LoadCancelled:     {},
}

// rolePermittedStatuses maps a role to the statuses it may set.
// Admin roles bypass the table; unknown roles may set nothing.
var rolePermittedStatuses = map[Role][]LoadStatus{
	RoleShipper:    {LoadDraft, LoadPosted, LoadCancelled, LoadUnposted},
	RoleCarrier:    {LoadAssigned, LoadPickupPending, LoadInTransit, LoadDelivered},
	RoleDispatcher: {LoadSearching, LoadOffered, LoadException},
}

// IsValidTransition reports whether the edge from→to exists in the
// lifecycle table. Not role-aware.
func IsValidTransition(from, to LoadStatus) bool {
	for _, next := range loadTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CanRoleSetStatus reports whether the role may set the target status.
func CanRoleSetStatus(role Role, status LoadStatus) bool {
	if role.Admin() {
		return status.Valid()
	}
	for _, s := range rolePermittedStatuses[role] {
		if s == status {
			return true
		}
	}
	return false
}

// TransitionResult is the outcome of validating a state transition.
// Reason distinguishes an invalid edge from a role restriction; callers
// surface the two differently.
type TransitionResult struct {
	Valid         bool
	RoleForbidden bool
	Reason        string
}

// ValidateTransition composes the edge check and the role check.
func ValidateTransition(from, to LoadStatus, role Role) TransitionResult {
	if !IsValidTransition(from, to) {
		return TransitionResult{
			Reason: fmt.Sprintf("invalid transition %s → %s", from, to),
		}
	}
	if !CanRoleSetStatus(role, to) {
		return TransitionResult{
			RoleForbidden: true,
			Reason:        fmt.Sprintf("role %s cannot set status %s", role, to),
		}
	}
	return TransitionResult{Valid: true}
}
