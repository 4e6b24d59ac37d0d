package identity

import "loadboard/internal/domain"

// Actor is the authenticated party performing an operation. Session issuance
// and role evaluation happen upstream; handlers extract the actor from
// trusted headers.
type Actor struct {
	UserID int64
	OrgID  int64
	Role   domain.Role
}

// CanApprove reports whether the actor may approve an offer resolving to an
// assignment of a truck owned by ownerOrgID. Final authority belongs to the
// truck-owning carrier organization, with an admin override.
func (a Actor) CanApprove(ownerOrgID int64) bool {
	if a.Role.Admin() {
		return true
	}
	return a.Role == domain.RoleCarrier && a.OrgID == ownerOrgID
}

// CanAssign reports whether the actor may directly assign a truck to a load
// belonging to shipperOrgID.
func (a Actor) CanAssign(shipperOrgID int64) bool {
	if a.Role.Admin() {
		return true
	}
	switch a.Role {
	case domain.RoleCarrier:
		return true
	case domain.RoleShipper:
		return a.OrgID == shipperOrgID
	}
	return false
}

// CanPropose reports whether the actor may create a match proposal.
// Dispatchers propose, they never approve.
func (a Actor) CanPropose() bool {
	return a.Role == domain.RoleDispatcher || a.Role.Admin()
}

// CanRequestTruck reports whether the actor may create a truck request
// against a truck owned by ownerOrgID. Shippers may request any truck they
// do not control; carriers only target their own fleet.
func (a Actor) CanRequestTruck(ownerOrgID int64) bool {
	if a.Role.Admin() {
		return true
	}
	switch a.Role {
	case domain.RoleShipper:
		return true
	case domain.RoleCarrier:
		return a.OrgID == ownerOrgID
	}
	return false
}
