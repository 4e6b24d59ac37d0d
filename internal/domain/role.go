package domain

// Role represents the acting party in a marketplace operation.
type Role string

// List of possible roles
const (
	RoleShipper    Role = "SHIPPER"
	RoleCarrier    Role = "CARRIER"
	RoleDispatcher Role = "DISPATCHER"
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

var allowedRoles = [...]Role{
	RoleShipper, RoleCarrier, RoleDispatcher, RoleAdmin, RoleSuperAdmin,
}

// Valid checks if the Role is valid
func (r Role) Valid() bool {
	for _, v := range allowedRoles {
		if r == v {
			return true
		}
	}
	return false
}

// Admin reports whether the role carries the admin override.
func (r Role) Admin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}
