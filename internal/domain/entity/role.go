package entity

// Roles válidos en el claim "role" del token.
const (
	RoleOwner         = "owner"
	RoleStaff         = "staff"
	RolePlatformAdmin = "platform_admin"
)
