package models

// Role is the closed set of account roles recognised by the backend.
// Unknown values are normalised to RoleUser so a malformed cached snapshot can
// never grant elevated navigation.
type Role string

const (
	RoleUser    Role = "user"
	RoleManager Role = "manager"
	RoleAdmin   Role = "admin"
)

// ParseRole normalises a raw role string to one of the closed set.
func ParseRole(raw string) Role {
	switch Role(raw) {
	case RoleManager:
		return RoleManager
	case RoleAdmin:
		return RoleAdmin
	default:
		return RoleUser
	}
}

// Valid reports whether the role is one of the closed set.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleManager || r == RoleAdmin
}

// CanManage reports whether the role may use the manager dashboard
// (competition CRUD, participant assignment). Admins are managers too,
// mirroring the backend's require_manager dependency.
func (r Role) CanManage() bool {
	return r == RoleManager || r == RoleAdmin
}

// CanAdminister reports whether the role may use the admin panel
// (account management, reference data). Admin only.
func (r Role) CanAdminister() bool {
	return r == RoleAdmin
}
