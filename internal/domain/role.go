package domain

// Role enumerates provisioned user roles. Only the admin role is consumed
// by this service; role rows are created and removed out of band.
type Role string

const (
	RoleAdmin Role = "admin"
)

// RoleAssignment links a user to a role.
type RoleAssignment struct {
	UserID string
	Role   Role
}
