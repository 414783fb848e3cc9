package domain

import "time"

// Role is the membership level of a library user.
type Role string

const (
	RoleMember  Role = "MEMBER"
	RoleManager Role = "MANAGER"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleMember || r == RoleManager
}

type User struct {
	ID        string // stable external identifier, chosen by the manager who registers the user
	Name      string
	Email     string // optional
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}
