package user

import "time"

type Role string

const (
	RoleAdmin    Role = "Admin"    // Full access, edits any profile including salary
	RoleHR       Role = "HR"       // Reviews leave and attendance of everyone
	RoleEmployee Role = "Employee" // Own attendance, leave and profile
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleHR || r == RoleEmployee
}

// Principal is the authenticated caller resolved from the bearer token.
type Principal struct {
	ID   string
	Role Role
}

// IsAdmin checks if the caller is an administrator
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// IsPrivileged checks if the caller is Admin or HR
func (p Principal) IsPrivileged() bool {
	return p.Role == RoleAdmin || p.Role == RoleHR
}

// Account is an Admin or HR login. Employees authenticate against their
// employee record instead.
type Account struct {
	ID           string
	Username     string
	Name         string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
