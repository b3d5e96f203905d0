package user

import "errors"

var (
	ErrAccountNotFound         = errors.New("account not found")
	ErrPrivilegedRoleRequired  = errors.New("admin or HR access required")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
	ErrInvalidRole             = errors.New("invalid role")
)
