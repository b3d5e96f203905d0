package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeCodeExists = errors.New("employee code already exists")
	ErrEmailExists        = errors.New("email already registered")
	ErrUnauthorized       = errors.New("unauthorized to access this employee")
	ErrAdminOnlyFields    = errors.New("only an administrator can change these fields")
	ErrInvalidBalanceKind = errors.New("invalid leave balance kind")
)
