package payroll

import "errors"

var (
	// ErrComponentsExceedWage is reported as a warning next to a clamped breakdown.
	ErrComponentsExceedWage = errors.New("components exceed wage")
	ErrNegativeWage         = errors.New("monthly wage must not be negative")
)
