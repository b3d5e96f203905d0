package employee

import (
	"context"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
)

// EmployeeService defines business logic for profile operations
type EmployeeService interface {
	// GetProfile returns the profile of id projected for the viewer
	GetProfile(ctx context.Context, viewer user.Principal, id string) (ProfileResponse, error)

	// GetAccount returns the minimal profile of an Admin or HR login
	GetAccount(ctx context.Context, viewer user.Principal) (AccountResponse, error)

	// UpdateProfile applies an edit. Owners change their own generic fields;
	// Admin changes any field of anyone.
	UpdateProfile(ctx context.Context, viewer user.Principal, id string, req UpdateProfileRequest) (ProfileResponse, error)

	// ResetLeaveBalances restores every employee's counters to the defaults
	ResetLeaveBalances(ctx context.Context) (int64, error)
}
