package attendance

import (
	"context"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// CheckIn opens today's record for the caller
	CheckIn(ctx context.Context, principal user.Principal) (AttendanceResponse, error)

	// CheckOut closes today's record and computes worked hours
	CheckOut(ctx context.Context, principal user.Principal) (AttendanceResponse, error)

	// GetStatus returns today's record, or a synthetic Absent one
	GetStatus(ctx context.Context, principal user.Principal) (AttendanceResponse, error)

	// List returns records by date or month. Employees only ever see their own.
	List(ctx context.Context, principal user.Principal, req ListAttendanceRequest) ([]AttendanceResponse, error)
}
