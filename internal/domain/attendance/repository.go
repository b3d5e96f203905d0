package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
// Dates are calendar days carried as midnight UTC.
type AttendanceRepository interface {
	// CreateIfAbsent inserts the record unless one already exists for the
	// same employee and date. The bool reports whether a row was inserted.
	CreateIfAbsent(ctx context.Context, record Attendance) (Attendance, bool, error)

	// GetByEmployeeAndDate returns nil when there is no record that day
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// LockByEmployeeAndDate is GetByEmployeeAndDate holding a row lock until
	// the surrounding transaction ends
	LockByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// Update persists check-out, hours and status
	Update(ctx context.Context, record Attendance) error

	// List returns records matching filter, newest date first, joined with
	// the employee display fields
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, error)
}
