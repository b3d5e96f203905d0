package leave

import (
	"context"
	"time"
)

type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	// LockByID reads the request holding a row lock until the surrounding
	// transaction ends
	LockByID(ctx context.Context, id string) (LeaveRequest, error)
	UpdateStatus(ctx context.Context, id string, status Status, adminComment *string) error
	// ListByEmployee returns the employee's requests, newest first
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	// ListAll returns every request joined with employee display fields, newest first
	ListAll(ctx context.Context) ([]LeaveRequest, error)
	// ListApprovedCovering returns approved requests whose range contains date
	ListApprovedCovering(ctx context.Context, date time.Time) ([]LeaveRequest, error)
}
