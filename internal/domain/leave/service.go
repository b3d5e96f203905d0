package leave

import (
	"context"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
)

type LeaveService interface {
	// Apply files a Pending request for the caller
	Apply(ctx context.Context, principal user.Principal, req CreateLeaveRequest) (LeaveResponse, error)

	// ListMine returns the caller's requests
	ListMine(ctx context.Context, principal user.Principal) ([]LeaveResponse, error)

	// ListAll returns every request (Admin/HR)
	ListAll(ctx context.Context, principal user.Principal) ([]LeaveResponse, error)

	// SetStatus approves or rejects a request, debiting the balance on approval
	SetStatus(ctx context.Context, principal user.Principal, id string, req UpdateLeaveStatusRequest) (LeaveResponse, error)
}
