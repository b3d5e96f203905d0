package memory

import (
	"context"
	"sort"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/leave"
)

type leaveRequestRepository struct {
	store *Store
}

func NewLeaveRequestRepository(store *Store) leave.LeaveRequestRepository {
	return &leaveRequestRepository{store: store}
}

// withEmployee fills the join fields. Callers hold store.mu.
func (r *leaveRequestRepository) withEmployee(request leave.LeaveRequest) leave.LeaveRequest {
	if emp, ok := r.store.employees[request.EmployeeID]; ok {
		name, code := emp.Name, emp.EmployeeCode
		request.EmployeeName = &name
		request.EmployeeCode = &code
		request.EmployeeDepartment = emp.Department
	}
	return request
}

func (r *leaveRequestRepository) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	request.ID = newID()
	stamp(&request.CreatedAt, &request.UpdatedAt)
	r.store.leaves[request.ID] = request
	return request, nil
}

func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	request, ok := r.store.leaves[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return r.withEmployee(request), nil
}

// LockByID relies on the transactor lock held by the caller.
func (r *leaveRequestRepository) LockByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return r.GetByID(ctx, id)
}

func (r *leaveRequestRepository) UpdateStatus(ctx context.Context, id string, status leave.Status, adminComment *string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	request, ok := r.store.leaves[id]
	if !ok {
		return leave.ErrLeaveRequestNotFound
	}
	request.Status = status
	if adminComment != nil {
		request.AdminComment = adminComment
	}
	stamp(&request.CreatedAt, &request.UpdatedAt)
	r.store.leaves[id] = request
	return nil
}

func (r *leaveRequestRepository) list(match func(leave.LeaveRequest) bool) []leave.LeaveRequest {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	requests := make([]leave.LeaveRequest, 0)
	for _, request := range r.store.leaves {
		if match(request) {
			requests = append(requests, r.withEmployee(request))
		}
	}
	sort.Slice(requests, func(i, j int) bool {
		if !requests[i].CreatedAt.Equal(requests[j].CreatedAt) {
			return requests[i].CreatedAt.After(requests[j].CreatedAt)
		}
		return requests[i].ID > requests[j].ID
	})
	return requests
}

func (r *leaveRequestRepository) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	return r.list(func(request leave.LeaveRequest) bool {
		return request.EmployeeID == employeeID
	}), nil
}

func (r *leaveRequestRepository) ListAll(ctx context.Context) ([]leave.LeaveRequest, error) {
	return r.list(func(leave.LeaveRequest) bool { return true }), nil
}

func (r *leaveRequestRepository) ListApprovedCovering(ctx context.Context, date time.Time) ([]leave.LeaveRequest, error) {
	return r.list(func(request leave.LeaveRequest) bool {
		return request.Status == leave.StatusApproved && request.Covers(date)
	}), nil
}
