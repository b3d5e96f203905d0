package leave

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/directory"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
)

type LeaveServiceImpl struct {
	tx database.Transactor
	leave.LeaveRequestRepository
	employee.EmployeeRepository
	directory directory.Invalidator
}

// Apply implements leave.LeaveService.
func (s *LeaveServiceImpl) Apply(ctx context.Context, principal user.Principal, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if !user.HasPermission(principal.Role, user.PermissionLeaveCreate) {
		return leave.LeaveResponse{}, user.ErrInsufficientPermissions
	}
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	start, end := req.Dates()
	created, err := s.LeaveRequestRepository.Create(ctx, leave.LeaveRequest{
		EmployeeID: principal.ID,
		LeaveType:  leave.LeaveType(req.LeaveType),
		StartDate:  start,
		EndDate:    end,
		DaysCount:  leave.CountDays(start, end),
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return created.ToResponse(), nil
}

// ListMine implements leave.LeaveService.
func (s *LeaveServiceImpl) ListMine(ctx context.Context, principal user.Principal) ([]leave.LeaveResponse, error) {
	requests, err := s.LeaveRequestRepository.ListByEmployee(ctx, principal.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return toResponses(requests), nil
}

// ListAll implements leave.LeaveService.
func (s *LeaveServiceImpl) ListAll(ctx context.Context, principal user.Principal) ([]leave.LeaveResponse, error) {
	if !user.HasPermission(principal.Role, user.PermissionLeaveViewAll) {
		return nil, user.ErrInsufficientPermissions
	}

	requests, err := s.LeaveRequestRepository.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return toResponses(requests), nil
}

// SetStatus implements leave.LeaveService.
func (s *LeaveServiceImpl) SetStatus(ctx context.Context, principal user.Principal, id string, req leave.UpdateLeaveStatusRequest) (leave.LeaveResponse, error) {
	if !user.HasPermission(principal.Role, user.PermissionLeaveApprove) {
		return leave.LeaveResponse{}, user.ErrInsufficientPermissions
	}
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	next := leave.Status(req.Status)
	var changed bool

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		current, err := s.LeaveRequestRepository.LockByID(ctx, id)
		if err != nil {
			return err
		}

		var debit bool
		changed, debit, err = current.Transition(next)
		if err != nil || !changed {
			return err
		}

		if err := s.LeaveRequestRepository.UpdateStatus(ctx, id, next, req.AdminComment); err != nil {
			return fmt.Errorf("failed to update leave status: %w", err)
		}

		if !debit {
			return nil
		}
		kind, ok := current.LeaveType.BalanceKind()
		if !ok {
			return nil
		}
		if err := s.EmployeeRepository.DebitLeaveBalance(ctx, current.EmployeeID, kind, current.DaysCount); err != nil {
			return fmt.Errorf("failed to debit leave balance: %w", err)
		}

		slog.Info("Leave balance debited",
			"leave_request_id", id,
			"employee_id", current.EmployeeID,
			"balance", kind,
			"days", current.DaysCount,
			"approved_by", principal.ID,
		)
		return nil
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	if changed {
		s.directory.Invalidate(ctx)
	}

	updated, err := s.LeaveRequestRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return updated.ToResponse(), nil
}

func toResponses(requests []leave.LeaveRequest) []leave.LeaveResponse {
	responses := make([]leave.LeaveResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, request.ToResponse())
	}
	return responses
}

func NewLeaveService(
	tx database.Transactor,
	leaveRequestRepo leave.LeaveRequestRepository,
	employeeRepo employee.EmployeeRepository,
	invalidator directory.Invalidator,
) leave.LeaveService {
	return &LeaveServiceImpl{
		tx:                     tx,
		LeaveRequestRepository: leaveRequestRepo,
		EmployeeRepository:     employeeRepo,
		directory:              invalidator,
	}
}
