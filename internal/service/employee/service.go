package employee

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/directory"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	payrollservice "github.com/cmlabs-hris/attendance-backend-go/internal/service/payroll"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	accountRepo  user.AccountRepository
	calculator   *payrollservice.SalaryCalculator
	directory    directory.Invalidator
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	accountRepo user.AccountRepository,
	calculator *payrollservice.SalaryCalculator,
	invalidator directory.Invalidator,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		accountRepo:  accountRepo,
		calculator:   calculator,
		directory:    invalidator,
	}
}

// GetProfile implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetProfile(ctx context.Context, viewer user.Principal, id string) (employee.ProfileResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.ProfileResponse{}, err
	}
	return s.project(emp, viewer), nil
}

// GetAccount implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetAccount(ctx context.Context, viewer user.Principal) (employee.AccountResponse, error) {
	if !viewer.IsPrivileged() {
		return employee.AccountResponse{}, user.ErrPrivilegedRoleRequired
	}

	account, err := s.accountRepo.GetByID(ctx, viewer.ID)
	if err != nil {
		return employee.AccountResponse{}, err
	}

	return employee.AccountResponse{
		ID:       account.ID,
		Name:     account.Name,
		Username: account.Username,
		Role:     account.Role,
	}, nil
}

// UpdateProfile implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateProfile(ctx context.Context, viewer user.Principal, id string, req employee.UpdateProfileRequest) (employee.ProfileResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.ProfileResponse{}, err
	}

	current, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.ProfileResponse{}, err
	}

	isOwner := viewer.ID == current.ID
	touchesAdminFields := req.HasAdminOnlyFields()
	if !employee.CanEdit(viewer.Role, isOwner, touchesAdminFields) {
		if isOwner && touchesAdminFields {
			return employee.ProfileResponse{}, employee.ErrAdminOnlyFields
		}
		return employee.ProfileResponse{}, employee.ErrUnauthorized
	}

	next := req.ApplyTo(current, user.HasPermission(viewer.Role, user.PermissionEmployeeManage))
	if req.SalaryDetails != nil {
		details := req.SalaryDetails.Apply(current.Salary())
		view, err := s.calculator.CalculateDetails(details)
		if err != nil {
			return employee.ProfileResponse{}, err
		}
		if len(view.Computed.Warnings) > 0 {
			slog.Warn("Salary components exceed wage", "employee_id", current.ID, "warnings", view.Computed.Warnings)
		}
		details.Computed = &view.Computed
		next.SalaryDetails = &details
	}

	updated, err := s.employeeRepo.Update(ctx, next)
	if err != nil {
		return employee.ProfileResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	s.directory.Invalidate(ctx)
	return s.project(updated, viewer), nil
}

// ResetLeaveBalances implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ResetLeaveBalances(ctx context.Context) (int64, error) {
	count, err := s.employeeRepo.ResetLeaveBalances(ctx, employee.DefaultPaidLeaveBalance, employee.DefaultSickLeaveBalance)
	if err != nil {
		return 0, fmt.Errorf("failed to reset leave balances: %w", err)
	}
	return count, nil
}

func (s *EmployeeServiceImpl) project(emp employee.Employee, viewer user.Principal) employee.ProfileResponse {
	isOwner := viewer.ID == emp.ID

	var salary *payroll.SalaryView
	if employee.CanViewSalary(viewer.Role, isOwner) {
		view, err := s.calculator.CalculateDetails(emp.Salary())
		if err != nil {
			slog.Error("Failed to calculate salary", "employee_id", emp.ID, "error", err)
		} else {
			salary = &view
		}
	}

	return employee.ProjectForViewer(emp, viewer.Role, isOwner, salary)
}
