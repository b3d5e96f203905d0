package leave

import (
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	LeaveType string  `json:"leaveType" validate:"required"`
	StartDate string  `json:"startDate" validate:"required"`
	EndDate   string  `json:"endDate" validate:"required"`
	Reason    *string `json:"reason" validate:"omitempty,max=1000"`
}

func (r *CreateLeaveRequest) Validate() error {
	errs := validator.Struct(r)

	if r.LeaveType != "" && !validator.IsInSlice(r.LeaveType, LeaveTypes) {
		errs.Add("leaveType", "leaveType must be one of: Paid Time Off, Sick Leave, Unpaid Leave")
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if r.StartDate != "" && !startOK {
		errs.Add("startDate", "startDate must be in YYYY-MM-DD format")
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if r.EndDate != "" && !endOK {
		errs.Add("endDate", "endDate must be in YYYY-MM-DD format")
	}
	if startOK && endOK && end.Before(start) {
		errs.Add("endDate", "endDate must not be before startDate")
	}

	return errs.Err()
}

// Dates returns the parsed range. Validate must pass first.
func (r *CreateLeaveRequest) Dates() (start, end time.Time) {
	start, _ = validator.IsValidDate(r.StartDate)
	end, _ = validator.IsValidDate(r.EndDate)
	return start, end
}

type UpdateLeaveStatusRequest struct {
	Status       string  `json:"status" validate:"required"`
	AdminComment *string `json:"adminComment" validate:"omitempty,max=1000"`
}

func (r *UpdateLeaveStatusRequest) Validate() error {
	errs := validator.Struct(r)

	if r.Status != "" && r.Status != string(StatusApproved) && r.Status != string(StatusRejected) {
		errs.Add("status", ErrInvalidStatus.Error())
	}

	return errs.Err()
}

type EmployeeSummary struct {
	Name       string  `json:"name"`
	EmployeeID string  `json:"employeeId"`
	Department *string `json:"department"`
}

type LeaveResponse struct {
	ID           string           `json:"id"`
	EmployeeID   string           `json:"employeeId"`
	LeaveType    LeaveType        `json:"leaveType"`
	StartDate    string           `json:"startDate"`
	EndDate      string           `json:"endDate"`
	DaysCount    int              `json:"daysCount"`
	Reason       *string          `json:"reason"`
	Status       Status           `json:"status"`
	AdminComment *string          `json:"adminComment"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
	Employee     *EmployeeSummary `json:"employee,omitempty"`
}

func (r LeaveRequest) ToResponse() LeaveResponse {
	resp := LeaveResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		LeaveType:    r.LeaveType,
		StartDate:    r.StartDate.Format("2006-01-02"),
		EndDate:      r.EndDate.Format("2006-01-02"),
		DaysCount:    r.DaysCount,
		Reason:       r.Reason,
		Status:       r.Status,
		AdminComment: r.AdminComment,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
	if r.EmployeeName != nil {
		resp.Employee = &EmployeeSummary{
			Name:       *r.EmployeeName,
			Department: r.EmployeeDepartment,
		}
		if r.EmployeeCode != nil {
			resp.Employee.EmployeeID = *r.EmployeeCode
		}
	}
	return resp
}
