package attendance

import (
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

// AttendanceFilter narrows List. From and To are inclusive calendar days.
type AttendanceFilter struct {
	EmployeeID *string
	From       *time.Time
	To         *time.Time
}

type ListAttendanceRequest struct {
	Date       string
	Month      string
	EmployeeID string
}

func (r *ListAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != "" && r.Month != "" {
		errs.Add("date", "use either date or month, not both")
	}
	if r.Date != "" {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs.Add("date", "date must be in YYYY-MM-DD format")
		}
	}
	if r.Month != "" {
		if _, ok := validator.IsValidMonth(r.Month); !ok {
			errs.Add("month", "month must be in YYYY-MM format")
		}
	}
	if r.EmployeeID != "" && !validator.IsValidUUID(r.EmployeeID) {
		errs.Add("employeeId", "employeeId must be a valid UUID")
	}

	return errs.Err()
}

// Filter converts the query into a repository filter. Validate must pass first.
func (r *ListAttendanceRequest) Filter() AttendanceFilter {
	var filter AttendanceFilter
	if r.EmployeeID != "" {
		employeeID := r.EmployeeID
		filter.EmployeeID = &employeeID
	}
	if date, ok := validator.IsValidDate(r.Date); ok {
		filter.From = &date
		filter.To = &date
	} else if month, ok := validator.IsValidMonth(r.Month); ok {
		last := month.AddDate(0, 1, -1)
		filter.From = &month
		filter.To = &last
	}
	return filter
}

type EmployeeSummary struct {
	Name       string  `json:"name"`
	EmployeeID string  `json:"employeeId"`
	Department *string `json:"department"`
}

type AttendanceResponse struct {
	ID         string           `json:"id,omitempty"`
	EmployeeID string           `json:"employeeId"`
	Date       string           `json:"date"`
	CheckIn    *time.Time       `json:"checkIn"`
	CheckOut   *time.Time       `json:"checkOut"`
	Status     Status           `json:"status"`
	WorkHours  float64          `json:"workHours"`
	ExtraHours float64          `json:"extraHours"`
	Employee   *EmployeeSummary `json:"employee,omitempty"`
}

func (a Attendance) ToResponse() AttendanceResponse {
	resp := AttendanceResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Date:       a.Date.Format("2006-01-02"),
		CheckIn:    a.CheckIn,
		CheckOut:   a.CheckOut,
		Status:     a.Status,
		WorkHours:  a.WorkHours,
		ExtraHours: a.ExtraHours,
	}
	if a.EmployeeName != nil {
		resp.Employee = &EmployeeSummary{
			Name:       *a.EmployeeName,
			Department: a.EmployeeDepartment,
		}
		if a.EmployeeCode != nil {
			resp.Employee.EmployeeID = *a.EmployeeCode
		}
	}
	return resp
}

// AbsentStatus is the synthetic response for a day without a record.
func AbsentStatus(employeeID string, date time.Time) AttendanceResponse {
	return AttendanceResponse{
		EmployeeID: employeeID,
		Date:       date.Format("2006-01-02"),
		Status:     StatusAbsent,
	}
}
