package leave

import (
	"math"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
)

type LeaveType string

const (
	TypePaidTimeOff LeaveType = "Paid Time Off"
	TypeSickLeave   LeaveType = "Sick Leave"
	TypeUnpaidLeave LeaveType = "Unpaid Leave"
)

var LeaveTypes = []string{string(TypePaidTimeOff), string(TypeSickLeave), string(TypeUnpaidLeave)}

// BalanceKind returns the counter debited when a request of this type is
// approved. Unpaid leave draws from no counter.
func (t LeaveType) BalanceKind() (employee.BalanceKind, bool) {
	switch t {
	case TypePaidTimeOff:
		return employee.BalancePaid, true
	case TypeSickLeave:
		return employee.BalanceSick, true
	default:
		return "", false
	}
}

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

type LeaveRequest struct {
	ID           string
	EmployeeID   string
	LeaveType    LeaveType
	StartDate    time.Time
	EndDate      time.Time
	DaysCount    int
	Reason       *string
	Status       Status
	AdminComment *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Join
	EmployeeName       *string
	EmployeeCode       *string
	EmployeeDepartment *string
}

// CountDays returns the inclusive number of calendar days between start and end.
func CountDays(start, end time.Time) int {
	days := end.Sub(start).Hours() / 24
	return int(math.Ceil(math.Abs(days))) + 1
}

// Covers reports whether date falls inside the request's range.
func (r LeaveRequest) Covers(date time.Time) bool {
	return !date.Before(r.StartDate) && !date.After(r.EndDate)
}

// Transition decides what moving to next means. A repeated terminal status
// is a no-op. Only Pending may move, and only to Approved or Rejected.
// debit is true when the move must charge the employee's balance.
func (r LeaveRequest) Transition(next Status) (changed bool, debit bool, err error) {
	if next != StatusApproved && next != StatusRejected {
		return false, false, ErrInvalidStatus
	}
	if r.Status == next {
		return false, false, nil
	}
	if r.Status != StatusPending {
		return false, false, ErrLeaveRequestAlreadyProcessed
	}
	return true, next == StatusApproved, nil
}
