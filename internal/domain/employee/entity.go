package employee

import (
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/payroll"
)

const (
	DefaultPaidLeaveBalance = 24
	DefaultSickLeaveBalance = 7
)

type Employee struct {
	ID               string
	CompanyName      string
	Name             string
	Email            string
	Phone            string
	PasswordHash     string
	EmployeeCode     string
	JobPosition      *string
	Department       *string
	Manager          *string
	Location         *string
	About            *string
	LoveJob          *string
	Interests        *string
	Skills           []string
	Certifications   []string
	SalaryDetails    *payroll.SalaryDetails
	JoiningYear      int
	SerialNumber     int
	PaidLeaveBalance int
	SickLeaveBalance int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Salary returns the stored salary details, or a zero wage with the
// default percentage table when none were recorded yet.
func (e Employee) Salary() payroll.SalaryDetails {
	if e.SalaryDetails == nil {
		return payroll.SalaryDetails{Config: payroll.DefaultSalaryConfig()}
	}
	return *e.SalaryDetails
}

// BalanceKind names the leave counter a leave type draws from.
type BalanceKind string

const (
	BalancePaid BalanceKind = "paid"
	BalanceSick BalanceKind = "sick"
)
