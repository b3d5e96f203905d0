package employee

import (
	"strings"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

type ProfileResponse struct {
	ID               string              `json:"id"`
	EmployeeID       string              `json:"employeeId"`
	Role             user.Role           `json:"role"`
	CompanyName      string              `json:"companyName"`
	Name             string              `json:"name"`
	Email            string              `json:"email"`
	Phone            string              `json:"phone"`
	JobPosition      *string             `json:"jobPosition"`
	Department       *string             `json:"department"`
	Manager          *string             `json:"manager"`
	Location         *string             `json:"location"`
	About            *string             `json:"about"`
	LoveJob          *string             `json:"loveJob"`
	Interests        *string             `json:"interests"`
	Skills           []string            `json:"skills"`
	Certifications   []string            `json:"certifications"`
	JoiningYear      int                 `json:"joiningYear"`
	PaidLeaveBalance int                 `json:"paidLeaveBalance"`
	SickLeaveBalance int                 `json:"sickLeaveBalance"`
	SalaryDetails    *payroll.SalaryView `json:"salaryDetails,omitempty"`
}

// AccountResponse is the profile of an Admin or HR login.
type AccountResponse struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Username string    `json:"username"`
	Role     user.Role `json:"role"`
}

// UpdateProfileRequest holds a partial profile edit. Nil fields are left
// untouched.
type UpdateProfileRequest struct {
	// Fields an employee may change on their own profile
	Name           *string   `json:"name" validate:"omitempty,min=1,max=255"`
	Phone          *string   `json:"phone" validate:"omitempty,max=50"`
	Location       *string   `json:"location" validate:"omitempty,max=255"`
	About          *string   `json:"about"`
	LoveJob        *string   `json:"loveJob"`
	Interests      *string   `json:"interests"`
	Skills         *[]string `json:"skills"`
	Certifications *[]string `json:"certifications"`

	// Admin only
	CompanyName   *string                      `json:"companyName" validate:"omitempty,min=1,max=255"`
	EmployeeCode  *string                      `json:"employeeId" validate:"omitempty,min=1,max=50"`
	JobPosition   *string                      `json:"jobPosition" validate:"omitempty,max=255"`
	Department    *string                      `json:"department" validate:"omitempty,max=255"`
	Manager       *string                      `json:"manager" validate:"omitempty,max=255"`
	JoiningYear   *int                         `json:"joiningYear" validate:"omitempty,gte=1900,lte=9999"`
	SerialNumber  *int                         `json:"serialNumber" validate:"omitempty,gte=1"`
	SalaryDetails *payroll.UpdateSalaryRequest `json:"salaryDetails"`
}

func (r *UpdateProfileRequest) Validate() error {
	errs := validator.Struct(r)

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs.Add("name", "name must not be blank")
	}
	return errs.Err()
}

// HasAdminOnlyFields reports whether the edit touches fields reserved for Admin.
func (r *UpdateProfileRequest) HasAdminOnlyFields() bool {
	return r.CompanyName != nil ||
		r.EmployeeCode != nil ||
		r.JobPosition != nil ||
		r.Department != nil ||
		r.Manager != nil ||
		r.JoiningYear != nil ||
		r.SerialNumber != nil ||
		r.SalaryDetails != nil
}

// ApplyTo merges the edit onto emp. The caller decides whether admin-only
// fields are allowed.
func (r *UpdateProfileRequest) ApplyTo(emp Employee, includeAdminFields bool) Employee {
	if r.Name != nil {
		emp.Name = strings.TrimSpace(*r.Name)
	}
	if r.Phone != nil {
		emp.Phone = *r.Phone
	}
	if r.Location != nil {
		emp.Location = r.Location
	}
	if r.About != nil {
		emp.About = r.About
	}
	if r.LoveJob != nil {
		emp.LoveJob = r.LoveJob
	}
	if r.Interests != nil {
		emp.Interests = r.Interests
	}
	if r.Skills != nil {
		emp.Skills = *r.Skills
	}
	if r.Certifications != nil {
		emp.Certifications = *r.Certifications
	}

	if !includeAdminFields {
		return emp
	}

	if r.CompanyName != nil {
		emp.CompanyName = *r.CompanyName
	}
	if r.EmployeeCode != nil {
		emp.EmployeeCode = *r.EmployeeCode
	}
	if r.JobPosition != nil {
		emp.JobPosition = r.JobPosition
	}
	if r.Department != nil {
		emp.Department = r.Department
	}
	if r.Manager != nil {
		emp.Manager = r.Manager
	}
	if r.JoiningYear != nil {
		emp.JoiningYear = *r.JoiningYear
	}
	if r.SerialNumber != nil {
		emp.SerialNumber = *r.SerialNumber
	}
	if r.SalaryDetails != nil {
		details := r.SalaryDetails.Apply(emp.Salary())
		emp.SalaryDetails = &details
	}
	return emp
}
