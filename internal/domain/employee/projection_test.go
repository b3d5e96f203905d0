package employee

import (
	"testing"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
)

func sampleEmployee() Employee {
	return Employee{
		ID:               "0193a1b2-0000-7000-8000-000000000001",
		Name:             "Jane Doe",
		Email:            "jane@example.com",
		PasswordHash:     "$2a$10$hash",
		EmployeeCode:     "JADO20240001",
		PaidLeaveBalance: 24,
		SickLeaveBalance: 7,
	}
}

func TestProjectForViewer_SalaryVisibility(t *testing.T) {
	salary := &payroll.SalaryView{MonthlyWage: 50000}

	cases := []struct {
		name    string
		role    user.Role
		isOwner bool
		visible bool
	}{
		{"admin", user.RoleAdmin, false, true},
		{"hr", user.RoleHR, false, true},
		{"owner", user.RoleEmployee, true, true},
		{"other employee", user.RoleEmployee, false, false},
	}

	for _, tc := range cases {
		resp := ProjectForViewer(sampleEmployee(), tc.role, tc.isOwner, salary)
		if tc.visible {
			assert.NotNil(t, resp.SalaryDetails, tc.name)
		} else {
			assert.Nil(t, resp.SalaryDetails, tc.name)
		}
	}
}

func TestProjectForViewer_EmptyListsAndCode(t *testing.T) {
	resp := ProjectForViewer(sampleEmployee(), user.RoleEmployee, false, nil)

	assert.Equal(t, "JADO20240001", resp.EmployeeID)
	assert.Equal(t, user.RoleEmployee, resp.Role)
	assert.NotNil(t, resp.Skills)
	assert.NotNil(t, resp.Certifications)
	assert.Equal(t, 24, resp.PaidLeaveBalance)
}

func TestCanEdit(t *testing.T) {
	assert.True(t, CanEdit(user.RoleAdmin, false, true))
	assert.True(t, CanEdit(user.RoleEmployee, true, false))
	assert.False(t, CanEdit(user.RoleEmployee, true, true))
	assert.False(t, CanEdit(user.RoleEmployee, false, false))
	assert.False(t, CanEdit(user.RoleHR, false, false))
}

func TestUpdateProfileRequest_ApplyTo(t *testing.T) {
	name := "  Janet Doe "
	dept := "Finance"
	wage := 60000.0
	req := UpdateProfileRequest{
		Name:          &name,
		Department:    &dept,
		SalaryDetails: &payroll.UpdateSalaryRequest{MonthlyWage: &wage},
	}

	self := req.ApplyTo(sampleEmployee(), false)
	assert.Equal(t, "Janet Doe", self.Name)
	assert.Nil(t, self.Department)
	assert.Nil(t, self.SalaryDetails)

	admin := req.ApplyTo(sampleEmployee(), true)
	assert.Equal(t, &dept, admin.Department)
	if assert.NotNil(t, admin.SalaryDetails) {
		assert.Equal(t, 60000.0, admin.SalaryDetails.MonthlyWage)
		assert.Equal(t, payroll.DefaultSalaryConfig(), admin.SalaryDetails.Config)
	}
}

func TestUpdateProfileRequest_Validate(t *testing.T) {
	blank := "   "
	pct := 150.0
	req := UpdateProfileRequest{
		Name: &blank,
		SalaryDetails: &payroll.UpdateSalaryRequest{
			Config: &payroll.SalaryConfigUpdate{BasicPercent: &pct},
		},
	}

	err := req.Validate()
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "name: name must not be blank")
		assert.Contains(t, err.Error(), "salaryDetails.config.basicPercent")
	}

	assert.True(t, req.HasAdminOnlyFields())
	assert.NoError(t, (&UpdateProfileRequest{}).Validate())
}
