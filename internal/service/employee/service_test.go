package employee

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/memory"
	payrollservice "github.com/cmlabs-hris/attendance-backend-go/internal/service/payroll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopInvalidator struct{}

func (noopInvalidator) Invalidate(ctx context.Context) {}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

type fixture struct {
	service   employee.EmployeeService
	employees employee.EmployeeRepository
	accounts  user.AccountRepository
	jane      employee.Employee
	john      employee.Employee
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	f := &fixture{
		employees: memory.NewEmployeeRepository(store),
		accounts:  memory.NewAccountRepository(store),
	}
	f.service = NewEmployeeService(f.employees, f.accounts, payrollservice.NewSalaryCalculator(), noopInvalidator{})

	var err error
	f.jane, err = f.employees.Create(context.Background(), employee.Employee{
		CompanyName:   "Acme",
		Name:          "Jane Doe",
		Email:         "jane@acme.test",
		EmployeeCode:  "JADO20240001",
		JoiningYear:   2024,
		SerialNumber:  1,
		SalaryDetails: &payroll.SalaryDetails{MonthlyWage: 50000, Config: payroll.DefaultSalaryConfig()},
	})
	require.NoError(t, err)

	f.john, err = f.employees.Create(context.Background(), employee.Employee{
		CompanyName:  "Acme",
		Name:         "John Roe",
		Email:        "john@acme.test",
		EmployeeCode: "JORO20240002",
		JoiningYear:  2024,
		SerialNumber: 2,
	})
	require.NoError(t, err)
	return f
}

func TestEmployeeService_GetProfile_SalaryProjection(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	own, err := f.service.GetProfile(ctx, user.Principal{ID: f.jane.ID, Role: user.RoleEmployee}, f.jane.ID)
	require.NoError(t, err)
	require.NotNil(t, own.SalaryDetails)
	assert.Equal(t, 46800.0, own.SalaryDetails.Computed.NetSalary)

	peer, err := f.service.GetProfile(ctx, user.Principal{ID: f.john.ID, Role: user.RoleEmployee}, f.jane.ID)
	require.NoError(t, err)
	assert.Nil(t, peer.SalaryDetails)
	assert.Equal(t, "Jane Doe", peer.Name)

	hr, err := f.service.GetProfile(ctx, user.Principal{ID: "hr", Role: user.RoleHR}, f.jane.ID)
	require.NoError(t, err)
	assert.NotNil(t, hr.SalaryDetails)
}

func TestEmployeeService_GetProfile_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.GetProfile(context.Background(), user.Principal{ID: "hr", Role: user.RoleHR}, "0190f3a6-8a40-7c1e-9b2a-000000000000")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeService_GetAccount(t *testing.T) {
	f := newFixture(t)
	account, err := f.accounts.Upsert(context.Background(), user.Account{
		Username: "hr",
		Name:     "HR Desk",
		Role:     user.RoleHR,
	})
	require.NoError(t, err)

	resp, err := f.service.GetAccount(context.Background(), user.Principal{ID: account.ID, Role: user.RoleHR})
	require.NoError(t, err)
	assert.Equal(t, "hr", resp.Username)
	assert.Equal(t, user.RoleHR, resp.Role)

	_, err = f.service.GetAccount(context.Background(), user.Principal{ID: f.jane.ID, Role: user.RoleEmployee})
	assert.ErrorIs(t, err, user.ErrPrivilegedRoleRequired)
}

func TestEmployeeService_UpdateProfile_OwnerGenericFields(t *testing.T) {
	f := newFixture(t)

	resp, err := f.service.UpdateProfile(context.Background(), user.Principal{ID: f.jane.ID, Role: user.RoleEmployee}, f.jane.ID, employee.UpdateProfileRequest{
		Phone:    strPtr("0812"),
		Location: strPtr("Jakarta"),
	})
	require.NoError(t, err)
	assert.Equal(t, "0812", resp.Phone)
	require.NotNil(t, resp.Location)
	assert.Equal(t, "Jakarta", *resp.Location)
}

func TestEmployeeService_UpdateProfile_OwnerAdminFieldsForbidden(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.UpdateProfile(context.Background(), user.Principal{ID: f.jane.ID, Role: user.RoleEmployee}, f.jane.ID, employee.UpdateProfileRequest{
		Department: strPtr("Finance"),
	})
	assert.ErrorIs(t, err, employee.ErrAdminOnlyFields)
}

func TestEmployeeService_UpdateProfile_OtherEmployeeForbidden(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.UpdateProfile(context.Background(), user.Principal{ID: f.john.ID, Role: user.RoleEmployee}, f.jane.ID, employee.UpdateProfileRequest{
		Phone: strPtr("0812"),
	})
	assert.ErrorIs(t, err, employee.ErrUnauthorized)

	_, err = f.service.UpdateProfile(context.Background(), user.Principal{ID: "hr", Role: user.RoleHR}, f.jane.ID, employee.UpdateProfileRequest{
		Phone: strPtr("0812"),
	})
	assert.ErrorIs(t, err, employee.ErrUnauthorized)
}

func TestEmployeeService_UpdateProfile_AdminSalary(t *testing.T) {
	f := newFixture(t)
	admin := user.Principal{ID: "admin", Role: user.RoleAdmin}

	resp, err := f.service.UpdateProfile(context.Background(), admin, f.john.ID, employee.UpdateProfileRequest{
		Department:    strPtr("Engineering"),
		SalaryDetails: &payroll.UpdateSalaryRequest{MonthlyWage: floatPtr(50000)},
	})
	require.NoError(t, err)

	require.NotNil(t, resp.Department)
	assert.Equal(t, "Engineering", *resp.Department)
	require.NotNil(t, resp.SalaryDetails)
	assert.Equal(t, 25000.0, resp.SalaryDetails.Computed.BasicSalary)

	stored, err := f.employees.GetByID(context.Background(), f.john.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.SalaryDetails)
	require.NotNil(t, stored.SalaryDetails.Computed)
	assert.Equal(t, 46800.0, stored.SalaryDetails.Computed.NetSalary)
}

func TestEmployeeService_UpdateProfile_Validation(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.UpdateProfile(context.Background(), user.Principal{ID: f.jane.ID, Role: user.RoleEmployee}, f.jane.ID, employee.UpdateProfileRequest{
		Name: strPtr("   "),
	})
	assert.Error(t, err)
}

func TestEmployeeService_ResetLeaveBalances(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.employees.DebitLeaveBalance(context.Background(), f.jane.ID, employee.BalancePaid, 5))

	count, err := f.service.ResetLeaveBalances(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	got, err := f.employees.GetByID(context.Background(), f.jane.ID)
	require.NoError(t, err)
	assert.Equal(t, employee.DefaultPaidLeaveBalance, got.PaidLeaveBalance)
	assert.Equal(t, employee.DefaultSickLeaveBalance, got.SickLeaveBalance)
}
