package auth

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fixture struct {
	service   *AuthServiceImpl
	employees employee.EmployeeRepository
	accounts  user.AccountRepository
	jwt       jwt.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	f := &fixture{
		employees: memory.NewEmployeeRepository(store),
		accounts:  memory.NewAccountRepository(store),
		jwt:       jwt.NewJWTService("test-secret", "1h"),
	}
	f.service = NewAuthService(memory.NewTransactor(store), f.employees, f.accounts, f.jwt).(*AuthServiceImpl)
	f.service.bcryptCost = bcrypt.MinCost
	f.service.now = func() time.Time { return time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC) }
	return f
}

func registerRequest(name, email string) auth.RegisterRequest {
	return auth.RegisterRequest{
		CompanyName: "Acme Corp",
		Name:        name,
		Email:       email,
		Phone:       "08123456789",
		Password:    "password123",
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	f := newFixture(t)

	resp, err := f.service.Register(context.Background(), registerRequest("Jane Doe", "Jane@Acme.test"))
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, user.RoleEmployee, resp.User.Role)
	assert.Equal(t, "jane@acme.test", resp.User.Email)
	require.NotNil(t, resp.User.EmployeeID)
	assert.Equal(t, "JADO20240001", *resp.User.EmployeeID)

	emp, err := f.employees.GetByID(context.Background(), resp.User.ID)
	require.NoError(t, err)
	assert.Equal(t, employee.DefaultPaidLeaveBalance, emp.PaidLeaveBalance)
	assert.Equal(t, employee.DefaultSickLeaveBalance, emp.SickLeaveBalance)
	assert.Equal(t, 2024, emp.JoiningYear)
	assert.NotEqual(t, "password123", emp.PasswordHash)
}

func TestAuthService_Register_SerialPerCompanyAndYear(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Register(context.Background(), registerRequest("Jane Doe", "jane@acme.test"))
	require.NoError(t, err)
	second, err := f.service.Register(context.Background(), registerRequest("Cher", "cher@acme.test"))
	require.NoError(t, err)
	assert.Equal(t, "CHXX20240002", *second.User.EmployeeID)

	other := registerRequest("John Roe", "john@other.test")
	other.CompanyName = "Other Inc"
	third, err := f.service.Register(context.Background(), other)
	require.NoError(t, err)
	assert.Equal(t, "JORO20240001", *third.User.EmployeeID)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Register(context.Background(), registerRequest("Jane Doe", "jane@acme.test"))
	require.NoError(t, err)

	_, err = f.service.Register(context.Background(), registerRequest("Jane Again", "jane@acme.test"))
	assert.ErrorIs(t, err, employee.ErrEmailExists)
}

func TestAuthService_Register_Validation(t *testing.T) {
	f := newFixture(t)

	req := registerRequest("Jane Doe", "not-an-email")
	req.Password = "short"
	_, err := f.service.Register(context.Background(), req)
	assert.Error(t, err)
}

func TestAuthService_Login_EmployeeByEmailOrCode(t *testing.T) {
	f := newFixture(t)
	registered, err := f.service.Register(context.Background(), registerRequest("Jane Doe", "jane@acme.test"))
	require.NoError(t, err)

	byEmail, err := f.service.Login(context.Background(), auth.LoginRequest{Identifier: "jane@acme.test", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, byEmail.User.ID)

	byCode, err := f.service.Login(context.Background(), auth.LoginRequest{
		Identifier: "JADO20240001",
		Password:   "password123",
		Role:       user.RoleEmployee,
	})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, byCode.User.ID)

	token, err := f.jwt.JWTAuth().Decode(byCode.Token)
	require.NoError(t, err)
	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	principal, err := jwt.PrincipalFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, user.Principal{ID: registered.User.ID, Role: user.RoleEmployee}, principal)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	f := newFixture(t)
	_, err := f.service.Register(context.Background(), registerRequest("Jane Doe", "jane@acme.test"))
	require.NoError(t, err)

	_, err = f.service.Login(context.Background(), auth.LoginRequest{Identifier: "jane@acme.test", Password: "wrong-password"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = f.service.Login(context.Background(), auth.LoginRequest{Identifier: "nobody@acme.test", Password: "password123"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_Accounts(t *testing.T) {
	f := newFixture(t)
	hash, err := bcrypt.GenerateFromPassword([]byte("hr-password"), bcrypt.MinCost)
	require.NoError(t, err)
	account, err := f.accounts.Upsert(context.Background(), user.Account{
		Username:     "hr",
		Name:         "HR Desk",
		PasswordHash: string(hash),
		Role:         user.RoleHR,
	})
	require.NoError(t, err)

	resp, err := f.service.Login(context.Background(), auth.LoginRequest{Identifier: "hr", Password: "hr-password", Role: user.RoleHR})
	require.NoError(t, err)
	assert.Equal(t, account.ID, resp.User.ID)
	assert.Equal(t, user.RoleHR, resp.User.Role)
	assert.Nil(t, resp.User.EmployeeID)

	// The HR account cannot log in through the Admin door.
	_, err = f.service.Login(context.Background(), auth.LoginRequest{Identifier: "hr", Password: "hr-password", Role: user.RoleAdmin})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}
