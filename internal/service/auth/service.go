package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	tx database.Transactor
	employee.EmployeeRepository
	user.AccountRepository
	jwt.Service
	bcryptCost int
	now        func() time.Time
}

func NewAuthService(tx database.Transactor, employeeRepository employee.EmployeeRepository, accountRepository user.AccountRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		tx:                 tx,
		EmployeeRepository: employeeRepository,
		AccountRepository:  accountRepository,
		Service:            jwtService,
		bcryptCost:         bcrypt.DefaultCost,
		now:                time.Now,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Register implements auth.AuthService.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	exists, err := a.EmployeeRepository.ExistsByEmail(ctx, email)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return auth.TokenResponse{}, employee.ErrEmailExists
	}

	passwordHash, err := a.hashPassword(req.Password)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	companyName := strings.TrimSpace(req.CompanyName)
	name := strings.TrimSpace(req.Name)
	joiningYear := a.now().Year()

	var created employee.Employee
	err = a.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		serial, err := a.EmployeeRepository.NextSerialNumber(ctx, companyName, joiningYear)
		if err != nil {
			return fmt.Errorf("failed to allocate serial number: %w", err)
		}

		created, err = a.EmployeeRepository.Create(ctx, employee.Employee{
			CompanyName:      companyName,
			Name:             name,
			Email:            email,
			Phone:            strings.TrimSpace(req.Phone),
			PasswordHash:     passwordHash,
			EmployeeCode:     employee.GenerateCode(name, joiningYear, serial),
			JoiningYear:      joiningYear,
			SerialNumber:     serial,
			PaidLeaveBalance: employee.DefaultPaidLeaveBalance,
			SickLeaveBalance: employee.DefaultSickLeaveBalance,
		})
		return err
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return a.issueToken(user.Principal{ID: created.ID, Role: user.RoleEmployee}, auth.UserResponse{
		ID:         created.ID,
		Name:       created.Name,
		Email:      created.Email,
		EmployeeID: &created.EmployeeCode,
		Role:       user.RoleEmployee,
	})
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	role := req.Role
	if role == "" {
		role = user.RoleEmployee
	}
	identifier := strings.TrimSpace(req.Identifier)

	if role == user.RoleEmployee {
		if strings.Contains(identifier, "@") {
			identifier = strings.ToLower(identifier)
		}
		emp, err := a.EmployeeRepository.GetByEmailOrCode(ctx, identifier)
		if err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				return auth.TokenResponse{}, auth.ErrInvalidCredentials
			}
			return auth.TokenResponse{}, fmt.Errorf("failed to get employee: %w", err)
		}
		if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}

		return a.issueToken(user.Principal{ID: emp.ID, Role: user.RoleEmployee}, auth.UserResponse{
			ID:         emp.ID,
			Name:       emp.Name,
			Email:      emp.Email,
			EmployeeID: &emp.EmployeeCode,
			Role:       user.RoleEmployee,
		})
	}

	account, err := a.AccountRepository.GetByUsername(ctx, identifier, role)
	if err != nil {
		if errors.Is(err, user.ErrAccountNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get account: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueToken(user.Principal{ID: account.ID, Role: account.Role}, auth.UserResponse{
		ID:    account.ID,
		Name:  account.Name,
		Email: account.Username,
		Role:  account.Role,
	})
}

func (a *AuthServiceImpl) issueToken(principal user.Principal, profile auth.UserResponse) (auth.TokenResponse, error) {
	token, expiresAt, err := a.Service.GenerateAccessToken(principal)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	return auth.TokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      profile,
	}, nil
}
