package auth

import (
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

type RegisterRequest struct {
	CompanyName string `json:"companyName" validate:"required,max=255"`
	Name        string `json:"name" validate:"required,max=255"`
	Email       string `json:"email" validate:"required,max=255"`
	Phone       string `json:"phone" validate:"required,max=50"`
	Password    string `json:"password" validate:"required,min=8,max=72"`
}

func (r *RegisterRequest) Validate() error {
	errs := validator.Struct(r)

	if validator.IsEmpty(r.CompanyName) && r.CompanyName != "" {
		errs.Add("companyName", "companyName must not be blank")
	}
	if validator.IsEmpty(r.Name) && r.Name != "" {
		errs.Add("name", "name must not be blank")
	}
	if r.Email != "" && !validator.IsValidEmail(r.Email) {
		errs.Add("email", "invalid email format")
	}

	return errs.Err()
}

type LoginRequest struct {
	Identifier string    `json:"identifier" validate:"required"`
	Password   string    `json:"password" validate:"required"`
	Role       user.Role `json:"role"`
}

func (r *LoginRequest) Validate() error {
	errs := validator.Struct(r)

	// An omitted role logs in as an employee.
	if r.Role != "" && !r.Role.IsValid() {
		errs.Add("role", "role must be one of: Admin, HR, Employee")
	}

	return errs.Err()
}

type UserResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	EmployeeID *string   `json:"employeeId,omitempty"`
	Role       user.Role `json:"role"`
}

type TokenResponse struct {
	Token     string       `json:"token"`
	ExpiresAt int64        `json:"expiresAt"`
	User      UserResponse `json:"user"`
}
