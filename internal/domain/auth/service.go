package auth

import (
	"context"
)

type AuthService interface {
	// Register signs up a new employee and logs them in
	Register(ctx context.Context, req RegisterRequest) (TokenResponse, error)
	// Login authenticates Admin/HR by username and employees by email or employee code
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
}
