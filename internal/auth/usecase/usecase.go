package usecase

import (
	"context"

	authdomain "gadgetverse-backend/internal/auth/domain"
	authdto "gadgetverse-backend/internal/auth/dto"
)

// AuthUsecase defines the auth business operations exposed to delivery
type AuthUsecase interface {
	// Register creates a new user; ErrEmailTaken when the email is in use
	Register(ctx context.Context, req *authdto.RegisterRequest) (*authdto.UserResponse, error)

	// Login verifies credentials; ErrInvalidCredentials covers both an
	// unknown email and a wrong password
	Login(ctx context.Context, req *authdto.LoginRequest) (*authdto.UserResponse, error)

	// GetUserByEmail returns the stored user; ErrUserNotFound when absent
	GetUserByEmail(ctx context.Context, email string) (*authdomain.User, error)
}
