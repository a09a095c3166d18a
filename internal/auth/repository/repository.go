package repository

import (
	"context"

	authdomain "gadgetverse-backend/internal/auth/domain"

	"golang.org/x/crypto/bcrypt"
)

// work factor for newly hashed credentials
const bcryptCost = 12

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create inserts a new user and fills in its assigned ID
	Create(ctx context.Context, user *authdomain.User) error

	// FindByEmail returns (nil, nil) when no user has the given email
	FindByEmail(ctx context.Context, email string) (*authdomain.User, error)
}

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(bytes), err
}

// CheckPasswordHash compares a password with a hash
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
