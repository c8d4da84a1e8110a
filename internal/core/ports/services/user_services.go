package services

import (
	"context"

	"github.com/agrm/agrm_backend/internal/core/domain"
)

// UserService defines user administration operations.
type UserService interface {
	// CreateUser hashes the plaintext password and persists the user. A
	// taken username yields ErrDuplicate.
	CreateUser(ctx context.Context, user domain.User, password string) (*domain.User, error)
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// AuthService defines authentication operations.
type AuthService interface {
	// Login verifies the credentials and returns a signed JWT with the
	// authenticated user. Bad credentials yield ErrUnauthorized without
	// revealing which part failed.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
