package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/agrm/agrm_backend/internal/apperrors"
	"github.com/agrm/agrm_backend/internal/core/domain"
	portsrepo "github.com/agrm/agrm_backend/internal/core/ports/repositories"
	portssvc "github.com/agrm/agrm_backend/internal/core/ports/services"
	"github.com/agrm/agrm_backend/internal/utils"
)

// UserService implements user administration operations.
type UserService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) *UserService {
	return &UserService{userRepo: userRepo}
}

// Ensure implementation matches interface
var _ portssvc.UserService = (*UserService)(nil)

var validRoles = map[domain.UserRole]struct{}{
	domain.RoleAdmin:   {},
	domain.RoleCashier: {},
	domain.RoleStock:   {},
	domain.RoleHR:      {},
}

// CreateUser hashes the plaintext password and persists the user.
func (s *UserService) CreateUser(ctx context.Context, user domain.User, password string) (*domain.User, error) {
	if user.Username == "" {
		return nil, fmt.Errorf("%w: username is required", apperrors.ErrValidation)
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", apperrors.ErrValidation)
	}
	if _, ok := validRoles[user.Role]; !ok {
		return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, user.Role)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user.UserID = uuid.NewString()
	user.PasswordHash = hash
	user.CreatedAt = now
	user.LastUpdatedAt = now
	user.LastUpdatedBy = user.CreatedBy

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.LogInfo(ctx, "user created", "user_id", user.UserID, "role", string(user.Role))
	return &user, nil
}

// GetUser retrieves one user.
func (s *UserService) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

// ListUsers retrieves all users.
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.ListUsers(ctx)
}
