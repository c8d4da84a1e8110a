package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/agrm/agrm_backend/internal/apperrors"
	"github.com/agrm/agrm_backend/internal/core/domain"
	portsrepo "github.com/agrm/agrm_backend/internal/core/ports/repositories"
	portssvc "github.com/agrm/agrm_backend/internal/core/ports/services"
	"github.com/agrm/agrm_backend/internal/utils"
)

// AuthService implements credential verification and token issuance.
type AuthService struct {
	BaseService
	userRepo       portsrepo.UserReader
	jwtSecret      string
	jwtExpiry      time.Duration
	jwtIssuer      string
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo portsrepo.UserReader, jwtSecret string, jwtExpiry time.Duration, jwtIssuer string) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
		jwtIssuer: jwtIssuer,
	}
}

// Ensure implementation matches interface
var _ portssvc.AuthService = (*AuthService)(nil)

// Login verifies the credentials and returns a signed JWT with the user.
// A missing user and a wrong password both map to ErrUnauthorized so the
// response never reveals which part failed.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", nil, apperrors.ErrUnauthorized
		}
		return "", nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogInfo(ctx, "failed login attempt", "username", username)
		return "", nil, apperrors.ErrUnauthorized
	}

	token, err := utils.GenerateJWT(user.UserID, s.jwtSecret, s.jwtExpiry, s.jwtIssuer)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}

	s.LogInfo(ctx, "user logged in", "user_id", user.UserID)
	return token, user, nil
}
