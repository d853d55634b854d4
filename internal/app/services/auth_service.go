package services

import (
	"context"
	"errors"

	"github.com/ecamli/registra/internal/app/models"
	"github.com/ecamli/registra/internal/pkg/apperrors"
	"github.com/ecamli/registra/internal/pkg/auth"
	"github.com/ecamli/registra/internal/pkg/logger"
)

// AuthService handles console logins. Role resolution stops here: everything
// past the boundary works with the capability set derived from the role.
type AuthService struct {
	users UserStore
	jwt   *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(users UserStore, jwt *auth.JWTService) *AuthService {
	return &AuthService{users: users, jwt: jwt}
}

// Login verifies credentials and issues an access token. Unknown emails and
// wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (token string, expiresIn int, user *models.User, err error) {
	user, err = s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", 0, nil, apperrors.ErrInvalidCredentials
		}
		return "", 0, nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		logger.Warn().Str("email", email).Msg("Failed login attempt")
		return "", 0, nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err = s.jwt.GenerateToken(user)
	if err != nil {
		return "", 0, nil, err
	}
	return token, expiresIn, user, nil
}
