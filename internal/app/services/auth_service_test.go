package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecamli/registra/internal/app/models"
	"github.com/ecamli/registra/internal/pkg/apperrors"
	"github.com/ecamli/registra/internal/pkg/auth"
)

func TestLogin(t *testing.T) {
	ctx := context.Background()

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "test",
	})

	store := newFakeStore()
	users := fakeUserStore{store}

	hash, err := auth.HashPassword("correct-horse")
	require.NoError(t, err)
	require.NoError(t, users.Create(ctx, &models.User{
		Email:        "teacher@example.com",
		PasswordHash: hash,
		FullName:     "Jo Teacher",
		Role:         models.RoleTeacher,
	}))

	svc := NewAuthService(users, jwtService)

	t.Run("valid credentials issue a token", func(t *testing.T) {
		token, expiresIn, user, err := svc.Login(ctx, "teacher@example.com", "correct-horse")
		require.NoError(t, err)
		assert.Equal(t, 3600, expiresIn)
		assert.Equal(t, models.RoleTeacher, user.Role)

		claims, err := jwtService.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, string(models.RoleTeacher), claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, _, err := svc.Login(ctx, "teacher@example.com", "wrong")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown email reports the same error", func(t *testing.T) {
		_, _, _, err := svc.Login(ctx, "nobody@example.com", "correct-horse")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}
