//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"ticket-booking/internal/pkg/config"
	"ticket-booking/internal/pkg/jwt"
	"ticket-booking/internal/pkg/password"
	"ticket-booking/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthCommands(t *testing.T, email, plain string) commands.AuthCommands {
	t.Helper()

	hash, err := password.HashPassword(plain)
	require.NoError(t, err)

	admin := config.AdminConfig{Email: email, PasswordHash: hash}
	svc := jwt.NewService("test-secret", time.Hour)
	return commands.NewAuthCommands(admin, svc)
}

func TestAuthLogin(t *testing.T) {
	ctx := context.Background()
	uc := newAuthCommands(t, "admin@example.com", "s3cret-pass")

	t.Run("success: issues a verifiable admin token", func(t *testing.T) {
		result, err := uc.Login(ctx, "admin@example.com", "s3cret-pass")
		require.NoError(t, err)
		assert.Equal(t, "admin@example.com", result.Email)

		claims, err := jwt.NewService("test-secret", time.Hour).ValidateToken(result.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "admin@example.com", claims.Email)
		assert.Equal(t, commands.RoleAdmin, claims.Role)
	})

	t.Run("error: unknown email and wrong password are indistinguishable", func(t *testing.T) {
		_, emailErr := uc.Login(ctx, "intruder@example.com", "s3cret-pass")
		_, passErr := uc.Login(ctx, "admin@example.com", "wrong")

		assert.ErrorIs(t, emailErr, commands.ErrInvalidCredentials)
		assert.ErrorIs(t, passErr, commands.ErrInvalidCredentials)
		assert.Equal(t, emailErr.Error(), passErr.Error())
	})

	t.Run("error: empty password is rejected", func(t *testing.T) {
		_, err := uc.Login(ctx, "admin@example.com", "")
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})
}
