package commands

import (
	"context"

	"ticket-booking/internal/pkg/config"
	"ticket-booking/internal/pkg/errs"
	"ticket-booking/internal/pkg/jwt"
	"ticket-booking/internal/pkg/password"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrTokenGeneration    = errs.New("token generation failed")
)

const RoleAdmin = "admin"

// Compared against on the unknown-email path so a login attempt costs one
// bcrypt round regardless of whether the email matched.
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type LoginResult struct {
	Email       string
	AccessToken string
}

type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
}

// authCommandsImpl authenticates the single operator account configured via
// environment. There is no user table; admin identity lives in config.
type authCommandsImpl struct {
	admin      config.AdminConfig
	jwtService *jwt.Service
}

func NewAuthCommands(admin config.AdminConfig, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		admin:      admin,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(_ context.Context, email, plainPassword string) (*LoginResult, error) {
	// Same error and same bcrypt cost for unknown email and bad password,
	// so neither the response nor its timing confirms the admin email.
	if email != a.admin.Email {
		_ = password.ComparePassword(dummyPasswordHash, plainPassword)
		return nil, ErrInvalidCredentials
	}
	if err := password.ComparePassword(a.admin.PasswordHash, plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(email, RoleAdmin)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		Email:       email,
		AccessToken: token,
	}, nil
}
