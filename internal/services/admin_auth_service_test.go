package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/profefranko/profefranko-api/config"
	"github.com/profefranko/profefranko-api/internal/services"
)

func adminConfig(t *testing.T, password string) *config.Config {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &config.Config{
		AdminSession: config.AdminSessionConfig{
			JWTSecret:       "test-secret",
			JWTIssuer:       "profefranko-api",
			SessionTTLHours: 24,
			CookieDomain:    "profefranko.com",
			CookieSecure:    true,
			Email:           "franko@profefranko.com",
			PasswordHash:    string(hash),
		},
	}
}

func TestAdminLogin_Success(t *testing.T) {
	service := services.NewAdminAuthService(adminConfig(t, "correct-horse"))

	session, token, err := service.Login(context.Background(), "franko@profefranko.com", "correct-horse")
	require.NoError(t, err)

	assert.Equal(t, "franko@profefranko.com", session.Email)
	assert.NotEmpty(t, session.Name)
	assert.NotEmpty(t, token)

	// The issued token validates back to the same session
	validated, err := service.ValidateSession(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, session.Email, validated.Email)
}

func TestAdminLogin_WrongPassword(t *testing.T) {
	service := services.NewAdminAuthService(adminConfig(t, "correct-horse"))

	_, _, err := service.Login(context.Background(), "franko@profefranko.com", "wrong")
	assert.ErrorIs(t, err, services.ErrAdminInvalidCredentials)
}

func TestAdminLogin_WrongEmail(t *testing.T) {
	service := services.NewAdminAuthService(adminConfig(t, "correct-horse"))

	_, _, err := service.Login(context.Background(), "intruder@example.com", "correct-horse")
	assert.ErrorIs(t, err, services.ErrAdminInvalidCredentials)
}

func TestAdminLogin_JWTNotConfigured(t *testing.T) {
	cfg := adminConfig(t, "correct-horse")
	cfg.AdminSession.JWTSecret = ""
	service := services.NewAdminAuthService(cfg)

	_, _, err := service.Login(context.Background(), "franko@profefranko.com", "correct-horse")
	assert.ErrorIs(t, err, services.ErrAdminJWTSecretNotSet)
	assert.Nil(t, service.GetTokenManager())
}

func TestAdminValidateSession_BadToken(t *testing.T) {
	service := services.NewAdminAuthService(adminConfig(t, "correct-horse"))

	_, err := service.ValidateSession(context.Background(), "not-a-jwt")
	assert.Error(t, err)
}

func TestAdminSessionAccessors(t *testing.T) {
	service := services.NewAdminAuthService(adminConfig(t, "x"))

	assert.Equal(t, 24*3600, service.GetSessionTTL())
	assert.Equal(t, "profefranko.com", service.GetCookieDomain())
	assert.True(t, service.GetCookieSecure())
}
