package services

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/profefranko/profefranko-api/config"
	"github.com/profefranko/profefranko-api/internal/models"
	"github.com/profefranko/profefranko-api/pkg/jwt"
	"github.com/profefranko/profefranko-api/pkg/logger"
)

var (
	ErrAdminInvalidCredentials = errors.New("invalid email or password")
	ErrAdminJWTSecretNotSet    = errors.New("JWT secret not configured")
)

// AdminAuthService handles back-office login for the promoter. There is a
// single admin account, configured through ADMIN_EMAIL and
// ADMIN_PASSWORD_HASH (bcrypt).
type AdminAuthService struct {
	config       *config.Config
	tokenManager *jwt.TokenManager
}

func NewAdminAuthService(cfg *config.Config) *AdminAuthService {
	var tokenManager *jwt.TokenManager
	if cfg.AdminSession.JWTSecret != "" {
		tokenManager = jwt.NewTokenManager(
			cfg.AdminSession.JWTSecret,
			cfg.AdminSession.JWTIssuer,
			cfg.AdminSession.SessionTTLHours,
		)
	}

	return &AdminAuthService{
		config:       cfg,
		tokenManager: tokenManager,
	}
}

// Login checks the credentials and returns the session plus a signed JWT for
// the session cookie.
func (s *AdminAuthService) Login(ctx context.Context, email, password string) (*models.AdminSession, string, error) {
	if s.tokenManager == nil {
		return nil, "", ErrAdminJWTSecretNotSet
	}

	if !jwt.TimingSafeCompare(email, s.config.AdminSession.Email) {
		// Burn a bcrypt comparison anyway so unknown emails cost the same
		// as wrong passwords.
		_ = bcrypt.CompareHashAndPassword([]byte(s.config.AdminSession.PasswordHash), []byte(password))
		logger.Warn("Admin login attempt with unknown email", zap.String("email", email))
		return nil, "", ErrAdminInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.config.AdminSession.PasswordHash), []byte(password)); err != nil {
		logger.Warn("Admin login attempt with wrong password", zap.String("email", email))
		return nil, "", ErrAdminInvalidCredentials
	}

	session := &models.AdminSession{
		Email: s.config.AdminSession.Email,
		Name:  "Profe Franko",
	}

	token, err := s.tokenManager.GenerateToken(session.Email, session.Name)
	if err != nil {
		logger.Error("Failed to generate admin session token", zap.Error(err))
		return nil, "", err
	}

	logger.Info("Admin logged in", zap.String("email", session.Email))
	return session, token, nil
}

// ValidateSession parses a session cookie value back into a session.
func (s *AdminAuthService) ValidateSession(ctx context.Context, token string) (*models.AdminSession, error) {
	if s.tokenManager == nil {
		return nil, ErrAdminJWTSecretNotSet
	}

	claims, err := s.tokenManager.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	return &models.AdminSession{Email: claims.Email, Name: claims.Name}, nil
}

// GetTokenManager returns the token manager, nil when JWT_SECRET is not set.
func (s *AdminAuthService) GetTokenManager() *jwt.TokenManager {
	return s.tokenManager
}

// GetSessionTTL returns the session lifetime in seconds, for cookie max-age.
func (s *AdminAuthService) GetSessionTTL() int {
	return s.config.AdminSession.SessionTTLHours * 3600
}

// GetCookieDomain returns the configured session cookie domain.
func (s *AdminAuthService) GetCookieDomain() string {
	return s.config.AdminSession.CookieDomain
}

// GetCookieSecure reports whether the session cookie requires HTTPS.
func (s *AdminAuthService) GetCookieSecure() bool {
	return s.config.AdminSession.CookieSecure
}
