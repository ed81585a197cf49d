package services

import (
	"context"

	"github.com/profefranko/profefranko-api/internal/models"
)

// ContactServiceInterface defines the contact form pipeline
type ContactServiceInterface interface {
	Submit(ctx context.Context, sub models.ContactSubmission, captchaToken string) error
}

// QuoteServiceInterface defines the event quote pipeline
type QuoteServiceInterface interface {
	Submit(ctx context.Context, quote models.EventQuoteSubmission) error
}

// AdminAuthServiceInterface defines back-office authentication
type AdminAuthServiceInterface interface {
	Login(ctx context.Context, email, password string) (*models.AdminSession, string, error)
	ValidateSession(ctx context.Context, token string) (*models.AdminSession, error)
	GetSessionTTL() int
	GetCookieDomain() string
	GetCookieSecure() bool
}

// AdminRequestsServiceInterface defines the back-office submission workflow
type AdminRequestsServiceInterface interface {
	ListContactInquiries(ctx context.Context, limit, offset int) ([]*models.ContactInquiry, error)
	ListEventQuotes(ctx context.Context, limit, offset int) ([]*models.EventQuote, error)
	UpdateContactStatus(ctx context.Context, reference, status string) error
	UpdateQuoteStatus(ctx context.Context, reference, status string) error
}

// CacheInvalidator flushes derived read caches after a submission write.
type CacheInvalidator interface {
	Invalidate()
}

// Ensure services implement their interfaces
var _ ContactServiceInterface = (*ContactService)(nil)
var _ QuoteServiceInterface = (*QuoteService)(nil)
var _ AdminAuthServiceInterface = (*AdminAuthService)(nil)
var _ AdminRequestsServiceInterface = (*AdminRequestsService)(nil)
var _ CacheInvalidator = (*AdminRequestsService)(nil)
