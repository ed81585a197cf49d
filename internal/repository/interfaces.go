package repository

import (
	"context"

	"github.com/profefranko/profefranko-api/internal/models"
)

// SubmissionRepository persists incoming form submissions and serves the
// back-office. Persistence is secondary to mail delivery: callers treat a
// store failure as non-fatal once the notification went out.
type SubmissionRepository interface {
	// CreateContactInquiry stores a contact submission and returns its
	// public reference.
	CreateContactInquiry(ctx context.Context, sub models.ContactSubmission) (string, error)

	// CreateEventQuote stores an event quote submission and returns its
	// public reference.
	CreateEventQuote(ctx context.Context, sub models.EventQuoteSubmission) (string, error)

	// ListContactInquiries returns stored contact inquiries, newest first.
	ListContactInquiries(ctx context.Context, limit, offset int) ([]*models.ContactInquiry, error)

	// ListEventQuotes returns stored event quotes, newest first.
	ListEventQuotes(ctx context.Context, limit, offset int) ([]*models.EventQuote, error)

	// UpdateContactStatus advances a contact inquiry through the follow-up
	// workflow. Returns ErrNotFound when the reference is unknown.
	UpdateContactStatus(ctx context.Context, reference string, status models.SubmissionStatus) error

	// UpdateQuoteStatus advances an event quote through the follow-up
	// workflow. Returns ErrNotFound when the reference is unknown.
	UpdateQuoteStatus(ctx context.Context, reference string, status models.SubmissionStatus) error
}
