package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/profefranko/profefranko-api/internal/models"
	"github.com/profefranko/profefranko-api/internal/notify"
)

// MockMailer is a mock implementation of mailer.Mailer
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, msg *notify.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

// MockSubmissionRepository is a mock implementation of repository.SubmissionRepository
type MockSubmissionRepository struct {
	mock.Mock
}

func (m *MockSubmissionRepository) CreateContactInquiry(ctx context.Context, sub models.ContactSubmission) (string, error) {
	args := m.Called(ctx, sub)
	return args.String(0), args.Error(1)
}

func (m *MockSubmissionRepository) CreateEventQuote(ctx context.Context, sub models.EventQuoteSubmission) (string, error) {
	args := m.Called(ctx, sub)
	return args.String(0), args.Error(1)
}

func (m *MockSubmissionRepository) ListContactInquiries(ctx context.Context, limit, offset int) ([]*models.ContactInquiry, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ContactInquiry), args.Error(1)
}

func (m *MockSubmissionRepository) ListEventQuotes(ctx context.Context, limit, offset int) ([]*models.EventQuote, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.EventQuote), args.Error(1)
}

func (m *MockSubmissionRepository) UpdateContactStatus(ctx context.Context, reference string, status models.SubmissionStatus) error {
	args := m.Called(ctx, reference, status)
	return args.Error(0)
}

func (m *MockSubmissionRepository) UpdateQuoteStatus(ctx context.Context, reference string, status models.SubmissionStatus) error {
	args := m.Called(ctx, reference, status)
	return args.Error(0)
}

// MockInvalidator is a mock implementation of CacheInvalidator
type MockInvalidator struct {
	mock.Mock
}

func (m *MockInvalidator) Invalidate() {
	m.Called()
}
