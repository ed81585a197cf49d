package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"github.com/profefranko/profefranko-api/internal/models"
	"github.com/profefranko/profefranko-api/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)

	// Initialize logger for tests
	if err := logger.Initialize(logger.Config{
		Level:       "debug",
		Environment: "development",
	}); err != nil {
		panic(err)
	}
}

// MockContactService is a mock implementation of ContactServiceInterface
type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) Submit(ctx context.Context, sub models.ContactSubmission, captchaToken string) error {
	args := m.Called(ctx, sub, captchaToken)
	return args.Error(0)
}

// MockQuoteService is a mock implementation of QuoteServiceInterface
type MockQuoteService struct {
	mock.Mock
}

func (m *MockQuoteService) Submit(ctx context.Context, quote models.EventQuoteSubmission) error {
	args := m.Called(ctx, quote)
	return args.Error(0)
}

// MockAdminRequestsService is a mock implementation of AdminRequestsServiceInterface
type MockAdminRequestsService struct {
	mock.Mock
}

func (m *MockAdminRequestsService) ListContactInquiries(ctx context.Context, limit, offset int) ([]*models.ContactInquiry, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ContactInquiry), args.Error(1)
}

func (m *MockAdminRequestsService) ListEventQuotes(ctx context.Context, limit, offset int) ([]*models.EventQuote, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.EventQuote), args.Error(1)
}

func (m *MockAdminRequestsService) UpdateContactStatus(ctx context.Context, reference, status string) error {
	args := m.Called(ctx, reference, status)
	return args.Error(0)
}

func (m *MockAdminRequestsService) UpdateQuoteStatus(ctx context.Context, reference, status string) error {
	args := m.Called(ctx, reference, status)
	return args.Error(0)
}
