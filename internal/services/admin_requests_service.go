package services

import (
	"context"

	"github.com/profefranko/profefranko-api/internal/cache"
	"github.com/profefranko/profefranko-api/internal/models"
	"github.com/profefranko/profefranko-api/internal/repository"
	apperrors "github.com/profefranko/profefranko-api/pkg/errors"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// AdminRequestsService serves the back-office listing and status workflow
// over stored submissions, with a short-TTL cache in front of the listings.
type AdminRequestsService struct {
	submissionRepo repository.SubmissionRepository
	listingCache   *cache.SubmissionsCache
}

func NewAdminRequestsService(submissionRepo repository.SubmissionRepository, listingCache *cache.SubmissionsCache) *AdminRequestsService {
	return &AdminRequestsService{
		submissionRepo: submissionRepo,
		listingCache:   listingCache,
	}
}

// ListContactInquiries returns a page of stored contact inquiries.
func (s *AdminRequestsService) ListContactInquiries(ctx context.Context, limit, offset int) ([]*models.ContactInquiry, error) {
	if s.submissionRepo == nil {
		return nil, apperrors.InternalError("submission storage not configured")
	}
	limit, offset = clampPage(limit, offset)

	if page, ok := s.listingCache.GetContactPage(limit, offset); ok {
		return page, nil
	}

	page, err := s.submissionRepo.ListContactInquiries(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	s.listingCache.SetContactPage(limit, offset, page)
	return page, nil
}

// ListEventQuotes returns a page of stored event quotes.
func (s *AdminRequestsService) ListEventQuotes(ctx context.Context, limit, offset int) ([]*models.EventQuote, error) {
	if s.submissionRepo == nil {
		return nil, apperrors.InternalError("submission storage not configured")
	}
	limit, offset = clampPage(limit, offset)

	if page, ok := s.listingCache.GetQuotePage(limit, offset); ok {
		return page, nil
	}

	page, err := s.submissionRepo.ListEventQuotes(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	s.listingCache.SetQuotePage(limit, offset, page)
	return page, nil
}

// UpdateContactStatus advances a contact inquiry through the workflow.
func (s *AdminRequestsService) UpdateContactStatus(ctx context.Context, reference, status string) error {
	if s.submissionRepo == nil {
		return apperrors.InternalError("submission storage not configured")
	}
	if !models.ValidSubmissionStatus(status) {
		return apperrors.InvalidInputError("status", "unknown status value")
	}

	if err := s.submissionRepo.UpdateContactStatus(ctx, reference, models.SubmissionStatus(status)); err != nil {
		return err
	}

	s.listingCache.Invalidate()
	return nil
}

// UpdateQuoteStatus advances an event quote through the workflow.
func (s *AdminRequestsService) UpdateQuoteStatus(ctx context.Context, reference, status string) error {
	if s.submissionRepo == nil {
		return apperrors.InternalError("submission storage not configured")
	}
	if !models.ValidSubmissionStatus(status) {
		return apperrors.InvalidInputError("status", "unknown status value")
	}

	if err := s.submissionRepo.UpdateQuoteStatus(ctx, reference, models.SubmissionStatus(status)); err != nil {
		return err
	}

	s.listingCache.Invalidate()
	return nil
}

// Invalidate implements CacheInvalidator for the submission services.
func (s *AdminRequestsService) Invalidate() {
	s.listingCache.Invalidate()
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
