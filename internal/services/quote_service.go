package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/profefranko/profefranko-api/config"
	"github.com/profefranko/profefranko-api/internal/mailer"
	"github.com/profefranko/profefranko-api/internal/models"
	"github.com/profefranko/profefranko-api/internal/notify"
	"github.com/profefranko/profefranko-api/internal/repository"
	"github.com/profefranko/profefranko-api/pkg/httpclient"
	"github.com/profefranko/profefranko-api/pkg/logger"
	"github.com/profefranko/profefranko-api/pkg/metrics"
	"github.com/profefranko/profefranko-api/pkg/retry"
	"github.com/profefranko/profefranko-api/pkg/slug"
	"github.com/profefranko/profefranko-api/pkg/storage"
	"github.com/profefranko/profefranko-api/pkg/trigger"
)

const archiveUploadTimeout = 2 * time.Minute

// QuoteService runs the event quote pipeline: compose, dispatch, then
// best-effort persistence, PDF archiving and webhook trigger.
type QuoteService struct {
	composer       *notify.Composer
	mailer         mailer.Mailer
	submissionRepo repository.SubmissionRepository
	invalidator    CacheInvalidator
	archive        *storage.ArchiveClient
	config         *config.Config
	httpClient     httpclient.Client
}

// NewQuoteService creates a new quote service instance. archive may be nil
// when no bucket is configured.
func NewQuoteService(
	composer *notify.Composer,
	m mailer.Mailer,
	submissionRepo repository.SubmissionRepository,
	invalidator CacheInvalidator,
	archive *storage.ArchiveClient,
	cfg *config.Config,
	httpClient httpclient.Client,
) *QuoteService {
	return &QuoteService{
		composer:       composer,
		mailer:         m,
		submissionRepo: submissionRepo,
		invalidator:    invalidator,
		archive:        archive,
		config:         cfg,
		httpClient:     httpClient,
	}
}

// Submit processes one event quote submission. The wizard enforces step
// completeness client-side, so the payload is taken as sent; the mail either
// dispatches in full or the request fails.
func (s *QuoteService) Submit(ctx context.Context, quote models.EventQuoteSubmission) error {
	msg, err := s.composer.ComposeQuote(quote)
	if err != nil {
		metrics.QuoteSubmissions.WithLabelValues("error").Inc()
		metrics.MailDeliveries.WithLabelValues("quote", "compose_error").Inc()
		logger.Error("Failed to compose quote notification", zap.Error(err))
		return err
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		metrics.QuoteSubmissions.WithLabelValues("error").Inc()
		metrics.MailDeliveries.WithLabelValues("quote", "error").Inc()
		logger.Error("Failed to dispatch quote notification",
			zap.Error(err),
			zap.String("client", quote.ClientEmail))
		return err
	}
	metrics.MailDeliveries.WithLabelValues("quote", "success").Inc()

	reference := s.persist(ctx, quote)
	s.archivePDF(quote, msg, reference)

	metrics.QuoteSubmissions.WithLabelValues("success").Inc()
	return nil
}

// persist stores the quote and fires the created trigger. Returns the public
// reference, or "" when persistence is unavailable or failed.
func (s *QuoteService) persist(ctx context.Context, quote models.EventQuoteSubmission) string {
	if s.submissionRepo == nil {
		return ""
	}

	reference, err := s.submissionRepo.CreateEventQuote(ctx, quote)
	if err != nil {
		logger.Error("Failed to store event quote after dispatch",
			zap.Error(err),
			zap.String("client", quote.ClientEmail))
		return ""
	}

	if s.invalidator != nil {
		s.invalidator.Invalidate()
	}

	trigger.CallAsync(s.config.EventTriggers.QuoteCreatedTriggerURL, reference, s.httpClient)
	return reference
}

// archivePDF uploads the generated PDF to the archive bucket in the
// background. Retried with backoff; failures are logged only.
func (s *QuoteService) archivePDF(quote models.EventQuoteSubmission, msg *notify.Message, reference string) {
	if s.archive == nil {
		return
	}
	if reference == "" {
		reference = time.Now().UTC().Format("20060102-150405")
	}

	key := "quotes/" + slug.ForArchive(quote.ClientName, reference) + ".pdf"
	pdfBytes := msg.PDF.Content

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), archiveUploadTimeout)
		defer cancel()

		err := retry.Do(ctx, retry.ArchiveConfig(), "archiveQuotePDF", func() error {
			_, uploadErr := s.archive.UploadPDF(ctx, pdfBytes, key)
			return uploadErr
		})
		if err != nil {
			logger.Error("Failed to archive quote PDF",
				zap.Error(err),
				zap.String("key", key))
		}
	}()
}
