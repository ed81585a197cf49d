package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/profefranko/profefranko-api/config"
	"github.com/profefranko/profefranko-api/internal/mailer"
	"github.com/profefranko/profefranko-api/internal/models"
	"github.com/profefranko/profefranko-api/internal/notify"
	"github.com/profefranko/profefranko-api/internal/repository"
	apperrors "github.com/profefranko/profefranko-api/pkg/errors"
	"github.com/profefranko/profefranko-api/pkg/httpclient"
	"github.com/profefranko/profefranko-api/pkg/logger"
	"github.com/profefranko/profefranko-api/pkg/metrics"
	"github.com/profefranko/profefranko-api/pkg/recaptcha"
	"github.com/profefranko/profefranko-api/pkg/trigger"
)

// ContactService runs the contact form pipeline: captcha (when configured),
// compose, dispatch, then best-effort persistence and webhook trigger.
type ContactService struct {
	composer          *notify.Composer
	mailer            mailer.Mailer
	submissionRepo    repository.SubmissionRepository
	invalidator       CacheInvalidator
	config            *config.Config
	httpClient        httpclient.Client
	recaptchaVerifier *recaptcha.Verifier
}

// NewContactService creates a new contact service instance
func NewContactService(
	composer *notify.Composer,
	m mailer.Mailer,
	submissionRepo repository.SubmissionRepository,
	invalidator CacheInvalidator,
	cfg *config.Config,
	httpClient httpclient.Client,
) *ContactService {
	return &ContactService{
		composer:          composer,
		mailer:            m,
		submissionRepo:    submissionRepo,
		invalidator:       invalidator,
		config:            cfg,
		httpClient:        httpClient,
		recaptchaVerifier: recaptcha.NewVerifier(cfg.ReCAPTCHA.SecretKey, httpClient),
	}
}

// Submit processes one normalized contact submission. Mail delivery is the
// primary channel: composition or dispatch failure fails the whole request,
// while a failed database insert after a successful send is only logged.
func (s *ContactService) Submit(ctx context.Context, sub models.ContactSubmission, captchaToken string) error {
	if !sub.HasRequiredFields() {
		metrics.ContactSubmissions.WithLabelValues("invalid").Inc()
		return apperrors.InvalidInputError("contact", "missing required fields")
	}

	if s.recaptchaVerifier.Enabled() {
		if err := s.recaptchaVerifier.Verify(captchaToken); err != nil {
			metrics.ContactSubmissions.WithLabelValues("captcha_failed").Inc()
			logger.Warn("ReCAPTCHA verification failed", zap.Error(err))
			return fmt.Errorf("captcha: %w", apperrors.ErrUnauthorized)
		}
	}

	msg, err := s.composer.ComposeContact(sub)
	if err != nil {
		metrics.ContactSubmissions.WithLabelValues("error").Inc()
		metrics.MailDeliveries.WithLabelValues("contact", "compose_error").Inc()
		logger.Error("Failed to compose contact notification", zap.Error(err))
		return err
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		metrics.ContactSubmissions.WithLabelValues("error").Inc()
		metrics.MailDeliveries.WithLabelValues("contact", "error").Inc()
		logger.Error("Failed to dispatch contact notification",
			zap.Error(err),
			zap.String("submitter", sub.Email))
		return err
	}
	metrics.MailDeliveries.WithLabelValues("contact", "success").Inc()

	s.persist(ctx, sub)

	metrics.ContactSubmissions.WithLabelValues("success").Inc()
	return nil
}

// persist stores the inquiry and fires the created trigger. The mail already
// went out at this point, so failures here never surface to the submitter.
func (s *ContactService) persist(ctx context.Context, sub models.ContactSubmission) {
	if s.submissionRepo == nil {
		return
	}

	reference, err := s.submissionRepo.CreateContactInquiry(ctx, sub)
	if err != nil {
		logger.Error("Failed to store contact inquiry after dispatch",
			zap.Error(err),
			zap.String("submitter", sub.Email))
		return
	}

	if s.invalidator != nil {
		s.invalidator.Invalidate()
	}

	trigger.CallAsync(s.config.EventTriggers.ContactCreatedTriggerURL, reference, s.httpClient)
}
