package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/profefranko/profefranko-api/config"
	"github.com/profefranko/profefranko-api/internal/models"
	"github.com/profefranko/profefranko-api/internal/notify"
	"github.com/profefranko/profefranko-api/internal/repository"
	"github.com/profefranko/profefranko-api/internal/services"
	apperrors "github.com/profefranko/profefranko-api/pkg/errors"
	"github.com/profefranko/profefranko-api/pkg/httpclient"
)

func quoteFixture() models.EventQuoteSubmission {
	return models.EventQuoteSubmission{
		ClientName:         "María Paz",
		ClientEmail:        "maria@example.com",
		ClientPhone:        "+56911112222",
		EventDate:          "2026-10-12",
		EventTime:          "19:00",
		EventType:          models.EventTypeAmateur,
		NumberOfFights:     4,
		ExpectedAttendance: 150,
		BudgetRange:        "0-5000 USD",
		VenueName:          "Gimnasio Municipal",
		VenueAddress:       "Av. Libertad 123",
		RingNeeded:         true,
	}
}

func newQuoteService(m *MockMailer, repo repository.SubmissionRepository, inv services.CacheInvalidator) *services.QuoteService {
	composer := notify.NewComposer("", "https://profefranko.com")
	return services.NewQuoteService(composer, m, repo, inv, nil, &config.Config{}, httpclient.NewStandardClient())
}

func TestQuoteSubmit_Success(t *testing.T) {
	mailer := new(MockMailer)
	repo := new(MockSubmissionRepository)
	inv := new(MockInvalidator)

	mailer.On("Send", mock.Anything, mock.MatchedBy(func(msg *notify.Message) bool {
		return msg.Subject == "Nueva cotización de evento - María Paz" &&
			msg.ReplyTo == "maria@example.com" &&
			msg.PDF.Filename == notify.QuotePDFFilename
	})).Return(nil)
	repo.On("CreateEventQuote", mock.Anything, quoteFixture()).Return("ref-9", nil)
	inv.On("Invalidate").Return()

	service := newQuoteService(mailer, repo, inv)
	err := service.Submit(context.Background(), quoteFixture())

	require.NoError(t, err)
	mailer.AssertExpectations(t)
	repo.AssertExpectations(t)
	inv.AssertExpectations(t)
}

func TestQuoteSubmit_DispatchFailureSurfaces(t *testing.T) {
	mailer := new(MockMailer)
	repo := new(MockSubmissionRepository)

	mailer.On("Send", mock.Anything, mock.Anything).Return(apperrors.DispatchError(assert.AnError))

	service := newQuoteService(mailer, repo, nil)
	err := service.Submit(context.Background(), quoteFixture())

	assert.ErrorIs(t, err, apperrors.ErrDispatch)
	repo.AssertNotCalled(t, "CreateEventQuote")
}

func TestQuoteSubmit_PersistFailureDoesNotFailRequest(t *testing.T) {
	mailer := new(MockMailer)
	repo := new(MockSubmissionRepository)
	inv := new(MockInvalidator)

	mailer.On("Send", mock.Anything, mock.Anything).Return(nil)
	repo.On("CreateEventQuote", mock.Anything, mock.Anything).Return("", assert.AnError)

	service := newQuoteService(mailer, repo, inv)
	err := service.Submit(context.Background(), quoteFixture())

	require.NoError(t, err)
	inv.AssertNotCalled(t, "Invalidate")
}

func TestQuoteSubmit_NoRepositoryConfigured(t *testing.T) {
	mailer := new(MockMailer)
	mailer.On("Send", mock.Anything, mock.Anything).Return(nil)

	service := newQuoteService(mailer, nil, nil)
	err := service.Submit(context.Background(), quoteFixture())

	require.NoError(t, err)
	mailer.AssertExpectations(t)
}

// An incomplete record still composes and dispatches; absent fields fall back
// to their placeholders in the bodies.
func TestQuoteSubmit_IncompleteRecord(t *testing.T) {
	mailer := new(MockMailer)
	mailer.On("Send", mock.Anything, mock.MatchedBy(func(msg *notify.Message) bool {
		return assert.ObjectsAreEqual("Nueva cotización de evento - ", msg.Subject)
	})).Return(nil)

	service := newQuoteService(mailer, nil, nil)
	err := service.Submit(context.Background(), models.EventQuoteSubmission{})

	require.NoError(t, err)
}
