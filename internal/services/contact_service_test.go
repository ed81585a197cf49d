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

func contactFixture() models.ContactSubmission {
	return models.ContactSubmission{
		Role:    models.RoleClub,
		Name:    "José Muñoz",
		Email:   "jose@example.com",
		Message: "Quisiera coordinar un entrenamiento.",
	}
}

func newContactService(m *MockMailer, repo repository.SubmissionRepository, inv services.CacheInvalidator) *services.ContactService {
	composer := notify.NewComposer("", "https://profefranko.com")
	return services.NewContactService(composer, m, repo, inv, &config.Config{}, httpclient.NewStandardClient())
}

func TestContactSubmit_Success(t *testing.T) {
	mailer := new(MockMailer)
	repo := new(MockSubmissionRepository)
	inv := new(MockInvalidator)

	mailer.On("Send", mock.Anything, mock.MatchedBy(func(msg *notify.Message) bool {
		return msg.Subject == "Nuevo mensaje de contacto de José Muñoz" &&
			msg.ReplyTo == "jose@example.com" &&
			len(msg.PDF.Content) > 0
	})).Return(nil)
	repo.On("CreateContactInquiry", mock.Anything, contactFixture()).Return("ref-1", nil)
	inv.On("Invalidate").Return()

	service := newContactService(mailer, repo, inv)
	err := service.Submit(context.Background(), contactFixture(), "")

	require.NoError(t, err)
	mailer.AssertExpectations(t)
	repo.AssertExpectations(t)
	inv.AssertExpectations(t)
}

func TestContactSubmit_MissingRequiredFields(t *testing.T) {
	mailer := new(MockMailer)
	service := newContactService(mailer, nil, nil)

	err := service.Submit(context.Background(), models.ContactSubmission{Name: "José"}, "")

	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	mailer.AssertNotCalled(t, "Send")
}

func TestContactSubmit_DispatchFailureSurfaces(t *testing.T) {
	mailer := new(MockMailer)
	repo := new(MockSubmissionRepository)

	mailer.On("Send", mock.Anything, mock.Anything).Return(apperrors.DispatchError(assert.AnError))

	service := newContactService(mailer, repo, nil)
	err := service.Submit(context.Background(), contactFixture(), "")

	assert.ErrorIs(t, err, apperrors.ErrDispatch)
	// Nothing is persisted when the mail never went out
	repo.AssertNotCalled(t, "CreateContactInquiry")
}

func TestContactSubmit_PersistFailureDoesNotFailRequest(t *testing.T) {
	mailer := new(MockMailer)
	repo := new(MockSubmissionRepository)
	inv := new(MockInvalidator)

	mailer.On("Send", mock.Anything, mock.Anything).Return(nil)
	repo.On("CreateContactInquiry", mock.Anything, mock.Anything).Return("", assert.AnError)

	service := newContactService(mailer, repo, inv)
	err := service.Submit(context.Background(), contactFixture(), "")

	// The mail went out, so the submitter still sees success
	require.NoError(t, err)
	inv.AssertNotCalled(t, "Invalidate")
}

func TestContactSubmit_NoRepositoryConfigured(t *testing.T) {
	mailer := new(MockMailer)
	mailer.On("Send", mock.Anything, mock.Anything).Return(nil)

	service := newContactService(mailer, nil, nil)
	err := service.Submit(context.Background(), contactFixture(), "")

	require.NoError(t, err)
	mailer.AssertExpectations(t)
}
