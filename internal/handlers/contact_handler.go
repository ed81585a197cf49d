package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/profefranko/profefranko-api/internal/models"
	"github.com/profefranko/profefranko-api/internal/normalize"
	"github.com/profefranko/profefranko-api/internal/services"
	apperrors "github.com/profefranko/profefranko-api/pkg/errors"
)

// Fixed public error strings; the site frontend displays these verbatim.
const (
	contactErrMissingFields = "Faltan campos obligatorios."
	contactErrSendFailed    = "No se pudo enviar el mensaje."
	contactErrCaptcha       = "Verificación de captcha fallida."
)

const formParseMaxMemory = 32 << 10 // 32 KB, the forms are tiny

type ContactHandler struct {
	service services.ContactServiceInterface
}

func NewContactHandler(service services.ContactServiceInterface) *ContactHandler {
	return &ContactHandler{service: service}
}

// SubmitContact handles POST /api/contact. The body is either JSON or form
// fields (url-encoded or multipart); both funnel through the normalizer.
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var sub models.ContactSubmission
	var captchaToken string

	if normalize.IsJSONContent(c.ContentType()) {
		var err error
		sub, captchaToken, err = normalize.ContactFromJSON(c.Request.Body)
		if err != nil {
			respondSubmitError(c, http.StatusInternalServerError, contactErrSendFailed, err)
			return
		}
	} else {
		// ParseMultipartForm falls through to ParseForm for url-encoded
		// bodies, so PostForm is populated either way.
		_ = c.Request.ParseMultipartForm(formParseMaxMemory) //nolint:errcheck
		sub, captchaToken = normalize.ContactFromForm(c.Request.PostForm)
	}

	if !sub.HasRequiredFields() {
		respondSubmitError(c, http.StatusBadRequest, contactErrMissingFields, nil)
		return
	}

	if err := h.service.Submit(c.Request.Context(), sub, captchaToken); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUnauthorized):
			respondSubmitError(c, http.StatusBadRequest, contactErrCaptcha, err)
		case errors.Is(err, apperrors.ErrInvalidInput):
			respondSubmitError(c, http.StatusBadRequest, contactErrMissingFields, err)
		default:
			respondSubmitError(c, http.StatusInternalServerError, contactErrSendFailed, err)
		}
		return
	}

	c.JSON(http.StatusOK, models.SubmitResponse{OK: true})
}

// ContactPreflight handles OPTIONS /api/contact. The CORS middleware already
// set the headers; the site only expects an empty 200.
func (h *ContactHandler) ContactPreflight(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{})
}
