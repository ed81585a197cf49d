package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/profefranko/profefranko-api/internal/models"
	"github.com/profefranko/profefranko-api/internal/normalize"
	"github.com/profefranko/profefranko-api/internal/services"
)

// Fixed public error string for the quote wizard.
const quoteErrSendFailed = "Error al enviar la cotización"

type QuoteHandler struct {
	service services.QuoteServiceInterface
}

func NewQuoteHandler(service services.QuoteServiceInterface) *QuoteHandler {
	return &QuoteHandler{service: service}
}

// SubmitQuote handles POST /api/event-quote. The wizard always posts JSON;
// any failure in the pipeline is a 500 with the fixed public message.
func (h *QuoteHandler) SubmitQuote(c *gin.Context) {
	quote, err := normalize.QuoteFromJSON(c.Request.Body)
	if err != nil {
		respondSubmitError(c, http.StatusInternalServerError, quoteErrSendFailed, err)
		return
	}

	if err := h.service.Submit(c.Request.Context(), quote); err != nil {
		respondSubmitError(c, http.StatusInternalServerError, quoteErrSendFailed, err)
		return
	}

	c.JSON(http.StatusOK, models.SubmitResponse{OK: true})
}
