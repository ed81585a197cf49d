package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/profefranko/profefranko-api/internal/models"
	"github.com/profefranko/profefranko-api/internal/services"
	apperrors "github.com/profefranko/profefranko-api/pkg/errors"
)

// AdminRequestsHandler serves the back-office listing and status endpoints.
// The same handler backs the cookie-authenticated admin routes and the
// token-authenticated internal API.
type AdminRequestsHandler struct {
	service services.AdminRequestsServiceInterface
}

func NewAdminRequestsHandler(service services.AdminRequestsServiceInterface) *AdminRequestsHandler {
	return &AdminRequestsHandler{service: service}
}

// ListContacts handles GET .../contacts?limit=&offset=
func (h *AdminRequestsHandler) ListContacts(c *gin.Context) {
	limit, offset := parsePage(c)

	inquiries, err := h.service.ListContactInquiries(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to list contact inquiries", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"contacts": inquiries, "count": len(inquiries)})
}

// ListQuotes handles GET .../quotes?limit=&offset=
func (h *AdminRequestsHandler) ListQuotes(c *gin.Context) {
	limit, offset := parsePage(c)

	quotes, err := h.service.ListEventQuotes(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to list event quotes", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"quotes": quotes, "count": len(quotes)})
}

// UpdateContactStatus handles PUT .../contacts/:reference/status
func (h *AdminRequestsHandler) UpdateContactStatus(c *gin.Context) {
	h.updateStatus(c, h.service.UpdateContactStatus)
}

// UpdateQuoteStatus handles PUT .../quotes/:reference/status
func (h *AdminRequestsHandler) UpdateQuoteStatus(c *gin.Context) {
	h.updateStatus(c, h.service.UpdateQuoteStatus)
}

func (h *AdminRequestsHandler) updateStatus(c *gin.Context, update func(ctx context.Context, reference, status string) error) {
	reference := c.Param("reference")

	var req models.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid status payload", err)
		return
	}

	if err := update(c.Request.Context(), reference, req.Status); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidInput):
			respondError(c, http.StatusBadRequest, "Unknown status value", err)
		case errors.Is(err, apperrors.ErrNotFound):
			respondError(c, http.StatusNotFound, "Submission not found", err)
		default:
			respondError(c, http.StatusInternalServerError, "Failed to update status", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "reference": reference, "status": req.Status})
}

func parsePage(c *gin.Context) (int, int) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil {
		limit = 50
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil {
		offset = 0
	}
	return limit, offset
}
