package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	mailerConfigured bool
}

func NewHealthHandler(mailerConfigured bool) *HealthHandler {
	return &HealthHandler{
		mailerConfigured: mailerConfigured,
	}
}

func (h *HealthHandler) Healthcheck(c *gin.Context) {
	c.Header("Cache-Control", "no-cache, no-store, max-age=0, must-revalidate")

	// Without a mail transport the whole pipeline is dead
	if !h.mailerConfigured {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unavailable",
			"reason": "mail transport not configured",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
