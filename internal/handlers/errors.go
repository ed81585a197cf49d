package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/profefranko/profefranko-api/internal/models"
)

// attachError attaches err to the gin context so the observability middleware
// can include the reason in the request log. c.Error() returns *gin.Error (not
// the error interface), so we suppress errcheck here intentionally.
func attachError(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err) //nolint:errcheck
	}
}

// respondError sends an error JSON response and attaches the error to the gin
// context so the observability middleware can include the reason in the log.
func respondError(c *gin.Context, status int, message string, err error) {
	attachError(c, err)
	c.JSON(status, gin.H{"error": message})
}

// respondSubmitError sends the public forms' uniform failure shape. The
// message is one of the fixed Spanish strings the site frontend matches on.
func respondSubmitError(c *gin.Context, status int, message string, err error) {
	attachError(c, err)
	c.JSON(status, models.SubmitResponse{OK: false, Error: message})
}
