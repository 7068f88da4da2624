package handlers

import (
	"errors"
	"net/http"

	"github.com/alimgiray/gexplore/internal/models"
	"github.com/alimgiray/gexplore/internal/services"
	"github.com/alimgiray/gexplore/pkg/logger"
	"github.com/gin-gonic/gin"
)

// statusFor maps domain errors onto HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrUnknownTrendingPeriod),
		errors.Is(err, models.ErrUnknownProfileTab),
		errors.Is(err, models.ErrUnknownRepositoryTab),
		errors.Is(err, models.ErrUnknownTopic),
		errors.Is(err, services.ErrInvalidProfile),
		errors.Is(err, services.ErrInvalidSettings),
		errors.Is(err, services.ErrEmptySearchQuery):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrGitHubNotConfigured):
		return http.StatusConflict
	case errors.Is(err, services.ErrIncompleteActivityLog):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as a JSON error. Internal errors are logged and
// replaced by message.
func respondError(c *gin.Context, err error, message string) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.WithError(err).WithField("path", c.Request.URL.Path).Error(message)
		c.JSON(status, gin.H{"error": message})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}
