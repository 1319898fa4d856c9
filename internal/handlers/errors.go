package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"sitebuilder-backend/internal/editor"
	"sitebuilder-backend/internal/selector"
	"sitebuilder-backend/internal/service"
	"sitebuilder-backend/pkg/logger"
)

// statusFor maps domain errors onto HTTP statuses. Anything unrecognised is a 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrPageNotFound),
		errors.Is(err, service.ErrDraftNotFound),
		errors.Is(err, editor.ErrSectionNotFound),
		errors.Is(err, service.ErrInvalidAvatarKey):
		return http.StatusNotFound
	case errors.Is(err, service.ErrVersionConflict),
		errors.Is(err, service.ErrSlugTaken):
		return http.StatusConflict
	case errors.Is(err, service.ErrInvalidSlug),
		errors.Is(err, selector.ErrTypeNotOffered),
		errors.Is(err, selector.ErrUnknownCategory):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error(err, "Request failed", map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.FullPath(),
		})
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func bindJSON(c *gin.Context, dest interface{}) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}
