package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guide-directory-api/internal/gateway"
	"github.com/guide-directory-api/internal/repository"
	"github.com/guide-directory-api/internal/service"
	"github.com/rs/zerolog"
)

// respondError maps the service error taxonomy to HTTP status codes
func respondError(c *gin.Context, log zerolog.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "guide record not found"})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "incorrect credentials"})
	case errors.Is(err, repository.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "directory changed since load, retry the action"})
	case errors.Is(err, gateway.ErrBackendUnavailable):
		log.Error().Err(err).Msg("Backend unavailable")
		c.JSON(http.StatusBadGateway, gin.H{"error": "backing store unavailable"})
	default:
		log.Error().Err(err).Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
