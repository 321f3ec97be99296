package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guide-directory-api/internal/models"
	"github.com/guide-directory-api/internal/service"
	"github.com/rs/zerolog"
)

// ReferenceHandler handles the lookup-list endpoints
type ReferenceHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewReferenceHandler creates a new ReferenceHandler
func NewReferenceHandler(services *service.Services, log zerolog.Logger) *ReferenceHandler {
	return &ReferenceHandler{
		services: services,
		log:      log.With().Str("handler", "reference").Logger(),
	}
}

// TripCodes handles GET /v1/reference/trip-codes
func (h *ReferenceHandler) TripCodes(c *gin.Context) {
	respondList(c, h.services.Reference.TripCodes(c.Request.Context()))
}

// Cities handles GET /v1/reference/cities
func (h *ReferenceHandler) Cities(c *gin.Context) {
	respondList(c, h.services.Reference.Cities(c.Request.Context()))
}

// respondList renders a reference list. An unavailable list is still a 200
// with empty values, flagged so the UI can warn that it may not be
// confirmed empty.
func respondList(c *gin.Context, list models.ReferenceList) {
	c.JSON(http.StatusOK, gin.H{
		"values":      list.Values,
		"unavailable": !list.Available,
	})
}
