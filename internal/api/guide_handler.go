package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guide-directory-api/internal/models"
	"github.com/guide-directory-api/internal/service"
	"github.com/rs/zerolog"
)

// GuideHandler handles the guide directory endpoints
type GuideHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewGuideHandler creates a new GuideHandler
func NewGuideHandler(services *service.Services, log zerolog.Logger) *GuideHandler {
	return &GuideHandler{
		services: services,
		log:      log.With().Str("handler", "guide").Logger(),
	}
}

// List handles GET /v1/guides?city=...
// Returns the directory, optionally filtered by exact city match ("" and
// "ALL" mean unfiltered). Always reads through to the backend.
func (h *GuideHandler) List(c *gin.Context) {
	records, err := h.services.Directory.List(c.Request.Context(), c.Query("city"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"guides": records, "count": len(records)})
}

// createRequest is the add-form payload: one record is created per city
type createRequest struct {
	Cities        []string `json:"cities"`
	FirstName     string   `json:"first_name"`
	LastName      string   `json:"last_name"`
	WorkEmail     string   `json:"work_email"`
	PersonalEmail string   `json:"personal_email"`
}

// Create handles POST /v1/guides
func (h *GuideHandler) Create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	records, err := h.services.Directory.Add(c.Request.Context(), req.Cities, models.GuideFields{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		WorkEmail:     req.WorkEmail,
		PersonalEmail: req.PersonalEmail,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	// Zero selected cities is a deliberate no-op, not an error
	status := http.StatusCreated
	if len(req.Cities) == 0 {
		status = http.StatusOK
	}
	c.JSON(status, gin.H{"guides": records, "count": len(records)})
}

// Update handles PUT /v1/guides/:id
func (h *GuideHandler) Update(c *gin.Context) {
	var fields models.GuideFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	records, err := h.services.Directory.Update(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"guides": records, "count": len(records)})
}

// Delete handles DELETE /v1/guides/:id
func (h *GuideHandler) Delete(c *gin.Context) {
	records, err := h.services.Directory.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"guides": records, "count": len(records)})
}

// Mailto handles GET /v1/guides/:id/mailto?trip_code=...&date=...&bus=...
// Builds the compose link; nothing is sent from the server.
func (h *GuideHandler) Mailto(c *gin.Context) {
	link, err := h.services.Directory.MailtoLink(
		c.Request.Context(),
		c.Param("id"),
		c.Query("trip_code"),
		c.Query("date"),
		c.Query("bus"),
	)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recipients": link.Recipients,
		"subject":    link.Subject,
		"body":       link.Body,
		"uri":        link.URI(),
	})
}
