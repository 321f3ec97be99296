package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guide-directory-api/internal/config"
	"github.com/guide-directory-api/internal/service"
	"github.com/rs/zerolog"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	// Handlers
	guideHandler := NewGuideHandler(services, log)
	authHandler := NewAuthHandler(services, log)
	referenceHandler := NewReferenceHandler(services, log)

	// Health check
	router.GET("/health", healthCheck)
	router.GET("/metrics", metricsHandler(services))

	// API v1
	v1 := router.Group("/v1")
	{
		// Public listing surface
		guides := v1.Group("/guides")
		{
			guides.GET("", guideHandler.List)
			guides.GET("/:id/mailto", guideHandler.Mailto)
		}

		// Selection-control reference lists
		reference := v1.Group("/reference")
		{
			reference.GET("/trip-codes", referenceHandler.TripCodes)
			reference.GET("/cities", referenceHandler.Cities)
		}

		// Admin session
		v1.POST("/session", authHandler.Login)
		v1.DELETE("/session", authHandler.RequireAdmin(), authHandler.Logout)

		// Admin mutations
		admin := v1.Group("/guides", authHandler.RequireAdmin())
		{
			admin.POST("", guideHandler.Create)
			admin.PUT("/:id", guideHandler.Update)
			admin.DELETE("/:id", guideHandler.Delete)
		}
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "guide-directory-api",
	})
}

// metricsHandler returns directory and reference-list sizes
func metricsHandler(services *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		guidesCount, _ := services.Directory.Count(ctx)
		tripCodes := services.Reference.TripCodes(ctx)
		cities := services.Reference.Cities(ctx)

		c.JSON(http.StatusOK, gin.H{
			"directory": gin.H{
				"guides":     guidesCount,
				"trip_codes": len(tripCodes.Values),
				"cities":     len(cities.Values),
			},
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
