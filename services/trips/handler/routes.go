package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/ridepool/ridepool/internal/pkg/middleware"
	"github.com/ridepool/ridepool/internal/pkg/models"
	"github.com/ridepool/ridepool/services/trips/handler/http"
)

// Handler coordinates the protocol handlers for the trip service
type Handler struct {
	tripHandler *http.TripHandler
	cfg         *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(tripHandler *http.TripHandler, cfg *models.Config) *Handler {
	return &Handler{
		tripHandler: tripHandler,
		cfg:         cfg,
	}
}

// RegisterRoutes registers the trip service routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	protected := e.Group("", middleware.JWTAuthMiddleware(h.cfg.JWT))

	tripGroup := protected.Group("/trips")
	tripGroup.POST("", h.tripHandler.CreateTrip)
	tripGroup.GET("/mine", h.tripHandler.ListMyTrips)
	tripGroup.GET("/booked", h.tripHandler.ListMyBookedTrips)
	tripGroup.GET("/nearby", h.tripHandler.NearbyTrips)
	tripGroup.GET("/:id", h.tripHandler.GetTrip)
	tripGroup.PUT("/:id", h.tripHandler.UpdateTrip)
	tripGroup.POST("/:id/start", h.tripHandler.StartTrip)
	tripGroup.POST("/:id/complete", h.tripHandler.CompleteTrip)
	tripGroup.POST("/:id/cancel", h.tripHandler.CancelTrip)
}
