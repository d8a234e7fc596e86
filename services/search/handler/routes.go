package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/ridepool/ridepool/internal/pkg/middleware"
	"github.com/ridepool/ridepool/internal/pkg/models"
	"github.com/ridepool/ridepool/services/search/handler/http"
)

// Handler coordinates the protocol handlers for the search service
type Handler struct {
	searchHandler *http.SearchHandler
	cfg           *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(searchHandler *http.SearchHandler, cfg *models.Config) *Handler {
	return &Handler{
		searchHandler: searchHandler,
		cfg:           cfg,
	}
}

// RegisterRoutes registers the search service routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	protected := e.Group("", middleware.JWTAuthMiddleware(h.cfg.JWT))

	searchGroup := protected.Group("/search")
	searchGroup.POST("", h.searchHandler.SearchTrips)
	searchGroup.GET("/history", h.searchHandler.GetHistory)
}
