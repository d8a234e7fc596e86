package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/ridepool/ridepool/internal/pkg/middleware"
	"github.com/ridepool/ridepool/internal/pkg/models"
	"github.com/ridepool/ridepool/services/bookings/handler/http"
)

// Handler coordinates the protocol handlers for the booking service
type Handler struct {
	bookingHandler *http.BookingHandler
	cfg            *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(bookingHandler *http.BookingHandler, cfg *models.Config) *Handler {
	return &Handler{
		bookingHandler: bookingHandler,
		cfg:            cfg,
	}
}

// RegisterRoutes registers the booking service routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	protected := e.Group("", middleware.JWTAuthMiddleware(h.cfg.JWT))

	bookingGroup := protected.Group("/bookings")
	bookingGroup.POST("", h.bookingHandler.CreateBooking)
	bookingGroup.GET("", h.bookingHandler.ListMyBookings)
	bookingGroup.GET("/:id", h.bookingHandler.GetBooking)
	bookingGroup.POST("/:id/cancel", h.bookingHandler.CancelBooking)

	protected.GET("/trips/:id/bookings", h.bookingHandler.ListTripBookings)
}
