package http

import (
	nethttp "net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ridepool/ridepool/internal/pkg/logger"
	"github.com/ridepool/ridepool/internal/pkg/middleware"
	"github.com/ridepool/ridepool/internal/pkg/models"
	"github.com/ridepool/ridepool/internal/utils"
	"github.com/ridepool/ridepool/services/bookings"
)

// BookingHandler handles HTTP requests for booking operations
type BookingHandler struct {
	bookingUC bookings.BookingUC
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingUC bookings.BookingUC) *BookingHandler {
	return &BookingHandler{bookingUC: bookingUC}
}

// CreateBooking handles seat reservation requests
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	seekerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user context")
	}

	var req models.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	booking, err := h.bookingUC.CreateBooking(c.Request().Context(), seekerID, &req)
	if err != nil {
		logger.Warn("Booking creation failed",
			logger.Err(err),
			logger.String("trip_id", req.TripID.String()),
			logger.String("seeker_id", seekerID.String()),
		)
		return utils.RespondError(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusCreated, "Booking confirmed successfully", booking)
}

// CancelBooking handles booking cancellation requests
func (h *BookingHandler) CancelBooking(c echo.Context) error {
	seekerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user context")
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	if err := h.bookingUC.CancelBooking(c.Request().Context(), seekerID, bookingID); err != nil {
		logger.Warn("Booking cancellation failed",
			logger.Err(err),
			logger.String("booking_id", bookingID.String()),
		)
		return utils.RespondError(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Booking cancelled successfully", nil)
}

// GetBooking handles booking retrieval requests
func (h *BookingHandler) GetBooking(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user context")
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	booking, err := h.bookingUC.GetBooking(c.Request().Context(), userID, bookingID)
	if err != nil {
		return utils.RespondError(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Booking retrieved successfully", booking)
}

// ListMyBookings handles listing the caller's bookings
func (h *BookingHandler) ListMyBookings(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user context")
	}

	bookingList, err := h.bookingUC.ListMyBookings(c.Request().Context(), userID)
	if err != nil {
		return utils.RespondError(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Bookings retrieved successfully", bookingList)
}

// ListTripBookings handles listing a trip's bookings for its provider
func (h *BookingHandler) ListTripBookings(c echo.Context) error {
	providerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user context")
	}

	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	bookingList, err := h.bookingUC.ListTripBookings(c.Request().Context(), providerID, tripID)
	if err != nil {
		return utils.RespondError(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Bookings retrieved successfully", bookingList)
}
