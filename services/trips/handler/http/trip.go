package http

import (
	"context"
	nethttp "net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ridepool/ridepool/internal/pkg/logger"
	"github.com/ridepool/ridepool/internal/pkg/middleware"
	"github.com/ridepool/ridepool/internal/pkg/models"
	"github.com/ridepool/ridepool/internal/utils"
	"github.com/ridepool/ridepool/services/trips"
)

// TripHandler handles HTTP requests for trip operations
type TripHandler struct {
	tripUC trips.TripUC
}

// NewTripHandler creates a new trip handler
func NewTripHandler(tripUC trips.TripUC) *TripHandler {
	return &TripHandler{tripUC: tripUC}
}

// CreateTrip handles trip publication requests
func (h *TripHandler) CreateTrip(c echo.Context) error {
	providerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user context")
	}

	var req models.CreateTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	trip, err := h.tripUC.CreateTrip(c.Request().Context(), providerID, &req)
	if err != nil {
		logger.Warn("Trip creation failed",
			logger.Err(err),
			logger.String("provider_id", providerID.String()),
		)
		return utils.RespondError(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusCreated, "Trip published successfully", trip)
}

// UpdateTrip handles trip edit requests
func (h *TripHandler) UpdateTrip(c echo.Context) error {
	providerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user context")
	}

	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	var req models.UpdateTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	trip, err := h.tripUC.UpdateTrip(c.Request().Context(), providerID, tripID, &req)
	if err != nil {
		return utils.RespondError(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Trip updated successfully", trip)
}

// GetTrip handles trip retrieval requests
func (h *TripHandler) GetTrip(c echo.Context) error {
	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	trip, err := h.tripUC.GetTrip(c.Request().Context(), tripID)
	if err != nil {
		return utils.RespondError(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Trip retrieved successfully", trip)
}

// ListMyTrips handles listing the caller's published trips
func (h *TripHandler) ListMyTrips(c echo.Context) error {
	providerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user context")
	}

	tripList, err := h.tripUC.ListTripsByProvider(c.Request().Context(), providerID)
	if err != nil {
		return utils.RespondError(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Trips retrieved successfully", tripList)
}

// ListMyBookedTrips handles listing trips the caller booked
func (h *TripHandler) ListMyBookedTrips(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user context")
	}

	tripList, err := h.tripUC.ListTripsBookedByUser(c.Request().Context(), userID)
	if err != nil {
		return utils.RespondError(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Trips retrieved successfully", tripList)
}

// StartTrip handles provider start requests
func (h *TripHandler) StartTrip(c echo.Context) error {
	return h.transition(c, h.tripUC.StartTrip, "Trip started successfully")
}

// CompleteTrip handles provider completion requests
func (h *TripHandler) CompleteTrip(c echo.Context) error {
	return h.transition(c, h.tripUC.CompleteTrip, "Trip completed successfully")
}

// CancelTrip handles provider cancellation requests
func (h *TripHandler) CancelTrip(c echo.Context) error {
	return h.transition(c, h.tripUC.CancelTrip, "Trip cancelled successfully")
}

func (h *TripHandler) transition(
	c echo.Context,
	op func(ctx context.Context, providerID, tripID uuid.UUID) (*models.Trip, error),
	message string,
) error {
	providerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user context")
	}

	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	trip, err := op(c.Request().Context(), providerID, tripID)
	if err != nil {
		return utils.RespondError(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, message, trip)
}

// NearbyTrips handles radius lookups over bookable pickups
func (h *TripHandler) NearbyTrips(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid latitude")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid longitude")
	}

	var radiusKm float64
	if raw := c.QueryParam("radius_km"); raw != "" {
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid radius")
		}
	}

	nearby, err := h.tripUC.NearbyTrips(c.Request().Context(), models.Coordinate{Latitude: lat, Longitude: lng}, radiusKm)
	if err != nil {
		return utils.RespondError(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Nearby trips retrieved successfully", nearby)
}
