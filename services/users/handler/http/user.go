package http

import (
	nethttp "net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ridepool/ridepool/internal/pkg/logger"
	"github.com/ridepool/ridepool/internal/pkg/middleware"
	"github.com/ridepool/ridepool/internal/pkg/models"
	"github.com/ridepool/ridepool/internal/utils"
	"github.com/ridepool/ridepool/services/users"
)

// UserHandler handles HTTP requests for profile, vehicle and review operations
type UserHandler struct {
	userUC users.UserUC
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUC users.UserUC) *UserHandler {
	return &UserHandler{userUC: userUC}
}

// GetProfile handles profile retrieval requests
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	profile, err := h.userUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return utils.RespondError(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Profile retrieved successfully", profile)
}

// GetMe returns the authenticated user's own profile
func (h *UserHandler) GetMe(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user context")
	}

	profile, err := h.userUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return utils.RespondError(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Profile retrieved successfully", profile)
}

// UpdateProfile handles profile edit requests
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user context")
	}

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.userUC.UpdateProfile(c.Request().Context(), userID, &req)
	if err != nil {
		logger.Warn("Profile update failed",
			logger.Err(err),
			logger.String("user_id", userID.String()),
		)
		return utils.RespondError(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Profile updated successfully", user)
}

// AddVehicle handles vehicle registration requests
func (h *UserHandler) AddVehicle(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user context")
	}

	var vehicle models.Vehicle
	if err := c.Bind(&vehicle); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	created, err := h.userUC.AddVehicle(c.Request().Context(), userID, &vehicle)
	if err != nil {
		return utils.RespondError(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusCreated, "Vehicle added successfully", created)
}

// UpdateVehicle handles vehicle edit requests
func (h *UserHandler) UpdateVehicle(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user context")
	}

	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid vehicle ID")
	}

	var vehicle models.Vehicle
	if err := c.Bind(&vehicle); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	vehicle.ID = vehicleID

	updated, err := h.userUC.UpdateVehicle(c.Request().Context(), userID, &vehicle)
	if err != nil {
		return utils.RespondError(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Vehicle updated successfully", updated)
}

// DeleteVehicle handles vehicle removal requests
func (h *UserHandler) DeleteVehicle(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user context")
	}

	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid vehicle ID")
	}

	if err := h.userUC.DeleteVehicle(c.Request().Context(), userID, vehicleID); err != nil {
		return utils.RespondError(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Vehicle deleted successfully", nil)
}

// CreateReview handles review submission requests
func (h *UserHandler) CreateReview(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user context")
	}

	var req models.CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	review, err := h.userUC.CreateReview(c.Request().Context(), userID, &req)
	if err != nil {
		logger.Warn("Review submission failed",
			logger.Err(err),
			logger.String("reviewer_id", userID.String()),
			logger.String("trip_id", req.TripID.String()),
		)
		return utils.RespondError(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusCreated, "Review created successfully", review)
}

// ListReviews handles review listing requests for a user
func (h *UserHandler) ListReviews(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	reviews, err := h.userUC.ListReviews(c.Request().Context(), userID)
	if err != nil {
		return utils.RespondError(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Reviews retrieved successfully", reviews)
}
