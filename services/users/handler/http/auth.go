package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/ridepool/ridepool/internal/pkg/logger"
	"github.com/ridepool/ridepool/internal/pkg/models"
	"github.com/ridepool/ridepool/internal/utils"
	"github.com/ridepool/ridepool/services/users"
)

// AuthHandler handles HTTP requests for registration and login
type AuthHandler struct {
	userUC users.UserUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userUC users.UserUC) *AuthHandler {
	return &AuthHandler{userUC: userUC}
}

// Register handles account creation requests
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.userUC.Register(c.Request().Context(), &req)
	if err != nil {
		logger.Warn("Registration failed",
			logger.Err(err),
			logger.String("email", req.Email),
		)
		return utils.RespondError(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusCreated, "Account created successfully", resp)
}

// Login handles authentication requests
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.userUC.Login(c.Request().Context(), &req)
	if err != nil {
		logger.Warn("Login failed",
			logger.Err(err),
			logger.String("email", req.Email),
		)
		return utils.RespondError(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Authenticated successfully", resp)
}
