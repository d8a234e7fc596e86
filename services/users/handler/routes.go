package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/ridepool/ridepool/internal/pkg/middleware"
	"github.com/ridepool/ridepool/internal/pkg/models"
	"github.com/ridepool/ridepool/services/users/handler/http"
)

// Handler coordinates the protocol handlers for the user service
type Handler struct {
	authHandler *http.AuthHandler
	userHandler *http.UserHandler
	cfg         *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	authHandler *http.AuthHandler,
	userHandler *http.UserHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		authHandler: authHandler,
		userHandler: userHandler,
		cfg:         cfg,
	}
}

// RegisterRoutes registers the user service routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Public routes
	authGroup := e.Group("/auth")
	authGroup.POST("/register", h.authHandler.Register)
	authGroup.POST("/login", h.authHandler.Login)

	protected := e.Group("", middleware.JWTAuthMiddleware(h.cfg.JWT))

	userGroup := protected.Group("/users")
	userGroup.GET("/me", h.userHandler.GetMe)
	userGroup.PUT("/me", h.userHandler.UpdateProfile)
	userGroup.GET("/:id", h.userHandler.GetProfile)
	userGroup.GET("/:id/reviews", h.userHandler.ListReviews)

	vehicleGroup := protected.Group("/vehicles")
	vehicleGroup.POST("", h.userHandler.AddVehicle)
	vehicleGroup.PUT("/:id", h.userHandler.UpdateVehicle)
	vehicleGroup.DELETE("/:id", h.userHandler.DeleteVehicle)

	reviewGroup := protected.Group("/reviews")
	reviewGroup.POST("", h.userHandler.CreateReview)
}
