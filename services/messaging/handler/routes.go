package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/ridepool/ridepool/internal/pkg/middleware"
	"github.com/ridepool/ridepool/internal/pkg/models"
	"github.com/ridepool/ridepool/services/messaging/handler/http"
)

// Handler coordinates the protocol handlers for the messaging service
type Handler struct {
	messagingHandler *http.MessagingHandler
	cfg              *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(messagingHandler *http.MessagingHandler, cfg *models.Config) *Handler {
	return &Handler{
		messagingHandler: messagingHandler,
		cfg:              cfg,
	}
}

// RegisterRoutes registers the messaging service routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	protected := e.Group("", middleware.JWTAuthMiddleware(h.cfg.JWT))

	conversationGroup := protected.Group("/conversations")
	conversationGroup.GET("", h.messagingHandler.Inbox)
	conversationGroup.POST("", h.messagingHandler.CreateConversation)
	conversationGroup.GET("/:id", h.messagingHandler.OpenConversation)
	conversationGroup.POST("/:id/messages", h.messagingHandler.SendMessage)
}
