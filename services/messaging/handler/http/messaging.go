package http

import (
	nethttp "net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ridepool/ridepool/internal/pkg/logger"
	"github.com/ridepool/ridepool/internal/pkg/middleware"
	"github.com/ridepool/ridepool/internal/pkg/models"
	"github.com/ridepool/ridepool/internal/utils"
	"github.com/ridepool/ridepool/services/messaging"
)

// MessagingHandler handles HTTP requests for conversations and messages
type MessagingHandler struct {
	messagingUC messaging.MessagingUC
}

// NewMessagingHandler creates a new messaging handler
func NewMessagingHandler(messagingUC messaging.MessagingUC) *MessagingHandler {
	return &MessagingHandler{messagingUC: messagingUC}
}

// Inbox handles listing the caller's conversations
func (h *MessagingHandler) Inbox(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user context")
	}

	summaries, err := h.messagingUC.Inbox(c.Request().Context(), userID)
	if err != nil {
		return utils.RespondError(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Conversations retrieved successfully", summaries)
}

// OpenConversation handles reading a conversation's full log
func (h *MessagingHandler) OpenConversation(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user context")
	}

	conversationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid conversation ID")
	}

	view, err := h.messagingUC.OpenConversation(c.Request().Context(), userID, conversationID)
	if err != nil {
		return utils.RespondError(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Conversation retrieved successfully", view)
}

// SendMessage handles posting a message into a conversation
func (h *MessagingHandler) SendMessage(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user context")
	}

	conversationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid conversation ID")
	}

	var req models.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	message, err := h.messagingUC.SendMessage(c.Request().Context(), userID, conversationID, &req)
	if err != nil {
		logger.Warn("Message send failed",
			logger.Err(err),
			logger.String("conversation_id", conversationID.String()),
			logger.String("sender_id", userID.String()),
		)
		return utils.RespondError(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusCreated, "Message sent successfully", message)
}

// CreateConversation handles a driver opening a thread with a passenger
func (h *MessagingHandler) CreateConversation(c echo.Context) error {
	driverID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user context")
	}

	var req models.CreateConversationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	conversation, err := h.messagingUC.CreateConversation(c.Request().Context(), driverID, &req)
	if err != nil {
		logger.Warn("Conversation creation failed",
			logger.Err(err),
			logger.String("trip_id", req.TripID.String()),
			logger.String("driver_id", driverID.String()),
		)
		return utils.RespondError(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusCreated, "Conversation created successfully", conversation)
}
