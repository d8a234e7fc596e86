package messaging

import (
	"context"

	"github.com/google/uuid"

	"github.com/ridepool/ridepool/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/ridepool/ridepool/services/messaging MessagingUC

// MessagingUC defines the conversation and messaging operations
type MessagingUC interface {
	// Inbox returns the user's conversations, newest activity first
	Inbox(ctx context.Context, userID uuid.UUID) ([]models.ConversationSummary, error)

	// OpenConversation returns a conversation with its full log and
	// marks the messages the viewer had not read yet as read.
	OpenConversation(ctx context.Context, userID, conversationID uuid.UUID) (*models.ConversationView, error)

	// SendMessage appends a message from a participant
	SendMessage(ctx context.Context, userID, conversationID uuid.UUID, req *models.SendMessageRequest) (*models.Message, error)

	// CreateConversation opens (or reuses) a thread between a trip's
	// provider and a passenger. Driver-initiated.
	CreateConversation(ctx context.Context, driverID uuid.UUID, req *models.CreateConversationRequest) (*models.Conversation, error)

	// PostBookingNotice posts a notice from the passenger into the
	// conversation linked to a freshly created booking.
	PostBookingNotice(ctx context.Context, event *models.BookingCreatedEvent) error
}
