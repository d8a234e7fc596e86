package messaging

import (
	"context"

	"github.com/google/uuid"

	"github.com/ridepool/ridepool/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/ridepool/ridepool/services/messaging MessagingRepo

// MessagingRepo provides data access for conversations and messages
type MessagingRepo interface {
	// GetConversation retrieves a conversation by id. Returns (nil, nil)
	// when absent.
	GetConversation(ctx context.Context, id uuid.UUID) (*models.Conversation, error)

	// GetConversationByTriple retrieves the conversation for a
	// (trip, driver, passenger) combination. Returns (nil, nil) when absent.
	GetConversationByTriple(ctx context.Context, tripID, driverID, passengerID uuid.UUID) (*models.Conversation, error)

	// CreateConversation inserts a new conversation
	CreateConversation(ctx context.Context, conversation *models.Conversation) error

	// ListConversationSummaries returns the user's inbox rows, newest
	// activity first, with last message preview and unread count.
	ListConversationSummaries(ctx context.Context, userID uuid.UUID) ([]models.ConversationSummary, error)

	// OpenMessageLog marks the unread messages the viewer did not author
	// as read and returns the conversation's messages, oldest first, in
	// one transaction.
	OpenMessageLog(ctx context.Context, conversationID, viewerID uuid.UUID) ([]models.Message, error)

	// CreateMessage appends a message and bumps the conversation's
	// last-message timestamp in one transaction.
	CreateMessage(ctx context.Context, message *models.Message) error

	// GetTrip retrieves a trip by id. Returns (nil, nil) when absent.
	GetTrip(ctx context.Context, id uuid.UUID) (*models.Trip, error)
}
