package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/ridepool/ridepool/internal/pkg/errors"
	"github.com/ridepool/ridepool/internal/pkg/logger"
	"github.com/ridepool/ridepool/internal/pkg/models"
	"github.com/ridepool/ridepool/services/messaging"
)

// messagingUC implements the messaging.MessagingUC interface
type messagingUC struct {
	cfg           *models.Config
	messagingRepo messaging.MessagingRepo
}

// NewMessagingUC creates a new messaging use case
func NewMessagingUC(cfg *models.Config, messagingRepo messaging.MessagingRepo) messaging.MessagingUC {
	return &messagingUC{
		cfg:           cfg,
		messagingRepo: messagingRepo,
	}
}

// Inbox returns the user's conversations, newest activity first
func (uc *messagingUC) Inbox(ctx context.Context, userID uuid.UUID) ([]models.ConversationSummary, error) {
	summaries, err := uc.messagingRepo.ListConversationSummaries(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("failed to list conversations", err)
	}
	return summaries, nil
}

// OpenConversation returns the full message log for a participant.
// Opening the thread is what marks the counterpart's messages as read.
func (uc *messagingUC) OpenConversation(ctx context.Context, userID, conversationID uuid.UUID) (*models.ConversationView, error) {
	conversation, err := uc.loadConversationFor(ctx, userID, conversationID)
	if err != nil {
		return nil, err
	}

	// Marking read and loading the log commit together, so a failed load
	// never leaves messages flagged read without being delivered.
	messageLog, err := uc.messagingRepo.OpenMessageLog(ctx, conversationID, userID)
	if err != nil {
		return nil, apperrors.Internal("failed to load messages", err)
	}

	trip, err := uc.messagingRepo.GetTrip(ctx, conversation.TripID)
	if err != nil {
		return nil, apperrors.Internal("failed to load trip", err)
	}

	view := &models.ConversationView{
		Conversation: conversation,
		Messages:     messageLog,
	}
	if trip != nil {
		view.TripRoute = trip.PickupLocation + " - " + trip.DropoffLocation
	}

	return view, nil
}

// SendMessage appends a message from a participant
func (uc *messagingUC) SendMessage(ctx context.Context, userID, conversationID uuid.UUID, req *models.SendMessageRequest) (*models.Message, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, apperrors.Validation("message content is required")
	}

	if _, err := uc.loadConversationFor(ctx, userID, conversationID); err != nil {
		return nil, err
	}

	message := &models.Message{
		ID:             uuid.New(),
		ConversationID: conversationID,
		SenderID:       userID,
		Content:        content,
		SentAt:         time.Now().UTC(),
	}

	if err := uc.messagingRepo.CreateMessage(ctx, message); err != nil {
		return nil, apperrors.Internal("failed to send message", err)
	}

	return message, nil
}

// CreateConversation opens a thread between the trip's provider and a
// passenger, reusing the existing one for the same trip and pair.
func (uc *messagingUC) CreateConversation(ctx context.Context, driverID uuid.UUID, req *models.CreateConversationRequest) (*models.Conversation, error) {
	if req.PassengerID == driverID {
		return nil, apperrors.Validation("cannot open a conversation with yourself")
	}

	trip, err := uc.messagingRepo.GetTrip(ctx, req.TripID)
	if err != nil {
		return nil, apperrors.Internal("failed to load trip", err)
	}
	if trip == nil {
		return nil, apperrors.NotFound("trip")
	}
	if trip.ProviderID != driverID {
		return nil, apperrors.Forbidden("only the trip provider may start this conversation")
	}

	existing, err := uc.messagingRepo.GetConversationByTriple(ctx, req.TripID, driverID, req.PassengerID)
	if err != nil {
		return nil, apperrors.Internal("failed to load conversation", err)
	}
	if existing != nil {
		return existing, nil
	}

	conversation := &models.Conversation{
		ID:          uuid.New(),
		TripID:      req.TripID,
		DriverID:    driverID,
		PassengerID: req.PassengerID,
		CreatedAt:   time.Now().UTC(),
	}

	if err := uc.messagingRepo.CreateConversation(ctx, conversation); err != nil {
		return nil, apperrors.Internal("failed to create conversation", err)
	}

	logger.Info("Conversation created",
		logger.String("conversation_id", conversation.ID.String()),
		logger.String("trip_id", req.TripID.String()),
	)

	return conversation, nil
}

// PostBookingNotice posts a notice from the passenger into the
// conversation linked to a freshly created booking.
func (uc *messagingUC) PostBookingNotice(ctx context.Context, event *models.BookingCreatedEvent) error {
	conversation, err := uc.messagingRepo.GetConversation(ctx, event.ConversationID)
	if err != nil {
		return apperrors.Internal("failed to load conversation", err)
	}
	if conversation == nil {
		return apperrors.NotFound("conversation")
	}

	notice := &models.Message{
		ID:             uuid.New(),
		ConversationID: event.ConversationID,
		SenderID:       event.SeekerID,
		Content:        fmt.Sprintf("Hi! I just booked %d seat(s) on your trip.", event.SeatsBooked),
		SentAt:         time.Now().UTC(),
	}

	if err := uc.messagingRepo.CreateMessage(ctx, notice); err != nil {
		return apperrors.Internal("failed to post booking notice", err)
	}

	return nil
}

func (uc *messagingUC) loadConversationFor(ctx context.Context, userID, conversationID uuid.UUID) (*models.Conversation, error) {
	conversation, err := uc.messagingRepo.GetConversation(ctx, conversationID)
	if err != nil {
		return nil, apperrors.Internal("failed to load conversation", err)
	}
	if conversation == nil {
		return nil, apperrors.NotFound("conversation")
	}
	if !conversation.IsParticipant(userID) {
		return nil, apperrors.Forbidden("not a participant of this conversation")
	}
	return conversation, nil
}
