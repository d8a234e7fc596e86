package models

import (
	"time"

	"github.com/google/uuid"
)

// Conversation is a per-(trip, driver, passenger) message thread
type Conversation struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	TripID        uuid.UUID  `json:"trip_id" db:"trip_id"`
	DriverID      uuid.UUID  `json:"driver_id" db:"driver_id"`
	PassengerID   uuid.UUID  `json:"passenger_id" db:"passenger_id"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	LastMessageAt *time.Time `json:"last_message_at,omitempty" db:"last_message_at"`
}

// IsParticipant reports whether the user belongs to the conversation
func (c *Conversation) IsParticipant(userID uuid.UUID) bool {
	return c.DriverID == userID || c.PassengerID == userID
}

// OtherParticipant returns the counterpart of the given participant
func (c *Conversation) OtherParticipant(userID uuid.UUID) uuid.UUID {
	if userID == c.DriverID {
		return c.PassengerID
	}
	return c.DriverID
}

// Message is a single entry in a conversation
type Message struct {
	ID             uuid.UUID `json:"id" db:"id"`
	ConversationID uuid.UUID `json:"conversation_id" db:"conversation_id"`
	SenderID       uuid.UUID `json:"sender_id" db:"sender_id"`
	Content        string    `json:"content" db:"content"`
	SentAt         time.Time `json:"sent_at" db:"sent_at"`
	IsRead         bool      `json:"is_read" db:"is_read"`
}

// ConversationSummary is an inbox row: thread plus preview aggregates
type ConversationSummary struct {
	Conversation  *Conversation `json:"conversation"`
	TripRoute     string        `json:"trip_route"`
	LastMessage   string        `json:"last_message,omitempty"`
	LastMessageAt time.Time     `json:"last_message_at"`
	UnreadCount   int           `json:"unread_count"`
}

// SendMessageRequest is the payload for posting a message
type SendMessageRequest struct {
	Content string `json:"content"`
}

// CreateConversationRequest is the payload for a driver opening a
// thread with a passenger about a trip
type CreateConversationRequest struct {
	TripID      uuid.UUID `json:"trip_id"`
	PassengerID uuid.UUID `json:"passenger_id"`
}

// ConversationView is an opened thread with its full message log
type ConversationView struct {
	Conversation *Conversation `json:"conversation"`
	TripRoute    string        `json:"trip_route"`
	Messages     []Message     `json:"messages"`
}
