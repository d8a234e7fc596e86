package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ridepool/ridepool/internal/pkg/models"
)

// MessagingRepo implements messaging.MessagingRepo against PostgreSQL
type MessagingRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewMessagingRepository creates a new messaging repository
func NewMessagingRepository(cfg *models.Config, db *sqlx.DB) *MessagingRepo {
	return &MessagingRepo{
		cfg: cfg,
		db:  db,
	}
}

const conversationColumns = `id, trip_id, driver_id, passenger_id, created_at, last_message_at`

// GetConversation retrieves a conversation by id. Returns (nil, nil) when absent.
func (r *MessagingRepo) GetConversation(ctx context.Context, id uuid.UUID) (*models.Conversation, error) {
	query := `SELECT ` + conversationColumns + ` FROM conversations WHERE id = $1`

	return r.getConversation(ctx, query, id)
}

// GetConversationByTriple retrieves the conversation for a
// (trip, driver, passenger) combination. Returns (nil, nil) when absent.
func (r *MessagingRepo) GetConversationByTriple(ctx context.Context, tripID, driverID, passengerID uuid.UUID) (*models.Conversation, error) {
	query := `
		SELECT ` + conversationColumns + `
		FROM conversations
		WHERE trip_id = $1 AND driver_id = $2 AND passenger_id = $3
	`

	return r.getConversation(ctx, query, tripID, driverID, passengerID)
}

// CreateConversation inserts a new conversation
func (r *MessagingRepo) CreateConversation(ctx context.Context, conversation *models.Conversation) error {
	query := `
		INSERT INTO conversations (id, trip_id, driver_id, passenger_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		conversation.ID,
		conversation.TripID,
		conversation.DriverID,
		conversation.PassengerID,
		conversation.CreatedAt,
	)

	return err
}

// ListConversationSummaries returns the user's inbox rows, newest
// activity first. The preview carries the latest message and the count
// of unread messages the user did not author.
func (r *MessagingRepo) ListConversationSummaries(ctx context.Context, userID uuid.UUID) ([]models.ConversationSummary, error) {
	query := `
		SELECT c.id, c.trip_id, c.driver_id, c.passenger_id, c.created_at, c.last_message_at,
			t.pickup_location, t.dropoff_location,
			COALESCE(m.content, ''),
			(SELECT COUNT(*) FROM messages u
				WHERE u.conversation_id = c.id AND u.is_read = FALSE AND u.sender_id <> $1)
		FROM conversations c
		JOIN trips t ON t.id = c.trip_id
		LEFT JOIN LATERAL (
			SELECT content FROM messages
			WHERE conversation_id = c.id
			ORDER BY sent_at DESC
			LIMIT 1
		) m ON TRUE
		WHERE c.driver_id = $1 OR c.passenger_id = $1
		ORDER BY COALESCE(c.last_message_at, c.created_at) DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := []models.ConversationSummary{}
	for rows.Next() {
		conversation := &models.Conversation{}
		var lastMessageAt sql.NullTime
		var pickup, dropoff, preview string
		var unread int

		err := rows.Scan(
			&conversation.ID,
			&conversation.TripID,
			&conversation.DriverID,
			&conversation.PassengerID,
			&conversation.CreatedAt,
			&lastMessageAt,
			&pickup,
			&dropoff,
			&preview,
			&unread,
		)
		if err != nil {
			return nil, err
		}

		summary := models.ConversationSummary{
			Conversation:  conversation,
			TripRoute:     pickup + " - " + dropoff,
			LastMessage:   preview,
			LastMessageAt: conversation.CreatedAt,
			UnreadCount:   unread,
		}
		if lastMessageAt.Valid {
			conversation.LastMessageAt = &lastMessageAt.Time
			summary.LastMessageAt = lastMessageAt.Time
		}

		summaries = append(summaries, summary)
	}

	return summaries, rows.Err()
}

// OpenMessageLog marks the unread messages the viewer did not author as
// read and returns the conversation's messages, oldest first, in one
// transaction. A read receipt never commits unless the log was delivered.
func (r *MessagingRepo) OpenMessageLog(ctx context.Context, conversationID, viewerID uuid.UUID) ([]models.Message, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	mark := `
		UPDATE messages
		SET is_read = TRUE
		WHERE conversation_id = $1 AND sender_id <> $2 AND is_read = FALSE
	`
	if _, err := tx.ExecContext(ctx, mark, conversationID, viewerID); err != nil {
		return nil, err
	}

	list := `
		SELECT id, conversation_id, sender_id, content, sent_at, is_read
		FROM messages
		WHERE conversation_id = $1
		ORDER BY sent_at ASC
	`
	rows, err := tx.QueryContext(ctx, list, conversationID)
	if err != nil {
		return nil, err
	}

	messages := []models.Message{}
	for rows.Next() {
		message := models.Message{}
		err := rows.Scan(
			&message.ID,
			&message.ConversationID,
			&message.SenderID,
			&message.Content,
			&message.SentAt,
			&message.IsRead,
		)
		if err != nil {
			rows.Close()
			return nil, err
		}
		messages = append(messages, message)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	// The rows hold the transaction's connection until closed.
	rows.Close()

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return messages, nil
}

// CreateMessage appends a message and bumps the conversation's
// last-message timestamp in one transaction.
func (r *MessagingRepo) CreateMessage(ctx context.Context, message *models.Message) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	insert := `
		INSERT INTO messages (id, conversation_id, sender_id, content, sent_at, is_read)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = tx.ExecContext(
		ctx,
		insert,
		message.ID,
		message.ConversationID,
		message.SenderID,
		message.Content,
		message.SentAt,
		message.IsRead,
	)
	if err != nil {
		return err
	}

	touch := `UPDATE conversations SET last_message_at = $1 WHERE id = $2`
	if _, err := tx.ExecContext(ctx, touch, message.SentAt, message.ConversationID); err != nil {
		return err
	}

	return tx.Commit()
}

// GetTrip retrieves the trip fields messaging needs. Returns (nil, nil)
// when absent.
func (r *MessagingRepo) GetTrip(ctx context.Context, id uuid.UUID) (*models.Trip, error) {
	query := `
		SELECT id, provider_id, pickup_location, dropoff_location, departure_time, status
		FROM trips
		WHERE id = $1
	`

	trip := &models.Trip{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&trip.ID,
		&trip.ProviderID,
		&trip.PickupLocation,
		&trip.DropoffLocation,
		&trip.DepartureTime,
		&trip.Status,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return trip, nil
}

func (r *MessagingRepo) getConversation(ctx context.Context, query string, args ...interface{}) (*models.Conversation, error) {
	conversation := &models.Conversation{}
	var lastMessageAt sql.NullTime

	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&conversation.ID,
		&conversation.TripID,
		&conversation.DriverID,
		&conversation.PassengerID,
		&conversation.CreatedAt,
		&lastMessageAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	if lastMessageAt.Valid {
		at := lastMessageAt.Time.UTC()
		conversation.LastMessageAt = &at
	}

	return conversation, nil
}
