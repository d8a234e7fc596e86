package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridepool/ridepool/internal/pkg/models"
)

func setupMockDB(t *testing.T) (*MessagingRepo, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "pgx")
	repo := NewMessagingRepository(&models.Config{}, sqlxDB)

	return repo, mock, func() { db.Close() }
}

func conversationRowColumns() []string {
	return []string{"id", "trip_id", "driver_id", "passenger_id", "created_at", "last_message_at"}
}

func TestGetConversation_Found(t *testing.T) {
	repo, mock, cleanup := setupMockDB(t)
	defer cleanup()

	conversationID := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows(conversationRowColumns()).
		AddRow(conversationID, uuid.New(), uuid.New(), uuid.New(), now, nil)

	mock.ExpectQuery("SELECT(.+)FROM conversations WHERE id =").
		WithArgs(conversationID).
		WillReturnRows(rows)

	conversation, err := repo.GetConversation(context.Background(), conversationID)

	require.NoError(t, err)
	require.NotNil(t, conversation)
	assert.Equal(t, conversationID, conversation.ID)
	assert.Nil(t, conversation.LastMessageAt, "a thread without messages has no last-message time")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetConversationByTriple_NotFound(t *testing.T) {
	repo, mock, cleanup := setupMockDB(t)
	defer cleanup()

	tripID := uuid.New()
	driverID := uuid.New()
	passengerID := uuid.New()

	mock.ExpectQuery("SELECT(.+)FROM conversations(.+)WHERE trip_id =").
		WithArgs(tripID, driverID, passengerID).
		WillReturnRows(sqlmock.NewRows(conversationRowColumns()))

	conversation, err := repo.GetConversationByTriple(context.Background(), tripID, driverID, passengerID)

	require.NoError(t, err)
	assert.Nil(t, conversation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateMessage_AppendsAndTouchesThread(t *testing.T) {
	repo, mock, cleanup := setupMockDB(t)
	defer cleanup()

	message := &models.Message{
		ID:             uuid.New(),
		ConversationID: uuid.New(),
		SenderID:       uuid.New(),
		Content:        "See you at the pickup point",
		SentAt:         time.Now().UTC(),
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO messages").
		WithArgs(message.ID, message.ConversationID, message.SenderID, message.Content, message.SentAt, false).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE conversations SET last_message_at").
		WithArgs(message.SentAt, message.ConversationID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.CreateMessage(context.Background(), message)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateMessage_RollsBackOnInsertFailure(t *testing.T) {
	repo, mock, cleanup := setupMockDB(t)
	defer cleanup()

	message := &models.Message{
		ID:             uuid.New(),
		ConversationID: uuid.New(),
		SenderID:       uuid.New(),
		Content:        "hello",
		SentAt:         time.Now().UTC(),
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO messages").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := repo.CreateMessage(context.Background(), message)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOpenMessageLog_MarksReadAndListsInOneTransaction(t *testing.T) {
	repo, mock, cleanup := setupMockDB(t)
	defer cleanup()

	conversationID := uuid.New()
	viewerID := uuid.New()
	now := time.Now()

	columns := []string{"id", "conversation_id", "sender_id", "content", "sent_at", "is_read"}
	rows := sqlmock.NewRows(columns).
		AddRow(uuid.New(), conversationID, uuid.New(), "first", now.Add(-time.Hour), true).
		AddRow(uuid.New(), conversationID, uuid.New(), "second", now, false)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE messages(.+)SET is_read = TRUE").
		WithArgs(conversationID, viewerID).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectQuery("SELECT(.+)FROM messages(.+)WHERE conversation_id =").
		WithArgs(conversationID).
		WillReturnRows(rows)
	mock.ExpectCommit()

	messages, err := repo.OpenMessageLog(context.Background(), conversationID, viewerID)

	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "first", messages[0].Content)
	assert.False(t, messages[1].IsRead)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOpenMessageLog_RollsBackWhenListFails(t *testing.T) {
	repo, mock, cleanup := setupMockDB(t)
	defer cleanup()

	conversationID := uuid.New()
	viewerID := uuid.New()

	// A read receipt must not commit when the log itself is not delivered.
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE messages(.+)SET is_read = TRUE").
		WithArgs(conversationID, viewerID).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectQuery("SELECT(.+)FROM messages(.+)WHERE conversation_id =").
		WithArgs(conversationID).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	_, err := repo.OpenMessageLog(context.Background(), conversationID, viewerID)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListConversationSummaries(t *testing.T) {
	repo, mock, cleanup := setupMockDB(t)
	defer cleanup()

	userID := uuid.New()
	now := time.Now()
	lastMessageAt := now.Add(-10 * time.Minute)

	columns := []string{
		"id", "trip_id", "driver_id", "passenger_id", "created_at", "last_message_at",
		"pickup_location", "dropoff_location", "content", "count",
	}
	rows := sqlmock.NewRows(columns).
		AddRow(uuid.New(), uuid.New(), userID, uuid.New(), now.Add(-time.Hour), lastMessageAt,
			"Bangkok", "Pattaya", "See you tomorrow", 2).
		AddRow(uuid.New(), uuid.New(), uuid.New(), userID, now.Add(-2*time.Hour), nil,
			"Chiang Mai", "Lampang", "", 0)

	mock.ExpectQuery("SELECT(.+)FROM conversations c(.+)JOIN trips t").
		WithArgs(userID).
		WillReturnRows(rows)

	summaries, err := repo.ListConversationSummaries(context.Background(), userID)

	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "Bangkok - Pattaya", summaries[0].TripRoute)
	assert.Equal(t, "See you tomorrow", summaries[0].LastMessage)
	assert.Equal(t, 2, summaries[0].UnreadCount)

	// A thread without messages falls back to its creation time.
	assert.Equal(t, summaries[1].Conversation.CreatedAt, summaries[1].LastMessageAt)
	assert.Empty(t, summaries[1].LastMessage)
	assert.NoError(t, mock.ExpectationsWereMet())
}

