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

	apperrors "github.com/ridepool/ridepool/internal/pkg/errors"
	"github.com/ridepool/ridepool/internal/pkg/models"
)

func setupMockDB(t *testing.T) (*BookingRepo, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "pgx")
	cfg := &models.Config{
		Booking: models.BookingConfig{CancellationWindowHours: 24},
	}
	repo := NewBookingRepository(cfg, sqlxDB, nil)

	return repo, mock, func() { db.Close() }
}

func lockedTripColumns() []string {
	return []string{"id", "provider_id", "pickup_lat", "pickup_lng", "departure_time", "available_seats", "status"}
}

func expectLockTrip(mock sqlmock.Sqlmock, tripID, providerID uuid.UUID, seats int, status models.TripStatus, departure time.Time) {
	mock.ExpectQuery("SELECT id, provider_id, pickup_lat, pickup_lng, departure_time, available_seats, status\\s+FROM trips WHERE id = \\$1 FOR UPDATE").
		WithArgs(tripID).
		WillReturnRows(sqlmock.NewRows(lockedTripColumns()).
			AddRow(tripID, providerID, 13.75, 100.5, departure, seats, string(status)))
}

func TestCreateBooking_Success(t *testing.T) {
	repo, mock, cleanup := setupMockDB(t)
	defer cleanup()

	tripID := uuid.New()
	providerID := uuid.New()
	seekerID := uuid.New()
	departure := time.Now().Add(72 * time.Hour)

	mock.ExpectBegin()
	expectLockTrip(mock, tripID, providerID, 4, models.TripStatusPublished, departure)
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM bookings WHERE trip_id = \\$1 AND seeker_id = \\$2").
		WithArgs(tripID, seekerID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(seats_booked\\), 0\\) FROM bookings").
		WithArgs(tripID).
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(0))
	mock.ExpectQuery("SELECT id FROM conversations WHERE trip_id").
		WithArgs(tripID, providerID, seekerID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec("INSERT INTO conversations").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE trips SET status =").
		WithArgs(models.TripStatusPartiallyBooked, sqlmock.AnyArg(), tripID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	booking, trip, err := repo.CreateBooking(context.Background(), tripID, seekerID, 2)

	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, booking.Status)
	require.NotNil(t, booking.ConversationID)
	assert.Equal(t, models.TripStatusPartiallyBooked, trip.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBooking_LastSeatFillsTrip(t *testing.T) {
	repo, mock, cleanup := setupMockDB(t)
	defer cleanup()

	tripID := uuid.New()
	providerID := uuid.New()
	seekerID := uuid.New()
	conversationID := uuid.New()

	mock.ExpectBegin()
	expectLockTrip(mock, tripID, providerID, 3, models.TripStatusPartiallyBooked, time.Now().Add(72*time.Hour))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM bookings WHERE trip_id").
		WithArgs(tripID, seekerID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(seats_booked\\), 0\\) FROM bookings").
		WithArgs(tripID).
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(2))
	mock.ExpectQuery("SELECT id FROM conversations WHERE trip_id").
		WithArgs(tripID, providerID, seekerID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(conversationID))
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE trips SET status =").
		WithArgs(models.TripStatusFull, sqlmock.AnyArg(), tripID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	booking, trip, err := repo.CreateBooking(context.Background(), tripID, seekerID, 1)

	require.NoError(t, err)
	assert.Equal(t, conversationID, *booking.ConversationID, "existing conversation is reused")
	assert.Equal(t, models.TripStatusFull, trip.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBooking_CapacityExceeded(t *testing.T) {
	repo, mock, cleanup := setupMockDB(t)
	defer cleanup()

	tripID := uuid.New()
	seekerID := uuid.New()

	mock.ExpectBegin()
	expectLockTrip(mock, tripID, uuid.New(), 4, models.TripStatusPartiallyBooked, time.Now().Add(72*time.Hour))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM bookings WHERE trip_id").
		WithArgs(tripID, seekerID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(seats_booked\\), 0\\) FROM bookings").
		WithArgs(tripID).
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(3))
	mock.ExpectRollback()

	_, _, err := repo.CreateBooking(context.Background(), tripID, seekerID, 2)

	require.Error(t, err)
	assert.Equal(t, apperrors.CodeCapacityExceeded, apperrors.CodeOf(err))
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, 1, appErr.Remaining, "error carries the live remaining count")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBooking_SelfBooking(t *testing.T) {
	repo, mock, cleanup := setupMockDB(t)
	defer cleanup()

	tripID := uuid.New()
	providerID := uuid.New()

	mock.ExpectBegin()
	expectLockTrip(mock, tripID, providerID, 4, models.TripStatusPublished, time.Now().Add(72*time.Hour))
	mock.ExpectRollback()

	_, _, err := repo.CreateBooking(context.Background(), tripID, providerID, 1)

	assert.Equal(t, apperrors.CodeForbidden, apperrors.CodeOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBooking_DuplicateBooking(t *testing.T) {
	repo, mock, cleanup := setupMockDB(t)
	defer cleanup()

	tripID := uuid.New()
	seekerID := uuid.New()

	mock.ExpectBegin()
	expectLockTrip(mock, tripID, uuid.New(), 4, models.TripStatusPublished, time.Now().Add(72*time.Hour))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM bookings WHERE trip_id").
		WithArgs(tripID, seekerID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	_, _, err := repo.CreateBooking(context.Background(), tripID, seekerID, 1)

	assert.Equal(t, apperrors.CodeConflict, apperrors.CodeOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBooking_TripNotFound(t *testing.T) {
	repo, mock, cleanup := setupMockDB(t)
	defer cleanup()

	tripID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").
		WithArgs(tripID).
		WillReturnRows(sqlmock.NewRows(lockedTripColumns()))
	mock.ExpectRollback()

	_, _, err := repo.CreateBooking(context.Background(), tripID, uuid.New(), 1)

	assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBooking_TripOngoing(t *testing.T) {
	repo, mock, cleanup := setupMockDB(t)
	defer cleanup()

	tripID := uuid.New()

	mock.ExpectBegin()
	expectLockTrip(mock, tripID, uuid.New(), 4, models.TripStatusOngoing, time.Now().Add(time.Hour))
	mock.ExpectRollback()

	_, _, err := repo.CreateBooking(context.Background(), tripID, uuid.New(), 1)

	assert.Equal(t, apperrors.CodeInvalidState, apperrors.CodeOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func bookingColumns() []string {
	return []string{"id", "trip_id", "seeker_id", "seats_booked", "status", "conversation_id", "created_at"}
}

func TestCancelBooking_Success(t *testing.T) {
	repo, mock, cleanup := setupMockDB(t)
	defer cleanup()

	bookingID := uuid.New()
	tripID := uuid.New()
	seekerID := uuid.New()
	now := time.Now().UTC()
	departure := now.Add(72 * time.Hour)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id, trip_id, seeker_id, seats_booked, status, conversation_id, created_at\\s+FROM bookings WHERE id = \\$1").
		WithArgs(bookingID).
		WillReturnRows(sqlmock.NewRows(bookingColumns()).
			AddRow(bookingID, tripID, seekerID, 2, "CONFIRMED", uuid.New(), now.Add(-time.Hour)))
	expectLockTrip(mock, tripID, uuid.New(), 4, models.TripStatusFull, departure)
	mock.ExpectExec("UPDATE bookings SET status = 'CANCELLED'").
		WithArgs(bookingID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(seats_booked\\), 0\\) FROM bookings").
		WithArgs(tripID).
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(2))
	mock.ExpectExec("UPDATE trips SET status =").
		WithArgs(models.TripStatusPartiallyBooked, sqlmock.AnyArg(), tripID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	booking, trip, err := repo.CancelBooking(context.Background(), bookingID, seekerID, now)

	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, booking.Status)
	assert.Equal(t, models.TripStatusPartiallyBooked, trip.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelBooking_LastSeatsReopenTrip(t *testing.T) {
	repo, mock, cleanup := setupMockDB(t)
	defer cleanup()

	bookingID := uuid.New()
	tripID := uuid.New()
	seekerID := uuid.New()
	now := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectQuery("FROM bookings WHERE id = \\$1").
		WithArgs(bookingID).
		WillReturnRows(sqlmock.NewRows(bookingColumns()).
			AddRow(bookingID, tripID, seekerID, 2, "CONFIRMED", uuid.New(), now.Add(-time.Hour)))
	expectLockTrip(mock, tripID, uuid.New(), 4, models.TripStatusPartiallyBooked, now.Add(72*time.Hour))
	mock.ExpectExec("UPDATE bookings SET status = 'CANCELLED'").
		WithArgs(bookingID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(seats_booked\\), 0\\) FROM bookings").
		WithArgs(tripID).
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(0))
	mock.ExpectExec("UPDATE trips SET status =").
		WithArgs(models.TripStatusPublished, sqlmock.AnyArg(), tripID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	_, trip, err := repo.CancelBooking(context.Background(), bookingID, seekerID, now)

	require.NoError(t, err)
	assert.Equal(t, models.TripStatusPublished, trip.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelBooking_AlreadyCancelled(t *testing.T) {
	repo, mock, cleanup := setupMockDB(t)
	defer cleanup()

	bookingID := uuid.New()
	seekerID := uuid.New()
	now := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectQuery("FROM bookings WHERE id = \\$1").
		WithArgs(bookingID).
		WillReturnRows(sqlmock.NewRows(bookingColumns()).
			AddRow(bookingID, uuid.New(), seekerID, 2, "CANCELLED", uuid.New(), now.Add(-time.Hour)))
	mock.ExpectRollback()

	_, _, err := repo.CancelBooking(context.Background(), bookingID, seekerID, now)

	assert.Equal(t, apperrors.CodeInvalidState, apperrors.CodeOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelBooking_NotOwner(t *testing.T) {
	repo, mock, cleanup := setupMockDB(t)
	defer cleanup()

	bookingID := uuid.New()
	now := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectQuery("FROM bookings WHERE id = \\$1").
		WithArgs(bookingID).
		WillReturnRows(sqlmock.NewRows(bookingColumns()).
			AddRow(bookingID, uuid.New(), uuid.New(), 2, "CONFIRMED", uuid.New(), now.Add(-time.Hour)))
	mock.ExpectRollback()

	_, _, err := repo.CancelBooking(context.Background(), bookingID, uuid.New(), now)

	// Someone else's booking is reported as missing, not as forbidden.
	assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelBooking_WindowClosed(t *testing.T) {
	repo, mock, cleanup := setupMockDB(t)
	defer cleanup()

	bookingID := uuid.New()
	tripID := uuid.New()
	seekerID := uuid.New()
	now := time.Now().UTC()

	tests := []struct {
		name      string
		departure time.Time
		wantCode  apperrors.Code
	}{
		{"exactly 24h before", now.Add(24 * time.Hour), apperrors.CodePolicyViolation},
		{"23h before", now.Add(23 * time.Hour), apperrors.CodePolicyViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock.ExpectBegin()
			mock.ExpectQuery("FROM bookings WHERE id = \\$1").
				WithArgs(bookingID).
				WillReturnRows(sqlmock.NewRows(bookingColumns()).
					AddRow(bookingID, tripID, seekerID, 2, "CONFIRMED", uuid.New(), now.Add(-time.Hour)))
			expectLockTrip(mock, tripID, uuid.New(), 4, models.TripStatusPartiallyBooked, tt.departure)
			mock.ExpectRollback()

			_, _, err := repo.CancelBooking(context.Background(), bookingID, seekerID, now)

			assert.Equal(t, tt.wantCode, apperrors.CodeOf(err))
		})
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelBooking_JustOutsideWindowSucceeds(t *testing.T) {
	repo, mock, cleanup := setupMockDB(t)
	defer cleanup()

	bookingID := uuid.New()
	tripID := uuid.New()
	seekerID := uuid.New()
	now := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectQuery("FROM bookings WHERE id = \\$1").
		WithArgs(bookingID).
		WillReturnRows(sqlmock.NewRows(bookingColumns()).
			AddRow(bookingID, tripID, seekerID, 1, "CONFIRMED", uuid.New(), now.Add(-time.Hour)))
	expectLockTrip(mock, tripID, uuid.New(), 4, models.TripStatusPartiallyBooked, now.Add(24*time.Hour+time.Minute))
	mock.ExpectExec("UPDATE bookings SET status = 'CANCELLED'").
		WithArgs(bookingID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(seats_booked\\), 0\\) FROM bookings").
		WithArgs(tripID).
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(1))
	mock.ExpectCommit()

	_, _, err := repo.CancelBooking(context.Background(), bookingID, seekerID, now)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
