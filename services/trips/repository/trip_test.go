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

func setupMockDB(t *testing.T) (*TripRepo, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "pgx")
	repo := NewTripRepository(&models.Config{}, sqlxDB, nil)

	return repo, mock, func() { db.Close() }
}

func tripRowColumns() []string {
	return []string{
		"id", "provider_id", "pickup_location", "pickup_lat", "pickup_lng",
		"dropoff_location", "dropoff_lat", "dropoff_lng", "departure_time",
		"available_seats", "price_per_seat", "vehicle_id", "notes",
		"allow_smoking", "allow_pets", "status", "created_at", "updated_at",
	}
}

func TestGetTrip_ScansOptionalCoordinates(t *testing.T) {
	repo, mock, cleanup := setupMockDB(t)
	defer cleanup()

	tripID := uuid.New()
	providerID := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows(tripRowColumns()).
		AddRow(tripID, providerID, "Bangkok", 13.7563, 100.5018,
			"Pattaya", nil, nil, now.Add(24*time.Hour),
			3, 250.0, nil, nil, false, true, "PUBLISHED", now, now)

	mock.ExpectQuery("SELECT(.+)FROM trips WHERE id =").
		WithArgs(tripID).
		WillReturnRows(rows)

	trip, err := repo.GetTrip(context.Background(), tripID)

	require.NoError(t, err)
	require.NotNil(t, trip)
	require.NotNil(t, trip.PickupCoord)
	assert.Equal(t, 13.7563, trip.PickupCoord.Latitude)
	assert.Nil(t, trip.DropoffCoord, "missing dropoff coordinates stay nil")
	assert.Nil(t, trip.VehicleID)
	assert.True(t, trip.AllowPets)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTrip_NotFound(t *testing.T) {
	repo, mock, cleanup := setupMockDB(t)
	defer cleanup()

	tripID := uuid.New()
	mock.ExpectQuery("SELECT(.+)FROM trips WHERE id =").
		WithArgs(tripID).
		WillReturnRows(sqlmock.NewRows(tripRowColumns()))

	trip, err := repo.GetTrip(context.Background(), tripID)

	assert.NoError(t, err)
	assert.Nil(t, trip)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTripStatus(t *testing.T) {
	repo, mock, cleanup := setupMockDB(t)
	defer cleanup()

	tripID := uuid.New()
	mock.ExpectExec("UPDATE trips SET status =").
		WithArgs(models.TripStatusOngoing, sqlmock.AnyArg(), tripID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.UpdateTripStatus(context.Background(), tripID, models.TripStatusOngoing))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTrip_RecomputesStatusUnderLock(t *testing.T) {
	repo, mock, cleanup := setupMockDB(t)
	defer cleanup()

	trip := &models.Trip{
		ID:              uuid.New(),
		PickupLocation:  "Bangkok",
		DropoffLocation: "Pattaya",
		DepartureTime:   time.Now().Add(48 * time.Hour),
		AvailableSeats:  4,
		PricePerSeat:    250,
		Status:          models.TripStatusPublished,
	}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM trips WHERE id = (.+) FOR UPDATE").
		WithArgs(trip.ID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(trip.ID))
	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(seats_booked\\), 0\\) FROM bookings").
		WithArgs(trip.ID).
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(2))
	mock.ExpectExec("UPDATE trips SET pickup_location =").
		WithArgs(
			trip.PickupLocation, sqlmock.AnyArg(), sqlmock.AnyArg(),
			trip.DropoffLocation, sqlmock.AnyArg(), sqlmock.AnyArg(),
			trip.DepartureTime, trip.AvailableSeats, trip.PricePerSeat,
			nil, "", false, false,
			models.TripStatusPartiallyBooked, sqlmock.AnyArg(), trip.ID,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpdateTrip(context.Background(), trip)

	require.NoError(t, err)
	assert.Equal(t, models.TripStatusPartiallyBooked, trip.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTrip_SeatFloorRollsBack(t *testing.T) {
	repo, mock, cleanup := setupMockDB(t)
	defer cleanup()

	trip := &models.Trip{
		ID:              uuid.New(),
		PickupLocation:  "Bangkok",
		DropoffLocation: "Pattaya",
		DepartureTime:   time.Now().Add(48 * time.Hour),
		AvailableSeats:  2,
		PricePerSeat:    250,
		Status:          models.TripStatusPartiallyBooked,
	}

	// A booking committed after the edit was validated still counts: the
	// recount runs under the row lock and blocks the shrink.
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM trips WHERE id = (.+) FOR UPDATE").
		WithArgs(trip.ID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(trip.ID))
	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(seats_booked\\), 0\\) FROM bookings").
		WithArgs(trip.ID).
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(3))
	mock.ExpectRollback()

	err := repo.UpdateTrip(context.Background(), trip)

	assert.Equal(t, apperrors.CodeValidation, apperrors.CodeOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListTripsBookedByUser(t *testing.T) {
	repo, mock, cleanup := setupMockDB(t)
	defer cleanup()

	userID := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows(tripRowColumns()).
		AddRow(uuid.New(), uuid.New(), "Bangkok", nil, nil,
			"Pattaya", nil, nil, now.Add(24*time.Hour),
			2, 100.0, nil, "bring snacks", false, false, "PARTIALLY_BOOKED", now, now)

	mock.ExpectQuery("JOIN bookings b ON").
		WithArgs(userID).
		WillReturnRows(rows)

	trips, err := repo.ListTripsBookedByUser(context.Background(), userID)

	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, "bring snacks", trips[0].Notes)
	assert.NoError(t, mock.ExpectationsWereMet())
}
