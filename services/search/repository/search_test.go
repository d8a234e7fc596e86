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

func setupMockDB(t *testing.T) (*SearchRepo, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "pgx")
	repo := NewSearchRepository(&models.Config{}, sqlxDB, nil)

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

func TestListBookableTrips(t *testing.T) {
	repo, mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	firstID := uuid.New()
	secondID := uuid.New()

	rows := sqlmock.NewRows(tripRowColumns()).
		AddRow(firstID, uuid.New(), "Bangkok", 13.7563, 100.5018,
			"Pattaya", 12.9276, 100.8771, now.Add(24*time.Hour),
			3, 250.0, nil, nil, false, false, "PUBLISHED", now, now).
		AddRow(secondID, uuid.New(), "Chiang Mai", nil, nil,
			"Lampang", nil, nil, now.Add(48*time.Hour),
			2, 180.0, nil, "early start", true, true, "PARTIALLY_BOOKED", now, now)

	mock.ExpectQuery("SELECT(.+)FROM trips(.+)WHERE status IN").
		WillReturnRows(rows)

	trips, err := repo.ListBookableTrips(context.Background())

	require.NoError(t, err)
	require.Len(t, trips, 2)
	assert.Equal(t, firstID, trips[0].ID)
	require.NotNil(t, trips[0].PickupCoord)
	assert.Equal(t, 13.7563, trips[0].PickupCoord.Latitude)
	assert.Nil(t, trips[1].PickupCoord, "missing coordinates stay nil")
	assert.Equal(t, "early start", trips[1].Notes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListBookableTrips_Empty(t *testing.T) {
	repo, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT(.+)FROM trips(.+)WHERE status IN").
		WillReturnRows(sqlmock.NewRows(tripRowColumns()))

	trips, err := repo.ListBookableTrips(context.Background())

	require.NoError(t, err)
	assert.Empty(t, trips)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDecodeHistory(t *testing.T) {
	entries := decodeHistory([]byte(`[{"from_location":"Bangkok","to_location":"Pattaya","radius_km":10,"searched_at":"2026-08-30T10:00:00Z"}]`), "session-1")

	require.Len(t, entries, 1)
	assert.Equal(t, "Bangkok", entries[0].FromLocation)
	assert.Equal(t, 10, entries[0].RadiusKm)
}

func TestDecodeHistory_CorruptBlob(t *testing.T) {
	entries := decodeHistory([]byte(`{not json`), "session-1")

	assert.NotNil(t, entries)
	assert.Empty(t, entries, "an unreadable blob degrades to an empty history")
}
