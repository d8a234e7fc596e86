package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ridepool/ridepool/internal/pkg/database"
	"github.com/ridepool/ridepool/internal/pkg/models"
)

// SearchRepo implements search.SearchRepo against PostgreSQL and Redis
type SearchRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewSearchRepository creates a new search repository
func NewSearchRepository(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *SearchRepo {
	return &SearchRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}

// ListBookableTrips returns the trips open for bookings in publication order
func (r *SearchRepo) ListBookableTrips(ctx context.Context) ([]models.Trip, error) {
	query := `
		SELECT id, provider_id, pickup_location, pickup_lat, pickup_lng,
			dropoff_location, dropoff_lat, dropoff_lng, departure_time,
			available_seats, price_per_seat, vehicle_id, notes,
			allow_smoking, allow_pets, status, created_at, updated_at
		FROM trips
		WHERE status IN ('PUBLISHED', 'PARTIALLY_BOOKED')
		ORDER BY created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trips := []models.Trip{}
	for rows.Next() {
		trip := models.Trip{}
		var pickupLat, pickupLng, dropoffLat, dropoffLng sql.NullFloat64
		var vehicleID uuid.NullUUID
		var notes sql.NullString

		err := rows.Scan(
			&trip.ID,
			&trip.ProviderID,
			&trip.PickupLocation,
			&pickupLat,
			&pickupLng,
			&trip.DropoffLocation,
			&dropoffLat,
			&dropoffLng,
			&trip.DepartureTime,
			&trip.AvailableSeats,
			&trip.PricePerSeat,
			&vehicleID,
			&notes,
			&trip.AllowSmoking,
			&trip.AllowPets,
			&trip.Status,
			&trip.CreatedAt,
			&trip.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		if pickupLat.Valid && pickupLng.Valid {
			trip.PickupCoord = &models.Coordinate{Latitude: pickupLat.Float64, Longitude: pickupLng.Float64}
		}
		if dropoffLat.Valid && dropoffLng.Valid {
			trip.DropoffCoord = &models.Coordinate{Latitude: dropoffLat.Float64, Longitude: dropoffLng.Float64}
		}
		if vehicleID.Valid {
			trip.VehicleID = &vehicleID.UUID
		}
		if notes.Valid {
			trip.Notes = notes.String
		}

		trips = append(trips, trip)
	}

	return trips, rows.Err()
}
