package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ridepool/ridepool/internal/pkg/database"
	apperrors "github.com/ridepool/ridepool/internal/pkg/errors"
	"github.com/ridepool/ridepool/internal/pkg/models"
)

// TripRepo implements trips.TripRepo against PostgreSQL and Redis
type TripRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewTripRepository creates a new trip repository
func NewTripRepository(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *TripRepo {
	return &TripRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}

const tripColumns = `
	id, provider_id, pickup_location, pickup_lat, pickup_lng,
	dropoff_location, dropoff_lat, dropoff_lng, departure_time,
	available_seats, price_per_seat, vehicle_id, notes,
	allow_smoking, allow_pets, status, created_at, updated_at
`

// CreateTrip inserts a new trip
func (r *TripRepo) CreateTrip(ctx context.Context, trip *models.Trip) error {
	query := `
		INSERT INTO trips (` + tripColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`

	pickupLat, pickupLng := coordColumns(trip.PickupCoord)
	dropoffLat, dropoffLng := coordColumns(trip.DropoffCoord)

	_, err := r.db.ExecContext(
		ctx,
		query,
		trip.ID,
		trip.ProviderID,
		trip.PickupLocation,
		pickupLat,
		pickupLng,
		trip.DropoffLocation,
		dropoffLat,
		dropoffLng,
		trip.DepartureTime,
		trip.AvailableSeats,
		trip.PricePerSeat,
		trip.VehicleID,
		trip.Notes,
		trip.AllowSmoking,
		trip.AllowPets,
		trip.Status,
		trip.CreatedAt,
		trip.UpdatedAt,
	)

	return err
}

// GetTrip retrieves a trip by id. Returns (nil, nil) when absent.
func (r *TripRepo) GetTrip(ctx context.Context, id uuid.UUID) (*models.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE id = $1`

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	trip, err := scanTrip(rows)
	if err != nil {
		return nil, err
	}
	return trip, nil
}

// GetTripsByIDs retrieves the trips matching the given ids
func (r *TripRepo) GetTripsByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Trip, error) {
	if len(ids) == 0 {
		return []models.Trip{}, nil
	}

	query, args, err := sqlx.In(`SELECT `+tripColumns+` FROM trips WHERE id IN (?)`, ids)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	return r.queryTrips(ctx, query, args...)
}

// UpdateTrip persists edits to an existing trip in one transaction. The
// trip row is locked so a booking committing mid-edit cannot push the
// confirmed seat count above the edited capacity; the capacity status is
// recomputed from that locked count before the write and left on trip.
func (r *TripRepo) UpdateTrip(ctx context.Context, trip *models.Trip) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var lockedID uuid.UUID
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM trips WHERE id = $1 FOR UPDATE`,
		trip.ID,
	).Scan(&lockedID)
	if err != nil {
		if err == sql.ErrNoRows {
			return apperrors.NotFound("trip")
		}
		return err
	}

	var bookedSeats int
	err = tx.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(seats_booked), 0) FROM bookings
		 WHERE trip_id = $1 AND status = 'CONFIRMED'`,
		trip.ID,
	).Scan(&bookedSeats)
	if err != nil {
		return err
	}
	if trip.AvailableSeats < bookedSeats {
		return apperrors.Validation("available seats cannot drop below seats already booked")
	}

	// Seat edits can change the capacity status.
	switch {
	case bookedSeats == 0:
		trip.Status = models.TripStatusPublished
	case bookedSeats < trip.AvailableSeats:
		trip.Status = models.TripStatusPartiallyBooked
	default:
		trip.Status = models.TripStatusFull
	}

	query := `
		UPDATE trips
		SET pickup_location = $1, pickup_lat = $2, pickup_lng = $3,
			dropoff_location = $4, dropoff_lat = $5, dropoff_lng = $6,
			departure_time = $7, available_seats = $8, price_per_seat = $9,
			vehicle_id = $10, notes = $11, allow_smoking = $12, allow_pets = $13,
			status = $14, updated_at = $15
		WHERE id = $16
	`

	pickupLat, pickupLng := coordColumns(trip.PickupCoord)
	dropoffLat, dropoffLng := coordColumns(trip.DropoffCoord)

	_, err = tx.ExecContext(
		ctx,
		query,
		trip.PickupLocation,
		pickupLat,
		pickupLng,
		trip.DropoffLocation,
		dropoffLat,
		dropoffLng,
		trip.DepartureTime,
		trip.AvailableSeats,
		trip.PricePerSeat,
		trip.VehicleID,
		trip.Notes,
		trip.AllowSmoking,
		trip.AllowPets,
		trip.Status,
		time.Now().UTC(),
		trip.ID,
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// UpdateTripStatus transitions a trip's status
func (r *TripRepo) UpdateTripStatus(ctx context.Context, id uuid.UUID, status models.TripStatus) error {
	query := `UPDATE trips SET status = $1, updated_at = $2 WHERE id = $3`

	_, err := r.db.ExecContext(ctx, query, status, time.Now().UTC(), id)
	return err
}

// ListTripsByProvider retrieves a provider's trips, newest departure first
func (r *TripRepo) ListTripsByProvider(ctx context.Context, providerID uuid.UUID) ([]models.Trip, error) {
	query := `
		SELECT ` + tripColumns + `
		FROM trips
		WHERE provider_id = $1
		ORDER BY departure_time DESC
	`

	return r.queryTrips(ctx, query, providerID)
}

// ListTripsBookedByUser retrieves trips the user holds a confirmed booking on
func (r *TripRepo) ListTripsBookedByUser(ctx context.Context, userID uuid.UUID) ([]models.Trip, error) {
	query := `
		SELECT ` + tripColumnsPrefixed("t") + `
		FROM trips t
		JOIN bookings b ON b.trip_id = t.id
		WHERE b.seeker_id = $1 AND b.status = 'CONFIRMED'
		ORDER BY t.departure_time DESC
	`

	return r.queryTrips(ctx, query, userID)
}

// GetVehicle retrieves a vehicle by id. Returns (nil, nil) when absent.
func (r *TripRepo) GetVehicle(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	query := `
		SELECT id, owner_id, brand, model, license_plate, color, created_at
		FROM vehicles
		WHERE id = $1
	`

	vehicle := &models.Vehicle{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&vehicle.ID,
		&vehicle.OwnerID,
		&vehicle.Brand,
		&vehicle.Model,
		&vehicle.LicensePlate,
		&vehicle.Color,
		&vehicle.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return vehicle, nil
}

func (r *TripRepo) queryTrips(ctx context.Context, query string, args ...interface{}) ([]models.Trip, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trips := []models.Trip{}
	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		trips = append(trips, *trip)
	}

	return trips, rows.Err()
}

func coordColumns(coord *models.Coordinate) (sql.NullFloat64, sql.NullFloat64) {
	if coord == nil {
		return sql.NullFloat64{}, sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: coord.Latitude, Valid: true},
		sql.NullFloat64{Float64: coord.Longitude, Valid: true}
}

func tripColumnsPrefixed(alias string) string {
	return alias + `.id, ` + alias + `.provider_id, ` + alias + `.pickup_location, ` +
		alias + `.pickup_lat, ` + alias + `.pickup_lng, ` + alias + `.dropoff_location, ` +
		alias + `.dropoff_lat, ` + alias + `.dropoff_lng, ` + alias + `.departure_time, ` +
		alias + `.available_seats, ` + alias + `.price_per_seat, ` + alias + `.vehicle_id, ` +
		alias + `.notes, ` + alias + `.allow_smoking, ` + alias + `.allow_pets, ` +
		alias + `.status, ` + alias + `.created_at, ` + alias + `.updated_at`
}

func scanTrip(rows *sql.Rows) (*models.Trip, error) {
	trip := &models.Trip{}
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

	// A side without a stored coordinate stays nil, never zero values.
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

	return trip, nil
}
