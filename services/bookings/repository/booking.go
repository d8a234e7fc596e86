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

// BookingRepo implements bookings.BookingRepo against PostgreSQL and Redis
type BookingRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *BookingRepo {
	return &BookingRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}

// CreateBooking reserves seats on a trip in a single transaction. The trip
// row is locked for the duration so two bookings racing for the last seat
// serialize: the seat recount always sees committed state plus this lock.
func (r *BookingRepo) CreateBooking(ctx context.Context, tripID, seekerID uuid.UUID, seats int) (*models.Booking, *models.Trip, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, err
	}
	defer tx.Rollback()

	trip, err := lockTrip(ctx, tx, tripID)
	if err != nil {
		return nil, nil, err
	}
	if trip == nil {
		return nil, nil, apperrors.NotFound("trip")
	}
	if trip.ProviderID == seekerID {
		return nil, nil, apperrors.Forbidden("you cannot book your own trip")
	}

	switch trip.Status {
	case models.TripStatusPublished, models.TripStatusPartiallyBooked:
		// bookable
	case models.TripStatusFull:
		return nil, nil, apperrors.CapacityExceeded(0)
	default:
		return nil, nil, apperrors.InvalidState("trip is not accepting bookings")
	}

	// One booking per (trip, user) pair, regardless of status.
	var existing int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM bookings WHERE trip_id = $1 AND seeker_id = $2`,
		tripID, seekerID,
	).Scan(&existing)
	if err != nil {
		return nil, nil, err
	}
	if existing > 0 {
		return nil, nil, apperrors.Conflict("you already have a booking on this trip")
	}

	bookedSeats, err := confirmedSeats(ctx, tx, tripID)
	if err != nil {
		return nil, nil, err
	}

	remaining := trip.AvailableSeats - bookedSeats
	if seats > remaining {
		return nil, nil, apperrors.CapacityExceeded(remaining)
	}

	conversationID, err := ensureConversation(ctx, tx, tripID, trip.ProviderID, seekerID)
	if err != nil {
		return nil, nil, err
	}

	booking := &models.Booking{
		ID:             uuid.New(),
		TripID:         tripID,
		SeekerID:       seekerID,
		SeatsBooked:    seats,
		Status:         models.BookingStatusConfirmed,
		ConversationID: &conversationID,
		CreatedAt:      time.Now().UTC(),
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO bookings (id, trip_id, seeker_id, seats_booked, status, conversation_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		booking.ID, booking.TripID, booking.SeekerID, booking.SeatsBooked,
		booking.Status, booking.ConversationID, booking.CreatedAt,
	)
	if err != nil {
		return nil, nil, err
	}

	newStatus := trip.Status
	if remaining-seats <= 0 {
		newStatus = models.TripStatusFull
	} else {
		newStatus = models.TripStatusPartiallyBooked
	}
	if newStatus != trip.Status {
		if err := updateTripStatus(ctx, tx, tripID, newStatus); err != nil {
			return nil, nil, err
		}
		trip.Status = newStatus
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, err
	}

	return booking, trip, nil
}

// CancelBooking cancels a confirmed booking and recomputes the trip status
// after the cancellation is applied, all in one transaction.
func (r *BookingRepo) CancelBooking(ctx context.Context, bookingID, seekerID uuid.UUID, now time.Time) (*models.Booking, *models.Trip, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, err
	}
	defer tx.Rollback()

	booking, err := getBookingTx(ctx, tx, bookingID)
	if err != nil {
		return nil, nil, err
	}
	// A booking held by someone else looks the same as a missing one.
	if booking == nil || booking.SeekerID != seekerID {
		return nil, nil, apperrors.NotFound("booking")
	}
	if booking.Status != models.BookingStatusConfirmed {
		return nil, nil, apperrors.InvalidState("booking is not confirmed")
	}

	trip, err := lockTrip(ctx, tx, booking.TripID)
	if err != nil {
		return nil, nil, err
	}
	if trip == nil {
		return nil, nil, apperrors.NotFound("trip")
	}

	window := time.Duration(r.cfg.Booking.CancellationWindowHours) * time.Hour
	if !trip.DepartureTime.After(now.Add(window)) {
		return nil, nil, apperrors.PolicyViolation("bookings cannot be cancelled this close to departure")
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE bookings SET status = 'CANCELLED' WHERE id = $1`,
		bookingID,
	)
	if err != nil {
		return nil, nil, err
	}
	booking.Status = models.BookingStatusCancelled

	// Recompute from the state with the cancellation already applied.
	if trip.Status == models.TripStatusFull || trip.Status == models.TripStatusPartiallyBooked {
		bookedSeats, err := confirmedSeats(ctx, tx, trip.ID)
		if err != nil {
			return nil, nil, err
		}

		newStatus := models.TripStatusPartiallyBooked
		if bookedSeats == 0 {
			newStatus = models.TripStatusPublished
		}
		if newStatus != trip.Status {
			if err := updateTripStatus(ctx, tx, trip.ID, newStatus); err != nil {
				return nil, nil, err
			}
			trip.Status = newStatus
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, err
	}

	return booking, trip, nil
}

// GetBooking retrieves a booking by id. Returns (nil, nil) when absent.
func (r *BookingRepo) GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	query := `
		SELECT id, trip_id, seeker_id, seats_booked, status, conversation_id, created_at
		FROM bookings
		WHERE id = $1
	`

	booking, err := scanBooking(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return booking, nil
}

// GetTrip reads the trip fields booking views need, without locking.
// Returns (nil, nil) when absent.
func (r *BookingRepo) GetTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error) {
	trip := &models.Trip{}
	var pickupLat, pickupLng sql.NullFloat64

	err := r.db.QueryRowContext(ctx,
		`SELECT id, provider_id, pickup_lat, pickup_lng, departure_time, available_seats, status
		 FROM trips WHERE id = $1`,
		tripID,
	).Scan(
		&trip.ID,
		&trip.ProviderID,
		&pickupLat,
		&pickupLng,
		&trip.DepartureTime,
		&trip.AvailableSeats,
		&trip.Status,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	if pickupLat.Valid && pickupLng.Valid {
		trip.PickupCoord = &models.Coordinate{Latitude: pickupLat.Float64, Longitude: pickupLng.Float64}
	}

	return trip, nil
}

// ListBookingsByUser retrieves a user's bookings, newest first
func (r *BookingRepo) ListBookingsByUser(ctx context.Context, userID uuid.UUID) ([]models.Booking, error) {
	query := `
		SELECT id, trip_id, seeker_id, seats_booked, status, conversation_id, created_at
		FROM bookings
		WHERE seeker_id = $1
		ORDER BY created_at DESC
	`

	return r.queryBookings(ctx, query, userID)
}

// ListBookingsForTrip retrieves the bookings placed on a trip
func (r *BookingRepo) ListBookingsForTrip(ctx context.Context, tripID uuid.UUID) ([]models.Booking, error) {
	query := `
		SELECT id, trip_id, seeker_id, seats_booked, status, conversation_id, created_at
		FROM bookings
		WHERE trip_id = $1
		ORDER BY created_at DESC
	`

	return r.queryBookings(ctx, query, tripID)
}

// IndexPickup registers the trip's pickup point in the shared geo set
func (r *BookingRepo) IndexPickup(ctx context.Context, tripID uuid.UUID, coord models.Coordinate) error {
	return r.redisClient.GeoAdd(ctx, database.TripPickupGeoKey, coord.Longitude, coord.Latitude, tripID.String())
}

// UnindexPickup removes the trip's pickup point from the shared geo set
func (r *BookingRepo) UnindexPickup(ctx context.Context, tripID uuid.UUID) error {
	return r.redisClient.GeoRemove(ctx, database.TripPickupGeoKey, tripID.String())
}

func (r *BookingRepo) queryBookings(ctx context.Context, query string, args ...interface{}) ([]models.Booking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := []models.Booking{}
	for rows.Next() {
		var booking models.Booking
		var conversationID uuid.NullUUID
		if err := rows.Scan(
			&booking.ID,
			&booking.TripID,
			&booking.SeekerID,
			&booking.SeatsBooked,
			&booking.Status,
			&conversationID,
			&booking.CreatedAt,
		); err != nil {
			return nil, err
		}
		if conversationID.Valid {
			booking.ConversationID = &conversationID.UUID
		}
		bookings = append(bookings, booking)
	}

	return bookings, rows.Err()
}

func scanBooking(row *sql.Row) (*models.Booking, error) {
	booking := &models.Booking{}
	var conversationID uuid.NullUUID

	err := row.Scan(
		&booking.ID,
		&booking.TripID,
		&booking.SeekerID,
		&booking.SeatsBooked,
		&booking.Status,
		&conversationID,
		&booking.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if conversationID.Valid {
		booking.ConversationID = &conversationID.UUID
	}

	return booking, nil
}

func getBookingTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) (*models.Booking, error) {
	booking := &models.Booking{}
	var conversationID uuid.NullUUID

	err := tx.QueryRowContext(ctx,
		`SELECT id, trip_id, seeker_id, seats_booked, status, conversation_id, created_at
		 FROM bookings WHERE id = $1`,
		id,
	).Scan(
		&booking.ID,
		&booking.TripID,
		&booking.SeekerID,
		&booking.SeatsBooked,
		&booking.Status,
		&conversationID,
		&booking.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	if conversationID.Valid {
		booking.ConversationID = &conversationID.UUID
	}

	return booking, nil
}

// lockTrip reads the trip fields booking decisions need, under FOR UPDATE.
// Returns (nil, nil) when the trip does not exist.
func lockTrip(ctx context.Context, tx *sqlx.Tx, tripID uuid.UUID) (*models.Trip, error) {
	trip := &models.Trip{}
	var pickupLat, pickupLng sql.NullFloat64

	err := tx.QueryRowContext(ctx,
		`SELECT id, provider_id, pickup_lat, pickup_lng, departure_time, available_seats, status
		 FROM trips WHERE id = $1 FOR UPDATE`,
		tripID,
	).Scan(
		&trip.ID,
		&trip.ProviderID,
		&pickupLat,
		&pickupLng,
		&trip.DepartureTime,
		&trip.AvailableSeats,
		&trip.Status,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	if pickupLat.Valid && pickupLng.Valid {
		trip.PickupCoord = &models.Coordinate{Latitude: pickupLat.Float64, Longitude: pickupLng.Float64}
	}

	return trip, nil
}

func confirmedSeats(ctx context.Context, tx *sqlx.Tx, tripID uuid.UUID) (int, error) {
	var seats int
	err := tx.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(seats_booked), 0) FROM bookings
		 WHERE trip_id = $1 AND status = 'CONFIRMED'`,
		tripID,
	).Scan(&seats)
	return seats, err
}

func ensureConversation(ctx context.Context, tx *sqlx.Tx, tripID, driverID, passengerID uuid.UUID) (uuid.UUID, error) {
	var conversationID uuid.UUID
	err := tx.QueryRowContext(ctx,
		`SELECT id FROM conversations WHERE trip_id = $1 AND driver_id = $2 AND passenger_id = $3`,
		tripID, driverID, passengerID,
	).Scan(&conversationID)
	if err == nil {
		return conversationID, nil
	}
	if err != sql.ErrNoRows {
		return uuid.Nil, err
	}

	conversationID = uuid.New()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO conversations (id, trip_id, driver_id, passenger_id, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		conversationID, tripID, driverID, passengerID, time.Now().UTC(),
	)
	if err != nil {
		return uuid.Nil, err
	}

	return conversationID, nil
}

func updateTripStatus(ctx context.Context, tx *sqlx.Tx, tripID uuid.UUID, status models.TripStatus) error {
	_, err := tx.ExecContext(ctx,
		`UPDATE trips SET status = $1, updated_at = $2 WHERE id = $3`,
		status, time.Now().UTC(), tripID,
	)
	return err
}
