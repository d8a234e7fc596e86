package bookings

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ridepool/ridepool/internal/pkg/models"
)

// BookingRepo defines the interface for booking data access operations.
// CreateBooking and CancelBooking run as single transactions holding a
// row lock on the trip so racing seat reservations serialize.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/ridepool/ridepool/services/bookings BookingRepo
type BookingRepo interface {
	CreateBooking(ctx context.Context, tripID, seekerID uuid.UUID, seats int) (*models.Booking, *models.Trip, error)
	CancelBooking(ctx context.Context, bookingID, seekerID uuid.UUID, now time.Time) (*models.Booking, *models.Trip, error)
	GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	GetTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error)
	ListBookingsByUser(ctx context.Context, userID uuid.UUID) ([]models.Booking, error)
	ListBookingsForTrip(ctx context.Context, tripID uuid.UUID) ([]models.Booking, error)

	IndexPickup(ctx context.Context, tripID uuid.UUID, coord models.Coordinate) error
	UnindexPickup(ctx context.Context, tripID uuid.UUID) error
}
