package bookings

import (
	"context"

	"github.com/google/uuid"

	"github.com/ridepool/ridepool/internal/pkg/models"
)

// BookingUC defines the interface for booking business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/ridepool/ridepool/services/bookings BookingUC
type BookingUC interface {
	CreateBooking(ctx context.Context, seekerID uuid.UUID, req *models.CreateBookingRequest) (*models.Booking, error)
	CancelBooking(ctx context.Context, seekerID, bookingID uuid.UUID) error
	GetBooking(ctx context.Context, userID, bookingID uuid.UUID) (*models.Booking, error)
	ListMyBookings(ctx context.Context, userID uuid.UUID) ([]models.Booking, error)
	ListTripBookings(ctx context.Context, providerID, tripID uuid.UUID) ([]models.Booking, error)
}
