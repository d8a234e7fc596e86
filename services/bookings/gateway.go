package bookings

import (
	"context"

	"github.com/ridepool/ridepool/internal/pkg/models"
)

// BookingGW defines the interface for booking event publishing
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/ridepool/ridepool/services/bookings BookingGW
type BookingGW interface {
	PublishBookingCreated(ctx context.Context, event *models.BookingCreatedEvent) error
	PublishBookingCancelled(ctx context.Context, event *models.BookingCancelledEvent) error
}
