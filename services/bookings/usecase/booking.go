package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/ridepool/ridepool/internal/pkg/errors"
	"github.com/ridepool/ridepool/internal/pkg/logger"
	"github.com/ridepool/ridepool/internal/pkg/models"
	"github.com/ridepool/ridepool/services/bookings"
)

// bookingUC implements the bookings.BookingUC interface
type bookingUC struct {
	cfg         *models.Config
	bookingRepo bookings.BookingRepo
	bookingGW   bookings.BookingGW
}

// NewBookingUC creates a new booking use case
func NewBookingUC(cfg *models.Config, bookingRepo bookings.BookingRepo, bookingGW bookings.BookingGW) bookings.BookingUC {
	return &bookingUC{
		cfg:         cfg,
		bookingRepo: bookingRepo,
		bookingGW:   bookingGW,
	}
}

// CreateBooking reserves seats on a trip. The reservation itself is
// all-or-nothing in the repository; event publication and geo index
// maintenance happen after commit.
func (uc *bookingUC) CreateBooking(ctx context.Context, seekerID uuid.UUID, req *models.CreateBookingRequest) (*models.Booking, error) {
	if req.SeatsBooked < models.MinSeatsPerBooking || req.SeatsBooked > models.MaxSeatsPerBooking {
		return nil, apperrors.Validation("seat count must be between 1 and 8")
	}

	booking, trip, err := uc.bookingRepo.CreateBooking(ctx, req.TripID, seekerID, req.SeatsBooked)
	if err != nil {
		return nil, err
	}

	logger.Info("Booking confirmed",
		logger.String("booking_id", booking.ID.String()),
		logger.String("trip_id", trip.ID.String()),
		logger.Int("seats", booking.SeatsBooked),
	)

	// A trip that just filled up leaves the bookable geo set.
	if trip.Status == models.TripStatusFull {
		if err := uc.bookingRepo.UnindexPickup(ctx, trip.ID); err != nil {
			logger.Warn("Failed to remove full trip from geo index",
				logger.Err(err),
				logger.String("trip_id", trip.ID.String()),
			)
		}
	}

	event := &models.BookingCreatedEvent{
		BookingID:      booking.ID,
		TripID:         trip.ID,
		ConversationID: *booking.ConversationID,
		SeekerID:       booking.SeekerID,
		ProviderID:     trip.ProviderID,
		SeatsBooked:    booking.SeatsBooked,
		CreatedAt:      booking.CreatedAt,
	}
	if err := uc.bookingGW.PublishBookingCreated(ctx, event); err != nil {
		logger.Warn("Failed to publish booking created event",
			logger.Err(err),
			logger.String("booking_id", booking.ID.String()),
		)
	}

	return booking, nil
}

// CancelBooking cancels a confirmed booking within the allowed window
func (uc *bookingUC) CancelBooking(ctx context.Context, seekerID, bookingID uuid.UUID) error {
	now := time.Now().UTC()

	booking, trip, err := uc.bookingRepo.CancelBooking(ctx, bookingID, seekerID, now)
	if err != nil {
		return err
	}

	logger.Info("Booking cancelled",
		logger.String("booking_id", booking.ID.String()),
		logger.String("trip_id", trip.ID.String()),
		logger.Int("seats_freed", booking.SeatsBooked),
	)

	// The freed seats may have made the trip bookable again.
	if trip.IsOpenForBookings() && trip.PickupCoord != nil {
		if err := uc.bookingRepo.IndexPickup(ctx, trip.ID, *trip.PickupCoord); err != nil {
			logger.Warn("Failed to re-index reopened trip",
				logger.Err(err),
				logger.String("trip_id", trip.ID.String()),
			)
		}
	}

	event := &models.BookingCancelledEvent{
		BookingID:   booking.ID,
		TripID:      trip.ID,
		SeekerID:    booking.SeekerID,
		SeatsFreed:  booking.SeatsBooked,
		CancelledAt: now,
	}
	if err := uc.bookingGW.PublishBookingCancelled(ctx, event); err != nil {
		logger.Warn("Failed to publish booking cancelled event",
			logger.Err(err),
			logger.String("booking_id", booking.ID.String()),
		)
	}

	return nil
}

// GetBooking retrieves a booking visible to its owner
func (uc *bookingUC) GetBooking(ctx context.Context, userID, bookingID uuid.UUID) (*models.Booking, error) {
	booking, err := uc.bookingRepo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, apperrors.Internal("failed to load booking", err)
	}
	if booking == nil || booking.SeekerID != userID {
		return nil, apperrors.NotFound("booking")
	}
	return booking, nil
}

// ListMyBookings retrieves the caller's bookings
func (uc *bookingUC) ListMyBookings(ctx context.Context, userID uuid.UUID) ([]models.Booking, error) {
	bookingList, err := uc.bookingRepo.ListBookingsByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("failed to list bookings", err)
	}
	return bookingList, nil
}

// ListTripBookings retrieves the bookings on a trip, provider only
func (uc *bookingUC) ListTripBookings(ctx context.Context, providerID, tripID uuid.UUID) ([]models.Booking, error) {
	trip, err := uc.bookingRepo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, apperrors.Internal("failed to load trip", err)
	}
	if trip == nil {
		return nil, apperrors.NotFound("trip")
	}
	if trip.ProviderID != providerID {
		return nil, apperrors.Forbidden("only the trip provider may list its bookings")
	}

	bookingList, err := uc.bookingRepo.ListBookingsForTrip(ctx, tripID)
	if err != nil {
		return nil, apperrors.Internal("failed to list trip bookings", err)
	}
	return bookingList, nil
}
