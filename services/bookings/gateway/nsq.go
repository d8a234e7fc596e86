package gateway

import (
	"context"

	"github.com/ridepool/ridepool/internal/pkg/logger"
	"github.com/ridepool/ridepool/internal/pkg/models"
	"github.com/ridepool/ridepool/internal/pkg/nsq"
)

// Booking event topics
const (
	TopicBookingCreated   = "booking.created"
	TopicBookingCancelled = "booking.cancelled"
)

// BookingGW publishes booking lifecycle events to NSQ
type BookingGW struct {
	producer *nsq.Producer
}

// NewBookingGW creates a new booking gateway
func NewBookingGW(producer *nsq.Producer) *BookingGW {
	return &BookingGW{producer: producer}
}

// PublishBookingCreated publishes a booking.created event
func (g *BookingGW) PublishBookingCreated(ctx context.Context, event *models.BookingCreatedEvent) error {
	logger.Info("Publishing booking created event",
		logger.String("booking_id", event.BookingID.String()),
		logger.String("trip_id", event.TripID.String()),
	)
	return g.producer.Publish(TopicBookingCreated, event)
}

// PublishBookingCancelled publishes a booking.cancelled event
func (g *BookingGW) PublishBookingCancelled(ctx context.Context, event *models.BookingCancelledEvent) error {
	logger.Info("Publishing booking cancelled event",
		logger.String("booking_id", event.BookingID.String()),
		logger.String("trip_id", event.TripID.String()),
	)
	return g.producer.Publish(TopicBookingCancelled, event)
}
