package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the state of a seat reservation
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// Seat count bounds for a single booking
const (
	MinSeatsPerBooking = 1
	MaxSeatsPerBooking = 8
)

// Booking represents a reservation of seats on a trip
type Booking struct {
	ID             uuid.UUID     `json:"id" db:"id"`
	TripID         uuid.UUID     `json:"trip_id" db:"trip_id"`
	SeekerID       uuid.UUID     `json:"seeker_id" db:"seeker_id"`
	SeatsBooked    int           `json:"seats_booked" db:"seats_booked"`
	Status         BookingStatus `json:"status" db:"status"`
	ConversationID *uuid.UUID    `json:"conversation_id,omitempty" db:"conversation_id"`
	CreatedAt      time.Time     `json:"created_at" db:"created_at"`
}

// CreateBookingRequest is the payload for reserving seats
type CreateBookingRequest struct {
	TripID      uuid.UUID `json:"trip_id"`
	SeatsBooked int       `json:"seats_booked"`
}

// BookingCreatedEvent is published when a booking is confirmed
type BookingCreatedEvent struct {
	BookingID      uuid.UUID `json:"booking_id"`
	TripID         uuid.UUID `json:"trip_id"`
	ConversationID uuid.UUID `json:"conversation_id"`
	SeekerID       uuid.UUID `json:"seeker_id"`
	ProviderID     uuid.UUID `json:"provider_id"`
	SeatsBooked    int       `json:"seats_booked"`
	CreatedAt      time.Time `json:"created_at"`
}

// BookingCancelledEvent is published when a booking is cancelled
type BookingCancelledEvent struct {
	BookingID   uuid.UUID `json:"booking_id"`
	TripID      uuid.UUID `json:"trip_id"`
	SeekerID    uuid.UUID `json:"seeker_id"`
	SeatsFreed  int       `json:"seats_freed"`
	CancelledAt time.Time `json:"cancelled_at"`
}
