package models

import (
	"time"

	"github.com/google/uuid"
)

// TripStatus represents the lifecycle state of a published trip
type TripStatus string

const (
	TripStatusPublished       TripStatus = "PUBLISHED"
	TripStatusPartiallyBooked TripStatus = "PARTIALLY_BOOKED"
	TripStatusFull            TripStatus = "FULL"
	TripStatusOngoing         TripStatus = "ONGOING"
	TripStatusCompleted       TripStatus = "COMPLETED"
	TripStatusCancelled       TripStatus = "CANCELLED"
)

// Coordinate is an explicit optional geographic point. A trip side without
// a recorded coordinate carries a nil *Coordinate, never zero values.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Trip represents a published ride offer with capacity and route
type Trip struct {
	ID              uuid.UUID   `json:"id" db:"id"`
	ProviderID      uuid.UUID   `json:"provider_id" db:"provider_id"`
	PickupLocation  string      `json:"pickup_location" db:"pickup_location"`
	PickupCoord     *Coordinate `json:"pickup_coord,omitempty"`
	DropoffLocation string      `json:"dropoff_location" db:"dropoff_location"`
	DropoffCoord    *Coordinate `json:"dropoff_coord,omitempty"`
	DepartureTime   time.Time   `json:"departure_time" db:"departure_time"`
	AvailableSeats  int         `json:"available_seats" db:"available_seats"`
	PricePerSeat    float64     `json:"price_per_seat" db:"price_per_seat"`
	VehicleID       *uuid.UUID  `json:"vehicle_id,omitempty" db:"vehicle_id"`
	Notes           string      `json:"notes,omitempty" db:"notes"`
	AllowSmoking    bool        `json:"allow_smoking" db:"allow_smoking"`
	AllowPets       bool        `json:"allow_pets" db:"allow_pets"`
	Status          TripStatus  `json:"status" db:"status"`
	CreatedAt       time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at" db:"updated_at"`
}

// IsOpenForBookings reports whether new bookings may be placed on the trip
func (t *Trip) IsOpenForBookings() bool {
	return t.Status == TripStatusPublished || t.Status == TripStatusPartiallyBooked
}

// IsTerminal reports whether the trip reached a final state
func (t *Trip) IsTerminal() bool {
	return t.Status == TripStatusCompleted || t.Status == TripStatusCancelled
}

// CreateTripRequest is the payload for publishing a new trip
type CreateTripRequest struct {
	PickupLocation  string      `json:"pickup_location"`
	PickupCoord     *Coordinate `json:"pickup_coord,omitempty"`
	DropoffLocation string      `json:"dropoff_location"`
	DropoffCoord    *Coordinate `json:"dropoff_coord,omitempty"`
	DepartureTime   time.Time   `json:"departure_time"`
	AvailableSeats  int         `json:"available_seats"`
	PricePerSeat    float64     `json:"price_per_seat"`
	VehicleID       *uuid.UUID  `json:"vehicle_id,omitempty"`
	Notes           string      `json:"notes,omitempty"`
	AllowSmoking    bool        `json:"allow_smoking"`
	AllowPets       bool        `json:"allow_pets"`
}

// UpdateTripRequest is the payload for editing an existing trip
type UpdateTripRequest struct {
	PickupLocation  string      `json:"pickup_location"`
	PickupCoord     *Coordinate `json:"pickup_coord,omitempty"`
	DropoffLocation string      `json:"dropoff_location"`
	DropoffCoord    *Coordinate `json:"dropoff_coord,omitempty"`
	DepartureTime   time.Time   `json:"departure_time"`
	AvailableSeats  int         `json:"available_seats"`
	PricePerSeat    float64     `json:"price_per_seat"`
	VehicleID       *uuid.UUID  `json:"vehicle_id,omitempty"`
	Notes           string      `json:"notes,omitempty"`
	AllowSmoking    bool        `json:"allow_smoking"`
	AllowPets       bool        `json:"allow_pets"`
}

// NearbyTrip pairs a bookable trip with its distance from a query point
type NearbyTrip struct {
	Trip       *Trip   `json:"trip"`
	DistanceKm float64 `json:"distance_km"`
}
