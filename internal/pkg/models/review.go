package models

import (
	"time"

	"github.com/google/uuid"
)

// Review is a rating left by one trip participant about the other
type Review struct {
	ID         uuid.UUID `json:"id" db:"id"`
	TripID     uuid.UUID `json:"trip_id" db:"trip_id"`
	ReviewerID uuid.UUID `json:"reviewer_id" db:"reviewer_id"`
	ReviewedID uuid.UUID `json:"reviewed_id" db:"reviewed_id"`
	Rating     int       `json:"rating" db:"rating"`
	Comment    string    `json:"comment,omitempty" db:"comment"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// RatingSummary aggregates the reviews received by a user
type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// CreateReviewRequest is the payload for reviewing a trip counterpart
type CreateReviewRequest struct {
	TripID     uuid.UUID `json:"trip_id"`
	ReviewedID uuid.UUID `json:"reviewed_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
}
