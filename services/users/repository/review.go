package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/ridepool/ridepool/internal/pkg/models"
)

// CreateReview inserts a review
func (r *UserRepo) CreateReview(ctx context.Context, review *models.Review) error {
	query := `
		INSERT INTO reviews (id, trip_id, reviewer_id, reviewed_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		review.ID,
		review.TripID,
		review.ReviewerID,
		review.ReviewedID,
		review.Rating,
		review.Comment,
		review.CreatedAt,
	)

	return err
}

// GetReview retrieves a review by its unique (trip, reviewer, reviewed)
// triple. Returns (nil, nil) when absent.
func (r *UserRepo) GetReview(ctx context.Context, tripID, reviewerID, reviewedID uuid.UUID) (*models.Review, error) {
	query := `
		SELECT id, trip_id, reviewer_id, reviewed_id, rating, comment, created_at
		FROM reviews
		WHERE trip_id = $1 AND reviewer_id = $2 AND reviewed_id = $3
	`

	review := &models.Review{}
	var comment sql.NullString
	err := r.db.QueryRowContext(ctx, query, tripID, reviewerID, reviewedID).Scan(
		&review.ID,
		&review.TripID,
		&review.ReviewerID,
		&review.ReviewedID,
		&review.Rating,
		&comment,
		&review.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	if comment.Valid {
		review.Comment = comment.String
	}

	return review, nil
}

// ListReviewsForUser retrieves reviews received by a user, newest first
func (r *UserRepo) ListReviewsForUser(ctx context.Context, userID uuid.UUID) ([]models.Review, error) {
	query := `
		SELECT id, trip_id, reviewer_id, reviewed_id, rating, comment, created_at
		FROM reviews
		WHERE reviewed_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		var review models.Review
		var comment sql.NullString
		if err := rows.Scan(
			&review.ID,
			&review.TripID,
			&review.ReviewerID,
			&review.ReviewedID,
			&review.Rating,
			&comment,
			&review.CreatedAt,
		); err != nil {
			return nil, err
		}
		if comment.Valid {
			review.Comment = comment.String
		}
		reviews = append(reviews, review)
	}

	return reviews, rows.Err()
}

// GetRatingSummary aggregates the reviews received by a user
func (r *UserRepo) GetRatingSummary(ctx context.Context, userID uuid.UUID) (models.RatingSummary, error) {
	query := `
		SELECT COALESCE(AVG(rating), 0), COUNT(*)
		FROM reviews
		WHERE reviewed_id = $1
	`

	var summary models.RatingSummary
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&summary.Average, &summary.Count)
	return summary, err
}

// GetTripForReview loads the trip fields review validation needs.
// Returns (nil, nil) when the trip does not exist.
func (r *UserRepo) GetTripForReview(ctx context.Context, tripID uuid.UUID) (*models.Trip, error) {
	query := `
		SELECT id, provider_id, status, departure_time
		FROM trips
		WHERE id = $1
	`

	trip := &models.Trip{}
	err := r.db.QueryRowContext(ctx, query, tripID).Scan(
		&trip.ID,
		&trip.ProviderID,
		&trip.Status,
		&trip.DepartureTime,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return trip, nil
}

// HasConfirmedBooking reports whether the user holds a confirmed booking
// on the trip
func (r *UserRepo) HasConfirmedBooking(ctx context.Context, tripID, userID uuid.UUID) (bool, error) {
	query := `
		SELECT COUNT(*) FROM bookings
		WHERE trip_id = $1 AND seeker_id = $2 AND status = 'CONFIRMED'
	`

	var count int
	if err := r.db.QueryRowContext(ctx, query, tripID, userID).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
