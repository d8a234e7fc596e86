package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/ridepool/ridepool/internal/pkg/models"
)

// UserRepo defines the interface for user data access operations
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/ridepool/ridepool/services/users UserRepo
type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error

	CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error
	GetVehicle(ctx context.Context, id uuid.UUID) (*models.Vehicle, error)
	ListVehiclesByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Vehicle, error)
	UpdateVehicle(ctx context.Context, vehicle *models.Vehicle) error
	DeleteVehicle(ctx context.Context, id uuid.UUID) error
	CountOpenTripsByVehicle(ctx context.Context, vehicleID uuid.UUID) (int, error)

	CreateReview(ctx context.Context, review *models.Review) error
	GetReview(ctx context.Context, tripID, reviewerID, reviewedID uuid.UUID) (*models.Review, error)
	ListReviewsForUser(ctx context.Context, userID uuid.UUID) ([]models.Review, error)
	GetRatingSummary(ctx context.Context, userID uuid.UUID) (models.RatingSummary, error)
	GetTripForReview(ctx context.Context, tripID uuid.UUID) (*models.Trip, error)
	HasConfirmedBooking(ctx context.Context, tripID, userID uuid.UUID) (bool, error)
}
