package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/ridepool/ridepool/internal/pkg/models"
)

// UserUC defines the interface for user business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/ridepool/ridepool/services/users UserUC
type UserUC interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)

	GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *models.UpdateProfileRequest) (*models.User, error)

	AddVehicle(ctx context.Context, ownerID uuid.UUID, vehicle *models.Vehicle) (*models.Vehicle, error)
	UpdateVehicle(ctx context.Context, ownerID uuid.UUID, vehicle *models.Vehicle) (*models.Vehicle, error)
	DeleteVehicle(ctx context.Context, ownerID, vehicleID uuid.UUID) error

	CreateReview(ctx context.Context, reviewerID uuid.UUID, req *models.CreateReviewRequest) (*models.Review, error)
	ListReviews(ctx context.Context, userID uuid.UUID) ([]models.Review, error)
}
