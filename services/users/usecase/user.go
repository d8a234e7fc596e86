package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/ridepool/ridepool/internal/pkg/errors"
	"github.com/ridepool/ridepool/internal/pkg/jwt"
	"github.com/ridepool/ridepool/internal/pkg/logger"
	"github.com/ridepool/ridepool/internal/pkg/models"
	"github.com/ridepool/ridepool/services/users"
)

// userUC implements the users.UserUC interface
type userUC struct {
	cfg      *models.Config
	userRepo users.UserRepo
}

// NewUserUC creates a new user use case
func NewUserUC(cfg *models.Config, userRepo users.UserRepo) users.UserUC {
	return &userUC{
		cfg:      cfg,
		userRepo: userRepo,
	}
}

// Register creates a new account and returns a signed token
func (uc *userUC) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, apperrors.Validation("a valid email is required")
	}
	if len(req.Password) < 8 {
		return nil, apperrors.Validation("password must be at least 8 characters")
	}
	if strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
		return nil, apperrors.Validation("first and last name are required")
	}

	existing, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.Internal("failed to check existing account", err)
	}
	if existing != nil {
		return nil, apperrors.Conflict("an account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Internal("failed to hash password", err)
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Chattiness:   models.ChattinessModerate,
		Smoking:      models.SmokingNone,
		Pets:         models.PetsNone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		return nil, apperrors.Internal("failed to create user", err)
	}

	logger.Info("User registered",
		logger.String("user_id", user.ID.String()),
		logger.String("email", user.Email),
	)

	return uc.issueToken(user)
}

// Login authenticates an account and returns a signed token
func (uc *userUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.Internal("failed to look up account", err)
	}
	if user == nil {
		return nil, apperrors.Forbidden("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.Forbidden("invalid email or password")
	}

	return uc.issueToken(user)
}

func (uc *userUC) issueToken(user *models.User) (*models.AuthResponse, error) {
	token, expiresAt, err := jwt.GenerateToken(user.ID, user.Email, uc.cfg)
	if err != nil {
		return nil, apperrors.Internal("failed to sign token", err)
	}

	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		UserID:    user.ID,
	}, nil
}

// GetProfile returns a user with their vehicles and rating aggregates
func (uc *userUC) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, apperrors.NotFound("user")
	}

	vehicles, err := uc.userRepo.ListVehiclesByOwner(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("failed to list vehicles", err)
	}

	rating, err := uc.userRepo.GetRatingSummary(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("failed to load rating summary", err)
	}

	return &models.UserProfile{
		User:     user,
		Vehicles: vehicles,
		Rating:   rating,
	}, nil
}

// UpdateProfile edits personal details and travel preferences
func (uc *userUC) UpdateProfile(ctx context.Context, userID uuid.UUID, req *models.UpdateProfileRequest) (*models.User, error) {
	if strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
		return nil, apperrors.Validation("first and last name are required")
	}

	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, apperrors.NotFound("user")
	}

	user.FirstName = strings.TrimSpace(req.FirstName)
	user.LastName = strings.TrimSpace(req.LastName)
	user.Bio = req.Bio
	user.ProfilePicture = req.ProfilePicture
	if req.Chattiness != "" {
		user.Chattiness = req.Chattiness
	}
	if req.Smoking != "" {
		user.Smoking = req.Smoking
	}
	if req.Pets != "" {
		user.Pets = req.Pets
	}

	if err := uc.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, apperrors.Internal("failed to update profile", err)
	}

	return user, nil
}

// AddVehicle registers a vehicle for the owner
func (uc *userUC) AddVehicle(ctx context.Context, ownerID uuid.UUID, vehicle *models.Vehicle) (*models.Vehicle, error) {
	if err := validateVehicle(vehicle); err != nil {
		return nil, err
	}

	vehicle.ID = uuid.New()
	vehicle.OwnerID = ownerID
	vehicle.CreatedAt = time.Now().UTC()

	if err := uc.userRepo.CreateVehicle(ctx, vehicle); err != nil {
		return nil, apperrors.Internal("failed to create vehicle", err)
	}

	return vehicle, nil
}

// UpdateVehicle edits a vehicle owned by the caller
func (uc *userUC) UpdateVehicle(ctx context.Context, ownerID uuid.UUID, vehicle *models.Vehicle) (*models.Vehicle, error) {
	if err := validateVehicle(vehicle); err != nil {
		return nil, err
	}

	existing, err := uc.userRepo.GetVehicle(ctx, vehicle.ID)
	if err != nil {
		return nil, apperrors.Internal("failed to load vehicle", err)
	}
	if existing == nil {
		return nil, apperrors.NotFound("vehicle")
	}
	if existing.OwnerID != ownerID {
		return nil, apperrors.Forbidden("you do not own this vehicle")
	}

	existing.Brand = vehicle.Brand
	existing.Model = vehicle.Model
	existing.LicensePlate = vehicle.LicensePlate
	existing.Color = vehicle.Color

	if err := uc.userRepo.UpdateVehicle(ctx, existing); err != nil {
		return nil, apperrors.Internal("failed to update vehicle", err)
	}

	return existing, nil
}

// DeleteVehicle removes a vehicle unless an open trip still references it
func (uc *userUC) DeleteVehicle(ctx context.Context, ownerID, vehicleID uuid.UUID) error {
	existing, err := uc.userRepo.GetVehicle(ctx, vehicleID)
	if err != nil {
		return apperrors.Internal("failed to load vehicle", err)
	}
	if existing == nil {
		return apperrors.NotFound("vehicle")
	}
	if existing.OwnerID != ownerID {
		return apperrors.Forbidden("you do not own this vehicle")
	}

	openTrips, err := uc.userRepo.CountOpenTripsByVehicle(ctx, vehicleID)
	if err != nil {
		return apperrors.Internal("failed to check vehicle usage", err)
	}
	if openTrips > 0 {
		return apperrors.InvalidState(fmt.Sprintf("vehicle is used by %d open trip(s)", openTrips))
	}

	if err := uc.userRepo.DeleteVehicle(ctx, vehicleID); err != nil {
		return apperrors.Internal("failed to delete vehicle", err)
	}

	return nil
}

func validateVehicle(vehicle *models.Vehicle) error {
	if strings.TrimSpace(vehicle.Brand) == "" || strings.TrimSpace(vehicle.Model) == "" {
		return apperrors.Validation("vehicle brand and model are required")
	}
	if strings.TrimSpace(vehicle.LicensePlate) == "" {
		return apperrors.Validation("license plate is required")
	}
	return nil
}

// CreateReview lets a trip participant rate their counterpart once the
// trip is completed
func (uc *userUC) CreateReview(ctx context.Context, reviewerID uuid.UUID, req *models.CreateReviewRequest) (*models.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperrors.Validation("rating must be between 1 and 5")
	}
	if reviewerID == req.ReviewedID {
		return nil, apperrors.Validation("you cannot review yourself")
	}

	trip, err := uc.userRepo.GetTripForReview(ctx, req.TripID)
	if err != nil {
		return nil, apperrors.Internal("failed to load trip", err)
	}
	if trip == nil {
		return nil, apperrors.NotFound("trip")
	}
	if trip.Status != models.TripStatusCompleted {
		return nil, apperrors.InvalidState("only completed trips can be reviewed")
	}

	// Both sides must have taken part: the provider drove, everyone else
	// needs a confirmed booking.
	for _, participant := range []uuid.UUID{reviewerID, req.ReviewedID} {
		if participant == trip.ProviderID {
			continue
		}
		booked, err := uc.userRepo.HasConfirmedBooking(ctx, req.TripID, participant)
		if err != nil {
			return nil, apperrors.Internal("failed to check trip participation", err)
		}
		if !booked {
			return nil, apperrors.Forbidden("both users must have taken part in the trip")
		}
	}

	existing, err := uc.userRepo.GetReview(ctx, req.TripID, reviewerID, req.ReviewedID)
	if err != nil {
		return nil, apperrors.Internal("failed to check existing review", err)
	}
	if existing != nil {
		return nil, apperrors.Conflict("you already reviewed this user for this trip")
	}

	review := &models.Review{
		ID:         uuid.New(),
		TripID:     req.TripID,
		ReviewerID: reviewerID,
		ReviewedID: req.ReviewedID,
		Rating:     req.Rating,
		Comment:    strings.TrimSpace(req.Comment),
		CreatedAt:  time.Now().UTC(),
	}

	if err := uc.userRepo.CreateReview(ctx, review); err != nil {
		return nil, apperrors.Internal("failed to create review", err)
	}

	return review, nil
}

// ListReviews returns the reviews received by a user
func (uc *userUC) ListReviews(ctx context.Context, userID uuid.UUID) ([]models.Review, error) {
	reviews, err := uc.userRepo.ListReviewsForUser(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("failed to list reviews", err)
	}
	return reviews, nil
}
