package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/ridepool/ridepool/internal/pkg/errors"
	"github.com/ridepool/ridepool/internal/pkg/models"
	"github.com/ridepool/ridepool/services/users/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "ridepool-test",
		},
	}
}

func TestRegister_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)

	req := &models.RegisterRequest{
		Email:     "Anna@Example.com",
		Password:  "correct-horse",
		FirstName: "Anna",
		LastName:  "Svensson",
	}

	mockRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "anna@example.com").
		Return(nil, nil)
	mockRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, user *models.User) error {
			assert.Equal(t, "anna@example.com", user.Email)
			assert.NotEqual(t, req.Password, user.PasswordHash, "password must be hashed")
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)))
			return nil
		})

	uc := NewUserUC(testConfig(), mockRepo)

	// Act
	resp, err := uc.Register(context.Background(), req)

	// Assert
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.NotEqual(t, uuid.Nil, resp.UserID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "anna@example.com").
		Return(&models.User{ID: uuid.New(), Email: "anna@example.com"}, nil)

	uc := NewUserUC(testConfig(), mockRepo)

	_, err := uc.Register(context.Background(), &models.RegisterRequest{
		Email:     "anna@example.com",
		Password:  "correct-horse",
		FirstName: "Anna",
		LastName:  "Svensson",
	})

	assert.Error(t, err)
	assert.Equal(t, apperrors.CodeConflict, apperrors.CodeOf(err))
}

func TestRegister_InvalidPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(testConfig(), mockRepo)

	tests := []struct {
		name string
		req  *models.RegisterRequest
	}{
		{"missing email", &models.RegisterRequest{Password: "correct-horse", FirstName: "A", LastName: "B"}},
		{"malformed email", &models.RegisterRequest{Email: "not-an-email", Password: "correct-horse", FirstName: "A", LastName: "B"}},
		{"short password", &models.RegisterRequest{Email: "a@b.se", Password: "short", FirstName: "A", LastName: "B"}},
		{"missing name", &models.RegisterRequest{Email: "a@b.se", Password: "correct-horse"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Register(context.Background(), tt.req)
			assert.Equal(t, apperrors.CodeValidation, apperrors.CodeOf(err))
		})
	}
}

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.DefaultCost)
	user := &models.User{
		ID:           uuid.New(),
		Email:        "anna@example.com",
		PasswordHash: string(hash),
	}

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "anna@example.com").
		Return(user, nil)

	uc := NewUserUC(testConfig(), mockRepo)

	resp, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    "anna@example.com",
		Password: "correct-horse",
	})

	assert.NoError(t, err)
	assert.Equal(t, user.ID, resp.UserID)
	assert.Greater(t, resp.ExpiresAt, time.Now().Unix())
}

func TestLogin_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.DefaultCost)
	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "anna@example.com").
		Return(&models.User{ID: uuid.New(), PasswordHash: string(hash)}, nil)

	uc := NewUserUC(testConfig(), mockRepo)

	_, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    "anna@example.com",
		Password: "battery-staple",
	})

	assert.Equal(t, apperrors.CodeForbidden, apperrors.CodeOf(err))
}

func TestLogin_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "ghost@example.com").
		Return(nil, nil)

	uc := NewUserUC(testConfig(), mockRepo)

	_, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever1",
	})

	// Same error as a wrong password so the endpoint does not leak
	// which emails are registered.
	assert.Equal(t, apperrors.CodeForbidden, apperrors.CodeOf(err))
}

func TestGetProfile_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockRepo.EXPECT().GetUserByID(gomock.Any(), userID).Return(&models.User{ID: userID}, nil)
	mockRepo.EXPECT().ListVehiclesByOwner(gomock.Any(), userID).Return([]models.Vehicle{{Brand: "Volvo"}}, nil)
	mockRepo.EXPECT().GetRatingSummary(gomock.Any(), userID).Return(models.RatingSummary{Average: 4.5, Count: 12}, nil)

	uc := NewUserUC(testConfig(), mockRepo)

	profile, err := uc.GetProfile(context.Background(), userID)

	assert.NoError(t, err)
	assert.Equal(t, userID, profile.User.ID)
	assert.Len(t, profile.Vehicles, 1)
	assert.Equal(t, 4.5, profile.Rating.Average)
}

func TestDeleteVehicle_BlockedByOpenTrips(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	vehicleID := uuid.New()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockRepo.EXPECT().GetVehicle(gomock.Any(), vehicleID).Return(&models.Vehicle{ID: vehicleID, OwnerID: ownerID}, nil)
	mockRepo.EXPECT().CountOpenTripsByVehicle(gomock.Any(), vehicleID).Return(2, nil)

	uc := NewUserUC(testConfig(), mockRepo)

	err := uc.DeleteVehicle(context.Background(), ownerID, vehicleID)

	assert.Equal(t, apperrors.CodeInvalidState, apperrors.CodeOf(err))
}

func TestDeleteVehicle_NotOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vehicleID := uuid.New()
	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockRepo.EXPECT().GetVehicle(gomock.Any(), vehicleID).Return(&models.Vehicle{ID: vehicleID, OwnerID: uuid.New()}, nil)

	uc := NewUserUC(testConfig(), mockRepo)

	err := uc.DeleteVehicle(context.Background(), uuid.New(), vehicleID)

	assert.Equal(t, apperrors.CodeForbidden, apperrors.CodeOf(err))
}

func TestDeleteVehicle_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	vehicleID := uuid.New()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockRepo.EXPECT().GetVehicle(gomock.Any(), vehicleID).Return(&models.Vehicle{ID: vehicleID, OwnerID: ownerID}, nil)
	mockRepo.EXPECT().CountOpenTripsByVehicle(gomock.Any(), vehicleID).Return(0, nil)
	mockRepo.EXPECT().DeleteVehicle(gomock.Any(), vehicleID).Return(nil)

	uc := NewUserUC(testConfig(), mockRepo)

	assert.NoError(t, uc.DeleteVehicle(context.Background(), ownerID, vehicleID))
}

func TestCreateReview_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tripID := uuid.New()
	providerID := uuid.New()
	passengerID := uuid.New()

	trip := &models.Trip{ID: tripID, ProviderID: providerID, Status: models.TripStatusCompleted}

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockRepo.EXPECT().GetTripForReview(gomock.Any(), tripID).Return(trip, nil)
	mockRepo.EXPECT().HasConfirmedBooking(gomock.Any(), tripID, passengerID).Return(true, nil)
	mockRepo.EXPECT().GetReview(gomock.Any(), tripID, passengerID, providerID).Return(nil, nil)
	mockRepo.EXPECT().CreateReview(gomock.Any(), gomock.Any()).Return(nil)

	uc := NewUserUC(testConfig(), mockRepo)

	review, err := uc.CreateReview(context.Background(), passengerID, &models.CreateReviewRequest{
		TripID:     tripID,
		ReviewedID: providerID,
		Rating:     5,
		Comment:    "  smooth ride  ",
	})

	assert.NoError(t, err)
	assert.Equal(t, "smooth ride", review.Comment)
	assert.Equal(t, passengerID, review.ReviewerID)
}

func TestCreateReview_TripNotCompleted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tripID := uuid.New()
	providerID := uuid.New()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockRepo.EXPECT().GetTripForReview(gomock.Any(), tripID).
		Return(&models.Trip{ID: tripID, ProviderID: providerID, Status: models.TripStatusOngoing}, nil)

	uc := NewUserUC(testConfig(), mockRepo)

	_, err := uc.CreateReview(context.Background(), uuid.New(), &models.CreateReviewRequest{
		TripID:     tripID,
		ReviewedID: providerID,
		Rating:     4,
	})

	assert.Equal(t, apperrors.CodeInvalidState, apperrors.CodeOf(err))
}

func TestCreateReview_NonParticipant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tripID := uuid.New()
	providerID := uuid.New()
	outsiderID := uuid.New()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockRepo.EXPECT().GetTripForReview(gomock.Any(), tripID).
		Return(&models.Trip{ID: tripID, ProviderID: providerID, Status: models.TripStatusCompleted}, nil)
	mockRepo.EXPECT().HasConfirmedBooking(gomock.Any(), tripID, outsiderID).Return(false, nil)

	uc := NewUserUC(testConfig(), mockRepo)

	_, err := uc.CreateReview(context.Background(), outsiderID, &models.CreateReviewRequest{
		TripID:     tripID,
		ReviewedID: providerID,
		Rating:     3,
	})

	assert.Equal(t, apperrors.CodeForbidden, apperrors.CodeOf(err))
}

func TestCreateReview_Duplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tripID := uuid.New()
	providerID := uuid.New()
	passengerID := uuid.New()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockRepo.EXPECT().GetTripForReview(gomock.Any(), tripID).
		Return(&models.Trip{ID: tripID, ProviderID: providerID, Status: models.TripStatusCompleted}, nil)
	mockRepo.EXPECT().HasConfirmedBooking(gomock.Any(), tripID, passengerID).Return(true, nil)
	mockRepo.EXPECT().GetReview(gomock.Any(), tripID, passengerID, providerID).
		Return(&models.Review{ID: uuid.New()}, nil)

	uc := NewUserUC(testConfig(), mockRepo)

	_, err := uc.CreateReview(context.Background(), passengerID, &models.CreateReviewRequest{
		TripID:     tripID,
		ReviewedID: providerID,
		Rating:     5,
	})

	assert.Equal(t, apperrors.CodeConflict, apperrors.CodeOf(err))
}

func TestCreateReview_RatingOutOfRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(testConfig(), mockRepo)

	for _, rating := range []int{0, 6, -1} {
		_, err := uc.CreateReview(context.Background(), uuid.New(), &models.CreateReviewRequest{
			TripID:     uuid.New(),
			ReviewedID: uuid.New(),
			Rating:     rating,
		})
		assert.Equal(t, apperrors.CodeValidation, apperrors.CodeOf(err))
	}
}

func TestUpdateProfile_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockRepo.EXPECT().GetUserByID(gomock.Any(), userID).Return(&models.User{ID: userID}, nil)
	mockRepo.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

	uc := NewUserUC(testConfig(), mockRepo)

	_, err := uc.UpdateProfile(context.Background(), userID, &models.UpdateProfileRequest{
		FirstName: "Anna",
		LastName:  "Svensson",
	})

	assert.Equal(t, apperrors.CodeInternal, apperrors.CodeOf(err))
}
