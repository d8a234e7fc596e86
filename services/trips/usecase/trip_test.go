package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/ridepool/ridepool/internal/pkg/errors"
	"github.com/ridepool/ridepool/internal/pkg/models"
	"github.com/ridepool/ridepool/services/trips/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		Search: models.SearchConfig{
			DefaultRadiusKm: 10,
			MaxRadiusKm:     100,
		},
	}
}

func validCreateRequest() *models.CreateTripRequest {
	return &models.CreateTripRequest{
		PickupLocation:  "Bangkok",
		PickupCoord:     &models.Coordinate{Latitude: 13.7563, Longitude: 100.5018},
		DropoffLocation: "Pattaya",
		DepartureTime:   time.Now().Add(48 * time.Hour),
		AvailableSeats:  3,
		PricePerSeat:    250,
	}
}

func TestCreateTrip_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	providerID := uuid.New()
	mockRepo := mocks.NewMockTripRepo(ctrl)
	mockRepo.EXPECT().
		CreateTrip(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, trip *models.Trip) error {
			assert.Equal(t, models.TripStatusPublished, trip.Status)
			assert.Equal(t, providerID, trip.ProviderID)
			return nil
		})
	mockRepo.EXPECT().IndexPickup(gomock.Any(), gomock.Any(), models.Coordinate{Latitude: 13.7563, Longitude: 100.5018}).Return(nil)

	uc := NewTripUC(testConfig(), mockRepo)

	trip, err := uc.CreateTrip(context.Background(), providerID, validCreateRequest())

	require.NoError(t, err)
	assert.Equal(t, models.TripStatusPublished, trip.Status)
}

func TestCreateTrip_NoCoordSkipsGeoIndex(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripRepo(ctrl)
	mockRepo.EXPECT().CreateTrip(gomock.Any(), gomock.Any()).Return(nil)
	// No IndexPickup expectation: a trip without a pickup coordinate is
	// never geo-indexed.

	uc := NewTripUC(testConfig(), mockRepo)

	req := validCreateRequest()
	req.PickupCoord = nil

	_, err := uc.CreateTrip(context.Background(), uuid.New(), req)
	assert.NoError(t, err)
}

func TestCreateTrip_VehicleNotOwned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vehicleID := uuid.New()
	mockRepo := mocks.NewMockTripRepo(ctrl)
	mockRepo.EXPECT().GetVehicle(gomock.Any(), vehicleID).
		Return(&models.Vehicle{ID: vehicleID, OwnerID: uuid.New()}, nil)

	uc := NewTripUC(testConfig(), mockRepo)

	req := validCreateRequest()
	req.VehicleID = &vehicleID

	_, err := uc.CreateTrip(context.Background(), uuid.New(), req)
	assert.Equal(t, apperrors.CodeForbidden, apperrors.CodeOf(err))
}

func TestCreateTrip_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewTripUC(testConfig(), mocks.NewMockTripRepo(ctrl))

	tests := []struct {
		name   string
		mutate func(*models.CreateTripRequest)
	}{
		{"empty pickup", func(r *models.CreateTripRequest) { r.PickupLocation = " " }},
		{"empty dropoff", func(r *models.CreateTripRequest) { r.DropoffLocation = "" }},
		{"past departure", func(r *models.CreateTripRequest) { r.DepartureTime = time.Now().Add(-time.Hour) }},
		{"zero seats", func(r *models.CreateTripRequest) { r.AvailableSeats = 0 }},
		{"too many seats", func(r *models.CreateTripRequest) { r.AvailableSeats = 9 }},
		{"negative price", func(r *models.CreateTripRequest) { r.PricePerSeat = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(req)
			_, err := uc.CreateTrip(context.Background(), uuid.New(), req)
			assert.Equal(t, apperrors.CodeValidation, apperrors.CodeOf(err))
		})
	}
}

func TestUpdateTrip_SeatsBelowBooked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	providerID := uuid.New()
	tripID := uuid.New()

	mockRepo := mocks.NewMockTripRepo(ctrl)
	mockRepo.EXPECT().GetTrip(gomock.Any(), tripID).Return(&models.Trip{
		ID:             tripID,
		ProviderID:     providerID,
		Status:         models.TripStatusPartiallyBooked,
		DepartureTime:  time.Now().Add(48 * time.Hour),
		AvailableSeats: 4,
	}, nil)
	// The seat floor is enforced inside the repository write, under the
	// same lock bookings take, and surfaces unchanged to the caller.
	mockRepo.EXPECT().
		UpdateTrip(gomock.Any(), gomock.Any()).
		Return(apperrors.Validation("available seats cannot drop below seats already booked"))

	uc := NewTripUC(testConfig(), mockRepo)

	req := &models.UpdateTripRequest{
		PickupLocation:  "Bangkok",
		DropoffLocation: "Pattaya",
		DepartureTime:   time.Now().Add(48 * time.Hour),
		AvailableSeats:  2,
		PricePerSeat:    200,
	}

	_, err := uc.UpdateTrip(context.Background(), providerID, tripID, req)
	assert.Equal(t, apperrors.CodeValidation, apperrors.CodeOf(err))
}

func TestUpdateTrip_TerminalStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	providerID := uuid.New()
	tripID := uuid.New()

	mockRepo := mocks.NewMockTripRepo(ctrl)
	mockRepo.EXPECT().GetTrip(gomock.Any(), tripID).Return(&models.Trip{
		ID:         tripID,
		ProviderID: providerID,
		Status:     models.TripStatusCancelled,
	}, nil)

	uc := NewTripUC(testConfig(), mockRepo)

	req := &models.UpdateTripRequest{
		PickupLocation:  "Bangkok",
		DropoffLocation: "Pattaya",
		DepartureTime:   time.Now().Add(48 * time.Hour),
		AvailableSeats:  2,
		PricePerSeat:    200,
	}

	_, err := uc.UpdateTrip(context.Background(), providerID, tripID, req)
	assert.Equal(t, apperrors.CodeInvalidState, apperrors.CodeOf(err))
}

func TestStartTrip_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	providerID := uuid.New()
	tripID := uuid.New()

	mockRepo := mocks.NewMockTripRepo(ctrl)
	mockRepo.EXPECT().GetTrip(gomock.Any(), tripID).Return(&models.Trip{
		ID:          tripID,
		ProviderID:  providerID,
		Status:      models.TripStatusFull,
		PickupCoord: &models.Coordinate{Latitude: 13.75, Longitude: 100.5},
	}, nil)
	mockRepo.EXPECT().UpdateTripStatus(gomock.Any(), tripID, models.TripStatusOngoing).Return(nil)
	mockRepo.EXPECT().UnindexPickup(gomock.Any(), tripID).Return(nil)

	uc := NewTripUC(testConfig(), mockRepo)

	trip, err := uc.StartTrip(context.Background(), providerID, tripID)

	require.NoError(t, err)
	assert.Equal(t, models.TripStatusOngoing, trip.Status)
}

func TestStartTrip_NotProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tripID := uuid.New()
	mockRepo := mocks.NewMockTripRepo(ctrl)
	mockRepo.EXPECT().GetTrip(gomock.Any(), tripID).Return(&models.Trip{
		ID:         tripID,
		ProviderID: uuid.New(),
		Status:     models.TripStatusPublished,
	}, nil)

	uc := NewTripUC(testConfig(), mockRepo)

	_, err := uc.StartTrip(context.Background(), uuid.New(), tripID)
	assert.Equal(t, apperrors.CodeForbidden, apperrors.CodeOf(err))
}

func TestCompleteTrip_NotOngoing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	providerID := uuid.New()
	tripID := uuid.New()

	mockRepo := mocks.NewMockTripRepo(ctrl)
	mockRepo.EXPECT().GetTrip(gomock.Any(), tripID).Return(&models.Trip{
		ID:         tripID,
		ProviderID: providerID,
		Status:     models.TripStatusPublished,
	}, nil)

	uc := NewTripUC(testConfig(), mockRepo)

	_, err := uc.CompleteTrip(context.Background(), providerID, tripID)
	assert.Equal(t, apperrors.CodeInvalidState, apperrors.CodeOf(err))
}

func TestCancelTrip_RemovesGeoIndex(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	providerID := uuid.New()
	tripID := uuid.New()

	mockRepo := mocks.NewMockTripRepo(ctrl)
	mockRepo.EXPECT().GetTrip(gomock.Any(), tripID).Return(&models.Trip{
		ID:          tripID,
		ProviderID:  providerID,
		Status:      models.TripStatusPublished,
		PickupCoord: &models.Coordinate{Latitude: 13.75, Longitude: 100.5},
	}, nil)
	mockRepo.EXPECT().UpdateTripStatus(gomock.Any(), tripID, models.TripStatusCancelled).Return(nil)
	mockRepo.EXPECT().UnindexPickup(gomock.Any(), tripID).Return(nil)

	uc := NewTripUC(testConfig(), mockRepo)

	trip, err := uc.CancelTrip(context.Background(), providerID, tripID)

	require.NoError(t, err)
	assert.Equal(t, models.TripStatusCancelled, trip.Status)
}

func TestNearbyTrips_FiltersClosedAndSortsByDistance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	center := models.Coordinate{Latitude: 13.7563, Longitude: 100.5018}
	openNear := uuid.New()
	openFar := uuid.New()
	closed := uuid.New()

	mockRepo := mocks.NewMockTripRepo(ctrl)
	mockRepo.EXPECT().NearbyPickups(gomock.Any(), center, 10.0).Return(map[uuid.UUID]float64{
		openNear: 1.2,
		openFar:  7.9,
		closed:   0.5,
	}, nil)
	mockRepo.EXPECT().GetTripsByIDs(gomock.Any(), gomock.Any()).Return([]models.Trip{
		{ID: openFar, Status: models.TripStatusPublished},
		{ID: closed, Status: models.TripStatusOngoing},
		{ID: openNear, Status: models.TripStatusPartiallyBooked},
	}, nil)

	uc := NewTripUC(testConfig(), mockRepo)

	nearby, err := uc.NearbyTrips(context.Background(), center, 10)

	require.NoError(t, err)
	require.Len(t, nearby, 2)
	assert.Equal(t, openNear, nearby[0].Trip.ID)
	assert.Equal(t, openFar, nearby[1].Trip.ID)
}

func TestNearbyTrips_RadiusTooLarge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewTripUC(testConfig(), mocks.NewMockTripRepo(ctrl))

	_, err := uc.NearbyTrips(context.Background(), models.Coordinate{}, 500)
	assert.Equal(t, apperrors.CodeValidation, apperrors.CodeOf(err))
}

func TestNearbyTrips_DefaultRadius(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripRepo(ctrl)
	mockRepo.EXPECT().NearbyPickups(gomock.Any(), gomock.Any(), 10.0).Return(map[uuid.UUID]float64{}, nil)

	uc := NewTripUC(testConfig(), mockRepo)

	nearby, err := uc.NearbyTrips(context.Background(), models.Coordinate{Latitude: 13.75, Longitude: 100.5}, 0)

	require.NoError(t, err)
	assert.Empty(t, nearby)
}
