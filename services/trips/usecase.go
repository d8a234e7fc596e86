package trips

import (
	"context"

	"github.com/google/uuid"

	"github.com/ridepool/ridepool/internal/pkg/models"
)

// TripUC defines the interface for trip business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/ridepool/ridepool/services/trips TripUC
type TripUC interface {
	CreateTrip(ctx context.Context, providerID uuid.UUID, req *models.CreateTripRequest) (*models.Trip, error)
	UpdateTrip(ctx context.Context, providerID, tripID uuid.UUID, req *models.UpdateTripRequest) (*models.Trip, error)
	GetTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error)
	ListTripsByProvider(ctx context.Context, providerID uuid.UUID) ([]models.Trip, error)
	ListTripsBookedByUser(ctx context.Context, userID uuid.UUID) ([]models.Trip, error)

	StartTrip(ctx context.Context, providerID, tripID uuid.UUID) (*models.Trip, error)
	CompleteTrip(ctx context.Context, providerID, tripID uuid.UUID) (*models.Trip, error)
	CancelTrip(ctx context.Context, providerID, tripID uuid.UUID) (*models.Trip, error)

	NearbyTrips(ctx context.Context, center models.Coordinate, radiusKm float64) ([]models.NearbyTrip, error)
}
