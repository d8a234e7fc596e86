package trips

import (
	"context"

	"github.com/google/uuid"

	"github.com/ridepool/ridepool/internal/pkg/models"
)

// TripRepo defines the interface for trip data access operations
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/ridepool/ridepool/services/trips TripRepo
type TripRepo interface {
	CreateTrip(ctx context.Context, trip *models.Trip) error
	GetTrip(ctx context.Context, id uuid.UUID) (*models.Trip, error)
	GetTripsByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Trip, error)
	UpdateTrip(ctx context.Context, trip *models.Trip) error
	UpdateTripStatus(ctx context.Context, id uuid.UUID, status models.TripStatus) error
	ListTripsByProvider(ctx context.Context, providerID uuid.UUID) ([]models.Trip, error)
	ListTripsBookedByUser(ctx context.Context, userID uuid.UUID) ([]models.Trip, error)
	GetVehicle(ctx context.Context, id uuid.UUID) (*models.Vehicle, error)

	IndexPickup(ctx context.Context, tripID uuid.UUID, coord models.Coordinate) error
	UnindexPickup(ctx context.Context, tripID uuid.UUID) error
	NearbyPickups(ctx context.Context, center models.Coordinate, radiusKm float64) (map[uuid.UUID]float64, error)
}
