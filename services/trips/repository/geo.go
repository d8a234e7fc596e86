package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/ridepool/ridepool/internal/pkg/database"
	"github.com/ridepool/ridepool/internal/pkg/models"
)

// IndexPickup registers a bookable trip's pickup point in the geo set
func (r *TripRepo) IndexPickup(ctx context.Context, tripID uuid.UUID, coord models.Coordinate) error {
	return r.redisClient.GeoAdd(ctx, database.TripPickupGeoKey, coord.Longitude, coord.Latitude, tripID.String())
}

// UnindexPickup removes a trip's pickup point from the geo set
func (r *TripRepo) UnindexPickup(ctx context.Context, tripID uuid.UUID) error {
	return r.redisClient.GeoRemove(ctx, database.TripPickupGeoKey, tripID.String())
}

// NearbyPickups returns the ids of indexed trips within radiusKm of the
// center, with their distance in km
func (r *TripRepo) NearbyPickups(ctx context.Context, center models.Coordinate, radiusKm float64) (map[uuid.UUID]float64, error) {
	locations, err := r.redisClient.GeoRadius(ctx, database.TripPickupGeoKey, center.Longitude, center.Latitude, radiusKm, "km")
	if err != nil {
		return nil, err
	}

	nearby := make(map[uuid.UUID]float64, len(locations))
	for _, loc := range locations {
		tripID, err := uuid.Parse(loc.Name)
		if err != nil {
			// Skip malformed members instead of failing the lookup.
			continue
		}
		nearby[tripID] = loc.Dist
	}

	return nearby, nil
}
