package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/ridepool/ridepool/internal/pkg/errors"
	"github.com/ridepool/ridepool/internal/pkg/logger"
	"github.com/ridepool/ridepool/internal/pkg/models"
	"github.com/ridepool/ridepool/services/trips"
)

// tripUC implements the trips.TripUC interface
type tripUC struct {
	cfg      *models.Config
	tripRepo trips.TripRepo
}

// NewTripUC creates a new trip use case
func NewTripUC(cfg *models.Config, tripRepo trips.TripRepo) trips.TripUC {
	return &tripUC{
		cfg:      cfg,
		tripRepo: tripRepo,
	}
}

// CreateTrip publishes a new ride offer
func (uc *tripUC) CreateTrip(ctx context.Context, providerID uuid.UUID, req *models.CreateTripRequest) (*models.Trip, error) {
	if err := validateTripFields(req.PickupLocation, req.DropoffLocation, req.DepartureTime, req.AvailableSeats, req.PricePerSeat); err != nil {
		return nil, err
	}

	if req.VehicleID != nil {
		vehicle, err := uc.tripRepo.GetVehicle(ctx, *req.VehicleID)
		if err != nil {
			return nil, apperrors.Internal("failed to load vehicle", err)
		}
		if vehicle == nil {
			return nil, apperrors.NotFound("vehicle")
		}
		if vehicle.OwnerID != providerID {
			return nil, apperrors.Forbidden("you do not own this vehicle")
		}
	}

	now := time.Now().UTC()
	trip := &models.Trip{
		ID:              uuid.New(),
		ProviderID:      providerID,
		PickupLocation:  strings.TrimSpace(req.PickupLocation),
		PickupCoord:     req.PickupCoord,
		DropoffLocation: strings.TrimSpace(req.DropoffLocation),
		DropoffCoord:    req.DropoffCoord,
		DepartureTime:   req.DepartureTime,
		AvailableSeats:  req.AvailableSeats,
		PricePerSeat:    req.PricePerSeat,
		VehicleID:       req.VehicleID,
		Notes:           req.Notes,
		AllowSmoking:    req.AllowSmoking,
		AllowPets:       req.AllowPets,
		Status:          models.TripStatusPublished,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := uc.tripRepo.CreateTrip(ctx, trip); err != nil {
		return nil, apperrors.Internal("failed to create trip", err)
	}

	if trip.PickupCoord != nil {
		if err := uc.tripRepo.IndexPickup(ctx, trip.ID, *trip.PickupCoord); err != nil {
			logger.Warn("Failed to geo-index trip pickup",
				logger.Err(err),
				logger.String("trip_id", trip.ID.String()),
			)
		}
	}

	logger.Info("Trip published",
		logger.String("trip_id", trip.ID.String()),
		logger.String("provider_id", providerID.String()),
	)

	return trip, nil
}

// UpdateTrip edits an open trip before departure
func (uc *tripUC) UpdateTrip(ctx context.Context, providerID, tripID uuid.UUID, req *models.UpdateTripRequest) (*models.Trip, error) {
	if err := validateTripFields(req.PickupLocation, req.DropoffLocation, req.DepartureTime, req.AvailableSeats, req.PricePerSeat); err != nil {
		return nil, err
	}

	trip, err := uc.loadOwnedTrip(ctx, providerID, tripID)
	if err != nil {
		return nil, err
	}

	if trip.IsTerminal() || trip.Status == models.TripStatusOngoing {
		return nil, apperrors.InvalidState("trip can no longer be edited")
	}
	if time.Now().After(trip.DepartureTime) {
		return nil, apperrors.InvalidState("trip has already departed")
	}

	if req.VehicleID != nil {
		vehicle, err := uc.tripRepo.GetVehicle(ctx, *req.VehicleID)
		if err != nil {
			return nil, apperrors.Internal("failed to load vehicle", err)
		}
		if vehicle == nil {
			return nil, apperrors.NotFound("vehicle")
		}
		if vehicle.OwnerID != providerID {
			return nil, apperrors.Forbidden("you do not own this vehicle")
		}
	}

	trip.PickupLocation = strings.TrimSpace(req.PickupLocation)
	trip.PickupCoord = req.PickupCoord
	trip.DropoffLocation = strings.TrimSpace(req.DropoffLocation)
	trip.DropoffCoord = req.DropoffCoord
	trip.DepartureTime = req.DepartureTime
	trip.AvailableSeats = req.AvailableSeats
	trip.PricePerSeat = req.PricePerSeat
	trip.VehicleID = req.VehicleID
	trip.Notes = req.Notes
	trip.AllowSmoking = req.AllowSmoking
	trip.AllowPets = req.AllowPets

	// The repository revalidates seats against confirmed bookings under a
	// row lock and recomputes the capacity status before writing.
	if err := uc.tripRepo.UpdateTrip(ctx, trip); err != nil {
		return nil, err
	}

	uc.syncPickupIndex(ctx, trip)

	return trip, nil
}

// GetTrip retrieves a single trip
func (uc *tripUC) GetTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error) {
	trip, err := uc.tripRepo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, apperrors.Internal("failed to load trip", err)
	}
	if trip == nil {
		return nil, apperrors.NotFound("trip")
	}
	return trip, nil
}

// ListTripsByProvider retrieves the trips a user published
func (uc *tripUC) ListTripsByProvider(ctx context.Context, providerID uuid.UUID) ([]models.Trip, error) {
	trips, err := uc.tripRepo.ListTripsByProvider(ctx, providerID)
	if err != nil {
		return nil, apperrors.Internal("failed to list trips", err)
	}
	return trips, nil
}

// ListTripsBookedByUser retrieves the trips a user holds a confirmed booking on
func (uc *tripUC) ListTripsBookedByUser(ctx context.Context, userID uuid.UUID) ([]models.Trip, error) {
	trips, err := uc.tripRepo.ListTripsBookedByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("failed to list booked trips", err)
	}
	return trips, nil
}

// StartTrip moves an open trip to Ongoing
func (uc *tripUC) StartTrip(ctx context.Context, providerID, tripID uuid.UUID) (*models.Trip, error) {
	return uc.transition(ctx, providerID, tripID, models.TripStatusOngoing, func(t *models.Trip) bool {
		return t.IsOpenForBookings() || t.Status == models.TripStatusFull
	})
}

// CompleteTrip moves an ongoing trip to Completed
func (uc *tripUC) CompleteTrip(ctx context.Context, providerID, tripID uuid.UUID) (*models.Trip, error) {
	return uc.transition(ctx, providerID, tripID, models.TripStatusCompleted, func(t *models.Trip) bool {
		return t.Status == models.TripStatusOngoing
	})
}

// CancelTrip moves an open trip to Cancelled
func (uc *tripUC) CancelTrip(ctx context.Context, providerID, tripID uuid.UUID) (*models.Trip, error) {
	return uc.transition(ctx, providerID, tripID, models.TripStatusCancelled, func(t *models.Trip) bool {
		return t.IsOpenForBookings() || t.Status == models.TripStatusFull
	})
}

func (uc *tripUC) transition(
	ctx context.Context,
	providerID, tripID uuid.UUID,
	target models.TripStatus,
	allowed func(*models.Trip) bool,
) (*models.Trip, error) {
	trip, err := uc.loadOwnedTrip(ctx, providerID, tripID)
	if err != nil {
		return nil, err
	}

	if !allowed(trip) {
		return nil, apperrors.InvalidState("trip cannot move to " + string(target) + " from " + string(trip.Status))
	}

	if err := uc.tripRepo.UpdateTripStatus(ctx, tripID, target); err != nil {
		return nil, apperrors.Internal("failed to update trip status", err)
	}
	trip.Status = target

	uc.syncPickupIndex(ctx, trip)

	logger.Info("Trip status changed",
		logger.String("trip_id", tripID.String()),
		logger.String("status", string(target)),
	)

	return trip, nil
}

// NearbyTrips lists bookable trips whose pickup lies within radiusKm of
// the center, nearest first
func (uc *tripUC) NearbyTrips(ctx context.Context, center models.Coordinate, radiusKm float64) ([]models.NearbyTrip, error) {
	if radiusKm <= 0 {
		radiusKm = float64(uc.cfg.Search.DefaultRadiusKm)
	}
	if radiusKm > float64(uc.cfg.Search.MaxRadiusKm) {
		return nil, apperrors.Validation("radius exceeds the allowed maximum")
	}

	distances, err := uc.tripRepo.NearbyPickups(ctx, center, radiusKm)
	if err != nil {
		return nil, apperrors.Internal("failed to query nearby pickups", err)
	}
	if len(distances) == 0 {
		return []models.NearbyTrip{}, nil
	}

	ids := make([]uuid.UUID, 0, len(distances))
	for id := range distances {
		ids = append(ids, id)
	}

	tripRows, err := uc.tripRepo.GetTripsByIDs(ctx, ids)
	if err != nil {
		return nil, apperrors.Internal("failed to load nearby trips", err)
	}

	// The index can briefly trail status changes, so re-check here.
	nearby := make([]models.NearbyTrip, 0, len(tripRows))
	for i := range tripRows {
		trip := tripRows[i]
		if !trip.IsOpenForBookings() {
			continue
		}
		nearby = append(nearby, models.NearbyTrip{
			Trip:       &tripRows[i],
			DistanceKm: distances[trip.ID],
		})
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})

	return nearby, nil
}

func (uc *tripUC) loadOwnedTrip(ctx context.Context, providerID, tripID uuid.UUID) (*models.Trip, error) {
	trip, err := uc.tripRepo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, apperrors.Internal("failed to load trip", err)
	}
	if trip == nil {
		return nil, apperrors.NotFound("trip")
	}
	if trip.ProviderID != providerID {
		return nil, apperrors.Forbidden("only the trip provider may do this")
	}
	return trip, nil
}

// syncPickupIndex keeps the geo set aligned with bookability: only open
// trips with a pickup coordinate are indexed.
func (uc *tripUC) syncPickupIndex(ctx context.Context, trip *models.Trip) {
	var err error
	if trip.IsOpenForBookings() && trip.PickupCoord != nil {
		err = uc.tripRepo.IndexPickup(ctx, trip.ID, *trip.PickupCoord)
	} else {
		err = uc.tripRepo.UnindexPickup(ctx, trip.ID)
	}
	if err != nil {
		logger.Warn("Failed to sync trip geo index",
			logger.Err(err),
			logger.String("trip_id", trip.ID.String()),
		)
	}
}

func validateTripFields(pickup, dropoff string, departure time.Time, seats int, price float64) error {
	if strings.TrimSpace(pickup) == "" || strings.TrimSpace(dropoff) == "" {
		return apperrors.Validation("pickup and dropoff locations are required")
	}
	if departure.Before(time.Now()) {
		return apperrors.Validation("departure time must be in the future")
	}
	if seats < models.MinSeatsPerBooking || seats > models.MaxSeatsPerBooking {
		return apperrors.Validation("available seats must be between 1 and 8")
	}
	if price < 0 {
		return apperrors.Validation("price per seat cannot be negative")
	}
	return nil
}
