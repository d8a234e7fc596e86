package usecase

import (
	"context"
	"sort"
	"time"

	apperrors "github.com/ridepool/ridepool/internal/pkg/errors"
	"github.com/ridepool/ridepool/internal/pkg/logger"
	"github.com/ridepool/ridepool/internal/pkg/models"
	"github.com/ridepool/ridepool/internal/utils"
	"github.com/ridepool/ridepool/services/search"
)

// searchUC implements the search.SearchUC interface
type searchUC struct {
	cfg        *models.Config
	searchRepo search.SearchRepo
}

// NewSearchUC creates a new search use case
func NewSearchUC(cfg *models.Config, searchRepo search.SearchRepo) search.SearchUC {
	return &searchUC{
		cfg:        cfg,
		searchRepo: searchRepo,
	}
}

// Search runs a ride search for the session. A query naming no location
// returns the session's history instead of trips. A query naming a
// location without coordinates returns zero trips rather than a partial
// match.
func (uc *searchUC) Search(ctx context.Context, sessionID string, query *models.SearchQuery) (*models.SearchResult, error) {
	if query.RadiusKm <= 0 {
		query.RadiusKm = uc.cfg.Search.DefaultRadiusKm
	}
	if query.RadiusKm > uc.cfg.Search.MaxRadiusKm {
		return nil, apperrors.Validation("search radius exceeds the allowed maximum")
	}
	if query.Passengers != nil && *query.Passengers < 1 {
		return nil, apperrors.Validation("passenger count must be at least 1")
	}

	if !query.HasLocation() {
		history, err := uc.searchRepo.GetHistory(ctx, sessionID)
		if err != nil {
			logger.Warn("Failed to load search history",
				logger.Err(err),
				logger.String("session_id", sessionID),
			)
			history = []models.SearchHistoryEntry{}
		}
		return &models.SearchResult{Trips: []*models.Trip{}, History: history}, nil
	}

	uc.recordHistory(ctx, sessionID, query)

	// A named location without coordinates cannot be matched, and a
	// partial match would be misleading. The whole search comes back
	// empty instead.
	if (query.FromLocation != "" && query.FromCoord == nil) ||
		(query.ToLocation != "" && query.ToCoord == nil) {
		return &models.SearchResult{Trips: []*models.Trip{}}, nil
	}

	candidates, err := uc.searchRepo.ListBookableTrips(ctx)
	if err != nil {
		return nil, apperrors.Internal("failed to load bookable trips", err)
	}

	matches := filterTrips(candidates, query)

	sort.SliceStable(matches, func(i, j int) bool {
		if !matches[i].DepartureTime.Equal(matches[j].DepartureTime) {
			return matches[i].DepartureTime.Before(matches[j].DepartureTime)
		}
		return matches[i].PricePerSeat < matches[j].PricePerSeat
	})

	return &models.SearchResult{Trips: matches}, nil
}

// GetHistory returns the session's recent searches
func (uc *searchUC) GetHistory(ctx context.Context, sessionID string) ([]models.SearchHistoryEntry, error) {
	history, err := uc.searchRepo.GetHistory(ctx, sessionID)
	if err != nil {
		return nil, apperrors.Internal("failed to load search history", err)
	}
	return history, nil
}

// filterTrips applies the attribute predicates and the per-side radius
// match to the candidate list, preserving candidate order.
func filterTrips(candidates []models.Trip, query *models.SearchQuery) []*models.Trip {
	radiusMeters := float64(query.RadiusKm) * 1000

	// The geohash cells are a superset of the radius, so the prefilter
	// only discards trips the haversine check would reject anyway. The
	// precision depends on the query latitude; each side gets its own.
	var fromCells, toCells map[string]struct{}
	var fromPrecision, toPrecision uint
	if query.FromLocation != "" {
		fromPrecision = utils.PrefilterPrecision(radiusMeters, query.FromCoord.Latitude)
		if fromPrecision > 0 {
			fromCells = utils.CoverageCells(*query.FromCoord, fromPrecision)
		}
	}
	if query.ToLocation != "" {
		toPrecision = utils.PrefilterPrecision(radiusMeters, query.ToCoord.Latitude)
		if toPrecision > 0 {
			toCells = utils.CoverageCells(*query.ToCoord, toPrecision)
		}
	}

	matches := []*models.Trip{}
	for i := range candidates {
		trip := &candidates[i]

		if query.DepartureDate != nil && !sameDate(trip.DepartureTime, *query.DepartureDate) {
			continue
		}
		if query.Passengers != nil && trip.AvailableSeats < *query.Passengers {
			continue
		}
		if query.MaxPrice != nil && trip.PricePerSeat > *query.MaxPrice {
			continue
		}
		if query.AllowSmoking && !trip.AllowSmoking {
			continue
		}
		if query.AllowPets && !trip.AllowPets {
			continue
		}

		if query.FromLocation != "" && !sideMatches(trip.PickupCoord, *query.FromCoord, fromCells, fromPrecision, radiusMeters) {
			continue
		}
		if query.ToLocation != "" && !sideMatches(trip.DropoffCoord, *query.ToCoord, toCells, toPrecision, radiusMeters) {
			continue
		}

		matches = append(matches, trip)
	}

	return matches
}

// sideMatches reports whether a trip side falls within the radius of the
// query point. A side without a recorded coordinate never matches.
// Precision 0 means no geohash precision covers the radius at this
// latitude; the distance check alone decides.
func sideMatches(coord *models.Coordinate, center models.Coordinate, cells map[string]struct{}, precision uint, radiusMeters float64) bool {
	if coord == nil {
		return false
	}
	if precision > 0 && !utils.InCoverage(*coord, cells, precision) {
		return false
	}
	return utils.HaversineDistance(*coord, center) <= radiusMeters
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// recordHistory prepends a snapshot of the query to the session's
// history, dropping any older entry for the same route, date and party
// size and truncating to the configured capacity. History bookkeeping
// never fails a search.
func (uc *searchUC) recordHistory(ctx context.Context, sessionID string, query *models.SearchQuery) {
	entries, err := uc.searchRepo.GetHistory(ctx, sessionID)
	if err != nil {
		logger.Warn("Failed to load search history",
			logger.Err(err),
			logger.String("session_id", sessionID),
		)
		entries = []models.SearchHistoryEntry{}
	}

	entry := models.SearchHistoryEntry{
		FromLocation:  query.FromLocation,
		FromCoord:     query.FromCoord,
		ToLocation:    query.ToLocation,
		ToCoord:       query.ToCoord,
		DepartureDate: query.DepartureDate,
		Passengers:    query.Passengers,
		MaxPrice:      query.MaxPrice,
		RadiusKm:      query.RadiusKm,
		AllowSmoking:  query.AllowSmoking,
		AllowPets:     query.AllowPets,
		SearchedAt:    time.Now().UTC(),
	}

	updated := []models.SearchHistoryEntry{entry}
	for _, existing := range entries {
		if sameHistoryKey(existing, entry) {
			continue
		}
		updated = append(updated, existing)
	}
	if len(updated) > uc.cfg.Search.HistorySize {
		updated = updated[:uc.cfg.Search.HistorySize]
	}

	if err := uc.searchRepo.SaveHistory(ctx, sessionID, updated); err != nil {
		logger.Warn("Failed to save search history",
			logger.Err(err),
			logger.String("session_id", sessionID),
		)
	}
}

func sameHistoryKey(a, b models.SearchHistoryEntry) bool {
	if a.FromLocation != b.FromLocation || a.ToLocation != b.ToLocation {
		return false
	}
	if !equalDatePtr(a.DepartureDate, b.DepartureDate) {
		return false
	}
	return equalIntPtr(a.Passengers, b.Passengers)
}

func equalDatePtr(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return sameDate(*a, *b)
}

func equalIntPtr(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
