package search

import (
	"context"

	"github.com/ridepool/ridepool/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/ridepool/ridepool/services/search SearchRepo

// SearchRepo provides the candidate trips and the per-session search
// history blob backing ride searches.
type SearchRepo interface {
	// ListBookableTrips returns the trips currently open for bookings.
	ListBookableTrips(ctx context.Context) ([]models.Trip, error)

	// GetHistory returns the session's recent searches, most recent
	// first. A missing or unreadable blob yields an empty list.
	GetHistory(ctx context.Context, sessionID string) ([]models.SearchHistoryEntry, error)

	// SaveHistory replaces the session's history blob.
	SaveHistory(ctx context.Context, sessionID string, entries []models.SearchHistoryEntry) error
}
