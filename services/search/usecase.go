package search

import (
	"context"

	"github.com/ridepool/ridepool/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/ridepool/ridepool/services/search SearchUC

// SearchUC defines the ride search operations
type SearchUC interface {
	// Search runs a ride search for the session. A query without any
	// location text returns no trips and the session's history instead.
	Search(ctx context.Context, sessionID string, query *models.SearchQuery) (*models.SearchResult, error)

	// GetHistory returns the session's recent searches
	GetHistory(ctx context.Context, sessionID string) ([]models.SearchHistoryEntry, error)
}
