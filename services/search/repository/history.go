package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/ridepool/ridepool/internal/pkg/logger"
	"github.com/ridepool/ridepool/internal/pkg/models"
)

func historyKey(sessionID string) string {
	return fmt.Sprintf("search:history:%s", sessionID)
}

// GetHistory loads the session's search history blob. A missing key or
// an unreadable blob yields an empty list, never an error the caller
// has to handle.
func (r *SearchRepo) GetHistory(ctx context.Context, sessionID string) ([]models.SearchHistoryEntry, error) {
	raw, err := r.redisClient.Get(ctx, historyKey(sessionID))
	if err != nil {
		if err == redis.Nil {
			return []models.SearchHistoryEntry{}, nil
		}
		return nil, err
	}

	return decodeHistory([]byte(raw), sessionID), nil
}

// SaveHistory replaces the session's history blob with a fresh TTL
func (r *SearchRepo) SaveHistory(ctx context.Context, sessionID string, entries []models.SearchHistoryEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	ttl := time.Duration(r.cfg.Search.HistoryTTLHours) * time.Hour
	return r.redisClient.Set(ctx, historyKey(sessionID), raw, ttl)
}

// decodeHistory falls back to an empty list when the stored blob does
// not parse. Stale blobs from older formats must not break searches.
func decodeHistory(raw []byte, sessionID string) []models.SearchHistoryEntry {
	entries := []models.SearchHistoryEntry{}
	if err := json.Unmarshal(raw, &entries); err != nil {
		logger.Warn("Discarding unreadable search history blob",
			logger.Err(err),
			logger.String("session_id", sessionID),
		)
		return []models.SearchHistoryEntry{}
	}
	return entries
}
