package matching

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"homigo/models"
	"homigo/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// defaultCacheTTL bounds how stale a cached match result may be.
const defaultCacheTTL = 2 * time.Minute

// ResultCache is the slice of the redis client the matcher needs; a
// *redis.Client satisfies it directly.
type ResultCache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// cacheKey derives a stable key from the query plus the requested radius.
func cacheKey(query models.MatchQuery, radiusKm float64) (string, error) {
	query.RadiusKm = radiusKm
	queryBytes, err := json.Marshal(query)
	if err != nil {
		return "", fmt.Errorf("failed to marshal match query: %w", err)
	}
	return fmt.Sprintf("match:%x", queryBytes), nil
}

// cachedResult returns a previously computed result for the query, or nil.
// Any cache failure degrades to a recomputation, never an error.
func (s *DefaultMatchingService) cachedResult(query models.MatchQuery, radiusKm float64) *models.MatchResult {
	if s.CacheClient == nil {
		return nil
	}
	key, err := cacheKey(query, radiusKm)
	if err != nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	cached, err := s.CacheClient.Get(ctx, key).Result()
	if err != nil || cached == "" {
		return nil
	}

	var result models.MatchResult
	if err := json.Unmarshal([]byte(cached), &result); err != nil {
		utils.GetLogger().Warn("discarding unreadable cached match result",
			zap.String("key", key), zap.Error(err))
		return nil
	}
	return &result
}

// storeResult caches a computed result with a short TTL; failures are logged
// and otherwise ignored.
func (s *DefaultMatchingService) storeResult(query models.MatchQuery, radiusKm float64, result *models.MatchResult) {
	if s.CacheClient == nil {
		return
	}
	key, err := cacheKey(query, radiusKm)
	if err != nil {
		return
	}
	payload, err := json.Marshal(result)
	if err != nil {
		return
	}
	ttl := s.CacheTTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.CacheClient.Set(ctx, key, payload, ttl).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache match result",
			zap.String("key", key), zap.Error(err))
	}
}
