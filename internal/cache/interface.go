package cache

import (
	"context"
	"fmt"
	"time"
)

// Cache defines the interface for caching operations.
type Cache interface {
	// Set stores a value in cache with TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	// Get retrieves a value from cache. Returns false if key doesn't exist.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	// Delete removes a key from cache.
	Delete(ctx context.Context, key string) error
}

// Ensure Redis implements Cache interface
var _ Cache = (*Redis)(nil)

// TourCacheKey generates a cache key for a tour.
func TourCacheKey(tourID string) string {
	return fmt.Sprintf("tour:%s", tourID)
}

// TourStatsCacheKey is the cache key for the tour statistics aggregation.
const TourStatsCacheKey = "tours:stats"
