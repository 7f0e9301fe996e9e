package routes

import (
	"context"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/linertrack/linertrack/pkg/redis_client"
)

const resultsCacheExpiration = 5 * time.Minute

// ResultsCache keeps rendered response bodies in Redis so repeated lookups
// with the same carriers and parameters skip the vendor round trips. When
// Redis is not connected every lookup is a miss.
type ResultsCache struct {
	cache *cache.Cache[string]
}

func NewResultsCache() *ResultsCache {
	if redis_client.Client == nil {
		return &ResultsCache{}
	}

	redisStore := redisstore.NewRedis(redis_client.Client, store.WithExpiration(resultsCacheExpiration))

	return &ResultsCache{
		cache: cache.New[string](redisStore),
	}
}

func (r *ResultsCache) Get(ctx context.Context, key string) (string, bool) {
	if r == nil || r.cache == nil {
		return "", false
	}

	value, err := r.cache.Get(ctx, key)
	if err != nil {
		return "", false
	}

	return value, true
}

func (r *ResultsCache) Set(ctx context.Context, key string, value string) {
	if r == nil || r.cache == nil {
		return
	}

	r.cache.Set(ctx, key, value) //nolint:errcheck
}
