package cache

//go:generate mockgen -destination=../mocks/mock_cache.go -package=mocks github.com/slangstash/slang-service/internal/cache Cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Get when the key does not exist.
var ErrCacheMiss = errors.New("cache: key not found")

// Cache is the key-value store used for slang projections and rate counters.
// Values are opaque strings; callers handle serialization.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) (int64, error)
	Keys(ctx context.Context, pattern string) ([]string, error)

	// IncrementWindow atomically increments the counter at key and, only when
	// the counter is created by this call, arms its expiry to window. It
	// returns the post-increment count.
	IncrementWindow(ctx context.Context, key string, window time.Duration) (int64, error)
}
