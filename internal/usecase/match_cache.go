package usecase

import (
	"context"
	"time"
)

// MatchCache is the slice of the cache the usecases need; the Redis
// wrapper satisfies it, and tests swap in a map-backed fake.
type MatchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
