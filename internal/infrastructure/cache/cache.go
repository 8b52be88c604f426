package cache

import (
	"context"
	"time"
)

// Store is a small key-value cache with expiration. Used to serve hot
// session reads without a round trip to Postgres.
type Store interface {
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, bool)
	Delete(ctx context.Context, key string) error
}
