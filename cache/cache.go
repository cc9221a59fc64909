// Package cache provides caching backends for the persisted settings record.
package cache

import (
	"context"
	"time"
)

// Cache defines the methods required for a caching backend.
// Misses, including expired entries, are reported as loopsettings.ErrNotFound.
type Cache interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
