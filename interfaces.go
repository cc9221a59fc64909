// Package loopsettings defines interfaces for storage, caching, logging and the UI sinks.
package loopsettings

import (
	"context"
	"time"
)

// Storage is a string-keyed persistent store.
// Get returns ErrNotFound when the key is absent. Remove of an absent key is not an error.
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Close() error
}

// Cache defines the methods required for a caching backend.
type Cache interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// ThemeSink receives the active theme.
type ThemeSink interface {
	ApplyTheme(ctx context.Context, theme Theme) error
}

// TimerSink receives focus timer configuration.
type TimerSink interface {
	UpdateTimerSettings(ctx context.Context, cfg TimerConfig) error
}

// NotificationCapability asks the platform for permission to show notifications.
// The outcome of the request is not tracked by the Store.
type NotificationCapability interface {
	RequestPermission(ctx context.Context) error
}
