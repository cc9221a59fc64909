// store.go
package loopsettings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"
)

// Store holds the current settings record and keeps it in sync with Storage.
// A Store is safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	config  *Config
	current Record
}

// New creates a Store holding the default record. Call Init (or use Open) to
// load persisted settings.
func New(opts ...Option) (*Store, error) {
	cfg := &Config{
		cacheTTL: 24 * time.Hour,
		clock:    time.Now,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.storage == nil {
		return nil, fmt.Errorf("%w: storage is required", ErrStorageUnavailable)
	}
	if cfg.logger == nil {
		cfg.logger = NewDefaultLogger()
	}

	return &Store{
		config:  cfg,
		current: DefaultRecord(),
	}, nil
}

// Open creates a Store and runs Init.
func Open(ctx context.Context, opts ...Option) (*Store, error) {
	s, err := New(opts...)
	if err != nil {
		return nil, err
	}
	if err := s.Init(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Init loads the persisted record, applies the theme and runs the daily task reset.
func (s *Store) Init(ctx context.Context) error {
	if err := s.Load(ctx); err != nil {
		return err
	}
	s.ApplyTheme(ctx)
	if _, err := s.AutoResetIfDue(ctx); err != nil {
		return err
	}
	return nil
}

// Load replaces the in-memory record with the persisted one merged over the defaults.
// Missing or unparsable persisted data yields the default record. Entries that
// are not a bool, number or string are skipped one by one.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.readRaw(ctx)
	if errors.Is(err, ErrNotFound) {
		s.current = DefaultRecord()
		return nil
	}
	if err != nil && !errors.Is(err, ErrMalformedPersistedData) {
		return fmt.Errorf("load settings: %w", err)
	}

	var (
		persisted Record
		skipped   []string
	)
	if err == nil {
		persisted, skipped, err = decodePersisted(raw)
		if err != nil {
			err = fmt.Errorf("%w: %v", ErrMalformedPersistedData, err)
		}
	}
	if err != nil {
		s.config.logger.Warn("Persisted settings are malformed, falling back to defaults", "key", SettingsKey, "error", err)
		s.current = DefaultRecord()
		return nil
	}
	for _, key := range skipped {
		s.config.logger.Warn("Skipping unsupported persisted setting", "key", key)
	}

	s.current = merge(defaultRecord, persisted)
	s.config.logger.Debug("Settings loaded", "keys", len(s.current))
	return nil
}

// Update merges partial onto the current record, persists the result and
// applies theme, timer and notification settings. It returns the new record.
// If persisting fails the current record is left as it was.
func (s *Store) Update(ctx context.Context, partial Record) (Record, error) {
	normalized, err := normalizeRecord(partial)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	next := merge(s.current, normalized)
	if err := s.persist(ctx, next); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.current = next
	s.mu.Unlock()

	s.ApplyTheme(ctx)
	s.ApplyTimerConfig(ctx)
	s.ApplyNotificationConfig(ctx)

	return next.Clone(), nil
}

// Get returns the value for key, or its default when the current value is
// falsy. An explicit false, 0 or "" therefore reads back as the default; use
// Value to observe such values.
func (s *Store) Get(key string) any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if v := s.current[key]; truthy(v) {
		return v
	}
	return defaultRecord[key]
}

// Value returns the current value for key, falling back to the default only
// when the key is missing. ok is false when neither exists.
func (s *Store) Value(key string) (value any, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lookup(key)
}

func (s *Store) lookup(key string) (any, bool) {
	if v, ok := s.current[key]; ok {
		return v, true
	}
	v, ok := defaultRecord[key]
	return v, ok
}

// String returns the setting as a string, or "" when it is not a string.
func (s *Store) String(key string) string {
	v, _ := s.Value(key)
	str, _ := v.(string)
	return str
}

// Bool returns the setting as a bool, or false when it is not a bool.
func (s *Store) Bool(key string) bool {
	v, _ := s.Value(key)
	b, _ := v.(bool)
	return b
}

// Number returns the setting as a float64. Numeric strings are converted.
func (s *Store) Number(key string) (float64, bool) {
	v, _ := s.Value(key)
	return numberValue(v)
}

// GetAll returns a copy of the current record.
func (s *Store) GetAll() Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

// persist writes the full record under SettingsKey and refreshes the cache.
func (s *Store) persist(ctx context.Context, record Record) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := s.config.storage.Set(ctx, SettingsKey, string(data)); err != nil {
		if s.config.cache != nil {
			s.deleteFromCache(ctx)
		}
		return fmt.Errorf("persist settings: %w", err)
	}

	if s.config.cache != nil {
		s.setToCache(ctx, string(data))
	}
	return nil
}

// readRaw returns the persisted settings text, consulting the cache first.
func (s *Store) readRaw(ctx context.Context) (string, error) {
	if s.config.cache != nil {
		if raw, err := s.getFromCache(ctx); err == nil {
			return raw, nil
		}
	}

	raw, err := s.config.storage.Get(ctx, SettingsKey)
	if err != nil {
		return "", err
	}

	if s.config.cache != nil {
		s.setToCache(ctx, raw)
	}
	return raw, nil
}

func cacheKey() string {
	return "settings:" + SettingsKey
}

func (s *Store) getFromCache(ctx context.Context) (string, error) {
	data, err := s.config.cache.Get(ctx, cacheKey())
	if err != nil {
		return "", err
	}

	raw, ok := data.(string)
	if !ok {
		return "", fmt.Errorf("%w: unexpected cached type %T", ErrCacheUnavailable, data)
	}
	return raw, nil
}

func (s *Store) setToCache(ctx context.Context, raw string) {
	if err := s.config.cache.Set(ctx, cacheKey(), raw, s.config.cacheTTL); err != nil {
		s.config.logger.Error("Failed to cache settings", "error", err)
	}
}

func (s *Store) deleteFromCache(ctx context.Context) {
	if err := s.config.cache.Delete(ctx, cacheKey()); err != nil {
		s.config.logger.Error("Failed to delete settings from cache", "error", err)
	}
}
