package loopsettings

import (
	"context"
	"sync"
	"time"
)

// MockStorage implements the Storage interface for testing
type MockStorage struct {
	mu      sync.RWMutex
	data    map[string]string
	closed  bool
	removed []string
	setErr  error // returned by Set when non-nil
	getErr  error // returned by Get when non-nil
}

func NewMockStorage() *MockStorage {
	return &MockStorage{
		data: make(map[string]string),
	}
}

func (m *MockStorage) Get(ctx context.Context, key string) (string, error) {
	_, _ = ctx.Deadline()
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return "", ErrStorageUnavailable
	}
	if m.getErr != nil {
		return "", m.getErr
	}
	if v, ok := m.data[key]; ok {
		return v, nil
	}
	return "", ErrNotFound
}

func (m *MockStorage) Set(ctx context.Context, key, value string) error {
	_, _ = ctx.Deadline()
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStorageUnavailable
	}
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	return nil
}

func (m *MockStorage) Remove(ctx context.Context, key string) error {
	_, _ = ctx.Deadline()
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStorageUnavailable
	}
	m.removed = append(m.removed, key)
	delete(m.data, key)
	return nil
}

func (m *MockStorage) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Removed returns the keys passed to Remove, in order.
func (m *MockStorage) Removed() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.removed...)
}

func (m *MockStorage) raw(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok
}

// MockCache implements the Cache interface for testing
type MockCache struct {
	mu     sync.RWMutex
	data   map[string]interface{}
	sets   int
	closed bool
}

func NewMockCache() *MockCache {
	return &MockCache{
		data: make(map[string]interface{}),
	}
}

func (m *MockCache) Get(ctx context.Context, key string) (interface{}, error) {
	_, _ = ctx.Deadline()
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrCacheUnavailable
	}
	if v, ok := m.data[key]; ok {
		return v, nil
	}
	return nil, ErrNotFound
}

func (m *MockCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	_, _ = ctx.Deadline()
	_ = ttl
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrCacheUnavailable
	}
	m.data[key] = value
	m.sets++
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	_, _ = ctx.Deadline()
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrCacheUnavailable
	}
	delete(m.data, key)
	return nil
}

func (m *MockCache) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// logEntry is one recorded MockLogger call.
type logEntry struct {
	level string
	msg   string
	args  []any
}

// MockLogger implements the Logger interface for testing
type MockLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *MockLogger) record(level, msg string, args []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{level: level, msg: msg, args: args})
}

func (l *MockLogger) Debug(msg string, args ...any) { l.record("debug", msg, args) }
func (l *MockLogger) Info(msg string, args ...any)  { l.record("info", msg, args) }
func (l *MockLogger) Warn(msg string, args ...any)  { l.record("warn", msg, args) }
func (l *MockLogger) Error(msg string, args ...any) { l.record("error", msg, args) }

// count returns how many entries were logged at level.
func (l *MockLogger) count(level string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, e := range l.entries {
		if e.level == level {
			n++
		}
	}
	return n
}

// recordingSink implements ThemeSink, TimerSink and NotificationCapability.
type recordingSink struct {
	themes      []Theme
	timers      []TimerConfig
	permissions int
	err         error
}

func (r *recordingSink) ApplyTheme(_ context.Context, theme Theme) error {
	r.themes = append(r.themes, theme)
	return r.err
}

func (r *recordingSink) UpdateTimerSettings(_ context.Context, cfg TimerConfig) error {
	r.timers = append(r.timers, cfg)
	return r.err
}

func (r *recordingSink) RequestPermission(_ context.Context) error {
	r.permissions++
	return r.err
}

func (r *recordingSink) lastTheme() Theme {
	if len(r.themes) == 0 {
		panic("no theme recorded")
	}
	return r.themes[len(r.themes)-1]
}
