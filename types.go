// Package loopsettings defines the core types used by the settings store.
package loopsettings

import (
	"time"
)

// Record maps setting names to their values.
// Values are bool, float64 or string; numbers are always held as float64 so that
// records decoded from JSON and records built in code compare equal.
type Record map[string]any

// Clone returns a shallow copy of r. A nil Record clones to an empty one.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// merge combines records left to right; later records win on shared keys.
func merge(records ...Record) Record {
	out := make(Record)
	for _, r := range records {
		for k, v := range r {
			out[k] = v
		}
	}
	return out
}

// ThemeAttribute is the document attribute that mirrors the active theme.
const ThemeAttribute = "data-theme"

// Theme is what gets pushed to the UI layer when the theme is applied.
type Theme struct {
	// Name is the theme identifier, e.g. "pink" or "dark".
	Name string `json:"name"`
	// ClassName is the body class derived from Name ("theme-" + Name).
	ClassName string `json:"className"`
	// Attribute is the attribute that carries Name for styling.
	Attribute string `json:"attribute"`
}

func newTheme(name string) Theme {
	return Theme{
		Name:      name,
		ClassName: "theme-" + name,
		Attribute: ThemeAttribute,
	}
}

// TimerConfig is the configuration pushed to the focus timer.
type TimerConfig struct {
	DurationSeconds      int    `json:"duration"`
	BreakDurationSeconds int    `json:"breakDuration"`
	VisualMode           string `json:"visualMode"`
}

// Config holds the internal configuration for a Store instance.
// It is populated by applying functional Options when a Store is created with New().
type Config struct {
	storage  Storage
	cache    Cache
	cacheTTL time.Duration
	logger   Logger
	theme    ThemeSink
	timer    TimerSink
	notifier NotificationCapability
	clock    func() time.Time
}

// Option configures a Store.
type Option func(*Config)

// WithStorage sets the persistent key-value backend. It is mandatory.
func WithStorage(s Storage) Option {
	return func(c *Config) {
		c.storage = s
	}
}

// WithCache places a read-through cache in front of the persisted settings record.
func WithCache(cache Cache) Option {
	return func(c *Config) {
		c.cache = cache
	}
}

// WithCacheTTL overrides how long the cached settings record stays valid.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Config) {
		c.cacheTTL = ttl
	}
}

// WithLogger sets the Logger. Without it a JSON slog logger writing to os.Stderr is used.
func WithLogger(l Logger) Option {
	return func(c *Config) {
		c.logger = l
	}
}

// WithThemeSink sets the UI layer that receives the active theme.
func WithThemeSink(s ThemeSink) Option {
	return func(c *Config) {
		c.theme = s
	}
}

// WithTimerSink registers the focus timer. When absent, timer pushes are skipped.
func WithTimerSink(s TimerSink) Option {
	return func(c *Config) {
		c.timer = s
	}
}

// WithNotifications registers the platform notification capability.
func WithNotifications(n NotificationCapability) Option {
	return func(c *Config) {
		c.notifier = n
	}
}

// WithClock replaces time.Now, mostly for tests around the daily reset.
func WithClock(now func() time.Time) Option {
	return func(c *Config) {
		c.clock = now
	}
}
