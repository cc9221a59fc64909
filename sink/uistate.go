// Package sink provides a presentation-layer receiver for settings side effects.
//
// UIState stands in for a UI surface: it records the theme to render, the
// timer configuration to display and how often notification permission was
// requested, so the HTTP layer can serve them back to a client.
package sink

import (
	"context"
	"sync"

	"github.com/CreativeUnicorns/loopsettings"
)

// Snapshot is a point-in-time copy of UIState.
type Snapshot struct {
	Theme              loopsettings.Theme        `json:"theme"`
	Timer              *loopsettings.TimerConfig `json:"timer"`
	PermissionRequests int                       `json:"permissionRequests"`
}

// UIState implements loopsettings.ThemeSink, loopsettings.TimerSink and
// loopsettings.NotificationCapability. It is safe for concurrent use.
type UIState struct {
	mu                 sync.RWMutex
	theme              loopsettings.Theme
	timer              *loopsettings.TimerConfig
	permissionRequests int
	logger             loopsettings.Logger
}

// NewUIState returns an empty UIState. A nil logger disables logging.
func NewUIState(logger loopsettings.Logger) *UIState {
	return &UIState{logger: logger}
}

// ApplyTheme records the active theme.
func (u *UIState) ApplyTheme(ctx context.Context, theme loopsettings.Theme) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	u.mu.Lock()
	u.theme = theme
	u.mu.Unlock()

	u.debug("Theme applied", "class", theme.ClassName)
	return nil
}

// UpdateTimerSettings records the timer configuration.
func (u *UIState) UpdateTimerSettings(ctx context.Context, cfg loopsettings.TimerConfig) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	u.mu.Lock()
	u.timer = &cfg
	u.mu.Unlock()

	u.debug("Timer settings updated", "duration", cfg.DurationSeconds, "breakDuration", cfg.BreakDurationSeconds)
	return nil
}

// RequestPermission counts a notification permission request.
func (u *UIState) RequestPermission(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	u.mu.Lock()
	u.permissionRequests++
	n := u.permissionRequests
	u.mu.Unlock()

	u.debug("Notification permission requested", "count", n)
	return nil
}

// Snapshot returns a copy of the current state. Timer is nil until the first update.
func (u *UIState) Snapshot() Snapshot {
	u.mu.RLock()
	defer u.mu.RUnlock()

	snap := Snapshot{
		Theme:              u.theme,
		PermissionRequests: u.permissionRequests,
	}
	if u.timer != nil {
		t := *u.timer
		snap.Timer = &t
	}
	return snap
}

func (u *UIState) debug(msg string, args ...any) {
	if u.logger != nil {
		u.logger.Debug(msg, args...)
	}
}
