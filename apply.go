package loopsettings

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// ApplyTheme pushes the current theme to the ThemeSink, if one is set.
// A falsy theme falls back to DefaultTheme; other values are formatted as text.
func (s *Store) ApplyTheme(ctx context.Context) {
	if s.config.theme == nil {
		return
	}

	s.mu.RLock()
	value := s.current[KeyTheme]
	s.mu.RUnlock()

	name := DefaultTheme
	if truthy(value) {
		name = fmt.Sprint(value)
	}

	if err := s.config.theme.ApplyTheme(ctx, newTheme(name)); err != nil {
		s.config.logger.Warn("Failed to apply theme", "theme", name, "error", err)
	}
}

// TimerConfig derives the focus timer configuration from the current record.
// Durations are stored in minutes and converted to seconds.
func (s *Store) TimerConfig() TimerConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()

	mode, _ := s.current[KeyFocusVisualMode].(string)
	return TimerConfig{
		DurationSeconds:      s.minutesToSeconds(KeyFocusDuration),
		BreakDurationSeconds: s.minutesToSeconds(KeyBreakDuration),
		VisualMode:           mode,
	}
}

// minutesToSeconds must be called with s.mu held.
func (s *Store) minutesToSeconds(key string) int {
	v, _ := s.lookup(key)
	minutes, ok := numberValue(v)
	if !ok {
		minutes, _ = numberValue(defaultRecord[key])
	}
	return int(math.Round(minutes * 60))
}

// ApplyTimerConfig pushes TimerConfig to the TimerSink. Without a registered
// timer it does nothing.
func (s *Store) ApplyTimerConfig(ctx context.Context) {
	if s.config.timer == nil {
		return
	}

	cfg := s.TimerConfig()
	if err := s.config.timer.UpdateTimerSettings(ctx, cfg); err != nil {
		s.config.logger.Warn("Failed to update timer settings", "error", err)
	}
}

// ApplyNotificationConfig requests notification permission when notifications
// are enabled and the capability exists.
func (s *Store) ApplyNotificationConfig(ctx context.Context) {
	if s.config.notifier == nil {
		return
	}

	s.mu.RLock()
	enabled := truthy(s.current[KeyEnableNotifications])
	s.mu.RUnlock()
	if !enabled {
		return
	}

	if err := s.config.notifier.RequestPermission(ctx); err != nil {
		s.config.logger.Warn("Notification permission request failed", "error", err)
	}
}

// AutoResetIfDue clears today's task record once per calendar day when
// autoResetTasks is enabled. It reports whether a reset happened.
func (s *Store) AutoResetIfDue(ctx context.Context) (bool, error) {
	s.mu.RLock()
	enabled := truthy(s.current[KeyAutoResetTasks])
	s.mu.RUnlock()
	if !enabled {
		return false, nil
	}

	store := s.config.storage
	today := s.config.clock().Format(DateLayout)

	last, err := store.Get(ctx, LastResetDateKey)
	switch {
	case err == nil, errors.Is(err, ErrNotFound):
	case errors.Is(err, ErrMalformedPersistedData):
		s.config.logger.Warn("Last reset date is unreadable, treating as never reset", "key", LastResetDateKey, "error", err)
		last = ""
	default:
		return false, fmt.Errorf("read last reset date: %w", err)
	}
	if last == today {
		return false, nil
	}

	if err := store.Remove(ctx, today); err != nil && !errors.Is(err, ErrNotFound) {
		return false, fmt.Errorf("reset daily tasks: %w", err)
	}
	if err := store.Set(ctx, LastResetDateKey, today); err != nil {
		return false, fmt.Errorf("write last reset date: %w", err)
	}

	s.config.logger.Info("Daily tasks reset", "date", today, "previous", last)
	return true, nil
}
