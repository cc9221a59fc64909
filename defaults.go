package loopsettings

// Setting keys recognized by the default record.
const (
	KeyTheme               = "theme"
	KeyDefaultView         = "defaultView"
	KeyWeekStart           = "weekStart"
	KeyAutoProgress        = "autoProgress"
	KeyReminderTime        = "reminderTime"
	KeyAutoResetTasks      = "autoResetTasks"
	KeyShowStreaks         = "showStreaks"
	KeyEnableHabitSnooze   = "enableHabitSnooze"
	KeyFocusDuration       = "focusDuration"
	KeyBreakDuration       = "breakDuration"
	KeySessionsGoal        = "sessionsGoal"
	KeyFocusVisualMode     = "focusVisualMode"
	KeyEnableFocusSounds   = "enableFocusSounds"
	KeyAutoStartBreaks     = "autoStartBreaks"
	KeyEnableNotifications = "enableNotifications"
	KeyReminderFrequency   = "reminderFrequency"
	KeyStreakReminders     = "streakReminders"
	KeyFocusReminders      = "focusReminders"
)

// Storage keys shared with the rest of the application.
const (
	// SettingsKey holds the JSON-encoded settings record.
	SettingsKey = "dailyLoopSettings"
	// LastResetDateKey holds the ISO date of the last automatic task reset.
	LastResetDateKey = "lastResetDate"
	// DateLayout formats calendar days for LastResetDateKey and per-day task keys.
	DateLayout = "2006-01-02"
)

// DefaultTheme is applied whenever the theme setting is empty.
const DefaultTheme = "pink"

var defaultRecord = Record{
	KeyTheme:               DefaultTheme,
	KeyDefaultView:         "daily",
	KeyWeekStart:           "0",
	KeyAutoProgress:        true,
	KeyReminderTime:        "09:00",
	KeyAutoResetTasks:      false,
	KeyShowStreaks:         true,
	KeyEnableHabitSnooze:   false,
	KeyFocusDuration:       float64(25),
	KeyBreakDuration:       float64(5),
	KeySessionsGoal:        float64(4),
	KeyFocusVisualMode:     "tree",
	KeyEnableFocusSounds:   true,
	KeyAutoStartBreaks:     false,
	KeyEnableNotifications: false,
	KeyReminderFrequency:   "both",
	KeyStreakReminders:     false,
	KeyFocusReminders:      false,
}

// DefaultRecord returns a fresh copy of the default settings record.
func DefaultRecord() Record {
	return defaultRecord.Clone()
}

// DefaultValue returns the default for key and whether the key is recognized.
func DefaultValue(key string) (any, bool) {
	v, ok := defaultRecord[key]
	return v, ok
}
