// Package loopsettings provides default logging implementations.
package loopsettings

import (
	"io"
	"log/slog"
	"os"

	"github.com/sirupsen/logrus"
)

// LogLevel defines the various log levels.
// These correspond to slog's levels.
type LogLevel int

// Log level constants, mirroring slog levels for internal mapping.
const (
	LogLevelDebug LogLevel = LogLevel(slog.LevelDebug)
	LogLevelInfo  LogLevel = LogLevel(slog.LevelInfo)
	LogLevelWarn  LogLevel = LogLevel(slog.LevelWarn)
	LogLevelError LogLevel = LogLevel(slog.LevelError)
)

// ParseLogLevel maps "debug", "info", "warn" and "error" to a LogLevel.
// Unknown names map to LogLevelInfo.
func ParseLogLevel(name string) LogLevel {
	switch name {
	case "debug":
		return LogLevelDebug
	case "warn", "warning":
		return LogLevelWarn
	case "error":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

// Logger defines the methods required for logging within the settings system.
// The args should be alternating key-value pairs, similar to slog.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// LevelLogger is a Logger whose level can be changed at runtime.
type LevelLogger interface {
	Logger
	SetLevel(level LogLevel)
}

// defaultSlogLogger is an implementation of the Logger interface using the slog package.
type defaultSlogLogger struct {
	slogger  *slog.Logger
	levelVar *slog.LevelVar
}

// NewDefaultLogger returns a JSON slog logger writing to os.Stderr at info level.
func NewDefaultLogger() LevelLogger {
	return newSlogLogger(os.Stderr)
}

func newSlogLogger(w io.Writer) *defaultSlogLogger {
	levelVar := new(slog.LevelVar)
	levelVar.Set(slog.LevelInfo)

	return &defaultSlogLogger{
		slogger:  slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: levelVar})),
		levelVar: levelVar,
	}
}

// Debug logs a debug-level message.
func (l *defaultSlogLogger) Debug(msg string, args ...any) {
	l.slogger.Debug(msg, args...)
}

// Info logs an info-level message.
func (l *defaultSlogLogger) Info(msg string, args ...any) {
	l.slogger.Info(msg, args...)
}

// Warn logs a warning-level message.
func (l *defaultSlogLogger) Warn(msg string, args ...any) {
	l.slogger.Warn(msg, args...)
}

// Error logs an error-level message.
func (l *defaultSlogLogger) Error(msg string, args ...any) {
	l.slogger.Error(msg, args...)
}

// SetLevel changes the logging level dynamically.
func (l *defaultSlogLogger) SetLevel(level LogLevel) {
	if l.levelVar != nil {
		l.levelVar.Set(slog.Level(level))
	}
}

// logrusLogger adapts a *logrus.Logger to Logger.
type logrusLogger struct {
	logger *logrus.Logger
}

// NewLogrusLogger wraps l so it can be passed to WithLogger.
// Key-value args become logrus fields; a trailing key without a value is logged under "!BADKEY".
func NewLogrusLogger(l *logrus.Logger) LevelLogger {
	return &logrusLogger{logger: l}
}

func (l *logrusLogger) entry(args []any) *logrus.Entry {
	fields := make(logrus.Fields, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok || i+1 >= len(args) {
			fields["!BADKEY"] = args[i]
			continue
		}
		fields[key] = args[i+1]
	}
	return l.logger.WithFields(fields)
}

func (l *logrusLogger) Debug(msg string, args ...any) { l.entry(args).Debug(msg) }
func (l *logrusLogger) Info(msg string, args ...any)  { l.entry(args).Info(msg) }
func (l *logrusLogger) Warn(msg string, args ...any)  { l.entry(args).Warn(msg) }
func (l *logrusLogger) Error(msg string, args ...any) { l.entry(args).Error(msg) }

// SetLevel maps level onto the closest logrus level.
func (l *logrusLogger) SetLevel(level LogLevel) {
	switch {
	case level <= LogLevelDebug:
		l.logger.SetLevel(logrus.DebugLevel)
	case level <= LogLevelInfo:
		l.logger.SetLevel(logrus.InfoLevel)
	case level <= LogLevelWarn:
		l.logger.SetLevel(logrus.WarnLevel)
	default:
		l.logger.SetLevel(logrus.ErrorLevel)
	}
}
