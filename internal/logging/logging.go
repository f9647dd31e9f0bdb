// Package logging wraps log/slog with the subsystem-tagged helpers used
// across oklabby. Logs go to stderr; stdout carries results and, under the
// serve command, the MCP protocol.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// LogLevel defines the severity of the log entry.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String makes LogLevel satisfy the fmt.Stringer interface.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// SlogLevel maps the level onto slog.
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLevel accepts debug, info, warn/warning and error, case-insensitively.
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

var defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

// Init replaces the package logger. It should be called once at startup,
// before any command runs.
func Init(level LogLevel, output io.Writer) {
	defaultLogger = slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{
		Level: level.SlogLevel(),
	}))
}

// Logger returns the current package logger.
func Logger() *slog.Logger {
	return defaultLogger
}

func logf(level slog.Level, subsystem string, err error, format string, args ...any) {
	ctx := context.Background()
	if !defaultLogger.Enabled(ctx, level) {
		return
	}
	attrs := []any{slog.String("subsystem", subsystem)}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	defaultLogger.Log(ctx, level, fmt.Sprintf(format, args...), attrs...)
}

// Debug logs a debug message for subsystem.
func Debug(subsystem string, format string, args ...any) {
	logf(slog.LevelDebug, subsystem, nil, format, args...)
}

// Info logs an informational message for subsystem.
func Info(subsystem string, format string, args ...any) {
	logf(slog.LevelInfo, subsystem, nil, format, args...)
}

// Warn logs a warning for subsystem.
func Warn(subsystem string, format string, args ...any) {
	logf(slog.LevelWarn, subsystem, nil, format, args...)
}

// Error logs err with a message for subsystem.
func Error(subsystem string, err error, format string, args ...any) {
	logf(slog.LevelError, subsystem, err, format, args...)
}
