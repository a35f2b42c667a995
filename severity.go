package telemetry

import (
	"log/slog"

	"github.com/getsentry/sentry-go"
)

// Severity is the level attached to a message sent to the backend.
type Severity string

// All the severities accepted by RegisterMessage. The backend only
// knows about three levels, so error, critical, and fatal all
// collapse to the backend's error level.
const (
	SeverityDebug    Severity = "debug"
	SeverityInfo     Severity = "info"
	SeverityWarn     Severity = "warn"
	SeverityError    Severity = "error"
	SeverityCritical Severity = "critical"
	SeverityFatal    Severity = "fatal"
)

// sentryLevel maps a Severity to the backend's own level. Unknown
// severities fall back to info so an extended severity set never
// breaks reporting.
func (s Severity) sentryLevel() sentry.Level {
	switch s {
	case SeverityDebug:
		return sentry.LevelDebug
	case SeverityInfo:
		return sentry.LevelInfo
	case SeverityWarn:
		return sentry.LevelWarning
	case SeverityError, SeverityCritical, SeverityFatal:
		return sentry.LevelError
	default:
		return sentry.LevelInfo
	}
}

// slogLevel maps a Severity to the level used for the local log line.
func (s Severity) slogLevel() slog.Level {
	switch s {
	case SeverityDebug:
		return slog.LevelDebug
	case SeverityInfo:
		return slog.LevelInfo
	case SeverityWarn:
		return slog.LevelWarn
	case SeverityError, SeverityCritical, SeverityFatal:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
