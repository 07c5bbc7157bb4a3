package logger

import (
	"log/slog"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrInvalidLevel is returned when a log level name is not recognized.
var ErrInvalidLevel = errors.New("invalid log level")

// Level represents the log level.
type Level int

const (
	// LevelDebug represents debug-level logging (most verbose).
	LevelDebug Level = iota

	// LevelInfo represents info-level logging (standard verbosity).
	LevelInfo

	// LevelError represents error-level logging (least verbose).
	LevelError
)

// String returns the upper-case level name.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// ParseLevel parses a case-insensitive level name.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug, nil
	case "INFO":
		return LevelInfo, nil
	case "ERROR":
		return LevelError, nil
	default:
		return LevelInfo, errors.Wrapf(ErrInvalidLevel, "%q, must be debug, info or error", s)
	}
}

// ToSlogLevel converts Level to slog.Level.
func (l Level) ToSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
