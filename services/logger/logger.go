package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Level is the minimum level a logger emits.
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// Logger is the logging surface services depend on. *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// ParseLevel maps "debug", "info", "warn" and "error" to a Level, defaulting to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

func (l Level) slogLevel() slog.Level {
	switch l {
	case DebugLevel:
		return slog.LevelDebug
	case WarnLevel:
		return slog.LevelWarn
	case ErrorLevel:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewDefaultLogger returns a colored slog logger writing to stderr.
func NewDefaultLogger(level Level) *slog.Logger {
	return New(os.Stderr, level)
}

// New returns a tint-backed slog logger writing to w.
func New(w io.Writer, level Level) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level.slogLevel(),
		TimeFormat: time.DateTime,
		NoColor:    w != os.Stderr && w != os.Stdout,
	}))
}

// Setup installs a default logger for packages that log through slog directly.
func Setup(level Level) *slog.Logger {
	l := NewDefaultLogger(level)
	slog.SetDefault(l)
	return l
}

// Discard returns a logger that drops everything, for tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
