package log

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger so that With keeps returning *Logger.
type Logger struct {
	*slog.Logger
}

// Config holds logger configuration
type Config struct {
	Level     slog.Level
	Component string
	Output    io.Writer
}

// DefaultConfig logs warnings and errors to stderr. Command output goes to
// stdout, so diagnostics never mix with it.
func DefaultConfig() Config {
	return Config{
		Level:     slog.LevelWarn,
		Component: "budget",
		Output:    os.Stderr,
	}
}

// New creates a logger with a text handler.
func New(config Config) *Logger {
	out := config.Output
	if out == nil {
		out = os.Stderr
	}
	handler := slog.NewTextHandler(out, &slog.HandlerOptions{Level: config.Level})
	return &Logger{Logger: slog.New(handler).With("component", config.Component)}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return &Logger{Logger: slog.New(slog.DiscardHandler)}
}

// With returns a new logger with the given attributes
func (l *Logger) With(args ...any) *Logger {
	return &Logger{Logger: l.Logger.With(args...)}
}

// WithComponent returns a new logger with a specific component name
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{Logger: l.Logger.With("component", component)}
}
