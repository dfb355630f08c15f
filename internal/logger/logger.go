// Package logger provides a small logging interface for gsys components,
// backed by zerolog. The graphing mode owns the terminal, so loggers write
// to stderr and stay silent below warn unless GSYS_DEBUG is set.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger defines the interface for logging operations.
// All methods accept a format string and arguments, similar to fmt.Printf.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

type zeroLogger struct {
	log zerolog.Logger
}

// New creates a logger writing human-readable output to w.
// The component name is attached to every event. Debug events are only
// emitted when the GSYS_DEBUG environment variable is set.
func New(w io.Writer, component string) Logger {
	level := zerolog.WarnLevel
	if os.Getenv("GSYS_DEBUG") != "" {
		level = zerolog.DebugLevel
	}

	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	log := zerolog.New(out).Level(level).With().
		Timestamp().
		Str("component", component).
		Logger()

	return &zeroLogger{log: log}
}

// NewStderr creates a logger for the named component writing to stderr.
func NewStderr(component string) Logger {
	return New(os.Stderr, component)
}

func (l *zeroLogger) Debug(format string, args ...interface{}) {
	l.log.Debug().Msgf(format, args...)
}

func (l *zeroLogger) Info(format string, args ...interface{}) {
	l.log.Info().Msgf(format, args...)
}

func (l *zeroLogger) Warn(format string, args ...interface{}) {
	l.log.Warn().Msgf(format, args...)
}

func (l *zeroLogger) Error(format string, args ...interface{}) {
	l.log.Error().Msgf(format, args...)
}

// noopLogger implements Logger but discards all messages.
// Useful for testing or when logging is not desired.
type noopLogger struct{}

// Noop returns a logger that discards all messages.
func Noop() Logger {
	return &noopLogger{}
}

func (l *noopLogger) Debug(format string, args ...interface{}) {}
func (l *noopLogger) Info(format string, args ...interface{})  {}
func (l *noopLogger) Warn(format string, args ...interface{})  {}
func (l *noopLogger) Error(format string, args ...interface{}) {}

// LogMessage represents a captured log message.
type LogMessage struct {
	Level   string
	Message string
}

// BufferLogger captures log messages for testing.
// Exported for use in test assertions.
type BufferLogger struct {
	Messages []LogMessage
}

// NewBufferLogger creates a logger that captures messages for inspection.
func NewBufferLogger() *BufferLogger {
	return &BufferLogger{}
}

func (l *BufferLogger) record(level, format string, args ...interface{}) {
	l.Messages = append(l.Messages, LogMessage{
		Level:   level,
		Message: fmt.Sprintf(format, args...),
	})
}

func (l *BufferLogger) Debug(format string, args ...interface{}) {
	l.record("debug", format, args...)
}

func (l *BufferLogger) Info(format string, args ...interface{}) {
	l.record("info", format, args...)
}

func (l *BufferLogger) Warn(format string, args ...interface{}) {
	l.record("warn", format, args...)
}

func (l *BufferLogger) Error(format string, args ...interface{}) {
	l.record("error", format, args...)
}

// HasMessage returns true if any captured message at the given level
// contains the substring.
func (l *BufferLogger) HasMessage(level, substring string) bool {
	for _, m := range l.Messages {
		if m.Level == level && strings.Contains(m.Message, substring) {
			return true
		}
	}
	return false
}
