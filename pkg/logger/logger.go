// Package logger provides structured logging for bashast components.
//
// Components take a Logger in their constructors and report recoverable
// normalization anomalies (quoting errors, missing terminators, ambiguous
// attachment points) through it, so batch pipelines can keep going while
// retaining the diagnostics.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// Logger is the logging interface used throughout bashast.
type Logger interface {
	// Debug logs a debug-level message with key-value pairs.
	Debug(msg string, args ...any)

	// Info logs an info-level message with key-value pairs.
	Info(msg string, args ...any)

	// Warn logs a warning-level message with key-value pairs.
	Warn(msg string, args ...any)

	// Error logs an error-level message with key-value pairs.
	Error(msg string, args ...any)

	// With returns a Logger that includes the given key-value pairs in every
	// record.
	With(args ...any) Logger
}

// Options configures a new Logger.
type Options struct {
	// Level is the minimum level to emit. Default: info.
	Level slog.Level

	// Output is the destination. Default: stderr.
	Output io.Writer
}

// New creates a text-format Logger writing to stderr (following Unix
// conventions for CLI tools) unless overridden via Options.
func New(opts Options) Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: opts.Level,
	})

	return &slogLogger{log: slog.New(handler)}
}

type slogLogger struct {
	log *slog.Logger
}

func (l *slogLogger) Debug(msg string, args ...any) { l.log.Debug(msg, args...) }
func (l *slogLogger) Info(msg string, args ...any)  { l.log.Info(msg, args...) }
func (l *slogLogger) Warn(msg string, args ...any)  { l.log.Warn(msg, args...) }
func (l *slogLogger) Error(msg string, args ...any) { l.log.Error(msg, args...) }

func (l *slogLogger) With(args ...any) Logger {
	return &slogLogger{log: l.log.With(args...)}
}

// NewNoOpLogger returns a Logger that discards everything. Intended for
// tests.
func NewNoOpLogger() Logger {
	return &noOpLogger{}
}

type noOpLogger struct{}

func (*noOpLogger) Debug(string, ...any) {}
func (*noOpLogger) Info(string, ...any)  {}
func (*noOpLogger) Warn(string, ...any)  {}
func (*noOpLogger) Error(string, ...any) {}

func (l *noOpLogger) With(...any) Logger { return l }

// Verify interface compliance.
var (
	_ Logger = (*slogLogger)(nil)
	_ Logger = (*noOpLogger)(nil)
)
