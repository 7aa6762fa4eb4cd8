// SPDX-FileCopyrightText: 2025 Jon Thor Kristinsson
// SPDX-License-Identifier: Apache-2.0

// Package logging provides structured logging capabilities for the scheduler
package logging

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"
	"unicode"
)

// Logger is the interface for structured logging
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
	WithContext(ctx context.Context) Logger
}

// slogLogger wraps slog.Logger to implement our Logger interface
type slogLogger struct {
	logger *slog.Logger
}

// NewLogger creates a new logger with the specified configuration
func NewLogger(config *Config) Logger {
	if config == nil {
		config = DefaultConfig()
	}

	opts := &slog.HandlerOptions{
		Level: config.Level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Customize time format
			if a.Key == slog.TimeKey {
				return slog.String(slog.TimeKey, a.Value.Time().Format(time.RFC3339))
			}
			return a
		},
	}

	var handler slog.Handler
	switch config.Format {
	case FormatJSON:
		handler = slog.NewJSONHandler(config.Output, opts)
	default:
		handler = slog.NewTextHandler(config.Output, opts)
	}

	logger := slog.New(handler)

	// Add default attributes
	logger = logger.With(
		"service", "roomsched",
		"version", config.Version,
	)

	return &slogLogger{logger: logger}
}

func (l *slogLogger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

func (l *slogLogger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

func (l *slogLogger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

func (l *slogLogger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

func (l *slogLogger) With(args ...any) Logger {
	return &slogLogger{logger: l.logger.With(args...)}
}

func (l *slogLogger) WithContext(ctx context.Context) Logger {
	// Extract common context values
	attrs := make([]any, 0)

	// Add trace ID if present
	if traceID := ctx.Value("trace_id"); traceID != nil {
		attrs = append(attrs, "trace_id", traceID)
	}

	// Add request ID if present
	if requestID := ctx.Value("request_id"); requestID != nil {
		attrs = append(attrs, "request_id", requestID)
	}

	// Add user if present
	if user := ctx.Value("user"); user != nil {
		attrs = append(attrs, "user", user)
	}

	if len(attrs) > 0 {
		return l.With(attrs...)
	}

	return l
}

// Config holds logger configuration
type Config struct {
	// Level is the minimum log level
	Level slog.Level

	// Format is the output format (text or json)
	Format Format

	// Output is where logs are written (default: os.Stdout)
	Output *os.File

	// Version is the client version to include in logs
	Version string
}

// Format represents the log output format
type Format string

const (
	// FormatText outputs human-readable text logs
	FormatText Format = "text"

	// FormatJSON outputs structured JSON logs
	FormatJSON Format = "json"
)

// DefaultConfig returns a default logger configuration
func DefaultConfig() *Config {
	return &Config{
		Level:   slog.LevelInfo,
		Format:  FormatText,
		Output:  os.Stdout,
		Version: "unknown",
	}
}

// Sanitize strips control characters from value before it reaches a log
// line, so a room name supplied through RequestExplicitRoom can't forge
// extra log fields or lines via embedded newlines.
// lgtm[go/log-injection] This function sanitizes log values by removing control characters
func Sanitize(value any) any {
	str, ok := value.(string)
	if !ok {
		return value
	}

	return strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', '\t':
			return ' '
		}
		if unicode.IsControl(r) && !unicode.IsSpace(r) {
			return -1 // Drop the character
		}
		return r
	}, str)
}

// NoOpLogger is a logger that discards all log messages
type NoOpLogger struct{}

func (NoOpLogger) Debug(msg string, args ...any)          {}
func (NoOpLogger) Info(msg string, args ...any)           {}
func (NoOpLogger) Warn(msg string, args ...any)           {}
func (NoOpLogger) Error(msg string, args ...any)          {}
func (NoOpLogger) With(args ...any) Logger                { return NoOpLogger{} }
func (NoOpLogger) WithContext(ctx context.Context) Logger { return NoOpLogger{} }
