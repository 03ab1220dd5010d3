// Package logger provides structured logging setup using Go's slog package.
package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Options configures the logger setup.
type Options struct {
	Level   string // debug, info, warn, error
	Console bool   // pretty print for dev (LOG_FORMAT=console)
}

// Logger is a thin printf-style wrapper around slog used by the bootstrap
// and services.
type Logger struct {
	l *slog.Logger
}

// New builds a Logger with correlation ID support and installs it as the
// slog default.
func New(opts Options) *Logger {
	handlerOpts := &slog.HandlerOptions{
		Level: parseLevel(opts.Level),
	}

	var handler slog.Handler
	if opts.Console {
		handler = slog.NewTextHandler(os.Stdout, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, handlerOpts)
	}

	// Wrap with correlation handler to auto-inject correlation_id from context
	handler = NewCorrelationHandler(handler)

	l := slog.New(handler)
	slog.SetDefault(l)

	return &Logger{l: l}
}

// Slog exposes the underlying slog logger for attribute-style call sites.
func (l *Logger) Slog() *slog.Logger {
	return l.l
}

func (l *Logger) Debug(format string, args ...any) {
	l.l.Debug(fmt.Sprintf(format, args...))
}

func (l *Logger) Info(format string, args ...any) {
	l.l.Info(fmt.Sprintf(format, args...))
}

func (l *Logger) Warn(format string, args ...any) {
	l.l.Warn(fmt.Sprintf(format, args...))
}

func (l *Logger) Error(format string, args ...any) {
	l.l.Error(fmt.Sprintf(format, args...))
}

// Fatal logs the error and terminates the process.
func (l *Logger) Fatal(err error) {
	l.l.Error(err.Error())
	os.Exit(1)
}

// InfoCtx logs with context so the correlation ID is attached.
func (l *Logger) InfoCtx(ctx context.Context, format string, args ...any) {
	l.l.InfoContext(ctx, fmt.Sprintf(format, args...))
}

// ErrorCtx logs with context so the correlation ID is attached.
func (l *Logger) ErrorCtx(ctx context.Context, format string, args ...any) {
	l.l.ErrorContext(ctx, fmt.Sprintf(format, args...))
}

// parseLevel converts string level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
