// Package ctxlog provides a context key for safely passing a slog.Logger
// instance through context.Context, plus a constructor for the loggers the
// hillclimb command configures from its flags.
package ctxlog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// key is an unexported type to prevent collisions with context keys from other packages.
type key struct{}

// loggerKey is the key for the slog.Logger in a context.Context.
var loggerKey = key{}

// discard is handed out when a context carries no logger, so library code
// stays silent unless a caller opts in.
var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// WithLogger returns a new context with the provided logger embedded.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the slog.Logger from a context. If no logger is
// found, it returns a logger that discards every record.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return discard
}

// Format selects the handler New builds.
type Format int

const (
	// Text emits key=value lines (slog.TextHandler).
	Text Format = iota
	// JSON emits one object per record (slog.JSONHandler).
	JSON
)

// ParseFormat maps "text" or "json" (any case) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "text":
		return Text, nil
	case "json":
		return JSON, nil
	default:
		return Text, fmt.Errorf("ctxlog: unknown log format %q (want text or json)", s)
	}
}

// New returns an isolated logger writing records at or above level to outW.
// It does not touch the global slog default.
func New(level slog.Leveler, format Format, outW io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == JSON {
		return slog.New(slog.NewJSONHandler(outW, opts))
	}
	return slog.New(slog.NewTextHandler(outW, opts))
}
