// Package logging defines the context-aware structured-logging interface used
// across travelbook and its two backends: log/slog (human-readable text) and
// hashicorp/go-hclog (JSON lines).
package logging

import (
	"context"
	"io"
	"strings"
)

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "destination created", "id", d.ID, "owner", d.UserID)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}

// Output formats accepted by New.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// New builds a Logger writing to w. format selects the backend (FormatJSON
// uses hclog, anything else slog text); level is one of debug, info, warn,
// error and falls back to info.
func New(w io.Writer, level, format string) Logger {
	if strings.EqualFold(format, FormatJSON) {
		return NewHclogLogger(w, level)
	}
	return NewTextLogger(w, level)
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return NewTextLogger(io.Discard, "error")
}
