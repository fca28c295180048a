package logging

import (
	"context"
	"io"
	"time"

	"github.com/hashicorp/go-hclog"
)

// HclogLogger adapts hclog to Logger. hclog has no context support, so ctx
// is accepted for interface symmetry and ignored.
type HclogLogger struct {
	l hclog.Logger
}

// NewHclogLogger returns a JSON-formatted hclog logger writing to w.
func NewHclogLogger(w io.Writer, level string) *HclogLogger {
	return &HclogLogger{
		l: hclog.New(&hclog.LoggerOptions{
			Name:       "travelbook",
			JSONFormat: true,
			Output:     w,
			TimeFn:     time.Now,
			Level:      hclogLevel(level),
		}),
	}
}

func hclogLevel(level string) hclog.Level {
	l := hclog.LevelFromString(level)
	if l == hclog.NoLevel {
		return hclog.Info
	}
	return l
}

func (h *HclogLogger) Debug(_ context.Context, msg string, args ...any) {
	h.l.Debug(msg, args...)
}

func (h *HclogLogger) Info(_ context.Context, msg string, args ...any) {
	h.l.Info(msg, args...)
}

func (h *HclogLogger) Warn(_ context.Context, msg string, args ...any) {
	h.l.Warn(msg, args...)
}

func (h *HclogLogger) Error(_ context.Context, msg string, args ...any) {
	h.l.Error(msg, args...)
}

func (h *HclogLogger) With(args ...any) Logger {
	return &HclogLogger{l: h.l.With(args...)}
}
