package log

import (
	"context"
	"encoding/hex"
	"log/slog"
)

// SlogAdapter forwards capture events to an slog.Logger at debug level.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter returns an adapter writing to logger. A nil logger means
// slog.Default().
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger}
}

// Log writes the event.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session_id", event.SessionID),
		slog.String("direction", event.Direction.String()),
		slog.String("category", event.Category.String()),
	}
	if len(event.Packet) > 0 {
		attrs = append(attrs, slog.String("packet", hex.EncodeToString(event.Packet)))
	}

	if m := event.Message; m != nil {
		attrs = append(attrs,
			slog.String("kind", m.Kind.String()),
			slog.String("conductor", m.Conductor.String()),
			slog.String("target", m.Target.String()),
		)
		if bpm, ok := m.Tempo(); ok {
			attrs = append(attrs, slog.Uint64("tempo_bpm", uint64(bpm)))
		}
		if elapsed, ok := m.Elapsed(); ok {
			attrs = append(attrs, slog.Duration("elapsed", elapsed))
		}
		if event.PayloadIgnored {
			attrs = append(attrs, slog.Uint64("ignored_payload", uint64(m.Payload)))
		}
	}

	if e := event.Error; e != nil {
		attrs = append(attrs,
			slog.String("error_kind", e.Kind.String()),
			slog.String("error_msg", e.Message),
		)
		if e.Field != "" {
			attrs = append(attrs, slog.String("error_field", e.Field))
		}
		if e.Code != nil {
			attrs = append(attrs, slog.Int("error_code", int(*e.Code)))
		}
		if e.Length != nil {
			attrs = append(attrs, slog.Int("error_length", *e.Length))
		}
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "baton", attrs...)
}

var _ Logger = (*SlogAdapter)(nil)
