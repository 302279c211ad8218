package wirelog

import (
	"context"
	"log/slog"
)

// SlogAdapter writes codec events to an slog.Logger. Useful in
// development when you want codec traffic on the console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a SlogAdapter writing to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event at Debug level, or Warn for error events.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("conn_id", event.ConnID),
		slog.String("direction", event.Direction.String()),
	}

	level := slog.LevelDebug
	msg := "packet"
	switch {
	case event.Packet != nil:
		attrs = append(attrs,
			slog.Uint64("discriminant", uint64(event.Packet.Discriminant)),
			slog.Int("size", event.Packet.Size),
		)
	case event.Error != nil:
		level = slog.LevelWarn
		msg = "codec error"
		attrs = append(attrs,
			slog.String("op", event.Error.Op),
			slog.String("error", event.Error.Message),
		)
	}

	a.logger.LogAttrs(context.Background(), level, msg, attrs...)
}

var _ Logger = (*SlogAdapter)(nil)
