package wirelog

// Logger is the interface applications implement to receive codec
// events. Pass nil or NoopLogger to disable logging.
type Logger interface {
	// Log records a codec event. Implementations must be safe for
	// concurrent use; the codec calls Log inline, so implementations
	// should process or queue events quickly.
	Log(event Event)
}

// NoopLogger discards all events. Safe for concurrent use and usable as
// a zero value.
type NoopLogger struct{}

// Log discards the event.
func (NoopLogger) Log(Event) {}

var _ Logger = NoopLogger{}
