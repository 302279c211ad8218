// Package wirelog captures codec activity as structured events.
// Applications hand a Logger to the gamewire Encoder/Decoder; events can
// go to the console through the slog adapter during development or to a
// compact CBOR capture file for later replay.
package wirelog

import (
	"time"
)

// Event is one codec event. CBOR encoding uses integer keys for
// compactness, matching the capture file format.
type Event struct {
	// Timestamp when the event occurred.
	Timestamp time.Time `cbor:"1,keyasint"`

	// ConnID identifies the connection the buffer belongs to.
	ConnID string `cbor:"2,keyasint"`

	// Direction indicates whether the bytes were being produced or consumed.
	Direction Direction `cbor:"3,keyasint"`

	// Exactly one of these is set.
	Packet *PacketEvent `cbor:"4,keyasint,omitempty"`
	Error  *ErrorEvent  `cbor:"5,keyasint,omitempty"`
}

// Direction indicates encode (out) or decode (in).
type Direction uint8

const (
	// DirectionIn marks a decode-side event.
	DirectionIn Direction = 0
	// DirectionOut marks an encode-side event.
	DirectionOut Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// PacketEvent records one packet crossing the codec.
type PacketEvent struct {
	// Discriminant of the packet.
	Discriminant uint8 `cbor:"1,keyasint"`

	// Size is the encoded size in bytes, discriminant included.
	Size int `cbor:"2,keyasint"`
}

// ErrorEvent records a codec failure.
type ErrorEvent struct {
	// Op names the failing operation ("encode", "decode").
	Op string `cbor:"1,keyasint"`

	// Message is the error text.
	Message string `cbor:"2,keyasint"`
}
