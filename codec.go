// Package gamewire glues the packet codec to a transport: an Encoder
// batches packets back-to-back into one shared send buffer, a Decoder
// iterates packets out of one received byte sequence, and a Session/Mux
// pair delivers decoded payloads to application logic.
//
// gamewire defines no framing; the transport owns message boundaries and
// hands each complete byte sequence to a Decoder. Streams and buffers
// are single-producer: a multi-connection server uses one Encoder and
// one Decoder per connection.
package gamewire

import (
	"errors"
	"time"

	"github.com/mquist/gamewire/packet"
	"github.com/mquist/gamewire/wire"
	"github.com/mquist/gamewire/wirelog"
)

// DefaultBufferCap is the default send buffer capacity in bytes.
const DefaultBufferCap = 4096

// ErrDiscarded indicates the remainder of a received buffer was dropped
// after an earlier decode failure.
var ErrDiscarded = errors.New("buffer discarded after decode error")

// Encoder serializes packets back-to-back into one fixed-capacity send
// buffer. A packet that fails mid-encode is rolled back completely, so
// Bytes never exposes a partial encoding. Not safe for concurrent use.
type Encoder struct {
	s      *wire.Stream
	cats   *packet.Catalogs
	logger wirelog.Logger
	connID string
}

// NewEncoder creates an Encoder over a fresh buffer of the given
// capacity; capacity <= 0 selects DefaultBufferCap.
func NewEncoder(cats *packet.Catalogs, capacity int) *Encoder {
	if capacity <= 0 {
		capacity = DefaultBufferCap
	}
	return &Encoder{s: wire.NewStream(capacity), cats: cats}
}

// SetLogger configures event logging for this encoder. Pass nil to
// disable.
func (e *Encoder) SetLogger(logger wirelog.Logger, connID string) {
	e.logger = logger
	e.connID = connID
}

// Append serializes one packet onto the end of the buffer. On failure
// the buffer is restored to its previous length and the error returned;
// typical causes are a full buffer (wire.ErrCapacityExceeded) or a
// reference to a definition outside its catalog.
func (e *Encoder) Append(p packet.Packet) error {
	mark := e.s.Len()
	if err := packet.Write(e.s, e.cats, p); err != nil {
		e.s.Truncate(mark)
		e.logError(wirelog.DirectionOut, "encode", err)
		return err
	}
	e.logPacket(wirelog.DirectionOut, p.ID(), e.s.Len()-mark)
	return nil
}

// Len returns the number of buffered bytes.
func (e *Encoder) Len() int {
	return e.s.Len()
}

// Bytes returns the buffered encoding for hand-off to the transport.
// The slice aliases the buffer; copy it or send it before Reset.
func (e *Encoder) Bytes() []byte {
	return e.s.Bytes()
}

// Reset empties the buffer for the next batch.
func (e *Encoder) Reset() {
	e.s.Truncate(0)
}

func (e *Encoder) logPacket(dir wirelog.Direction, id uint8, size int) {
	if e.logger == nil {
		return
	}
	e.logger.Log(wirelog.Event{
		Timestamp: time.Now(),
		ConnID:    e.connID,
		Direction: dir,
		Packet:    &wirelog.PacketEvent{Discriminant: id, Size: size},
	})
}

func (e *Encoder) logError(dir wirelog.Direction, op string, err error) {
	if e.logger == nil {
		return
	}
	e.logger.Log(wirelog.Event{
		Timestamp: time.Now(),
		ConnID:    e.connID,
		Direction: dir,
		Error:     &wirelog.ErrorEvent{Op: op, Message: err.Error()},
	})
}

// Decoder iterates the packets of one received byte sequence. Any decode
// failure poisons the rest of the buffer: the message boundary is lost,
// so the remaining bytes are discarded per the protocol's error policy.
// Not safe for concurrent use.
type Decoder struct {
	s      *wire.Stream
	reg    packet.Registry
	cats   *packet.Catalogs
	logger wirelog.Logger
	connID string
	err    error
}

// NewDecoder creates a Decoder over the received bytes. The registry
// decides which discriminants are understood; DefaultRegistry covers
// every packet this module defines.
func NewDecoder(data []byte, reg packet.Registry, cats *packet.Catalogs) *Decoder {
	return &Decoder{s: wire.NewStreamReader(data), reg: reg, cats: cats}
}

// SetLogger configures event logging for this decoder. Pass nil to
// disable.
func (d *Decoder) SetLogger(logger wirelog.Logger, connID string) {
	d.logger = logger
	d.connID = connID
}

// More reports whether another packet can be read.
func (d *Decoder) More() bool {
	return d.err == nil && d.s.Remaining() > 0
}

// Next decodes the next packet. After any failure it keeps returning an
// error wrapping ErrDiscarded along with the original cause.
func (d *Decoder) Next() (packet.Packet, error) {
	if d.err != nil {
		return nil, errors.Join(ErrDiscarded, d.err)
	}
	mark := d.s.Len()
	p, err := d.reg.Decode(d.s, d.cats)
	if err != nil {
		d.err = err
		d.logDecodeError(err)
		return nil, err
	}
	d.logDecoded(p.ID(), d.s.Len()-mark)
	return p, nil
}

func (d *Decoder) logDecoded(id uint8, size int) {
	if d.logger == nil {
		return
	}
	d.logger.Log(wirelog.Event{
		Timestamp: time.Now(),
		ConnID:    d.connID,
		Direction: wirelog.DirectionIn,
		Packet:    &wirelog.PacketEvent{Discriminant: id, Size: size},
	})
}

func (d *Decoder) logDecodeError(err error) {
	if d.logger == nil {
		return
	}
	d.logger.Log(wirelog.Event{
		Timestamp: time.Now(),
		ConnID:    d.connID,
		Direction: wirelog.DirectionIn,
		Error:     &wirelog.ErrorEvent{Op: "decode", Message: err.Error()},
	})
}
