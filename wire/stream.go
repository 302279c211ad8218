// Package wire implements the byte- and bit-level primitives of the
// gamewire encoding: a cursor over a fixed-capacity buffer with
// symmetrical read/write pairs for fixed-width integers, bounded
// length-prefixed strings, and packed boolean groups.
//
// All multi-byte integers are big-endian. Both sides of a connection
// must issue the same sequence of calls; the encoding carries no field
// names, only position.
package wire

import (
	"encoding/binary"
	"errors"
)

var (
	// ErrCapacityExceeded indicates a write would overflow the buffer.
	ErrCapacityExceeded = errors.New("write exceeds stream capacity")

	// ErrTruncated indicates a read needs more bytes than remain.
	ErrTruncated = errors.New("stream truncated")

	// ErrStringTooLong indicates a decoded length prefix exceeds the
	// field's declared maximum. The peers disagree on the field layout.
	ErrStringTooLong = errors.New("string exceeds declared maximum")

	// ErrTooManyFlags indicates a boolean group of more than 16 flags.
	ErrTooManyFlags = errors.New("boolean group larger than 16 flags")
)

// Stream is a cursor over a fixed-capacity byte buffer. A Stream is
// created per encode or decode call and is not safe for concurrent use.
//
// Writes never advance past capacity and reads never advance past the
// high-water mark written by the producer. A failed operation leaves
// the cursor where it was.
type Stream struct {
	buf   []byte
	pos   int
	limit int // readable bytes; equals pos on the encoding side
}

// NewStream creates an empty Stream for encoding with the given capacity.
func NewStream(capacity int) *Stream {
	return &Stream{buf: make([]byte, capacity)}
}

// NewStreamReader creates a Stream for decoding the received bytes.
// The Stream reads from data directly without copying.
func NewStreamReader(data []byte) *Stream {
	return &Stream{buf: data, limit: len(data)}
}

// Len returns the number of bytes consumed by the cursor so far.
func (s *Stream) Len() int {
	return s.pos
}

// Remaining returns the number of unread bytes on the decoding side.
func (s *Stream) Remaining() int {
	return s.limit - s.pos
}

// Bytes returns the encoded prefix of the buffer. The slice aliases the
// Stream's storage and is only valid until the next write or Truncate.
func (s *Stream) Bytes() []byte {
	return s.buf[:s.pos]
}

// Truncate discards everything written after offset n. It is used to
// roll back a partially written packet after a failed encode.
func (s *Stream) Truncate(n int) {
	if n < 0 || n > s.pos {
		return
	}
	s.pos = n
	if s.limit > n {
		s.limit = n
	}
}

// grab reserves n writable bytes, advancing the cursor only on success.
func (s *Stream) grab(n int) ([]byte, error) {
	if s.pos+n > len(s.buf) {
		return nil, ErrCapacityExceeded
	}
	b := s.buf[s.pos : s.pos+n]
	s.pos += n
	if s.limit < s.pos {
		s.limit = s.pos
	}
	return b, nil
}

// take consumes n readable bytes, advancing the cursor only on success.
func (s *Stream) take(n int) ([]byte, error) {
	if s.pos+n > s.limit {
		return nil, ErrTruncated
	}
	b := s.buf[s.pos : s.pos+n]
	s.pos += n
	return b, nil
}

func (s *Stream) WriteUint8(v uint8) error {
	b, err := s.grab(1)
	if err != nil {
		return err
	}
	b[0] = v
	return nil
}

func (s *Stream) ReadUint8() (uint8, error) {
	b, err := s.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (s *Stream) WriteUint16(v uint16) error {
	b, err := s.grab(2)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint16(b, v)
	return nil
}

func (s *Stream) ReadUint16() (uint16, error) {
	b, err := s.take(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (s *Stream) WriteUint32(v uint32) error {
	b, err := s.grab(4)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint32(b, v)
	return nil
}

func (s *Stream) ReadUint32() (uint32, error) {
	b, err := s.take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (s *Stream) WriteInt16(v int16) error {
	return s.WriteUint16(uint16(v))
}

func (s *Stream) ReadInt16() (int16, error) {
	v, err := s.ReadUint16()
	return int16(v), err
}

// prefixWidth returns the length-prefix size for a string field with the
// given maximum byte length: one byte up to 255, two bytes up to 65535.
func prefixWidth(max int) int {
	if max <= 0xFF {
		return 1
	}
	return 2
}

// WriteString writes a length prefix sized for max followed by at most
// max bytes of v. Longer input is silently truncated to its first max
// bytes. max is a per-field constant shared by both peers; it must be
// between 1 and 65535.
func (s *Stream) WriteString(max int, v string) error {
	if max < 1 || max > 0xFFFF {
		return errors.New("invalid string field maximum")
	}
	if len(v) > max {
		v = v[:max]
	}
	w := prefixWidth(max)
	b, err := s.grab(w + len(v))
	if err != nil {
		return err
	}
	if w == 1 {
		b[0] = uint8(len(v))
	} else {
		binary.BigEndian.PutUint16(b, uint16(len(v)))
	}
	copy(b[w:], v)
	return nil
}

// ReadString reads a string written with the same max. A declared length
// above max means the peers disagree on the field layout and fails with
// ErrStringTooLong. The cursor does not advance on failure.
func (s *Stream) ReadString(max int) (string, error) {
	if max < 1 || max > 0xFFFF {
		return "", errors.New("invalid string field maximum")
	}
	w := prefixWidth(max)
	if s.pos+w > s.limit {
		return "", ErrTruncated
	}
	var n int
	if w == 1 {
		n = int(s.buf[s.pos])
	} else {
		n = int(binary.BigEndian.Uint16(s.buf[s.pos:]))
	}
	if n > max {
		return "", ErrStringTooLong
	}
	if s.pos+w+n > s.limit {
		return "", ErrTruncated
	}
	v := string(s.buf[s.pos+w : s.pos+w+n])
	s.pos += w + n
	return v, nil
}

// WriteFlags packs up to 16 flags into one or two bytes, MSB-first:
// flag i lands in byte i/8 at bit 7-(i%8). A group is written as a unit
// and the stream is byte-aligned again when the call returns. Both
// peers must use the same flag count and order.
func (s *Stream) WriteFlags(flags ...bool) error {
	n := len(flags)
	if n == 0 {
		return errors.New("empty boolean group")
	}
	if n > 16 {
		return ErrTooManyFlags
	}
	b, err := s.grab((n + 7) / 8)
	if err != nil {
		return err
	}
	for i := range b {
		b[i] = 0
	}
	for i, f := range flags {
		if f {
			b[i/8] |= 1 << (7 - uint(i%8))
		}
	}
	return nil
}

// ReadFlags reads a boolean group of n flags in the order it was written.
func (s *Stream) ReadFlags(n int) ([]bool, error) {
	if n == 0 {
		return nil, errors.New("empty boolean group")
	}
	if n > 16 {
		return nil, ErrTooManyFlags
	}
	b, err := s.take((n + 7) / 8)
	if err != nil {
		return nil, err
	}
	flags := make([]bool, n)
	for i := range flags {
		flags[i] = b[i/8]&(1<<(7-uint(i%8))) != 0
	}
	return flags, nil
}
