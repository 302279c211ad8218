package wire

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

type intCase[T comparable] struct {
	desc string
	v    T
	ser  []byte
}

var uint8Tc = []intCase[uint8]{
	{desc: "Zero", v: 0, ser: []byte{0x00}},
	{desc: "Mid", v: 0x7f, ser: []byte{0x7f}},
	{desc: "Max", v: 0xff, ser: []byte{0xff}},
}

var uint16Tc = []intCase[uint16]{
	{desc: "Zero", v: 0, ser: []byte{0x00, 0x00}},
	{desc: "One", v: 1, ser: []byte{0x00, 0x01}},
	{desc: "Big endian order", v: 0x1234, ser: []byte{0x12, 0x34}},
	{desc: "Max", v: 0xffff, ser: []byte{0xff, 0xff}},
}

var uint32Tc = []intCase[uint32]{
	{desc: "Zero", v: 0, ser: []byte{0x00, 0x00, 0x00, 0x00}},
	{desc: "Big endian order", v: 0xdeadbeef, ser: []byte{0xde, 0xad, 0xbe, 0xef}},
	{desc: "Max", v: 0xffffffff, ser: []byte{0xff, 0xff, 0xff, 0xff}},
}

var int16Tc = []intCase[int16]{
	{desc: "Zero", v: 0, ser: []byte{0x00, 0x00}},
	{desc: "Positive", v: 259, ser: []byte{0x01, 0x03}},
	{desc: "Negative one", v: -1, ser: []byte{0xff, 0xff}},
	{desc: "Min", v: -32768, ser: []byte{0x80, 0x00}},
}

func TestUint8RoundTrip(t *testing.T) {
	for _, tC := range uint8Tc {
		t.Run(tC.desc, func(t *testing.T) {
			s := NewStream(1)
			if err := s.WriteUint8(tC.v); err != nil {
				t.Fatalf("WriteUint8 failed: %v", err)
			}
			if !bytes.Equal(s.Bytes(), tC.ser) {
				t.Fatalf("WriteUint8 expected %x, got %x", tC.ser, s.Bytes())
			}

			r := NewStreamReader(tC.ser)
			got, err := r.ReadUint8()
			if err != nil {
				t.Fatalf("ReadUint8 failed: %v", err)
			}
			if got != tC.v {
				t.Errorf("ReadUint8 expected %d, got %d", tC.v, got)
			}
		})
	}
}

func TestUint16RoundTrip(t *testing.T) {
	for _, tC := range uint16Tc {
		t.Run(tC.desc, func(t *testing.T) {
			s := NewStream(2)
			if err := s.WriteUint16(tC.v); err != nil {
				t.Fatalf("WriteUint16 failed: %v", err)
			}
			if !bytes.Equal(s.Bytes(), tC.ser) {
				t.Fatalf("WriteUint16 expected %x, got %x", tC.ser, s.Bytes())
			}

			r := NewStreamReader(tC.ser)
			got, err := r.ReadUint16()
			if err != nil {
				t.Fatalf("ReadUint16 failed: %v", err)
			}
			if got != tC.v {
				t.Errorf("ReadUint16 expected %d, got %d", tC.v, got)
			}
		})
	}
}

func TestUint32RoundTrip(t *testing.T) {
	for _, tC := range uint32Tc {
		t.Run(tC.desc, func(t *testing.T) {
			s := NewStream(4)
			if err := s.WriteUint32(tC.v); err != nil {
				t.Fatalf("WriteUint32 failed: %v", err)
			}
			if !bytes.Equal(s.Bytes(), tC.ser) {
				t.Fatalf("WriteUint32 expected %x, got %x", tC.ser, s.Bytes())
			}

			r := NewStreamReader(tC.ser)
			got, err := r.ReadUint32()
			if err != nil {
				t.Fatalf("ReadUint32 failed: %v", err)
			}
			if got != tC.v {
				t.Errorf("ReadUint32 expected %d, got %d", tC.v, got)
			}
		})
	}
}

func TestInt16RoundTrip(t *testing.T) {
	for _, tC := range int16Tc {
		t.Run(tC.desc, func(t *testing.T) {
			s := NewStream(2)
			if err := s.WriteInt16(tC.v); err != nil {
				t.Fatalf("WriteInt16 failed: %v", err)
			}
			if !bytes.Equal(s.Bytes(), tC.ser) {
				t.Fatalf("WriteInt16 expected %x, got %x", tC.ser, s.Bytes())
			}

			r := NewStreamReader(tC.ser)
			got, err := r.ReadInt16()
			if err != nil {
				t.Fatalf("ReadInt16 failed: %v", err)
			}
			if got != tC.v {
				t.Errorf("ReadInt16 expected %d, got %d", tC.v, got)
			}
		})
	}
}

func TestWriteCapacity(t *testing.T) {
	s := NewStream(3)
	if err := s.WriteUint16(1); err != nil {
		t.Fatalf("WriteUint16 failed: %v", err)
	}
	if err := s.WriteUint16(2); !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("expected ErrCapacityExceeded, got %v", err)
	}
	// A failed write must not advance the cursor or leak partial bytes.
	if s.Len() != 2 {
		t.Errorf("cursor moved on failed write: len=%d", s.Len())
	}
	if err := s.WriteUint8(3); err != nil {
		t.Errorf("WriteUint8 after failed write: %v", err)
	}
}

func TestReadTruncated(t *testing.T) {
	r := NewStreamReader([]byte{0x01, 0x02, 0x03})
	if _, err := r.ReadUint16(); err != nil {
		t.Fatalf("ReadUint16 failed: %v", err)
	}
	if _, err := r.ReadUint16(); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
	// All-or-nothing: the remaining byte stays readable.
	if r.Remaining() != 1 {
		t.Errorf("cursor moved on failed read: remaining=%d", r.Remaining())
	}
	if _, err := r.ReadUint8(); err != nil {
		t.Errorf("ReadUint8 after failed read: %v", err)
	}
}

var stringTc = []struct {
	desc string
	max  int
	v    string
	ser  []byte
	want string // decoded value, if different from v
}{
	{desc: "Empty", max: 8, v: "", ser: []byte{0x00}},
	{desc: "Short", max: 8, v: "ab", ser: []byte{0x02, 'a', 'b'}},
	{desc: "Exactly max", max: 3, v: "abc", ser: []byte{0x03, 'a', 'b', 'c'}},
	{
		desc: "Truncated to max",
		max:  3,
		v:    "abcdef",
		ser:  []byte{0x03, 'a', 'b', 'c'},
		want: "abc",
	},
	{
		desc: "Wide prefix",
		max:  300,
		v:    "hi",
		ser:  []byte{0x00, 0x02, 'h', 'i'},
	},
}

func TestStringRoundTrip(t *testing.T) {
	for _, tC := range stringTc {
		t.Run(tC.desc, func(t *testing.T) {
			s := NewStream(len(tC.ser))
			if err := s.WriteString(tC.max, tC.v); err != nil {
				t.Fatalf("WriteString failed: %v", err)
			}
			if !bytes.Equal(s.Bytes(), tC.ser) {
				t.Fatalf("WriteString expected %x, got %x", tC.ser, s.Bytes())
			}

			want := tC.v
			if tC.want != "" {
				want = tC.want
			}
			r := NewStreamReader(tC.ser)
			got, err := r.ReadString(tC.max)
			if err != nil {
				t.Fatalf("ReadString failed: %v", err)
			}
			if got != want {
				t.Errorf("ReadString expected %q, got %q", want, got)
			}
		})
	}
}

func TestStringLongInputNeverOverruns(t *testing.T) {
	s := NewStream(16)
	long := strings.Repeat("x", 1000)
	if err := s.WriteString(10, long); err != nil {
		t.Fatalf("WriteString failed: %v", err)
	}
	if s.Len() != 11 {
		t.Fatalf("expected 11 bytes (prefix + 10), got %d", s.Len())
	}
	r := NewStreamReader(s.Bytes())
	got, err := r.ReadString(10)
	if err != nil {
		t.Fatalf("ReadString failed: %v", err)
	}
	if got != long[:10] {
		t.Errorf("expected first 10 bytes of input, got %q", got)
	}
}

func TestStringDeclaredLengthAboveMax(t *testing.T) {
	// Prefix declares 9 bytes but the field maximum is 4.
	r := NewStreamReader([]byte{0x09, 'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i'})
	if _, err := r.ReadString(4); !errors.Is(err, ErrStringTooLong) {
		t.Fatalf("expected ErrStringTooLong, got %v", err)
	}
}

func TestStringTruncatedPayload(t *testing.T) {
	// Prefix declares 5 bytes but only 2 follow.
	r := NewStreamReader([]byte{0x05, 'a', 'b'})
	if _, err := r.ReadString(8); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
	if r.Remaining() != 3 {
		t.Errorf("cursor moved on failed read: remaining=%d", r.Remaining())
	}
}

var flagsTc = []struct {
	desc  string
	flags []bool
	ser   []byte
}{
	{desc: "Single set", flags: []bool{true}, ser: []byte{0x80}},
	{desc: "Single clear", flags: []bool{false}, ser: []byte{0x00}},
	{
		desc:  "Three flags keep order",
		flags: []bool{true, false, true},
		ser:   []byte{0xa0},
	},
	{
		desc:  "Full byte",
		flags: []bool{true, true, true, true, true, true, true, true},
		ser:   []byte{0xff},
	},
	{
		desc:  "Ten flags span two bytes",
		flags: []bool{true, false, false, false, false, false, false, true, true, false},
		ser:   []byte{0x81, 0x80},
	},
	{
		desc: "Sixteen flags",
		flags: []bool{
			false, true, false, true, false, true, false, true,
			true, false, true, false, true, false, true, false,
		},
		ser: []byte{0x55, 0xaa},
	},
}

func TestFlagsRoundTrip(t *testing.T) {
	for _, tC := range flagsTc {
		t.Run(tC.desc, func(t *testing.T) {
			s := NewStream(2)
			if err := s.WriteFlags(tC.flags...); err != nil {
				t.Fatalf("WriteFlags failed: %v", err)
			}
			if !bytes.Equal(s.Bytes(), tC.ser) {
				t.Fatalf("WriteFlags expected %x, got %x", tC.ser, s.Bytes())
			}

			r := NewStreamReader(tC.ser)
			got, err := r.ReadFlags(len(tC.flags))
			if err != nil {
				t.Fatalf("ReadFlags failed: %v", err)
			}
			for i := range tC.flags {
				if got[i] != tC.flags[i] {
					t.Errorf("flag %d: expected %v, got %v", i, tC.flags[i], got[i])
				}
			}
		})
	}
}

func TestFlagsGroupTooLarge(t *testing.T) {
	s := NewStream(4)
	flags := make([]bool, 17)
	if err := s.WriteFlags(flags...); !errors.Is(err, ErrTooManyFlags) {
		t.Fatalf("expected ErrTooManyFlags, got %v", err)
	}

	r := NewStreamReader([]byte{0x00, 0x00, 0x00})
	if _, err := r.ReadFlags(17); !errors.Is(err, ErrTooManyFlags) {
		t.Fatalf("expected ErrTooManyFlags, got %v", err)
	}
}

func TestFlagsByteAlignedAfterGroup(t *testing.T) {
	s := NewStream(4)
	if err := s.WriteFlags(true, true, false); err != nil {
		t.Fatalf("WriteFlags failed: %v", err)
	}
	if err := s.WriteUint16(0x0102); err != nil {
		t.Fatalf("WriteUint16 failed: %v", err)
	}
	want := []byte{0xc0, 0x01, 0x02}
	if !bytes.Equal(s.Bytes(), want) {
		t.Fatalf("expected %x, got %x", want, s.Bytes())
	}
}

func TestTruncateRollsBack(t *testing.T) {
	s := NewStream(8)
	if err := s.WriteUint16(0x0102); err != nil {
		t.Fatalf("WriteUint16 failed: %v", err)
	}
	mark := s.Len()
	if err := s.WriteUint32(0xffffffff); err != nil {
		t.Fatalf("WriteUint32 failed: %v", err)
	}
	s.Truncate(mark)
	if !bytes.Equal(s.Bytes(), []byte{0x01, 0x02}) {
		t.Fatalf("expected rollback to %x, got %x", []byte{0x01, 0x02}, s.Bytes())
	}
	// Writing after rollback replaces the discarded bytes.
	if err := s.WriteUint8(0x42); err != nil {
		t.Fatalf("WriteUint8 failed: %v", err)
	}
	if !bytes.Equal(s.Bytes(), []byte{0x01, 0x02, 0x42}) {
		t.Fatalf("unexpected bytes after rollback write: %x", s.Bytes())
	}
}
