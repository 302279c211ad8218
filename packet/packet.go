//go:generate go run ../codegen/gen_packet_registry.go -- .

// Package packet defines the gamewire packet contract and the concrete
// packet types of the protocol. Every packet pairs a stable one-byte
// discriminant with an Encode/Decode pair that walks its fields in a
// fixed order; the wire carries no field names, only position.
package packet

import (
	"errors"
	"fmt"

	"github.com/mquist/gamewire/catalog"
	"github.com/mquist/gamewire/wire"
)

// ErrUnknownPacket indicates a discriminant with no registered decoder.
var ErrUnknownPacket = errors.New("unknown packet discriminant")

// Catalogs bundles the definition catalogs packets reference. All four
// are loaded once at process start and shared read-only by every encode
// and decode call.
type Catalogs struct {
	Skins  *catalog.Catalog
	Badges *catalog.Catalog
	Emotes *catalog.Catalog
	Items  *catalog.Catalog
}

// Packet is the uniform shape every wire packet implements. Encode and
// Decode must be exact inverses: decoding the bytes Encode produced
// reproduces every field the source set, and absent optional fields
// decode as absent.
type Packet interface {
	ID() uint8
	Encode(s *wire.Stream, cats *Catalogs) error
	Decode(s *wire.Stream, cats *Catalogs) error
}

// Write serializes the discriminant followed by the packet payload.
func Write(s *wire.Stream, cats *Catalogs, p Packet) error {
	if err := s.WriteUint8(p.ID()); err != nil {
		return err
	}
	return p.Encode(s, cats)
}

// Registry maps discriminants to packet constructors. DefaultRegistry
// covers every packet in this package and is produced by go generate.
type Registry map[uint8]func() Packet

// Decode reads the leading discriminant, constructs the matching packet,
// and decodes the payload. An unregistered discriminant fails with
// ErrUnknownPacket; the caller must discard the rest of the message.
func (r Registry) Decode(s *wire.Stream, cats *Catalogs) (Packet, error) {
	id, err := s.ReadUint8()
	if err != nil {
		return nil, err
	}
	construct, ok := r[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPacket, id)
	}
	p := construct()
	if err := p.Decode(s, cats); err != nil {
		return nil, fmt.Errorf("packet %d: %w", id, err)
	}
	return p, nil
}
