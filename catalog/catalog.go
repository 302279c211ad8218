// Package catalog implements the definition-reference compression of the
// gamewire encoding. Game content (skins, badges, emotes, item kinds) is
// loaded once at process start into ordered, immutable catalogs; packets
// reference an entry by its position instead of carrying names, using the
// smallest byte-aligned integer width that can index the catalog.
//
// Both peers must hold identical catalogs; that is a deployment
// invariant, not one the codec can check. A decoded position at or past
// the catalog size therefore signals a content mismatch and fails with
// ErrRefOutOfRange.
package catalog

import (
	"errors"
	"fmt"

	"github.com/mquist/gamewire/wire"
)

var (
	// ErrRefOutOfRange indicates a decoded position at or beyond the
	// catalog size. The stream is corrupt or the peers hold different
	// content versions.
	ErrRefOutOfRange = errors.New("catalog reference out of range")

	// ErrNotMember indicates an encode of a definition the catalog does
	// not contain.
	ErrNotMember = errors.New("definition is not a catalog member")
)

// MaxEntries is the largest catalog a two-byte reference can address.
const MaxEntries = 1 << 16

// A Definition is one named entry of a Catalog. Definitions are plain
// values; equality of two references is equality of their names within
// the same catalog.
type Definition struct {
	Name string
}

// A Catalog is an ordered, insertion-stable sequence of definitions,
// immutable after construction and safe for concurrent reads. Its size
// fixes the reference width on the wire.
type Catalog struct {
	name  string
	defs  []Definition
	index map[string]int
}

// New builds a catalog from names in their content order. Order matters:
// it determines each definition's wire position. Empty and duplicate
// names are rejected, as are catalogs too large for a two-byte reference.
func New(name string, names []string) (*Catalog, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("catalog %q has no entries", name)
	}
	if len(names) > MaxEntries {
		return nil, fmt.Errorf("catalog %q has %d entries, limit is %d", name, len(names), MaxEntries)
	}
	c := &Catalog{
		name:  name,
		defs:  make([]Definition, len(names)),
		index: make(map[string]int, len(names)),
	}
	for i, n := range names {
		if n == "" {
			return nil, fmt.Errorf("catalog %q entry %d has an empty name", name, i)
		}
		if _, dup := c.index[n]; dup {
			return nil, fmt.Errorf("catalog %q has duplicate entry %q", name, n)
		}
		c.defs[i] = Definition{Name: n}
		c.index[n] = i
	}
	return c, nil
}

// MustNew is New for compiled-in content; it panics on invalid input.
func MustNew(name string, names []string) *Catalog {
	c, err := New(name, names)
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the catalog's identity, used in error messages.
func (c *Catalog) Name() string {
	return c.name
}

// Len returns the number of definitions.
func (c *Catalog) Len() int {
	return len(c.defs)
}

// At returns the definition at position i.
func (c *Catalog) At(i int) (Definition, bool) {
	if i < 0 || i >= len(c.defs) {
		return Definition{}, false
	}
	return c.defs[i], true
}

// Lookup returns the definition with the given name.
func (c *Catalog) Lookup(name string) (Definition, bool) {
	i, ok := c.index[name]
	if !ok {
		return Definition{}, false
	}
	return c.defs[i], true
}

// RefWidth returns the reference size on the wire in bytes: one byte for
// catalogs of up to 256 entries, two bytes beyond that. References stay
// byte-aligned so they never disturb the stream's alignment invariant.
func (c *Catalog) RefWidth() int {
	if len(c.defs) <= 1<<8 {
		return 1
	}
	return 2
}

// WriteRef encodes d's position into the stream using RefWidth bytes.
func (c *Catalog) WriteRef(s *wire.Stream, d Definition) error {
	i, ok := c.index[d.Name]
	if !ok {
		return fmt.Errorf("%w: %q in catalog %q", ErrNotMember, d.Name, c.name)
	}
	if c.RefWidth() == 1 {
		return s.WriteUint8(uint8(i))
	}
	return s.WriteUint16(uint16(i))
}

// ReadRef decodes a position and returns the definition it addresses.
func (c *Catalog) ReadRef(s *wire.Stream) (Definition, error) {
	var i int
	if c.RefWidth() == 1 {
		v, err := s.ReadUint8()
		if err != nil {
			return Definition{}, err
		}
		i = int(v)
	} else {
		v, err := s.ReadUint16()
		if err != nil {
			return Definition{}, err
		}
		i = int(v)
	}
	if i >= len(c.defs) {
		return Definition{}, fmt.Errorf("%w: position %d in catalog %q of %d", ErrRefOutOfRange, i, c.name, len(c.defs))
	}
	return c.defs[i], nil
}
