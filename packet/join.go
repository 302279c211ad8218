package packet

import (
	"github.com/mquist/gamewire/catalog"
	"github.com/mquist/gamewire/wire"
)

// Field maximums for JoinRequest strings, in bytes. Shared constants on
// both peers; they size the length prefixes and are never transmitted.
const (
	NameMaxLen       = 24
	AuthTokenMaxLen  = 64
	ExternalIDMaxLen = 36
)

// EmoteSlots is the number of emote loadout slots a player can fill.
const EmoteSlots = 6

// JoinRequest announces a player to the server. A ten-flag boolean group
// leads the payload: device type plus one presence flag per optional
// field, in the order of joinFields. The display name is sanitized on
// decode.
//
// @gen:reg
type JoinRequest struct {
	Mobile     bool
	Name       string
	Badge      Optional[catalog.Definition]
	AuthToken  Optional[string]
	ExternalID Optional[string]
	Emotes     [EmoteSlots]Optional[catalog.Definition]
}

func (p JoinRequest) ID() uint8 {
	return 1
}

// joinField is one optional field of the join payload. Encode and Decode
// both walk joinFields, so the wire order and the presence-flag order
// cannot drift apart when the packet is edited.
type joinField struct {
	present func(*JoinRequest) bool
	write   func(*wire.Stream, *Catalogs, *JoinRequest) error
	read    func(*wire.Stream, *Catalogs, *JoinRequest) error
}

var joinFields = buildJoinFields()

func buildJoinFields() []joinField {
	fields := []joinField{
		{
			present: func(p *JoinRequest) bool { return p.Badge.Exists },
			write: func(s *wire.Stream, cats *Catalogs, p *JoinRequest) error {
				return cats.Badges.WriteRef(s, p.Badge.Item)
			},
			read: func(s *wire.Stream, cats *Catalogs, p *JoinRequest) error {
				d, err := cats.Badges.ReadRef(s)
				if err != nil {
					return err
				}
				p.Badge = Some(d)
				return nil
			},
		},
		{
			present: func(p *JoinRequest) bool { return p.AuthToken.Exists },
			write: func(s *wire.Stream, _ *Catalogs, p *JoinRequest) error {
				return s.WriteString(AuthTokenMaxLen, p.AuthToken.Item)
			},
			read: func(s *wire.Stream, _ *Catalogs, p *JoinRequest) error {
				v, err := s.ReadString(AuthTokenMaxLen)
				if err != nil {
					return err
				}
				p.AuthToken = Some(v)
				return nil
			},
		},
		{
			present: func(p *JoinRequest) bool { return p.ExternalID.Exists },
			write: func(s *wire.Stream, _ *Catalogs, p *JoinRequest) error {
				return s.WriteString(ExternalIDMaxLen, p.ExternalID.Item)
			},
			read: func(s *wire.Stream, _ *Catalogs, p *JoinRequest) error {
				v, err := s.ReadString(ExternalIDMaxLen)
				if err != nil {
					return err
				}
				p.ExternalID = Some(v)
				return nil
			},
		},
	}
	for slot := 0; slot < EmoteSlots; slot++ {
		slot := slot
		fields = append(fields, joinField{
			present: func(p *JoinRequest) bool { return p.Emotes[slot].Exists },
			write: func(s *wire.Stream, cats *Catalogs, p *JoinRequest) error {
				return cats.Emotes.WriteRef(s, p.Emotes[slot].Item)
			},
			read: func(s *wire.Stream, cats *Catalogs, p *JoinRequest) error {
				d, err := cats.Emotes.ReadRef(s)
				if err != nil {
					return err
				}
				p.Emotes[slot] = Some(d)
				return nil
			},
		})
	}
	return fields
}

func (p JoinRequest) Encode(s *wire.Stream, cats *Catalogs) error {
	flags := make([]bool, 0, 1+len(joinFields))
	flags = append(flags, p.Mobile)
	for _, f := range joinFields {
		flags = append(flags, f.present(&p))
	}
	if err := s.WriteFlags(flags...); err != nil {
		return err
	}
	if err := s.WriteString(NameMaxLen, p.Name); err != nil {
		return err
	}
	for _, f := range joinFields {
		if f.present(&p) {
			if err := f.write(s, cats, &p); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *JoinRequest) Decode(s *wire.Stream, cats *Catalogs) error {
	flags, err := s.ReadFlags(1 + len(joinFields))
	if err != nil {
		return err
	}
	p.Mobile = flags[0]
	name, err := s.ReadString(NameMaxLen)
	if err != nil {
		return err
	}
	p.Name = SanitizeName(name)
	for i, f := range joinFields {
		if !flags[1+i] {
			continue
		}
		if err := f.read(s, cats, p); err != nil {
			return err
		}
	}
	return nil
}
