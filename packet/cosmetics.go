package packet

import (
	"github.com/mquist/gamewire/catalog"
	"github.com/mquist/gamewire/wire"
)

// CosmeticUpdate broadcasts a player's cosmetic selection to the room.
//
// @gen:reg
type CosmeticUpdate struct {
	PlayerNum uint32
	Skin      catalog.Definition
	Badge     Optional[catalog.Definition]
}

func (p CosmeticUpdate) ID() uint8 {
	return 2
}

func (p CosmeticUpdate) Encode(s *wire.Stream, cats *Catalogs) error {
	if err := s.WriteUint32(p.PlayerNum); err != nil {
		return err
	}
	if err := s.WriteFlags(p.Badge.Exists); err != nil {
		return err
	}
	if err := cats.Skins.WriteRef(s, p.Skin); err != nil {
		return err
	}
	if p.Badge.Exists {
		return cats.Badges.WriteRef(s, p.Badge.Item)
	}
	return nil
}

func (p *CosmeticUpdate) Decode(s *wire.Stream, cats *Catalogs) error {
	var err error
	if p.PlayerNum, err = s.ReadUint32(); err != nil {
		return err
	}
	flags, err := s.ReadFlags(1)
	if err != nil {
		return err
	}
	if p.Skin, err = cats.Skins.ReadRef(s); err != nil {
		return err
	}
	if flags[0] {
		badge, err := cats.Badges.ReadRef(s)
		if err != nil {
			return err
		}
		p.Badge = Some(badge)
	}
	return nil
}

// EmotePlay tells the room a player triggered an emote.
//
// @gen:reg
type EmotePlay struct {
	PlayerNum uint32
	Emote     catalog.Definition
}

func (p EmotePlay) ID() uint8 {
	return 3
}

func (p EmotePlay) Encode(s *wire.Stream, cats *Catalogs) error {
	if err := s.WriteUint32(p.PlayerNum); err != nil {
		return err
	}
	return cats.Emotes.WriteRef(s, p.Emote)
}

func (p *EmotePlay) Decode(s *wire.Stream, cats *Catalogs) error {
	var err error
	if p.PlayerNum, err = s.ReadUint32(); err != nil {
		return err
	}
	p.Emote, err = cats.Emotes.ReadRef(s)
	return err
}

// ItemGrant awards the receiving player a quantity of a consumable item.
//
// @gen:reg
type ItemGrant struct {
	Kind  catalog.Definition
	Count uint8
}

func (p ItemGrant) ID() uint8 {
	return 4
}

func (p ItemGrant) Encode(s *wire.Stream, cats *Catalogs) error {
	if err := cats.Items.WriteRef(s, p.Kind); err != nil {
		return err
	}
	return s.WriteUint8(p.Count)
}

func (p *ItemGrant) Decode(s *wire.Stream, cats *Catalogs) error {
	var err error
	if p.Kind, err = cats.Items.ReadRef(s); err != nil {
		return err
	}
	p.Count, err = s.ReadUint8()
	return err
}
