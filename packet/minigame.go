package packet

import (
	"github.com/mquist/gamewire/wire"
)

// Field maximums for the math mini-game strings, in bytes.
const (
	PuzzleMaxLen     = 64
	RewardKindMaxLen = 16
)

// MathChallenge offers a puzzle to a player with a reward attached.
// All fields are unconditional, so no boolean group leads the payload.
//
// @gen:reg
type MathChallenge struct {
	Puzzle      string
	RewardKind  string
	RewardCount uint8
	ProblemID   uint16
}

func (p MathChallenge) ID() uint8 {
	return 5
}

func (p MathChallenge) Encode(s *wire.Stream, cats *Catalogs) error {
	if err := s.WriteString(PuzzleMaxLen, p.Puzzle); err != nil {
		return err
	}
	if err := s.WriteString(RewardKindMaxLen, p.RewardKind); err != nil {
		return err
	}
	if err := s.WriteUint8(p.RewardCount); err != nil {
		return err
	}
	return s.WriteUint16(p.ProblemID)
}

func (p *MathChallenge) Decode(s *wire.Stream, cats *Catalogs) error {
	var err error
	if p.Puzzle, err = s.ReadString(PuzzleMaxLen); err != nil {
		return err
	}
	if p.RewardKind, err = s.ReadString(RewardKindMaxLen); err != nil {
		return err
	}
	if p.RewardCount, err = s.ReadUint8(); err != nil {
		return err
	}
	p.ProblemID, err = s.ReadUint16()
	return err
}

// MathAnswer carries a player's answer. The problem id correlates it
// with the challenge without any session state in the stream.
//
// @gen:reg
type MathAnswer struct {
	Answer    int16
	ProblemID uint16
}

func (p MathAnswer) ID() uint8 {
	return 6
}

func (p MathAnswer) Encode(s *wire.Stream, cats *Catalogs) error {
	if err := s.WriteInt16(p.Answer); err != nil {
		return err
	}
	return s.WriteUint16(p.ProblemID)
}

func (p *MathAnswer) Decode(s *wire.Stream, cats *Catalogs) error {
	var err error
	if p.Answer, err = s.ReadInt16(); err != nil {
		return err
	}
	p.ProblemID, err = s.ReadUint16()
	return err
}

// MathFeedback reports the verdict on an answer. A three-flag group
// declares correctness plus the presence of the two XP fields; an XP
// field left absent decodes as absent, never as zero.
//
// @gen:reg
type MathFeedback struct {
	Correct  bool
	XPEarned Optional[uint16]
	XPTotal  Optional[uint32]
}

func (p MathFeedback) ID() uint8 {
	return 7
}

// feedbackFields lists the optional payload in wire order, consumed by
// both Encode and Decode.
var feedbackFields = []struct {
	present func(*MathFeedback) bool
	write   func(*wire.Stream, *MathFeedback) error
	read    func(*wire.Stream, *MathFeedback) error
}{
	{
		present: func(p *MathFeedback) bool { return p.XPEarned.Exists },
		write: func(s *wire.Stream, p *MathFeedback) error {
			return s.WriteUint16(p.XPEarned.Item)
		},
		read: func(s *wire.Stream, p *MathFeedback) error {
			v, err := s.ReadUint16()
			if err != nil {
				return err
			}
			p.XPEarned = Some(v)
			return nil
		},
	},
	{
		present: func(p *MathFeedback) bool { return p.XPTotal.Exists },
		write: func(s *wire.Stream, p *MathFeedback) error {
			return s.WriteUint32(p.XPTotal.Item)
		},
		read: func(s *wire.Stream, p *MathFeedback) error {
			v, err := s.ReadUint32()
			if err != nil {
				return err
			}
			p.XPTotal = Some(v)
			return nil
		},
	},
}

func (p MathFeedback) Encode(s *wire.Stream, cats *Catalogs) error {
	flags := make([]bool, 0, 1+len(feedbackFields))
	flags = append(flags, p.Correct)
	for _, f := range feedbackFields {
		flags = append(flags, f.present(&p))
	}
	if err := s.WriteFlags(flags...); err != nil {
		return err
	}
	for _, f := range feedbackFields {
		if f.present(&p) {
			if err := f.write(s, &p); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *MathFeedback) Decode(s *wire.Stream, cats *Catalogs) error {
	flags, err := s.ReadFlags(1 + len(feedbackFields))
	if err != nil {
		return err
	}
	p.Correct = flags[0]
	for i, f := range feedbackFields {
		if !flags[1+i] {
			continue
		}
		if err := f.read(s, p); err != nil {
			return err
		}
	}
	return nil
}
