package gamewire

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mquist/gamewire/catalog"
	"github.com/mquist/gamewire/packet"
)

// A Session stores the identity and cosmetic state of one connected
// player, established from their JoinRequest. The auth token is handed
// to the authenticator during establishment and not retained here.
type Session struct {
	// ID is the server-assigned session identity.
	ID uuid.UUID

	// Name is the sanitized display name.
	Name string

	// Mobile reports the client device type from the join flags.
	Mobile bool

	// ExternalID is the client-supplied identifier for the gradebook
	// integration, when present.
	ExternalID packet.Optional[string]

	Badge  packet.Optional[catalog.Definition]
	Emotes [packet.EmoteSlots]packet.Optional[catalog.Definition]
}

// NewSession builds a Session from a decoded JoinRequest, assigning a
// fresh session id. The request's Name has already been sanitized by
// the packet decoder.
func NewSession(join *packet.JoinRequest) *Session {
	return &Session{
		ID:         uuid.New(),
		Name:       join.Name,
		Mobile:     join.Mobile,
		ExternalID: join.ExternalID,
		Badge:      join.Badge,
		Emotes:     join.Emotes,
	}
}

// ErrNoHandler indicates a decoded packet with no registered handler.
var ErrNoHandler = errors.New("no handler for packet")

// Handler processes one decoded packet for a session.
type Handler func(sess *Session, p packet.Packet) error

// Mux routes decoded packets to application handlers by discriminant.
// Populate it at startup; it is read-only afterwards.
type Mux map[uint8]Handler

// Dispatch hands the packet to its handler.
func (m Mux) Dispatch(sess *Session, p packet.Packet) error {
	h, ok := m[p.ID()]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNoHandler, p.ID())
	}
	return h(sess, p)
}
