package packet

// Optional[T] models a packet field that is present or absent. Presence
// travels in the boolean group at the head of the packet, never as an
// inline sentinel, so an absent field consumes no payload bytes.
type Optional[T any] struct {
	Exists bool
	Item   T
}

// Some wraps a present value.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Exists: true, Item: v}
}
