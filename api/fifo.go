// File: api/fifo.go
// License: Apache-2.0
//
// Core contracts for the dual-domain FIFO: ring storage, pointer
// crossing channels, and per-tick operation results.

package api

// DomainID identifies one of the two independently paced sides.
type DomainID string

const (
	DomainProducer DomainID = "producer"
	DomainConsumer DomainID = "consumer"
)

// OpKind is the operation a domain attempts on its tick.
type OpKind string

const (
	OpWrite OpKind = "write"
	OpRead  OpKind = "read"
)

// Ring is the fixed-capacity storage contract. Push and Pop take the
// caller's view of the foreign pointer; a stale view may gate an
// operation but never admits one the true pointers would forbid.
type Ring[T any] interface {
	// Push stores item at the write pointer; ErrFull if the view says full.
	Push(item T, seenRead uint64) error
	// Pop returns the item at the read pointer; ErrEmpty if the view says empty.
	Pop(seenWrite uint64) (T, error)
	// WritePtr returns the true write pointer, range [0, 2*Depth).
	WritePtr() uint64
	// ReadPtr returns the true read pointer, range [0, 2*Depth).
	ReadPtr() uint64
	// Depth returns the slot capacity.
	Depth() uint64
}

// Crossing is a single-writer single-reader pointer channel between the
// two domains. Observe is clocked by the foreign domain: each call
// advances the settling chain by one stage. An observer may see the
// previous value while a publication settles, never a torn one, and
// successive publications are never reordered.
type Crossing interface {
	Publish(v uint64)
	Observe() uint64
	Reset()
}

// TickResult reports what one domain tick did.
// Committed and Gated are mutually exclusive; both false means the tick
// was consumed by the reset protocol.
type TickResult[T any] struct {
	Committed bool
	Gated     bool
	Value     T
}
