// File: internal/fifo/ring.go
// License: Apache-2.0
//
// Ring is a bounded circular buffer with atomic wrap-bit pointers,
// padded to prevent false sharing. The write pointer is mutated only by
// the producer side, the read pointer only by the consumer side; each
// side reads the foreign pointer exclusively through a crossing channel
// and passes the observed value into Push/Pop.

package fifo

import (
	"sync/atomic"

	"github.com/jagan3954/asyncfifo/api"
)

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*Ring[any])(nil)

// Ring is the dual-domain FIFO core (single producer, single consumer).
type Ring[T any] struct {
	slots []T
	depth uint64
	mask  uint64 // depth-1, slot index mask
	span  uint64 // 2*depth, pointer modulus
	wr    atomic.Uint64
	_     [64]byte // Padding for hot/cold separation
	rd    atomic.Uint64
	_     [64]byte // Padding to separate rd from other data
}

// New allocates a ring of power-of-two depth. Slot contents are
// undefined until first written.
func New[T any](depth uint64) *Ring[T] {
	if depth == 0 || depth&(depth-1) != 0 {
		panic("fifo: depth must be power of two")
	}
	return &Ring[T]{
		slots: make([]T, depth),
		depth: depth,
		mask:  depth - 1,
		span:  depth * 2,
	}
}

// Empty reports whether the pointer pair describes an empty buffer:
// both index bits and wrap bit equal.
func Empty(w, r uint64) bool {
	return w == r
}

// Full reports whether the pointer pair describes a full buffer: index
// bits equal, wrap bit differs. With power-of-two depth that is exactly
// w XOR r == depth.
func Full(w, r, depth uint64) bool {
	return w^r == depth
}

// Occupied returns (w-r) mod 2*depth, the slot count the pair implies.
// Under correct gating the result never exceeds depth.
func Occupied(w, r, depth uint64) uint64 {
	return (w - r) & (2*depth - 1)
}

// Push stores item at the write pointer and advances it mod 2*depth.
// Returns api.ErrFull without touching slots or pointers when the
// caller's view of the read pointer says full.
func (r *Ring[T]) Push(item T, seenRead uint64) error {
	wr := r.wr.Load()
	if Full(wr, seenRead, r.depth) {
		return api.ErrFull
	}
	r.slots[wr&r.mask] = item
	r.wr.Store((wr + 1) & (r.span - 1))
	return nil
}

// Pop returns the item at the read pointer and advances it mod 2*depth.
// Returns api.ErrEmpty without touching anything when the caller's view
// of the write pointer says empty.
func (r *Ring[T]) Pop(seenWrite uint64) (T, error) {
	rd := r.rd.Load()
	if Empty(seenWrite, rd) {
		var zero T
		return zero, api.ErrEmpty
	}
	item := r.slots[rd&r.mask]
	r.rd.Store((rd + 1) & (r.span - 1))
	return item, nil
}

// WritePtr returns the true write pointer.
func (r *Ring[T]) WritePtr() uint64 { return r.wr.Load() }

// ReadPtr returns the true read pointer.
func (r *Ring[T]) ReadPtr() uint64 { return r.rd.Load() }

// Depth returns the fixed slot capacity.
func (r *Ring[T]) Depth() uint64 { return r.depth }

// Len returns the occupancy implied by the true pointers. Diagnostic
// only; neither domain may gate on it.
func (r *Ring[T]) Len() uint64 {
	return Occupied(r.wr.Load(), r.rd.Load(), r.depth)
}

// ResetWrite zeroes the write pointer. Called by the producer side
// while reset is asserted.
func (r *Ring[T]) ResetWrite() { r.wr.Store(0) }

// ResetRead zeroes the read pointer. Called by the consumer side while
// reset is asserted.
func (r *Ring[T]) ResetRead() { r.rd.Store(0) }

// Reset zeroes both pointers. Single-threaded convenience; under two
// live domains each side must zero its own pointer instead.
func (r *Ring[T]) Reset() {
	r.ResetWrite()
	r.ResetRead()
}
