// File: internal/domain/consumer.go
// License: Apache-2.0

package domain

import (
	"github.com/jagan3954/asyncfifo/api"
	"github.com/jagan3954/asyncfifo/internal/fifo"
)

// Consumer is the read-side control loop, symmetric to Producer: it
// owns the read pointer and a visible, possibly lagging copy of the
// write pointer. A stale copy can only make the ring look emptier than
// it is, so a pop is never admitted against unwritten slots.
type Consumer[T any] struct {
	ring  *fifo.Ring[T]
	out   api.Crossing // publishes the read pointer
	in    api.Crossing // observes the producer's write pointer
	reset *ResetLine

	seenWrite uint64
	ticks     uint64
	commits   uint64
	gated     uint64
}

// NewConsumer wires the read side.
func NewConsumer[T any](ring *fifo.Ring[T], out, in api.Crossing, reset *ResetLine) *Consumer[T] {
	return &Consumer[T]{ring: ring, out: out, in: in, reset: reset}
}

// Tick advances the consumer by one step of its own cadence. Reset
// handling mirrors the producer side.
func (c *Consumer[T]) Tick() api.TickResult[T] {
	c.ticks++
	if c.reset.Asserted() {
		c.ring.ResetRead()
		c.seenWrite = 0
		c.out.Reset()
		c.reset.ackConsumer()
		return api.TickResult[T]{}
	}
	c.seenWrite = c.in.Observe()
	if fifo.Empty(c.seenWrite, c.ring.ReadPtr()) {
		c.gated++
		return api.TickResult[T]{Gated: true}
	}
	item, err := c.ring.Pop(c.seenWrite)
	if err != nil {
		c.gated++
		return api.TickResult[T]{Gated: true}
	}
	c.out.Publish(c.ring.ReadPtr())
	c.commits++
	return api.TickResult[T]{Committed: true, Value: item}
}

// Empty reports the empty flag from this domain's view: last observed
// write pointer against the true read pointer.
func (c *Consumer[T]) Empty() bool {
	return fifo.Empty(c.seenWrite, c.ring.ReadPtr())
}

// Occupied returns the occupancy this domain's view implies. Staleness
// of the write copy can only underestimate.
func (c *Consumer[T]) Occupied() uint64 {
	return fifo.Occupied(c.seenWrite, c.ring.ReadPtr(), c.ring.Depth())
}

// SeenWrite returns the visible copy of the producer's write pointer.
func (c *Consumer[T]) SeenWrite() uint64 { return c.seenWrite }

// Ticks returns the number of ticks taken.
func (c *Consumer[T]) Ticks() uint64 { return c.ticks }

// Commits returns the number of committed pops.
func (c *Consumer[T]) Commits() uint64 { return c.commits }

// Gated returns the number of gated pop attempts.
func (c *Consumer[T]) Gated() uint64 { return c.gated }
