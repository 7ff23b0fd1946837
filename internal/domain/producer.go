// File: internal/domain/producer.go
// License: Apache-2.0

package domain

import (
	"github.com/jagan3954/asyncfifo/api"
	"github.com/jagan3954/asyncfifo/internal/fifo"
)

// Producer is the write-side control loop. It owns the ring's write
// pointer and holds a visible copy of the consumer's read pointer,
// refreshed once per tick from the inbound crossing. The copy may lag
// the true value; that only ever gates a push, never admits one.
type Producer[T any] struct {
	ring   *fifo.Ring[T]
	out    api.Crossing // publishes the write pointer
	in     api.Crossing // observes the consumer's read pointer
	reset  *ResetLine
	source func() T

	seenRead uint64
	ticks    uint64
	commits  uint64
	gated    uint64
}

// NewProducer wires the write side. source supplies the next item to
// push and is invoked only when a push will commit.
func NewProducer[T any](ring *fifo.Ring[T], out, in api.Crossing, reset *ResetLine, source func() T) *Producer[T] {
	return &Producer[T]{ring: ring, out: out, in: in, reset: reset, source: source}
}

// Tick advances the producer by one step of its own cadence.
// While reset is asserted the tick is consumed by the reset protocol:
// zero the write pointer, flush the outbound crossing (dropping any
// in-flight publication), acknowledge, and do nothing else.
func (p *Producer[T]) Tick() api.TickResult[T] {
	p.ticks++
	if p.reset.Asserted() {
		p.ring.ResetWrite()
		p.seenRead = 0
		p.out.Reset()
		p.reset.ackProducer()
		return api.TickResult[T]{}
	}
	p.seenRead = p.in.Observe()
	if fifo.Full(p.ring.WritePtr(), p.seenRead, p.ring.Depth()) {
		p.gated++
		return api.TickResult[T]{Gated: true}
	}
	item := p.source()
	if err := p.ring.Push(item, p.seenRead); err != nil {
		p.gated++
		return api.TickResult[T]{Gated: true}
	}
	p.out.Publish(p.ring.WritePtr())
	p.commits++
	return api.TickResult[T]{Committed: true, Value: item}
}

// Full reports the full flag from this domain's view: true write
// pointer against the last observed read pointer.
func (p *Producer[T]) Full() bool {
	return fifo.Full(p.ring.WritePtr(), p.seenRead, p.ring.Depth())
}

// Occupied returns the occupancy this domain's view implies. Staleness
// of the read copy can only overestimate, never past the depth.
func (p *Producer[T]) Occupied() uint64 {
	return fifo.Occupied(p.ring.WritePtr(), p.seenRead, p.ring.Depth())
}

// SeenRead returns the visible copy of the consumer's read pointer.
func (p *Producer[T]) SeenRead() uint64 { return p.seenRead }

// Ticks returns the number of ticks taken.
func (p *Producer[T]) Ticks() uint64 { return p.ticks }

// Commits returns the number of committed pushes.
func (p *Producer[T]) Commits() uint64 { return p.commits }

// Gated returns the number of gated push attempts.
func (p *Producer[T]) Gated() uint64 { return p.gated }
