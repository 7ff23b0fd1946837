// File: internal/crossing/crossing.go
// License: Apache-2.0
//
// Package crossing models the boundary a pointer value traverses between
// the two domains: an N-stage chain of word-atomic latches. The owning
// domain publishes into stage 0; each Observe call by the foreign domain
// shifts the chain one stage, so a publication becomes visible after N
// observer ticks. Values are copied whole words, so an observer sees the
// old value or the new one, never torn bits, and successive publications
// are never reordered.

package crossing

import (
	"sync/atomic"

	"github.com/jagan3954/asyncfifo/api"
)

// Ensure compile-time interface compliance.
var _ api.Crossing = (*Chain)(nil)

// Chain is a single-writer single-reader pointer channel with a
// configurable settling delay measured in observer ticks.
type Chain struct {
	stages []atomic.Uint64
}

// New creates a chain with the given number of settling stages.
// Zero stages is a combinational passthrough: a published value is
// visible on the very next Observe.
func New(stages int) *Chain {
	if stages < 0 {
		panic("crossing: stage count must be non-negative")
	}
	return &Chain{stages: make([]atomic.Uint64, stages+1)}
}

// Publish latches v into the chain head. Owning domain only.
func (c *Chain) Publish(v uint64) {
	c.stages[0].Store(v)
}

// Observe shifts the chain by one stage and returns the tail value.
// Foreign domain only, once per tick of that domain.
func (c *Chain) Observe() uint64 {
	for i := len(c.stages) - 1; i > 0; i-- {
		c.stages[i].Store(c.stages[i-1].Load())
	}
	return c.stages[len(c.stages)-1].Load()
}

// Reset zeroes every stage, discarding any in-flight publication.
// Both sides must be quiescent or inside the reset protocol.
func (c *Chain) Reset() {
	for i := range c.stages {
		c.stages[i].Store(0)
	}
}

// Stages returns the settling delay in observer ticks.
func (c *Chain) Stages() int {
	return len(c.stages) - 1
}
