// File: fake/crossing.go
// License: Apache-2.0
//
// Package fake provides fake implementations for testing and development.
// Provides predictable, controllable behavior for the core interfaces.

package fake

import (
	"sync"

	"github.com/jagan3954/asyncfifo/api"
)

// Ensure compile-time interface compliance.
var _ api.Crossing = (*Crossing)(nil)

// Crossing is a fake api.Crossing whose settling is driven manually:
// a published value stays invisible until Settle is called. Lets tests
// hold a pointer publication in flight across an exact tick boundary.
type Crossing struct {
	mu        sync.Mutex
	published uint64
	visible   uint64
}

// NewCrossing returns a fake crossing with nothing in flight.
func NewCrossing() *Crossing {
	return &Crossing{}
}

// Publish latches v as the in-flight value.
func (c *Crossing) Publish(v uint64) {
	c.mu.Lock()
	c.published = v
	c.mu.Unlock()
}

// Observe returns the last settled value; it never advances settling.
func (c *Crossing) Observe() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visible
}

// Settle completes propagation of the in-flight value.
func (c *Crossing) Settle() {
	c.mu.Lock()
	c.visible = c.published
	c.mu.Unlock()
}

// Reset drops both the in-flight and the visible value.
func (c *Crossing) Reset() {
	c.mu.Lock()
	c.published = 0
	c.visible = 0
	c.mu.Unlock()
}
