// File: internal/domain/domain_test.go
// License: Apache-2.0

package domain

import (
	"testing"

	"github.com/jagan3954/asyncfifo/api"
	"github.com/jagan3954/asyncfifo/fake"
	"github.com/jagan3954/asyncfifo/internal/crossing"
	"github.com/jagan3954/asyncfifo/internal/fifo"
)

func newPair(depth uint64, stages int, source func() uint64) (*Producer[uint64], *Consumer[uint64], *ResetLine, *fifo.Ring[uint64]) {
	ring := fifo.New[uint64](depth)
	wrXing := crossing.New(stages)
	rdXing := crossing.New(stages)
	line := NewResetLine()
	p := NewProducer(ring, wrXing, rdXing, line, source)
	c := NewConsumer(ring, rdXing, wrXing, line)
	return p, c, line, ring
}

func counter() func() uint64 {
	n := uint64(0)
	return func() uint64 {
		n++
		return n
	}
}

func TestProducerConsumer_Passthrough(t *testing.T) {
	p, c, _, _ := newPair(4, 0, counter())
	for i := uint64(1); i <= 20; i++ {
		pr := p.Tick()
		if !pr.Committed || pr.Value != i {
			t.Fatalf("push %d: %+v", i, pr)
		}
		cr := c.Tick()
		if !cr.Committed || cr.Value != i {
			t.Fatalf("pop %d: %+v", i, cr)
		}
	}
	if p.Commits() != 20 || c.Commits() != 20 || p.Gated() != 0 || c.Gated() != 0 {
		t.Fatalf("counters: p=%d/%d c=%d/%d", p.Commits(), p.Gated(), c.Commits(), c.Gated())
	}
}

func TestProducer_GatesAtDepth(t *testing.T) {
	p, _, _, ring := newPair(4, 0, counter())
	for i := 0; i < 4; i++ {
		if r := p.Tick(); !r.Committed {
			t.Fatalf("push %d should commit: %+v", i, r)
		}
	}
	if !p.Full() {
		t.Fatal("producer view should be full")
	}
	r := p.Tick()
	if !r.Gated || r.Committed {
		t.Fatalf("expected gated no-op, got %+v", r)
	}
	if ring.WritePtr() != 4 {
		t.Fatalf("gated push moved write pointer to %d", ring.WritePtr())
	}
}

func TestConsumer_GatesWhenEmpty(t *testing.T) {
	_, c, _, ring := newPair(4, 0, counter())
	r := c.Tick()
	if !r.Gated {
		t.Fatalf("expected gated pop on empty ring, got %+v", r)
	}
	if ring.ReadPtr() != 0 {
		t.Fatal("gated pop moved read pointer")
	}
}

// Boundary tick: with the write-pointer publication held in flight, the
// consumer must gate even though the true pointers would admit the pop.
// Staleness is pessimistic only.
func TestConsumer_StalePublicationGates(t *testing.T) {
	ring := fifo.New[uint64](4)
	wrXing := fake.NewCrossing()
	rdXing := fake.NewCrossing()
	line := NewResetLine()
	p := NewProducer[uint64](ring, wrXing, rdXing, line, counter())
	c := NewConsumer[uint64](ring, rdXing, wrXing, line)

	rdXing.Settle()
	if r := p.Tick(); !r.Committed {
		t.Fatalf("push: %+v", r)
	}
	// Publication not settled: consumer still sees write pointer 0.
	if r := c.Tick(); !r.Gated {
		t.Fatalf("expected gated pop while publication in flight, got %+v", r)
	}
	wrXing.Settle()
	r := c.Tick()
	if !r.Committed || r.Value != 1 {
		t.Fatalf("pop after settle: %+v", r)
	}
}

// The mirror case: the producer holds a stale read pointer and gates a
// push the true pointers would allow.
func TestProducer_StalePublicationGates(t *testing.T) {
	ring := fifo.New[uint64](2)
	wrXing := fake.NewCrossing()
	rdXing := fake.NewCrossing()
	line := NewResetLine()
	p := NewProducer[uint64](ring, wrXing, rdXing, line, counter())
	c := NewConsumer[uint64](ring, rdXing, wrXing, line)

	rdXing.Settle()
	p.Tick()
	p.Tick()
	wrXing.Settle()
	if r := c.Tick(); !r.Committed {
		t.Fatalf("pop: %+v", r)
	}
	// Read-pointer publication still in flight: producer sees full.
	if r := p.Tick(); !r.Gated {
		t.Fatalf("expected gated push against stale read pointer, got %+v", r)
	}
	rdXing.Settle()
	if r := p.Tick(); !r.Committed {
		t.Fatalf("push after settle: %+v", r)
	}
}

func TestResetProtocol(t *testing.T) {
	p, c, line, ring := newPair(8, 2, counter())
	for i := 0; i < 5; i++ {
		p.Tick()
	}
	c.Tick()
	c.Tick()

	line.Assert()
	// Only the producer has acknowledged: releasing now is a violation.
	p.Tick()
	err := line.Release()
	if err == nil {
		t.Fatal("expected reset protocol violation")
	}
	if api.CodeOf(err) != api.ErrCodeResetProtocol {
		t.Fatalf("wrong code: %v", err)
	}
	if !line.Asserted() {
		t.Fatal("failed release must leave reset asserted")
	}

	c.Tick()
	if err := line.Release(); err != nil {
		t.Fatalf("release after both acks: %v", err)
	}
	if ring.WritePtr() != 0 || ring.ReadPtr() != 0 {
		t.Fatal("pointers not zeroed by reset")
	}
	if p.Occupied() != 0 || c.Occupied() != 0 {
		t.Fatal("domain views not zeroed by reset")
	}

	// Ring must be fully usable again, including in-flight copies.
	if r := c.Tick(); !r.Gated {
		t.Fatalf("expected empty after reset, got %+v", r)
	}
	if r := p.Tick(); !r.Committed {
		t.Fatalf("push after reset: %+v", r)
	}
}

func TestDomainViews_NeverBothFullAndEmpty(t *testing.T) {
	p, c, _, _ := newPair(2, 1, counter())
	for i := 0; i < 200; i++ {
		if i%3 != 2 {
			p.Tick()
		} else {
			c.Tick()
		}
		if p.Full() && fifo.Empty(p.ring.WritePtr(), p.SeenRead()) {
			t.Fatal("producer view full and empty simultaneously")
		}
		if c.Empty() && fifo.Full(c.SeenWrite(), c.ring.ReadPtr(), 2) {
			t.Fatal("consumer view empty and full simultaneously")
		}
		if p.Occupied() > 2 || c.Occupied() > 2 {
			t.Fatalf("view occupancy out of range: p=%d c=%d", p.Occupied(), c.Occupied())
		}
	}
}
