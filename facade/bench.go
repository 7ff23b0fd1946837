// File: facade/bench.go
// Unified facade layer for the asyncfifo module.
// License: Apache-2.0
//
// This file defines the Bench struct, which aggregates the core
// components behind a single facade: the ring core, the two pointer
// crossings, the producer and consumer domains, the shared reset line,
// and the control interface. The facade exposes the external surface a
// host driver needs: reset, single-step ticks per domain, the
// domain-local full/empty flags, and the diagnostic occupancy count.

package facade

import (
	"github.com/jagan3954/asyncfifo/adapters"
	"github.com/jagan3954/asyncfifo/api"
	"github.com/jagan3954/asyncfifo/control"
	"github.com/jagan3954/asyncfifo/internal/crossing"
	"github.com/jagan3954/asyncfifo/internal/domain"
	"github.com/jagan3954/asyncfifo/internal/fifo"
)

// Config holds parameters immutable per run.
type Config struct {
	Depth          uint64  // Slot capacity, must be a power of two
	SyncStages     int     // Settling delay of each pointer crossing, in observer ticks
	ProducerPeriod uint64  // Producer cadence in virtual time units
	ConsumerPeriod uint64  // Consumer cadence in virtual time units
	ResetHold      int     // Ticks per domain spent inside an asserted reset
	WriteAttempts  int     // Harness budget of producer ticks
	ReadAttempts   int     // Harness budget of consumer ticks
	WriteChance    float64 // Probability in [0,1] that a producer tick drives a write
	ReadChance     float64 // Probability in [0,1] that a consumer tick drives a read
	Seed           int64   // Seed for the harness stimulus generator
	EnableMetrics  bool    // Whether to publish metrics via Control
	EnableDebug    bool    // Whether to register live debug probes
}

// DefaultConfig returns default configuration values. Periods are
// deliberately coprime so the two domains never fall into lockstep;
// chances of 1 drive an operation on every scheduled tick.
func DefaultConfig() *Config {
	return &Config{
		Depth:          8,
		SyncStages:     2,
		ProducerPeriod: 7,
		ConsumerPeriod: 11,
		ResetHold:      4,
		WriteAttempts:  1000,
		ReadAttempts:   1000,
		WriteChance:    1,
		ReadChance:     1,
		Seed:           1,
		EnableMetrics:  true,
		EnableDebug:    true,
	}
}

func (c *Config) validate() error {
	if c.Depth == 0 || c.Depth&(c.Depth-1) != 0 {
		return api.NewError(api.ErrCodeInvalidArgument, "depth must be a power of two").
			WithContext("depth", c.Depth)
	}
	if c.SyncStages < 0 {
		return api.NewError(api.ErrCodeInvalidArgument, "sync stages must be non-negative")
	}
	if c.ProducerPeriod == 0 || c.ConsumerPeriod == 0 {
		return api.NewError(api.ErrCodeInvalidArgument, "tick periods must be positive")
	}
	if c.ResetHold < 1 {
		return api.NewError(api.ErrCodeInvalidArgument, "reset hold must allow at least one tick per domain")
	}
	if c.WriteChance < 0 || c.WriteChance > 1 || c.ReadChance < 0 || c.ReadChance > 1 {
		return api.NewError(api.ErrCodeInvalidArgument, "attempt chances must be within [0,1]").
			WithContext("write_chance", c.WriteChance).
			WithContext("read_chance", c.ReadChance)
	}
	return nil
}

// Bench is the assembled system under test.
type Bench[T any] struct {
	ring     *fifo.Ring[T]
	wrXing   *crossing.Chain
	rdXing   *crossing.Chain
	line     *domain.ResetLine
	producer *domain.Producer[T]
	consumer *domain.Consumer[T]
	control  api.Control
	cfg      *Config
}

// New constructs a Bench with the given configuration and item source.
// source supplies the next item for each committing push.
func New[T any](cfg *Config, source func() T) (*Bench[T], error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	b := &Bench[T]{cfg: cfg}
	b.ring = fifo.New[T](cfg.Depth)
	b.wrXing = crossing.New(cfg.SyncStages)
	b.rdXing = crossing.New(cfg.SyncStages)
	b.line = domain.NewResetLine()
	b.producer = domain.NewProducer(b.ring, b.wrXing, b.rdXing, b.line, source)
	b.consumer = domain.NewConsumer(b.ring, b.rdXing, b.wrXing, b.line)

	b.control = adapters.NewControlAdapter()
	_ = b.control.SetConfig(map[string]any{
		control.KeyDepth:          cfg.Depth,
		control.KeySyncStages:     cfg.SyncStages,
		control.KeyProducerPeriod: cfg.ProducerPeriod,
		control.KeyConsumerPeriod: cfg.ConsumerPeriod,
		control.KeyResetHold:      cfg.ResetHold,
		control.KeyWriteChance:    cfg.WriteChance,
		control.KeyReadChance:     cfg.ReadChance,
		control.KeySeed:           cfg.Seed,
	})
	if cfg.EnableDebug {
		b.control.RegisterDebugProbe("fifo.write_ptr", func() any { return b.ring.WritePtr() })
		b.control.RegisterDebugProbe("fifo.read_ptr", func() any { return b.ring.ReadPtr() })
		b.control.RegisterDebugProbe("fifo.occupied", func() any { return b.ring.Len() })
		b.control.RegisterDebugProbe("producer.commits", func() any { return b.producer.Commits() })
		b.control.RegisterDebugProbe("producer.gated", func() any { return b.producer.Gated() })
		b.control.RegisterDebugProbe("consumer.commits", func() any { return b.consumer.Commits() })
		b.control.RegisterDebugProbe("consumer.gated", func() any { return b.consumer.Gated() })
	}
	return b, nil
}

// Reset runs the two-sided reset protocol: assert the line, hold it for
// ResetHold ticks of each domain so both zero their pointers and flush
// their crossings, then release. The returned error is a reset protocol
// violation and fatal to a verification run.
func (b *Bench[T]) Reset() error {
	b.line.Assert()
	for i := 0; i < b.cfg.ResetHold; i++ {
		b.producer.Tick()
		b.consumer.Tick()
	}
	return b.line.Release()
}

// TickProducer advances the producer domain by exactly one step.
func (b *Bench[T]) TickProducer() api.TickResult[T] {
	res := b.producer.Tick()
	b.noteTick(api.DomainProducer, res)
	return res
}

// TickConsumer advances the consumer domain by exactly one step.
func (b *Bench[T]) TickConsumer() api.TickResult[T] {
	res := b.consumer.Tick()
	b.noteTick(api.DomainConsumer, res)
	return res
}

// noteTick bumps the live per-domain counters behind Control.
func (b *Bench[T]) noteTick(d api.DomainID, res api.TickResult[T]) {
	if !b.cfg.EnableMetrics {
		return
	}
	switch {
	case res.Committed:
		b.control.IncMetric(string(d)+".commits", 1)
	case res.Gated:
		b.control.IncMetric(string(d)+".gated", 1)
	}
}

// IsFull reports the full flag from the producer's domain-local view.
func (b *Bench[T]) IsFull() bool {
	return b.producer.Full()
}

// IsEmpty reports the empty flag from the consumer's domain-local view.
func (b *Bench[T]) IsEmpty() bool {
	return b.consumer.Empty()
}

// OccupiedCount returns occupancy from the true pointer pair.
// Diagnostic and test use only; the domains themselves never gate on it.
func (b *Bench[T]) OccupiedCount() uint64 {
	return b.ring.Len()
}

// ProducerOccupied returns occupancy as the producer's view implies.
func (b *Bench[T]) ProducerOccupied() uint64 {
	return b.producer.Occupied()
}

// ConsumerOccupied returns occupancy as the consumer's view implies.
func (b *Bench[T]) ConsumerOccupied() uint64 {
	return b.consumer.Occupied()
}

// ProducerView returns the producer's pointer pair: its true write
// pointer and its visible copy of the read pointer.
func (b *Bench[T]) ProducerView() (write, seenRead uint64) {
	return b.ring.WritePtr(), b.producer.SeenRead()
}

// ConsumerView returns the consumer's pointer pair: its visible copy of
// the write pointer and its true read pointer.
func (b *Bench[T]) ConsumerView() (seenWrite, read uint64) {
	return b.consumer.SeenWrite(), b.ring.ReadPtr()
}

// Stats returns cumulative per-domain counters.
func (b *Bench[T]) Stats() (producerCommits, producerGated, consumerCommits, consumerGated uint64) {
	return b.producer.Commits(), b.producer.Gated(), b.consumer.Commits(), b.consumer.Gated()
}

// Control returns the control interface for config and metrics access.
func (b *Bench[T]) Control() api.Control {
	return b.control
}

// Config returns the immutable run configuration.
func (b *Bench[T]) Config() *Config {
	return b.cfg
}
