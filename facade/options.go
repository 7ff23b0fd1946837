// File: facade/options.go
// Package facade defines functional options for the Bench configuration.
// License: Apache-2.0

package facade

// Option customizes bench configuration.
type Option func(*Config)

// NewConfig builds a Config from defaults plus options.
func NewConfig(opts ...Option) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithDepth sets the slot capacity.
func WithDepth(depth uint64) Option {
	return func(c *Config) { c.Depth = depth }
}

// WithSyncStages sets the settling delay of both pointer crossings.
func WithSyncStages(stages int) Option {
	return func(c *Config) { c.SyncStages = stages }
}

// WithPeriods sets the producer and consumer tick periods.
func WithPeriods(producer, consumer uint64) Option {
	return func(c *Config) {
		c.ProducerPeriod = producer
		c.ConsumerPeriod = consumer
	}
}

// WithResetHold sets how many ticks each domain spends inside reset.
func WithResetHold(ticks int) Option {
	return func(c *Config) { c.ResetHold = ticks }
}

// WithAttempts sets the harness write and read tick budgets.
func WithAttempts(writes, reads int) Option {
	return func(c *Config) {
		c.WriteAttempts = writes
		c.ReadAttempts = reads
	}
}

// WithChances sets the per-tick probabilities that the producer drives
// a write and the consumer drives a read. 1 attempts on every tick.
func WithChances(write, read float64) Option {
	return func(c *Config) {
		c.WriteChance = write
		c.ReadChance = read
	}
}

// WithSeed sets the stimulus generator seed.
func WithSeed(seed int64) Option {
	return func(c *Config) { c.Seed = seed }
}

// WithMetrics toggles summary metric publication.
func WithMetrics(enabled bool) Option {
	return func(c *Config) { c.EnableMetrics = enabled }
}

// WithDebug toggles live debug probes.
func WithDebug(enabled bool) Option {
	return func(c *Config) { c.EnableDebug = enabled }
}
