// File: harness/harness.go
// License: Apache-2.0
//
// Package harness drives the bench with rate-skewed randomized stimulus
// and checks every tick against a reference oracle. The two domains run
// on independent virtual-time cadences; whichever has the earlier next
// deadline ticks first, the consumer winning ties. The oracle is an
// ordered queue of committed-but-unread values, external to the system
// under test. Any oracle mismatch or invariant violation stops the run:
// a detected violation is a design defect, not a transient condition,
// so the harness never retries.

package harness

import (
	"log"
	"math/rand"

	"github.com/eapache/queue"
	"github.com/google/uuid"

	"github.com/jagan3954/asyncfifo/api"
	"github.com/jagan3954/asyncfifo/facade"
	"github.com/jagan3954/asyncfifo/internal/fifo"
)

// oracleEntry pairs a committed value with the virtual time of its
// write, so a later mismatch can name both offending ticks.
type oracleEntry struct {
	value uint64
	tick  uint64
}

// Harness owns one verification run over a freshly built bench.
type Harness struct {
	cfg     *facade.Config
	bench   *facade.Bench[uint64]
	rng     *rand.Rand
	oracle  *queue.Queue
	records []Record
	summary Summary
	failure error
}

// New builds a harness and its bench from cfg. The producer's item
// source draws random payloads from the seeded generator, and the same
// generator decides per tick whether a domain drives an operation at
// all (WriteChance/ReadChance), so one seed replays one run exactly.
func New(cfg *facade.Config) (*Harness, error) {
	if cfg == nil {
		cfg = facade.DefaultConfig()
	}
	h := &Harness{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
		oracle: queue.New(),
	}
	bench, err := facade.New[uint64](cfg, func() uint64 { return h.rng.Uint64() })
	if err != nil {
		return nil, err
	}
	h.bench = bench
	h.summary = Summary{RunID: uuid.NewString(), Depth: cfg.Depth, Seed: cfg.Seed}
	return h, nil
}

// Bench exposes the system under test for scenario assertions.
func (h *Harness) Bench() *facade.Bench[uint64] { return h.bench }

// Records returns the operation log accumulated so far.
func (h *Harness) Records() []Record { return h.records }

// Summary returns the current summary; final after Run returns.
func (h *Harness) Summary() Summary { return h.summary }

// Run resets the bench, then issues ticks until both attempt budgets
// are exhausted or a failure stops the run. Returns the summary and the
// fatal error, if any.
func (h *Harness) Run() (Summary, error) {
	if err := h.bench.Reset(); err != nil {
		h.fail(err)
		return h.finish()
	}
	writesLeft := h.cfg.WriteAttempts
	readsLeft := h.cfg.ReadAttempts
	nextWrite := h.cfg.ProducerPeriod
	nextRead := h.cfg.ConsumerPeriod
	for (writesLeft > 0 || readsLeft > 0) && h.failure == nil {
		produce := writesLeft > 0 && (readsLeft == 0 || nextWrite < nextRead)
		if produce {
			h.stepProducer(nextWrite)
			writesLeft--
			nextWrite += h.cfg.ProducerPeriod
		} else {
			h.stepConsumer(nextRead)
			readsLeft--
			nextRead += h.cfg.ConsumerPeriod
		}
	}
	return h.finish()
}

func (h *Harness) stepProducer(now uint64) {
	h.summary.WritesAttempted++
	rec := Record{Time: now, Domain: api.DomainProducer, Op: api.OpWrite}
	// Per-tick stimulus decision: with probability 1-WriteChance the
	// producer stays idle this tick. The tick still consumes budget and
	// is logged as a no-op.
	if h.rng.Float64() >= h.cfg.WriteChance {
		rec.Gated = true
		h.records = append(h.records, rec)
		return
	}
	res := h.bench.TickProducer()
	rec.Gated = res.Gated
	if res.Committed {
		h.summary.WritesCommitted++
		v := res.Value
		rec.Value = &v
		h.oracle.Add(oracleEntry{value: res.Value, tick: now})
	}
	h.records = append(h.records, rec)
	h.checkInvariants(now)
}

func (h *Harness) stepConsumer(now uint64) {
	h.summary.ReadsAttempted++
	rec := Record{Time: now, Domain: api.DomainConsumer, Op: api.OpRead}
	if h.rng.Float64() >= h.cfg.ReadChance {
		rec.Gated = true
		h.records = append(h.records, rec)
		return
	}
	res := h.bench.TickConsumer()
	rec.Gated = res.Gated
	if res.Committed {
		h.summary.ReadsCommitted++
		v := res.Value
		rec.Value = &v
		h.verifyRead(now, res.Value)
	}
	h.records = append(h.records, rec)
	h.checkInvariants(now)
}

// verifyRead pops the oracle head and compares it with the value the
// ring actually returned.
func (h *Harness) verifyRead(now uint64, got uint64) {
	if h.oracle.Length() == 0 {
		h.summary.Mismatches++
		h.fail(api.NewError(api.ErrCodeOracleMismatch,
			"read committed while reference oracle is empty").
			WithContext("read_tick", now).
			WithContext("value", got))
		return
	}
	want := h.oracle.Remove().(oracleEntry)
	if want.value != got {
		h.summary.Mismatches++
		w, r := h.bench.ConsumerView()
		h.fail(api.NewError(api.ErrCodeOracleMismatch,
			"read value does not match reference oracle").
			WithContext("write_tick", want.tick).
			WithContext("read_tick", now).
			WithContext("want", want.value).
			WithContext("got", got).
			WithContext("seen_write_ptr", w).
			WithContext("read_ptr", r))
	}
}

// checkInvariants asserts the occupancy bound from the true pointers
// and from each domain's settled view, and that no single view ever
// claims full and empty at once.
func (h *Harness) checkInvariants(now uint64) {
	if h.failure != nil {
		return
	}
	depth := h.cfg.Depth
	if occ := h.bench.OccupiedCount(); occ > depth {
		h.violation(now, "true occupancy out of range", occ)
		return
	}
	if occ := h.bench.ProducerOccupied(); occ > depth {
		h.violation(now, "producer-view occupancy out of range", occ)
		return
	}
	if occ := h.bench.ConsumerOccupied(); occ > depth {
		h.violation(now, "consumer-view occupancy out of range", occ)
		return
	}
	pw, pr := h.bench.ProducerView()
	if fifo.Full(pw, pr, depth) && fifo.Empty(pw, pr) {
		h.violation(now, "producer view full and empty simultaneously", 0)
		return
	}
	cw, cr := h.bench.ConsumerView()
	if fifo.Full(cw, cr, depth) && fifo.Empty(cw, cr) {
		h.violation(now, "consumer view full and empty simultaneously", 0)
	}
}

func (h *Harness) violation(now uint64, msg string, occ uint64) {
	h.summary.InvariantViolations++
	pw, pr := h.bench.ProducerView()
	cw, cr := h.bench.ConsumerView()
	h.fail(api.NewError(api.ErrCodeInvariantViolation, msg).
		WithContext("tick_time", now).
		WithContext("occupied", occ).
		WithContext("producer_view", []uint64{pw, pr}).
		WithContext("consumer_view", []uint64{cw, cr}))
}

// fail records the first fatal error; further ticks stop.
func (h *Harness) fail(err error) {
	if h.failure == nil {
		h.failure = err
		log.Printf("[harness] run %s aborted: %v", h.summary.RunID, err)
	}
}

// finish seals the summary, publishes it as metrics, and logs the verdict.
func (h *Harness) finish() (Summary, error) {
	h.summary.FinalOccupied = h.bench.OccupiedCount()
	h.summary.Pass = h.failure == nil &&
		h.summary.Mismatches == 0 && h.summary.InvariantViolations == 0
	if h.cfg.EnableMetrics {
		ctrl := h.bench.Control()
		ctrl.SetMetric("writes_attempted", h.summary.WritesAttempted)
		ctrl.SetMetric("writes_committed", h.summary.WritesCommitted)
		ctrl.SetMetric("reads_attempted", h.summary.ReadsAttempted)
		ctrl.SetMetric("reads_committed", h.summary.ReadsCommitted)
		ctrl.SetMetric("mismatches", h.summary.Mismatches)
		ctrl.SetMetric("invariant_violations", h.summary.InvariantViolations)
		ctrl.SetMetric("pass", h.summary.Pass)
	}
	verdict := "PASS"
	if !h.summary.Pass {
		verdict = "FAIL"
	}
	log.Printf("[harness] run %s: %s (writes %d/%d, reads %d/%d, occupied %d)",
		h.summary.RunID, verdict,
		h.summary.WritesCommitted, h.summary.WritesAttempted,
		h.summary.ReadsCommitted, h.summary.ReadsAttempted,
		h.summary.FinalOccupied)
	return h.summary, h.failure
}
