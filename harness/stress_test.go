// File: harness/stress_test.go
// License: Apache-2.0

package harness

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/jagan3954/asyncfifo/facade"
)

// Randomized stress: 10,000 operations per seed with random relative
// cadence and sub-unity attempt chances, so the gating pattern itself
// is part of the stimulus. Every seed must pass with zero mismatches.
func TestStress_Randomized(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		rnd := rand.New(rand.NewSource(seed))
		cfg := facade.NewConfig(
			facade.WithDepth(8),
			facade.WithSyncStages(rnd.Intn(3)),
			facade.WithPeriods(uint64(1+rnd.Intn(16)), uint64(1+rnd.Intn(16))),
			facade.WithAttempts(5000, 5000),
			facade.WithChances(0.5+rnd.Float64()/2, 0.5+rnd.Float64()/2),
			facade.WithSeed(seed),
			facade.WithDebug(false),
		)
		h, err := New(cfg)
		if err != nil {
			t.Fatal(err)
		}
		sum, err := h.Run()
		if err != nil {
			t.Fatalf("seed %d: run failed: %v", seed, err)
		}
		if !sum.Pass || sum.Mismatches != 0 || sum.InvariantViolations != 0 {
			t.Fatalf("seed %d: %+v", seed, sum)
		}
		if sum.WritesAttempted+sum.ReadsAttempted != 10000 {
			t.Fatalf("seed %d: attempted %d ops", seed, sum.WritesAttempted+sum.ReadsAttempted)
		}
		if sum.FinalOccupied != uint64(sum.WritesCommitted-sum.ReadsCommitted) {
			t.Fatalf("seed %d: occupancy %d vs commit delta %d",
				seed, sum.FinalOccupied, sum.WritesCommitted-sum.ReadsCommitted)
		}
	}
}

// With attempt chances below 1 the stimulus itself must depend on the
// seed: different seeds have to produce different gating patterns, and
// the same seed must reproduce its pattern exactly.
func TestStress_SeedsVaryGatingPattern(t *testing.T) {
	pattern := func(seed int64) string {
		cfg := facade.NewConfig(
			facade.WithDepth(4),
			facade.WithPeriods(3, 5),
			facade.WithAttempts(100, 100),
			facade.WithChances(0.7, 0.7),
			facade.WithSeed(seed),
			facade.WithDebug(false),
		)
		h, err := New(cfg)
		if err != nil {
			t.Fatal(err)
		}
		sum, err := h.Run()
		if err != nil || !sum.Pass {
			t.Fatalf("seed %d: %+v err=%v", seed, sum, err)
		}
		if sum.WritesAttempted != 100 || sum.ReadsAttempted != 100 {
			t.Fatalf("seed %d: idle ticks must still consume budget: %+v", seed, sum)
		}
		if sum.WritesCommitted >= 100 {
			t.Fatalf("seed %d: chance 0.7 yet every write tick committed", seed)
		}
		var b strings.Builder
		for _, rec := range h.Records() {
			if rec.Gated {
				b.WriteByte('g')
			} else {
				b.WriteByte('c')
			}
		}
		return b.String()
	}

	patterns := make(map[string]struct{})
	first := pattern(1)
	for seed := int64(1); seed <= 6; seed++ {
		patterns[pattern(seed)] = struct{}{}
	}
	if len(patterns) < 2 {
		t.Fatalf("gating pattern identical across 6 seeds")
	}
	if again := pattern(1); again != first {
		t.Fatal("same seed produced a different gating pattern")
	}
}

// Small depths across skews: depth 1 and 2 are where off-by-one
// full/empty bugs live.
func TestStress_SmallDepths(t *testing.T) {
	for _, depth := range []uint64{1, 2} {
		for _, stages := range []int{0, 2} {
			cfg := facade.NewConfig(
				facade.WithDepth(depth),
				facade.WithSyncStages(stages),
				facade.WithPeriods(2, 3),
				facade.WithAttempts(2000, 2000),
				facade.WithSeed(int64(depth)*10+int64(stages)),
				facade.WithDebug(false),
			)
			h, err := New(cfg)
			if err != nil {
				t.Fatal(err)
			}
			sum, err := h.Run()
			if err != nil || !sum.Pass {
				t.Fatalf("depth=%d stages=%d: %+v err=%v", depth, stages, sum, err)
			}
		}
	}
}
