// File: harness/record.go
// License: Apache-2.0
//
// Log and report types emitted by a verification run.

package harness

import "github.com/jagan3954/asyncfifo/api"

// Record is one attempted operation: who ticked, at which virtual time,
// whether the attempt was gated, and the value moved if it committed.
type Record struct {
	Time   uint64       `json:"tick_time" msgpack:"t"`
	Domain api.DomainID `json:"domain" msgpack:"d"`
	Op     api.OpKind   `json:"operation" msgpack:"o"`
	Gated  bool         `json:"gated" msgpack:"g"`
	Value  *uint64      `json:"value,omitempty" msgpack:"v,omitempty"`
}

// Summary is the final verdict of a run.
type Summary struct {
	RunID               string `json:"run_id" msgpack:"id"`
	Depth               uint64 `json:"depth" msgpack:"depth"`
	Seed                int64  `json:"seed" msgpack:"seed"`
	WritesAttempted     int    `json:"writes_attempted" msgpack:"wa"`
	WritesCommitted     int    `json:"writes_committed" msgpack:"wc"`
	ReadsAttempted      int    `json:"reads_attempted" msgpack:"ra"`
	ReadsCommitted      int    `json:"reads_committed" msgpack:"rc"`
	Mismatches          int    `json:"mismatches" msgpack:"mm"`
	InvariantViolations int    `json:"invariant_violations" msgpack:"iv"`
	FinalOccupied       uint64 `json:"final_occupied" msgpack:"fo"`
	Pass                bool   `json:"pass" msgpack:"pass"`
}

// Report bundles the summary with the full operation log.
type Report struct {
	Summary Summary  `json:"summary"`
	Records []Record `json:"records"`
}
