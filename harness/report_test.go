// File: harness/report_test.go
// License: Apache-2.0

package harness

import (
	"bytes"
	"testing"

	"github.com/sugawarayuuta/sonnet"

	"github.com/jagan3954/asyncfifo/facade"
)

func runSmall(t *testing.T) *Harness {
	t.Helper()
	cfg := facade.NewConfig(
		facade.WithDepth(4),
		facade.WithPeriods(2, 3),
		facade.WithAttempts(30, 30),
		facade.WithSeed(11),
	)
	h, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := h.Run(); err != nil {
		t.Fatal(err)
	}
	return h
}

func TestWriteReport_JSON(t *testing.T) {
	h := runSmall(t)
	var buf bytes.Buffer
	if err := h.WriteReport(&buf); err != nil {
		t.Fatal(err)
	}
	var rep Report
	if err := sonnet.Unmarshal(buf.Bytes(), &rep); err != nil {
		t.Fatalf("report does not decode: %v", err)
	}
	if rep.Summary.RunID != h.Summary().RunID {
		t.Fatal("run id lost in report")
	}
	if len(rep.Records) != len(h.Records()) {
		t.Fatalf("record count %d, want %d", len(rep.Records), len(h.Records()))
	}
	if !rep.Summary.Pass {
		t.Fatalf("expected pass in report: %+v", rep.Summary)
	}
}

func TestTrace_RoundTrip(t *testing.T) {
	h := runSmall(t)
	var buf bytes.Buffer
	if err := h.WriteTrace(&buf); err != nil {
		t.Fatal(err)
	}
	sum, recs, err := ReadTrace(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if sum.RunID != h.Summary().RunID || sum.WritesCommitted != h.Summary().WritesCommitted {
		t.Fatalf("summary mangled: %+v", sum)
	}
	if len(recs) != len(h.Records()) {
		t.Fatalf("trace has %d records, want %d", len(recs), len(h.Records()))
	}
	for i, rec := range recs {
		orig := h.Records()[i]
		if rec.Time != orig.Time || rec.Domain != orig.Domain || rec.Gated != orig.Gated {
			t.Fatalf("record %d mangled: %+v vs %+v", i, rec, orig)
		}
	}
}

func TestMetricsPublishedAfterRun(t *testing.T) {
	h := runSmall(t)
	stats := h.Bench().Control().Stats()
	if stats["pass"] != true {
		t.Fatalf("metrics not published: %+v", stats)
	}
	if stats["writes_attempted"] != 30 {
		t.Fatalf("writes_attempted metric: %v", stats["writes_attempted"])
	}
}
