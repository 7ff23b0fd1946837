// File: harness/report.go
// License: Apache-2.0
//
// Report and trace serialization. The human-facing report is JSON; the
// trace is a compact msgpack stream (summary first, then one message
// per record) suitable for archiving long runs.

package harness

import (
	"errors"
	"io"

	"github.com/sugawarayuuta/sonnet"
	"github.com/vmihailenco/msgpack/v5"
)

// Report snapshots the summary and the full operation log.
func (h *Harness) Report() Report {
	recs := make([]Record, len(h.records))
	copy(recs, h.records)
	return Report{Summary: h.summary, Records: recs}
}

// WriteReport encodes the report as JSON to w.
func (h *Harness) WriteReport(w io.Writer) error {
	data, err := sonnet.Marshal(h.Report())
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// WriteTrace streams the summary and every record as msgpack to w.
func (h *Harness) WriteTrace(w io.Writer) error {
	enc := msgpack.NewEncoder(w)
	if err := enc.Encode(h.summary); err != nil {
		return err
	}
	for i := range h.records {
		if err := enc.Encode(&h.records[i]); err != nil {
			return err
		}
	}
	return nil
}

// ReadTrace decodes a trace stream written by WriteTrace.
func ReadTrace(r io.Reader) (Summary, []Record, error) {
	dec := msgpack.NewDecoder(r)
	var sum Summary
	if err := dec.Decode(&sum); err != nil {
		return Summary{}, nil, err
	}
	var recs []Record
	for {
		var rec Record
		if err := dec.Decode(&rec); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return sum, recs, err
		}
		recs = append(recs, rec)
	}
	return sum, recs, nil
}
