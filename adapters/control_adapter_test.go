// File: adapters/control_adapter_test.go
// License: Apache-2.0

package adapters

import "testing"

func TestControlAdapter_RoundTrip(t *testing.T) {
	ctrl := NewControlAdapter()
	if err := ctrl.SetConfig(map[string]any{"depth": uint64(8)}); err != nil {
		t.Fatalf("SetConfig: %v", err)
	}
	if got := ctrl.GetConfig()["depth"]; got != uint64(8) {
		t.Fatalf("config round trip: %v", got)
	}
	ctrl.SetMetric("writes_committed", uint64(3))
	ctrl.RegisterDebugProbe("occupied", func() any { return uint64(1) })
	stats := ctrl.Stats()
	if stats["writes_committed"] != uint64(3) {
		t.Fatalf("metric missing: %+v", stats)
	}
	if stats["debug.occupied"] != uint64(1) {
		t.Fatalf("probe missing: %+v", stats)
	}
}
