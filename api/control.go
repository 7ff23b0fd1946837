// File: api/control.go
// License: Apache-2.0

package api

// Control manages dynamic config and runtime metrics.
type Control interface {
	GetConfig() map[string]any
	SetConfig(cfg map[string]any) error
	Stats() map[string]any
	OnReload(fn func())
	SetMetric(key string, value any)
	IncMetric(key string, delta uint64)
	RegisterDebugProbe(name string, fn func() any)
}
