// Package control
// License: Apache-2.0
//
// Runtime metrics, configuration control, and debug introspection layer
// for the asyncfifo bench and harness.
//
// Provides concurrent-safe state handling primitives including:
//   - Immutable snapshot config reads and atomic updates
//   - Runtime observers for hot-reload
//   - Counter and gauge metrics with snapshot export
//   - Debug hooks, probe registration, and an HTTP snapshot endpoint
package control
