// File: internal/fifo/doc.go
// License: Apache-2.0
//
// Package fifo implements the fixed-capacity ring core shared by the two
// domains. Pointers are plain binary counters one bit wider than the slot
// index (range [0, 2*depth)); full and empty are derived from the pointer
// pair, never stored. The core is domain-agnostic: callers pass in their
// view of the foreign pointer and own exactly one side of the ring.
package fifo
