// File: internal/domain/doc.go
// License: Apache-2.0
//
// Package domain implements the two independently paced control loops
// around the fifo core. Each domain owns one ring pointer, publishes it
// through its outbound crossing after every committed operation, and
// reads the foreign pointer only from its inbound crossing. A shared
// reset line coordinates the two-sided reset protocol.
package domain
