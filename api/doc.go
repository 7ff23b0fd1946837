// File: api/doc.go
// License: Apache-2.0
//
// Package api defines the public contracts of the asyncfifo module:
// ring storage, pointer-crossing channels, tick results, control and
// error types. Implementations live under internal/ and are exposed
// through the facade package.
package api
