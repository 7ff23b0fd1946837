// File: affinity/affinity.go
// License: Apache-2.0
//
// Platform-neutral API for CPU affinity. Platform-specific implementations are
// located in separate files (affinity_linux.go, affinity_stub.go) guarded by
// build tags. Used by threaded stress runs to keep the producer and consumer
// loops on distinct cores.

package affinity

import "runtime"

// PinThread locks the calling goroutine to its OS thread and binds that
// thread to the given logical CPU. On unsupported platforms the thread
// is still locked but binding returns an error.
func PinThread(cpuID int) error {
	runtime.LockOSThread()
	return setAffinityPlatform(cpuID)
}

// UnpinThread releases the OS thread lock taken by PinThread.
func UnpinThread() {
	runtime.UnlockOSThread()
}
