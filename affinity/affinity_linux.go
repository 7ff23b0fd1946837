//go:build linux
// +build linux

// File: affinity/affinity_linux.go
// License: Apache-2.0
//
// Linux implementation of thread CPU affinity via sched_setaffinity.

package affinity

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// setAffinityPlatform binds the current thread to a single CPU.
func setAffinityPlatform(cpuID int) error {
	var set unix.CPUSet
	set.Zero()
	set.Set(cpuID)
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		return fmt.Errorf("affinity: sched_setaffinity(%d) failed: %w", cpuID, err)
	}
	return nil
}
