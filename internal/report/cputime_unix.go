//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package report

import (
	"time"

	"golang.org/x/sys/unix"
)

// CPUTime returns the user plus system CPU time the process has consumed.
func CPUTime() (time.Duration, bool) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0, false
	}
	return time.Duration(ru.Utime.Nano() + ru.Stime.Nano()), true
}
