//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package report

import "time"

// CPUTime is unavailable on this platform.
func CPUTime() (time.Duration, bool) { return 0, false }
