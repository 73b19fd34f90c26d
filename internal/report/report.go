// Package report renders human-readable summaries of conversions.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// FormatSize renders n bytes in IEC units, e.g. "1.5 KiB".
func FormatSize(n int64) string {
	if n < 0 {
		return "-" + humanize.IBytes(uint64(-n))
	}
	return humanize.IBytes(uint64(n))
}

// FormatDuration breaks d down into seconds, milliseconds, microseconds and
// nanoseconds, omitting zero components: "1s 250ms 3ns".
func FormatDuration(d time.Duration) string {
	if d < 0 {
		return "-" + FormatDuration(-d)
	}
	units := []struct {
		unit   time.Duration
		suffix string
	}{
		{time.Second, "s"},
		{time.Millisecond, "ms"},
		{time.Microsecond, "us"},
		{time.Nanosecond, "ns"},
	}

	var parts []string
	for _, u := range units {
		if v := d / u.unit; v > 0 {
			parts = append(parts, fmt.Sprintf("%d%s", v, u.suffix))
			d -= v * u.unit
		}
	}
	if len(parts) == 0 {
		return "0ns"
	}
	return strings.Join(parts, " ")
}

// Outcome is the result of comparing a conversion with expected content.
type Outcome int

const (
	// Unchecked means the output was not compared.
	Unchecked Outcome = iota
	Success
	Failure
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "SUCCESS"
	case Failure:
		return "FAILURE"
	}
	return ""
}

// Summary describes one finished conversion.
type Summary struct {
	Direction string
	Input     string
	Output    string
	InSize    int64
	OutSize   int64
	Elapsed   time.Duration
	// CPU is the process CPU time spent converting, valid when CPUKnown.
	CPU       time.Duration
	CPUKnown  bool
	Outcome   Outcome
}

// WriteTo renders s as aligned "key: value" lines.
func (s *Summary) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Conversion:  %s\n", s.Direction)
	if s.Input != "" {
		fmt.Fprintf(&b, "Input:       %s (%s)\n", s.Input, FormatSize(s.InSize))
	} else {
		fmt.Fprintf(&b, "Input size:  %s\n", FormatSize(s.InSize))
	}
	if s.Output != "" {
		fmt.Fprintf(&b, "Output:      %s (%s)\n", s.Output, FormatSize(s.OutSize))
	} else {
		fmt.Fprintf(&b, "Output size: %s\n", FormatSize(s.OutSize))
	}
	fmt.Fprintf(&b, "Time:        %s\n", FormatDuration(s.Elapsed))
	if s.CPUKnown {
		fmt.Fprintf(&b, "CPU time:    %s\n", FormatDuration(s.CPU))
		// ticks at the POSIX CLOCKS_PER_SEC of one million
		fmt.Fprintf(&b, "CPU ticks:   %d\n", s.CPU.Microseconds())
	}
	if s.Outcome != Unchecked {
		fmt.Fprintf(&b, "Result:      %s\n", s.Outcome)
	}
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}
