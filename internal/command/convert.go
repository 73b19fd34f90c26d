package command

import (
	"bytes"
	"fmt"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/oy3o/utfconv"
	"github.com/oy3o/utfconv/internal/report"
)

// AddConvertCommand adds the convert subcommand to root.
func AddConvertCommand(root *cobra.Command, uc *UtfconvCommand) {
	root.AddCommand(&cobra.Command{
		Use:   "convert <mode> <input> <output>",
		Short: "Convert a file from mode to the other encoding",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, out, err := uc.convert(args[0], args[1])
			if err != nil {
				return err
			}
			if err := afero.WriteFile(uc.fs, args[2], out, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", args[2], err)
			}
			s.Output = args[2]
			_, err = s.WriteTo(cmd.OutOrStdout())
			return err
		},
	})
}

// AddCheckCommand adds the check subcommand to root.
func AddCheckCommand(root *cobra.Command, uc *UtfconvCommand) {
	root.AddCommand(&cobra.Command{
		Use:   "check <mode> <input> <expected> [<output>]",
		Short: "Convert a file and compare the result with expected content",
		Args:  cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, out, err := uc.convert(args[0], args[1])
			if err != nil {
				return err
			}
			if len(args) == 4 {
				if err := afero.WriteFile(uc.fs, args[3], out, 0o644); err != nil {
					return fmt.Errorf("failed to write %s: %w", args[3], err)
				}
				s.Output = args[3]
			}
			expected, err := afero.ReadFile(uc.fs, args[2])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[2], err)
			}

			var mismatch error
			if off := firstDiff(out, expected); off >= 0 {
				s.Outcome = report.Failure
				mismatch = fmt.Errorf("%w: first difference at byte %d (got %d bytes, expected %d)",
					utfconv.ErrMismatch, off, len(out), len(expected))
			} else {
				s.Outcome = report.Success
			}
			if _, err := s.WriteTo(cmd.OutOrStdout()); err != nil {
				return err
			}
			return mismatch
		},
	})
}

// convert reads input and converts it from the named mode.
func (uc *UtfconvCommand) convert(modeName, input string) (*report.Summary, []byte, error) {
	mode, err := utfconv.ParseMode(modeName)
	if err != nil {
		return nil, nil, err
	}
	order, err := uc.order()
	if err != nil {
		return nil, nil, err
	}
	data, err := afero.ReadFile(uc.fs, input)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", input, err)
	}
	if len(data) == 0 {
		return nil, nil, fmt.Errorf("%w: %s", utfconv.ErrEmptyInput, input)
	}

	cpuStart, cpuOK := report.CPUTime()
	start := time.Now()
	out, err := utfconv.Convert(mode, data, order)
	elapsed := time.Since(start)
	cpuEnd, cpuEndOK := report.CPUTime()
	if err != nil {
		return nil, nil, err
	}
	Logger().Debug("converted",
		zap.String("mode", string(mode)),
		zap.String("input", input),
		zap.Int("in_bytes", len(data)),
		zap.Int("out_bytes", len(out)),
		zap.Duration("elapsed", elapsed))

	return &report.Summary{
		Direction: mode.Description(),
		Input:     input,
		InSize:    int64(len(data)),
		OutSize:   int64(len(out)),
		Elapsed:   elapsed,
		CPU:       cpuEnd - cpuStart,
		CPUKnown:  cpuOK && cpuEndOK,
	}, out, nil
}

// firstDiff returns the offset of the first differing byte, or -1 when a and
// b are equal.
func firstDiff(a, b []byte) int {
	if bytes.Equal(a, b) {
		return -1
	}
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
