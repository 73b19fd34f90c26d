// Package batch converts many files concurrently.
package batch

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/puzpuzpuz/xsync/v4"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/oy3o/utfconv"
)

// DefaultJobs bounds concurrent conversions when Runner.Jobs is not positive.
const DefaultJobs = 4

// ErrDuplicateOutput is returned when two inputs would be written to the same output file.
var ErrDuplicateOutput = errors.New("batch: inputs map to the same output file")

// Status counts the work done by a Run. Counters are updated concurrently.
type Status struct {
	Files    *xsync.Counter
	BytesIn  *xsync.Counter
	BytesOut *xsync.Counter
	Elapsed  time.Duration
}

func newStatus() *Status {
	return &Status{
		Files:    xsync.NewCounter(),
		BytesIn:  xsync.NewCounter(),
		BytesOut: xsync.NewCounter(),
	}
}

// Runner converts files read from Fs into OutDir.
type Runner struct {
	Fs     afero.Fs
	Logger *zap.Logger
	Jobs   int
	// Order is the byte order of UTF-16 input and output. Nil means utfconv.Order.
	Order  binary.ByteOrder
	OutDir string
}

// OutputPath returns where the conversion of input from mode is written:
// the input's base name with its extension replaced by the target mode.
func OutputPath(outDir, input string, mode utfconv.Mode) string {
	base := filepath.Base(input)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outDir, base+"."+string(mode.Target()))
}

// Run converts every input from mode. The first failure cancels the
// conversions that have not started yet and is returned.
func (r *Runner) Run(ctx context.Context, mode utfconv.Mode, inputs []string) (*Status, error) {
	if _, err := utfconv.ParseMode(string(mode)); err != nil {
		return nil, err
	}
	fs := r.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	jobs := r.Jobs
	if jobs <= 0 {
		jobs = DefaultJobs
	}

	outputs := make(map[string]string, len(inputs))
	for _, in := range inputs {
		out := OutputPath(r.OutDir, in, mode)
		if prev, ok := outputs[out]; ok {
			return nil, fmt.Errorf("%w: %s and %s both write %s", ErrDuplicateOutput, prev, in, out)
		}
		outputs[out] = in
	}

	if r.OutDir != "" {
		if err := fs.MkdirAll(r.OutDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create output directory %s: %w", r.OutDir, err)
		}
	}

	status := newStatus()
	start := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for _, in := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out := OutputPath(r.OutDir, in, mode)
			n, err := r.convertFile(fs, mode, in, out)
			if err != nil {
				logger.Error("conversion failed", zap.String("input", in), zap.Error(err))
				return err
			}
			status.Files.Inc()
			status.BytesIn.Add(n.in)
			status.BytesOut.Add(n.out)
			logger.Debug("converted",
				zap.String("input", in),
				zap.String("output", out),
				zap.Int64("in_bytes", n.in),
				zap.Int64("out_bytes", n.out))
			return nil
		})
	}
	err := g.Wait()
	status.Elapsed = time.Since(start)
	if err != nil {
		return status, err
	}

	logger.Info("batch finished",
		zap.String("mode", string(mode)),
		zap.Int64("files", status.Files.Value()),
		zap.Duration("elapsed", status.Elapsed))
	return status, nil
}

type sizes struct{ in, out int64 }

func (r *Runner) convertFile(fs afero.Fs, mode utfconv.Mode, in, out string) (sizes, error) {
	data, err := afero.ReadFile(fs, in)
	if err != nil {
		return sizes{}, fmt.Errorf("failed to read %s: %w", in, err)
	}
	if len(data) == 0 {
		return sizes{}, fmt.Errorf("%w: %s", utfconv.ErrEmptyInput, in)
	}
	converted, err := utfconv.Convert(mode, data, r.Order)
	if err != nil {
		return sizes{}, fmt.Errorf("failed to convert %s: %w", in, err)
	}
	if err := afero.WriteFile(fs, out, converted, 0o644); err != nil {
		return sizes{}, fmt.Errorf("failed to write %s: %w", out, err)
	}
	return sizes{in: int64(len(data)), out: int64(len(converted))}, nil
}
