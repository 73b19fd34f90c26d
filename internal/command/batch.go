package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oy3o/utfconv"
	"github.com/oy3o/utfconv/internal/batch"
	"github.com/oy3o/utfconv/internal/report"
)

// AddBatchCommand adds the batch subcommand to root.
func AddBatchCommand(root *cobra.Command, uc *UtfconvCommand) {
	var outDir string
	cmd := &cobra.Command{
		Use:   "batch <mode> <inputs...>",
		Short: "Convert many files concurrently into an output directory",
		Long: `Convert every input from mode. Each output is written to --out-dir
under the input's base name with the target encoding as its extension,
e.g. notes.txt converted from utf8 becomes notes.utf16.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := utfconv.ParseMode(args[0])
			if err != nil {
				return err
			}
			order, err := uc.order()
			if err != nil {
				return err
			}
			r := &batch.Runner{
				Fs:     uc.fs,
				Logger: Logger(),
				Jobs:   uc.v.GetInt(keyJobs),
				Order:  order,
				OutDir: outDir,
			}
			status, err := r.Run(cmd.Context(), mode, args[1:])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Converted %d files (%s, %s to %s) in %s\n",
				status.Files.Value(),
				mode.Description(),
				report.FormatSize(status.BytesIn.Value()),
				report.FormatSize(status.BytesOut.Value()),
				report.FormatDuration(status.Elapsed))
			return err
		},
	}
	cmd.Flags().StringVar(&outDir, "out-dir", ".", "directory to write outputs to")
	cmd.Flags().Int(keyJobs, batch.DefaultJobs, "maximum number of concurrent conversions")
	uc.bindFlags(cmd.Flags(), keyJobs)
	root.AddCommand(cmd)
}
