package command

import (
	"fmt"

	"github.com/spf13/cobra"
)

// AddVersionCommand adds the version subcommand to root.
func AddVersionCommand(root *cobra.Command, uc *UtfconvCommand) {
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "utfconv %s\n", uc.info)
			return err
		},
	})
}
