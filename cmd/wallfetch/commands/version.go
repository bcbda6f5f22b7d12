package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/livp123/wallfetch/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:              "version",
		Short:            "Show version information",
		Long:             `Show the current version of wallfetch`,
		Args:             cobra.NoArgs,
		PersistentPreRun: useConsoleLogger,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "wallfetch %s\n", version.String())
		},
	}
}
