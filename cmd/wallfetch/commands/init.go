package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/livp123/wallfetch/internal/config"
	"github.com/livp123/wallfetch/internal/utils/fileutil"
	apperrors "github.com/livp123/wallfetch/pkg/errors"
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:              "init [path]",
		Short:            "Write a default configuration file",
		Args:             cobra.MaximumNArgs(1),
		PersistentPreRun: useConsoleLogger,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultConfigPath
			if len(args) == 1 {
				path = args[0]
			}
			if fileutil.Exists(path) && !force {
				return fmt.Errorf("%w: %s (use --force to overwrite)", apperrors.ErrAlreadyExists, path)
			}
			if err := config.Save(path, config.Default()); err != nil {
				return apperrors.NewOutputError(path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote default configuration to %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration file")
	return cmd
}
