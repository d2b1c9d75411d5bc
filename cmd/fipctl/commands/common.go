package commands

import (
	"github.com/spf13/cobra"

	"github.com/cloudscale-tools/fipctl/cmd/fipctl/handlers"
)

// addCommonFlags binds the flags shared by all reconciling commands.
func addCommonFlags(cmd *cobra.Command, opts *handlers.CommonOptions) {
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to configuration file (default: environment only)")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Report the intended change without performing it")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "json", "Output format (json or yaml)")
	cmd.Flags().CountVarP(&opts.Verbosity, "verbose", "v", "Increase log verbosity (repeatable)")
}
