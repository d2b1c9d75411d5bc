package commands

import (
	"github.com/spf13/cobra"

	"github.com/cloudscale-tools/fipctl/cmd/fipctl/handlers"
)

// Release returns the command that declares a floating IP absent.
func Release() *cobra.Command {
	var opts handlers.ReleaseOptions

	cmd := &cobra.Command{
		Use:   "release",
		Short: "Release a floating IP",
		Long: `Declare a floating IP absent and release it if it exists.

Releasing an address that does not exist is not an error; the command
reports changed=false.

Examples:
  # Release a floating IP
  fipctl release --ip 192.0.2.123

  # Preview without touching anything
  fipctl release --ip 192.0.2.123 --dry-run`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Release(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.IP, "ip", "", "Address of the floating IP to release")
	addCommonFlags(cmd, &opts.Common)
	_ = cmd.MarkFlagRequired("ip")

	return cmd
}
