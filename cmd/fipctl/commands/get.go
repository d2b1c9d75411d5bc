package commands

import (
	"github.com/spf13/cobra"

	"github.com/cloudscale-tools/fipctl/cmd/fipctl/handlers"
)

// Get returns the command that prints the observed state of a floating
// IP without changing anything.
func Get() *cobra.Command {
	var opts handlers.GetOptions

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show the current state of a floating IP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Get(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.IP, "ip", "", "Address of the floating IP to inspect")
	addCommonFlags(cmd, &opts.Common)
	_ = cmd.MarkFlagRequired("ip")

	return cmd
}
