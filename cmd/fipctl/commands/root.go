// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing, flag binding, and validation. Command execution is delegated
// to handler functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the fipctl CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fipctl",
		Short: "Manage cloudscale.ch floating IPs declaratively",
	}

	cmd.AddCommand(Apply())
	cmd.AddCommand(Release())
	cmd.AddCommand(Get())
	cmd.AddCommand(Version())

	return cmd
}
