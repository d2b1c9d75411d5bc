package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cloudscale-tools/fipctl/cmd/fipctl/handlers"
)

// Apply returns the command that declares a floating IP present.
//
// Identify an existing floating IP with --ip, or request a new one
// with --ip-version. The two are mutually exclusive. All other flags
// describe the desired attributes; once a floating IP exists, only
// --server and --tag/--clear-tags changes are applied, triggered by a
// server reassignment.
//
// Environment variables:
//
//	CLOUDSCALE_API_TOKEN: cloudscale.ch API token (required)
func Apply() *cobra.Command {
	var (
		opts     handlers.ApplyOptions
		tagFlags []string
	)

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Create or reassign a floating IP",
		Long: `Declare a floating IP present and converge towards that state.

Examples:
  # Request a new IPv4 floating IP
  fipctl apply --ip-version 4

  # Request a new IPv4 floating IP assigned to a server
  fipctl apply --ip-version 4 --server 47cec963-fcd2-482f-bdb6-24461b2d47b1

  # Move an existing floating IP to another server
  fipctl apply --ip 192.0.2.123 --server ea3b39a3-77a8-4d0b-881d-0bb00a1e7f48

  # Request a new IPv6 floating network
  fipctl apply --ip-version 6 --prefix-length 56 --region lpg

  # Preview without touching anything
  fipctl apply --ip 192.0.2.123 --server srv-uuid --dry-run`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tags, err := parseTags(tagFlags)
			if err != nil {
				return err
			}
			opts.Tags = tags
			opts.ReversePtrSet = cmd.Flags().Changed("reverse-ptr")
			return handlers.Apply(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.IP, "ip", "", "Address of an existing floating IP")
	cmd.Flags().IntVar(&opts.IPVersion, "ip-version", 0, "IP protocol version for a new floating IP (4 or 6)")
	cmd.Flags().StringVar(&opts.Server, "server", "", "UUID of the server the floating IP routes to")
	cmd.Flags().StringVar(&opts.Type, "type", "regional", "Floating IP type (regional or global)")
	cmd.Flags().StringVar(&opts.Region, "region", "", "Region slug for a new regional floating IP")
	cmd.Flags().IntVar(&opts.PrefixLength, "prefix-length", 0, "Prefix length for a new IPv6 network (only 56)")
	cmd.Flags().StringVar(&opts.ReversePtr, "reverse-ptr", "", "Reverse PTR entry for the address")
	cmd.Flags().StringArrayVar(&tagFlags, "tag", nil, "Tag in key=value form (repeatable)")
	cmd.Flags().BoolVar(&opts.ClearTags, "clear-tags", false, "Remove all tags from the floating IP")
	addCommonFlags(cmd, &opts.Common)
	cmd.MarkFlagsMutuallyExclusive("ip", "ip-version")
	cmd.MarkFlagsMutuallyExclusive("tag", "clear-tags")

	return cmd
}

// parseTags converts repeated key=value flags into a tag map.
func parseTags(flags []string) (map[string]string, error) {
	if len(flags) == 0 {
		return nil, nil
	}
	tags := make(map[string]string, len(flags))
	for _, flag := range flags {
		key, value, ok := strings.Cut(flag, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid tag %q: expected key=value", flag)
		}
		tags[key] = value
	}
	return tags, nil
}
