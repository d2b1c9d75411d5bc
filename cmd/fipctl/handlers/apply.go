package handlers

import (
	"context"

	"github.com/cloudscale-tools/fipctl/internal/fip"
)

// ApplyOptions holds everything the apply command collects.
type ApplyOptions struct {
	Common CommonOptions

	IP            string
	IPVersion     int
	Server        string
	Type          string
	Region        string
	PrefixLength  int
	ReversePtr    string
	ReversePtrSet bool
	Tags          map[string]string
	ClearTags     bool
}

// Apply declares a floating IP present and converges towards it.
func Apply(ctx context.Context, opts ApplyOptions) error {
	r, _, err := setup(opts.Common)
	if err != nil {
		return err
	}

	desired := fip.DesiredState{
		State:        fip.StatePresent,
		IP:           opts.IP,
		IPVersion:    opts.IPVersion,
		Server:       opts.Server,
		Type:         opts.Type,
		Region:       opts.Region,
		PrefixLength: opts.PrefixLength,
		Tags:         desiredTags(opts),
	}
	if opts.ReversePtrSet {
		desired.ReversePtr = &opts.ReversePtr
	}

	result, err := r.Reconcile(ctx, desired)
	if err != nil {
		return err
	}
	return render(opts.Common, result)
}

// desiredTags maps the tag flags onto the desired state: --clear-tags
// yields an explicitly empty map, no tag flags at all leave tags
// untouched.
func desiredTags(opts ApplyOptions) map[string]string {
	if opts.ClearTags {
		return map[string]string{}
	}
	return opts.Tags
}
