package handlers

import (
	"context"

	"github.com/cloudscale-tools/fipctl/internal/fip"
)

// ReleaseOptions holds everything the release command collects.
type ReleaseOptions struct {
	Common CommonOptions

	IP string
}

// Release declares a floating IP absent, deleting it if necessary.
func Release(ctx context.Context, opts ReleaseOptions) error {
	r, _, err := setup(opts.Common)
	if err != nil {
		return err
	}

	result, err := r.Reconcile(ctx, fip.DesiredState{
		State: fip.StateAbsent,
		IP:    opts.IP,
	})
	if err != nil {
		return err
	}
	return render(opts.Common, result)
}
