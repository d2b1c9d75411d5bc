package handlers

import (
	"context"

	"github.com/cloudscale-tools/fipctl/internal/fip"
)

// GetOptions holds everything the get command collects.
type GetOptions struct {
	Common CommonOptions

	IP string
}

// Get fetches and prints the observed state of a floating IP. It never
// mutates anything; the record is rendered with changed=false.
func Get(ctx context.Context, opts GetOptions) error {
	log := newLogger(opts.Common.Verbosity)

	cfg, err := loadConfig(opts.Common.ConfigPath)
	if err != nil {
		return err
	}
	api := newAPIClient(cfg, log)

	raw, err := api.GetFloatingIP(ctx, opts.IP)
	if err != nil {
		return err
	}
	record, err := fip.Normalize(raw, opts.IP)
	if err != nil {
		return err
	}

	return render(opts.Common, fip.Result{Record: record, Action: fip.ActionNone, Changed: false})
}
