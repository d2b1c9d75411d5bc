// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command
// definitions in the commands package. Handlers are framework-agnostic
// and can be tested independently of the CLI framework.
package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/cloudscale-tools/fipctl/internal/cloudscale"
	"github.com/cloudscale-tools/fipctl/internal/config"
	"github.com/cloudscale-tools/fipctl/internal/fip"
)

// CommonOptions holds the flags shared by all reconciling commands.
type CommonOptions struct {
	ConfigPath string
	DryRun     bool
	Output     string
	Verbosity  int

	// Out receives the rendered result record; defaults to stdout.
	Out io.Writer
}

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// loadConfig loads the API configuration.
	loadConfig = config.Load

	// newAPIClient creates the cloudscale.ch API client.
	newAPIClient = func(cfg *config.Config, log logr.Logger) cloudscale.FloatingIPAPI {
		return cloudscale.NewRealClient(cfg.APIToken,
			cloudscale.WithEndpoint(cfg.APIURL),
			cloudscale.WithLogger(log))
	}

	// stderrIsTerminal reports whether stderr is attached to a terminal.
	stderrIsTerminal = func() bool {
		return isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	}
)

// newLogger builds a stderr logger honoring the -v count.
func newLogger(verbosity int) logr.Logger {
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Fprintf(os.Stderr, "%s: %s\n", prefix, args)
			return
		}
		fmt.Fprintln(os.Stderr, args)
	}, funcr.Options{Verbosity: verbosity})
}

// setup loads configuration and wires the reconciler for a command.
func setup(opts CommonOptions) (*fip.Reconciler, logr.Logger, error) {
	log := newLogger(opts.Verbosity)

	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return nil, log, err
	}

	api := newAPIClient(cfg, log)
	r := fip.NewReconciler(api,
		fip.WithLogger(log),
		fip.WithDryRun(opts.DryRun))
	return r, log, nil
}

// render writes the result record in the requested format and, when
// stderr is a terminal, a one-line human summary alongside it.
func render(opts CommonOptions, result fip.Result) error {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	payload := struct {
		fip.Record `yaml:",inline"`
		Changed    bool `json:"changed" yaml:"changed"`
	}{Record: result.Record, Changed: result.Changed}

	switch opts.Output {
	case "", "json":
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Fprintln(out, string(data))
	case "yaml":
		data, err := yaml.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Fprint(out, string(data))
	default:
		return fmt.Errorf("unsupported output format %q: use json or yaml", opts.Output)
	}

	if stderrIsTerminal() {
		mode := ""
		if opts.DryRun {
			mode = " (dry run)"
		}
		fmt.Fprintf(os.Stderr, "%s: action=%s changed=%t%s\n", displayIP(result.Record.IP), result.Action, result.Changed, mode)
	}
	return nil
}

func displayIP(ip string) string {
	if ip == "" {
		return "(new floating IP)"
	}
	return ip
}
