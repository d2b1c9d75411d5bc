// Package main is the entry point for the fipctl CLI.
//
// fipctl declaratively manages a single cloudscale.ch floating IP: it
// compares the observed state against the desired state given on the
// command line and issues the minimal API calls needed to converge.
// Re-running with the same arguments is safe and reports changed=false.
//
// Commands: apply, release, get, version.
//
// For detailed usage information, run:
//
//	fipctl --help
package main

import (
	"fmt"
	"os"

	"github.com/cloudscale-tools/fipctl/cmd/fipctl/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
