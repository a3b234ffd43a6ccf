// Package main is the entry point for the apidirlint CLI.
package main

import (
	"os"

	"github.com/yaklabco/apidirlint/internal/cli"
	"github.com/yaklabco/apidirlint/internal/logging"
)

// Build-time variables set via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := cli.NewRootCommand(cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	})

	err := rootCmd.Execute()
	if err != nil && !cli.IsSilent(err) {
		logging.Default().Error("command failed", logging.FieldError, err)
	}

	return cli.ExitCode(err)
}
