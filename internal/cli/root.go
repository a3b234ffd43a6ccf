// Package cli provides the Cobra command structure for apidirlint.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/apidirlint/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// globalFlags are shared by every command.
type globalFlags struct {
	debug      bool
	configPath string
	color      string
}

// NewRootCommand creates the root apidirlint command with all subcommands.
// The root command itself validates the files named as arguments.
func NewRootCommand(info BuildInfo) *cobra.Command {
	globals := &globalFlags{}
	flags := &validateFlags{}

	rootCmd := &cobra.Command{
		Use:   "apidirlint [files...]",
		Short: "Validate Markdown API directory tables",
		Long: `apidirlint validates Markdown files that list public APIs in tables.

Each "### Category" header opens a section. Every row beneath it must have
six cells (Title, Description, Auth, HTTPS, CORS, Link), follow the cell
formatting conventions, and be sorted by title. Each violation is printed as

  (L###) message

on standard output. Nothing is printed when a file is valid.

Exit status is 0 when every file is valid, 1 when violations were found or
no file was given, 65 for configuration errors, and 74 when a file could not
be read.`,
		Example: `  apidirlint README.md
  apidirlint --format json README.md
  apidirlint --check-last-section --disable DL006 README.md
  apidirlint sections README.md`,
		Args: cobra.ArbitraryArgs,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if globals.debug {
				logging.SetLevel("debug")
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args, globals, flags)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&globals.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&globals.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&globals.color, "color", "auto",
		"colorize output: auto, always, never")

	addValidateFlags(rootCmd, flags)

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	})

	// Add subcommands.
	rootCmd.AddCommand(newRulesCommand(globals))
	rootCmd.AddCommand(newSectionsCommand(globals))
	rootCmd.AddCommand(newExplainCommand(globals))
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newWatchCommand(globals, flags))
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	NewHelpFormatter(globals.color, os.Stdout).ApplyToCommand(rootCmd)

	return rootCmd
}

// usageArgs wraps a positional argument validator so its failures map to
// the usage exit code.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", ErrUsage, err)
		}
		return nil
	}
}
