package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/yaklabco/apidirlint/internal/logging"
	"github.com/yaklabco/apidirlint/internal/watch"
)

func newWatchCommand(globals *globalFlags, flags *validateFlags) *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch <files...>",
		Short: "Re-validate files whenever they change",
		Long: `Validate the given files, then validate them again each time one of them
is saved. Reports are written exactly as the root command writes them.
Stop with Ctrl-C.`,
		Example: `  apidirlint watch README.md
  apidirlint watch --debounce 1s --format table README.md`,
		Args: usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, args, globals, flags, debounce)
		},
	}

	addValidateFlags(cmd, flags)
	cmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, "quiet period before re-validating")

	return cmd
}

func runWatch(cmd *cobra.Command, args []string, globals *globalFlags, flags *validateFlags, debounce time.Duration) error {
	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	layer, err := flags.overrides(cmd)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(ctx, globals, layer)
	if err != nil {
		return err
	}
	repOpts, err := flags.reporterOptions(cmd.OutOrStdout(), globals, cfg)
	if err != nil {
		return err
	}

	logger := logging.FromContext(ctx)

	check := func(ctx context.Context, paths []string) {
		result, err := validateFiles(ctx, paths, flags.jobs, cfg)
		if err != nil {
			logger.Error("validation failed", logging.FieldError, err)
			return
		}
		switch err := report(ctx, repOpts, result); {
		case err == nil:
			logger.Info("valid", logging.FieldFiles, paths)
		case IsSilent(err):
			logger.Info("issues found", logging.FieldFiles, paths, logging.FieldIssues, result.Stats.DiagnosticsTotal)
		default:
			logger.Error("validation failed", logging.FieldError, err)
		}
	}

	w, err := watch.New(args, debounce)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer func() { _ = w.Close() }()

	check(ctx, args)

	logger.Info("watching for changes", logging.FieldFiles, args, logging.FieldDebounce, debounce)
	if err := w.Run(ctx, check); err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	return nil
}
