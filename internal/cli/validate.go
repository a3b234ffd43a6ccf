package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/apidirlint/internal/configloader"
	"github.com/yaklabco/apidirlint/internal/logging"
	"github.com/yaklabco/apidirlint/pkg/config"
	"github.com/yaklabco/apidirlint/pkg/lint"
	_ "github.com/yaklabco/apidirlint/pkg/lint/rules" // Register built-in rules
	"github.com/yaklabco/apidirlint/pkg/reporter"
	"github.com/yaklabco/apidirlint/pkg/runner"
)

// noInputMessage is printed on stdout when no file argument is given.
const noInputMessage = "No file passed (file should contain Markdown table syntax)"

type validateFlags struct {
	format           string
	ruleFormat       string
	checkLastSection bool
	minEntries       int
	disable          []string
	summary          bool
	details          bool
	compact          bool
	jobs             int
}

func addValidateFlags(cmd *cobra.Command, flags *validateFlags) {
	fs := cmd.Flags()
	fs.StringVar(&flags.format, "format", "text", "output format: text, table, json, summary")
	fs.StringVar(&flags.ruleFormat, "rule-format", "id",
		"rule identifier format in details and tables: id, name, or combined")
	fs.BoolVar(&flags.checkLastSection, "check-last-section", false,
		"apply the minimum entry count to the final section too")
	fs.IntVar(&flags.minEntries, "min-entries", config.DefaultMinEntries, "minimum rows per section")
	fs.StringSliceVar(&flags.disable, "disable", nil, "rule IDs or names to disable")
	fs.BoolVar(&flags.summary, "summary", false, "print a one-line summary after the report")
	fs.BoolVar(&flags.details, "details", false, "print the rule and suggestion under each violation")
	fs.BoolVar(&flags.compact, "compact", false, "use compact JSON output")
	fs.IntVar(&flags.jobs, "jobs", 0, "number of files validated in parallel (0 = auto)")
}

// overrides converts the flags the user actually set into a configuration
// layer, so unset flags never mask file or environment settings.
func (f *validateFlags) overrides(cmd *cobra.Command) (*configloader.Overrides, error) {
	layer := &configloader.Overrides{}
	changed := cmd.Flags().Changed

	if changed("format") {
		format := config.OutputFormat(f.format)
		if !format.IsValid() {
			return nil, fmt.Errorf("%w: unknown format %q; valid formats: text, table, json, summary", ErrUsage, f.format)
		}
		layer.Format = &format
	}
	if changed("check-last-section") {
		layer.CheckLastSection = configloader.Ptr(f.checkLastSection)
	}
	if changed("min-entries") {
		layer.MinEntries = configloader.Ptr(f.minEntries)
	}
	if changed("disable") {
		layer.DisableRules = f.disable
	}

	return layer, nil
}

// reporterOptions builds reporter options for w.
func (f *validateFlags) reporterOptions(w io.Writer, globals *globalFlags, cfg *config.Config) (reporter.Options, error) {
	format, err := reporter.ParseFormat(string(cfg.Format))
	if err != nil {
		return reporter.Options{}, fmt.Errorf("%w: %w", ErrUsage, err)
	}

	ruleFormat := config.RuleFormat(f.ruleFormat)
	switch ruleFormat {
	case config.RuleFormatID, config.RuleFormatName, config.RuleFormatCombined:
	default:
		return reporter.Options{}, fmt.Errorf("%w: unknown rule format %q; valid formats: id, name, combined",
			ErrUsage, f.ruleFormat)
	}

	return reporter.Options{
		Writer:      w,
		Format:      format,
		Color:       globals.color,
		ShowSummary: f.summary,
		ShowDetails: f.details,
		Compact:     f.compact,
		RuleFormat:  ruleFormat,
	}, nil
}

func runValidate(cmd *cobra.Command, args []string, globals *globalFlags, flags *validateFlags) error {
	out := cmd.OutOrStdout()

	// No input file is checked before anything is opened.
	if len(args) == 0 {
		fmt.Fprintln(out, noInputMessage)
		return ErrNoInput
	}

	ctx := commandContext(cmd)

	layer, err := flags.overrides(cmd)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(ctx, globals, layer)
	if err != nil {
		return err
	}

	repOpts, err := flags.reporterOptions(out, globals, cfg)
	if err != nil {
		return err
	}

	result, err := validateFiles(ctx, args, flags.jobs, cfg)
	if err != nil {
		return err
	}

	return report(ctx, repOpts, result)
}

// validateFiles runs the built-in rules over paths.
func validateFiles(ctx context.Context, paths []string, jobs int, cfg *config.Config) (*runner.Result, error) {
	logging.FromContext(ctx).Debug("starting validation",
		logging.FieldFiles, paths,
		logging.FieldFormat, cfg.Format,
	)

	r := runner.New(lint.NewEngine(lint.DefaultRegistry))
	result, err := r.Run(ctx, runner.Options{
		Paths:  paths,
		Jobs:   jobs,
		Config: cfg,
	})
	if err != nil {
		return nil, fmt.Errorf("validation run failed: %w", err)
	}
	return result, nil
}

// report writes result and converts its outcome into the command error.
func report(ctx context.Context, opts reporter.Options, result *runner.Result) error {
	rep, err := reporter.New(opts)
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	if err := result.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	if result.HasIssues() {
		return ErrIssuesFound
	}
	return nil
}

// loadConfig resolves the configuration for a command run, logging any
// loader warnings.
func loadConfig(ctx context.Context, globals *globalFlags, layer *configloader.Overrides) (*config.Config, error) {
	result, err := configloader.Load(ctx, configloader.LoadOptions{
		ExplicitPath: globals.configPath,
		CLI:          layer,
	})
	if err != nil {
		return nil, err
	}

	logger := logging.FromContext(ctx)
	for _, warning := range result.Warnings {
		logger.Warn(warning)
	}
	if len(result.LoadedFrom) > 0 {
		logger.Debug("loaded configuration", logging.FieldFiles, result.LoadedFrom)
	}

	return result.Config, nil
}

// commandContext returns the command's context, or a background context
// when the command runs outside Execute (tests).
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
