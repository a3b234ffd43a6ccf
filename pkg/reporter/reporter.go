// Package reporter renders validation results.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/apidirlint/pkg/runner"
)

// Reporter formats and writes validation results.
type Reporter interface {
	// Report writes formatted output for the given result.
	// It returns the number of issues reported and any write errors.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	defaults := DefaultOptions()
	if opts.Writer == nil {
		opts.Writer = defaults.Writer
	}
	if opts.RuleFormat == "" {
		opts.RuleFormat = defaults.RuleFormat
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}

	switch format {
	case FormatText:
		return NewTextReporter(opts), nil
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatTable:
		return NewTableReporter(opts), nil
	case FormatSummary:
		return NewSummaryReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// multiFile reports whether output must name the file of each diagnostic.
func multiFile(result *runner.Result) bool {
	return result != nil && len(result.Files) > 1
}
