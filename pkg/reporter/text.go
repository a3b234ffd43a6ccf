package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/apidirlint/internal/ui/pretty"
	"github.com/yaklabco/apidirlint/pkg/runner"
)

// TextReporter writes one "(L###) message" line per diagnostic.
// A single clean file produces no output at all.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		return 0, nil
	}

	grouped := multiFile(result)

	var total int
	for _, file := range result.Files {
		if file.Report == nil || !file.Report.HasIssues() {
			continue
		}

		// Several files: name each one above its diagnostics.
		if grouped {
			fmt.Fprintln(r.bw, r.styles.FormatFileHeader(file.Path, file.Report.IssueCount()))
		}

		for _, diag := range file.Report.Diagnostics {
			fmt.Fprint(r.bw, r.styles.FormatDiagnostic(&diag))
			if r.opts.ShowDetails {
				fmt.Fprint(r.bw, r.styles.FormatDiagnosticDetail(&diag, r.opts.RuleFormat))
			}
			total++
		}

		if grouped {
			fmt.Fprintln(r.bw)
		}
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return total, nil
}
