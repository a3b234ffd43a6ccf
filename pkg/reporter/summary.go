package reporter

import (
	"bufio"
	"cmp"
	"context"
	"fmt"
	"slices"
	"strconv"

	"github.com/yaklabco/apidirlint/internal/ui/pretty"
	"github.com/yaklabco/apidirlint/pkg/runner"
)

// SummaryReporter prints issue counts per rule instead of individual diagnostics.
type SummaryReporter struct {
	opts      Options
	styles    *pretty.Styles
	formatter *pretty.TableFormatter
	bw        *bufio.Writer
}

// NewSummaryReporter creates a new summary reporter.
func NewSummaryReporter(opts Options) *SummaryReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	styles := pretty.NewStyles(colorEnabled)

	return &SummaryReporter{
		opts:      opts,
		styles:    styles,
		formatter: pretty.NewTableFormatter(styles, pretty.TerminalWidth(opts.Writer)),
		bw:        bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

type ruleCount struct {
	id    string
	name  string
	count int
}

// Report implements Reporter.
func (r *SummaryReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		return 0, nil
	}

	counts := collectRuleCounts(result)
	if len(counts) > 0 {
		tbl := pretty.Table{
			Columns: []pretty.Column{
				{Title: "RULE"},
				{Title: "NAME"},
				{Title: "ISSUES", AlignRight: true},
			},
		}
		for _, rc := range counts {
			tbl.Rows = append(tbl.Rows, []string{rc.id, rc.name, strconv.Itoa(rc.count)})
		}
		fmt.Fprint(r.bw, r.formatter.Format(tbl))
	}

	fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))

	return result.Stats.DiagnosticsTotal, nil
}

// collectRuleCounts returns per-rule totals, most frequent first, ties by ID.
func collectRuleCounts(result *runner.Result) []ruleCount {
	byID := make(map[string]*ruleCount)
	for _, report := range result.Reports() {
		for _, diag := range report.Diagnostics {
			rc, ok := byID[diag.RuleID]
			if !ok {
				rc = &ruleCount{id: diag.RuleID, name: diag.RuleName}
				byID[diag.RuleID] = rc
			}
			rc.count++
		}
	}

	counts := make([]ruleCount, 0, len(byID))
	for _, rc := range byID {
		counts = append(counts, *rc)
	}
	slices.SortFunc(counts, func(a, b ruleCount) int {
		if c := cmp.Compare(b.count, a.count); c != 0 {
			return c
		}
		return cmp.Compare(a.id, b.id)
	})
	return counts
}
