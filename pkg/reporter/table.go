package reporter

import (
	"bufio"
	"context"
	"fmt"
	"strconv"

	"github.com/yaklabco/apidirlint/internal/ui/pretty"
	"github.com/yaklabco/apidirlint/pkg/config"
	"github.com/yaklabco/apidirlint/pkg/runner"
)

// Column sizing for the diagnostic table.
const (
	minFileWidth    = 16
	minMessageWidth = 30
)

// TableReporter formats diagnostics as a table sized to the terminal.
type TableReporter struct {
	opts      Options
	styles    *pretty.Styles
	formatter *pretty.TableFormatter
	bw        *bufio.Writer
}

// NewTableReporter creates a new table reporter.
func NewTableReporter(opts Options) *TableReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	styles := pretty.NewStyles(colorEnabled)

	return &TableReporter{
		opts:      opts,
		styles:    styles,
		formatter: pretty.NewTableFormatter(styles, pretty.TerminalWidth(opts.Writer)),
		bw:        bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TableReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if !result.HasIssues() {
		if r.opts.ShowSummary && result != nil {
			fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
		}
		return 0, nil
	}

	tbl := diagnosticTable(result, r.opts.RuleFormat)
	fmt.Fprint(r.bw, r.formatter.Format(tbl))

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return len(tbl.Rows), nil
}

// diagnosticTable lays out one row per diagnostic in report order.
func diagnosticTable(result *runner.Result, ruleFormat config.RuleFormat) pretty.Table {
	withFile := multiFile(result)

	var tbl pretty.Table
	if withFile {
		tbl.Columns = append(tbl.Columns, pretty.Column{Title: "FILE", MinWidth: minFileWidth, Flex: true, KeepEnd: true})
	}
	tbl.Columns = append(tbl.Columns,
		pretty.Column{Title: "LINE", AlignRight: true},
		pretty.Column{Title: "RULE"},
		pretty.Column{Title: "MESSAGE", MinWidth: minMessageWidth, Flex: true},
	)

	for _, file := range result.Files {
		if file.Report == nil {
			continue
		}
		for _, diag := range file.Report.Diagnostics {
			var row []string
			if withFile {
				row = append(row, file.Path)
			}
			row = append(row,
				strconv.Itoa(diag.Line),
				config.FormatRuleID(ruleFormat, diag.RuleID, diag.RuleName),
				diag.Message,
			)
			tbl.Rows = append(tbl.Rows, row)
		}
	}

	return tbl
}
