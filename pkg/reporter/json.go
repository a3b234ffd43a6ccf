package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/apidirlint/pkg/runner"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	File        string           `json:"file"`
	Sections    int              `json:"sections"`
	Rows        int              `json:"rows"`
	Diagnostics []JSONDiagnostic `json:"diagnostics"`
	Error       string           `json:"error,omitempty"`
}

// JSONDiagnostic represents a single diagnostic.
type JSONDiagnostic struct {
	Line       int    `json:"line"`
	RuleID     string `json:"ruleId"`
	RuleName   string `json:"ruleName"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked    int            `json:"filesChecked"`
	FilesWithIssues int            `json:"filesWithIssues"`
	FilesErrored    int            `json:"filesErrored"`
	TotalIssues     int            `json:"totalIssues"`
	ByRule          map[string]int `json:"byRule"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := BuildJSONOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.TotalIssues, nil
}

// BuildJSONOutput converts a runner result to its JSON document.
func BuildJSONOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Files: make([]JSONFileResult, 0),
		Summary: JSONSummary{
			ByRule: make(map[string]int),
		},
	}

	if result == nil {
		return output
	}

	for _, file := range result.Files {
		fileResult := JSONFileResult{
			File:        file.Path,
			Diagnostics: make([]JSONDiagnostic, 0),
		}

		if file.Error != nil {
			fileResult.Error = file.Error.Error()
		}

		if file.Report != nil {
			fileResult.Sections = file.Report.Sections
			fileResult.Rows = file.Report.Rows
			for _, diag := range file.Report.Diagnostics {
				fileResult.Diagnostics = append(fileResult.Diagnostics, JSONDiagnostic{
					Line:       diag.Line,
					RuleID:     diag.RuleID,
					RuleName:   diag.RuleName,
					Message:    diag.Message,
					Suggestion: diag.Suggestion,
				})
			}
		}

		output.Files = append(output.Files, fileResult)
	}

	output.Summary.FilesChecked = result.Stats.FilesProcessed
	output.Summary.FilesWithIssues = result.Stats.FilesWithIssues
	output.Summary.FilesErrored = result.Stats.FilesErrored
	output.Summary.TotalIssues = result.Stats.DiagnosticsTotal
	for id, n := range result.Stats.DiagnosticsByRule {
		output.Summary.ByRule[id] = n
	}

	return output
}
