package runner

import (
	"errors"

	"github.com/yaklabco/apidirlint/pkg/lint"
)

// FileOutcome is the result of validating one path.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Report holds the diagnostics for this file.
	// It is nil if the file could not be read.
	Report *lint.Report

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesProcessed is the number of files successfully validated.
	FilesProcessed int

	// FilesErrored is the number of files that could not be read.
	FilesErrored int

	// FilesWithIssues is the number of files with at least one diagnostic.
	FilesWithIssues int

	// Sections is the number of sections across all files.
	Sections int

	// Rows is the number of table rows across all files.
	Rows int

	// DiagnosticsTotal is the total number of diagnostics across all files.
	DiagnosticsTotal int

	// DiagnosticsByRule maps rule IDs to counts.
	DiagnosticsByRule map[string]int
}

// Result is the overall runner result.
type Result struct {
	// Files holds one outcome per requested path, in request order.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasIssues reports whether any diagnostics were found.
func (r *Result) HasIssues() bool {
	if r == nil {
		return false
	}
	return r.Stats.DiagnosticsTotal > 0
}

// Err joins the errors of every file that could not be processed.
func (r *Result) Err() error {
	if r == nil {
		return nil
	}
	var errs []error
	for _, outcome := range r.Files {
		if outcome.Error != nil {
			errs = append(errs, outcome.Error)
		}
	}
	return errors.Join(errs...)
}

// Reports returns the reports of every successfully processed file.
func (r *Result) Reports() []*lint.Report {
	if r == nil {
		return nil
	}
	reports := make([]*lint.Report, 0, len(r.Files))
	for _, outcome := range r.Files {
		if outcome.Report != nil {
			reports = append(reports, outcome.Report)
		}
	}
	return reports
}

func newStats() Stats {
	return Stats{
		DiagnosticsByRule: make(map[string]int),
	}
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}
	if outcome.Report == nil {
		return
	}

	r.Stats.FilesProcessed++
	r.Stats.Sections += outcome.Report.Sections
	r.Stats.Rows += outcome.Report.Rows
	r.Stats.DiagnosticsTotal += outcome.Report.IssueCount()

	if outcome.Report.HasIssues() {
		r.Stats.FilesWithIssues++
	}
	for id, n := range outcome.Report.CountByRule() {
		r.Stats.DiagnosticsByRule[id] += n
	}
}
