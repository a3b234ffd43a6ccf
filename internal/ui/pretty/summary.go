package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/apidirlint/pkg/runner"
)

// FormatSummaryOneLine formats run statistics as a single status line.
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	files := stats.FilesProcessed + stats.FilesErrored
	scope := fmt.Sprintf("%d %s, %d %s, %d %s",
		files, plural(files, "file", "files"),
		stats.Sections, plural(stats.Sections, "section", "sections"),
		stats.Rows, plural(stats.Rows, "row", "rows"),
	)

	var parts []string
	if stats.DiagnosticsTotal == 0 && stats.FilesErrored == 0 {
		parts = append(parts, s.Success.Render("✓ no issues"))
	} else {
		if stats.DiagnosticsTotal > 0 {
			parts = append(parts, s.Failure.Render(fmt.Sprintf("✗ %d %s",
				stats.DiagnosticsTotal, plural(stats.DiagnosticsTotal, "issue", "issues"))))
		}
		if stats.FilesErrored > 0 {
			parts = append(parts, s.Failure.Render(fmt.Sprintf("%d unreadable", stats.FilesErrored)))
		}
	}
	parts = append(parts, s.Dim.Render(scope))

	return strings.Join(parts, "  ") + "\n"
}
