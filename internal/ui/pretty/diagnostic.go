package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/apidirlint/pkg/config"
	"github.com/yaklabco/apidirlint/pkg/lint"
)

// LineTag renders a line number as the zero-padded "(L###)" prefix.
func LineTag(line int) string {
	return fmt.Sprintf("(L%03d)", line)
}

// FormatDiagnostic renders a diagnostic as "(L###) message".
// With color disabled the output is exactly the plain protocol line.
func (s *Styles) FormatDiagnostic(diag *lint.Diagnostic) string {
	return s.Location.Render(LineTag(diag.Line)) + " " + s.Message.Render(diag.Message) + "\n"
}

// FormatDiagnosticDetail renders the rule identifier and suggestion of a
// diagnostic on an indented line, or "" when there is nothing to add.
func (s *Styles) FormatDiagnosticDetail(diag *lint.Diagnostic, ruleFormat config.RuleFormat) string {
	var builder strings.Builder

	builder.WriteString("       ")
	builder.WriteString(s.RuleID.Render(config.FormatRuleID(ruleFormat, diag.RuleID, diag.RuleName)))
	if diag.Suggestion != "" {
		builder.WriteString(" " + s.Dim.Render("suggestion:") + " " + s.Suggestion.Render(diag.Suggestion))
	}
	builder.WriteString("\n")

	return builder.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, issueCount int) string {
	header := s.FilePath.Render(path)
	if issueCount > 0 {
		header += s.Dim.Render(fmt.Sprintf(" (%d %s)", issueCount, plural(issueCount, "issue", "issues")))
	}
	return header
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
