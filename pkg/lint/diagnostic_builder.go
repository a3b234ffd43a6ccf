package lint

// DiagnosticBuilder helps construct Diagnostic values.
type DiagnosticBuilder struct {
	diag Diagnostic
}

// NewDiagnostic starts building a diagnostic for the given rule and line.
func NewDiagnostic(ruleID string, line int, message string) *DiagnosticBuilder {
	return &DiagnosticBuilder{
		diag: Diagnostic{
			RuleID:  ruleID,
			Line:    line,
			Message: message,
		},
	}
}

// WithRuleName sets the human-readable rule name.
func (b *DiagnosticBuilder) WithRuleName(name string) *DiagnosticBuilder {
	b.diag.RuleName = name
	return b
}

// WithFile sets the file path.
func (b *DiagnosticBuilder) WithFile(path string) *DiagnosticBuilder {
	b.diag.FilePath = path
	return b
}

// WithSuggestion sets a human-readable fix suggestion.
func (b *DiagnosticBuilder) WithSuggestion(s string) *DiagnosticBuilder {
	b.diag.Suggestion = s
	return b
}

// Build returns the constructed Diagnostic.
func (b *DiagnosticBuilder) Build() Diagnostic {
	return b.diag
}
