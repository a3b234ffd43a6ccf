// Package lint provides the rule engine, diagnostics, and registry for apidirlint.
package lint

import "github.com/yaklabco/apidirlint/pkg/listing"

// Diagnostic represents a single violation found in a document.
type Diagnostic struct {
	// RuleID is the identifier of the rule that produced this diagnostic.
	RuleID string

	// RuleName is the human-readable name of the rule (e.g., "link-syntax").
	RuleName string

	// Message is the human-readable description of the issue.
	Message string

	// FilePath is the path to the file containing the issue.
	FilePath string

	// Line is the 1-based line number the issue is attributed to.
	Line int

	// Suggestion is an optional human-readable fix suggestion.
	// It is carried by structured output only.
	Suggestion string
}

// Rule describes a check. Every rule also implements at least one of
// DocumentRule, SectionRule, or RowRule; the engine calls the hooks it finds.
type Rule interface {
	// ID returns the unique identifier for this rule (e.g., "DL001").
	ID() string

	// Name returns the human-readable name of the rule.
	Name() string

	// Description returns a short description of what the rule checks.
	Description() string

	// Tags returns categorization tags for this rule (e.g., ["section"]).
	Tags() []string
}

// DocumentRule inspects the whole document before the line scan.
type DocumentRule interface {
	Rule

	CheckDocument(ctx *RuleContext) []Diagnostic
}

// SectionRule observes section boundaries during the line scan.
type SectionRule interface {
	Rule

	// OpenSection runs when the scan reaches a section header.
	OpenSection(ctx *RuleContext, section *listing.Section) []Diagnostic

	// CloseSection runs for the previous section after every OpenSection
	// hook of the header that closes it. The final section is closed only
	// when the configuration asks for it.
	CloseSection(ctx *RuleContext, section *listing.Section) []Diagnostic
}

// RowRule validates a single table row.
type RowRule interface {
	Rule

	CheckRow(ctx *RuleContext, row *listing.Row) []Diagnostic
}
