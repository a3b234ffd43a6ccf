package lint

import "github.com/yaklabco/apidirlint/pkg/listing"

// BaseRule provides the identity half of the Rule interface.
// Embed this in rule implementations.
//
// Fields are unexported to avoid stutter and name collisions with interface methods.
type BaseRule struct {
	id   string   // Unique identifier (e.g., "DL001")
	name string   // Human-readable name
	desc string   // Short description
	tags []string // Categorization tags
}

// NewBaseRule creates a BaseRule with the given properties.
func NewBaseRule(id, name, desc string, tags []string) BaseRule {
	return BaseRule{
		id:   id,
		name: name,
		desc: desc,
		tags: tags,
	}
}

// ID returns the unique identifier for this rule.
func (r *BaseRule) ID() string {
	return r.id
}

// Name returns the human-readable name of the rule.
func (r *BaseRule) Name() string {
	return r.name
}

// Description returns a short description of what the rule checks.
func (r *BaseRule) Description() string {
	return r.desc
}

// Tags returns categorization tags for this rule.
func (r *BaseRule) Tags() []string {
	return r.tags
}

// Diag builds a diagnostic attributed to this rule.
func (r *BaseRule) Diag(line int, message string) *DiagnosticBuilder {
	return NewDiagnostic(r.id, line, message).WithRuleName(r.name)
}

// BaseSectionRule supplies no-op section hooks so a rule only overrides
// the one it needs.
type BaseSectionRule struct {
	BaseRule
}

// OpenSection returns no diagnostics.
func (r *BaseSectionRule) OpenSection(_ *RuleContext, _ *listing.Section) []Diagnostic {
	return nil
}

// CloseSection returns no diagnostics.
func (r *BaseSectionRule) CloseSection(_ *RuleContext, _ *listing.Section) []Diagnostic {
	return nil
}
