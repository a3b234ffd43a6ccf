package lint

import (
	"context"
	"fmt"

	"github.com/yaklabco/apidirlint/pkg/config"
	"github.com/yaklabco/apidirlint/pkg/listing"
)

// Engine runs registered rules over a parsed document.
type Engine struct {
	// Registry holds all available rules.
	Registry *Registry
}

// NewEngine creates a new Engine with the given registry.
func NewEngine(registry *Registry) *Engine {
	return &Engine{Registry: registry}
}

// Lint parses content and validates it.
func (e *Engine) Lint(ctx context.Context, path string, content []byte, cfg *config.Config) (*Report, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	doc := listing.Parse(path, content, cfg.Anchor)
	return e.Run(ctx, doc, cfg)
}

// Run validates a parsed document.
//
// Diagnostics are produced in two passes over the same section list:
// document rules first, then a scan in line order where each header runs
// the section open hooks, closes the previous section, and is followed by
// the row rules for each of its rows.
func (e *Engine) Run(ctx context.Context, doc *listing.Document, cfg *config.Config) (*Report, error) {
	ruleCtx := NewRuleContext(ctx, doc, cfg)
	report := &Report{
		Path:     doc.Path,
		Sections: len(doc.Sections),
		Rows:     doc.RowCount(),
	}

	var (
		docRules     []DocumentRule
		sectionRules []SectionRule
		rowRules     []RowRule
	)
	for _, rule := range e.Registry.Enabled(ruleCtx.Config) {
		if r, ok := rule.(DocumentRule); ok {
			docRules = append(docRules, r)
		}
		if r, ok := rule.(SectionRule); ok {
			sectionRules = append(sectionRules, r)
		}
		if r, ok := rule.(RowRule); ok {
			rowRules = append(rowRules, r)
		}
	}

	for _, rule := range docRules {
		report.add(doc.Path, rule.CheckDocument(ruleCtx))
	}

	checkRows := func(rows []*listing.Row) error {
		for _, row := range rows {
			if ruleCtx.Cancelled() {
				return fmt.Errorf("lint cancelled: %w", ruleCtx.Ctx.Err())
			}
			for _, rule := range rowRules {
				report.add(doc.Path, rule.CheckRow(ruleCtx, row))
			}
		}
		return nil
	}

	if err := checkRows(doc.Preamble); err != nil {
		return report, err
	}

	var prev *listing.Section
	for _, section := range doc.Sections {
		for _, rule := range sectionRules {
			report.add(doc.Path, rule.OpenSection(ruleCtx, section))
		}
		if prev != nil {
			for _, rule := range sectionRules {
				report.add(doc.Path, rule.CloseSection(ruleCtx, prev))
			}
		}
		if err := checkRows(section.Rows); err != nil {
			return report, err
		}
		prev = section
	}

	if prev != nil && ruleCtx.Config.CheckLastSection {
		for _, rule := range sectionRules {
			report.add(doc.Path, rule.CloseSection(ruleCtx, prev))
		}
	}

	return report, nil
}
