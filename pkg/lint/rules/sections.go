package rules

import (
	"fmt"
	"regexp"
	"slices"

	"github.com/yaklabco/apidirlint/pkg/lint"
	"github.com/yaklabco/apidirlint/pkg/listing"
)

// SectionHeaderFormatRule checks that a header is the anchor, one space, and one word.
type SectionHeaderFormatRule struct {
	lint.BaseSectionRule
}

// NewSectionHeaderFormatRule creates a new section header format rule.
func NewSectionHeaderFormatRule() *SectionHeaderFormatRule {
	return &SectionHeaderFormatRule{
		BaseSectionRule: lint.BaseSectionRule{BaseRule: lint.NewBaseRule(
			"DL001",
			"section-header-format",
			"Section headers must be the anchor followed by one space and a single word",
			[]string{"section", "header"},
		)},
	}
}

// OpenSection checks the raw header line.
func (r *SectionHeaderFormatRule) OpenSection(ctx *lint.RuleContext, section *listing.Section) []lint.Diagnostic {
	pattern := regexp.MustCompile(`^` + regexp.QuoteMeta(ctx.Config.Anchor) + ` \S+$`)
	if pattern.MatchString(section.Header) {
		return nil
	}

	diag := r.Diag(section.Line, "section header is not formatted correctly")
	if section.Name != "" {
		diag.WithSuggestion(ctx.Config.Anchor + " " + section.Name)
	}
	return []lint.Diagnostic{diag.Build()}
}

// SectionMinEntriesRule checks that a section holds enough rows.
type SectionMinEntriesRule struct {
	lint.BaseSectionRule
}

// NewSectionMinEntriesRule creates a new section minimum entries rule.
func NewSectionMinEntriesRule() *SectionMinEntriesRule {
	return &SectionMinEntriesRule{
		BaseSectionRule: lint.BaseSectionRule{BaseRule: lint.NewBaseRule(
			"DL002",
			"section-min-entries",
			"Sections must contain the minimum number of entries",
			[]string{"section"},
		)},
	}
}

// CloseSection counts the rows of a finished section.
func (r *SectionMinEntriesRule) CloseSection(ctx *lint.RuleContext, section *listing.Section) []lint.Diagnostic {
	count := len(section.Rows)
	if count >= ctx.Config.MinEntries {
		return nil
	}

	msg := fmt.Sprintf("%s section does not have the minimum %d entries (only has %d)",
		section.Name, ctx.Config.MinEntries, count)
	return []lint.Diagnostic{r.Diag(section.Line, msg).Build()}
}

// SectionAlphabeticalRule checks that entries are sorted by title.
type SectionAlphabeticalRule struct {
	lint.BaseRule
}

// NewSectionAlphabeticalRule creates a new section alphabetical order rule.
func NewSectionAlphabeticalRule() *SectionAlphabeticalRule {
	return &SectionAlphabeticalRule{
		BaseRule: lint.NewBaseRule(
			"DL003",
			"section-alphabetical",
			"Entries in a section must be in alphabetical order by title",
			[]string{"section", "order"},
		),
	}
}

// CheckDocument compares each section's title keys with their sorted order.
// Comparison is byte-wise, which for UTF-8 is code point order.
func (r *SectionAlphabeticalRule) CheckDocument(ctx *lint.RuleContext) []lint.Diagnostic {
	var diags []lint.Diagnostic

	for _, section := range ctx.Document.Sections {
		titles := section.Titles()
		for i := range titles {
			titles[i] = listing.SortKey(titles[i])
		}

		sorted := slices.Clone(titles)
		slices.Sort(sorted)

		idx := firstMismatch(titles, sorted)
		if idx < 0 {
			continue
		}

		msg := fmt.Sprintf("%s section is not in alphabetical order", section.Name)
		diag := r.Diag(section.Line, msg).WithSuggestion(
			fmt.Sprintf("line %d: expected %q, found %q", section.Rows[idx].Line, sorted[idx], titles[idx]))
		diags = append(diags, diag.Build())
	}

	return diags
}

func firstMismatch(a, b []string) int {
	for i := range a {
		if a[i] != b[i] {
			return i
		}
	}
	return -1
}
