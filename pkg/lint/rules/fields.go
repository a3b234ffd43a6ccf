package rules

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/yaklabco/apidirlint/pkg/lint"
	"github.com/yaklabco/apidirlint/pkg/listing"
)

// authExempt is the Auth value that needs no backticks.
const authExempt = "No"

// RowColumnsRule checks that a row has one cell per field.
type RowColumnsRule struct {
	lint.BaseRule
}

// NewRowColumnsRule creates a new row column count rule.
func NewRowColumnsRule() *RowColumnsRule {
	return &RowColumnsRule{
		BaseRule: lint.NewBaseRule(
			"DL004",
			"row-columns",
			"Rows must have exactly 6 columns",
			[]string{"row"},
		),
	}
}

// CheckRow counts the row's cells.
func (r *RowColumnsRule) CheckRow(_ *lint.RuleContext, row *listing.Row) []lint.Diagnostic {
	if len(row.Cells) == listing.FieldCount {
		return nil
	}
	msg := fmt.Sprintf("row must have exactly %d columns (has %d)", listing.FieldCount, len(row.Cells))
	return []lint.Diagnostic{r.Diag(row.Line, msg).Build()}
}

// CellSpacingRule checks the padding around every cell.
type CellSpacingRule struct {
	lint.BaseRule
}

// NewCellSpacingRule creates a new cell spacing rule.
func NewCellSpacingRule() *CellSpacingRule {
	return &CellSpacingRule{
		BaseRule: lint.NewBaseRule(
			"DL005",
			"cell-spacing",
			"Each cell must start and end with exactly one space",
			[]string{"row", "whitespace"},
		),
	}
}

// CheckRow reports once per badly padded cell.
func (r *CellSpacingRule) CheckRow(_ *lint.RuleContext, row *listing.Row) []lint.Diagnostic {
	var diags []lint.Diagnostic
	for i, segment := range row.Segments {
		leading := len(segment) - len(strings.TrimLeftFunc(segment, unicode.IsSpace))
		trailing := len(segment) - len(strings.TrimRightFunc(segment, unicode.IsSpace))
		if leading == 1 && trailing == 1 {
			continue
		}
		diags = append(diags, r.Diag(row.Line, "each segment must start and end with exactly 1 space").
			WithSuggestion(fmt.Sprintf("cell %d: %q", i+1, " "+row.Cells[i]+" ")).
			Build())
	}
	return diags
}

// TitleNoAPIRule checks that titles do not end with the word API.
type TitleNoAPIRule struct {
	lint.BaseRule
}

// NewTitleNoAPIRule creates a new title rule.
func NewTitleNoAPIRule() *TitleNoAPIRule {
	return &TitleNoAPIRule{
		BaseRule: lint.NewBaseRule(
			"DL006",
			"title-no-api",
			`Titles must not end with "API"`,
			[]string{"row", "title"},
		),
	}
}

// CheckRow checks the Title cell.
func (r *TitleNoAPIRule) CheckRow(_ *lint.RuleContext, row *listing.Row) []lint.Diagnostic {
	title, ok := row.Cell(listing.FieldTitle)
	if !ok || !strings.HasSuffix(strings.ToUpper(title), " API") {
		return nil
	}
	return []lint.Diagnostic{r.Diag(row.Line, `Title should not contain "API"`).Build()}
}

// DescriptionCapitalizedRule checks the first character of a description.
type DescriptionCapitalizedRule struct {
	lint.BaseRule
}

// NewDescriptionCapitalizedRule creates a new description capitalization rule.
func NewDescriptionCapitalizedRule() *DescriptionCapitalizedRule {
	return &DescriptionCapitalizedRule{
		BaseRule: lint.NewBaseRule(
			"DL007",
			"description-capitalized",
			"Descriptions must start with a capital letter",
			[]string{"row", "description"},
		),
	}
}

// CheckRow checks the Description cell.
func (r *DescriptionCapitalizedRule) CheckRow(_ *lint.RuleContext, row *listing.Row) []lint.Diagnostic {
	desc, ok := row.Cell(listing.FieldDescription)
	if !ok || desc == "" {
		return nil
	}

	first, size := utf8.DecodeRuneInString(desc)
	char := string(first)
	upper := strings.ToUpper(char)
	if upper == char {
		return nil
	}

	return []lint.Diagnostic{r.Diag(row.Line, "first character of description is not capitalized").
		WithSuggestion(upper + desc[size:]).
		Build()}
}

// DescriptionPunctuationRule checks the last character of a description.
type DescriptionPunctuationRule struct {
	lint.BaseRule
}

// NewDescriptionPunctuationRule creates a new description punctuation rule.
func NewDescriptionPunctuationRule() *DescriptionPunctuationRule {
	return &DescriptionPunctuationRule{
		BaseRule: lint.NewBaseRule(
			"DL008",
			"description-no-punctuation",
			"Descriptions must not end with terminal punctuation",
			[]string{"row", "description"},
		),
	}
}

// CheckRow checks the Description cell.
func (r *DescriptionPunctuationRule) CheckRow(ctx *lint.RuleContext, row *listing.Row) []lint.Diagnostic {
	desc, ok := row.Cell(listing.FieldDescription)
	if !ok || desc == "" {
		return nil
	}

	last, size := utf8.DecodeLastRuneInString(desc)
	char := string(last)
	if !slices.Contains(ctx.Config.Punctuation, char) {
		return nil
	}

	return []lint.Diagnostic{r.Diag(row.Line, "description should not end with "+char).
		WithSuggestion(desc[:len(desc)-size]).
		Build()}
}

// AuthBackticksRule checks that Auth values are code-quoted.
type AuthBackticksRule struct {
	lint.BaseRule
}

// NewAuthBackticksRule creates a new Auth quoting rule.
func NewAuthBackticksRule() *AuthBackticksRule {
	return &AuthBackticksRule{
		BaseRule: lint.NewBaseRule(
			"DL009",
			"auth-backticks",
			`Auth values other than "No" must be enclosed in backticks`,
			[]string{"row", "auth"},
		),
	}
}

// CheckRow checks the Auth cell.
func (r *AuthBackticksRule) CheckRow(_ *lint.RuleContext, row *listing.Row) []lint.Diagnostic {
	auth, ok := row.Cell(listing.FieldAuth)
	if !ok || auth == authExempt {
		return nil
	}
	if strings.HasPrefix(auth, "`") && strings.HasSuffix(auth, "`") {
		return nil
	}

	return []lint.Diagnostic{r.Diag(row.Line, "auth value is not enclosed with `backticks`").
		WithSuggestion("`" + strings.Trim(auth, "`") + "`").
		Build()}
}

// AuthValueRule checks Auth against the accepted values.
type AuthValueRule struct {
	lint.BaseRule
}

// NewAuthValueRule creates a new Auth value rule.
func NewAuthValueRule() *AuthValueRule {
	return &AuthValueRule{
		BaseRule: lint.NewBaseRule(
			"DL010",
			"auth-value",
			"Auth must be one of the accepted values",
			[]string{"row", "auth", "enum"},
		),
	}
}

// CheckRow checks the Auth cell.
func (r *AuthValueRule) CheckRow(ctx *lint.RuleContext, row *listing.Row) []lint.Diagnostic {
	auth, ok := row.Cell(listing.FieldAuth)
	if !ok || slices.Contains(ctx.Config.AuthValues, strings.ReplaceAll(auth, "`", "")) {
		return nil
	}
	return enumDiag(&r.BaseRule, row.Line, auth, "Auth", ctx.Config.AuthValues)
}

// HTTPSValueRule checks HTTPS against the accepted values.
type HTTPSValueRule struct {
	lint.BaseRule
}

// NewHTTPSValueRule creates a new HTTPS value rule.
func NewHTTPSValueRule() *HTTPSValueRule {
	return &HTTPSValueRule{
		BaseRule: lint.NewBaseRule(
			"DL011",
			"https-value",
			"HTTPS must be one of the accepted values",
			[]string{"row", "https", "enum"},
		),
	}
}

// CheckRow checks the HTTPS cell.
func (r *HTTPSValueRule) CheckRow(ctx *lint.RuleContext, row *listing.Row) []lint.Diagnostic {
	https, ok := row.Cell(listing.FieldHTTPS)
	if !ok || slices.Contains(ctx.Config.HTTPSValues, https) {
		return nil
	}
	return enumDiag(&r.BaseRule, row.Line, https, "HTTPS", ctx.Config.HTTPSValues)
}

// CORSValueRule checks CORS against the accepted values.
type CORSValueRule struct {
	lint.BaseRule
}

// NewCORSValueRule creates a new CORS value rule.
func NewCORSValueRule() *CORSValueRule {
	return &CORSValueRule{
		BaseRule: lint.NewBaseRule(
			"DL012",
			"cors-value",
			"CORS must be one of the accepted values",
			[]string{"row", "cors", "enum"},
		),
	}
}

// CheckRow checks the CORS cell.
func (r *CORSValueRule) CheckRow(ctx *lint.RuleContext, row *listing.Row) []lint.Diagnostic {
	cors, ok := row.Cell(listing.FieldCORS)
	if !ok || slices.Contains(ctx.Config.CORSValues, cors) {
		return nil
	}
	return enumDiag(&r.BaseRule, row.Line, cors, "CORS", ctx.Config.CORSValues)
}

func enumDiag(rule *lint.BaseRule, line int, value, field string, accepted []string) []lint.Diagnostic {
	return []lint.Diagnostic{rule.Diag(line, fmt.Sprintf("%s is not a valid %s option", value, field)).
		WithSuggestion("one of: " + strings.Join(accepted, ", ")).
		Build()}
}

// LinkSyntaxRule checks the Link cell markup.
type LinkSyntaxRule struct {
	lint.BaseRule
}

// NewLinkSyntaxRule creates a new link syntax rule.
func NewLinkSyntaxRule() *LinkSyntaxRule {
	return &LinkSyntaxRule{
		BaseRule: lint.NewBaseRule(
			"DL013",
			"link-syntax",
			`Links must use the "[Go!](LINK)" markup`,
			[]string{"row", "link"},
		),
	}
}

// CheckRow checks the Link cell.
func (r *LinkSyntaxRule) CheckRow(ctx *lint.RuleContext, row *listing.Row) []lint.Diagnostic {
	link, ok := row.Cell(listing.FieldLink)
	if !ok {
		return nil
	}
	if strings.HasPrefix(link, ctx.Config.LinkPrefix) && strings.HasSuffix(link, ctx.Config.LinkSuffix) {
		return nil
	}

	diag := r.Diag(row.Line, `link syntax should be "[Go!](LINK)"`)
	switch parsed, found := listing.ParseLink(link); {
	case found && parsed.Destination != "":
		diag.WithSuggestion(fmt.Sprintf("[Go!](%s)", parsed.Destination))
	case strings.HasPrefix(link, "http") && !strings.ContainsAny(link, " ()[]"):
		diag.WithSuggestion(fmt.Sprintf("[Go!](%s)", link))
	}
	return []lint.Diagnostic{diag.Build()}
}
