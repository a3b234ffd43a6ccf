package lint

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/apidirlint/pkg/config"
	"github.com/yaklabco/apidirlint/pkg/listing"
)

// traceRule reports one diagnostic per hook invocation so tests can assert
// the order in which the engine calls hooks.
type traceRule struct {
	BaseRule
}

func newTraceRule(id string) *traceRule {
	return &traceRule{BaseRule: NewBaseRule(id, "trace-"+id, "trace", nil)}
}

func (r *traceRule) CheckDocument(ctx *RuleContext) []Diagnostic {
	return []Diagnostic{r.Diag(0, fmt.Sprintf("%s doc sections=%d", r.ID(), len(ctx.Document.Sections))).Build()}
}

func (r *traceRule) OpenSection(_ *RuleContext, s *listing.Section) []Diagnostic {
	return []Diagnostic{r.Diag(s.Line, r.ID()+" open "+s.Name).Build()}
}

func (r *traceRule) CloseSection(_ *RuleContext, s *listing.Section) []Diagnostic {
	return []Diagnostic{r.Diag(s.Line, r.ID()+" close "+s.Name).Build()}
}

func (r *traceRule) CheckRow(_ *RuleContext, row *listing.Row) []Diagnostic {
	return []Diagnostic{r.Diag(row.Line, fmt.Sprintf("%s row %d", r.ID(), row.Line)).Build()}
}

func messages(report *Report) []string {
	out := make([]string, 0, len(report.Diagnostics))
	for _, d := range report.Diagnostics {
		out = append(out, d.Message)
	}
	return out
}

const traceInput = "| pre |\n### A\n| a1 |\n### B\n| b1 |\n"

func TestEngine_HookOrder(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register(newTraceRule("T2"))
	reg.Register(newTraceRule("T1"))

	report, err := NewEngine(reg).Lint(context.Background(), "x.md", []byte(traceInput), nil)
	require.NoError(t, err)

	want := []string{
		"T1 doc sections=2",
		"T2 doc sections=2",
		"T1 row 1",
		"T2 row 1",
		"T1 open A",
		"T2 open A",
		"T1 row 3",
		"T2 row 3",
		"T1 open B",
		"T2 open B",
		"T1 close A",
		"T2 close A",
		"T1 row 5",
		"T2 row 5",
	}
	assert.Equal(t, want, messages(report))

	assert.Equal(t, "x.md", report.Path)
	assert.Equal(t, 2, report.Sections)
	assert.Equal(t, 3, report.Rows)
	for _, d := range report.Diagnostics {
		assert.Equal(t, "x.md", d.FilePath)
	}
}

func TestEngine_CheckLastSection(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register(newTraceRule("T1"))

	cfg := config.NewConfig()
	cfg.CheckLastSection = true

	report, err := NewEngine(reg).Lint(context.Background(), "", []byte(traceInput), cfg)
	require.NoError(t, err)

	msgs := messages(report)
	require.NotEmpty(t, msgs)
	assert.Equal(t, "T1 close B", msgs[len(msgs)-1])
}

func TestEngine_DisabledRule(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register(newTraceRule("T1"))
	reg.Register(newTraceRule("T2"))

	cfg := config.NewConfig()
	cfg.DisableRules = []string{"trace-T1"}

	report, err := NewEngine(reg).Lint(context.Background(), "", []byte(traceInput), cfg)
	require.NoError(t, err)

	for _, d := range report.Diagnostics {
		assert.Equal(t, "T2", d.RuleID)
	}
	assert.Equal(t, map[string]int{"T2": report.IssueCount()}, report.CountByRule())
}

func TestEngine_EmptyDocument(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register(newTraceRule("T1"))

	report, err := NewEngine(reg).Lint(context.Background(), "", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"T1 doc sections=0"}, messages(report))
}

func TestEngine_Cancelled(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register(newTraceRule("T1"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewEngine(reg).Lint(ctx, "", []byte(traceInput), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReport_NilSafe(t *testing.T) {
	t.Parallel()

	var report *Report
	assert.False(t, report.HasIssues())
	assert.Zero(t, report.IssueCount())
	assert.Empty(t, report.CountByRule())
}

func TestDiagnosticBuilder(t *testing.T) {
	t.Parallel()

	diag := NewDiagnostic("DL013", 7, "bad link").
		WithRuleName("link-syntax").
		WithFile("README.md").
		WithSuggestion("[Go!](https://x)").
		Build()

	assert.Equal(t, Diagnostic{
		RuleID:     "DL013",
		RuleName:   "link-syntax",
		Message:    "bad link",
		FilePath:   "README.md",
		Line:       7,
		Suggestion: "[Go!](https://x)",
	}, diag)
}

func TestNewRuleContext_Defaults(t *testing.T) {
	t.Parallel()

	//nolint:staticcheck // nil context is handled explicitly
	rc := NewRuleContext(nil, &listing.Document{}, nil)
	require.NotNil(t, rc.Ctx)
	require.NotNil(t, rc.Config)
	assert.Equal(t, config.DefaultAnchor, rc.Config.Anchor)
	assert.False(t, rc.Cancelled())
}
