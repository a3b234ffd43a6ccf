package pretty_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/apidirlint/internal/ui/pretty"
	"github.com/yaklabco/apidirlint/pkg/config"
	"github.com/yaklabco/apidirlint/pkg/lint"
	"github.com/yaklabco/apidirlint/pkg/runner"
)

func TestNewStyles_ColorDisabled(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	require.NotNil(t, styles)

	// With color disabled, styles should return unmodified text
	assert.Equal(t, "test", styles.Bold.Render("test"))
	assert.Equal(t, "test", styles.Location.Render("test"))
	assert.Equal(t, "test", styles.Failure.Render("test"))
}

func TestNewStyles_ColorEnabled(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(true)
	require.NotNil(t, styles)

	for _, rendered := range []string{
		styles.Location.Render("x"),
		styles.Message.Render("x"),
		styles.RuleID.Render("x"),
		styles.FilePath.Render("x"),
		styles.Suggestion.Render("x"),
		styles.Success.Render("x"),
		styles.Failure.Render("x"),
		styles.TableHeader.Render("x"),
		styles.TableBorder.Render("x"),
		styles.TableHighlight.Render("x"),
		styles.Dim.Render("x"),
		styles.Bold.Render("x"),
	} {
		assert.Contains(t, rendered, "x")
	}
}

func TestIsColorEnabled_AlwaysMode(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	assert.True(t, pretty.IsColorEnabled("always", &buf))
}

func TestIsColorEnabled_NeverMode(t *testing.T) {
	t.Parallel()

	assert.False(t, pretty.IsColorEnabled("never", os.Stdout))
}

func TestIsColorEnabled_AutoMode_NonTTY(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	assert.False(t, pretty.IsColorEnabled("auto", &buf))
}

func TestIsColorEnabled_AutoMode_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	// Even with a TTY, NO_COLOR should disable colors
	assert.False(t, pretty.IsColorEnabled("auto", os.Stdout))
}

func TestIsColorEnabled_DefaultsToAuto(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	var buf bytes.Buffer
	assert.False(t, pretty.IsColorEnabled("", &buf))
	assert.False(t, pretty.IsColorEnabled("unknown", &buf))
}

func TestTerminalWidth_NonTTY(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	assert.Equal(t, pretty.DefaultTermWidth, pretty.TerminalWidth(&buf))
}

func TestFormatDiagnostic(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	diag := lint.NewDiagnostic("DL011", 7, "Maybe is not a valid HTTPS option").
		WithRuleName("https-value").
		WithSuggestion("one of: Yes, No").
		Build()

	assert.Equal(t, "(L007) Maybe is not a valid HTTPS option\n", styles.FormatDiagnostic(&diag))
	assert.Equal(t, "(L1234) x\n", styles.FormatDiagnostic(&lint.Diagnostic{Line: 1234, Message: "x"}))

	detail := styles.FormatDiagnosticDetail(&diag, config.RuleFormatCombined)
	assert.Contains(t, detail, "DL011/https-value")
	assert.Contains(t, detail, "suggestion: one of: Yes, No")
}

func TestFormatFileHeader(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	assert.Equal(t, "README.md (1 issue)", styles.FormatFileHeader("README.md", 1))
	assert.Equal(t, "README.md (3 issues)", styles.FormatFileHeader("README.md", 3))
	assert.Equal(t, "README.md", styles.FormatFileHeader("README.md", 0))
}

func TestFormatSummaryOneLine(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	clean := styles.FormatSummaryOneLine(runner.Stats{FilesProcessed: 1, Sections: 2, Rows: 6})
	assert.Equal(t, "✓ no issues  1 file, 2 sections, 6 rows\n", clean)

	dirty := styles.FormatSummaryOneLine(runner.Stats{
		FilesProcessed:   1,
		FilesErrored:     1,
		Sections:         1,
		Rows:             1,
		DiagnosticsTotal: 4,
	})
	assert.Equal(t, "✗ 4 issues  1 unreadable  2 files, 1 section, 1 row\n", dirty)
}

func TestTableFormatter(t *testing.T) {
	t.Parallel()

	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), 0)
	out := formatter.Format(pretty.Table{
		Columns: []pretty.Column{
			{Title: "SECTION"},
			{Title: "ROWS", AlignRight: true},
		},
		Rows: [][]string{
			{"Animals", "3"},
			{"Books", "12"},
		},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, " SECTION  ROWS", lines[0])
	assert.Equal(t, strings.Repeat("=", 15), lines[1])
	assert.Equal(t, " Animals     3", lines[2])
	assert.Equal(t, " Books      12", lines[3])
	assert.Equal(t, lines[1], lines[4])
}

func TestTableFormatter_ShrinksFlexColumn(t *testing.T) {
	t.Parallel()

	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), 30)
	out := formatter.Format(pretty.Table{
		Columns: []pretty.Column{
			{Title: "LINE", AlignRight: true},
			{Title: "MESSAGE", MinWidth: 10, Flex: true},
		},
		Rows: [][]string{{"7", strings.Repeat("m", 60)}},
	})

	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		assert.LessOrEqual(t, len(line), 30, line)
	}
	assert.Contains(t, out, "...")
}

func TestTableFormatter_KeepEnd(t *testing.T) {
	t.Parallel()

	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), 20)
	out := formatter.Format(pretty.Table{
		Columns: []pretty.Column{{Title: "FILE", MinWidth: 12, Flex: true, KeepEnd: true}},
		Rows:    [][]string{{"/very/long/path/to/README.md"}},
	})

	assert.Contains(t, out, "...")
	assert.Contains(t, out, "README.md")
	assert.NotContains(t, out, "/very/")
}
