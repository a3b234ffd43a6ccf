package rules_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/apidirlint/pkg/config"
	"github.com/yaklabco/apidirlint/pkg/lint"
	"github.com/yaklabco/apidirlint/pkg/lint/rules"
)

const separator = "|---|---|---|---|---|---|"

// row renders a well-padded table row.
func row(title, desc, auth, https, cors, link string) string {
	return fmt.Sprintf("| %s | %s | %s | %s | %s | %s |", title, desc, auth, https, cors, link)
}

// goodRow renders a row that passes every field rule.
func goodRow(title string) string {
	return row(title, "Useful data", "No", "Yes", "Yes", "[Go!](https://example.com)")
}

func doc(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

// lintDoc runs every built-in rule and renders diagnostics the way the
// text reporter does.
func lintDoc(t *testing.T, input string, cfg *config.Config) []string {
	t.Helper()

	registry := lint.NewRegistry()
	rules.RegisterAll(registry)

	report, err := lint.NewEngine(registry).Lint(context.Background(), "README.md", []byte(input), cfg)
	require.NoError(t, err)

	out := make([]string, 0, len(report.Diagnostics))
	for _, diag := range report.Diagnostics {
		out = append(out, fmt.Sprintf("(L%03d) %s", diag.Line, diag.Message))
	}
	return out
}

func TestValidDocument(t *testing.T) {
	t.Parallel()

	input := doc(
		"# Public APIs",
		"",
		"### Animals",
		"API | Description | Auth | HTTPS | CORS | Link |",
		separator,
		row("Axolotl", "Collection of axolotl pictures and facts", "No", "Yes", "No",
			"[Go!](https://theaxolotlapi.netlify.app/)"),
		row("Cat Facts", "Daily cat facts", "`apiKey`", "Yes", "Unknown", "[Go!](http://example.com)"),
		row("Dogs", "Based on the Stanford Dogs Dataset", "`OAuth`", "No", "Yes", "[Go!](https://dog.ceo)"),
		"",
		"### Books",
		"API | Description | Auth | HTTPS | CORS | Link |",
		separator,
		row("Bible", "Bible verses", "`X-Mashape-Key`", "Yes", "No", "[Go!](https://bible.example)"),
		goodRow("Gutendex"),
		goodRow("Open Library"),
	)

	assert.Empty(t, lintDoc(t, input, nil))

	// Re-validating a clean document stays clean.
	assert.Empty(t, lintDoc(t, input, nil))
}

func TestNoSectionsNoRows(t *testing.T) {
	t.Parallel()

	assert.Empty(t, lintDoc(t, "", nil))
	assert.Empty(t, lintDoc(t, doc("# Title", "", "Some prose."), nil))
}

func TestRowWithManyViolations(t *testing.T) {
	t.Parallel()

	input := doc(
		"### Animals",
		separator,
		goodRow("Axolotl"),
		"| Cat Facts API | daily cat facts. | apiKey | Maybe | Unknown | [Go!](http://x) |",
		goodRow("Dogs"),
	)

	want := []string{
		`(L004) Title should not contain "API"`,
		"(L004) first character of description is not capitalized",
		"(L004) description should not end with .",
		"(L004) auth value is not enclosed with `backticks`",
		"(L004) Maybe is not a valid HTTPS option",
	}
	assert.Equal(t, want, lintDoc(t, input, nil))
}

func TestFieldRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		row  string
		want []string
	}{
		{
			name: "title ending in api any case",
			row:  row("Cat api", "Facts", "No", "Yes", "Yes", "[Go!](http://x)"),
			want: []string{`Title should not contain "API"`},
		},
		{
			name: "title containing api mid word is fine",
			row:  row("Rapid APIs", "Facts", "No", "Yes", "Yes", "[Go!](http://x)"),
		},
		{
			name: "lowercase description",
			row:  row("Cat", "facts", "No", "Yes", "Yes", "[Go!](http://x)"),
			want: []string{"first character of description is not capitalized"},
		},
		{
			name: "description starting with digit",
			row:  row("Cat", "3 facts", "No", "Yes", "Yes", "[Go!](http://x)"),
		},
		{
			name: "description ending with question mark",
			row:  row("Cat", "Facts?", "No", "Yes", "Yes", "[Go!](http://x)"),
			want: []string{"description should not end with ?"},
		},
		{
			name: "description ending with exclamation",
			row:  row("Cat", "Facts!", "No", "Yes", "Yes", "[Go!](http://x)"),
			want: []string{"description should not end with !"},
		},
		{
			name: "unquoted OAuth",
			row:  row("Cat", "Facts", "OAuth", "Yes", "Yes", "[Go!](http://x)"),
			want: []string{"auth value is not enclosed with `backticks`"},
		},
		{
			name: "quoted unknown auth",
			row:  row("Cat", "Facts", "`Token`", "Yes", "Yes", "[Go!](http://x)"),
			want: []string{"`Token` is not a valid Auth option"},
		},
		{
			name: "unquoted unknown auth",
			row:  row("Cat", "Facts", "Token", "Yes", "Yes", "[Go!](http://x)"),
			want: []string{
				"auth value is not enclosed with `backticks`",
				"Token is not a valid Auth option",
			},
		},
		{
			name: "quoted No is accepted",
			row:  row("Cat", "Facts", "`No`", "Yes", "Yes", "[Go!](http://x)"),
		},
		{
			name: "https lowercase",
			row:  row("Cat", "Facts", "No", "yes", "Yes", "[Go!](http://x)"),
			want: []string{"yes is not a valid HTTPS option"},
		},
		{
			name: "cors invalid",
			row:  row("Cat", "Facts", "No", "Yes", "Maybe", "[Go!](http://x)"),
			want: []string{"Maybe is not a valid CORS option"},
		},
		{
			name: "link wrong label",
			row:  row("Cat", "Facts", "No", "Yes", "Yes", "[Go](http://x)"),
			want: []string{`link syntax should be "[Go!](LINK)"`},
		},
		{
			name: "bare link",
			row:  row("Cat", "Facts", "No", "Yes", "Yes", "https://x"),
			want: []string{`link syntax should be "[Go!](LINK)"`},
		},
		{
			name: "link non http scheme",
			row:  row("Cat", "Facts", "No", "Yes", "Yes", "[Go!](ftp://x)"),
			want: []string{`link syntax should be "[Go!](LINK)"`},
		},
		{
			name: "link trailing text",
			row:  row("Cat", "Facts", "No", "Yes", "Yes", "[Go!](http://x) docs"),
			want: []string{`link syntax should be "[Go!](LINK)"`},
		},
		{
			name: "too few columns",
			row:  "| Cat | Facts |",
			want: []string{"row must have exactly 6 columns (has 2)"},
		},
		{
			name: "extra padding on title",
			row:  "|  Cat | Facts | No | Yes | Yes | [Go!](http://x) |",
			want: []string{"each segment must start and end with exactly 1 space"},
		},
		{
			name: "missing padding on two cells",
			row:  "|Cat | Facts |No| Yes | Yes | [Go!](http://x) |",
			want: []string{
				"each segment must start and end with exactly 1 space",
				"each segment must start and end with exactly 1 space",
			},
		},
		{
			name: "spacing before field errors",
			row:  "| Cat API  | Facts | No | Yes | Yes | [Go!](http://x) |",
			want: []string{
				"each segment must start and end with exactly 1 space",
				`Title should not contain "API"`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := lintDoc(t, doc("### Cats", separator, tt.row), nil)

			want := make([]string, 0, len(tt.want))
			for _, msg := range tt.want {
				want = append(want, "(L003) "+msg)
			}
			assert.Equal(t, want, got)
		})
	}
}

func TestLinkErrorExactlyOnce(t *testing.T) {
	t.Parallel()

	for _, link := range []string{"[Go!]", "(http://x)", "[Go!](http://x", "Go!", "[go!](http://x)"} {
		t.Run(link, func(t *testing.T) {
			t.Parallel()

			got := lintDoc(t, doc("### Cats", separator, row("Cat", "Facts", "No", "Yes", "Yes", link)), nil)
			assert.Equal(t, []string{`(L003) link syntax should be "[Go!](LINK)"`}, got)
		})
	}
}

func TestSectionAlphabetical(t *testing.T) {
	t.Parallel()

	input := doc(
		"### Fruit",
		separator,
		goodRow("Banana"),
		goodRow("Apple"),
	)
	assert.Equal(t, []string{"(L001) Fruit section is not in alphabetical order"}, lintDoc(t, input, nil))
}

func TestSectionAlphabetical_CaseInsensitive(t *testing.T) {
	t.Parallel()

	input := doc(
		"### Fruit",
		separator,
		goodRow("apple"),
		goodRow("Banana"),
		goodRow("cherry"),
		goodRow("Cherry"),
	)
	assert.Empty(t, lintDoc(t, input, nil))
}

func TestSectionMinEntries(t *testing.T) {
	t.Parallel()

	input := doc(
		"### Small",
		separator,
		goodRow("Alpha"),
		goodRow("Beta"),
		"",
		"### Large",
		separator,
		goodRow("Alpha"),
		goodRow("Beta"),
		goodRow("Gamma"),
	)
	want := []string{"(L001) Small section does not have the minimum 3 entries (only has 2)"}
	assert.Equal(t, want, lintDoc(t, input, nil))
}

func TestSectionMinEntries_EmptySection(t *testing.T) {
	t.Parallel()

	input := doc(
		"### Empty",
		"### Full",
		goodRow("Alpha"),
		goodRow("Beta"),
		goodRow("Gamma"),
	)
	want := []string{"(L001) Empty section does not have the minimum 3 entries (only has 0)"}
	assert.Equal(t, want, lintDoc(t, input, nil))
}

// The final section is only counted when a following header closes it,
// unless check_last_section is set.
func TestSectionMinEntries_LastSection(t *testing.T) {
	t.Parallel()

	input := doc(
		"### Full",
		separator,
		goodRow("Alpha"),
		goodRow("Beta"),
		goodRow("Gamma"),
		"### Tail",
		separator,
		goodRow("Alpha"),
	)

	t.Run("default leaves final section unchecked", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, lintDoc(t, input, nil))
	})

	t.Run("check_last_section closes the gap", func(t *testing.T) {
		t.Parallel()

		cfg := config.NewConfig()
		cfg.CheckLastSection = true
		want := []string{"(L006) Tail section does not have the minimum 3 entries (only has 1)"}
		assert.Equal(t, want, lintDoc(t, input, cfg))
	})
}

func TestSectionMinEntries_Configurable(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.MinEntries = 1

	input := doc("### One", goodRow("Alpha"), "### Two", goodRow("Beta"))
	assert.Empty(t, lintDoc(t, input, cfg))
}

func TestSectionHeaderFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		header string
		valid  bool
	}{
		{"### Animals", true},
		{"### Open_Data", true},
		{"###  Animals", false},
		{"### Open Data", false},
		{"###Animals", false},
		{"#### Animals", false},
		{"###\tAnimals", false},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			t.Parallel()

			cfg := config.NewConfig()
			cfg.MinEntries = 0

			got := lintDoc(t, doc(tt.header, separator, goodRow("Alpha")), cfg)
			if tt.valid {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, []string{"(L001) section header is not formatted correctly"}, got)
		})
	}
}

func TestDiagnosticOrder(t *testing.T) {
	t.Parallel()

	input := doc(
		"### First",
		separator,
		goodRow("Zebra"),
		goodRow("Ant"),
		"### Second Half",
		separator,
		row("Yak", "fur", "No", "Yes", "Yes", "[Go!](http://x)"),
		goodRow("Bee"),
		goodRow("Cat"),
	)

	// Ordering checks for every section come before the line scan.
	want := []string{
		"(L001) First section is not in alphabetical order",
		"(L005) Second section is not in alphabetical order",
		"(L005) section header is not formatted correctly",
		"(L001) First section does not have the minimum 3 entries (only has 2)",
		"(L007) first character of description is not capitalized",
	}

	assert.Equal(t, want, lintDoc(t, input, nil))
}

func TestPreambleRows(t *testing.T) {
	t.Parallel()

	input := doc(
		row("Loose", "orphan row", "No", "Yes", "Yes", "[Go!](http://x)"),
		"### Real",
		goodRow("Alpha"),
		goodRow("Beta"),
		goodRow("Gamma"),
	)

	// Field rules apply; section rules do not.
	assert.Equal(t, []string{"(L001) first character of description is not capitalized"}, lintDoc(t, input, nil))
}

func TestDisabledRules(t *testing.T) {
	t.Parallel()

	input := doc(
		"### Cats",
		separator,
		"| Cat API | facts | No | Yes | Yes | [Go!](http://x) |",
	)

	cfg := config.NewConfig()
	cfg.DisableRules = []string{"DL006"}
	disabled := false
	cfg.Rules["description-capitalized"] = config.RuleConfig{Enabled: &disabled}

	assert.Empty(t, lintDoc(t, input, cfg))
}

func TestCustomEnumerations(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.CORSValues = []string{"Yes", "No"}
	cfg.AuthValues = append(cfg.AuthValues, "User-Agent")

	input := doc(
		"### Cats",
		separator,
		row("Cat", "Facts", "`User-Agent`", "Yes", "Unknown", "[Go!](http://x)"),
	)
	assert.Equal(t, []string{"(L003) Unknown is not a valid CORS option"}, lintDoc(t, input, cfg))
}

func TestRegisterAll(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	rules.RegisterAll(registry)

	ids := registry.IDs()
	require.Len(t, ids, 13)
	assert.Equal(t, "DL001", ids[0])
	assert.Equal(t, "DL013", ids[len(ids)-1])

	rule, ok := registry.Get("link-syntax")
	require.True(t, ok)
	assert.Equal(t, "DL013", rule.ID())

	for _, r := range registry.Rules() {
		assert.NotEmpty(t, r.Name(), r.ID())
		assert.NotEmpty(t, r.Description(), r.ID())
		assert.NotEmpty(t, r.Tags(), r.ID())
	}
}

func TestDefaultRegistryPopulated(t *testing.T) {
	t.Parallel()

	_, ok := lint.DefaultRegistry.Get("DL003")
	assert.True(t, ok)
}
