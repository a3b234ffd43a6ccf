// Package config defines core configuration types for apidirlint.
// These types are pure data structures with no dependencies on config loaders.
package config

// RuleConfig holds per-rule configuration options.
type RuleConfig struct {
	Enabled *bool `yaml:"enabled"`
}

// OutputFormat specifies the output format for diagnostics.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatJSON    OutputFormat = "json"
	FormatTable   OutputFormat = "table"
	FormatSummary OutputFormat = "summary"
)

// IsValid returns true if the format is a known output format.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatTable, FormatSummary:
		return true
	default:
		return false
	}
}

// Defaults for the directory table dialect.
const (
	DefaultAnchor     = "###"
	DefaultMinEntries = 3
	DefaultLinkPrefix = "[Go!](http"
	DefaultLinkSuffix = ")"
)

// DefaultAuthValues returns the accepted Auth column values.
func DefaultAuthValues() []string {
	return []string{"apiKey", "OAuth", "X-Mashape-Key", "No"}
}

// DefaultHTTPSValues returns the accepted HTTPS column values.
func DefaultHTTPSValues() []string {
	return []string{"Yes", "No"}
}

// DefaultCORSValues returns the accepted CORS column values.
func DefaultCORSValues() []string {
	return []string{"Yes", "No", "Unknown"}
}

// DefaultPunctuation returns the characters a description may not end with.
func DefaultPunctuation() []string {
	return []string{".", "?", "!"}
}

// Config is the root configuration structure for apidirlint.
type Config struct {
	// Anchor is the prefix marking a section header line.
	Anchor string `yaml:"anchor"`

	// MinEntries is the minimum number of rows each section must hold.
	MinEntries int `yaml:"min_entries"`

	// CheckLastSection also applies the minimum entry count to the final
	// section, which is otherwise only checked when a following header closes it.
	CheckLastSection bool `yaml:"check_last_section"`

	// AuthValues lists the accepted Auth values (without backticks).
	AuthValues []string `yaml:"auth_values"`

	// HTTPSValues lists the accepted HTTPS values.
	HTTPSValues []string `yaml:"https_values"`

	// CORSValues lists the accepted CORS values.
	CORSValues []string `yaml:"cors_values"`

	// Punctuation lists characters a description must not end with.
	Punctuation []string `yaml:"punctuation"`

	// LinkPrefix and LinkSuffix bracket a valid Link cell.
	LinkPrefix string `yaml:"link_prefix"`
	LinkSuffix string `yaml:"link_suffix"`

	// Rules contains per-rule configuration keyed by rule ID or name.
	Rules map[string]RuleConfig `yaml:"rules,omitempty"`

	// CLI-level options (not persisted to config files).

	// Format specifies the output format.
	Format OutputFormat `yaml:"-"`

	// DisableRules contains rule IDs or names to disable.
	DisableRules []string `yaml:"-"`
}

// NewConfig returns a Config with the dialect defaults.
func NewConfig() *Config {
	return &Config{
		Anchor:      DefaultAnchor,
		MinEntries:  DefaultMinEntries,
		AuthValues:  DefaultAuthValues(),
		HTTPSValues: DefaultHTTPSValues(),
		CORSValues:  DefaultCORSValues(),
		Punctuation: DefaultPunctuation(),
		LinkPrefix:  DefaultLinkPrefix,
		LinkSuffix:  DefaultLinkSuffix,
		Rules:       make(map[string]RuleConfig),
		Format:      FormatText,
	}
}

// RuleEnabled reports whether a rule is enabled, looking it up by ID then name.
// Rules are enabled unless configured otherwise.
func (c *Config) RuleEnabled(id, name string) bool {
	if c == nil {
		return true
	}
	for _, key := range c.DisableRules {
		if key == id || key == name {
			return false
		}
	}
	for _, key := range []string{id, name} {
		if rc, ok := c.Rules[key]; ok && rc.Enabled != nil {
			return *rc.Enabled
		}
	}
	return true
}
