package configloader

import "github.com/yaklabco/apidirlint/pkg/config"

// Overrides is one configuration layer. Nil fields leave the value of lower
// layers untouched, so an explicit zero (min_entries: 0, check_last_section:
// false) can still override a non-zero default.
type Overrides struct {
	Anchor           *string  `yaml:"anchor"`
	MinEntries       *int     `yaml:"min_entries"`
	CheckLastSection *bool    `yaml:"check_last_section"`
	AuthValues       []string `yaml:"auth_values"`
	HTTPSValues      []string `yaml:"https_values"`
	CORSValues       []string `yaml:"cors_values"`
	Punctuation      []string `yaml:"punctuation"`
	LinkPrefix       *string  `yaml:"link_prefix"`
	LinkSuffix       *string  `yaml:"link_suffix"`

	Rules map[string]config.RuleConfig `yaml:"rules"`

	// CLI and environment only.
	Format       *config.OutputFormat `yaml:"-"`
	DisableRules []string             `yaml:"-"`
}

// Ptr returns a pointer to v, for building Overrides literals.
func Ptr[T any](v T) *T {
	return &v
}

// IsZero reports whether the layer sets nothing.
func (o *Overrides) IsZero() bool {
	return o == nil || (o.Anchor == nil && o.MinEntries == nil && o.CheckLastSection == nil &&
		o.AuthValues == nil && o.HTTPSValues == nil && o.CORSValues == nil && o.Punctuation == nil &&
		o.LinkPrefix == nil && o.LinkSuffix == nil && len(o.Rules) == 0 &&
		o.Format == nil && o.DisableRules == nil)
}
