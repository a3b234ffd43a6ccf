package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/apidirlint/pkg/config"
)

func TestConfigClone(t *testing.T) {
	t.Run("nil config returns nil", func(t *testing.T) {
		var c *config.Config
		assert.Nil(t, c.Clone())
	})

	t.Run("deep copies value lists", func(t *testing.T) {
		original := config.NewConfig()

		clone := original.Clone()
		require.NotNil(t, clone)
		assert.NotSame(t, original, clone)

		clone.AuthValues[0] = "changed"
		clone.Punctuation = append(clone.Punctuation, ";")
		assert.Equal(t, "apiKey", original.AuthValues[0])
		assert.Len(t, original.Punctuation, 3)
	})

	t.Run("deep copies Rules map", func(t *testing.T) {
		disabled := false
		original := config.NewConfig()
		original.Rules["DL006"] = config.RuleConfig{Enabled: &disabled}

		clone := original.Clone()
		require.Contains(t, clone.Rules, "DL006")
		assert.False(t, *clone.Rules["DL006"].Enabled)

		*clone.Rules["DL006"].Enabled = true
		assert.False(t, *original.Rules["DL006"].Enabled)
	})

	t.Run("preserves CLI fields", func(t *testing.T) {
		original := config.NewConfig()
		original.Format = config.FormatJSON
		original.DisableRules = []string{"link-syntax"}

		clone := original.Clone()
		assert.Equal(t, config.FormatJSON, clone.Format)
		assert.Equal(t, []string{"link-syntax"}, clone.DisableRules)
	})
}

func TestConfigYAMLRoundTrip(t *testing.T) {
	original := config.NewConfig()
	original.MinEntries = 5
	original.CheckLastSection = true

	data, err := original.ToYAML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "min_entries: 5")
	assert.Contains(t, string(data), "check_last_section: true")
	assert.NotContains(t, string(data), "format")

	parsed, err := config.FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, original.Anchor, parsed.Anchor)
	assert.Equal(t, 5, parsed.MinEntries)
	assert.True(t, parsed.CheckLastSection)
	assert.Equal(t, original.CORSValues, parsed.CORSValues)
	assert.Equal(t, original.LinkPrefix, parsed.LinkPrefix)
}

func TestFromYAML(t *testing.T) {
	t.Run("partial document", func(t *testing.T) {
		cfg, err := config.FromYAML([]byte("min_entries: 2\n"))
		require.NoError(t, err)
		assert.Equal(t, 2, cfg.MinEntries)
		assert.Empty(t, cfg.Anchor)
		assert.NotNil(t, cfg.Rules)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := config.FromYAML([]byte("min_entries: [oops"))
		require.Error(t, err)
	})
}

func TestToYAMLWithHeader(t *testing.T) {
	data, err := config.NewConfig().ToYAMLWithHeader("# header")
	require.NoError(t, err)
	assert.Contains(t, string(data), "# header\n\nanchor:")
}

func TestRuleEnabled(t *testing.T) {
	disabled := false
	enabled := true

	cfg := config.NewConfig()
	cfg.Rules["DL006"] = config.RuleConfig{Enabled: &disabled}
	cfg.Rules["cors-value"] = config.RuleConfig{Enabled: &enabled}
	cfg.DisableRules = []string{"link-syntax"}

	assert.False(t, cfg.RuleEnabled("DL006", "title-no-api"))
	assert.True(t, cfg.RuleEnabled("DL012", "cors-value"))
	assert.False(t, cfg.RuleEnabled("DL013", "link-syntax"))
	assert.True(t, cfg.RuleEnabled("DL001", "section-header-format"))

	var nilCfg *config.Config
	assert.True(t, nilCfg.RuleEnabled("DL001", "section-header-format"))
}

func TestGenerateTemplate(t *testing.T) {
	original := config.DefaultRuleInfoProvider
	t.Cleanup(func() { config.DefaultRuleInfoProvider = original })

	config.DefaultRuleInfoProvider = func() []config.RuleInfo {
		return []config.RuleInfo{
			{ID: "DL013", Name: "link-syntax", Description: "Link cell markup"},
			{ID: "DL001", Name: "section-header-format", Description: "Header format"},
		}
	}

	minimal, err := config.GenerateTemplate(config.TemplateOptions{})
	require.NoError(t, err)
	assert.NotContains(t, string(minimal), "DL013")
	parsedMinimal, err := config.FromYAML(minimal)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultAnchor, parsedMinimal.Anchor)

	full, err := config.GenerateTemplate(config.TemplateOptions{Full: true})
	require.NoError(t, err)
	text := string(full)
	assert.Contains(t, text, "DL013")
	assert.Less(t, strings.Index(text, "DL001"), strings.Index(text, "DL013"))

	parsed, err := config.FromYAML(full)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultMinEntries, parsed.MinEntries)
}
