package config

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// yamlIndent is the indentation of generated configuration files.
const yamlIndent = 2

// ToYAML encodes the configuration. A nil Config encodes to nothing.
func (c *Config) ToYAML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(yamlIndent)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}
	return buf.Bytes(), nil
}

// ToYAMLWithHeader encodes the configuration below a comment block,
// separated from it by one blank line.
func (c *Config) ToYAMLWithHeader(header string) ([]byte, error) {
	body, err := c.ToYAML()
	if err != nil || header == "" {
		return body, err
	}
	return []byte(strings.TrimRight(header, "\n") + "\n\n" + string(body)), nil
}

// FromYAML parses a configuration from YAML bytes.
// Fields absent from the document keep their zero values; callers merge
// the result over NewConfig.
func FromYAML(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	if cfg.Rules == nil {
		cfg.Rules = make(map[string]RuleConfig)
	}

	return cfg, nil
}

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	clone := *c
	clone.AuthValues = slices.Clone(c.AuthValues)
	clone.HTTPSValues = slices.Clone(c.HTTPSValues)
	clone.CORSValues = slices.Clone(c.CORSValues)
	clone.Punctuation = slices.Clone(c.Punctuation)
	clone.DisableRules = slices.Clone(c.DisableRules)

	if c.Rules != nil {
		clone.Rules = make(map[string]RuleConfig, len(c.Rules))
		for k, v := range c.Rules {
			clone.Rules[k] = v.clone()
		}
	}

	return &clone
}

func (rc RuleConfig) clone() RuleConfig {
	if rc.Enabled == nil {
		return RuleConfig{}
	}
	enabled := *rc.Enabled
	return RuleConfig{Enabled: &enabled}
}
