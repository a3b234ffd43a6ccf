package config

import (
	"bytes"
	"fmt"
	"slices"
	"strings"
)

// templateHeader is prepended to generated configuration files.
const templateHeader = `# apidirlint configuration
# See: https://github.com/yaklabco/apidirlint`

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full appends a commented entry for every registered rule.
	Full bool
}

// RuleInfo contains rule metadata for template generation.
type RuleInfo struct {
	ID          string
	Name        string
	Description string
}

// RuleInfoProvider is a function that returns rule information.
// This allows decoupling from the lint package to avoid circular imports.
type RuleInfoProvider func() []RuleInfo

// DefaultRuleInfoProvider is set by the lint package during init.
//
//nolint:gochecknoglobals // Intentional extension point for rule info.
var DefaultRuleInfoProvider RuleInfoProvider

// GenerateTemplate creates a configuration file holding the default dialect.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	content, err := NewConfig().ToYAMLWithHeader(templateHeader)
	if err != nil {
		return nil, fmt.Errorf("render defaults: %w", err)
	}

	if !opts.Full {
		return content, nil
	}

	rules := getRuleInfos()
	if len(rules) == 0 {
		return content, nil
	}

	slices.SortFunc(rules, func(a, b RuleInfo) int { return strings.Compare(a.ID, b.ID) })

	var buf bytes.Buffer
	buf.Write(content)
	buf.WriteString("\n# Uncomment a rule to switch it off. Keys may be rule IDs or names.\n# rules:\n")
	for _, rule := range rules {
		fmt.Fprintf(&buf, "#   %s: # %s: %s\n#     enabled: false\n", rule.ID, rule.Name, rule.Description)
	}

	return buf.Bytes(), nil
}

func getRuleInfos() []RuleInfo {
	if DefaultRuleInfoProvider == nil {
		return nil
	}
	return DefaultRuleInfoProvider()
}
