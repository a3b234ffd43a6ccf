package configloader

import (
	"maps"
	"slices"

	"github.com/yaklabco/apidirlint/pkg/config"
)

// merge applies a layer on top of base and returns the result.
// The merge follows these rules:
//   - Pointer fields: override base when non-nil
//   - Slices: override replaces base entirely if non-nil
//   - Rules: deep merge, with the layer's values taking precedence
//
// base is not modified.
func merge(base *config.Config, layer *Overrides) *config.Config {
	if base == nil {
		base = config.NewConfig()
	}
	result := base.Clone()
	if layer == nil {
		return result
	}

	setIf(&result.Anchor, layer.Anchor)
	setIf(&result.MinEntries, layer.MinEntries)
	setIf(&result.CheckLastSection, layer.CheckLastSection)
	setIf(&result.LinkPrefix, layer.LinkPrefix)
	setIf(&result.LinkSuffix, layer.LinkSuffix)
	setIf(&result.Format, layer.Format)

	replaceIf(&result.AuthValues, layer.AuthValues)
	replaceIf(&result.HTTPSValues, layer.HTTPSValues)
	replaceIf(&result.CORSValues, layer.CORSValues)
	replaceIf(&result.Punctuation, layer.Punctuation)
	replaceIf(&result.DisableRules, layer.DisableRules)

	result.Rules = mergeRules(result.Rules, layer.Rules)

	return result
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func replaceIf(dst *[]string, src []string) {
	if src != nil {
		*dst = slices.Clone(src)
	}
}

// mergeRules performs deep merge of rule configurations.
func mergeRules(base, override map[string]config.RuleConfig) map[string]config.RuleConfig {
	result := make(map[string]config.RuleConfig, len(base)+len(override))
	maps.Copy(result, base)

	for key, val := range override {
		if existing, ok := result[key]; ok {
			result[key] = mergeRuleConfig(existing, val)
		} else {
			result[key] = val
		}
	}

	return result
}

// mergeRuleConfig merges individual rule configurations.
func mergeRuleConfig(base, override config.RuleConfig) config.RuleConfig {
	result := base
	if override.Enabled != nil {
		result.Enabled = override.Enabled
	}
	return result
}

// MergeAll applies layers in order on top of base, later layers taking precedence.
func MergeAll(base *config.Config, layers ...*Overrides) *config.Config {
	result := merge(base, nil)
	for _, layer := range layers {
		result = merge(result, layer)
	}
	return result
}
