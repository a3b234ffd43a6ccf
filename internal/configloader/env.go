package configloader

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/yaklabco/apidirlint/pkg/config"
)

// EnvVarPrefix is the prefix for all apidirlint environment variables.
const EnvVarPrefix = "APIDIRLINT_"

// envVar binds one environment variable suffix to an Overrides field.
type envVar struct {
	description string
	apply       func(o *Overrides, value string) error
}

// envVars maps environment variable names (without prefix) to layer setters.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envVars = map[string]envVar{
	"ANCHOR": {
		description: "Section header prefix (default ###)",
		apply:       func(o *Overrides, v string) error { o.Anchor = &v; return nil },
	},
	"MIN_ENTRIES": {
		description: "Minimum rows per section",
		apply: func(o *Overrides, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("invalid integer %q", v)
			}
			o.MinEntries = &n
			return nil
		},
	},
	"CHECK_LAST_SECTION": {
		description: "Also count the final section: true or false",
		apply: func(o *Overrides, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("invalid boolean %q (expected true/false/1/0)", v)
			}
			o.CheckLastSection = &b
			return nil
		},
	},
	"AUTH_VALUES": {
		description: "Comma-separated accepted Auth values",
		apply:       func(o *Overrides, v string) error { o.AuthValues = parseSliceValue(v); return nil },
	},
	"HTTPS_VALUES": {
		description: "Comma-separated accepted HTTPS values",
		apply:       func(o *Overrides, v string) error { o.HTTPSValues = parseSliceValue(v); return nil },
	},
	"CORS_VALUES": {
		description: "Comma-separated accepted CORS values",
		apply:       func(o *Overrides, v string) error { o.CORSValues = parseSliceValue(v); return nil },
	},
	"PUNCTUATION": {
		description: "Comma-separated characters a description may not end with",
		apply:       func(o *Overrides, v string) error { o.Punctuation = parseSliceValue(v); return nil },
	},
	"LINK_PREFIX": {
		description: "Required start of a Link cell",
		apply:       func(o *Overrides, v string) error { o.LinkPrefix = &v; return nil },
	},
	"LINK_SUFFIX": {
		description: "Required end of a Link cell",
		apply:       func(o *Overrides, v string) error { o.LinkSuffix = &v; return nil },
	},
	"FORMAT": {
		description: "Output format: text, json, table, or summary",
		apply: func(o *Overrides, v string) error {
			f := config.OutputFormat(v)
			o.Format = &f
			return nil
		},
	},
	"DISABLE": {
		description: "Comma-separated rule IDs or names to disable",
		apply:       func(o *Overrides, v string) error { o.DisableRules = parseSliceValue(v); return nil },
	},
}

// LoadFromEnv reads APIDIRLINT_* variables into a configuration layer.
func LoadFromEnv() (*Overrides, error) {
	return loadFromEnv(os.LookupEnv)
}

func loadFromEnv(lookup func(string) (string, bool)) (*Overrides, error) {
	layer := &Overrides{}

	for _, suffix := range envSuffixes() {
		name := EnvVarPrefix + suffix
		value, ok := lookup(name)
		if !ok || value == "" {
			continue
		}
		if err := envVars[suffix].apply(layer, value); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}

	return layer, nil
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func envSuffixes() []string {
	suffixes := make([]string, 0, len(envVars))
	for suffix := range envVars {
		suffixes = append(suffixes, suffix)
	}
	sort.Strings(suffixes)
	return suffixes
}

// ListEnvVars returns every supported environment variable with its description.
func ListEnvVars() map[string]string {
	out := make(map[string]string, len(envVars))
	for suffix, v := range envVars {
		out[EnvVarPrefix+suffix] = v.description
	}
	return out
}
