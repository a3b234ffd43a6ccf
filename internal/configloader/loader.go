// Package configloader resolves the apidirlint configuration from its sources.
// It implements XDG-style discovery, layered merging, environment variable
// overrides, and validation.
package configloader

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/apidirlint/internal/logging"
	"github.com/yaklabco/apidirlint/pkg/config"
	"github.com/yaklabco/apidirlint/pkg/lint"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	// If set, project config discovery is skipped.
	ExplicitPath string

	// IgnoreSystemConfig skips loading system-level configuration.
	IgnoreSystemConfig bool

	// IgnoreUserConfig skips loading user-level configuration.
	IgnoreUserConfig bool

	// IgnoreProjectConfig skips loading project-level configuration.
	IgnoreProjectConfig bool

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool

	// CLI contains configuration from CLI flags.
	// These take highest precedence.
	CLI *Overrides

	// Registry resolves rule names in the rules section.
	// Defaults to lint.DefaultRegistry.
	Registry *lint.Registry
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLI)
//  2. Environment variables (APIDIRLINT_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.apidirlint.yml upward search)
//  5. User config ($XDG_CONFIG_HOME/apidirlint/config.yaml)
//  6. System config (/etc/apidirlint/config.yaml)
//  7. Defaults
//
// Every returned error wraps ErrInvalidConfig.
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	log := logging.FromContext(ctx)

	registry := opts.Registry
	if registry == nil {
		registry = lint.DefaultRegistry
	}

	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("%w: get working directory: %w", ErrInvalidConfig, err)
		}
	}

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("%w: discover paths: %w", ErrInvalidConfig, err)
	}
	paths.Explicit = opts.ExplicitPath

	result := &LoadResult{Paths: paths}
	cfg := config.NewConfig()

	files := []struct {
		kind string
		path string
		skip bool
	}{
		{"system", paths.System, opts.IgnoreSystemConfig},
		{"user", paths.User, opts.IgnoreUserConfig},
		{"project", paths.Project, opts.IgnoreProjectConfig || opts.ExplicitPath != ""},
		{"explicit", paths.Explicit, false},
	}

	for _, file := range files {
		if file.skip || file.path == "" {
			continue
		}
		layer, warnings, err := loadConfigFile(file.path)
		if err != nil {
			return nil, fmt.Errorf("%w: load %s config: %w", ErrInvalidConfig, file.kind, err)
		}
		cfg = merge(cfg, layer)
		result.LoadedFrom = append(result.LoadedFrom, file.path)
		result.Warnings = append(result.Warnings, warnings...)
		log.Debug("loaded config", logging.FieldSource, file.kind, logging.FieldPath, file.path)
	}

	if !opts.IgnoreEnv {
		envLayer, err := LoadFromEnv()
		if err != nil {
			return nil, fmt.Errorf("%w: load environment: %w", ErrInvalidConfig, err)
		}
		if !envLayer.IsZero() {
			log.Debug("applied environment overrides", logging.FieldSource, "env")
		}
		cfg = merge(cfg, envLayer)
	}

	cfg = merge(cfg, opts.CLI)

	normalizeRuleKeys(cfg, registry, result)

	validation := Validate(cfg, registry)
	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.Error())
	}
	if err := validation.Err(); err != nil {
		return nil, err
	}

	result.Config = cfg
	return result, nil
}

// loadConfigFile reads one YAML configuration layer.
// Unknown top-level keys are reported as warnings.
func loadConfigFile(path string) (*Overrides, []string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read file: %w", err)
	}

	layer, err := ParseOverrides(content)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	var warnings []string
	for _, key := range unknownKeys(content) {
		warnings = append(warnings, fmt.Sprintf("%s: unknown key %q; it will be ignored", path, key))
	}

	return layer, warnings, nil
}

// ParseOverrides decodes a YAML configuration layer.
func ParseOverrides(content []byte) (*Overrides, error) {
	layer := &Overrides{}
	if len(bytes.TrimSpace(content)) == 0 {
		return layer, nil
	}
	if err := yaml.Unmarshal(content, layer); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}
	return layer, nil
}

// unknownKeys returns the top-level keys of a YAML mapping that Overrides
// does not define.
func unknownKeys(content []byte) []string {
	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil
	}

	known := map[string]bool{
		"anchor": true, "min_entries": true, "check_last_section": true,
		"auth_values": true, "https_values": true, "cors_values": true,
		"punctuation": true, "link_prefix": true, "link_suffix": true,
		"rules": true,
	}

	var unknown []string
	for _, key := range sortedKeys(raw) {
		if !known[key] {
			unknown = append(unknown, key)
		}
	}
	return unknown
}

// normalizeRuleKeys rewrites rule names in cfg.Rules to canonical IDs so
// users can write either "DL013" or "link-syntax". When both spellings of one
// rule are present, the ID spelling wins and a warning is recorded.
func normalizeRuleKeys(cfg *config.Config, registry *lint.Registry, result *LoadResult) {
	if len(cfg.Rules) == 0 {
		return
	}

	normalized := make(map[string]config.RuleConfig, len(cfg.Rules))
	seen := make(map[string]string) // canonical ID -> original key

	// Sorted keys put "DL..." IDs before lowercase names.
	for _, key := range sortedKeys(cfg.Rules) {
		ruleCfg := cfg.Rules[key]

		canonicalID, _, found := registry.Resolve(key)
		if !found {
			// Validation warns about unknown rules.
			normalized[key] = ruleCfg
			continue
		}

		if original, exists := seen[canonicalID]; exists {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("duplicate rule configuration: %q and %q both refer to %s; using %q",
					original, key, canonicalID, original))
			continue
		}

		seen[canonicalID] = key
		normalized[canonicalID] = ruleCfg
	}

	cfg.Rules = normalized
}
