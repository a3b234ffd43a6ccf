package lint

import (
	"cmp"
	"slices"
	"sync"

	"github.com/yaklabco/apidirlint/pkg/config"
)

// Registry holds all registered rules.
type Registry struct {
	mu     sync.RWMutex
	byID   map[string]Rule
	byName map[string]Rule
}

// NewRegistry creates an empty rule registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:   make(map[string]Rule),
		byName: make(map[string]Rule),
	}
}

// Register adds a rule to the registry.
// If a rule with the same ID already exists, it is replaced.
func (r *Registry) Register(rule Rule) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[rule.ID()] = rule
	r.byName[rule.Name()] = rule
}

// Get retrieves a rule by ID or name.
// It tries ID first, then falls back to name lookup.
func (r *Registry) Get(key string) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if rule, ok := r.byID[key]; ok {
		return rule, true
	}
	if rule, ok := r.byName[key]; ok {
		return rule, true
	}
	return nil, false
}

// Resolve returns the canonical ID and rule for a rule ID or name.
// Returns (id, rule, found).
func (r *Registry) Resolve(key string) (string, Rule, bool) {
	rule, ok := r.Get(key)
	if !ok {
		return "", nil, false
	}
	return rule.ID(), rule, true
}

// Rules returns all registered rules sorted by ID.
// Rule IDs define execution order: row rules report in ID order.
func (r *Registry) Rules() []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Rule, 0, len(r.byID))
	for _, rule := range r.byID {
		result = append(result, rule)
	}

	slices.SortFunc(result, func(a, b Rule) int {
		return cmp.Compare(a.ID(), b.ID())
	})

	return result
}

// IDs returns all registered rule IDs in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]string, 0, len(r.byID))
	for id := range r.byID {
		result = append(result, id)
	}

	slices.Sort(result)
	return result
}

// Enabled returns the rules enabled by cfg, sorted by ID.
func (r *Registry) Enabled(cfg *config.Config) []Rule {
	var enabled []Rule
	for _, rule := range r.Rules() {
		if cfg.RuleEnabled(rule.ID(), rule.Name()) {
			enabled = append(enabled, rule)
		}
	}
	return enabled
}

// RuleInfos returns template metadata for every registered rule.
func (r *Registry) RuleInfos() []config.RuleInfo {
	rules := r.Rules()
	infos := make([]config.RuleInfo, 0, len(rules))
	for _, rule := range rules {
		infos = append(infos, config.RuleInfo{
			ID:          rule.ID(),
			Name:        rule.Name(),
			Description: rule.Description(),
		})
	}
	return infos
}

// DefaultRegistry is the global registry for built-in rules.
// Rules register themselves during init().
//
//nolint:gochecknoglobals // Global registry is intentional for rule registration
var DefaultRegistry = NewRegistry()

//nolint:gochecknoinits // Wires template generation to the default registry.
func init() {
	config.DefaultRuleInfoProvider = DefaultRegistry.RuleInfos
}
