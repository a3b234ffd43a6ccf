package rules

import "github.com/yaklabco/apidirlint/pkg/lint"

// RegisterAll registers all built-in rules with the given registry.
func RegisterAll(registry *lint.Registry) {
	// Section rules
	registry.Register(NewSectionHeaderFormatRule()) // DL001
	registry.Register(NewSectionMinEntriesRule())   // DL002
	registry.Register(NewSectionAlphabeticalRule()) // DL003

	// Row rules, reported in this order for each row
	registry.Register(NewRowColumnsRule())             // DL004
	registry.Register(NewCellSpacingRule())            // DL005
	registry.Register(NewTitleNoAPIRule())             // DL006
	registry.Register(NewDescriptionCapitalizedRule()) // DL007
	registry.Register(NewDescriptionPunctuationRule()) // DL008
	registry.Register(NewAuthBackticksRule())          // DL009
	registry.Register(NewAuthValueRule())              // DL010
	registry.Register(NewHTTPSValueRule())             // DL011
	registry.Register(NewCORSValueRule())              // DL012
	registry.Register(NewLinkSyntaxRule())             // DL013
}

//nolint:gochecknoinits // init is idiomatic for rule registration
func init() {
	RegisterAll(lint.DefaultRegistry)
}
