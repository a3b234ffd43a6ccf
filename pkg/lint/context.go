package lint

import (
	"context"

	"github.com/yaklabco/apidirlint/pkg/config"
	"github.com/yaklabco/apidirlint/pkg/listing"
)

// RuleContext provides all context needed by a rule to perform checks.
//
// RuleContext stores context.Context as a field (Ctx) rather than passing it
// to every hook. It is a short-lived parameter object created per run.
type RuleContext struct {
	// Ctx is the context for cancellation.
	Ctx context.Context

	// Document is the parsed listing.
	Document *listing.Document

	// Config is the resolved configuration.
	Config *config.Config
}

// NewRuleContext creates a RuleContext for the given document and configuration.
// A nil configuration is replaced with the defaults.
func NewRuleContext(ctx context.Context, doc *listing.Document, cfg *config.Config) *RuleContext {
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &RuleContext{
		Ctx:      ctx,
		Document: doc,
		Config:   cfg,
	}
}

// Cancelled returns true if the context has been cancelled.
func (rc *RuleContext) Cancelled() bool {
	select {
	case <-rc.Ctx.Done():
		return true
	default:
		return false
	}
}
