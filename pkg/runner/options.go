// Package runner reads directory listings from disk and validates them.
package runner

import "github.com/yaklabco/apidirlint/pkg/config"

// Options controls a validation run.
type Options struct {
	// Paths are the files to validate, in the order results are reported.
	Paths []string

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int

	// Config is the resolved configuration for this run.
	Config *config.Config
}
