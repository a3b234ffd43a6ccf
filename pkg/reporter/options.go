package reporter

import (
	"io"
	"os"

	"github.com/yaklabco/apidirlint/pkg/config"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// Format specifies the output format.
	Format Format

	// Color controls colorized output.
	// Values: "auto" (default), "always", "never"
	Color string

	// ShowSummary appends aggregate statistics after the diagnostics.
	// The text format stays silent on success unless this is set.
	ShowSummary bool

	// ShowDetails prints the rule and suggestion under each text diagnostic.
	ShowDetails bool

	// Compact uses minified JSON output.
	Compact bool

	// RuleFormat controls how rule identifiers appear in output.
	RuleFormat config.RuleFormat
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:     os.Stdout,
		Format:     FormatText,
		Color:      "auto",
		RuleFormat: config.RuleFormatID,
	}
}
