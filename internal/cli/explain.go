package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/yaklabco/apidirlint/internal/logging"
	"github.com/yaklabco/apidirlint/internal/ui/pretty"
	"github.com/yaklabco/apidirlint/pkg/lint"
	"github.com/yaklabco/apidirlint/pkg/lint/rules"
)

func newExplainCommand(globals *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "explain <rule>",
		Short: "Show the documentation of a rule",
		Long: `Print what a rule checks, with examples. The rule may be given by ID or name.
Output is rendered for the terminal when color is enabled and printed as
Markdown otherwise.`,
		Example: `  apidirlint explain DL013
  apidirlint explain link-syntax --color never`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, _, ok := lint.DefaultRegistry.Resolve(args[0])
			if !ok {
				return fmt.Errorf("%w: unknown rule %q; run 'apidirlint rules' for the list", ErrUsage, args[0])
			}
			doc, ok := rules.Doc(id)
			if !ok {
				return fmt.Errorf("no documentation for %s", id)
			}

			out := cmd.OutOrStdout()
			if pretty.IsColorEnabled(globals.color, out) {
				doc = renderMarkdown(cmd, doc, pretty.TerminalWidth(out))
			}
			if _, err := io.WriteString(out, doc); err != nil {
				return fmt.Errorf("write documentation: %w", err)
			}
			return nil
		},
	}
}

// renderMarkdown styles doc for a terminal, falling back to the raw text.
func renderMarkdown(cmd *cobra.Command, doc string, width int) string {
	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(width))
	if err == nil {
		var rendered string
		if rendered, err = renderer.Render(doc); err == nil {
			return rendered
		}
	}
	logging.FromContext(commandContext(cmd)).Debug("render markdown", logging.FieldError, err)
	return doc
}
