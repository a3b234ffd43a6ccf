package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/apidirlint/internal/ui/pretty"
	"github.com/yaklabco/apidirlint/pkg/lint"
)

const formatJSON = "json"

// ruleInfo represents a rule in JSON output.
type ruleInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

func newRulesCommand(globals *globalFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the validation rules",
		Long: `List every validation rule with its ID, name, and description.

Rule IDs and names are accepted by --disable and by the rules section of
the configuration file.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			rules := lint.DefaultRegistry.Rules()
			out := cmd.OutOrStdout()

			switch format {
			case formatJSON:
				return outputRulesJSON(out, rules)
			case "text":
				return outputRulesTable(out, globals.color, rules)
			default:
				return fmt.Errorf("%w: unknown format %q; valid formats: text, json", ErrUsage, format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json")

	return cmd
}

// outputRulesTable renders rules as a table.
func outputRulesTable(w io.Writer, colorMode string, rules []lint.Rule) error {
	tbl := pretty.Table{
		Columns: []pretty.Column{
			{Title: "ID", MinWidth: 5},
			{Title: "NAME", MinWidth: 10},
			{Title: "TAGS", MinWidth: 4, Flex: true},
			{Title: "DESCRIPTION", MinWidth: 20, Flex: true},
		},
	}
	for _, rule := range rules {
		tbl.Rows = append(tbl.Rows, []string{
			rule.ID(),
			rule.Name(),
			strings.Join(rule.Tags(), ","),
			rule.Description(),
		})
	}
	return writeTable(w, colorMode, tbl)
}

// outputRulesJSON outputs rules as a JSON array.
func outputRulesJSON(w io.Writer, rules []lint.Rule) error {
	infos := make([]ruleInfo, 0, len(rules))
	for _, rule := range rules {
		tags := rule.Tags()
		if tags == nil {
			tags = []string{}
		}
		infos = append(infos, ruleInfo{
			ID:          rule.ID(),
			Name:        rule.Name(),
			Description: rule.Description(),
			Tags:        tags,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}
