package cli

import (
	"io"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/yaklabco/apidirlint/internal/ui/pretty"
)

// HelpStyles contains Lipgloss styles for command help formatting.
type HelpStyles struct {
	Command lipgloss.Style
	Heading lipgloss.Style
	Flag    lipgloss.Style
	Example lipgloss.Style
	Dim     lipgloss.Style
}

// NewHelpStyles creates help styles based on color mode.
func NewHelpStyles(colorEnabled bool) *HelpStyles {
	plain := lipgloss.NewStyle()
	if !colorEnabled {
		return &HelpStyles{Command: plain, Heading: plain, Flag: plain, Example: plain, Dim: plain}
	}
	return &HelpStyles{
		Command: plain.Foreground(lipgloss.Color("14")).Bold(true),
		Heading: plain.Foreground(lipgloss.Color("11")).Bold(true),
		Flag:    plain.Foreground(lipgloss.Color("12")),
		Example: plain.Foreground(lipgloss.Color("8")),
		Dim:     plain.Foreground(lipgloss.Color("8")),
	}
}

// HelpFormatter renders Cobra help and usage text with HelpStyles.
type HelpFormatter struct {
	styles *HelpStyles
}

// NewHelpFormatter creates a new help formatter for the given color mode.
func NewHelpFormatter(colorMode string, writer io.Writer) *HelpFormatter {
	return &HelpFormatter{styles: NewHelpStyles(pretty.IsColorEnabled(colorMode, writer))}
}

const usageTemplate = `{{ heading "Usage:" }}
{{- if .Runnable}}
  {{ command .UseLine }}{{end}}
{{- if .HasAvailableSubCommands}}
  {{ command .CommandPath }} [command]{{end}}
{{- if .HasExample}}

{{ heading "Examples:" }}
{{ example .Example }}{{end}}
{{- if .HasAvailableSubCommands}}

{{ heading "Commands:" }}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{ command (rpad .Name .NamePadding) }} {{ .Short }}{{end}}{{end}}{{end}}
{{- if .HasAvailableLocalFlags}}

{{ heading "Flags:" }}
{{ flags .LocalFlags.FlagUsages }}{{end}}
{{- if .HasAvailableInheritedFlags}}

{{ heading "Global Flags:" }}
{{ flags .InheritedFlags.FlagUsages }}{{end}}
{{- if .HasAvailableSubCommands}}

Use "{{ command (print .CommandPath " [command] --help") }}" for more information about a command.{{end}}
`

const helpTemplate = `{{with (or .Long .Short)}}{{ trimRight . }}

{{end}}`

// ApplyToCommand installs the styled templates on cmd. Subcommands inherit them.
func (h *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	funcs := template.FuncMap{
		"heading": h.styles.Heading.Render,
		"command": h.styles.Command.Render,
		"example": h.styles.Example.Render,
		"flags":   h.styleFlagUsages,
		"rpad":    rpad,
		"trimRight": func(s string) string {
			return strings.TrimRight(s, " \t\n")
		},
	}

	usage := template.Must(template.New("usage").Funcs(funcs).Parse(usageTemplate))
	help := template.Must(template.New("help").Funcs(funcs).Parse(helpTemplate + usageTemplate))

	cmd.SetUsageFunc(func(c *cobra.Command) error {
		return usage.Execute(c.OutOrStderr(), c)
	})
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		if err := help.Execute(c.OutOrStdout(), c); err != nil {
			c.PrintErrln(err)
		}
	})
}

// styleFlagUsages colors the flag names in pflag's usage block. Each line
// looks like "  -f, --flag type   description".
func (h *HelpFormatter) styleFlagUsages(usages string) string {
	lines := strings.Split(strings.TrimRight(usages, "\n"), "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " ")
		indent := line[:len(line)-len(trimmed)]

		gap := strings.Index(trimmed, "   ")
		if gap < 0 {
			continue
		}

		var styled []string
		for _, token := range strings.Fields(trimmed[:gap]) {
			if name, comma := strings.CutSuffix(token, ","); strings.HasPrefix(name, "-") {
				token = h.styles.Flag.Render(name)
				if comma {
					token += ","
				}
			} else {
				token = h.styles.Dim.Render(token)
			}
			styled = append(styled, token)
		}
		lines[i] = indent + strings.Join(styled, " ") + trimmed[gap:]
	}
	return strings.Join(lines, "\n")
}

// rpad adds padding to the right of a string.
func rpad(str string, padding int) string {
	if len(str) >= padding {
		return str
	}
	return str + strings.Repeat(" ", padding-len(str))
}
