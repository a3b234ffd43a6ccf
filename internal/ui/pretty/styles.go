// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// DefaultTermWidth is used when terminal width cannot be determined.
const DefaultTermWidth = 100

// Styles holds the renderers used by the reporters and tables.
type Styles struct {
	Location   lipgloss.Style // (L001) prefix
	Message    lipgloss.Style
	RuleID     lipgloss.Style
	FilePath   lipgloss.Style
	Suggestion lipgloss.Style

	Success lipgloss.Style
	Failure lipgloss.Style

	TableHeader    lipgloss.Style
	TableBorder    lipgloss.Style
	TableHighlight lipgloss.Style // sections below the minimum entry count

	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// ANSI palette indexes.
const (
	colorRed    = lipgloss.Color("9")
	colorGreen  = lipgloss.Color("10")
	colorYellow = lipgloss.Color("11")
	colorGray   = lipgloss.Color("8")
	colorWhite  = lipgloss.Color("7")
)

// NewStyles returns colored styles, or plain ones when colorEnabled is false.
func NewStyles(colorEnabled bool) *Styles {
	plain := lipgloss.NewStyle()
	if !colorEnabled {
		return &Styles{
			Location: plain, Message: plain, RuleID: plain, FilePath: plain, Suggestion: plain,
			Success: plain, Failure: plain,
			TableHeader: plain, TableBorder: plain, TableHighlight: plain,
			Dim: plain, Bold: plain,
		}
	}

	bold := plain.Bold(true)
	gray := plain.Foreground(colorGray)
	return &Styles{
		Location:   bold.Foreground(colorRed),
		Message:    plain,
		RuleID:     gray,
		FilePath:   bold.Underline(true),
		Suggestion: plain.Foreground(colorGreen).Italic(true),

		Success: bold.Foreground(colorGreen),
		Failure: bold.Foreground(colorRed),

		TableHeader:    bold.Foreground(colorWhite),
		TableBorder:    gray,
		TableHighlight: plain.Foreground(colorYellow),

		Dim:  gray,
		Bold: bold,
	}
}

// IsColorEnabled resolves a --color mode for writer. Any mode other than
// "always" or "never" is treated as auto: color only on a terminal and only
// when NO_COLOR is unset.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}

// TerminalWidth returns the width of the terminal behind writer,
// or DefaultTermWidth when writer is not a terminal.
func TerminalWidth(writer io.Writer) int {
	if f, ok := writer.(interface{ Fd() uintptr }); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return width
		}
	}
	return DefaultTermWidth
}
