package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/apidirlint/internal/ui/pretty"
	"github.com/yaklabco/apidirlint/pkg/config"
	"github.com/yaklabco/apidirlint/pkg/listing"
)

type sectionsFlags struct {
	format string
	rows   bool
	order  bool
}

// sectionInfo represents a section in JSON output.
type sectionInfo struct {
	Name string    `json:"name"`
	Line int       `json:"line"`
	Rows []rowInfo `json:"rows"`
}

// rowInfo represents a row in JSON output.
type rowInfo struct {
	Line  int    `json:"line"`
	Title string `json:"title"`
	Link  string `json:"link,omitempty"`
}

func newSectionsCommand(globals *globalFlags) *cobra.Command {
	flags := &sectionsFlags{}

	cmd := &cobra.Command{
		Use:   "sections <file>",
		Short: "Tabulate the sections of a directory file",
		Long: `Print each section of a directory file with its header line and row count.
Sections holding fewer rows than the configured minimum are highlighted.

With --rows, every row is listed with its title and link destination.
With --order, each unsorted section is printed as a diff from its current
title order to the expected one.`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)

			cfg, err := loadConfig(ctx, globals, nil)
			if err != nil {
				return err
			}

			content, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("%w: read %s: %w", ErrIO, args[0], err)
			}
			doc := listing.Parse(args[0], content, cfg.Anchor)

			out := cmd.OutOrStdout()
			switch {
			case flags.format == formatJSON:
				return outputSectionsJSON(out, doc)
			case flags.format != "text":
				return fmt.Errorf("%w: unknown format %q; valid formats: text, json", ErrUsage, flags.format)
			case flags.order:
				return writeOrderDiffs(out, globals.color, doc)
			case flags.rows:
				return writeTable(out, globals.color, rowsTable(doc))
			default:
				return writeTable(out, globals.color, sectionsTable(doc, cfg))
			}
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
	cmd.Flags().BoolVar(&flags.rows, "rows", false, "list every row instead of one line per section")
	cmd.Flags().BoolVar(&flags.order, "order", false, "show how to reorder unsorted sections")

	return cmd
}

func sectionsTable(doc *listing.Document, cfg *config.Config) pretty.Table {
	tbl := pretty.Table{
		Columns: []pretty.Column{
			{Title: "LINE", AlignRight: true},
			{Title: "SECTION", MinWidth: 10, Flex: true},
			{Title: "ROWS", AlignRight: true},
			{Title: "LINKS", AlignRight: true},
		},
		Highlight: func(idx int) bool {
			return len(doc.Sections[idx].Rows) < cfg.MinEntries
		},
	}

	for _, sec := range doc.Sections {
		links := 0
		for _, row := range sec.Rows {
			if _, ok := row.LinkOf(); ok {
				links++
			}
		}
		tbl.Rows = append(tbl.Rows, []string{
			strconv.Itoa(sec.Line),
			sec.Name,
			strconv.Itoa(len(sec.Rows)),
			strconv.Itoa(links),
		})
	}

	return tbl
}

func rowsTable(doc *listing.Document) pretty.Table {
	tbl := pretty.Table{
		Columns: []pretty.Column{
			{Title: "LINE", AlignRight: true},
			{Title: "SECTION", MinWidth: 8, Flex: true},
			{Title: "TITLE", MinWidth: 10, Flex: true},
			{Title: "LINK", MinWidth: 12, Flex: true},
		},
	}

	for _, sec := range doc.Sections {
		for _, row := range sec.Rows {
			title, _ := row.Cell(listing.FieldTitle)
			link, _ := row.LinkOf()
			tbl.Rows = append(tbl.Rows, []string{
				strconv.Itoa(row.Line),
				sec.Name,
				title,
				link.Destination,
			})
		}
	}

	return tbl
}

// writeOrderDiffs prints the order diff of every unsorted section.
func writeOrderDiffs(w io.Writer, colorMode string, doc *listing.Document) error {
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, w))

	var out strings.Builder
	for _, sec := range doc.Sections {
		diff := sec.OrderDiff()
		if diff == "" {
			continue
		}
		fmt.Fprintf(&out, "%s %s\n", styles.Bold.Render(sec.Name), styles.Dim.Render(pretty.LineTag(sec.Line)))
		for _, line := range strings.SplitAfter(diff, "\n") {
			switch {
			case strings.HasPrefix(line, "- "):
				line = styles.Failure.Render(strings.TrimSuffix(line, "\n")) + "\n"
			case strings.HasPrefix(line, "+ "):
				line = styles.Success.Render(strings.TrimSuffix(line, "\n")) + "\n"
			}
			out.WriteString(line)
		}
	}

	if _, err := io.WriteString(w, out.String()); err != nil {
		return fmt.Errorf("write order diff: %w", err)
	}
	return nil
}

func writeTable(w io.Writer, colorMode string, tbl pretty.Table) error {
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, w))
	formatter := pretty.NewTableFormatter(styles, pretty.TerminalWidth(w))
	if _, err := io.WriteString(w, formatter.Format(tbl)); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}

func outputSectionsJSON(w io.Writer, doc *listing.Document) error {
	infos := make([]sectionInfo, 0, len(doc.Sections))
	for _, sec := range doc.Sections {
		info := sectionInfo{Name: sec.Name, Line: sec.Line, Rows: make([]rowInfo, 0, len(sec.Rows))}
		for _, row := range sec.Rows {
			title, _ := row.Cell(listing.FieldTitle)
			link, _ := row.LinkOf()
			info.Rows = append(info.Rows, rowInfo{Line: row.Line, Title: title, Link: link.Destination})
		}
		infos = append(infos, info)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding sections: %w", err)
	}
	return nil
}
