package listing

import (
	"slices"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// SortKey is the form of a title that rows are ordered by.
func SortKey(title string) string {
	return strings.ToUpper(title)
}

// SortedTitles returns the section's titles ordered by SortKey. Titles with
// equal keys keep their document order.
func (s *Section) SortedTitles() []string {
	titles := s.Titles()
	slices.SortStableFunc(titles, func(a, b string) int {
		return strings.Compare(SortKey(a), SortKey(b))
	})
	return titles
}

// OrderDiff returns a line diff from the section's titles to their sorted
// order, or "" when the section is sorted. Each line is prefixed with "- ",
// "+ " or two spaces.
func (s *Section) OrderDiff() string {
	current, sorted := s.Titles(), s.SortedTitles()
	if slices.Equal(current, sorted) {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(joinLines(current), joinLines(sorted))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var out strings.Builder
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		case diffmatchpatch.DiffEqual:
		}
		for _, line := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			out.WriteString(prefix + line + "\n")
		}
	}
	return out.String()
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n") + "\n"
}
