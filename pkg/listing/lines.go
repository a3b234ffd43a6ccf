package listing

import (
	"strings"
	"unicode"
)

// SplitLines splits file content into lines with trailing whitespace removed.
// It handles both LF (\n) and CRLF (\r\n) line endings. A trailing newline
// does not produce an extra empty line.
func SplitLines(content []byte) []string {
	if len(content) == 0 {
		return []string{}
	}

	var lines []string
	lineStart := 0

	for idx, char := range content {
		if char == '\n' {
			lines = append(lines, rstrip(string(content[lineStart:idx])))
			lineStart = idx + 1
		}
	}

	if lineStart < len(content) {
		lines = append(lines, rstrip(string(content[lineStart:])))
	}

	return lines
}

func rstrip(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}
