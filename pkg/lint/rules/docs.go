package rules

import (
	"embed"
	"path"
)

//go:embed docs/*.md
var docs embed.FS

// Doc returns the Markdown documentation of the rule with the given ID.
func Doc(id string) (string, bool) {
	data, err := docs.ReadFile(path.Join("docs", id+".md"))
	if err != nil {
		return "", false
	}
	return string(data), true
}
