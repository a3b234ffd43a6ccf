package lint

// Report is the ordered result of validating one document.
// Diagnostics keep the order in which the engine produced them.
type Report struct {
	// Path is the validated file path.
	Path string

	// Diagnostics holds every violation in emission order.
	Diagnostics []Diagnostic

	// Sections is the number of sections seen.
	Sections int

	// Rows is the number of table rows seen.
	Rows int
}

// HasIssues returns true if any diagnostics were found.
func (r *Report) HasIssues() bool {
	return r != nil && len(r.Diagnostics) > 0
}

// IssueCount returns the total number of diagnostics.
func (r *Report) IssueCount() int {
	if r == nil {
		return 0
	}
	return len(r.Diagnostics)
}

// CountByRule returns the number of diagnostics per rule ID.
func (r *Report) CountByRule() map[string]int {
	counts := make(map[string]int)
	if r == nil {
		return counts
	}
	for _, diag := range r.Diagnostics {
		counts[diag.RuleID]++
	}
	return counts
}

func (r *Report) add(path string, diags []Diagnostic) {
	for _, diag := range diags {
		if diag.FilePath == "" {
			diag.FilePath = path
		}
		r.Diagnostics = append(r.Diagnostics, diag)
	}
}
