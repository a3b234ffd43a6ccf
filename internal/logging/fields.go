package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldFiles  = "files"
	FieldConfig = "config"
	FieldSource = "source"
	FieldFormat = "format"

	// Document fields.
	FieldSections = "sections"
	FieldRows     = "rows"
	FieldIssues   = "issues"
	FieldRule     = "rule"

	// Watch fields.
	FieldEvent    = "event"
	FieldDebounce = "debounce"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
