package cli

import (
	"errors"
	"io/fs"

	"github.com/yaklabco/apidirlint/internal/configloader"
)

// Exit codes for apidirlint.
const (
	// ExitSuccess indicates every file is valid.
	ExitSuccess = 0

	// ExitIssues indicates violations were found or no file was given.
	ExitIssues = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

var (
	// ErrNoInput is returned when no file argument was given.
	ErrNoInput = errors.New("no input file")

	// ErrIssuesFound is returned when validation reported violations.
	ErrIssuesFound = errors.New("validation issues found")

	// ErrIO is returned when a file could not be read or written.
	ErrIO = errors.New("file I/O failed")

	// ErrUsage marks invalid flags or arguments.
	ErrUsage = errors.New("invalid usage")
)

// ExitCode maps a command error to the process exit status.
// Configuration errors outrank I/O errors (a missing --config file is a
// configuration error), and an unreadable input outranks violations found
// in other inputs.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrUsage):
		return ExitInvalidUsage
	case errors.Is(err, configloader.ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrIO), errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission):
		return ExitIOError
	case errors.Is(err, ErrNoInput), errors.Is(err, ErrIssuesFound):
		return ExitIssues
	default:
		return ExitInternalError
	}
}

// IsSilent reports whether err only carries an exit status and has already
// been communicated through the command's output.
func IsSilent(err error) bool {
	return errors.Is(err, ErrNoInput) || errors.Is(err, ErrIssuesFound)
}
