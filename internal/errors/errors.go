// Package errors provides sentinel errors, structured error details and exit
// code mapping for the scaffold CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrUsage indicates the command was invoked incorrectly (missing project name).
	ErrUsage = errors.New("usage error")

	// ErrCommand indicates an external command exited unsuccessfully.
	ErrCommand = errors.New("command failed")

	// ErrFilesystem indicates a directory or file could not be created.
	ErrFilesystem = errors.New("filesystem error")

	// ErrTemplate indicates a built-in template failed to render.
	ErrTemplate = errors.New("template error")
)

// DetailError captures structured error information for user-facing output.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file or directory involved (optional).
	Location string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewUsageError creates a usage error carrying the usage line as its hint.
func NewUsageError(message, usage string) error {
	return &DetailError{
		Type:    "usage",
		Message: message,
		Hint:    usage,
		Cause:   ErrUsage,
	}
}

// NewFilesystemError wraps a failed filesystem operation on path.
func NewFilesystemError(op, path string, err error) error {
	return &DetailError{
		Type:     "filesystem operation failed",
		Message:  fmt.Sprintf("%s: %v", op, err),
		Location: path,
		Cause:    fmt.Errorf("%w: %w", ErrFilesystem, err),
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
