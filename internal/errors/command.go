package errors

import (
	"fmt"
	"strings"
)

// ExitCodeNotFound is the conventional shell exit code for a missing binary.
const ExitCodeNotFound = 127

// CommandError reports an external command that could not run or exited non-zero.
type CommandError struct {
	// Argv is the command line that was executed.
	Argv []string

	// Dir is the working directory of the command.
	Dir string

	// ExitCode is the process exit code, or ExitCodeNotFound when the
	// binary could not be started.
	ExitCode int

	// Output holds captured combined output when the caller buffered it.
	Output string

	// Err is the underlying exec error.
	Err error
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	cmd := strings.Join(e.Argv, " ")
	if e.Err != nil {
		return fmt.Sprintf("%s: exit status %d: %v", cmd, e.ExitCode, e.Err)
	}
	return fmt.Sprintf("%s: exit status %d", cmd, e.ExitCode)
}

// Is reports ErrCommand so callers can match any command failure.
func (e *CommandError) Is(target error) bool {
	return target == ErrCommand
}

// Unwrap returns the underlying exec error.
func (e *CommandError) Unwrap() error {
	return e.Err
}
