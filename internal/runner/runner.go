// Package runner executes the external tools scaffold delegates to (package
// manager, version control). The Runner interface lets tests replace real
// processes with a recorder.
package runner

import (
	"context"
	"strings"
)

// Command is one external process invocation.
type Command struct {
	// Dir is the working directory. Empty means the current directory.
	Dir string

	// Name is the program to run, looked up in PATH.
	Name string

	// Args are the program arguments.
	Args []string
}

// New builds a Command running name with args inside dir.
func New(dir, name string, args ...string) Command {
	return Command{Dir: dir, Name: name, Args: args}
}

// Argv returns the full argument vector including the program name.
func (c Command) Argv() []string {
	return append([]string{c.Name}, c.Args...)
}

// String returns the command line, quoting arguments that contain spaces.
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	for _, a := range c.Argv() {
		if a == "" || strings.ContainsAny(a, " \t\"'") {
			a = `"` + strings.ReplaceAll(a, `"`, `\"`) + `"`
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}

// Runner runs external commands. A non-nil error means the command did not
// complete successfully; implementations return *errors.CommandError so the
// exit code can be propagated.
type Runner interface {
	Run(ctx context.Context, cmd Command) error
}

// RunnerFunc adapts a function to the Runner interface.
type RunnerFunc func(ctx context.Context, cmd Command) error

// Run calls f(ctx, cmd).
func (f RunnerFunc) Run(ctx context.Context, cmd Command) error {
	return f(ctx, cmd)
}
