// Package runnertest provides a recording Runner for tests.
package runnertest

import (
	"context"
	"strings"
	"sync"

	oerrors "github.com/opmodel/scaffold/internal/errors"
	"github.com/opmodel/scaffold/internal/runner"
)

// Recorder records every command it is asked to run and never starts a process.
type Recorder struct {
	// Fail maps a command line prefix (e.g., "uv sync") to the exit code the
	// matching command fails with.
	Fail map[string]int

	mu    sync.Mutex
	calls []runner.Command
}

// Run records cmd and fails it if it matches a Fail prefix.
func (r *Recorder) Run(_ context.Context, cmd runner.Command) error {
	r.mu.Lock()
	r.calls = append(r.calls, cmd)
	r.mu.Unlock()

	line := strings.Join(cmd.Argv(), " ")
	for prefix, code := range r.Fail {
		if strings.HasPrefix(line, prefix) {
			return &oerrors.CommandError{Argv: cmd.Argv(), Dir: cmd.Dir, ExitCode: code}
		}
	}
	return nil
}

// Calls returns the recorded commands in invocation order.
func (r *Recorder) Calls() []runner.Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]runner.Command, len(r.calls))
	copy(out, r.calls)
	return out
}

// Lines returns the recorded commands as space-joined argv strings.
func (r *Recorder) Lines() []string {
	calls := r.Calls()
	lines := make([]string, len(calls))
	for i, c := range calls {
		lines[i] = strings.Join(c.Argv(), " ")
	}
	return lines
}

// Ran reports whether any recorded command starts with prefix.
func (r *Recorder) Ran(prefix string) bool {
	for _, l := range r.Lines() {
		if strings.HasPrefix(l, prefix) {
			return true
		}
	}
	return false
}
