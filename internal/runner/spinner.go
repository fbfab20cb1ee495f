package runner

import (
	"bytes"
	"context"
	"errors"

	oerrors "github.com/opmodel/scaffold/internal/errors"
	"github.com/opmodel/scaffold/internal/output"
)

// Spinner runs commands behind a terminal spinner. Command output is
// buffered and shown only when the command fails.
type Spinner struct {
	// Env is passed through to Exec.
	Env []string
}

// Run executes cmd with a spinner titled after the command line.
func (s *Spinner) Run(ctx context.Context, cmd Command) error {
	var buf bytes.Buffer
	e := &Exec{Stdout: &buf, Stderr: &buf, Env: s.Env}

	err := output.RunWithSpinner(ctx, func() error {
		return e.Run(ctx, cmd)
	}, output.WithTitle(cmd.String()))
	if err == nil {
		return nil
	}

	// Only a finished command has released buf.
	var cmdErr *oerrors.CommandError
	if errors.As(err, &cmdErr) {
		cmdErr.Output = buf.String()
		output.Details(cmdErr.Output)
	}
	return err
}
