package runner

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	oerrors "github.com/opmodel/scaffold/internal/errors"
	"github.com/opmodel/scaffold/internal/output"
)

// Exec runs commands as child processes.
type Exec struct {
	// Stdout and Stderr receive the child's output; default os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer

	// Env is the child environment. Nil inherits the current process environment.
	Env []string
}

// Run executes cmd and waits for it to finish. A missing binary is reported
// with exit code 127; a non-zero exit carries the child's exit code.
func (e *Exec) Run(ctx context.Context, cmd Command) error {
	bin, err := exec.LookPath(cmd.Name)
	if err != nil {
		return &oerrors.CommandError{
			Argv:     cmd.Argv(),
			Dir:      cmd.Dir,
			ExitCode: oerrors.ExitCodeNotFound,
			Err:      err,
		}
	}

	c := exec.CommandContext(ctx, bin, cmd.Args...)
	c.Dir = cmd.Dir
	c.Env = e.Env
	c.Stdout = e.Stdout
	if c.Stdout == nil {
		c.Stdout = os.Stdout
	}
	c.Stderr = e.Stderr
	if c.Stderr == nil {
		c.Stderr = os.Stderr
	}

	output.Debug("running command", "cmd", cmd.String(), "dir", cmd.Dir)

	if err := c.Run(); err != nil {
		cmdErr := &oerrors.CommandError{
			Argv:     cmd.Argv(),
			Dir:      cmd.Dir,
			ExitCode: oerrors.ExitGeneralError,
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			cmdErr.ExitCode = exitErr.ExitCode()
		} else {
			cmdErr.Err = err
		}
		return cmdErr
	}

	return nil
}
