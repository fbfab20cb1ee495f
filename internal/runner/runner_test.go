package runner

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/opmodel/scaffold/internal/errors"
	"github.com/opmodel/scaffold/internal/output"
)

func TestCommandString(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
		want string
	}{
		{"simple", New("", "uv", "sync"), "uv sync"},
		{"quoted arg", New("", "git", "commit", "-m", "Initial commit"), `git commit -m "Initial commit"`},
		{"no args", New("", "git"), "git"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cmd.String())
		})
	}
}

func TestCommandArgv(t *testing.T) {
	cmd := New("dir", "uv", "add", "--dev", "ruff")
	assert.Equal(t, []string{"uv", "add", "--dev", "ruff"}, cmd.Argv())
	assert.Equal(t, "dir", cmd.Dir)
}

func TestRunnerFunc(t *testing.T) {
	var got Command
	r := RunnerFunc(func(_ context.Context, cmd Command) error {
		got = cmd
		return nil
	})
	require.NoError(t, r.Run(context.Background(), New("x", "git", "init")))
	assert.Equal(t, "git", got.Name)
}

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available, skipping")
	}
}

func TestExec_Success(t *testing.T) {
	requireShell(t)

	var stdout bytes.Buffer
	e := &Exec{Stdout: &stdout, Stderr: &stdout}
	dir := t.TempDir()

	err := e.Run(context.Background(), New(dir, "sh", "-c", "pwd"))
	require.NoError(t, err)

	// Resolve symlinks (macOS /var -> /private/var).
	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(string(bytes.TrimSpace(stdout.Bytes())))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestExec_NonZeroExit(t *testing.T) {
	requireShell(t)

	var stderr bytes.Buffer
	e := &Exec{Stdout: &stderr, Stderr: &stderr}

	err := e.Run(context.Background(), New("", "sh", "-c", "echo boom >&2; exit 42"))
	require.Error(t, err)

	var cmdErr *oerrors.CommandError
	require.True(t, errors.As(err, &cmdErr))
	assert.Equal(t, 42, cmdErr.ExitCode)
	assert.True(t, errors.Is(err, oerrors.ErrCommand))
	assert.Contains(t, stderr.String(), "boom")
	assert.Equal(t, 42, oerrors.ExitCodeFromError(err))
}

func TestExec_MissingBinary(t *testing.T) {
	e := &Exec{}
	err := e.Run(context.Background(), New("", "definitely-not-a-real-binary-xyz"))
	require.Error(t, err)

	var cmdErr *oerrors.CommandError
	require.True(t, errors.As(err, &cmdErr))
	assert.Equal(t, oerrors.ExitCodeNotFound, cmdErr.ExitCode)
}

func TestSpinner_FailureReplaysOutput(t *testing.T) {
	requireShell(t)
	if output.IsTTY() {
		t.Skip("stdout is a terminal, skipping")
	}

	var out, errOut bytes.Buffer
	output.SetOutput(&out, &errOut)
	t.Cleanup(func() { output.SetOutput(os.Stdout, os.Stderr) })

	s := &Spinner{}
	err := s.Run(context.Background(), New("", "sh", "-c", "echo resolving; echo no solution >&2; exit 1"))
	require.Error(t, err)

	var cmdErr *oerrors.CommandError
	require.True(t, errors.As(err, &cmdErr))
	assert.Equal(t, 1, cmdErr.ExitCode)
	assert.Contains(t, cmdErr.Output, "resolving")
	assert.Contains(t, cmdErr.Output, "no solution")
	assert.Contains(t, errOut.String(), "no solution")
	assert.Empty(t, out.String())
}

func TestSpinner_SuccessIsQuiet(t *testing.T) {
	requireShell(t)
	if output.IsTTY() {
		t.Skip("stdout is a terminal, skipping")
	}

	var out, errOut bytes.Buffer
	output.SetOutput(&out, &errOut)
	t.Cleanup(func() { output.SetOutput(os.Stdout, os.Stderr) })

	s := &Spinner{}
	require.NoError(t, s.Run(context.Background(), New("", "sh", "-c", "echo fine")))
	assert.Empty(t, out.String())
	assert.Empty(t, errOut.String())
}
