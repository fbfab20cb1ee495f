package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opmodel/scaffold/internal/output"
)

func TestWriteFileAndReadTree(t *testing.T) {
	dir := t.TempDir()
	WriteFile(t, dir, "a.txt", "a")
	WriteFile(t, dir, "sub/b.txt", "b")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "empty"), 0o755))

	assert.Equal(t, map[string]string{"a.txt": "a", "sub/b.txt": "b"}, ReadTree(t, dir))
}

func TestCaptureOutput(t *testing.T) {
	stdout, stderr := CaptureOutput(t)
	output.Println("hello")
	output.Info("logged")

	assert.Equal(t, "hello\n", stdout.String())
	assert.Contains(t, stderr.String(), "logged")
}
