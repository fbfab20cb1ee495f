// Package testutil provides test helpers for scaffold tests.
package testutil

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/opmodel/scaffold/internal/output"
)

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// ReadTree returns the content of every regular file under root, keyed by
// slash-separated path relative to root.
func ReadTree(t *testing.T, root string) map[string]string {
	t.Helper()
	files := map[string]string{}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		files[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	if err != nil {
		t.Fatalf("failed to read tree %s: %v", root, err)
	}
	return files
}

// CaptureOutput redirects output package writes to buffers until the test ends.
func CaptureOutput(t *testing.T) (stdout, stderr *bytes.Buffer) {
	t.Helper()
	stdout, stderr = &bytes.Buffer{}, &bytes.Buffer{}
	output.SetOutput(stdout, stderr)
	output.SetupLogging(output.LogConfig{})
	t.Cleanup(func() {
		output.SetOutput(os.Stdout, os.Stderr)
		output.SetupLogging(output.LogConfig{})
	})
	return stdout, stderr
}

// IsolateEnv points HOME at a temp dir and unsets the given variables so a
// test never reads the developer's configuration.
func IsolateEnv(t *testing.T, keys ...string) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, k := range keys {
		t.Setenv(k, "")
	}
}
