// Package project derives the identifiers and directory layout of a new
// Python project from its name.
package project

import (
	"path/filepath"
	"strings"

	oerrors "github.com/opmodel/scaffold/internal/errors"
)

// Usage is the one-line invocation shown on usage errors.
const Usage = "scaffold <project-name>"

// Project is a project about to be scaffolded.
type Project struct {
	// Name is the user-supplied project name (e.g., "my-app").
	// Used in human-facing contexts: README title, pyproject name, script name.
	Name string

	// PackageName is Name with hyphens replaced by underscores (e.g., "my_app").
	// Used wherever a Python identifier is required.
	PackageName string

	// Root is the project directory (parent dir joined with Name).
	Root string
}

// DerivePackageName converts a project name into a Python package name by
// replacing every hyphen with an underscore. No other character is changed.
func DerivePackageName(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

// New returns the project for name rooted under parentDir.
// An empty name is a usage error.
func New(parentDir, name string) (*Project, error) {
	if name == "" {
		return nil, oerrors.NewUsageError("missing project name", "Usage: "+Usage)
	}
	if parentDir == "" {
		parentDir = "."
	}

	return &Project{
		Name:        name,
		PackageName: DerivePackageName(name),
		Root:        filepath.Join(parentDir, name),
	}, nil
}

// Directories returns the directories that must exist before any file is
// written, in creation order. The first entry also creates Root.
func (p *Project) Directories() []string {
	return []string{
		filepath.Join(p.Root, "src", p.PackageName),
		filepath.Join(p.Root, "tests"),
		filepath.Join(p.Root, ".vscode"),
	}
}

// Path joins a slash-separated path relative to the project root.
func (p *Project) Path(rel string) string {
	return filepath.Join(p.Root, filepath.FromSlash(rel))
}
