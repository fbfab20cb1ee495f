// Package templates provides the embedded project templates for scaffold.
package templates

import "strings"

// DefaultPythonVersion is the minimum Python version written into new projects.
const DefaultPythonVersion = "3.12"

// Spec describes one file of the project skeleton.
type Spec struct {
	// Path is the output path relative to the project root, slash-separated.
	// It is itself a template (e.g., "src/{{.PackageName}}/main.py").
	Path string

	// Source is the template path within the embedded filesystem.
	Source string

	// Description is shown next to the file in the creation report.
	Description string

	// Disabled entries are kept in the registry but never rendered or written.
	Disabled bool
}

// TemplateData holds the data passed to template rendering.
type TemplateData struct {
	// ProjectName is the project name as given (e.g., "my-app").
	ProjectName string

	// PackageName is the Python package name (e.g., "my_app").
	PackageName string

	// PythonVersion is the minimum supported Python version (e.g., "3.12").
	PythonVersion string
}

// PythonTag returns PythonVersion without dots (e.g., "312"), as used by
// ruff's target-version.
func (d TemplateData) PythonTag() string {
	return strings.ReplaceAll(d.PythonVersion, ".", "")
}

// TemplateFile is a rendered template ready to be written.
type TemplateFile struct {
	// SourcePath is the path within the embedded filesystem.
	SourcePath string

	// TargetPath is the rendered output path, relative and slash-separated.
	TargetPath string

	// Description is copied from the registry entry.
	Description string

	// Content is the rendered content.
	Content []byte
}
