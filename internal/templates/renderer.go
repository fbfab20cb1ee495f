package templates

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"text/template"

	oerrors "github.com/opmodel/scaffold/internal/errors"
)

// Renderer handles template rendering with data substitution.
type Renderer struct {
	data  TemplateData
	fsys  fs.FS
	specs []Spec
}

// NewRenderer creates a renderer over the built-in templates.
func NewRenderer(data TemplateData) *Renderer {
	sub, err := fs.Sub(TemplateFS, rootDir)
	if err != nil {
		// rootDir is embedded at build time.
		panic(err)
	}
	return &Renderer{data: data, fsys: sub, specs: Enabled()}
}

// funcs are available inside every template.
var funcs = template.FuncMap{
	"quote":      quote,
	"shellquote": shellQuote,
}

// RenderFile renders a single template and returns the content.
func (r *Renderer) RenderFile(name string, content []byte) ([]byte, error) {
	tmpl, err := template.New(name).Funcs(funcs).Option("missingkey=error").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, r.data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	return buf.Bytes(), nil
}

// RenderString renders a template string and returns the result.
func (r *Renderer) RenderString(content string) (string, error) {
	result, err := r.RenderFile("string", []byte(content))
	if err != nil {
		return "", err
	}
	return string(result), nil
}

// TargetPath renders the output path of a registry entry.
func (r *Renderer) TargetPath(s Spec) (string, error) {
	p, err := r.RenderString(s.Path)
	if err != nil {
		return "", fmt.Errorf("rendering path %s: %w", s.Path, err)
	}
	return p, nil
}

// RenderAll renders every enabled template in registry order. Rendered
// content is syntax-checked before it is returned.
func (r *Renderer) RenderAll() ([]TemplateFile, error) {
	files := make([]TemplateFile, 0, len(r.specs))

	for _, s := range r.specs {
		content, err := fs.ReadFile(r.fsys, s.Source)
		if err != nil {
			return nil, oerrors.Wrap(oerrors.ErrTemplate, fmt.Sprintf("reading %s: %v", s.Source, err))
		}

		rendered, err := r.RenderFile(path.Base(s.Source), content)
		if err != nil {
			return nil, oerrors.Wrap(oerrors.ErrTemplate, fmt.Sprintf("rendering %s: %v", s.Source, err))
		}

		target, err := r.TargetPath(s)
		if err != nil {
			return nil, oerrors.Wrap(oerrors.ErrTemplate, err.Error())
		}

		f := TemplateFile{
			SourcePath:  s.Source,
			TargetPath:  target,
			Description: s.Description,
			Content:     rendered,
		}
		if err := CheckSyntax(f); err != nil {
			return nil, err
		}

		files = append(files, f)
	}

	return files, nil
}
