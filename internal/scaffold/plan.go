package scaffold

import (
	"github.com/opmodel/scaffold/internal/project"
	"github.com/opmodel/scaffold/internal/templates"
)

// PlannedFile is a file a run would write.
type PlannedFile struct {
	Path        string `json:"path" yaml:"path"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Plan lists everything a run would do, without doing it.
type Plan struct {
	Project     string        `json:"project" yaml:"project"`
	PackageName string        `json:"packageName" yaml:"packageName"`
	Root        string        `json:"root" yaml:"root"`
	Directories []string      `json:"directories" yaml:"directories"`
	Files       []PlannedFile `json:"files" yaml:"files"`
	Commands    []string      `json:"commands,omitempty" yaml:"commands,omitempty"`
}

// Plan returns what Run would do for name. Templates are rendered so a
// broken template fails here too; the filesystem and runner are not used.
func (s *Scaffolder) Plan(name string) (*Plan, error) {
	p, err := project.New(s.parentDir, name)
	if err != nil {
		return nil, err
	}

	files, err := templates.NewRenderer(s.templateData(p)).RenderAll()
	if err != nil {
		return nil, err
	}

	plan := &Plan{
		Project:     p.Name,
		PackageName: p.PackageName,
		Root:        p.Root,
		Directories: p.Directories(),
		Files:       make([]PlannedFile, 0, len(files)),
	}
	for _, f := range files {
		plan.Files = append(plan.Files, PlannedFile{Path: f.TargetPath, Description: f.Description})
	}

	cmds := append(s.installCommands(p), s.vcsCommands(p)...)
	for _, c := range cmds {
		plan.Commands = append(plan.Commands, c.String())
	}

	return plan, nil
}
