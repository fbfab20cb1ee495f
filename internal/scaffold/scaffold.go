// Package scaffold creates a Python project skeleton: directory tree,
// template files, dependency installation and an initial commit.
//
// Steps run strictly in order and the first failure aborts the run. Nothing
// already created is removed.
package scaffold

import (
	"context"
	"fmt"
	"os"

	"github.com/opmodel/scaffold/internal/config"
	oerrors "github.com/opmodel/scaffold/internal/errors"
	"github.com/opmodel/scaffold/internal/output"
	"github.com/opmodel/scaffold/internal/project"
	"github.com/opmodel/scaffold/internal/runner"
	"github.com/opmodel/scaffold/internal/templates"
)

// Pipeline step names, used as log prefixes.
const (
	StepLayout  = "layout"
	StepRender  = "render"
	StepInstall = "install"
	StepVCS     = "vcs"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Tools names the external programs and their arguments.
type Tools struct {
	// PackageManager is the package manager binary (default "uv").
	PackageManager string

	// VCS is the version control binary (default "git").
	VCS string

	// DevDependencies are installed with "<pm> add --dev".
	DevDependencies []string

	// CommitMessage is the message of the initial commit.
	CommitMessage string
}

// DefaultTools returns the uv + git toolchain.
func DefaultTools() Tools {
	return Tools{
		PackageManager:  config.DefaultPackageManager,
		VCS:             config.DefaultVCS,
		DevDependencies: config.DefaultDevDependencies(),
		CommitMessage:   config.DefaultCommitMessage,
	}
}

// Options configures a Scaffolder.
type Options struct {
	// Runner executes external commands. Defaults to runner.Exec.
	Runner runner.Runner

	// Tools selects the package manager and VCS. Zero fields take defaults.
	Tools Tools

	// PythonVersion is written into pyproject.toml (default "3.12").
	PythonVersion string

	// ParentDir is where the project directory is created (default ".").
	ParentDir string

	// SkipInstall skips the package manager step.
	SkipInstall bool

	// SkipGit skips the version control step.
	SkipGit bool
}

// Scaffolder runs the project creation pipeline.
type Scaffolder struct {
	runner        runner.Runner
	tools         Tools
	pythonVersion string
	parentDir     string
	skipInstall   bool
	skipGit       bool
}

// New returns a Scaffolder with defaults applied to opts.
func New(opts Options) *Scaffolder {
	def := DefaultTools()
	tools := opts.Tools
	if tools.PackageManager == "" {
		tools.PackageManager = def.PackageManager
	}
	if tools.VCS == "" {
		tools.VCS = def.VCS
	}
	if len(tools.DevDependencies) == 0 {
		tools.DevDependencies = def.DevDependencies
	}
	if tools.CommitMessage == "" {
		tools.CommitMessage = def.CommitMessage
	}

	r := opts.Runner
	if r == nil {
		r = &runner.Exec{}
	}

	pyVersion := opts.PythonVersion
	if pyVersion == "" {
		pyVersion = templates.DefaultPythonVersion
	}

	return &Scaffolder{
		runner:        r,
		tools:         tools,
		pythonVersion: pyVersion,
		parentDir:     opts.ParentDir,
		skipInstall:   opts.SkipInstall,
		skipGit:       opts.SkipGit,
	}
}

// Result describes a completed run.
type Result struct {
	Project     *project.Project
	Directories []string
	Files       []templates.TemplateFile
	Commands    []runner.Command
}

func (s *Scaffolder) templateData(p *project.Project) templates.TemplateData {
	return templates.TemplateData{
		ProjectName:   p.Name,
		PackageName:   p.PackageName,
		PythonVersion: s.pythonVersion,
	}
}

// installCommands returns the package manager invocations for p.
func (s *Scaffolder) installCommands(p *project.Project) []runner.Command {
	if s.skipInstall {
		return nil
	}
	add := append([]string{"add", "--dev"}, s.tools.DevDependencies...)
	return []runner.Command{
		runner.New(p.Root, s.tools.PackageManager, add...),
		runner.New(p.Root, s.tools.PackageManager, "sync"),
	}
}

// vcsCommands returns the version control invocations for p.
func (s *Scaffolder) vcsCommands(p *project.Project) []runner.Command {
	if s.skipGit {
		return nil
	}
	return []runner.Command{
		runner.New(p.Root, s.tools.VCS, "init"),
		runner.New(p.Root, s.tools.VCS, "add", "."),
		runner.New(p.Root, s.tools.VCS, "commit", "-m", s.tools.CommitMessage),
	}
}

// Run creates the project named name. An empty name is a usage error and
// nothing is touched. On failure the returned Result holds what was done
// before the failing step.
func (s *Scaffolder) Run(ctx context.Context, name string) (*Result, error) {
	p, err := project.New(s.parentDir, name)
	if err != nil {
		return nil, err
	}

	// Render before touching the filesystem so a template bug creates nothing.
	files, err := templates.NewRenderer(s.templateData(p)).RenderAll()
	if err != nil {
		return nil, err
	}

	res := &Result{Project: p}

	if err := s.createLayout(p, res); err != nil {
		return res, err
	}
	if err := s.writeFiles(p, files, res); err != nil {
		return res, err
	}
	if err := s.runStep(ctx, StepInstall, s.installCommands(p), res); err != nil {
		return res, err
	}
	if err := s.runStep(ctx, StepVCS, s.vcsCommands(p), res); err != nil {
		return res, err
	}

	output.Debug("project created", "name", p.Name, "package", p.PackageName, "root", p.Root)
	return res, nil
}

func (s *Scaffolder) createLayout(p *project.Project, res *Result) error {
	log := output.StepLogger(StepLayout)
	for _, dir := range p.Directories() {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return oerrors.NewFilesystemError("create directory", dir, err)
		}
		log.Debug("created directory", "path", dir)
		res.Directories = append(res.Directories, dir)
	}
	return nil
}

func (s *Scaffolder) writeFiles(p *project.Project, files []templates.TemplateFile, res *Result) error {
	log := output.StepLogger(StepRender)
	for _, f := range files {
		path := p.Path(f.TargetPath)
		if err := os.WriteFile(path, f.Content, filePerm); err != nil {
			return oerrors.NewFilesystemError("write file", path, err)
		}
		log.Debug("wrote file", "path", f.TargetPath, "bytes", len(f.Content))
		res.Files = append(res.Files, f)
	}
	return nil
}

func (s *Scaffolder) runStep(ctx context.Context, step string, cmds []runner.Command, res *Result) error {
	log := output.StepLogger(step)
	if len(cmds) == 0 {
		log.Debug("skipped")
		return nil
	}
	for _, c := range cmds {
		if err := ctx.Err(); err != nil {
			return err
		}
		log.Debug("running", "cmd", c.String())
		if err := s.runner.Run(ctx, c); err != nil {
			log.Error("command failed", "cmd", c.String(), "code", oerrors.ExitCodeFromError(err))
			return fmt.Errorf("%s step: %w", step, err)
		}
		res.Commands = append(res.Commands, c)
	}
	return nil
}
