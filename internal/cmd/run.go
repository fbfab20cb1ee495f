package cmd

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	oerrors "github.com/opmodel/scaffold/internal/errors"
	"github.com/opmodel/scaffold/internal/output"
	"github.com/opmodel/scaffold/internal/scaffold"
	"github.com/opmodel/scaffold/internal/templates"
)

// treeColumn is where file descriptions start in the creation report.
const treeColumn = 30

func (o *rootOptions) scaffolder(pythonVersion string) *scaffold.Scaffolder {
	return scaffold.New(scaffold.Options{
		Runner: o.commandRunner(),
		Tools: scaffold.Tools{
			PackageManager:  o.resolved.PackageManager.Value,
			VCS:             o.resolved.VCS.Value,
			DevDependencies: o.resolved.DevDependencies.Value,
			CommitMessage:   o.resolved.CommitMessage.Value,
		},
		PythonVersion: pythonVersion,
		ParentDir:     o.dir,
		SkipInstall:   o.skipInstall,
		SkipGit:       o.skipGit,
	})
}

func (o *rootOptions) run(c *cobra.Command, name string) error {
	format := output.ParseOutputFormat(o.outputFormat)
	if !format.IsValid() {
		return &oerrors.ExitError{
			Code: oerrors.ExitUsageError,
			Err: &oerrors.DetailError{
				Type:    "usage",
				Message: fmt.Sprintf("unknown output format: %s", o.outputFormat),
				Hint:    fmt.Sprintf("Valid formats: %s", strings.Join(output.ValidFormats(), ", ")),
				Cause:   oerrors.ErrUsage,
			},
		}
	}

	pyVersion, err := templates.NormalizePythonVersion(o.resolved.PythonVersion.Value)
	if err != nil {
		return &oerrors.ExitError{
			Code: oerrors.ExitUsageError,
			Err: &oerrors.DetailError{
				Type:    "usage",
				Message: err.Error(),
				Hint:    fmt.Sprintf("Set --python-version to a Python 3 release (source: %s).", o.resolved.PythonVersion.Source),
				Cause:   oerrors.ErrUsage,
			},
		}
	}

	s := o.scaffolder(pyVersion)

	if o.dryRun {
		plan, err := s.Plan(name)
		if err != nil {
			return toExitError(err)
		}
		return printPlan(plan, format)
	}

	res, err := s.Run(c.Context(), name)
	if err != nil {
		return toExitError(err)
	}

	printReport(res, o.skipInstall)
	return nil
}

// toExitError attaches the exit code. Command failures were already
// reported by the step logger and the command's own output.
func toExitError(err error) error {
	return &oerrors.ExitError{
		Code:    oerrors.ExitCodeFromError(err),
		Err:     err,
		Printed: errors.Is(err, oerrors.ErrCommand),
	}
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

func printReport(res *scaffold.Result, skipInstall bool) {
	p := res.Project

	output.Println(output.FormatCheckmark(fmt.Sprintf("Created project '%s' in %s\n",
		output.StyleNoun.Render(p.Name), absPath(p.Root))))

	entries := make([]output.FileEntry, 0, len(res.Files)+1)
	entries = append(entries, output.FileEntry{
		Path:        p.Name + "/",
		Description: "Project directory",
	})
	for _, f := range res.Files {
		entries = append(entries, output.FileEntry{
			Path:        "  " + f.TargetPath,
			Description: f.Description,
		})
	}
	output.Print(output.RenderFileTree(entries, treeColumn))

	steps := []string{"cd " + p.Name}
	if skipInstall {
		steps = append(steps, "make install")
	}
	steps = append(steps, "make test", "make run")

	output.Println("\nNext steps:")
	for _, s := range steps {
		output.Println("  " + output.StyleCommand.Render(s))
	}
}

func printPlan(plan *scaffold.Plan, format output.OutputFormat) error {
	if format != output.FormatText {
		return output.WriteStructured(output.Stdout(), format, plan)
	}

	output.Println(fmt.Sprintf("Would create project '%s' in %s\n",
		output.StyleNoun.Render(plan.Project), absPath(plan.Root)))

	entries := make([]output.FileEntry, 0, len(plan.Files)+1)
	entries = append(entries, output.FileEntry{
		Path:        plan.Project + "/",
		Description: "Project directory",
	})
	for _, f := range plan.Files {
		entries = append(entries, output.FileEntry{
			Path:        "  " + f.Path,
			Description: f.Description,
		})
	}
	output.Print(output.RenderFileTree(entries, treeColumn))

	if len(plan.Commands) > 0 {
		output.Println("\nWould run:")
		for _, c := range plan.Commands {
			output.Println("  " + output.StyleCommand.Render(c))
		}
	}
	return nil
}
