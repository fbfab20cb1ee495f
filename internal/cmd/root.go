// Package cmd provides the scaffold command line.
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opmodel/scaffold/internal/config"
	oerrors "github.com/opmodel/scaffold/internal/errors"
	"github.com/opmodel/scaffold/internal/output"
	"github.com/opmodel/scaffold/internal/project"
	"github.com/opmodel/scaffold/internal/runner"
	"github.com/opmodel/scaffold/internal/version"
)

// rootOptions holds flag values for one command instance.
type rootOptions struct {
	dir            string
	configFile     string
	outputFormat   string
	verbose        bool
	timestamps     bool
	dryRun         bool
	skipInstall    bool
	skipGit        bool
	packageManager string
	vcs            string
	commitMessage  string
	pythonVersion  string

	// runner overrides command execution; nil selects Exec or Spinner.
	runner runner.Runner

	// resolved is populated in PersistentPreRunE.
	resolved *config.ResolvedConfig
}

// NewRootCmd creates the root command for the scaffold CLI.
func NewRootCmd() *cobra.Command {
	return newRootCmd(nil)
}

func newRootCmd(r runner.Runner) *cobra.Command {
	opts := &rootOptions{runner: r}

	c := &cobra.Command{
		Use:   project.Usage,
		Short: "Create a new Python project",
		Long: `Create a new Python project skeleton.

Creates <project-name>/ with a src layout, tests, editor settings and a
Makefile, installs ruff and pytest with uv, and records an initial git
commit. Hyphens in the project name become underscores in the package name.

Existing files in the project directory are overwritten.

Examples:
  # Create my-app/ with package my_app
  scaffold my-app

  # Create the project under ./projects
  scaffold my-app --dir ./projects

  # Show what would be created, as YAML
  scaffold my-app --dry-run -o yaml

  # Only write files
  scaffold my-app --skip-install --skip-git

  # Names starting with "-" go after "--"
  scaffold -- -x`,
		Args:          exactlyOneProjectName,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return opts.initialize(c)
		},
		RunE: func(c *cobra.Command, args []string) error {
			return opts.run(c, args[0])
		},
	}
	c.SetVersionTemplate("{{.Version}}\n")
	c.Version = version.Get().String()

	f := c.Flags()
	f.StringVarP(&opts.dir, "dir", "d", ".", "Parent directory to create the project in")
	f.StringVar(&opts.configFile, "config", "", "Path to config file (env: SCAFFOLD_CONFIG)")
	f.StringVarP(&opts.outputFormat, "output", "o", "text",
		fmt.Sprintf("Dry-run output format (%s)", strings.Join(output.ValidFormats(), ", ")))
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output")
	f.BoolVar(&opts.timestamps, "timestamps", false, "Show timestamps in log output")
	f.BoolVar(&opts.dryRun, "dry-run", false, "Print what would be created without creating it")
	f.BoolVar(&opts.skipInstall, "skip-install", false, "Do not run the package manager")
	f.BoolVar(&opts.skipGit, "skip-git", false, "Do not initialize version control")
	f.StringVar(&opts.packageManager, "package-manager", "", "Package manager binary (env: SCAFFOLD_PACKAGE_MANAGER)")
	f.StringVar(&opts.vcs, "vcs", "", "Version control binary (env: SCAFFOLD_VCS)")
	f.StringVar(&opts.commitMessage, "commit-message", "", "Initial commit message (env: SCAFFOLD_COMMIT_MESSAGE)")
	f.StringVar(&opts.pythonVersion, "python-version", "", "Minimum Python version (env: SCAFFOLD_PYTHON_VERSION)")

	return c
}

// exactlyOneProjectName rejects anything but a single non-empty argument
// with the usage message and exit code 1.
func exactlyOneProjectName(_ *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		return usageError("missing project name")
	case len(args) > 1:
		return usageError(fmt.Sprintf("expected one project name, got %d arguments", len(args)))
	case args[0] == "":
		return usageError("missing project name")
	}
	return nil
}

func usageError(msg string) error {
	return &oerrors.ExitError{
		Code: oerrors.ExitUsageError,
		Err:  oerrors.NewUsageError(msg, "Usage: "+project.Usage),
	}
}

// initialize sets up logging and resolves configuration.
func (o *rootOptions) initialize(c *cobra.Command) error {
	logCfg := output.LogConfig{Verbose: o.verbose}
	if c.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(o.timestamps)
	}
	output.SetupLogging(logCfg)

	resolved, cfg, err := config.LoadResolved(o.configFile, config.ResolveOptions{
		PackageManagerFlag: o.packageManager,
		VCSFlag:            o.vcs,
		CommitMessageFlag:  o.commitMessage,
		PythonVersionFlag:  o.pythonVersion,
	})
	if err != nil {
		return &oerrors.ExitError{
			Code: oerrors.ExitGeneralError,
			Err: &oerrors.DetailError{
				Type:    "configuration error",
				Message: err.Error(),
				Hint:    "Check the file passed with --config or SCAFFOLD_CONFIG.",
			},
		}
	}
	o.resolved = resolved

	// Timestamps: flag (if explicitly set) > config > default (off).
	if logCfg.Timestamps == nil && cfg.Log.Timestamps != nil {
		logCfg.Timestamps = cfg.Log.Timestamps
		output.SetupLogging(logCfg)
	}

	output.Debug("initializing CLI",
		"config", resolved.ConfigPath.Value,
		"configSource", resolved.ConfigPath.Source,
		"packageManager", resolved.PackageManager.Value,
		"vcs", resolved.VCS.Value,
		"dir", o.dir,
	)

	return nil
}

// commandRunner picks how external commands are shown: streamed when
// verbose or not on a terminal, behind a spinner otherwise.
func (o *rootOptions) commandRunner() runner.Runner {
	if o.runner != nil {
		return o.runner
	}
	if o.verbose || !output.IsTTY() {
		return &runner.Exec{Stdout: output.Stdout(), Stderr: output.Stderr()}
	}
	return &runner.Spinner{}
}
