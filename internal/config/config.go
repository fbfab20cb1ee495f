// Package config provides configuration loading and resolution for scaffold.
package config

// Built-in defaults.
const (
	DefaultPackageManager = "uv"
	DefaultVCS            = "git"
	DefaultCommitMessage  = "Initial commit"
	DefaultPythonVersion  = "3.12"
)

// DefaultDevDependencies are the development-only packages added to every
// new project: a linter/formatter and a test runner.
func DefaultDevDependencies() []string {
	return []string{"ruff", "pytest"}
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: false. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Config represents the scaffold configuration file (~/.scaffold/config.yaml).
// Every field is optional; zero values fall back to the built-in defaults.
type Config struct {
	// PackageManager is the package manager binary. Env: SCAFFOLD_PACKAGE_MANAGER.
	PackageManager string `mapstructure:"packageManager" yaml:"packageManager,omitempty"`

	// VCS is the version control binary. Env: SCAFFOLD_VCS.
	VCS string `mapstructure:"vcs" yaml:"vcs,omitempty"`

	// DevDependencies are added with "<pm> add --dev". Env: SCAFFOLD_DEV_DEPENDENCIES
	// (comma-separated).
	DevDependencies []string `mapstructure:"devDependencies" yaml:"devDependencies,omitempty"`

	// CommitMessage is the message of the initial commit. Env: SCAFFOLD_COMMIT_MESSAGE.
	CommitMessage string `mapstructure:"commitMessage" yaml:"commitMessage,omitempty"`

	// PythonVersion is the minimum Python version. Env: SCAFFOLD_PYTHON_VERSION.
	PythonVersion string `mapstructure:"pythonVersion" yaml:"pythonVersion,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
func DefaultConfig() *Config {
	return &Config{
		PackageManager:  DefaultPackageManager,
		VCS:             DefaultVCS,
		DevDependencies: DefaultDevDependencies(),
		CommitMessage:   DefaultCommitMessage,
		PythonVersion:   DefaultPythonVersion,
	}
}
