package config

import (
	"os"
	"strings"

	"github.com/opmodel/scaffold/internal/output"
)

// Environment variables read during resolution.
const (
	EnvConfig          = "SCAFFOLD_CONFIG"
	EnvPackageManager  = "SCAFFOLD_PACKAGE_MANAGER"
	EnvVCS             = "SCAFFOLD_VCS"
	EnvDevDependencies = "SCAFFOLD_DEV_DEPENDENCIES"
	EnvCommitMessage   = "SCAFFOLD_COMMIT_MESSAGE"
	EnvPythonVersion   = "SCAFFOLD_PYTHON_VERSION"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is a resolved setting and where it came from.
type ResolvedValue struct {
	Value  string
	Source ConfigSource
}

// ResolvedList is a resolved list setting and where it came from.
type ResolvedList struct {
	Value  []string
	Source ConfigSource
}

// ResolvedConfig holds every setting after precedence is applied.
type ResolvedConfig struct {
	ConfigPath      ResolvedValue
	PackageManager  ResolvedValue
	VCS             ResolvedValue
	DevDependencies ResolvedList
	CommitMessage   ResolvedValue
	PythonVersion   ResolvedValue
}

// ResolveOptions carries flag values (empty when unset) and the loaded file.
type ResolveOptions struct {
	PackageManagerFlag string
	VCSFlag            string
	CommitMessageFlag  string
	PythonVersionFlag  string

	// Config is the loaded config file; nil is treated as empty.
	Config *Config
}

// resolveString applies flag > env > config > default.
func resolveString(flag, envKey, cfg, def string) ResolvedValue {
	if flag != "" {
		return ResolvedValue{Value: flag, Source: SourceFlag}
	}
	if env := os.Getenv(envKey); env != "" {
		return ResolvedValue{Value: env, Source: SourceEnv}
	}
	if cfg != "" {
		return ResolvedValue{Value: cfg, Source: SourceConfig}
	}
	return ResolvedValue{Value: def, Source: SourceDefault}
}

// splitList parses a comma-separated environment value.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Resolve applies precedence to every setting except the config path.
func Resolve(opts ResolveOptions) *ResolvedConfig {
	cfg := opts.Config
	if cfg == nil {
		cfg = &Config{}
	}
	def := DefaultConfig()

	r := &ResolvedConfig{
		PackageManager: resolveString(opts.PackageManagerFlag, EnvPackageManager, cfg.PackageManager, def.PackageManager),
		VCS:            resolveString(opts.VCSFlag, EnvVCS, cfg.VCS, def.VCS),
		CommitMessage:  resolveString(opts.CommitMessageFlag, EnvCommitMessage, cfg.CommitMessage, def.CommitMessage),
		PythonVersion:  resolveString(opts.PythonVersionFlag, EnvPythonVersion, cfg.PythonVersion, def.PythonVersion),
	}

	switch env := splitList(os.Getenv(EnvDevDependencies)); {
	case len(env) > 0:
		r.DevDependencies = ResolvedList{Value: env, Source: SourceEnv}
	case len(cfg.DevDependencies) > 0:
		r.DevDependencies = ResolvedList{Value: cfg.DevDependencies, Source: SourceConfig}
	default:
		r.DevDependencies = ResolvedList{Value: def.DevDependencies, Source: SourceDefault}
	}

	return r
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) SCAFFOLD_CONFIG env, (3) ~/.scaffold/config.yaml.
func ResolveConfigPath(flag string) (ResolvedValue, error) {
	if flag != "" {
		return ResolvedValue{Value: flag, Source: SourceFlag}, nil
	}
	if env := os.Getenv(EnvConfig); env != "" {
		return ResolvedValue{Value: env, Source: SourceEnv}, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return ResolvedValue{}, err
	}
	return ResolvedValue{Value: paths.ConfigFile, Source: SourceDefault}, nil
}

// LoadResolved resolves the config path, loads the file and applies
// precedence. Only an explicitly named config file must exist.
func LoadResolved(configFlag string, opts ResolveOptions) (*ResolvedConfig, *Config, error) {
	cfg := &Config{}
	path, err := ResolveConfigPath(configFlag)
	if err != nil {
		// No home directory: run on flags, env and defaults alone.
		output.Debug("skipping default config file", "err", err)
		path = ResolvedValue{Source: SourceDefault}
	} else {
		cfg, err = NewLoader().Load(path.Value, path.Source != SourceDefault)
		if err != nil {
			return nil, nil, err
		}
	}

	opts.Config = cfg
	resolved := Resolve(opts)
	resolved.ConfigPath = path

	output.Debug("resolved configuration",
		"config", path.Value,
		"packageManager", resolved.PackageManager.Value,
		"packageManagerSource", resolved.PackageManager.Source,
		"vcs", resolved.VCS.Value,
		"devDependencies", strings.Join(resolved.DevDependencies.Value, ","),
	)

	return resolved, cfg, nil
}
