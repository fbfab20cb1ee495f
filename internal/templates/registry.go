package templates

// registry is the fixed, ordered set of files in a new project.
var registry = []Spec{
	{Path: "pyproject.toml", Source: "pyproject.toml.tmpl", Description: "Build, lint and test configuration"},
	{Path: ".gitignore", Source: "gitignore.tmpl", Description: "Git ignore rules"},
	{Path: "Makefile", Source: "Makefile.tmpl", Description: "Development tasks"},
	// Container build is documentation only; it is never written.
	{Path: "Dockerfile", Source: "Dockerfile.tmpl", Description: "Container build", Disabled: true},
	{Path: "src/{{.PackageName}}/__init__.py", Source: "src/init.py.tmpl", Description: "Package marker"},
	{Path: "src/{{.PackageName}}/main.py", Source: "src/main.py.tmpl", Description: "Entry point"},
	{Path: "tests/test_main.py", Source: "tests/test_main.py.tmpl", Description: "Entry point test"},
	{Path: "README.md", Source: "README.md.tmpl", Description: "Project instructions"},
	{Path: ".vscode/settings.json", Source: "vscode/settings.json.tmpl", Description: "Editor settings"},
	{Path: ".vscode/extensions.json", Source: "vscode/extensions.json.tmpl", Description: "Recommended extensions"},
}

// Specs returns every registry entry, including disabled ones, in order.
func Specs() []Spec {
	out := make([]Spec, len(registry))
	copy(out, registry)
	return out
}

// Enabled returns the registry entries that are written to new projects.
func Enabled() []Spec {
	specs := make([]Spec, 0, len(registry))
	for _, s := range registry {
		if !s.Disabled {
			specs = append(specs, s)
		}
	}
	return specs
}
