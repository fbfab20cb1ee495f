package templates

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/opmodel/scaffold/internal/errors"
)

func testData(name string) TemplateData {
	return TemplateData{
		ProjectName:   name,
		PackageName:   strings.ReplaceAll(name, "-", "_"),
		PythonVersion: DefaultPythonVersion,
	}
}

func renderByPath(t *testing.T, data TemplateData) map[string]string {
	t.Helper()
	files, err := NewRenderer(data).RenderAll()
	require.NoError(t, err)

	out := make(map[string]string, len(files))
	for _, f := range files {
		out[f.TargetPath] = string(f.Content)
	}
	return out
}

func TestSpecs(t *testing.T) {
	specs := Specs()
	assert.Len(t, specs, 10)

	for _, s := range specs {
		_, err := TemplateFS.ReadFile(rootDir + "/" + s.Source)
		assert.NoError(t, err, "registry source missing from embedded FS: %s", s.Source)
		assert.NotEmpty(t, s.Description, "missing description for %s", s.Path)
	}
}

func TestEnabled_ExcludesDockerfile(t *testing.T) {
	for _, s := range Enabled() {
		assert.NotEqual(t, "Dockerfile", s.Path)
		assert.False(t, s.Disabled)
	}
	assert.Len(t, Enabled(), 9)
}

func TestRenderAll_TargetPaths(t *testing.T) {
	rendered, err := NewRenderer(testData("my-app")).RenderAll()
	require.NoError(t, err)

	files := make([]string, len(rendered))
	for i, f := range rendered {
		files[i] = f.TargetPath
	}

	assert.Equal(t, []string{
		"pyproject.toml",
		".gitignore",
		"Makefile",
		"src/my_app/__init__.py",
		"src/my_app/main.py",
		"tests/test_main.py",
		"README.md",
		".vscode/settings.json",
		".vscode/extensions.json",
	}, files)

	for _, f := range files {
		assert.False(t, strings.HasSuffix(f, ".tmpl"), "file should not have .tmpl suffix: %s", f)
	}
}

func TestRenderAll(t *testing.T) {
	tests := []struct {
		name         string
		data         TemplateData
		wantContains map[string][]string
		wantAbsent   map[string][]string
	}{
		{
			name: "hyphenated project",
			data: testData("my-app"),
			wantContains: map[string][]string{
				"pyproject.toml":         {`name = "my-app"`, `"my-app" = "my_app.main:main"`, `packages = ["src/my_app"]`},
				"README.md":              {"# my-app"},
				"tests/test_main.py":     {"from my_app.main import main"},
				"src/my_app/main.py":     {`print("Hello from my-app!")`, "sys.version"},
				"src/my_app/__init__.py": {`__version__ = "0.1.0"`},
				"Makefile":               {"install:", "format:", "lint:", "test:", "run:", "clean:", "uv run my-app"},
			},
			wantAbsent: map[string][]string{
				"tests/test_main.py": {"from my-app"},
				"pyproject.toml":     {"my-app.main"},
			},
		},
		{
			name: "plain project",
			data: testData("tool"),
			wantContains: map[string][]string{
				"pyproject.toml": {`name = "tool"`, `"tool" = "tool.main:main"`, `target-version = "py312"`},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderByPath(t, tt.data)
			for file, wants := range tt.wantContains {
				require.Contains(t, got, file)
				for _, w := range wants {
					assert.Contains(t, got[file], w, "file %s should contain %q", file, w)
				}
			}
			for file, absent := range tt.wantAbsent {
				for _, a := range absent {
					assert.NotContains(t, got[file], a, "file %s should not contain %q", file, a)
				}
			}
		})
	}
}

func TestRenderAll_PyprojectIsWellFormed(t *testing.T) {
	got := renderByPath(t, testData("data-pipe-line"))

	var doc struct {
		Project struct {
			Name    string            `toml:"name"`
			Scripts map[string]string `toml:"scripts"`
		} `toml:"project"`
		Tool struct {
			Pytest struct {
				IniOptions struct {
					Testpaths []string `toml:"testpaths"`
				} `toml:"ini_options"`
			} `toml:"pytest"`
		} `toml:"tool"`
	}
	require.NoError(t, toml.Unmarshal([]byte(got["pyproject.toml"]), &doc))

	assert.Equal(t, "data-pipe-line", doc.Project.Name)
	assert.Equal(t, "data_pipe_line.main:main", doc.Project.Scripts["data-pipe-line"])
	assert.Equal(t, []string{"tests"}, doc.Tool.Pytest.IniOptions.Testpaths)
}

func TestRenderAll_EditorConfigIsJSON(t *testing.T) {
	got := renderByPath(t, testData("my-app"))

	var settings map[string]any
	require.NoError(t, json.Unmarshal([]byte(got[".vscode/settings.json"]), &settings))
	assert.Equal(t, "${workspaceFolder}/.venv/bin/python", settings["python.defaultInterpreterPath"])

	var ext struct {
		Recommendations []string `json:"recommendations"`
	}
	require.NoError(t, json.Unmarshal([]byte(got[".vscode/extensions.json"]), &ext))
	assert.Contains(t, ext.Recommendations, "charliermarsh.ruff")
}

func TestRenderAll_QuotesUnusualNames(t *testing.T) {
	got := renderByPath(t, testData(`we"ird\name`))

	var doc map[string]any
	require.NoError(t, toml.Unmarshal([]byte(got["pyproject.toml"]), &doc))
	project := doc["project"].(map[string]any)
	assert.Equal(t, `we"ird\name`, project["name"])
}

func TestRenderAll_Deterministic(t *testing.T) {
	first := renderByPath(t, testData("my-app"))
	second := renderByPath(t, testData("my-app"))
	assert.Equal(t, first, second)
}

func TestCheckSyntax(t *testing.T) {
	tests := []struct {
		name    string
		file    TemplateFile
		wantErr bool
	}{
		{"valid toml", TemplateFile{TargetPath: "a.toml", Content: []byte("a = 1\n")}, false},
		{"invalid toml", TemplateFile{TargetPath: "a.toml", Content: []byte("a = \n")}, true},
		{"valid json", TemplateFile{TargetPath: "a.json", Content: []byte(`{"a": 1}`)}, false},
		{"invalid json", TemplateFile{TargetPath: "a.json", Content: []byte(`{"a": }`)}, true},
		{"other passes", TemplateFile{TargetPath: "Makefile", Content: []byte("{{{")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckSyntax(tt.file)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, oerrors.ErrTemplate))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"my-app", `"my-app"`},
		{`a"b`, `"a\"b"`},
		{`a\b`, `"a\\b"`},
		{"a\nb", `"a\nb"`},
		{"a\x01b", `"a\u0001b"`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, quote(tt.in), "quote(%q)", tt.in)
	}
}

func TestShellQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"my-app", "my-app"},
		{"my app", "'my app'"},
		{"it's", `'it'\''s'`},
		{"", "''"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, shellQuote(tt.in), "shellQuote(%q)", tt.in)
	}
}

func TestRenderString(t *testing.T) {
	r := NewRenderer(testData("my-app"))
	got, err := r.RenderString("src/{{.PackageName}}")
	require.NoError(t, err)
	assert.Equal(t, "src/my_app", got)

	_, err = r.RenderString("{{.Missing}}")
	assert.Error(t, err)
}

func TestNormalizePythonVersion(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"3.12", "3.12", false},
		{"3.13.1", "3.13", false},
		{"v3.11", "3.11", false},
		{" 3.10 ", "3.10", false},
		{"3.7", "3.7", false},
		{"3", "", true},
		{"3.6", "", true},
		{"2.7", "", true},
		{"3.13.0-rc1", "", true},
		{"latest", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NormalizePythonVersion(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
