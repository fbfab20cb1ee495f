package templates

import "embed"

// TemplateFS holds the project skeleton templates.
//
//go:embed files
var TemplateFS embed.FS

// rootDir is the directory inside TemplateFS holding the templates.
const rootDir = "files"
