package templates

import (
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"github.com/pelletier/go-toml/v2"

	oerrors "github.com/opmodel/scaffold/internal/errors"
)

// CheckSyntax parses rendered TOML and JSON files so that a template bug
// never produces a malformed file on disk. Other file types pass through.
func CheckSyntax(f TemplateFile) error {
	switch path.Ext(f.TargetPath) {
	case ".toml":
		var doc map[string]any
		if err := toml.Unmarshal(f.Content, &doc); err != nil {
			return &oerrors.DetailError{
				Type:     "template rendered invalid TOML",
				Message:  err.Error(),
				Location: f.TargetPath,
				Cause:    oerrors.ErrTemplate,
			}
		}
	case ".json":
		if !json.Valid(f.Content) {
			return &oerrors.DetailError{
				Type:     "template rendered invalid JSON",
				Message:  fmt.Sprintf("%s is not valid JSON", f.SourcePath),
				Location: f.TargetPath,
				Cause:    oerrors.ErrTemplate,
			}
		}
	}
	return nil
}

// quote renders s as a double-quoted string literal valid in both TOML basic
// strings and Python source.
func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch {
		case r == '"':
			b.WriteString(`\"`)
		case r == '\\':
			b.WriteString(`\\`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\t':
			b.WriteString(`\t`)
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// shellQuote single-quotes s for a POSIX shell when it contains anything
// beyond a conservative safe set.
func shellQuote(s string) string {
	if s != "" && strings.IndexFunc(s, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' ||
			r == '-' || r == '_' || r == '.' || r == '/')
	}) < 0 {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
