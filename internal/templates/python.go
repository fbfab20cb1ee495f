package templates

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// MinPythonMinor is the oldest Python 3 minor release ruff can target.
const MinPythonMinor = 7

// NormalizePythonVersion parses v (e.g., "3.12", "v3.13.1") and returns its
// MAJOR.MINOR form. Only Python 3.7 and later is accepted.
func NormalizePythonVersion(v string) (string, error) {
	parsed, err := semver.NewVersion(strings.TrimPrefix(strings.TrimSpace(v), "v"))
	if err != nil {
		return "", fmt.Errorf("invalid python version %q: %w", v, err)
	}
	if parsed.Major() != 3 {
		return "", fmt.Errorf("unsupported python version %q: major version must be 3", v)
	}
	if parsed.Minor() < MinPythonMinor {
		return "", fmt.Errorf("unsupported python version %q: minimum is 3.%d", v, MinPythonMinor)
	}
	if parsed.Prerelease() != "" {
		return "", fmt.Errorf("unsupported python version %q: pre-releases are not supported", v)
	}
	return fmt.Sprintf("%d.%d", parsed.Major(), parsed.Minor()), nil
}
