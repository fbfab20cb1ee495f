package output

import (
	"os"

	"golang.org/x/term"
)

// isTerminal is swapped in tests.
var isTerminal = term.IsTerminal

// IsTTY reports whether stdout is an interactive terminal.
func IsTTY() bool {
	return isTerminal(int(os.Stdout.Fd()))
}
