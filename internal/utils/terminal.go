package utils

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether r is an *os.File attached to a terminal.
// Readers that are not files are never terminals.
func IsTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
