package ui

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const clearSequence = "\033[H\033[2J"

// IsTerminal reports whether f is an interactive terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ClearScreen moves the cursor home and clears the terminal.
func ClearScreen(w io.Writer) error {
	_, err := io.WriteString(w, clearSequence)
	return err
}
