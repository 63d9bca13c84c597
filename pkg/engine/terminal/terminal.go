// Package terminal queries the controlling terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// SizeOf returns the width and height of the terminal behind f.
// Falls back to defaults when f is not a terminal.
func SizeOf(f *os.File) (width, height int) {
	if f == nil || !term.IsTerminal(int(f.Fd())) {
		return DefaultWidth, DefaultHeight
	}
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// GetSize returns the size of the terminal on stdout
func GetSize() (width, height int) {
	return SizeOf(os.Stdout)
}

// IsTerminal reports whether stdout is a terminal. Piped output gets no colors.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
