// Package input reads keys from a raw-mode terminal and maps them to
// camera actions.
package input

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Key codes produced by ReadKey besides printable characters
const (
	KeyArrowUp    = "arrow_up"
	KeyArrowDown  = "arrow_down"
	KeyArrowLeft  = "arrow_left"
	KeyArrowRight = "arrow_right"
	KeyEnter      = "enter"
	KeyEscape     = "escape"
	KeyInterrupt  = "ctrl_c"
)

// readByte reads a single byte from r
func readByte(r io.Reader) (byte, error) {
	buf := make([]byte, 1)
	if _, err := io.ReadFull(r, buf); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// readEscape decodes what follows an escape byte. Both CSI (ESC [) and SS3
// (ESC O) arrow sequences are understood.
func readEscape(r io.Reader) (string, error) {
	b2, err := readByte(r)
	if err != nil {
		return KeyEscape, nil
	}
	if b2 != '[' && b2 != 'O' {
		return KeyEscape, nil
	}
	b3, err := readByte(r)
	if err != nil {
		return "", err
	}
	switch b3 {
	case 'A':
		return KeyArrowUp, nil
	case 'B':
		return KeyArrowDown, nil
	case 'C':
		return KeyArrowRight, nil
	case 'D':
		return KeyArrowLeft, nil
	}
	// Unknown escape sequence, discard it
	return "", nil
}

// ReadKey reads one key press from r. Arrow keys come back as their Key*
// code, printable characters as themselves and anything else as "".
func ReadKey(r io.Reader) (string, error) {
	b, err := readByte(r)
	if err != nil {
		return "", err
	}
	switch {
	case b == 0x1b:
		return readEscape(r)
	case b == 3:
		return KeyInterrupt, nil
	case b == '\n' || b == '\r':
		return KeyEnter, nil
	case b >= 32 && b < 127:
		return string(b), nil
	default:
		return "", nil
	}
}

// MakeRaw puts the terminal behind f into raw mode and returns a function
// restoring it
func MakeRaw(f *os.File) (restore func(), err error) {
	fd := int(f.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return func() { term.Restore(fd, oldState) }, nil
}
