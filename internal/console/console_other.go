//go:build !windows

package console

import (
	"os"

	"golang.org/x/term"
)

func bufferWidth(f *os.File) (int, error) {
	width, _, err := term.GetSize(int(f.Fd()))
	return width, err
}

// EnableUTF8 is a no-op; terminals outside Windows take their encoding from
// the locale.
func EnableUTF8() {}
