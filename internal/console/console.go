// Package console wraps the few interactions the runner has with the
// terminal it was started in.
package console

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// IsTerminal reports whether w is a terminal, including Cygwin and MSYS ptys.
func IsTerminal(w any) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Width returns the number of columns of the console behind f.
func Width(f *os.File) (int, error) {
	width, err := bufferWidth(f)
	if err != nil {
		return 0, err
	}
	if width <= 0 {
		return 0, fmt.Errorf("console reported width %d", width)
	}
	return width, nil
}

// SetTitle sets the window title of the terminal behind w. Non-terminals are
// left alone.
func SetTitle(w io.Writer, title string) error {
	if !IsTerminal(w) {
		return nil
	}
	_, err := fmt.Fprintf(w, "\x1b]0;%s\a", title)
	return err
}

// WaitKey blocks until a single key is read from in. Terminals are put in raw
// mode so the key does not need to be followed by Enter. End of input counts
// as a key.
func WaitKey(in io.Reader) error {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd := int(f.Fd())
		if oldState, err := term.MakeRaw(fd); err == nil {
			defer func() {
				_ = term.Restore(fd, oldState)
			}()
		}
	}
	buf := make([]byte, 1)
	if _, err := in.Read(buf); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
