//go:build windows

package console

import (
	"os"

	"golang.org/x/sys/windows"
)

const codePageUTF8 = 65001

// bufferWidth reports the width of the screen buffer, which is what lines
// wrap at in a classic console.
func bufferWidth(f *os.File) (int, error) {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(windows.Handle(f.Fd()), &info); err != nil {
		return 0, err
	}
	return int(info.Size.X), nil
}

// EnableUTF8 switches the console code pages to UTF-8 so CJK captions and
// powerline glyphs render. Failures are ignored; output is merely garbled.
func EnableUTF8() {
	_ = windows.SetConsoleOutputCP(codePageUTF8)
	_ = windows.SetConsoleCP(codePageUTF8)
}
