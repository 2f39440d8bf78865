//go:build windows

package launcher

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// start creates runner in a new console. The startup info names no standard
// handles, so the runner binds to that console rather than to inherited or
// NUL streams. The launcher's own command line is relayed untouched.
func start(runner string, _ []string) error {
	app, err := windows.UTF16PtrFromString(runner)
	if err != nil {
		return err
	}
	line, err := relayedCommandLine()
	if err != nil {
		return err
	}

	si := newStartupInfo()
	var pi windows.ProcessInformation
	if err := windows.CreateProcess(app, line, nil, nil, false, windows.CREATE_NEW_CONSOLE, nil, nil, si, &pi); err != nil {
		return err
	}
	windows.CloseHandle(pi.Thread)
	windows.CloseHandle(pi.Process)
	return nil
}

// relayedCommandLine copies the launcher's command line into a buffer
// CreateProcess may write to.
func relayedCommandLine() (*uint16, error) {
	return windows.UTF16PtrFromString(windows.UTF16PtrToString(windows.GetCommandLine()))
}

func newStartupInfo() *windows.StartupInfo {
	si := &windows.StartupInfo{}
	si.Cb = uint32(unsafe.Sizeof(*si))
	return si
}
