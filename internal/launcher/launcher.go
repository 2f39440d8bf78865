// Package launcher relays an invocation to the runner binary installed next
// to the launcher and returns without waiting for it.
package launcher

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/brandonbloom/wslrun/internal/syserr"
)

// OpLaunch names the failing operation when the runner cannot be started.
const OpLaunch = "CreateProcess failed"

// RunnerName is the file name of the runner binary.
func RunnerName() string {
	if runtime.GOOS == "windows" {
		return "runner.exe"
	}
	return "runner"
}

// RunnerPath returns the runner path next to executable.
func RunnerPath(executable string) string {
	return filepath.Join(filepath.Dir(executable), RunnerName())
}

// Locate returns the runner next to the running launcher, following symlinks
// so an installed shim still finds its siblings.
func Locate() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate launcher: %w", err)
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("locate launcher: %w", err)
	}
	return RunnerPath(exe), nil
}

// Relaunch starts runner and releases it immediately without waiting. On
// Windows the runner gets a console of its own and receives the launcher's
// command line verbatim, so args only matter elsewhere.
func Relaunch(runner string, args []string) error {
	if _, err := os.Stat(runner); err != nil {
		return fmt.Errorf("locate runner: %w", err)
	}
	if err := start(runner, args); err != nil {
		return syserr.New(OpLaunch, err)
	}
	return nil
}
