//go:build !windows

package launcher

import (
	"os"
	"os/exec"
)

// start keeps the runner on the launcher's terminal; there is no separate
// console to open.
func start(runner string, args []string) error {
	cmd := exec.Command(runner, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
