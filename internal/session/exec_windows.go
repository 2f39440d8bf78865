//go:build windows

package session

import (
	"os/exec"
	"syscall"

	"github.com/brandonbloom/wslrun/internal/cmdline"
)

// command passes line to CreateProcess untouched; re-quoting it through
// exec's argv handling would undo the escaping done for the guest shell.
func command(line cmdline.CommandLine) (*exec.Cmd, error) {
	program := programName(line.String())
	if program == "" {
		return nil, errEmptyCommandLine
	}
	cmd := exec.Command(program)
	cmd.SysProcAttr = &syscall.SysProcAttr{CmdLine: line.String()}
	return cmd, nil
}
