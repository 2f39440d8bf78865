//go:build !windows

package session

import (
	"os/exec"

	"github.com/brandonbloom/wslrun/internal/cmdline"
)

func command(line cmdline.CommandLine) (*exec.Cmd, error) {
	argv, err := cmdline.Split(line)
	if err != nil {
		return nil, err
	}
	if len(argv) == 0 {
		return nil, errEmptyCommandLine
	}
	return exec.Command(argv[0], argv[1:]...), nil
}
