package session

import (
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/brandonbloom/wslrun/internal/cmdline"
)

var (
	errEmptyCommandLine = errors.New("empty command line")
	errNoExitStatus     = errors.New("process has not terminated")
)

// ExecSpawner starts real processes that share the caller's console.
type ExecSpawner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecSpawner returns a spawner whose children inherit the standard streams.
func NewExecSpawner() *ExecSpawner {
	return &ExecSpawner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

func (s *ExecSpawner) Spawn(line cmdline.CommandLine) (Handle, error) {
	cmd, err := command(line)
	if err != nil {
		return nil, err
	}
	cmd.Stdin = s.Stdin
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return &execHandle{cmd: cmd}, nil
}

type execHandle struct {
	cmd    *exec.Cmd
	closed bool
}

func (h *execHandle) Wait() error {
	err := h.cmd.Wait()
	var exitErr *exec.ExitError
	if err == nil || errors.As(err, &exitErr) {
		return nil
	}
	return err
}

func (h *execHandle) ExitCode() (int, error) {
	if h.cmd.ProcessState == nil {
		return 0, errNoExitStatus
	}
	return exitStatus(h.cmd.ProcessState.ExitCode()), nil
}

// exitStatus reads a raw exit status as a signed 32-bit value. Windows reports
// the DWORD unsigned, so NTSTATUS codes such as 0xC000013A come back negative.
// Unix statuses are already in range and pass through unchanged.
func exitStatus(code int) int {
	return int(int32(uint32(code)))
}

func (h *execHandle) Close() error {
	if h.closed {
		return nil
	}
	h.closed = true
	// A successful Wait has already handed the OS handle back.
	if h.cmd.ProcessState != nil {
		return nil
	}
	return h.cmd.Process.Release()
}

// programName returns the first token of a Windows command line, which is
// what CreateProcess runs when no application name is given.
func programName(line string) string {
	line = strings.TrimLeft(line, " \t")
	if strings.HasPrefix(line, `"`) {
		if end := strings.IndexByte(line[1:], '"'); end >= 0 {
			return line[1 : end+1]
		}
		return line[1:]
	}
	if end := strings.IndexAny(line, " \t"); end >= 0 {
		return line[:end]
	}
	return line
}
