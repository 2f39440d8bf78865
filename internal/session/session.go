// Package session runs one child process to completion and reports how it
// ended and how long it took.
package session

import (
	"io"
	"time"

	"github.com/brandonbloom/wslrun/internal/cmdline"
	"github.com/brandonbloom/wslrun/internal/syserr"
	"github.com/sirupsen/logrus"
)

// Static operation messages carried by system failures.
const (
	OpLaunch   = "CreateProcess failed"
	OpWait     = "WaitForSingleObject failed"
	OpExitCode = "GetExitCodeProcess failed"
)

// Spawner creates child processes. It is the only place the session touches
// the operating system.
type Spawner interface {
	Spawn(line cmdline.CommandLine) (Handle, error)
}

// Handle is a live child process. Its owner must call Close exactly once.
type Handle interface {
	// Wait blocks until the process terminates. A non-zero exit status is
	// not an error.
	Wait() error
	// ExitCode reports the exit status of a terminated process.
	ExitCode() (int, error)
	// Close releases the OS resources behind the handle.
	Close() error
}

// LaunchError reports that the child process could not be created.
type LaunchError struct{ syserr.Failure }

// WaitError reports that waiting on the child failed.
type WaitError struct{ syserr.Failure }

// ExitCodeError reports that the child's exit status could not be read.
type ExitCodeError struct{ syserr.Failure }

// Result describes a finished child process.
type Result struct {
	ExitCode int
	Elapsed  time.Duration
}

// Seconds returns the elapsed time in seconds.
func (r Result) Seconds() float64 {
	return r.Elapsed.Seconds()
}

// Session runs command lines through a Spawner.
type Session struct {
	spawner Spawner
	log     logrus.FieldLogger
	now     func() time.Time
}

// New returns a Session that spawns through sp. A nil logger discards logs.
func New(sp Spawner, log logrus.FieldLogger) *Session {
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}
	return &Session{spawner: sp, log: log, now: time.Now}
}

// Run starts line, waits for it without a timeout and returns its exit code
// and wall-clock duration. The handle is released on every path out of Run.
func (s *Session) Run(line cmdline.CommandLine) (Result, error) {
	s.log.WithField("command", line.String()).Debug("spawning child")

	begin := s.now()
	h, err := s.spawner.Spawn(line)
	if err != nil {
		return Result{}, &LaunchError{syserr.New(OpLaunch, err)}
	}
	defer s.release(h)

	if err := h.Wait(); err != nil {
		return Result{}, &WaitError{syserr.New(OpWait, err)}
	}
	elapsed := s.now().Sub(begin)

	code, err := h.ExitCode()
	if err != nil {
		return Result{}, &ExitCodeError{syserr.New(OpExitCode, err)}
	}

	s.log.WithFields(logrus.Fields{
		"exit_code": code,
		"elapsed":   elapsed,
	}).Debug("child finished")
	return Result{ExitCode: code, Elapsed: elapsed}, nil
}

func (s *Session) release(h Handle) {
	if err := h.Close(); err != nil {
		s.log.WithError(err).Warn("failed to release process handle")
	}
}
