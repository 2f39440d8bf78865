// Package syserr describes fatal operating system failures: the operation that
// failed plus the error the OS reported for it.
package syserr

import (
	"errors"
	"fmt"
	"syscall"
)

// UnknownCode is reported by Code when the underlying error carries no errno.
const UnknownCode = -1

// Failure is an OS-level failure tagged with a static message naming the
// operation that failed. Embedding it in a named error type promotes Error,
// Unwrap and Code.
type Failure struct {
	Op  string
	Err error
}

// New wraps err with the operation message op.
func New(op string, err error) Failure {
	return Failure{Op: op, Err: err}
}

func (e Failure) Error() string {
	if e.Err == nil {
		return e.Op
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e Failure) Unwrap() error {
	return e.Err
}

// Code returns the OS error code carried by the wrapped error, or UnknownCode.
func (e Failure) Code() int {
	var errno syscall.Errno
	if errors.As(e.Err, &errno) {
		return int(errno)
	}
	return UnknownCode
}
