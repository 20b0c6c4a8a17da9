package procs

import (
	"errors"
	"fmt"
	"os"
	"syscall"

	"github.com/shirou/gopsutil/v4/process"
)

// goneError signals that a PID disappeared between enumeration and action.
type goneError struct{ pid int32 }

func (e goneError) Error() string { return fmt.Sprintf("process %d no longer exists", e.pid) }

// ErrGone constructs a goneError for pid.
func ErrGone(pid int32) error { return goneError{pid: pid} }

// IsGone reports whether err indicates the target process is already dead,
// either as a local goneError or as the underlying OS/gopsutil condition.
func IsGone(err error) bool {
	var g goneError
	if errors.As(err, &g) {
		return true
	}
	return errors.Is(err, process.ErrorProcessNotRunning) ||
		errors.Is(err, os.ErrProcessDone) ||
		errors.Is(err, syscall.ESRCH)
}

// deniedError signals that the OS refused inspection or signalling of a PID.
type deniedError struct{ pid int32 }

func (e deniedError) Error() string { return fmt.Sprintf("process %d: permission denied", e.pid) }

// ErrDenied constructs a deniedError for pid.
func ErrDenied(pid int32) error { return deniedError{pid: pid} }

// IsDenied reports whether err indicates a permission restriction.
func IsDenied(err error) bool {
	var d deniedError
	if errors.As(err, &d) {
		return true
	}
	return errors.Is(err, os.ErrPermission) ||
		errors.Is(err, syscall.EPERM) ||
		errors.Is(err, syscall.EACCES)
}

// waitTimeoutError signals that a signalled process did not exit within the
// bounded wait.
type waitTimeoutError struct{ pid int32 }

func (e waitTimeoutError) Error() string {
	return fmt.Sprintf("process %d did not exit within timeout", e.pid)
}

// ErrWaitTimeout constructs a waitTimeoutError for pid.
func ErrWaitTimeout(pid int32) error { return waitTimeoutError{pid: pid} }

// IsWaitTimeout reports whether err indicates an exit-wait timeout.
func IsWaitTimeout(err error) bool {
	var w waitTimeoutError
	return errors.As(err, &w)
}
