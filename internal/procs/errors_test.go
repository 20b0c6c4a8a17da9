package procs

import (
	"errors"
	"fmt"
	"os"
	"syscall"
	"testing"

	"github.com/shirou/gopsutil/v4/process"
)

func TestIsGone(t *testing.T) {
	for _, err := range []error{
		ErrGone(42),
		process.ErrorProcessNotRunning,
		syscall.ESRCH,
		os.ErrProcessDone,
		fmt.Errorf("signal: %w", syscall.ESRCH),
	} {
		if !IsGone(err) {
			t.Fatalf("expected IsGone(%v)", err)
		}
	}
	if IsGone(errors.New("other")) || IsGone(ErrDenied(1)) {
		t.Fatalf("IsGone matched unrelated error")
	}
}

func TestIsDenied(t *testing.T) {
	for _, err := range []error{
		ErrDenied(42),
		syscall.EPERM,
		syscall.EACCES,
		os.ErrPermission,
		fmt.Errorf("kill: %w", syscall.EPERM),
	} {
		if !IsDenied(err) {
			t.Fatalf("expected IsDenied(%v)", err)
		}
	}
	if IsDenied(errors.New("other")) || IsDenied(ErrGone(1)) {
		t.Fatalf("IsDenied matched unrelated error")
	}
}

func TestIsWaitTimeout(t *testing.T) {
	if !IsWaitTimeout(ErrWaitTimeout(42)) {
		t.Fatalf("expected IsWaitTimeout on ErrWaitTimeout")
	}
	if IsWaitTimeout(ErrGone(42)) || IsWaitTimeout(errors.New("other")) {
		t.Fatalf("IsWaitTimeout matched unrelated error")
	}
	if got := ErrWaitTimeout(7).Error(); got != "process 7 did not exit within timeout" {
		t.Fatalf("unexpected message: %q", got)
	}
}
