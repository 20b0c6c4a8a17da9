// Package procs provides read-then-act access to the OS process table.
// Enumeration yields a transient snapshot; every later operation on a PID
// may fail because the referent no longer exists, and callers are expected
// to treat that as a normal skip.
package procs

import (
	"context"
	"time"
)

// Record is a snapshot view of one live process. It is read from the OS
// and never written back; Cmdline is the full argument vector joined with
// single spaces.
type Record struct {
	PID     int32
	Name    string
	Cmdline string
}

// Source abstracts the process table so sweep logic can be exercised
// against a fake table in tests.
type Source interface {
	// Snapshot enumerates the live processes. Processes that refuse
	// inspection (vanished, permission denied) are omitted rather than
	// reported as errors.
	Snapshot(ctx context.Context) ([]Record, error)

	// Kill sends a termination signal to pid.
	Kill(ctx context.Context, pid int32) error

	// WaitExit blocks until pid is gone or timeout elapses. A process
	// that outlives the timeout yields an error matching IsWaitTimeout.
	WaitExit(ctx context.Context, pid int32, timeout time.Duration) error
}
