package procs

import (
	"context"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/process"
)

// waitPollInterval is how often WaitExit re-checks a signalled PID.
const waitPollInterval = 100 * time.Millisecond

// LiveSource reads the host process table through gopsutil.
type LiveSource struct{}

func (LiveSource) Snapshot(ctx context.Context) ([]Record, error) {
	ps, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, err
	}
	recs := make([]Record, 0, len(ps))
	for _, p := range ps {
		name, err := p.NameWithContext(ctx)
		if err != nil {
			// vanished, denied, or defunct: omit from the snapshot
			continue
		}
		args, err := p.CmdlineSliceWithContext(ctx)
		if err != nil {
			continue
		}
		recs = append(recs, Record{
			PID:     p.Pid,
			Name:    name,
			Cmdline: strings.Join(args, " "),
		})
	}
	return recs, nil
}

func (LiveSource) Kill(ctx context.Context, pid int32) error {
	p, err := process.NewProcessWithContext(ctx, pid)
	if err != nil {
		return ErrGone(pid)
	}
	if err := p.KillWithContext(ctx); err != nil {
		switch {
		case IsGone(err):
			return ErrGone(pid)
		case IsDenied(err):
			return ErrDenied(pid)
		}
		return err
	}
	return nil
}

func (LiveSource) WaitExit(ctx context.Context, pid int32, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	ticker := time.NewTicker(waitPollInterval)
	defer ticker.Stop()
	for {
		p, err := process.NewProcessWithContext(ctx, pid)
		if err != nil {
			return nil
		}
		running, err := p.IsRunningWithContext(ctx)
		if err != nil || !running {
			return nil
		}
		if time.Now().After(deadline) {
			return ErrWaitTimeout(pid)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
