package sweep

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"browsersweep/internal/procs"
)

// DefaultKillWait bounds how long a signalled process is waited on.
const DefaultKillWait = 5 * time.Second

// Options configures a single sweep invocation.
type Options struct {
	// DryRun classifies and reports but sends no signals.
	DryRun bool
	// Verbose emits one log line per classified, killed, or skipped process.
	Verbose bool
	// KillWait bounds the per-process exit wait. Zero means DefaultKillWait.
	KillWait time.Duration
}

// Sweeper runs one classification-and-termination pass over a process table.
type Sweeper struct {
	src  procs.Source
	m    Markers
	opts Options
	log  zerolog.Logger
}

// New builds a Sweeper over src using the given marker tables.
func New(src procs.Source, m Markers, opts Options, log zerolog.Logger) *Sweeper {
	if opts.KillWait <= 0 {
		opts.KillWait = DefaultKillWait
	}
	return &Sweeper{src: src, m: m, opts: opts, log: log}
}

// Run enumerates, classifies, and terminates target processes. It returns
// the number of targets signalled (counted at signal-send time, whether or
// not the exit was confirmed within KillWait). Per-process conditions —
// vanished, permission denied, exit-wait timeout — are skipped without
// affecting the count or aborting the pass. Only enumeration failure,
// cancellation, or an unexpected signalling error are returned.
func (s *Sweeper) Run(ctx context.Context) (int, error) {
	recs, err := s.src.Snapshot(ctx)
	if err != nil {
		return 0, fmt.Errorf("enumerate processes: %w", err)
	}
	killed := 0
	for _, r := range recs {
		if err := ctx.Err(); err != nil {
			return killed, err
		}
		switch s.m.Classify(r.Name, r.Cmdline) {
		case Protected:
			if s.opts.Verbose {
				s.log.Info().Int32("pid", r.PID).Str("name", r.Name).
					Msg("preserving automation server process")
			}
			continue
		case Ignored:
			continue
		}
		if s.opts.Verbose {
			s.log.Info().Int32("pid", r.PID).Str("name", r.Name).
				Bool("dry_run", s.opts.DryRun).
				Msg("killing browser process")
		}
		if s.opts.DryRun {
			killed++
			continue
		}
		if err := s.src.Kill(ctx, r.PID); err != nil {
			if procs.IsGone(err) || procs.IsDenied(err) {
				continue
			}
			if ctx.Err() != nil {
				return killed, ctx.Err()
			}
			return killed, fmt.Errorf("kill pid %d: %w", r.PID, err)
		}
		killed++
		if err := s.src.WaitExit(ctx, r.PID, s.opts.KillWait); err != nil {
			if procs.IsWaitTimeout(err) {
				if s.opts.Verbose {
					s.log.Warn().Int32("pid", r.PID).
						Msg("process did not exit within timeout")
				}
				continue
			}
			if ctx.Err() != nil {
				return killed, ctx.Err()
			}
			// already gone counts as exited
		}
	}
	return killed, nil
}
