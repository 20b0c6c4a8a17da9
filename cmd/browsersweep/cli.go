package main

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"browsersweep/internal/common/fsutil"
	"browsersweep/internal/config"
	"browsersweep/internal/procs"
	"browsersweep/internal/sweep"
)

// newRootCmd constructs the one-shot sweep command. Defaults read no config
// file and no environment; --markers opts into an override file.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		dryRun      bool
		verbose     bool
		killWait    time.Duration
		markersPath string
		logLevel    string
	)

	cmd := &cobra.Command{
		Use:   "browsersweep",
		Short: "Kill automation-profile browser processes, preserving the automation server",
		Long: "browsersweep enumerates live processes and terminates browser processes\n" +
			"launched under the automation profile. The automation server (the\n" +
			"Playwright MCP node process) is never touched, so browser cleanup does\n" +
			"not break the automation connection.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := zerolog.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", logLevel, err)
			}
			log := zerolog.New(zerolog.ConsoleWriter{Out: stderr}).
				Level(lvl).With().Timestamp().Logger()

			markers := sweep.DefaultMarkers()
			if markersPath != "" {
				path, err := fsutil.ExpandHome(markersPath)
				if err != nil {
					return err
				}
				cfg, err := config.Load(path)
				if err != nil {
					return fmt.Errorf("load markers: %w", err)
				}
				markers = cfg.Markers()
			}

			s := sweep.New(procs.LiveSource{}, markers, sweep.Options{
				DryRun:   dryRun,
				Verbose:  verbose,
				KillWait: killWait,
			}, log)
			killed, err := s.Run(cmd.Context())
			if err != nil {
				return err
			}
			switch {
			case killed > 0 && dryRun:
				fmt.Fprintf(stdout, "Would kill %d browser processes (automation servers preserved)\n", killed)
			case killed > 0:
				fmt.Fprintf(stdout, "Killed %d browser processes (automation servers preserved)\n", killed)
			default:
				fmt.Fprintln(stdout, "No automation browser processes found")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Classify and report, send no termination signals")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print one line per classified/killed/skipped process")
	cmd.Flags().DurationVar(&killWait, "kill-wait", sweep.DefaultKillWait, "How long to wait for each signalled process to exit")
	cmd.Flags().StringVar(&markersPath, "markers", "", "Optional marker-override file (yaml/json/toml)")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level: debug|info|warn|error")
	return cmd
}
