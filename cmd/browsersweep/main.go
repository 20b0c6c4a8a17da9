package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// Exit codes: 0 normal completion (even with zero kills), 1 interrupted,
// 2 unexpected internal error.
const (
	exitOK          = 0
	exitInterrupted = 1
	exitInternal    = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and maps its outcome to an exit code. It returns
// instead of exiting, enabling reuse from tests.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(stderr, "sweep interrupted")
			return exitInterrupted
		}
		fmt.Fprintf(stderr, "browsersweep: %v\n", err)
		return exitInternal
	}
	return exitOK
}
