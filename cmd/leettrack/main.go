package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"leettrack/internal/cli"
	"leettrack/internal/di"
)

func main() {
	tracker, cleanup, err := di.InitializeTracker()
	if err != nil {
		fmt.Fprintf(os.Stderr, "leettrack: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := cli.NewRoot(tracker)
	if err := root.ExecuteContext(ctx); err != nil {
		cleanup()
		os.Exit(1)
	}
}
