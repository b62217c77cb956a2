// Command holidaygen generates market holiday calendars.
//
// Usage:
//
//	holidaygen generate --start 2024 --end 2030 --output holidays.txt
//	holidaygen generate --start 2024 --end 2024 --output - --db holidays.db
//	holidaygen check 2024-03-29
//	holidaygen catalog > nyse.yaml
//	holidaygen stored --db holidays.db --from 2024 --to 2026
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// Set at build time with -ldflags "-X main.version=...".
var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
