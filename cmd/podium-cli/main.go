// Command podium-cli runs the Olympic analyses against a local
// athlete_events.csv without starting the HTTP service.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := execute(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Stderr.WriteString("podium-cli: " + err.Error() + "\n")
		os.Exit(1)
	}
}
