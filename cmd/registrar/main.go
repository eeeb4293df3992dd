// Command registrar keeps university records in a local SQLite database.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/roach88/registrar/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
