// Command sppbench is the CLI entry point: solve one instance, or run
// the compare harness over a configured range of instance sizes.
//
// Grounded on matzehuels-stacktower/cmd/stacktower/main.go: a
// signal.NotifyContext-cancelable context handed to the root command,
// and an error wrapping context.Canceled mapped to the shell's
// conventional exit code 130. SIGINT and SIGTERM cancel that context;
// none of the commands checks it, so a running solve or bench runs to
// completion after a signal.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mvstrip/spp/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cli.Execute(ctx, os.Stderr); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
