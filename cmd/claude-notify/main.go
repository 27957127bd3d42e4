// claude-notify - Pushover notifications for Claude Code hooks
// Source: https://github.com/claude-notify/claude-notify

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/claude-notify/claude-notify/internal/cli"
	clierrors "github.com/claude-notify/claude-notify/internal/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := cli.Execute(ctx)
	if err != nil {
		clierrors.PrintError(err)
	}
	stop()
	os.Exit(cli.ExitCode(err))
}
