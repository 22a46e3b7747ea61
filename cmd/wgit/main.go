package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/waliwuao/wgit/internal/cli"
	"github.com/waliwuao/wgit/internal/cli/helpers"
	"github.com/waliwuao/wgit/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	splog, err := tui.NewSplogWithConfig(tui.GetLogFilePath())
	if err != nil {
		splog = tui.NewSplog()
		splog.Debug("file logging disabled: %v", err)
	}
	defer func() { _ = splog.Close() }()

	rootCmd := cli.NewRootCmd(version, commit, date)
	return cli.ReportError(splog, rootCmd.ExecuteContext(helpers.WithSplog(ctx, splog)))
}
