// Package helpers provides shared helper functions for CLI commands.
package helpers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/waliwuao/wgit/internal/runtime"
	"github.com/waliwuao/wgit/internal/tui"
)

type splogKey struct{}

// WithSplog attaches the process-wide logger to ctx
func WithSplog(ctx context.Context, splog *tui.Splog) context.Context {
	return context.WithValue(ctx, splogKey{}, splog)
}

// Splog returns the logger attached to ctx, or a console-only one
func Splog(ctx context.Context) *tui.Splog {
	if ctx != nil {
		if splog, ok := ctx.Value(splogKey{}).(*tui.Splog); ok {
			return splog
		}
	}
	return tui.NewSplog()
}

// Run is a helper that provides a runtime context to a command's execution function
func Run(cmd *cobra.Command, fn func(ctx *runtime.Context) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	rctx, err := runtime.GetContext(ctx, Splog(ctx))
	if err != nil {
		return err
	}
	return fn(rctx)
}
