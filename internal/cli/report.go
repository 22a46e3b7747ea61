package cli

import (
	wgiterrors "github.com/waliwuao/wgit/internal/errors"
	"github.com/waliwuao/wgit/internal/tui"
)

// ReportError prints err the way wgit shows failures and returns the exit code
func ReportError(splog *tui.Splog, err error) int {
	if err == nil {
		return 0
	}
	if wgiterrors.IsAborted(err) {
		splog.Info("Aborted.")
		return 1
	}
	splog.Error("%s", err.Error())
	return 1
}
