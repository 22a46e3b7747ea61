package actions

import (
	"github.com/waliwuao/wgit/internal/tui"
)

type shelfState int

const (
	shelfInactive shelfState = iota
	shelfActive
	shelfConsumed
)

// StashGuard tracks changes shelved by a workflow. Create it before the
// shelve and defer Release: if the workflow exits for any reason while the
// shelf is still active, Release prints the command that restores it.
type StashGuard struct {
	splog *tui.Splog
	state shelfState
	ref   string
}

// NewStashGuard returns an inactive guard
func NewStashGuard(splog *tui.Splog) *StashGuard {
	return &StashGuard{splog: splog}
}

// MarkActive records a successful shelve. ref names the stash commit.
func (g *StashGuard) MarkActive(ref string) {
	g.ref = ref
	g.state = shelfActive
}

// Active reports whether shelved changes are still waiting to be restored
func (g *StashGuard) Active() bool {
	return g.state == shelfActive
}

// Consume ends tracking once the changes are restored
func (g *StashGuard) Consume() {
	if g.state == shelfActive {
		g.state = shelfConsumed
	}
}

// RecoveryCommand is the command that restores the shelved changes
func (g *StashGuard) RecoveryCommand() string {
	return "git stash apply " + g.ref
}

// Release prints recovery instructions if the shelf is still active.
// It only ever prints once.
func (g *StashGuard) Release() {
	if g.state != shelfActive {
		return
	}
	g.state = shelfConsumed
	g.splog.Newline()
	g.splog.Warn("Your local changes are still shelved in the stash.")
	g.splog.Info("Restore them with: %s", tui.ColorCyan(g.RecoveryCommand()))
}
