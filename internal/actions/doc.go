// Package actions provides high-level business logic for CLI commands.
//
// Each action corresponds to a wgit command (commit, branch finish, sync,
// undo, etc.) and orchestrates git operations through runtime.Context.
//
// Key patterns:
//   - Actions accept runtime.Context which provides Repo, Splog, Prompter and Config
//   - Actions never run git directly; everything goes through git.Repo
//   - Merges, pulls and unshelves that stop on conflicts are handed to
//     ResolveConflicts, which waits for the user and never fixes anything itself
//   - Shelved changes are tracked by a StashGuard released on every exit path
package actions
