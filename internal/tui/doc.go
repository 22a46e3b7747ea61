// Package tui provides the terminal user interface for wgit.
//
// It handles:
//   - The commit message form (a raw-key bubbletea program)
//   - Interactive prompts and selections (using survey and bubbletea)
//   - Structured logging and status reporting (Splog)
//   - Terminal styling and colors (using lipgloss)
package tui
