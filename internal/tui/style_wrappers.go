package tui

import (
	"github.com/waliwuao/wgit/internal/tui/style"
)

// Forward style functions for convenience

// ColorRed colors text red
func ColorRed(text string) string { return style.ColorRed(text) }

// ColorGreen colors text green
func ColorGreen(text string) string { return style.ColorGreen(text) }

// ColorYellow colors text yellow
func ColorYellow(text string) string { return style.ColorYellow(text) }

// ColorCyan colors text cyan
func ColorCyan(text string) string { return style.ColorCyan(text) }

// ColorDim makes text dim/gray
func ColorDim(text string) string { return style.ColorDim(text) }

// ColorBranchName colors a branch name based on whether it's current
func ColorBranchName(branchName string, isCurrent bool) string {
	return style.ColorBranchName(branchName, isCurrent)
}

// Heading renders a section rule
func Heading(title string) string { return style.Heading(title) }
