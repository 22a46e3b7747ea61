// Package style holds the lipgloss color helpers shared by the terminal UI.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette used across prompts, the commit form and command output
var (
	AccentColor  = lipgloss.Color("205")
	SuccessColor = lipgloss.Color("42")
	DimColor     = lipgloss.Color("240")
	FieldColor   = lipgloss.Color("39")
)

// ColorBranchName colors a branch name based on whether it's current
func ColorBranchName(branchName string, isCurrent bool) string {
	if isCurrent {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Render(branchName + " (current)")
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("12")).
		Render(branchName)
}

// ColorRed colors text red
func ColorRed(text string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render(text)
}

// ColorGreen colors text green
func ColorGreen(text string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Render(text)
}

// ColorYellow colors text yellow
func ColorYellow(text string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Render(text)
}

// ColorCyan colors text cyan
func ColorCyan(text string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Render(text)
}

// ColorDim makes text dim/gray
func ColorDim(text string) string {
	return lipgloss.NewStyle().Foreground(DimColor).Render(text)
}

// Heading renders a section rule such as "── Sync ─────"
func Heading(title string) string {
	rule := "── " + title + " "
	for i := len([]rune(rule)); i < 72; i++ {
		rule += "─"
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Render(rule)
}
