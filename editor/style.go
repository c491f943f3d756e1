package editor

import "github.com/charmbracelet/lipgloss"

// Style controls how Program decorates the grid it renders.
type Style struct {
	Cursor lipgloss.Style
	Status lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Cursor: lipgloss.NewStyle().Reverse(true),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
	}
}
