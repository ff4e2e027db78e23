package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	StatusError lipgloss.Style
	Cursor      lipgloss.Style
	CursorBg    lipgloss.Style
	Dir         lipgloss.Style
	Symlink     lipgloss.Style
	Hidden      lipgloss.Style
	Selected    lipgloss.Style
	Help        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim:         lipgloss.NewStyle().Faint(true),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Cursor:      lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		CursorBg:    lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Dir:         lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
		Symlink:     lipgloss.NewStyle().Foreground(lipgloss.Color("51")), // cyan
		Hidden:      lipgloss.NewStyle().Faint(true),
		Selected:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Help:        lipgloss.NewStyle().Faint(true),
	}
}
