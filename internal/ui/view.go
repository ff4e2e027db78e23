package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	runewidth "github.com/mattn/go-runewidth"

	"dirgrip/internal/domain"
)

// View renders the UI
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	window := m.pane.Window()
	offset := m.pane.Offset()
	for i, entry := range window {
		b.WriteString(m.renderEntry(entry, offset+i == m.pane.Cursor()))
		b.WriteString("\n")
	}

	// Pad so the status line stays at the bottom
	for i := len(window); i < m.pane.Limit(); i++ {
		b.WriteString("\n")
	}

	b.WriteString(m.renderStatus())
	return b.String()
}

// renderHeader renders the title line with the directory path
func (m *Model) renderHeader() string {
	title := m.styles.Title.Render("dirgrip")
	dir := m.styles.Dim.Render(m.pane.Dir())
	if m.pane.InSearch() {
		dir += m.styles.Selected.Render(" [search]")
	}
	return truncateLine(title+" "+dir, m.width)
}

// renderEntry renders a single listing row
func (m *Model) renderEntry(entry *domain.Entry, hovered bool) string {
	marker := "  "
	if hovered {
		marker = m.styles.Cursor.Render("> ")
	}

	sel := " "
	if entry.IsSelected {
		sel = m.styles.Selected.Render("*")
	}

	name := entry.Name
	if entry.IsDir {
		name += "/"
	}
	name = runewidth.Truncate(name, max(m.width-6, 1), "…")

	switch {
	case entry.IsSymlink:
		name = m.styles.Symlink.Render(name)
	case entry.IsDir:
		name = m.styles.Dir.Render(name)
	case entry.Hidden():
		name = m.styles.Hidden.Render(name)
	}

	row := marker + sel + " " + name
	if hovered {
		return m.styles.CursorBg.Render(row)
	}
	return row
}

// renderStatus renders the bottom line: search prompt, error, or position info
func (m *Model) renderStatus() string {
	if m.searching {
		return truncateLine("/"+m.searchInput.View(), m.width)
	}

	if m.status != "" {
		style := m.styles.Status
		if m.statusIsErr {
			style = m.styles.StatusError
		}
		return truncateLine(style.Render(m.status), m.width)
	}

	n := m.pane.Files().Len()
	pages := 1
	if limit := m.pane.Limit(); limit > 0 && n > 0 {
		pages = (n-1)/limit + 1
	}
	pos := fmt.Sprintf("%d/%d  page %d/%d", min(m.pane.Cursor()+1, n), n, m.pane.Page()+1, pages)
	if sel := m.pane.Selected(); sel != nil {
		pos += fmt.Sprintf("  %d selected", len(sel))
	}
	hint := m.styles.Help.Render("  j/k move · space select · / search · . hidden · q quit")
	return truncateLine(m.styles.Status.Render(pos)+hint, m.width)
}

// truncateLine keeps a rendered line within the terminal width, preserving
// escape sequences
func truncateLine(s string, width int) string {
	if width <= 0 {
		return s
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(s)
}
