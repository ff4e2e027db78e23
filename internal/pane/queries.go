package pane

import (
	"dirgrip/internal/domain"
	"dirgrip/internal/files"
)

// Dir returns the directory this pane represents
func (p *Pane) Dir() string { return p.dir }

// InSearch reports whether the pane displays search results
func (p *Pane) InSearch() bool { return p.inSearch }

// Cursor returns the index of the hovered entry
func (p *Pane) Cursor() int { return p.cursor }

// Offset returns the index of the first entry scrolled into view
func (p *Pane) Offset() int { return p.offset }

// Page returns the page number containing the cursor
func (p *Pane) Page() int { return p.page }

// Hovered returns the detached snapshot of the hovered entry, or nil when
// nothing is hovered
func (p *Pane) Hovered() *domain.Entry { return p.hovered }

// Files exposes the backing collection for wiring and rendering
func (p *Pane) Files() *files.Files { return p.files }

// Position returns the index of the entry with the given path, or -1
func (p *Pane) Position(path string) int { return p.files.Position(path) }

// HasSelected reports whether any entry is selected
func (p *Pane) HasSelected() bool {
	for i := 0; i < p.files.Len(); i++ {
		if p.files.At(i).IsSelected {
			return true
		}
	}
	return false
}

// Selected returns the selected paths in listing order, or nil when none
func (p *Pane) Selected() []string {
	var paths []string
	for i := 0; i < p.files.Len(); i++ {
		if e := p.files.At(i); e.IsSelected {
			paths = append(paths, e.Path)
		}
	}
	return paths
}
