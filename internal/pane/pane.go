package pane

import (
	"fmt"

	"dirgrip/internal/domain"
	"dirgrip/internal/eventbus"
	"dirgrip/internal/files"
)

const (
	// scrollMargin is the lookahead buffer that keeps the cursor away from
	// the window edge during continuous scrolling.
	scrollMargin = 5

	// chromeRows is the number of terminal rows reserved for the header and
	// status line.
	chromeRows = 2
)

// SizeFunc reports the current terminal size in columns and rows. The pane
// never reads the terminal itself; callers inject the query so tests can fix
// the dimensions.
type SizeFunc func() (cols, rows int)

// Pane is the view state of a single directory listing: which entry is
// hovered, which page is on screen, and which entries are selected. It keeps
// all three consistent as the backing collection is replaced out from under
// it and as the terminal is resized.
//
// Mutating operations return whether observable state changed, so the caller
// knows whether a redraw is worth doing. A Pane has no internal locking and
// must be driven from a single goroutine.
type Pane struct {
	dir      string
	inSearch bool
	files    *files.Files
	offset   int
	cursor   int
	page     int
	hovered  *domain.Entry // detached copy, survives collection replacement
	bus      eventbus.EventBus
	size     SizeFunc
}

// New creates an empty pane for a directory
func New(dir string, bus eventbus.EventBus, size SizeFunc) *Pane {
	return &Pane{
		dir:   dir,
		files: files.New(),
		bus:   bus,
		size:  size,
	}
}

// NewSearch creates an empty pane that will display search results for a
// directory rather than its direct listing
func NewSearch(dir string, bus eventbus.EventBus, size SizeFunc) *Pane {
	p := New(dir, bus, size)
	p.inSearch = true
	return p
}

// Limit returns the number of listing rows that fit the current terminal
func (p *Pane) Limit() int {
	_, rows := p.size()
	if rows <= chromeRows {
		return 0
	}
	return rows - chromeRows
}

// SetPage recomputes the page from the cursor and viewport height. The
// page-changed notification goes out only when the value differs from the
// previous one, unless force is set (used after collection updates, where
// the content changed even if the page number did not).
func (p *Pane) SetPage(force bool) bool {
	limit := p.Limit()
	page := 0
	if limit > 0 {
		page = p.cursor / limit
	}
	if !force && p.page == page {
		return false
	}

	p.page = page
	if p.bus != nil {
		p.bus.Publish(domain.PageChangedEvent{Dir: p.dir, Page: page})
	}
	return true
}

// Next moves the cursor forward by step, keeping it inside the window
func (p *Pane) Next(step int) bool {
	n := p.files.Len()
	if n == 0 {
		return false
	}

	old := p.cursor
	p.cursor = min(p.cursor+step, n-1)
	p.hovered = p.files.Duplicate(p.cursor)
	p.SetPage(false)

	limit := p.Limit()
	if p.cursor >= max(min(p.offset+limit, n)-scrollMargin, 0) {
		p.offset = min(max(n-limit, 0), p.offset+p.cursor-old)
	}

	return old != p.cursor
}

// Prev moves the cursor backward by step, keeping it inside the window
func (p *Pane) Prev(step int) bool {
	old := p.cursor
	p.cursor = max(p.cursor-step, 0)
	p.hovered = p.files.Duplicate(p.cursor)
	p.SetPage(false)

	if p.cursor < p.offset+scrollMargin {
		p.offset = max(p.offset-(old-p.cursor), 0)
	}

	return old != p.cursor
}

// Hover moves the cursor to the entry with the given path. A path that is
// already hovered is a no-op; a path that is absent degenerates to a page
// realignment at the current cursor. Movement goes through Next/Prev so the
// scroll-offset bookkeeping stays in one place.
func (p *Pane) Hover(path string) bool {
	if p.hovered != nil && p.hovered.Path == path {
		return false
	}

	idx := p.files.Position(path)
	if idx < 0 {
		idx = p.cursor
	}
	if idx > p.cursor {
		return p.Next(idx - p.cursor)
	}
	return p.Prev(p.cursor - idx)
}

// HoverForce hovers the entry's path, adopting the entry as a detached
// snapshot when the collection is empty. Used when entering a
// freshly-created directory whose listing has not arrived yet, so something
// is shown immediately.
func (p *Pane) HoverForce(entry domain.Entry) bool {
	if !p.Hover(entry.Path) && p.files.IsEmpty() {
		e := entry
		p.hovered = &e
		return true
	}
	return false
}

// Update reconciles the pane with a replaced collection. Only directory-read
// and search-result events are valid here; anything else is a wiring bug and
// panics. When the merge reports no observable change the whole call is a
// no-op. Otherwise the cursor is re-pinned to the previously hovered path
// when it survived (identity, not index), and clamped into range when not.
func (p *Pane) Update(event domain.DomainEvent) bool {
	var changed bool
	switch e := event.(type) {
	case domain.DirectoryReadEvent:
		changed = p.files.ApplyRead(e.Entries)
	case domain.SearchResultsEvent:
		changed = p.files.ApplySearch(e.Entries)
	default:
		panic(fmt.Sprintf("pane: unexpected update event %q", event.Type()))
	}
	if !changed {
		return false
	}

	n := p.files.Len()
	p.offset = min(p.offset, n)
	p.cursor = min(p.cursor, max(n-1, 0))
	p.SetPage(true)

	if h := p.hovered; h != nil {
		p.hovered = nil // drop the stale snapshot so Hover re-resolves against the new collection
		p.Hover(h.Path)
	}
	p.hovered = p.files.Duplicate(p.cursor)

	return true
}

// Window returns the entries currently scrolled into view
func (p *Pane) Window() []*domain.Entry {
	end := min(p.offset+p.Limit(), p.files.Len())
	return p.files.Range(p.offset, end)
}

// Paginate returns the page-aligned block of entries containing the cursor.
// The clamp ceiling is the last valid index, so a list that exactly fills
// the last page does not report a trailing empty page.
func (p *Pane) Paginate() []*domain.Entry {
	maxIdx := max(p.files.Len()-1, 0)
	limit := p.Limit()

	start := min(p.page*limit, maxIdx)
	end := min(start+limit, maxIdx)
	return p.files.Range(start, end)
}

// Select sets or toggles the selection flag. A negative idx applies to every
// entry; an out-of-range idx is a no-op. A nil state toggles, otherwise the
// flag is forced. Reports whether at least one flag actually flipped.
func (p *Pane) Select(idx int, state *bool) bool {
	n := p.files.Len()
	apply := func(i int) bool {
		e := p.files.At(i)
		if state == nil {
			e.IsSelected = !e.IsSelected
			return true
		}
		if *state != e.IsSelected {
			e.IsSelected = *state
			return true
		}
		return false
	}

	if idx >= 0 {
		if idx < n {
			return apply(idx)
		}
		return false
	}

	applied := false
	for i := 0; i < n; i++ {
		if apply(i) {
			applied = true
		}
	}
	return applied
}

// Hidden flips the hidden-file filter and requests a fresh listing. A nil
// show toggles; an explicit value only takes effect when it differs from the
// current one. Entries are never mutated here; filtering happens on the next
// refresh.
func (p *Pane) Hidden(show *bool) bool {
	if show == nil || p.files.ShowHidden != *show {
		p.files.ShowHidden = !p.files.ShowHidden
		if p.bus != nil {
			p.bus.Publish(domain.RefreshRequestedEvent{Dir: p.dir})
		}
	}

	return false
}
