package files

import (
	"dirgrip/internal/domain"
)

// Files is an ordered path-keyed collection of directory entries. Order is
// listing order, not necessarily sorted by path. It is replaced wholesale by
// ApplyRead/ApplySearch and mutated in place only for per-entry selection
// flags.
type Files struct {
	items []*domain.Entry
	index map[string]int // path -> position in items

	// ShowHidden controls whether dot-files survive the next merge.
	// Toggling it has no effect until a fresh listing is applied.
	ShowHidden bool
}

// New creates an empty collection
func New() *Files {
	return &Files{
		index: make(map[string]int),
	}
}

// Len returns the number of entries
func (f *Files) Len() int { return len(f.items) }

// IsEmpty reports whether the collection has no entries
func (f *Files) IsEmpty() bool { return len(f.items) == 0 }

// At returns the entry at index i, or nil when out of range. The returned
// pointer aliases the collection; callers may flip its selection flag.
func (f *Files) At(i int) *domain.Entry {
	if i < 0 || i >= len(f.items) {
		return nil
	}
	return f.items[i]
}

// Range returns the entries spanning [lo, hi), clamped into range
func (f *Files) Range(lo, hi int) []*domain.Entry {
	n := len(f.items)
	if lo < 0 {
		lo = 0
	}
	if hi > n {
		hi = n
	}
	if lo >= hi {
		return nil
	}
	return f.items[lo:hi]
}

// Position returns the index of the entry with the given path, or -1
func (f *Files) Position(path string) int {
	if i, ok := f.index[path]; ok {
		return i
	}
	return -1
}

// Duplicate returns a detached copy of the entry at index i, or nil when out
// of range. The copy survives replacement of the collection.
func (f *Files) Duplicate(i int) *domain.Entry {
	e := f.At(i)
	if e == nil {
		return nil
	}
	dup := *e
	return &dup
}

// Paths returns all entry paths in order
func (f *Files) Paths() []string {
	paths := make([]string, len(f.items))
	for i, e := range f.items {
		paths[i] = e.Path
	}
	return paths
}

// ApplyRead merges a full directory read into the collection and reports
// whether anything observably changed.
func (f *Files) ApplyRead(items []domain.Entry) bool {
	return f.merge(items)
}

// ApplySearch merges a full search-result set into the collection and
// reports whether anything observably changed.
func (f *Files) ApplySearch(items []domain.Entry) bool {
	return f.merge(items)
}

// merge replaces the collection with the given items, filtered by the hidden
// flag, carrying selection flags over for surviving paths. Returns false
// when the result is indistinguishable from the current contents.
func (f *Files) merge(items []domain.Entry) bool {
	next := make([]*domain.Entry, 0, len(items))
	for i := range items {
		if !f.ShowHidden && items[i].Hidden() {
			continue
		}
		e := items[i] // copy; never alias caller memory
		if old, ok := f.index[e.Path]; ok {
			e.IsSelected = f.items[old].IsSelected
		}
		next = append(next, &e)
	}

	if !f.differs(next) {
		return false
	}

	f.items = next
	f.index = make(map[string]int, len(next))
	for i, e := range next {
		f.index[e.Path] = i
	}
	return true
}

// differs reports whether next is observably different from the current
// contents. Selection flags are carried over before the comparison, so they
// never count as a difference.
func (f *Files) differs(next []*domain.Entry) bool {
	if len(next) != len(f.items) {
		return true
	}
	for i, e := range next {
		old := f.items[i]
		if e.Path != old.Path || e.Name != old.Name ||
			e.IsDir != old.IsDir || e.IsSymlink != old.IsSymlink ||
			e.Size != old.Size || e.Mode != old.Mode ||
			!e.ModTime.Equal(old.ModTime) {
			return true
		}
	}
	return false
}
