package listing

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/sahilm/fuzzy"
	"golang.org/x/text/unicode/norm"

	"dirgrip/internal/domain"
	"dirgrip/internal/eventbus"
)

// maxSearchDepth bounds how deep Search walks below the requested directory
const maxSearchDepth = 5

// Service reads directories and searches beneath them, publishing the
// results as domain events
type Service interface {
	Read(ctx context.Context, dir string) error
	Search(ctx context.Context, dir string, query string) error
}

// service is the concrete implementation
type service struct {
	bus       eventbus.EventBus
	mu        sync.Mutex // serializes read+publish so each directory sees results in request order
	dirsFirst bool
}

// NewService creates a listing service and subscribes it to refresh,
// change and search requests
func NewService(bus eventbus.EventBus, dirsFirst bool) Service {
	s := &service{
		bus:       bus,
		dirsFirst: dirsFirst,
	}

	bus.Subscribe(eventbus.EventRefreshRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.RefreshRequestedEvent); ok {
			s.Read(context.Background(), event.Dir)
		}
	})
	bus.Subscribe(eventbus.EventDirectoryChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.DirectoryChangedEvent); ok {
			s.Read(context.Background(), event.Dir)
		}
	})
	bus.Subscribe(eventbus.EventSearchRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SearchRequestedEvent); ok {
			s.Search(context.Background(), event.Dir, event.Query)
		}
	})

	return s
}

// Read lists a directory and publishes the result as a DirectoryRead event
func (s *service) Read(ctx context.Context, dir string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.readDir(dir)
	if err != nil {
		s.bus.Publish(eventbus.ListingErrorEvent{Dir: dir, Err: err})
		return fmt.Errorf("failed to read %s: %w", dir, err)
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	s.bus.Publish(eventbus.DirectoryReadEvent{Dir: dir, Entries: entries})
	return nil
}

// readDir builds the ordered entry list for a directory. Hidden entries are
// included; filtering them is the collection's job.
func (s *service) readDir(dir string) ([]domain.Entry, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.Entry, 0, len(dirents))
	for _, d := range dirents {
		info, err := d.Info()
		if err != nil {
			continue
		}

		name := norm.NFC.String(d.Name())
		fullPath := filepath.Join(dir, d.Name())

		isDir := d.IsDir()
		isSymlink := info.Mode()&os.ModeSymlink != 0
		if isSymlink {
			// A symlink to a directory navigates like a directory
			if targetInfo, err := os.Stat(fullPath); err == nil {
				isDir = targetInfo.IsDir()
			}
		}

		entries = append(entries, domain.Entry{
			Path:      fullPath,
			Name:      name,
			IsDir:     isDir,
			IsSymlink: isSymlink,
			Size:      info.Size(),
			ModTime:   info.ModTime(),
			Mode:      info.Mode(),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if s.dirsFirst && entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return entries[i].Name < entries[j].Name
	})

	return entries, nil
}

// Search walks the tree below dir, ranks candidates with fuzzy matching and
// publishes the result as a SearchResults event. Results come back in match
// quality order.
func (s *service) Search(ctx context.Context, dir string, query string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var candidates []domain.Entry
	var names []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			return nil // Continue walking
		}
		if path == dir {
			return nil
		}

		rel, _ := filepath.Rel(dir, path)
		if strings.Count(rel, string(filepath.Separator)) > maxSearchDepth {
			return filepath.SkipDir
		}

		if d.IsDir() && skipSearchDir(d.Name()) {
			return filepath.SkipDir
		}

		info, infoErr := d.Info()
		if infoErr != nil {
			return nil
		}

		candidates = append(candidates, domain.Entry{
			Path:      path,
			Name:      norm.NFC.String(d.Name()),
			IsDir:     d.IsDir(),
			IsSymlink: info.Mode()&os.ModeSymlink != 0,
			Size:      info.Size(),
			ModTime:   info.ModTime(),
			Mode:      info.Mode(),
		})
		names = append(names, rel)
		return nil
	})
	if err != nil && err != context.Canceled {
		s.bus.Publish(eventbus.ListingErrorEvent{Dir: dir, Err: err})
		return fmt.Errorf("failed to search %s: %w", dir, err)
	}

	matches := fuzzy.Find(query, names)

	results := make([]domain.Entry, 0, len(matches))
	for _, match := range matches {
		results = append(results, candidates[match.Index])
	}

	s.bus.Publish(eventbus.SearchResultsEvent{Dir: dir, Query: query, Entries: results})
	return nil
}

// skipSearchDir reports whether a directory is junk not worth descending into
func skipSearchDir(name string) bool {
	switch name {
	case "node_modules", ".git", "vendor", "target", "build", "dist",
		"__pycache__", ".cache", ".venv", "venv":
		return true
	}
	return strings.HasPrefix(name, ".")
}
