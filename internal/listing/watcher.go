package listing

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"dirgrip/internal/domain"
	"dirgrip/internal/eventbus"
)

// debounceDelay coalesces bursts of filesystem events into one refresh
const debounceDelay = 100 * time.Millisecond

// Watcher publishes a DirectoryChanged event when the filesystem reports
// changes inside the watched directory. It follows the pane: every refresh
// request retargets the watch to the requested directory.
type Watcher struct {
	bus eventbus.EventBus
	fsw *fsnotify.Watcher

	mu  sync.Mutex
	dir string
}

// NewWatcher creates a watcher and subscribes it to refresh requests so it
// keeps tracking the directory the pane shows
func NewWatcher(bus eventbus.EventBus) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		bus: bus,
		fsw: fsw,
	}

	bus.Subscribe(eventbus.EventRefreshRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.RefreshRequestedEvent); ok {
			if err := w.Watch(event.Dir); err != nil {
				log.Printf("Watcher: cannot watch %s: %v", event.Dir, err)
			}
		}
	})

	return w, nil
}

// Watch switches the watched directory
func (w *Watcher) Watch(dir string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.dir == dir {
		return nil
	}
	if w.dir != "" {
		_ = w.fsw.Remove(w.dir) // may already be gone
	}
	if err := w.fsw.Add(dir); err != nil {
		return err
	}
	w.dir = dir
	return nil
}

// Run pumps filesystem events until the context is cancelled, debouncing
// bursts into a single DirectoryChanged notification
func (w *Watcher) Run(ctx context.Context) {
	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename|fsnotify.Write) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounceDelay)
				timerC = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(debounceDelay)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			w.mu.Lock()
			dir := w.dir
			w.mu.Unlock()
			if dir != "" {
				w.bus.Publish(domain.DirectoryChangedEvent{Dir: dir})
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Printf("Watcher: %v", err)

		case <-ctx.Done():
			return
		}
	}
}

// Close releases the underlying filesystem watcher
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
