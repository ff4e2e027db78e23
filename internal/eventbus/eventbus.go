package eventbus

import (
	"log"
	"runtime/debug"
	"sync"

	"dirgrip/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventDirectoryRead    = domain.EventDirectoryRead
	EventSearchResults    = domain.EventSearchResults
	EventSearchRequested  = domain.EventSearchRequested
	EventPageChanged      = domain.EventPageChanged
	EventRefreshRequested = domain.EventRefreshRequested
	EventDirectoryChanged = domain.EventDirectoryChanged
	EventListingError     = domain.EventListingError
	EventConfigLoaded     = domain.EventConfigLoaded
	EventConfigSaved      = domain.EventConfigSaved
)

// Re-export domain event types
type DirectoryReadEvent = domain.DirectoryReadEvent
type SearchResultsEvent = domain.SearchResultsEvent
type SearchRequestedEvent = domain.SearchRequestedEvent
type PageChangedEvent = domain.PageChangedEvent
type RefreshRequestedEvent = domain.RefreshRequestedEvent
type DirectoryChangedEvent = domain.DirectoryChangedEvent
type ListingErrorEvent = domain.ListingErrorEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]EventHandler
	handlerIDs map[EventType][]int // parallel to handlers; lets Subscribe return a working unsubscribe func even when the same function value is registered twice
	nextID    int
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
}

// New creates a new event bus
func New() EventBus {
	b := &bus{
		handlers:   make(map[EventType][]EventHandler),
		handlerIDs: make(map[EventType][]int),
		eventChan:  make(chan DomainEvent, 1000),
		quit:       make(chan struct{}),
	}

	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish publishes an event to all subscribers
func (b *bus) Publish(event DomainEvent) {
	// Skip logging for high-frequency events
	switch event.Type() {
	case EventPageChanged, EventDirectoryChanged:
	default:
		log.Printf("EventBus: publishing event %s", event.Type())
	}

	select {
	case b.eventChan <- event:
	default:
		log.Printf("Event bus channel full, dropping event: %v", event.Type())
	}
}

// Subscribe subscribes to events of a specific type.
// Returns an unsubscribe function.
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlerIDs[eventType] = append(b.handlerIDs[eventType], id)
	b.handlers[eventType] = append(b.handlers[eventType], handler)

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		ids := b.handlerIDs[eventType]
		for i, hid := range ids {
			if hid == id {
				b.handlerIDs[eventType] = append(ids[:i], ids[i+1:]...)
				hs := b.handlers[eventType]
				b.handlers[eventType] = append(hs[:i], hs[i+1:]...)
				break
			}
		}
	}
}

// Close stops the dispatcher and drains pending events
func (b *bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
	})
	b.wg.Wait()
}

// dispatch handles event distribution to subscribers. Handlers run
// sequentially on the dispatcher goroutine so each subscriber observes
// events in publish order.
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.mu.RLock()
			handlers := b.handlers[event.Type()]
			handlersCopy := make([]EventHandler, len(handlers))
			copy(handlersCopy, handlers)
			b.mu.RUnlock()

			for _, handler := range handlersCopy {
				b.invoke(handler, event)
			}

		case <-b.quit:
			// Drain remaining events
			for {
				select {
				case <-b.eventChan:
				default:
					return
				}
			}
		}
	}
}

// invoke calls a single handler with panic recovery
func (b *bus) invoke(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Event handler panic for %s: %v\nStack: %s", event.Type(), r, debug.Stack())
		}
	}()
	h(event)
}
