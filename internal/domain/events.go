package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventDirectoryRead    EventType = "DirectoryRead"
	EventSearchResults    EventType = "SearchResults"
	EventSearchRequested  EventType = "SearchRequested"
	EventPageChanged      EventType = "PageChanged"
	EventRefreshRequested EventType = "RefreshRequested"
	EventDirectoryChanged EventType = "DirectoryChanged"
	EventListingError     EventType = "ListingError"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// DirectoryReadEvent carries the full result of reading a directory
type DirectoryReadEvent struct {
	Dir     string
	Entries []Entry
}

func (e DirectoryReadEvent) Type() EventType { return EventDirectoryRead }

// SearchResultsEvent carries the full result set of a search under a directory
type SearchResultsEvent struct {
	Dir     string
	Query   string
	Entries []Entry
}

func (e SearchResultsEvent) Type() EventType { return EventSearchResults }

// SearchRequestedEvent is emitted to request a search under a directory
type SearchRequestedEvent struct {
	Dir   string
	Query string
}

func (e SearchRequestedEvent) Type() EventType { return EventSearchRequested }

// PageChangedEvent is emitted when the visible page of a pane changes
type PageChangedEvent struct {
	Dir  string
	Page int
}

func (e PageChangedEvent) Type() EventType { return EventPageChanged }

// RefreshRequestedEvent is emitted to request a fresh read of a directory
type RefreshRequestedEvent struct {
	Dir string
}

func (e RefreshRequestedEvent) Type() EventType { return EventRefreshRequested }

// DirectoryChangedEvent is emitted when the filesystem reports a change
// inside a watched directory
type DirectoryChangedEvent struct {
	Dir string
}

func (e DirectoryChangedEvent) Type() EventType { return EventDirectoryChanged }

// ListingErrorEvent is emitted when reading or searching a directory fails
type ListingErrorEvent struct {
	Dir string
	Err error
}

func (e ListingErrorEvent) Type() EventType { return EventListingError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	StartDir   string
	ShowHidden bool
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
