package ui

import (
	"dirgrip/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// previewDoneMsg contains the result of a pager preview
type previewDoneMsg struct {
	err error
}

// openDoneMsg contains the result of handing a file to the OS opener
type openDoneMsg struct {
	err error
}
