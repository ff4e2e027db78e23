package ui

import (
	"fmt"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/skratchdot/open-golang/open"

	"dirgrip/internal/config"
	"dirgrip/internal/eventbus"
	"dirgrip/internal/pane"
	"dirgrip/internal/term"
)

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	pane   *pane.Pane

	width  int
	height int

	searchInput textinput.Model
	searching   bool // typing a search query

	status   string
	statusIsErr bool
	styles   *Styles

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config) *Model {
	ti := textinput.New()
	ti.Placeholder = "search"
	ti.CharLimit = 128

	m := &Model{
		bus:         bus,
		config:      cfg,
		searchInput: ti,
		styles:      NewStyles(),
	}
	m.width, m.height = term.Size()

	m.pane = pane.New(cfg.StartDir, bus, m.paneSize)
	m.pane.Files().ShowHidden = cfg.ShowHidden

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
}

// paneSize injects the terminal dimensions into the pane
func (m *Model) paneSize() (cols, rows int) {
	return m.width, m.height
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.searchInput.Width = msg.Width - 4
		m.pane.SetPage(false)
		return m, nil

	case EventMsg:
		m.handleEvent(msg.Event)
		return m, nil

	case previewDoneMsg:
		if msg.err != nil {
			m.setError(fmt.Sprintf("preview failed: %v", msg.err))
		}
		return m, nil

	case openDoneMsg:
		if msg.err != nil {
			m.setError(fmt.Sprintf("open failed: %v", msg.err))
		}
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.handleSearchKey(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

// handleEvent applies a forwarded domain event to the pane
func (m *Model) handleEvent(event eventbus.DomainEvent) {
	switch e := event.(type) {
	case eventbus.DirectoryReadEvent:
		if !m.pane.InSearch() && e.Dir == m.pane.Dir() {
			m.pane.Update(e)
		}

	case eventbus.SearchResultsEvent:
		if m.pane.InSearch() && e.Dir == m.pane.Dir() {
			m.pane.Update(e)
			m.setStatus(fmt.Sprintf("%d results for %q", len(e.Entries), e.Query))
		}

	case eventbus.ListingErrorEvent:
		m.setError(fmt.Sprintf("%v", e.Err))
	}
}

// handleKey processes a key press in normal mode
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "j", "down":
		m.pane.Next(1)

	case "k", "up":
		m.pane.Prev(1)

	case "pgdown", "ctrl+f":
		m.pane.Next(m.pane.Limit())

	case "pgup", "ctrl+b":
		m.pane.Prev(m.pane.Limit())

	case "g", "home":
		m.pane.Prev(m.pane.Cursor())

	case "G", "end":
		m.pane.Next(m.pane.Files().Len())

	case " ":
		if m.pane.Select(m.pane.Cursor(), nil) {
			m.pane.Next(1)
		}

	case "a":
		on := true
		m.pane.Select(-1, &on)

	case "A":
		off := false
		m.pane.Select(-1, &off)

	case "v":
		m.pane.Select(-1, nil)

	case ".":
		m.pane.Hidden(nil)
		m.config.ShowHidden = m.pane.Files().ShowHidden

	case "/":
		m.searching = true
		m.searchInput.Focus()
		return m, textinput.Blink

	case "esc":
		if m.pane.InSearch() {
			m.leaveSearch()
		} else {
			off := false
			m.pane.Select(-1, &off)
		}

	case "enter", "l", "right":
		h := m.pane.Hovered()
		if h == nil {
			break
		}
		if h.IsDir {
			m.enterDir(h.Path)
		} else {
			return m, m.previewCmd(h.Path)
		}

	case "h", "left", "backspace":
		if m.pane.InSearch() {
			m.leaveSearch()
			break
		}
		parent := filepath.Dir(m.pane.Dir())
		if parent != m.pane.Dir() {
			m.enterDir(parent)
		}

	case "y":
		if h := m.pane.Hovered(); h != nil {
			if err := clipboard.WriteAll(h.Path); err != nil {
				m.setError(fmt.Sprintf("clipboard: %v", err))
			} else {
				m.setStatus("path copied")
			}
		}

	case "o":
		if h := m.pane.Hovered(); h != nil {
			path := h.Path
			return m, func() tea.Msg {
				return openDoneMsg{err: open.Run(path)}
			}
		}

	case "r":
		m.bus.Publish(eventbus.RefreshRequestedEvent{Dir: m.pane.Dir()})
	}

	return m, nil
}

// handleSearchKey processes a key press while typing a search query
func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		query := m.searchInput.Value()
		m.searching = false
		m.searchInput.Blur()
		m.searchInput.Reset()
		if query == "" {
			return m, nil
		}

		dir := m.pane.Dir()
		search := pane.NewSearch(dir, m.bus, m.paneSize)
		search.Files().ShowHidden = m.pane.Files().ShowHidden
		m.pane = search
		m.setStatus(fmt.Sprintf("searching for %q...", query))
		m.bus.Publish(eventbus.SearchRequestedEvent{Dir: dir, Query: query})
		return m, nil

	case "esc":
		m.searching = false
		m.searchInput.Blur()
		m.searchInput.Reset()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// enterDir replaces the pane with one for the given directory and requests
// its listing
func (m *Model) enterDir(dir string) {
	next := pane.New(dir, m.bus, m.paneSize)
	next.Files().ShowHidden = m.pane.Files().ShowHidden
	m.pane = next
	m.status = ""
	m.bus.Publish(eventbus.RefreshRequestedEvent{Dir: dir})
}

// leaveSearch drops the search pane and goes back to the plain listing
func (m *Model) leaveSearch() {
	m.enterDir(m.pane.Dir())
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusIsErr = false
}

func (m *Model) setError(s string) {
	m.status = s
	m.statusIsErr = true
}
