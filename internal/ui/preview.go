package ui

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// previewCmd pages a file's contents in ov, handing the terminal over for
// the duration
func (m *Model) previewCmd(path string) tea.Cmd {
	return func() tea.Msg {
		return previewDoneMsg{err: m.showFileInPager(path)}
	}
}

// showFileInPager shows a file using the ov pager
func (m *Model) showFileInPager(path string) error {
	if m.program == nil {
		return fmt.Errorf("program not set")
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	// Release terminal control to run ov
	if err := m.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = m.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(f)
	if err != nil {
		return err
	}

	// Don't write pager contents on exit, it would mess with our screen
	ovcfg := oviewer.NewConfig()
	ovcfg.IsWriteOnExit = false
	ovcfg.IsWriteOriginal = false
	root.SetConfig(ovcfg)

	return root.Run()
}
