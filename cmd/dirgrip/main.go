package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"dirgrip/internal/config"
	"dirgrip/internal/eventbus"
	"dirgrip/internal/listing"
	"dirgrip/internal/ui"
)

func main() {
	// Set up logging
	logFile, err := os.OpenFile("dirgrip.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Parse command line arguments
	var startDir string
	flag.StringVar(&startDir, "dir", "", "Directory to browse")
	flag.StringVar(&startDir, "d", "", "Directory to browse (shorthand)")
	flag.Parse()
	if startDir == "" && flag.NArg() > 0 {
		startDir = flag.Arg(0)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	// Load configuration
	configSvc := config.NewConfigServiceWithBus(bus)
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		cfg = config.DefaultConfig()
	}
	if startDir != "" {
		abs, err := filepath.Abs(startDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid directory %q: %v\n", startDir, err)
			os.Exit(1)
		}
		cfg.StartDir = abs
	}

	// Initialize services
	listingSvc := listing.NewService(bus, cfg.DirsFirst)

	if cfg.WatchFS {
		watcher, err := listing.NewWatcher(bus)
		if err != nil {
			log.Printf("Could not create filesystem watcher: %v", err)
		} else {
			defer watcher.Close()
			if err := watcher.Watch(cfg.StartDir); err != nil {
				log.Printf("Could not watch %s: %v", cfg.StartDir, err)
			}
			go watcher.Run(ctx)
		}
	}

	// Create UI model
	uiModel := ui.NewModel(bus, cfg)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Set up event forwarding to the UI
	forward := func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	}
	bus.Subscribe(eventbus.EventDirectoryRead, forward)
	bus.Subscribe(eventbus.EventSearchResults, forward)
	bus.Subscribe(eventbus.EventListingError, forward)

	// Start initial listing
	go func() {
		if err := listingSvc.Read(ctx, cfg.StartDir); err != nil {
			log.Printf("Initial read failed: %v", err)
		}
	}()

	// Run the UI
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	// Persist settings changed from the UI (hidden-file toggle)
	if err := configSvc.Save(cfg); err != nil {
		log.Printf("Error saving config: %v", err)
	}
}
