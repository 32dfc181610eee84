package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"grepgrip/internal/config"
	"grepgrip/internal/domain"
	"grepgrip/internal/eventbus"
	"grepgrip/internal/ui"
	"grepgrip/internal/workspace"
)

func main() {
	var dir string
	flag.StringVar(&dir, "dir", "", "directory to search in (default: working directory)")
	flag.StringVar(&dir, "d", "", "directory to search in (shorthand)")
	flag.Parse()

	if dir == "" && flag.NArg() > 0 {
		dir = flag.Arg(0)
	}
	if dir == "" {
		dir, _ = os.Getwd()
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}

	// Set up logging
	logFile, err := os.OpenFile("grepgrip.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Load configuration
	configSvc := config.NewConfigService()
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		cfg = config.DefaultConfig()
	}

	// Create event bus
	bus := eventbus.New()

	// Watch the base directory so root options stay current
	ws := workspace.NewLocal(dir)
	defer ws.Close()

	// Log lifecycle events for troubleshooting
	bus.Subscribe(domain.EventSearchStarted, func(e eventbus.DomainEvent) {
		log.Printf("event: %v", e)
	})
	bus.Subscribe(domain.EventSearchFinished, func(e eventbus.DomainEvent) {
		log.Printf("event: %v", e)
	})
	bus.Subscribe(domain.EventError, func(e eventbus.DomainEvent) {
		log.Printf("event: %v", e)
	})

	// Create UI model
	uiModel := ui.NewModel(bus, cfg, ws)

	p := tea.NewProgram(uiModel, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}

	// Persist histories and selections from the final UI state
	if m, ok := finalModel.(*ui.Model); ok {
		m.PersistInto(cfg)
	}
	if err := configSvc.Save(cfg); err != nil {
		log.Printf("Error saving config: %v", err)
	}
}
