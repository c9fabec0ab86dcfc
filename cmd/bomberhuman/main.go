package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/amalg/go-bomberhuman/internal/game"
	"github.com/amalg/go-bomberhuman/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "YAML game config (default: built-in settings)")
	players := flag.Int("players", 0, "Number of players, 1-4 (overrides config)")
	seed := flag.Int64("seed", 0, "Stage seed (overrides config, 0 = random)")
	hold := flag.Duration("hold", 180*time.Millisecond, "How long a key press counts as held")
	logFile := flag.String("log", "", "Log file path (default: discard logs)")
	flag.Parse()

	// Redirect log output before the game starts: anything written to
	// stderr corrupts Bubbletea's terminal rendering.
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	config := game.DefaultConfig()
	if *configPath != "" {
		var err error
		config, err = game.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		log.Printf("loaded config from %s", *configPath)
	}
	if *players != 0 {
		config.Players = *players
	}
	if *seed != 0 {
		config.Seed = *seed
	}

	model, err := ui.NewModel(config, *hold)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
