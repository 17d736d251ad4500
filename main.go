package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"alphabetter/internal/config"
	"alphabetter/internal/fetcher"
	"alphabetter/internal/logger"
	"alphabetter/ui/console"
	"alphabetter/ui/tui"
	"alphabetter/ui/tui/state"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	configPath = flag.String("config", "", "Path to a YAML configuration file")
	route      = flag.String("route", "", "Open directly on a route: /props or /team-info")
	once       = flag.Bool("once", false, "Fetch both collections once, print them and exit")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("Failed to load config: %v", err)
	}
	if *route != "" {
		cfg.UI.StartRoute = *route
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("Invalid configuration: %v", err)
	}

	client := fetcher.New(cfg.Fetcher())
	sources := tui.Sources{
		Props: fetcher.PropsEndpoint(client),
		Teams: fetcher.TeamsEndpoint(client),
	}

	if *once {
		logger.Init(cfg.Logging.Level, os.Stderr)
		console.Run(context.Background(), os.Stdout, sources.Props, sources.Teams)
		return
	}

	// The terminal belongs to the TUI; diagnostics go to the log file.
	f, err := tea.LogToFile(cfg.Logging.File, "alphabetter")
	if err != nil {
		logger.Fatal("Failed to open log file: %v", err)
	}
	defer f.Close()
	logger.Init(cfg.Logging.Level, f)
	logger.Info("API at %s", cfg.API.BaseURL)

	page, _ := state.PageForPath(cfg.UI.StartRoute)
	if err := tui.Start(sources, tui.Options{StartPage: page, Mouse: cfg.UI.Mouse}); err != nil {
		logger.Error("TUI exited: %v", err)
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
