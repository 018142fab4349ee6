package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"orgstars/internal/config"
	"orgstars/internal/eventbus"
	"orgstars/internal/fetcher"
	"orgstars/internal/github"
	"orgstars/internal/logic"
	"orgstars/internal/starring"
	"orgstars/internal/ui"
)

// uiEvents are forwarded from the bus to the bubbletea program
var uiEvents = []eventbus.EventType{
	eventbus.EventRepositoriesLoading,
	eventbus.EventRepositoriesLoaded,
	eventbus.EventRepositoriesFailed,
	eventbus.EventStarApplied,
	eventbus.EventStarFailed,
}

// setupLogging points the global logger at a file; the TUI owns the terminal
func setupLogging(path string, debug bool) (*os.File, error) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Logger = zerolog.Nop()
		return nil, fmt.Errorf("could not open log file: %w", err)
	}
	log.Logger = zerolog.New(logFile).With().Timestamp().Logger()
	return logFile, nil
}

func run(parent context.Context, cfg *config.Config, configSvc config.ConfigService, opts options) error {
	logFile, err := setupLogging(opts.LogFile, opts.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	} else {
		defer logFile.Close()
	}

	log.Info().
		Str("organization", cfg.Organization).
		Int("first", cfg.First).
		Str("endpoint", cfg.GitHub.Endpoint).
		Str("config", configSvc.Path()).
		Msg("Starting orgstars")

	ctx, cancel := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Drops are reported from Publish, which may run on the UI goroutine
	droppedChan := make(chan eventbus.DomainEvent, 16)
	bus := eventbus.New(eventbus.WithDropHandler(func(e eventbus.DomainEvent) {
		select {
		case droppedChan <- e:
		default:
		}
	}))
	defer bus.Close()

	client := github.NewClient(ctx, cfg.Token, cfg.GitHub.Endpoint)
	source := github.NewSource(client, cfg.Organization, cfg.First)

	// Services subscribe to the bus on construction
	_ = fetcher.NewFetcher(bus, source, source.Organization(), cfg.Timeout())
	_ = starring.NewStarService(bus, source, cfg.Timeout())

	uiModel := ui.NewModel(bus, cfg, logic.NewMemoryRepositoryStore())

	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithContext(ctx))
	uiModel.SetProgram(p)

	// Forward domain events to the UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	for _, et := range uiEvents {
		bus.Subscribe(et, func(e eventbus.DomainEvent) {
			select {
			case eventChan <- e:
			case <-ctx.Done():
			}
		})
	}
	go func() {
		for {
			select {
			case event := <-eventChan:
				p.Send(ui.EventMsg{Event: event})
			case event := <-droppedChan:
				p.Send(ui.DroppedEventMsg{Event: event})
			case <-ctx.Done():
				return
			}
		}
	}()

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("error running program: %w", err)
	}

	log.Info().Msg("Exiting orgstars")
	return nil
}
