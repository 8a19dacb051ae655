package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"moviegrip/internal/catalog"
	"moviegrip/internal/config"
	"moviegrip/internal/eventbus"
	"moviegrip/internal/history"
	"moviegrip/internal/logging"
	"moviegrip/internal/search"
	"moviegrip/internal/ui"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runSearch(cmd *cobra.Command, args []string) error {
	configSvc := config.NewConfigService(configPath)
	cfg, err := configSvc.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlags(cmd, cfg)

	logger, err := logging.NewFileLogger(cfg.Log.File, cfg.Log.Debug)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	logger.Info("starting", zap.String("config", configSvc.Path()), zap.String("catalog", cfg.Catalog.BaseURL))
	if cfg.Catalog.APIKey == "" {
		logger.Warn("no catalog API key configured", zap.String("env", config.APIKeyEnv))
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	bus := eventbus.New(logger)
	defer bus.Close()
	configSvc = config.NewConfigServiceWithBus(configSvc.Path(), bus)

	recorder := history.NewRecorder(bus, history.DefaultLimit)
	defer recorder.Close()

	// Timer and fetch goroutines post here; the forwarder hands messages to the program
	eventChan := make(chan any, 100)
	notify := func(msg any) {
		select {
		case eventChan <- msg:
		case <-ctx.Done():
		}
	}

	client := catalog.NewClient(catalog.Options{
		BaseURL:       cfg.Catalog.BaseURL,
		APIKey:        cfg.Catalog.APIKey,
		Timeout:       cfg.Timeout(),
		MaxConcurrent: cfg.Catalog.MaxConcurrent,
		Logger:        logger,
	})

	coord := search.NewCoordinator(ctx, client, notify, search.Options{
		Debounce:           cfg.Debounce(),
		SortByDefault:      cfg.Search.SortByDefault,
		SkipInvalidQueries: cfg.Search.SkipInvalidQueries,
		Bus:                bus,
		Logger:             logger,
	})

	model := ui.NewModel(coord, cfg, ui.Options{
		Bus:          bus,
		History:      recorder,
		Logger:       logger,
		InitialQuery: strings.TrimSpace(strings.Join(args, " ")),
		ReadyMarker:  os.Getenv("MOVIEGRIP_E2E_TEST") == "1",
	})

	var programOpts []tea.ProgramOption
	if cfg.UISettings.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	programOpts = append(programOpts, tea.WithContext(ctx))
	p := tea.NewProgram(model, programOpts...)
	model.SetProgram(p)

	// Surface bus errors and stale results in the UI
	for _, eventType := range []eventbus.EventType{eventbus.EventError, eventbus.EventStaleResultDiscarded} {
		bus.Subscribe(eventType, func(e eventbus.DomainEvent) {
			notify(ui.EventMsg{Event: e})
		})
	}

	go func() {
		for {
			select {
			case msg := <-eventChan:
				p.Send(msg)
			case <-ctx.Done():
				return
			}
		}
	}()

	logger.Info("starting UI")
	_, runErr := p.Run()
	interrupted := ctx.Err() != nil
	cancel()
	if runErr != nil && !interrupted {
		logger.Error("error running program", zap.Error(runErr))
		return fmt.Errorf("error running program: %w", runErr)
	}
	logger.Info("UI exited")

	if err := persistSort(configSvc, model.Sorted()); err != nil {
		logger.Warn("failed to save sort preference", zap.Error(err))
	}
	return nil
}

// applyFlags lets command line flags override the loaded config
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("api-key") {
		cfg.Catalog.APIKey = apiKey
	}
	if flags.Changed("base-url") {
		cfg.Catalog.BaseURL = baseURL
	}
	if flags.Changed("debounce") && debounce > 0 {
		cfg.Search.DebounceMS = int(debounce.Milliseconds())
	}
	if debugFlag {
		cfg.Log.Debug = true
	}
}

// persistSort stores the sort flag as the next session's default.
// The file is re-read so flag and environment overrides are not written back.
func persistSort(configSvc config.ConfigService, sorted bool) error {
	onDisk, err := configSvc.LoadFromPath(configSvc.Path())
	if err != nil {
		return err
	}
	if onDisk.Search.SortByDefault == sorted {
		return nil
	}
	onDisk.Search.SortByDefault = sorted
	return configSvc.Save(onDisk)
}
