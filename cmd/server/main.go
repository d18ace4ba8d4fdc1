// Ludotheca - Self-Hosted Game Backlog Tracker and Recommender
// Copyright 2026 Ludotheca contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ludotheca/ludotheca

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ludotheca/ludotheca/internal/api"
	"github.com/ludotheca/ludotheca/internal/catalog"
	"github.com/ludotheca/ludotheca/internal/config"
	"github.com/ludotheca/ludotheca/internal/events"
	"github.com/ludotheca/ludotheca/internal/logging"
	"github.com/ludotheca/ludotheca/internal/metrics"
	"github.com/ludotheca/ludotheca/internal/progress"
	"github.com/ludotheca/ludotheca/internal/supervisor"
	"github.com/ludotheca/ludotheca/internal/supervisor/services"
	ws "github.com/ludotheca/ludotheca/internal/websocket"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize zerolog with configuration
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().Msg("Starting Ludotheca with supervisor tree")
	logging.Info().
		Str("catalog_path", cfg.Catalog.Path).
		Str("db_path", cfg.Database.Path).
		Bool("db_in_memory", cfg.Database.InMemory).
		Msg("Configuration loaded")

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load the immutable catalog. The catalog is required at startup; a
	// missing or malformed file aborts the process before any socket opens.
	cat, err := catalog.Load(ctx, catalog.SourceConfig{
		Source:  cfg.Catalog.Path,
		Timeout: cfg.Server.Timeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load catalog")
	}
	metrics.CatalogItems.Set(float64(cat.Len()))

	// Open the BadgerDB progress store
	store, err := progress.OpenStore(progress.StoreConfig{
		Path:       cfg.Database.Path,
		InMemory:   cfg.Database.InMemory,
		SyncWrites: cfg.Database.SyncWrites,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open progress store")
	}
	defer func() {
		if err := store.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing progress store")
		}
	}()
	logging.Info().Msg("Progress store opened successfully")

	// Create WebSocket hub for real-time updates (before the event bridge,
	// which broadcasts through it)
	wsHub := ws.NewHub()

	// Create the Watermill event bus and wire the WebSocket bridge to it.
	// Handlers must be registered before the supervisor starts the bus.
	bus, err := events.NewBus()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create event bus")
	}
	defer func() {
		if err := bus.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing event bus")
		}
	}()

	bridge, err := events.NewBridge(store, cat, wsHub)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create event bridge")
	}
	if err := bus.AddHandlers(bridge.Handlers()...); err != nil {
		logging.Fatal().Err(err).Msg("Failed to register event handlers")
	}

	// Create structured logger for supervisor using our slog adapter
	// This bridges zerolog to slog for sutureslog compatibility
	slogLogger := logging.NewSlogLogger()

	// Create supervisor tree
	tree, err := supervisor.NewSupervisorTree(slogLogger, supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	middleware := api.NewChiMiddlewareFromSecurity(
		cfg.Security.CORSOrigins,
		cfg.Security.RateLimitReqs,
		cfg.Security.RateLimitWindow,
		cfg.Security.RateLimitDisabled,
	)

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
		logging.Warn().Msg("This should only be used for local development and tests!")
	}

	handler, err := api.NewHandler(cat, store, bus, cfg, wsHub)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create API handler")
	}

	router := api.NewRouter(handler, middleware)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	// === ADD SERVICES TO SUPERVISOR TREE ===

	// Messaging layer services
	tree.AddMessagingService(services.NewWebSocketHubService(wsHub))
	tree.AddMessagingService(services.NewEventBusService(bus))
	logging.Info().Msg("WebSocket hub and event bus added to supervisor tree")

	// API layer services
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	// === START SUPERVISOR TREE ===

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	// Wait for supervisor to finish (either from signal or error)
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Wait for the error channel to close (supervisor finished)
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	// Report any services that failed to stop within timeout
	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
