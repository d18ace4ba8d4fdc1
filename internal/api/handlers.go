// Ludotheca - Self-Hosted Game Backlog Tracker and Recommender
// Copyright 2026 Ludotheca contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ludotheca/ludotheca

package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ludotheca/ludotheca/internal/catalog"
	"github.com/ludotheca/ludotheca/internal/config"
	"github.com/ludotheca/ludotheca/internal/events"
	"github.com/ludotheca/ludotheca/internal/logging"
	"github.com/ludotheca/ludotheca/internal/progress"
	ws "github.com/ludotheca/ludotheca/internal/websocket"
)

// Handler contains dependencies for API handlers.
//
// Handler methods are split across multiple files:
//   - handlers.go: Handler struct, constructor, WebSocket plumbing (this file)
//   - handlers_helpers.go: shared helper functions
//   - handlers_health.go: health and monitoring endpoints
//   - handlers_library.go: library view endpoints
//   - handlers_progress.go: progress mutations, export and import
//   - handlers_recommend.go: recommendation endpoint
//   - handlers_stats.go: statistics endpoint
//   - handlers_websocket.go: WebSocket upgrade endpoint
type Handler struct {
	catalog   *catalog.Catalog
	store     *progress.Store
	bus       *events.Bus
	config    *config.Config
	wsHub     *ws.Hub
	startTime time.Time
}

// NewHandler creates a new API handler.
//
// Dependencies:
//   - cat: the immutable game catalog, loaded at startup
//   - store: the Badger-backed progress store
//   - bus: the event bus mutations publish to (required; broadcasts happen
//     in the events bridge, never in handlers)
//   - cfg: application configuration, used for the WebSocket origin check.
//     May be nil in tests, which fails open.
//   - wsHub: WebSocket hub for live updates. May be nil, which turns the
//     /ws endpoint into a 503.
func NewHandler(cat *catalog.Catalog, store *progress.Store, bus *events.Bus, cfg *config.Config, wsHub *ws.Hub) (*Handler, error) {
	if cat == nil {
		return nil, fmt.Errorf("api: catalog is required")
	}
	if store == nil {
		return nil, fmt.Errorf("api: progress store is required")
	}
	if bus == nil {
		return nil, fmt.Errorf("api: event bus is required")
	}

	return &Handler{
		catalog:   cat,
		store:     store,
		bus:       bus,
		config:    cfg,
		wsHub:     wsHub,
		startTime: time.Now(),
	}, nil
}

// getUpgrader returns a WebSocket upgrader with origin validation
func (h *Handler) getUpgrader() websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:   1024,
		WriteBufferSize:  1024,
		CheckOrigin:      h.checkWebSocketOrigin,
		HandshakeTimeout: 10 * time.Second,
	}
}

// checkWebSocketOrigin validates WebSocket connection origins
func (h *Handler) checkWebSocketOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")

	// Legitimate browser WebSockets always include Origin. Allowing an empty
	// Origin would bypass CORS entirely, so only non-browser clients lose out.
	if origin == "" {
		logging.Warn().Msg("WebSocket connection rejected: missing Origin header")
		return false
	}

	// Nil config fails open for tests and development.
	if h.config == nil {
		return true
	}

	for _, allowedOrigin := range h.config.Security.CORSOrigins {
		if allowedOrigin == "*" || allowedOrigin == origin {
			return true
		}
	}

	logging.Warn().Str("origin", sanitizeLogValue(origin)).Msg("WebSocket connection rejected from unauthorized origin")
	return false
}
