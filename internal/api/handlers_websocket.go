// Ludotheca - Self-Hosted Game Backlog Tracker and Recommender
// Copyright 2026 Ludotheca contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ludotheca/ludotheca

package api

import (
	"net/http"

	"github.com/ludotheca/ludotheca/internal/logging"
	ws "github.com/ludotheca/ludotheca/internal/websocket"
)

// WebSocket upgrades the connection and hands it to the hub. Connected
// clients receive progress_updated, progress_imported and stats_update
// frames pushed by the events bridge.
//
// @Summary WebSocket live updates
// @Description Upgrades to a WebSocket connection carrying progress and statistics frames.
// @Tags Live
// @Success 101 "Switching protocols"
// @Failure 503 {object} models.APIResponse "Hub not running"
// @Router /ws [get]
func (h *Handler) WebSocket(w http.ResponseWriter, r *http.Request) {
	if h.wsHub == nil {
		logging.Warn().Msg("WebSocket connection rejected: hub not initialized")
		respondError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "WebSocket service unavailable", nil)
		return
	}

	upgrader := h.getUpgrader()
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error response.
		logging.Error().Err(err).Msg("WebSocket upgrade error")
		return
	}

	client := ws.NewClient(h.wsHub, conn)
	h.wsHub.Register <- client
	client.Start()
}
