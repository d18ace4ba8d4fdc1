// Ludotheca - Self-Hosted Game Backlog Tracker and Recommender
// Copyright 2026 Ludotheca contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ludotheca/ludotheca

package events

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/components/cqrs"

	"github.com/ludotheca/ludotheca/internal/catalog"
	"github.com/ludotheca/ludotheca/internal/logging"
	"github.com/ludotheca/ludotheca/internal/metrics"
	"github.com/ludotheca/ludotheca/internal/progress"
	"github.com/ludotheca/ludotheca/internal/stats"
	"github.com/ludotheca/ludotheca/internal/websocket"
)

// Broadcaster defines the interface for pushing frames to WebSocket clients.
// This allows the bridge to work with any hub implementation.
type Broadcaster interface {
	// BroadcastJSON sends a typed frame to all connected clients.
	BroadcastJSON(messageType string, data interface{})
}

// Bridge subscribes to progress events and fans them out to WebSocket
// clients. Every progress event is followed by a fresh stats frame so
// dashboards never render counters that lag behind the change that
// triggered them.
type Bridge struct {
	store       *progress.Store
	catalog     *catalog.Catalog
	broadcaster Broadcaster
}

// NewBridge creates a bridge between the event bus and a broadcaster.
func NewBridge(store *progress.Store, cat *catalog.Catalog, b Broadcaster) (*Bridge, error) {
	if store == nil {
		return nil, fmt.Errorf("progress store required")
	}
	if cat == nil {
		return nil, fmt.Errorf("catalog required")
	}
	if b == nil {
		return nil, fmt.Errorf("broadcaster required")
	}

	return &Bridge{
		store:       store,
		catalog:     cat,
		broadcaster: b,
	}, nil
}

// Handlers returns the bridge's event handlers for Bus.AddHandlers.
func (br *Bridge) Handlers() []cqrs.EventHandler {
	return []cqrs.EventHandler{
		cqrs.NewEventHandler("ws-progress-updated", br.onProgressUpdated),
		cqrs.NewEventHandler("ws-progress-imported", br.onProgressImported),
	}
}

// onProgressUpdated broadcasts a single-item change plus refreshed stats.
// It always returns nil because a broadcast failure must never nack the
// event or trigger redelivery.
func (br *Bridge) onProgressUpdated(ctx context.Context, ev *ProgressUpdated) error {
	br.broadcaster.BroadcastJSON(websocket.MessageTypeProgressUpdated, ev)
	br.broadcastStats()
	metrics.RecordEventProcessed("ProgressUpdated")
	return nil
}

// onProgressImported broadcasts a bulk-import notification plus refreshed
// stats. Always returns nil, same as onProgressUpdated.
func (br *Bridge) onProgressImported(ctx context.Context, ev *ProgressImported) error {
	br.broadcaster.BroadcastJSON(websocket.MessageTypeProgressImported, ev)
	br.broadcastStats()
	metrics.RecordEventProcessed("ProgressImported")
	return nil
}

func (br *Bridge) broadcastStats() {
	m, err := br.store.Load()
	if err != nil {
		logging.Warn().
			Err(err).
			Str("component", "events-bridge").
			Msg("Skipping stats broadcast, progress load failed")
		return
	}

	summary := stats.Compute(br.catalog.Items(), m)
	br.broadcaster.BroadcastJSON(websocket.MessageTypeStatsUpdate, summary)
}
