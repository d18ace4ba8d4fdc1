// Ludotheca - Self-Hosted Game Backlog Tracker and Recommender
// Copyright 2026 Ludotheca contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ludotheca/ludotheca

// Package events carries progress-mutation events from the API layer to
// in-process subscribers over a Watermill GoChannel pub/sub. The only
// consumer today is the WebSocket bridge; handlers are registered through
// the CQRS event processor so new consumers stay type-safe.
package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/ludotheca/ludotheca/internal/progress"
)

// Mutation actions as they appear in events, logs and metric labels.
const (
	ActionMarkPlayed = "mark_played"
	ActionRate       = "rate"
	ActionReset      = "reset"
	ActionSetNotes   = "set_notes"
)

// ProgressUpdated is emitted after every single-item progress mutation.
type ProgressUpdated struct {
	EventID   string    `json:"event_id"`
	Timestamp time.Time `json:"timestamp"`

	// ItemID is the catalog item whose record changed.
	ItemID int `json:"item_id"`

	// Action names the transition that ran.
	Action string `json:"action"`

	// Record is the post-mutation state, zero when the record was pruned.
	Record progress.Record `json:"record"`
}

// NewProgressUpdated stamps a ProgressUpdated event.
func NewProgressUpdated(itemID int, action string, record progress.Record) *ProgressUpdated {
	return &ProgressUpdated{
		EventID:   uuid.New().String(),
		Timestamp: time.Now().UTC(),
		ItemID:    itemID,
		Action:    action,
		Record:    record,
	}
}

// ProgressImported is emitted after a full progress map replacement.
type ProgressImported struct {
	EventID   string    `json:"event_id"`
	Timestamp time.Time `json:"timestamp"`

	// Count is the number of non-zero records after the import.
	Count int `json:"count"`
}

// NewProgressImported stamps a ProgressImported event.
func NewProgressImported(count int) *ProgressImported {
	return &ProgressImported{
		EventID:   uuid.New().String(),
		Timestamp: time.Now().UTC(),
		Count:     count,
	}
}
