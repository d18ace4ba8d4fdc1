// Ludotheca - Self-Hosted Game Backlog Tracker and Recommender
// Copyright 2026 Ludotheca contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ludotheca/ludotheca

package events

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/components/cqrs"

	"github.com/ludotheca/ludotheca/internal/logging"
	"github.com/ludotheca/ludotheca/internal/progress"
)

//nolint:gochecknoinits // init ensures consistent logging for tests
func init() {
	logging.Init(logging.Config{
		Level:  "info",
		Format: "console",
		Output: io.Discard,
	})
}

func TestNewProgressUpdated(t *testing.T) {
	t.Parallel()

	rec := progress.Record{Played: true, Rating: 4}
	ev := NewProgressUpdated(7, ActionRate, rec)

	if ev.EventID == "" {
		t.Error("EventID should not be empty")
	}
	if ev.Timestamp.IsZero() {
		t.Error("Timestamp should be set")
	}
	if ev.ItemID != 7 {
		t.Errorf("ItemID = %d, want 7", ev.ItemID)
	}
	if ev.Action != ActionRate {
		t.Errorf("Action = %q, want %q", ev.Action, ActionRate)
	}
	if ev.Record != rec {
		t.Errorf("Record = %+v, want %+v", ev.Record, rec)
	}
}

func TestNewProgressImported(t *testing.T) {
	t.Parallel()

	ev := NewProgressImported(12)

	if ev.EventID == "" {
		t.Error("EventID should not be empty")
	}
	if ev.Count != 12 {
		t.Errorf("Count = %d, want 12", ev.Count)
	}
}

func TestEventIDsAreUnique(t *testing.T) {
	t.Parallel()

	a := NewProgressUpdated(1, ActionMarkPlayed, progress.Record{Played: true})
	b := NewProgressUpdated(1, ActionMarkPlayed, progress.Record{Played: true})
	if a.EventID == b.EventID {
		t.Errorf("two events share EventID %q", a.EventID)
	}
}

func TestBusPublishDeliversToHandlers(t *testing.T) {
	bus, err := NewBus()
	if err != nil {
		t.Fatalf("NewBus() error = %v", err)
	}

	updated := make(chan *ProgressUpdated, 1)
	imported := make(chan *ProgressImported, 1)
	err = bus.AddHandlers(
		cqrs.NewEventHandler("capture-updated", func(ctx context.Context, ev *ProgressUpdated) error {
			updated <- ev
			return nil
		}),
		cqrs.NewEventHandler("capture-imported", func(ctx context.Context, ev *ProgressImported) error {
			imported <- ev
			return nil
		}),
	)
	if err != nil {
		t.Fatalf("AddHandlers() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = bus.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Error("bus did not stop after cancel")
		}
	})

	select {
	case <-bus.Running():
	case <-time.After(2 * time.Second):
		t.Fatal("bus did not start")
	}

	sent := NewProgressUpdated(3, ActionRate, progress.Record{Played: true, Rating: 5})
	if err := bus.PublishProgressUpdated(ctx, sent); err != nil {
		t.Fatalf("PublishProgressUpdated() error = %v", err)
	}

	select {
	case got := <-updated:
		if got.ItemID != 3 || got.Action != ActionRate || got.Record.Rating != 5 {
			t.Errorf("received %+v, want item 3 rated 5 via %q", got, ActionRate)
		}
		if got.EventID != sent.EventID {
			t.Errorf("EventID = %q, want %q", got.EventID, sent.EventID)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("ProgressUpdated not delivered")
	}

	if err := bus.PublishProgressImported(ctx, NewProgressImported(4)); err != nil {
		t.Fatalf("PublishProgressImported() error = %v", err)
	}

	select {
	case got := <-imported:
		if got.Count != 4 {
			t.Errorf("Count = %d, want 4", got.Count)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("ProgressImported not delivered")
	}

	// The other handler must not have seen the import event.
	select {
	case ev := <-updated:
		t.Errorf("unexpected ProgressUpdated delivery: %+v", ev)
	default:
	}
}
