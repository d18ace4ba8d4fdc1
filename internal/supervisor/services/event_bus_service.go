// Ludotheca - Self-Hosted Game Backlog Tracker and Recommender
// Copyright 2026 Ludotheca contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ludotheca/ludotheca

package services

import (
	"context"
)

// BusRunner matches *events.Bus's Run method.
type BusRunner interface {
	Run(ctx context.Context) error
}

// EventBusService wraps the progress event bus as a supervised service.
//
// Run drives the watermill router, which delivers mutation events to the
// WebSocket bridge handlers. Handlers must be registered before the
// service starts; events published while the bus is down are dropped,
// which is acceptable because clients resync from the REST API on
// reconnect.
type EventBusService struct {
	bus  BusRunner
	name string
}

// NewEventBusService creates an event bus service wrapper.
func NewEventBusService(bus BusRunner) *EventBusService {
	return &EventBusService{
		bus:  bus,
		name: "event-bus",
	}
}

// Serve implements suture.Service. It blocks in the router until the
// context is canceled or the router fails.
func (s *EventBusService) Serve(ctx context.Context) error {
	return s.bus.Run(ctx)
}

// String implements fmt.Stringer so suture can name the service in logs.
func (s *EventBusService) String() string {
	return s.name
}
