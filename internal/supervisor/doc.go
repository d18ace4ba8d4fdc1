// Ludotheca - Self-Hosted Game Backlog Tracker and Recommender
// Copyright 2026 Ludotheca contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ludotheca/ludotheca

/*
Package supervisor provides process supervision for Ludotheca using suture v4.

The package builds a small hierarchical supervisor tree that owns every
long-running goroutine in the application, giving Erlang/OTP-style restart
semantics, failure isolation and graceful shutdown.

# Overview

	RootSupervisor ("ludotheca")
	├── MessagingSupervisor ("messaging-layer")
	│   ├── WebSocketHubService
	│   └── EventBusService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

The split means a crash in the broadcast path (hub or bus) restarts the
messaging layer on its own; the HTTP server keeps answering library reads
and progress writes while live updates recover. Each layer carries its own
failure counter, so a flapping service cannot drag an unrelated layer into
backoff.

The Badger progress store is not supervised. It is an embedded library, not
a service: the handle is opened once in main, its goroutines are managed by
Badger itself, and a corrupted store would need a process restart regardless.

# Usage

	logger := logging.NewSlogLogger()
	tree, err := supervisor.NewSupervisorTree(logger, supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}

	tree.AddMessagingService(services.NewWebSocketHubService(hub))
	tree.AddMessagingService(services.NewEventBusService(bus))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.Timeout))

	errCh := tree.ServeBackground(ctx)
	// ... wait for a signal ...
	cancel()
	if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
	    return err
	}

# Configuration

TreeConfig controls restart behavior; the defaults match suture's own:

	FailureThreshold: 5.0           // failures before backoff
	FailureDecay:     30.0          // seconds for the counter to decay
	FailureBackoff:   15 * time.Second
	ShutdownTimeout:  10 * time.Second

Suture counts failures with exponential decay: a service that crashes once
and then runs cleanly sees its counter drift back toward zero, while rapid
crash loops push the layer into backoff instead of hot-spinning restarts.

# Service contract

Every wrapped component implements suture.Service:

	type Service interface {
	    Serve(ctx context.Context) error
	}

Returning an error triggers a supervised restart. Returning after the
context is canceled is treated as a clean stop. Services must return
promptly on cancellation; anything still running after ShutdownTimeout
shows up in UnstoppedServiceReport.

# See Also

  - internal/supervisor/services: the wrappers around hub, bus and server
  - github.com/thejerf/suture/v4: the underlying supervision library
*/
package supervisor
