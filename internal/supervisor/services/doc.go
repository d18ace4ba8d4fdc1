// Ludotheca - Self-Hosted Game Backlog Tracker and Recommender
// Copyright 2026 Ludotheca contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ludotheca/ludotheca

/*
Package services adapts Ludotheca's long-running components to suture.Service.

Each wrapper translates one component's lifecycle into the single
Serve(ctx) error contract the supervisor tree expects:

  - HTTPServerService: bridges http.Server's blocking ListenAndServe and
    Shutdown pair into a context-aware Serve.
  - WebSocketHubService: delegates to the hub's RunWithContext, which
    already follows the contract.
  - EventBusService: delegates to the bus's Run, which drives the
    watermill router until cancellation.

The wrappers depend on small local interfaces rather than the concrete
packages, so this package never imports internal/api, internal/events or
internal/websocket and cannot form an import cycle with them.
*/
package services
