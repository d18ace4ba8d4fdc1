// Ludotheca - Self-Hosted Game Backlog Tracker and Recommender
// Copyright 2026 Ludotheca contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ludotheca/ludotheca

/*
Package api provides the HTTP REST API layer for Ludotheca.

It exposes the library view, progress mutations, recommendations and
statistics over a Chi router, and is the only package that translates
between HTTP and the domain packages (catalog, progress, view, recommend,
stats).

Key Components:

  - Router: route configuration and middleware stack (CORS, rate limiting,
    security headers, Prometheus instrumentation)
  - Handler: request handlers for all endpoints
  - Response formatting: standardized JSON envelope with metadata and ETags
  - Error handling: consistent error codes with appropriate HTTP statuses

API Categories:

 1. Health (/api/v1/health): liveness, readiness and overall status
 2. Library (/api/v1/library): filtered and sorted catalog views
 3. Progress (/api/v1/progress): played/rating/notes mutations plus
    export and import of the full progress map
 4. Insights (/api/v1/stats, /api/v1/recommendations)
 5. Live updates (/api/v1/ws): WebSocket push of progress and stats frames

Every mutation publishes a typed event on the in-process bus after the store
write commits; the events bridge fans those out to WebSocket clients. Handlers
never write to the hub directly.
*/
package api
