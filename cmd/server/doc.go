// Ludotheca - Self-Hosted Game Backlog Tracker and Recommender
// Copyright 2026 Ludotheca contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ludotheca/ludotheca

/*
Package main is the entry point for the Ludotheca server application.

Ludotheca is a self-hosted backlog tracker for a personal game library. It
serves a read-only catalog of games, tracks per-game play state, ratings and
notes in an embedded BadgerDB store, and computes content-based
recommendations from the owner's own ratings. Progress changes are pushed to
connected clients over WebSocket in real time.

# Application Architecture

The server implements a layered architecture with Suture v4 process supervision:

	RootSupervisor ("ludotheca")
	├── MessagingSupervisor ("messaging-layer")
	│   ├── WebSocket Hub (real-time updates)
	│   └── Event Bus (Watermill in-process events)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (REST API + WebSocket upgrade)

Component initialization order:

 1. Configuration: Koanf v2 with environment variables and config files
 2. Logging: zerolog with JSON/console output modes
 3. Catalog: immutable game library, loaded once from file or URL
 4. Progress Store: BadgerDB-backed play state, ratings and notes
 5. WebSocket Hub: real-time progress and stats broadcasts
 6. Event Bus: Watermill GoChannel pub/sub with CQRS handlers
 7. Supervisor Tree: Suture v4 process supervision
 8. HTTP Server: Chi router with middleware stack

The catalog is required at startup; a missing or malformed catalog file
aborts the process before any socket opens. The progress store is opened in
main and closed on the way out; it is not supervised because BadgerDB is an
embedded library, not a restartable process.

# Configuration

Configuration is loaded via Koanf v2 with layered sources (highest priority wins):

	Priority: Environment variables > Config file > Defaults

Core environment variables:

	# Server
	HTTP_HOST=0.0.0.0            # Bind address
	HTTP_PORT=8484               # HTTP server port
	HTTP_TIMEOUT=30s             # Read/write timeout

	# Catalog
	CATALOG_PATH=/data/catalog.json   # Local file or http(s) URL

	# Progress store
	BADGER_PATH=/data/progress   # BadgerDB directory
	BADGER_IN_MEMORY=false       # true: no disk, progress lost on restart
	BADGER_SYNC_WRITES=false     # true: fsync per commit

	# Security
	CORS_ORIGINS=*               # Comma-separated origins, or *
	RATE_LIMIT_REQUESTS=100      # Requests per window per IP
	RATE_LIMIT_WINDOW=1m
	DISABLE_RATE_LIMIT=false

	# Logging
	LOG_LEVEL=info               # trace, debug, info, warn, error
	LOG_FORMAT=json              # json or console

A YAML config file is searched at config.yaml, config.yml,
/etc/ludotheca/config.yaml and /etc/ludotheca/config.yml, or at the path
named by CONFIG_PATH. See config.example.yaml for the full reference.

# Signal Handling

The server handles graceful shutdown on SIGINT and SIGTERM:

 1. Stops accepting new HTTP connections
 2. Broadcasts shutdown to WebSocket clients
 3. Waits for in-flight requests (10s timeout)
 4. Stops the event bus router
 5. Closes the progress store
 6. Reports any services that failed to stop

# Usage Examples

Development (in-memory progress, console logs):

	export CATALOG_PATH=./testdata/catalog.json
	export BADGER_IN_MEMORY=true
	export LOG_FORMAT=console
	go run ./cmd/server

Production:

	export CATALOG_PATH=/data/catalog.json
	export BADGER_PATH=/data/progress
	./ludotheca

Docker:

	docker run -d \
	  -v /srv/ludotheca:/data \
	  -e CATALOG_PATH=/data/catalog.json \
	  -p 8484:8484 \
	  ghcr.io/ludotheca/ludotheca

# See Also

  - internal/config: Configuration management
  - internal/supervisor: Process supervision
  - internal/api: HTTP handlers and routing
  - internal/catalog: Immutable game library
  - internal/progress: BadgerDB progress store
  - internal/recommend: Content-based recommendation engine
*/
package main
