// Ludotheca - Self-Hosted Game Backlog Tracker and Recommender
// Copyright 2026 Ludotheca contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ludotheca/ludotheca

// Package config loads and validates the application configuration.
//
// Configuration is layered with koanf. Later layers override earlier ones:
//
//  1. Built-in defaults (see defaultConfig)
//  2. YAML config file, the first of: $CONFIG_PATH, ./config.yaml,
//     ./config.yml, /etc/ludotheca/config.yaml, /etc/ludotheca/config.yml
//  3. Environment variables
//
// Environment variables use flat legacy-style names mapped onto the nested
// structure, for example:
//
//	HTTP_PORT=8484            -> server.port
//	CATALOG_PATH=/data/c.json -> catalog.path
//	BADGER_PATH=/data/prog    -> database.path
//	CORS_ORIGINS=a.com,b.com  -> security.cors_origins (comma-separated)
//	LOG_LEVEL=debug           -> logging.level
//
// Load returns an error for any configuration that would make the server
// misbehave, so startup fails fast on bad input rather than limping along.
package config
