// Ludotheca - Self-Hosted Game Backlog Tracker and Recommender
// Copyright 2026 Ludotheca contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ludotheca/ludotheca

package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/ludotheca/ludotheca/internal/logging"
)

// maxSourceBytes caps the catalog payload. The catalog is a small curated
// dataset; anything larger indicates a misconfigured source.
const maxSourceBytes = 16 * 1024 * 1024

// SourceConfig describes where the catalog JSON lives.
type SourceConfig struct {
	// Source is a local file path or an http(s) URL.
	Source string

	// Timeout bounds a remote fetch. Ignored for local files.
	Timeout time.Duration
}

// Load reads, decodes and validates the catalog from the configured source.
// A single attempt is made; any failure is returned to the caller so startup
// can abort. Load never produces a partially valid catalog.
func Load(ctx context.Context, cfg SourceConfig) (*Catalog, error) {
	if cfg.Source == "" {
		return nil, fmt.Errorf("catalog source not configured")
	}

	start := time.Now()

	data, err := readSource(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("read catalog source: %w", err)
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode catalog JSON: %w", err)
	}

	c, err := New(items)
	if err != nil {
		return nil, err
	}

	logging.Info().
		Str("source", cfg.Source).
		Int("items", c.Len()).
		Int("genres", len(c.Genres())).
		Dur("elapsed", time.Since(start)).
		Msg("Catalog loaded")

	return c, nil
}

// readSource returns the raw catalog bytes from a file or URL.
func readSource(ctx context.Context, cfg SourceConfig) ([]byte, error) {
	if isRemote(cfg.Source) {
		return fetchRemote(ctx, cfg)
	}

	data, err := os.ReadFile(cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return data, nil
}

// fetchRemote performs a single HTTP GET request. No retry: the catalog is
// required at startup and a flaky source should fail loudly.
func fetchRemote(ctx context.Context, cfg SourceConfig) ([]byte, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.Source, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", "Ludotheca-Catalog-Loader/1.0")
	req.Header.Set("Accept", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxSourceBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return data, nil
}

// isRemote reports whether source is an http(s) URL rather than a path.
func isRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}
