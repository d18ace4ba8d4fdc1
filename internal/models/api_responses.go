// Ludotheca - Self-Hosted Game Backlog Tracker and Recommender
// Copyright 2026 Ludotheca contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ludotheca/ludotheca

// Package models defines the shared API response envelope and payload types
// used by every HTTP endpoint.
package models

import (
	"time"

	"github.com/ludotheca/ludotheca/internal/progress"
	"github.com/ludotheca/ludotheca/internal/recommend"
	"github.com/ludotheca/ludotheca/internal/view"
)

// APIResponse is the standardized response wrapper used by all HTTP endpoints.
// It provides a consistent structure for both successful and error responses.
//
// Status field values:
//   - "success": request completed, see Data
//   - "error": request failed, see Error
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"total_items": 100},
//	  "metadata": {"timestamp": "2026-08-23T12:00:00Z"}
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {"code": "VALIDATION_ERROR", "message": "rating must be at most 5"},
//	  "metadata": {"timestamp": "2026-08-23T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
}

// APIError carries structured error details.
//
// Common error codes:
//   - VALIDATION_ERROR: invalid input parameters
//   - ITEM_NOT_FOUND: item id not present in the catalog
//   - STORE_ERROR: progress store read/write failure
//   - METHOD_NOT_ALLOWED: wrong HTTP verb
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthStatus is the payload of the overall health endpoint.
type HealthStatus struct {
	Status        string  `json:"status"` // "healthy" or "degraded"
	Version       string  `json:"version"`
	CatalogLoaded bool    `json:"catalog_loaded"`
	CatalogItems  int     `json:"catalog_items"`
	StoreOpen     bool    `json:"store_open"`
	Uptime        float64 `json:"uptime_seconds"`
}

// LibraryResponse wraps the filtered, sorted library view.
//
// Example response:
//
//	{
//	  "items": [
//	    {
//	      "item": {"id": 3, "title": "Outer Wilds", "year": 2019, "genre": "Adventure", "themes": ["Space", "Mystery"]},
//	      "progress": {"played": true, "rating": 5}
//	    }
//	  ],
//	  "total": 1
//	}
type LibraryResponse struct {
	Items []view.Entry `json:"items"`
	Total int          `json:"total"`
}

// LibraryFilters lists the distinct genre and decade values present in the
// catalog, used to populate the library filter dropdowns.
type LibraryFilters struct {
	Genres  []string `json:"genres"`
	Decades []int    `json:"decades"`
}

// ProgressResult is the outcome of a single progress mutation. It echoes the
// record as stored so clients can render the new state without a refetch.
type ProgressResult struct {
	ItemID   int             `json:"item_id"`
	Progress progress.Record `json:"progress"`
}

// ProgressExport is the full progress map in its persisted shape, suitable
// for backup and later re-import via PUT /api/v1/progress.
type ProgressExport struct {
	Records progress.Map `json:"records"`
	Count   int          `json:"count"`
}

// ImportResult reports how many records an import left in the store.
type ImportResult struct {
	Imported int `json:"imported"`
}

// RecommendationsResponse wraps the ranked suggestion list.
type RecommendationsResponse struct {
	Recommendations []recommend.Recommendation `json:"recommendations"`
	Count           int                        `json:"count"`
}
