// Ludotheca - Self-Hosted Game Backlog Tracker and Recommender
// Copyright 2026 Ludotheca contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ludotheca/ludotheca

package api

import (
	"github.com/ludotheca/ludotheca/internal/progress"
)

// RatingRequest is the body of PUT /api/v1/progress/{id}/rating.
// Assigning a rating also marks the item played; clearing one is a separate
// DELETE on the same route.
//
// Example:
//
//	{"rating": 4}
type RatingRequest struct {
	Rating int `json:"rating" validate:"min=1,max=5"`
}

// NotesRequest is the body of PUT /api/v1/progress/{id}/notes.
// The cap is measured in characters, not bytes, so multi-byte scripts get the
// same budget as ASCII.
//
// Example:
//
//	{"notes": "Finished the DLC, the true ending recontextualizes everything."}
type NotesRequest struct {
	Notes string `json:"notes" validate:"max=1000"`
}

// ImportRequest is the body of PUT /api/v1/progress. Records replaces the
// stored progress map wholesale; an empty or omitted map wipes all progress.
// Ids that no longer exist in the catalog are kept untouched so an export
// taken against a larger catalog survives the round trip.
//
// Example:
//
//	{"records": {"1": {"played": true, "rating": 5}, "7": {"notes": "gift from Sam"}}}
type ImportRequest struct {
	Records progress.Map `json:"records"`
}
