// Ludotheca - Self-Hosted Game Backlog Tracker and Recommender
// Copyright 2026 Ludotheca contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ludotheca/ludotheca

package stats

import (
	"testing"

	"github.com/ludotheca/ludotheca/internal/catalog"
	"github.com/ludotheca/ludotheca/internal/progress"
)

func items(n int) []catalog.Item {
	out := make([]catalog.Item, n)
	for i := range out {
		out[i] = catalog.Item{ID: i + 1, Title: "Item", Year: 2000, Genre: "g"}
	}
	return out
}

func TestComputeEmptyCatalog(t *testing.T) {
	got := Compute(nil, progress.Map{})

	if got.TotalItems != 0 || got.PlayedCount != 0 || got.UnplayedCount != 0 {
		t.Errorf("Compute() counts = %+v, want all zero", got)
	}
	if got.CompletionPercentage != 0 {
		t.Errorf("CompletionPercentage = %d, want 0", got.CompletionPercentage)
	}
	if got.AverageRating != nil {
		t.Errorf("AverageRating = %v, want nil", *got.AverageRating)
	}
	if got.AverageRatingLabel != NoRatingLabel {
		t.Errorf("AverageRatingLabel = %q, want %q", got.AverageRatingLabel, NoRatingLabel)
	}
}

func TestComputeCounts(t *testing.T) {
	prog := progress.Map{
		1: {Played: true, Rating: 4},
		2: {Played: true}, // played but unrated
		5: {Notes: "wishlist"},
	}

	got := Compute(items(4), prog)

	if got.PlayedCount != 2 {
		t.Errorf("PlayedCount = %d, want 2", got.PlayedCount)
	}
	if got.UnplayedCount != 2 {
		t.Errorf("UnplayedCount = %d, want 2", got.UnplayedCount)
	}
	if got.CompletionPercentage != 50 {
		t.Errorf("CompletionPercentage = %d, want 50", got.CompletionPercentage)
	}
}

func TestComputeAverageRating(t *testing.T) {
	tests := []struct {
		name      string
		prog      progress.Map
		wantAvg   float64
		wantLabel string
		wantNil   bool
	}{
		{
			name:      "no ratings",
			prog:      progress.Map{1: {Played: true}},
			wantNil:   true,
			wantLabel: NoRatingLabel,
		},
		{
			name:      "single rating",
			prog:      progress.Map{1: {Played: true, Rating: 4}},
			wantAvg:   4.0,
			wantLabel: "4.0",
		},
		{
			name: "rounds to one decimal",
			prog: progress.Map{
				1: {Played: true, Rating: 3},
				2: {Played: true, Rating: 4},
				3: {Played: true, Rating: 4},
			},
			wantAvg:   3.7,
			wantLabel: "3.7",
		},
		{
			name: "unplayed ratings excluded",
			prog: progress.Map{
				1: {Played: true, Rating: 5},
				2: {Rating: 1}, // stale import record, not played
			},
			wantAvg:   5.0,
			wantLabel: "5.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(items(4), tt.prog)

			if tt.wantNil {
				if got.AverageRating != nil {
					t.Errorf("AverageRating = %v, want nil", *got.AverageRating)
				}
			} else {
				if got.AverageRating == nil {
					t.Fatal("AverageRating = nil, want value")
				}
				if *got.AverageRating != tt.wantAvg {
					t.Errorf("AverageRating = %v, want %v", *got.AverageRating, tt.wantAvg)
				}
			}
			if got.AverageRatingLabel != tt.wantLabel {
				t.Errorf("AverageRatingLabel = %q, want %q", got.AverageRatingLabel, tt.wantLabel)
			}
		})
	}
}

func TestComputeCompletionRounding(t *testing.T) {
	tests := []struct {
		name   string
		total  int
		played int
		want   int
	}{
		{"one third", 3, 1, 33},
		{"two thirds", 3, 2, 67},
		{"all played", 2, 2, 100},
		{"none played", 2, 0, 0},
		{"one of seven", 7, 1, 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog := progress.Map{}
			for i := 1; i <= tt.played; i++ {
				prog[i] = progress.Record{Played: true}
			}

			got := Compute(items(tt.total), prog)
			if got.CompletionPercentage != tt.want {
				t.Errorf("CompletionPercentage = %d, want %d", got.CompletionPercentage, tt.want)
			}
		})
	}
}

func TestComputeIgnoresStaleIDs(t *testing.T) {
	// Progress for ids missing from the catalog is tolerated but ignored.
	prog := progress.Map{
		1:  {Played: true, Rating: 5},
		99: {Played: true, Rating: 1},
	}

	got := Compute(items(2), prog)
	if got.PlayedCount != 1 {
		t.Errorf("PlayedCount = %d, want 1", got.PlayedCount)
	}
	if got.AverageRating == nil || *got.AverageRating != 5.0 {
		t.Errorf("AverageRating = %v, want 5.0", got.AverageRating)
	}
}
