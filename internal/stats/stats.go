// Ludotheca - Self-Hosted Game Backlog Tracker and Recommender
// Copyright 2026 Ludotheca contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ludotheca/ludotheca

// Package stats aggregates library completion figures.
package stats

import (
	"math"
	"strconv"

	"github.com/ludotheca/ludotheca/internal/catalog"
	"github.com/ludotheca/ludotheca/internal/progress"
)

// NoRatingLabel is shown when no played item carries a rating.
const NoRatingLabel = "–"

// Summary is the aggregate view of the library's progress state.
type Summary struct {
	TotalItems    int `json:"total_items"`
	PlayedCount   int `json:"played_count"`
	UnplayedCount int `json:"unplayed_count"`

	// AverageRating is the mean rating over played, rated items rounded
	// to one decimal. Nil when nothing is rated.
	AverageRating *float64 `json:"average_rating"`

	// AverageRatingLabel is the display form of AverageRating, falling
	// back to NoRatingLabel.
	AverageRatingLabel string `json:"average_rating_label"`

	// CompletionPercentage is played/total as a rounded integer percent.
	CompletionPercentage int `json:"completion_percentage"`
}

// Compute derives a Summary from the catalog and progress state. Pure and
// total: an empty catalog yields zero counts without a division error.
func Compute(items []catalog.Item, prog progress.Map) Summary {
	s := Summary{
		TotalItems:         len(items),
		AverageRatingLabel: NoRatingLabel,
	}

	ratingSum, ratingCount := 0, 0
	for _, item := range items {
		r := prog.Get(item.ID)
		if !r.Played {
			continue
		}
		s.PlayedCount++
		if r.Rating > 0 {
			ratingSum += r.Rating
			ratingCount++
		}
	}
	s.UnplayedCount = s.TotalItems - s.PlayedCount

	if ratingCount > 0 {
		avg := math.Round(float64(ratingSum)/float64(ratingCount)*10) / 10
		s.AverageRating = &avg
		s.AverageRatingLabel = strconv.FormatFloat(avg, 'f', 1, 64)
	}

	if s.TotalItems > 0 {
		s.CompletionPercentage = int(math.Round(float64(s.PlayedCount) / float64(s.TotalItems) * 100))
	}

	return s
}
