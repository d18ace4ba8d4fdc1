// Ludotheca - Self-Hosted Game Backlog Tracker and Recommender
// Copyright 2026 Ludotheca contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ludotheca/ludotheca

// Package recommend ranks unplayed items by similarity to what the user
// rated highly.
//
// The engine is content-based and fully recomputed on every call: a taste
// profile is built from the preference set (rated >= 4, falling back to
// >= 3), every unplayed item is scored against it, and the top results are
// returned with a human-readable reason each. There is no persisted model
// and no state across calls. Cost is O(items x themes-per-item), fine for
// catalogs in the hundreds.
package recommend

import (
	"sort"

	"github.com/ludotheca/ludotheca/internal/catalog"
	"github.com/ludotheca/ludotheca/internal/progress"
)

const (
	// MaxResults caps the recommendation list.
	MaxResults = 6

	// minRatedItems is the cold-start guard. Below this many rated items
	// the engine returns nothing rather than guessing.
	minRatedItems = 2
)

// Recommendation is one ranked result with its explanation.
type Recommendation struct {
	Item   catalog.Item `json:"item"`
	Score  float64      `json:"score"`
	Reason string       `json:"reason"`
}

// Recommend returns up to MaxResults unplayed items ranked by profile
// score. Returns an empty list when fewer than two items are rated or no
// preference set can be formed. Never recommends a played item.
func Recommend(items []catalog.Item, prog progress.Map) []Recommendation {
	if ratedCount(items, prog) < minRatedItems {
		return []Recommendation{}
	}

	profile := BuildProfile(items, prog)
	if profile == nil {
		return []Recommendation{}
	}

	recs := make([]Recommendation, 0, len(items))
	for _, item := range items {
		if prog.Get(item.ID).Played {
			continue
		}
		score := profile.Score(item)
		if score <= 0 {
			continue
		}
		recs = append(recs, Recommendation{Item: item, Score: score})
	}

	// Stable: equal scores keep catalog order.
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})

	if len(recs) > MaxResults {
		recs = recs[:MaxResults]
	}

	liked := likedItems(items, prog)
	for i := range recs {
		recs[i].Reason = reasonFor(recs[i].Item, liked)
	}

	return recs
}
