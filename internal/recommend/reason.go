// Ludotheca - Self-Hosted Game Backlog Tracker and Recommender
// Copyright 2026 Ludotheca contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ludotheca/ludotheca

package recommend

import (
	"fmt"
	"strings"

	"github.com/ludotheca/ludotheca/internal/catalog"
	"github.com/ludotheca/ludotheca/internal/progress"
)

// fallbackReason explains a recommendation when nothing sharper applies.
const fallbackReason = "Based on your ratings"

// maxReasonThemes caps how many shared themes a reason names.
const maxReasonThemes = 2

// likedItems returns the played items rated 4 or higher. Reasons are
// computed against this set only; the profile's fallback to 3-star items
// affects ranking but never phrasing.
func likedItems(items []catalog.Item, prog progress.Map) []catalog.Item {
	var liked []catalog.Item
	for _, item := range items {
		r := prog.Get(item.ID)
		if r.Played && r.Rating >= preferenceThreshold {
			liked = append(liked, item)
		}
	}
	return liked
}

// reasonFor picks the explanation for one candidate. A shared genre wins
// over shared themes regardless of which contributed more to the score;
// the ranking and the phrasing are deliberately independent.
func reasonFor(candidate catalog.Item, liked []catalog.Item) string {
	if len(liked) == 0 {
		return fallbackReason
	}

	for _, l := range liked {
		if l.Genre == candidate.Genre {
			return fmt.Sprintf("Similar to %s games you enjoyed", candidate.Genre)
		}
	}

	if shared := sharedThemes(candidate, liked); len(shared) > 0 {
		return fmt.Sprintf("Matches your interest in %s", strings.Join(shared, " & "))
	}

	return fallbackReason
}

// sharedThemes collects up to maxReasonThemes of the candidate's themes
// that any liked item also carries, in the candidate's theme order.
func sharedThemes(candidate catalog.Item, liked []catalog.Item) []string {
	likedThemes := make(map[string]struct{})
	for _, l := range liked {
		for _, theme := range l.Themes {
			likedThemes[theme] = struct{}{}
		}
	}

	var shared []string
	for _, theme := range candidate.Themes {
		if _, ok := likedThemes[theme]; ok {
			shared = append(shared, theme)
			if len(shared) == maxReasonThemes {
				break
			}
		}
	}
	return shared
}
