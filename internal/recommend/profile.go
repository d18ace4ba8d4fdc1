// Ludotheca - Self-Hosted Game Backlog Tracker and Recommender
// Copyright 2026 Ludotheca contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ludotheca/ludotheca

package recommend

import (
	"math"

	"github.com/ludotheca/ludotheca/internal/catalog"
	"github.com/ludotheca/ludotheca/internal/progress"
)

const (
	// preferenceThreshold selects the ratings that shape the taste profile.
	preferenceThreshold = 4

	// fallbackThreshold widens the preference set when nothing reaches
	// the primary threshold.
	fallbackThreshold = 3
)

// Profile is the user's taste model derived from highly rated items. Genre
// and theme weights accumulate rating/5 per preference item; AvgYear anchors
// the temporal bonus.
type Profile struct {
	GenreWeight map[string]float64
	ThemeWeight map[string]float64
	AvgYear     float64
}

// BuildProfile derives a Profile from the preference set: rated items with
// rating >= 4, falling back to >= 3 when none qualify. Returns nil when no
// preference set can be formed.
func BuildProfile(items []catalog.Item, prog progress.Map) *Profile {
	prefs := selectPreferences(items, prog, preferenceThreshold)
	if len(prefs) == 0 {
		prefs = selectPreferences(items, prog, fallbackThreshold)
	}
	if len(prefs) == 0 {
		return nil
	}

	p := &Profile{
		GenreWeight: make(map[string]float64),
		ThemeWeight: make(map[string]float64),
	}

	yearSum := 0
	for _, pref := range prefs {
		// Each item contributes its full weight to its genre and to
		// every one of its themes independently.
		weight := float64(prog.Get(pref.ID).Rating) / 5

		p.GenreWeight[pref.Genre] += weight
		for _, theme := range pref.Themes {
			p.ThemeWeight[theme] += weight
		}
		yearSum += pref.Year
	}
	p.AvgYear = float64(yearSum) / float64(len(prefs))

	return p
}

// Score rates one candidate against the profile. Genre affinity counts
// double; each matching theme adds its accumulated weight; release-year
// proximity to the profile average adds a small bonus.
func (p *Profile) Score(item catalog.Item) float64 {
	score := 2 * p.GenreWeight[item.Genre]
	for _, theme := range item.Themes {
		score += p.ThemeWeight[theme]
	}
	return score + temporalBonus(item.Year, p.AvgYear)
}

// temporalBonus rewards candidates released near the preference-set average:
// 1.0 within 5 years, 0.5 within 10, nothing beyond.
func temporalBonus(year int, avgYear float64) float64 {
	diff := math.Abs(float64(year) - avgYear)
	switch {
	case diff <= 5:
		return 1.0
	case diff <= 10:
		return 0.5
	default:
		return 0
	}
}

// selectPreferences returns the rated items at or above the threshold.
func selectPreferences(items []catalog.Item, prog progress.Map, threshold int) []catalog.Item {
	var prefs []catalog.Item
	for _, item := range items {
		r := prog.Get(item.ID)
		if r.Played && r.Rating >= threshold {
			prefs = append(prefs, item)
		}
	}
	return prefs
}

// ratedCount counts items that are played and carry a rating.
func ratedCount(items []catalog.Item, prog progress.Map) int {
	n := 0
	for _, item := range items {
		r := prog.Get(item.ID)
		if r.Played && r.Rating > 0 {
			n++
		}
	}
	return n
}
