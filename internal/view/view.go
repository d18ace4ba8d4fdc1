// Ludotheca - Self-Hosted Game Backlog Tracker and Recommender
// Copyright 2026 Ludotheca contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ludotheca/ludotheca

// Package view computes the filtered, sorted library listing.
//
// Compute is a pure function of (catalog items, progress, criteria): no
// caching, no side effects, safe to re-run on every request. Filters
// combine with AND; the search term matches with OR across fields.
package view

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ludotheca/ludotheca/internal/catalog"
	"github.com/ludotheca/ludotheca/internal/progress"
)

// Entry pairs a catalog item with its progress record for display.
type Entry struct {
	Item     catalog.Item    `json:"item"`
	Progress progress.Record `json:"progress"`
}

// Compute returns the entries matching the criteria in the requested order.
// The result preserves catalog order between equal sort keys (stable sort).
func Compute(items []catalog.Item, prog progress.Map, c Criteria) []Entry {
	search := strings.ToLower(strings.TrimSpace(c.Search))

	entries := make([]Entry, 0, len(items))
	for _, item := range items {
		record := prog.Get(item.ID)
		if !matches(item, record, c, search) {
			continue
		}
		entries = append(entries, Entry{Item: item, Progress: record})
	}

	sortEntries(entries, c.SortBy)
	return entries
}

// matches applies all active filters to one item. search is pre-lowercased.
func matches(item catalog.Item, record progress.Record, c Criteria, search string) bool {
	if search != "" && !matchesSearch(item, search) {
		return false
	}
	if c.Genre != "" && item.Genre != c.Genre {
		return false
	}
	if c.Decade != nil {
		d := *c.Decade
		if item.Year < d || item.Year > d+9 {
			return false
		}
	}
	switch c.Status {
	case StatusPlayed:
		if !record.Played {
			return false
		}
	case StatusUnplayed:
		if record.Played {
			return false
		}
	}
	return true
}

// matchesSearch checks the term against title, genre and every theme.
func matchesSearch(item catalog.Item, search string) bool {
	if strings.Contains(strings.ToLower(item.Title), search) {
		return true
	}
	if strings.Contains(strings.ToLower(item.Genre), search) {
		return true
	}
	for _, theme := range item.Themes {
		if strings.Contains(strings.ToLower(theme), search) {
			return true
		}
	}
	return false
}

// sortEntries orders entries in place. All orderings are stable so that
// ties keep catalog order and repeated computations agree.
func sortEntries(entries []Entry, by Sort) {
	switch by {
	case SortYear:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Item.Year > entries[j].Item.Year
		})
	case SortRating:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Progress.Rating > entries[j].Progress.Rating
		})
	case SortRecent:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Progress.Played && !entries[j].Progress.Played
		})
	default:
		// Collators are not safe for concurrent use, so each call
		// builds its own.
		col := collate.New(language.Und, collate.IgnoreCase)
		sort.SliceStable(entries, func(i, j int) bool {
			return col.CompareString(entries[i].Item.Title, entries[j].Item.Title) < 0
		})
	}
}
