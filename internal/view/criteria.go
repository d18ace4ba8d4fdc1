// Ludotheca - Self-Hosted Game Backlog Tracker and Recommender
// Copyright 2026 Ludotheca contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ludotheca/ludotheca

package view

import (
	"fmt"
	"strconv"
	"strings"
)

// Status filters items by played state.
type Status string

const (
	// StatusAny applies no played-state filter.
	StatusAny Status = ""
	// StatusPlayed keeps only played items.
	StatusPlayed Status = "played"
	// StatusUnplayed keeps only unplayed items.
	StatusUnplayed Status = "unplayed"
)

// ParseStatus maps a query-string value onto a Status.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return StatusAny, nil
	case "played":
		return StatusPlayed, nil
	case "unplayed":
		return StatusUnplayed, nil
	default:
		return StatusAny, fmt.Errorf("unknown status %q", s)
	}
}

// Sort selects the view ordering.
type Sort string

const (
	// SortTitle orders ascending by title, locale-aware. The default.
	SortTitle Sort = "title"
	// SortYear orders descending by release year.
	SortYear Sort = "year"
	// SortRating orders descending by rating, unrated last.
	SortRating Sort = "rating"
	// SortRecent orders played items before unplayed ones.
	SortRecent Sort = "recent"
)

// ParseSort maps a query-string value onto a Sort, defaulting to title.
func ParseSort(s string) (Sort, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "title":
		return SortTitle, nil
	case "year":
		return SortYear, nil
	case "rating":
		return SortRating, nil
	case "recent":
		return SortRecent, nil
	default:
		return SortTitle, fmt.Errorf("unknown sort %q", s)
	}
}

// Criteria is the ephemeral filter state for one view computation. The zero
// value selects everything, sorted by title.
type Criteria struct {
	// Search matches case-insensitive substrings of title, genre or any
	// theme. Empty means no search filter.
	Search string

	// Genre requires an exact genre match when non-empty.
	Genre string

	// Decade restricts to release years in [Decade, Decade+9].
	// Nil means no decade filter.
	Decade *int

	// Status restricts by played state.
	Status Status

	// SortBy selects the ordering.
	SortBy Sort
}

// ParseCriteria builds Criteria from raw query-string values, rejecting
// unknown status, sort or non-numeric decade values.
func ParseCriteria(search, genre, decade, status, sortBy string) (Criteria, error) {
	c := Criteria{
		Search: strings.TrimSpace(search),
		Genre:  strings.TrimSpace(genre),
	}

	if d := strings.TrimSpace(decade); d != "" {
		n, err := strconv.Atoi(d)
		if err != nil {
			return Criteria{}, fmt.Errorf("invalid decade %q", decade)
		}
		c.Decade = &n
	}

	st, err := ParseStatus(status)
	if err != nil {
		return Criteria{}, err
	}
	c.Status = st

	so, err := ParseSort(sortBy)
	if err != nil {
		return Criteria{}, err
	}
	c.SortBy = so

	return c, nil
}
