// Ludotheca - Self-Hosted Game Backlog Tracker and Recommender
// Copyright 2026 Ludotheca contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ludotheca/ludotheca

// Package catalog loads and holds the immutable game catalog.
//
// The catalog is read once at startup from a static JSON source (local file
// or HTTP URL) and never mutated afterwards. A malformed or unreachable
// source is a hard startup error; there is no retry and no partial load.
package catalog

import (
	"fmt"
	"sort"

	"github.com/ludotheca/ludotheca/internal/validation"
)

// Item is a single catalog entry. Items are immutable after load; user
// state lives in the progress store, keyed by Item.ID.
type Item struct {
	// ID is the stable unique identifier referenced by progress records.
	ID int `json:"id" validate:"min=1"`

	// Title is the display name.
	Title string `json:"title" validate:"required"`

	// Year is the release year.
	Year int `json:"year" validate:"required"`

	// Genre is the single primary genre.
	Genre string `json:"genre" validate:"required"`

	// Themes is an ordered set of theme tags. May be empty.
	Themes []string `json:"themes"`
}

// Catalog is the immutable item collection with id lookup and filter-option
// enumeration. Construct with New; the zero value is empty but usable.
type Catalog struct {
	items   []Item
	byID    map[int]Item
	genres  []string
	decades []int
}

// New builds a Catalog from items, validating each entry and rejecting
// duplicate ids. Source order is preserved for iteration.
func New(items []Item) (*Catalog, error) {
	c := &Catalog{
		items: make([]Item, 0, len(items)),
		byID:  make(map[int]Item, len(items)),
	}

	genreSet := make(map[string]struct{})
	decadeSet := make(map[int]struct{})

	for i, item := range items {
		if err := validation.ValidateStruct(&item); err != nil {
			return nil, fmt.Errorf("catalog item %d (id=%d): %w", i, item.ID, err)
		}
		if _, exists := c.byID[item.ID]; exists {
			return nil, fmt.Errorf("catalog item %d: duplicate id %d", i, item.ID)
		}

		item.Themes = dedupeThemes(item.Themes)

		c.items = append(c.items, item)
		c.byID[item.ID] = item
		genreSet[item.Genre] = struct{}{}
		decadeSet[decadeOf(item.Year)] = struct{}{}
	}

	c.genres = make([]string, 0, len(genreSet))
	for g := range genreSet {
		c.genres = append(c.genres, g)
	}
	sort.Strings(c.genres)

	c.decades = make([]int, 0, len(decadeSet))
	for d := range decadeSet {
		c.decades = append(c.decades, d)
	}
	sort.Ints(c.decades)

	return c, nil
}

// Items returns the catalog entries in source order.
// The returned slice is shared; callers must not modify it.
func (c *Catalog) Items() []Item {
	return c.items
}

// Get returns the item with the given id.
func (c *Catalog) Get(id int) (Item, bool) {
	item, ok := c.byID[id]
	return item, ok
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Genres returns the distinct genres, sorted ascending.
func (c *Catalog) Genres() []string {
	return c.genres
}

// Decades returns the distinct decade start years present in the catalog,
// sorted ascending.
func (c *Catalog) Decades() []int {
	return c.decades
}

// decadeOf truncates a year to its decade start.
func decadeOf(year int) int {
	return year / 10 * 10
}

// dedupeThemes drops repeated tags, keeping first-occurrence order.
func dedupeThemes(themes []string) []string {
	if len(themes) < 2 {
		return themes
	}

	seen := make(map[string]struct{}, len(themes))
	out := themes[:0]
	for _, theme := range themes {
		if _, dup := seen[theme]; dup {
			continue
		}
		seen[theme] = struct{}{}
		out = append(out, theme)
	}
	return out
}
