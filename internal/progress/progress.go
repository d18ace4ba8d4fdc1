// Ludotheca - Self-Hosted Game Backlog Tracker and Recommender
// Copyright 2026 Ludotheca contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ludotheca/ludotheca

// Package progress holds per-item user state and its persistence.
//
// A Record tracks whether an item was played, its star rating and free-text
// notes. State changes are expressed as pure transitions over a Record so
// the store can apply them atomically inside one transaction.
package progress

import (
	"fmt"
	"unicode/utf8"
)

const (
	// MinRating and MaxRating bound an assigned star rating.
	// A Record.Rating of 0 means unrated.
	MinRating = 1
	MaxRating = 5

	// MaxNotesLength caps notes at 1000 characters.
	MaxNotesLength = 1000
)

// Record is the user state for one catalog item. The zero value means the
// item was never touched; absence from a Map is equivalent to the zero value.
type Record struct {
	Played bool   `json:"played"`
	Rating int    `json:"rating"`
	Notes  string `json:"notes,omitempty"`
}

// IsZero reports whether the record carries no user state.
func (r Record) IsZero() bool {
	return !r.Played && r.Rating == 0 && r.Notes == ""
}

// Map is the full progress state, keyed by item id. Lookups on absent keys
// yield the zero Record, so Map never needs placeholder entries.
type Map map[int]Record

// Get returns the record for an item id, normalizing absence to zero state.
func (m Map) Get(id int) Record {
	return m[id]
}

// Set stores a record, removing the key instead when the record is zero.
// Keeping zero records out of the map preserves absence-equals-zero and
// keeps the persisted payload minimal.
func (m Map) Set(id int, r Record) {
	if r.IsZero() {
		delete(m, id)
		return
	}
	m[id] = r
}

// Clone returns an independent copy of the map.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for id, r := range m {
		out[id] = r
	}
	return out
}

// Transition is a pure state change applied to one record.
type Transition func(Record) Record

// MarkPlayed sets the played flag, leaving rating and notes untouched.
func MarkPlayed(r Record) Record {
	r.Played = true
	return r
}

// Rate assigns a star rating. Rating an item also marks it played; the two
// fields change together and are observable together on the next read.
func Rate(rating int) Transition {
	return func(r Record) Record {
		r.Played = true
		r.Rating = rating
		return r
	}
}

// Reset clears the played flag and rating together, keeping notes. Both the
// "mark unplayed" and "clear rating" actions resolve to this one transition.
func Reset(r Record) Record {
	r.Played = false
	r.Rating = 0
	return r
}

// SetNotes replaces the free-text notes, leaving played and rating untouched.
func SetNotes(notes string) Transition {
	return func(r Record) Record {
		r.Notes = notes
		return r
	}
}

// ValidateRating checks an assigned rating is within the star range.
func ValidateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return fmt.Errorf("rating %d out of range [%d,%d]", rating, MinRating, MaxRating)
	}
	return nil
}

// ValidateNotes checks the notes length cap in characters, not bytes.
func ValidateNotes(notes string) error {
	if n := utf8.RuneCountInString(notes); n > MaxNotesLength {
		return fmt.Errorf("notes length %d exceeds maximum %d", n, MaxNotesLength)
	}
	return nil
}

// ValidateRecord checks a full record as it appears in imports.
func ValidateRecord(r Record) error {
	if r.Rating != 0 {
		if err := ValidateRating(r.Rating); err != nil {
			return err
		}
	}
	return ValidateNotes(r.Notes)
}
