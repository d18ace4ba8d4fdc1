// Ludotheca - Self-Hosted Game Backlog Tracker and Recommender
// Copyright 2026 Ludotheca contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ludotheca/ludotheca

package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ludotheca/ludotheca/internal/metrics"
	"github.com/ludotheca/ludotheca/internal/models"
	"github.com/ludotheca/ludotheca/internal/view"
)

// Library returns the filtered, sorted library view.
//
// All filters combine with AND; the search term matches title, genre and
// themes with OR. Unknown status, sort or non-numeric decade values are
// rejected rather than silently ignored so a typo in a bookmarked URL is
// visible.
//
// @Summary Get library view
// @Description Returns the catalog joined with progress, filtered and sorted according to query parameters. Filters combine with AND.
// @Tags Library
// @Produce json
// @Param search query string false "Case-insensitive substring matched against title, genre and themes" example(zelda)
// @Param genre query string false "Exact genre match" example(RPG)
// @Param decade query int false "Decade start year; matches releases in [decade, decade+9]" example(1990)
// @Param status query string false "Played state filter; empty matches both" Enums(played, unplayed)
// @Param sort query string false "Sort order" Enums(title, year, rating, recent) default(title)
// @Success 200 {object} models.APIResponse{data=models.LibraryResponse} "Library view computed successfully"
// @Failure 400 {object} models.APIResponse "Invalid filter parameters"
// @Failure 500 {object} models.APIResponse "Progress store failure"
// @Router /library [get]
func (h *Handler) Library(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	q := r.URL.Query()

	crit, err := view.ParseCriteria(q.Get("search"), q.Get("genre"), q.Get("decade"), q.Get("status"), q.Get("sort"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}

	prog, err := h.store.Load()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "STORE_ERROR", "Failed to load progress", err)
		return
	}

	entries := view.Compute(h.catalog.Items(), prog, crit)
	metrics.RecordViewComputation(time.Since(start))

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.LibraryResponse{
			Items: entries,
			Total: len(entries),
		},
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// LibraryFilters returns the distinct genres and decades present in the
// catalog. The catalog is immutable, so clients may cache this aggressively.
//
// @Summary Get library filter values
// @Description Returns distinct genres and decades for populating filter dropdowns.
// @Tags Library
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.LibraryFilters} "Filter values retrieved successfully"
// @Router /library/filters [get]
func (h *Handler) LibraryFilters(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.LibraryFilters{
			Genres:  h.catalog.Genres(),
			Decades: h.catalog.Decades(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// LibraryItem returns a single catalog item with its resolved progress.
// Items without a stored record resolve to the zero record, so the response
// shape is identical whether or not the item was ever touched.
//
// @Summary Get a single item
// @Description Returns one catalog item together with its progress record.
// @Tags Library
// @Produce json
// @Param id path int true "Item id"
// @Success 200 {object} models.APIResponse{data=view.Entry} "Item retrieved successfully"
// @Failure 400 {object} models.APIResponse "Malformed item id"
// @Failure 404 {object} models.APIResponse "Item not in catalog"
// @Failure 500 {object} models.APIResponse "Progress store failure"
// @Router /library/{id} [get]
func (h *Handler) LibraryItem(w http.ResponseWriter, r *http.Request) {
	id, err := itemIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}

	item, ok := h.catalog.Get(id)
	if !ok {
		respondError(w, http.StatusNotFound, "ITEM_NOT_FOUND", fmt.Sprintf("Item %d not found", id), nil)
		return
	}

	prog, err := h.store.Load()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "STORE_ERROR", "Failed to load progress", err)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: view.Entry{
			Item:     item,
			Progress: prog.Get(id),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
