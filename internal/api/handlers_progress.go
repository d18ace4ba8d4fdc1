// Ludotheca - Self-Hosted Game Backlog Tracker and Recommender
// Copyright 2026 Ludotheca contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ludotheca/ludotheca

package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ludotheca/ludotheca/internal/events"
	"github.com/ludotheca/ludotheca/internal/logging"
	"github.com/ludotheca/ludotheca/internal/metrics"
	"github.com/ludotheca/ludotheca/internal/models"
	"github.com/ludotheca/ludotheca/internal/progress"
)

// applyTransition runs the shared mutation pipeline: resolve the item id,
// reject ids outside the catalog, apply the transition in one store
// transaction and publish the resulting event. Every mutation endpoint
// funnels through here so the order store-write-then-publish holds
// everywhere.
func (h *Handler) applyTransition(w http.ResponseWriter, r *http.Request, action string, t progress.Transition) {
	start := time.Now()

	id, err := itemIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}

	if _, ok := h.catalog.Get(id); !ok {
		respondError(w, http.StatusNotFound, "ITEM_NOT_FOUND", fmt.Sprintf("Item %d not found", id), nil)
		return
	}

	record, _, err := h.store.Apply(id, t)
	metrics.RecordStoreMutation(action, time.Since(start), err)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "STORE_ERROR", "Failed to persist progress", err)
		return
	}

	h.publishProgressUpdated(r.Context(), id, action, record)

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.ProgressResult{
			ItemID:   id,
			Progress: record,
		},
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// publishProgressUpdated emits the mutation event. Publish failures are
// logged, not surfaced: the store write already committed, so the client
// response must report success even when the broadcast path is down.
func (h *Handler) publishProgressUpdated(ctx context.Context, id int, action string, record progress.Record) {
	ev := events.NewProgressUpdated(id, action, record)
	if err := h.bus.PublishProgressUpdated(ctx, ev); err != nil {
		logging.Error().Err(err).Int("item_id", id).Str("action", action).Msg("Failed to publish progress event")
	}
}

// MarkPlayed marks an item as played, keeping any existing rating and notes.
//
// @Summary Mark item played
// @Tags Progress
// @Produce json
// @Param id path int true "Item id"
// @Success 200 {object} models.APIResponse{data=models.ProgressResult} "Item marked played"
// @Failure 404 {object} models.APIResponse "Item not in catalog"
// @Router /progress/{id}/played [post]
func (h *Handler) MarkPlayed(w http.ResponseWriter, r *http.Request) {
	h.applyTransition(w, r, events.ActionMarkPlayed, progress.MarkPlayed)
}

// MarkUnplayed resets the played flag and rating while preserving notes.
// Notes survive because they are personal annotations, not play state.
//
// @Summary Mark item unplayed
// @Description Clears played and rating, preserves notes.
// @Tags Progress
// @Produce json
// @Param id path int true "Item id"
// @Success 200 {object} models.APIResponse{data=models.ProgressResult} "Item reset to unplayed"
// @Failure 404 {object} models.APIResponse "Item not in catalog"
// @Router /progress/{id}/played [delete]
func (h *Handler) MarkUnplayed(w http.ResponseWriter, r *http.Request) {
	h.applyTransition(w, r, events.ActionReset, progress.Reset)
}

// SetRating assigns a 1-5 star rating. Rating an item also marks it played in
// the same transition, so the two fields can never disagree.
//
// @Summary Rate item
// @Description Sets the rating and marks the item played in one atomic transition.
// @Tags Progress
// @Accept json
// @Produce json
// @Param id path int true "Item id"
// @Param request body RatingRequest true "Rating between 1 and 5"
// @Success 200 {object} models.APIResponse{data=models.ProgressResult} "Rating stored"
// @Failure 400 {object} models.APIResponse "Rating out of range"
// @Failure 404 {object} models.APIResponse "Item not in catalog"
// @Router /progress/{id}/rating [put]
func (h *Handler) SetRating(w http.ResponseWriter, r *http.Request) {
	var req RatingRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	h.applyTransition(w, r, events.ActionRate, progress.Rate(req.Rating))
}

// ClearRating removes the rating. This is the same reset transition as
// MarkUnplayed exposed under the rating route: clearing a rating also clears
// played, and notes survive.
//
// @Summary Clear rating
// @Tags Progress
// @Produce json
// @Param id path int true "Item id"
// @Success 200 {object} models.APIResponse{data=models.ProgressResult} "Rating cleared"
// @Failure 404 {object} models.APIResponse "Item not in catalog"
// @Router /progress/{id}/rating [delete]
func (h *Handler) ClearRating(w http.ResponseWriter, r *http.Request) {
	h.applyTransition(w, r, events.ActionReset, progress.Reset)
}

// SetNotes replaces the free-form notes for an item.
//
// @Summary Set notes
// @Tags Progress
// @Accept json
// @Produce json
// @Param id path int true "Item id"
// @Param request body NotesRequest true "Notes, at most 1000 characters"
// @Success 200 {object} models.APIResponse{data=models.ProgressResult} "Notes stored"
// @Failure 400 {object} models.APIResponse "Notes too long"
// @Failure 404 {object} models.APIResponse "Item not in catalog"
// @Router /progress/{id}/notes [put]
func (h *Handler) SetNotes(w http.ResponseWriter, r *http.Request) {
	var req NotesRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	h.applyTransition(w, r, events.ActionSetNotes, progress.SetNotes(req.Notes))
}

// ProgressExport returns the full progress map in its persisted shape.
//
// @Summary Export progress
// @Description Returns every stored progress record, suitable for backup and later re-import.
// @Tags Progress
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.ProgressExport} "Progress exported"
// @Failure 500 {object} models.APIResponse "Progress store failure"
// @Router /progress [get]
func (h *Handler) ProgressExport(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	m, err := h.store.Load()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "STORE_ERROR", "Failed to load progress", err)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.ProgressExport{
			Records: m,
			Count:   len(m),
		},
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// ProgressImport replaces the stored progress map wholesale.
//
// Every record is validated before anything is written, so a bad record
// rejects the whole import instead of leaving the store half-replaced.
// Records equal to the zero value are dropped, and ids unknown to the
// catalog are kept untouched so exports taken against a larger catalog
// survive the round trip.
//
// @Summary Import progress
// @Description Validates and replaces the entire progress map. Zero records are dropped; stale ids round-trip untouched.
// @Tags Progress
// @Accept json
// @Produce json
// @Param request body ImportRequest true "Full progress map"
// @Success 200 {object} models.APIResponse{data=models.ImportResult} "Progress replaced"
// @Failure 400 {object} models.APIResponse "Malformed body or invalid record"
// @Failure 500 {object} models.APIResponse "Progress store failure"
// @Router /progress [put]
func (h *Handler) ProgressImport(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req ImportRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}

	records := req.Records
	if records == nil {
		records = progress.Map{}
	}

	for id, rec := range records {
		if err := progress.ValidateRecord(rec); err != nil {
			respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", fmt.Sprintf("record %d: %v", id, err), nil)
			return
		}
	}

	after, err := h.store.Replace(records)
	metrics.RecordStoreMutation("import", time.Since(start), err)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "STORE_ERROR", "Failed to replace progress", err)
		return
	}

	ev := events.NewProgressImported(len(after))
	if err := h.bus.PublishProgressImported(r.Context(), ev); err != nil {
		logging.Error().Err(err).Int("count", len(after)).Msg("Failed to publish import event")
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.ImportResult{
			Imported: len(after),
		},
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}
