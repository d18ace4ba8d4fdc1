// Ludotheca - Self-Hosted Game Backlog Tracker and Recommender
// Copyright 2026 Ludotheca contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ludotheca/ludotheca

package api

import (
	"net/http"
	"time"

	"github.com/ludotheca/ludotheca/internal/models"
	"github.com/ludotheca/ludotheca/internal/stats"
)

// Stats returns the backlog summary.
//
// @Summary Get statistics
// @Description Returns item counts, played counts, the average rating over played items and the completion percentage.
// @Tags Insights
// @Produce json
// @Success 200 {object} models.APIResponse{data=stats.Summary} "Statistics computed successfully"
// @Failure 500 {object} models.APIResponse "Progress store failure"
// @Router /stats [get]
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	prog, err := h.store.Load()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "STORE_ERROR", "Failed to load progress", err)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   stats.Compute(h.catalog.Items(), prog),
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}
