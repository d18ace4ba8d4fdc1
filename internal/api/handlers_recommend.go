// Ludotheca - Self-Hosted Game Backlog Tracker and Recommender
// Copyright 2026 Ludotheca contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ludotheca/ludotheca

package api

import (
	"net/http"
	"time"

	"github.com/ludotheca/ludotheca/internal/metrics"
	"github.com/ludotheca/ludotheca/internal/models"
	"github.com/ludotheca/ludotheca/internal/recommend"
)

// Recommendations returns ranked suggestions for unplayed items.
//
// With fewer than two rated items the list is empty rather than padded with
// guesses; the frontend shows its onboarding hint in that case.
//
// @Summary Get recommendations
// @Description Returns up to six unplayed items scored against the taste profile built from rated items, each with a human-readable reason.
// @Tags Insights
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.RecommendationsResponse} "Recommendations computed successfully"
// @Failure 500 {object} models.APIResponse "Progress store failure"
// @Router /recommendations [get]
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	prog, err := h.store.Load()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "STORE_ERROR", "Failed to load progress", err)
		return
	}

	recs := recommend.Recommend(h.catalog.Items(), prog)
	metrics.RecordRecommendation(time.Since(start), len(recs))

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.RecommendationsResponse{
			Recommendations: recs,
			Count:           len(recs),
		},
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}
