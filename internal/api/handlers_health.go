// Ludotheca - Self-Hosted Game Backlog Tracker and Recommender
// Copyright 2026 Ludotheca contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ludotheca/ludotheca

package api

import (
	"net/http"
	"time"

	"github.com/ludotheca/ludotheca/internal/models"
)

// storeOpen probes the progress store with a single-key read. Badger reports
// a closed or broken database through this path, which is exactly what the
// probes need to know.
func (h *Handler) storeOpen() bool {
	if h.store == nil {
		return false
	}
	_, err := h.store.Load()
	return err == nil
}

// Health handles health check requests
//
// @Summary Get system health status
// @Description Returns overall health including catalog size, progress store state and uptime.
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus} "Health status retrieved successfully"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	catalogItems := 0
	if h.catalog != nil {
		catalogItems = h.catalog.Len()
	}
	catalogLoaded := catalogItems > 0
	storeOpen := h.storeOpen()

	status := "healthy"
	if !catalogLoaded || !storeOpen {
		status = "degraded"
	}

	health := models.HealthStatus{
		Status:        status,
		Version:       "1.0.0",
		CatalogLoaded: catalogLoaded,
		CatalogItems:  catalogItems,
		StoreOpen:     storeOpen,
		Uptime:        time.Since(h.startTime).Seconds(),
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   health,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthLive handles liveness probe requests (Kubernetes-style).
// Returns 200 OK if the process is alive, regardless of dependencies.
//
// @Summary Kubernetes liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse "Service is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"alive":  true,
			"uptime": time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style).
// Ready means the catalog is loaded and the progress store answers reads.
//
// @Summary Kubernetes readiness probe
// @Description Returns 200 only when the catalog is loaded and the progress store is open; 503 otherwise.
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse "Service is ready"
// @Failure 503 {object} models.APIResponse "Service is not ready"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	catalogLoaded := h.catalog != nil && h.catalog.Len() > 0
	storeOpen := h.storeOpen()
	ready := catalogLoaded && storeOpen

	statusCode := http.StatusOK
	status := "ready"
	if !ready {
		statusCode = http.StatusServiceUnavailable
		status = "not_ready"
	}

	respondJSON(w, statusCode, &models.APIResponse{
		Status: status,
		Data: map[string]interface{}{
			"catalog_loaded": catalogLoaded,
			"store_open":     storeOpen,
			"ready_to_serve": ready,
			"uptime":         time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
