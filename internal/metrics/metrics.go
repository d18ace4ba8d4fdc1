// Ludotheca - Self-Hosted Game Backlog Tracker and Recommender
// Copyright 2026 Ludotheca contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ludotheca/ludotheca

// Package metrics exposes Prometheus instrumentation for the HTTP API,
// the progress store, the recommendation engine and the WebSocket hub.
// All collectors register on the default registry via promauto and are
// served at /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Progress Store Metrics
	StoreMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "progress_store_mutations_total",
			Help: "Total number of progress store mutations",
		},
		[]string{"action"}, // "mark_played", "rate", "reset", "set_notes", "import"
	)

	StoreMutationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "progress_store_mutation_duration_seconds",
			Help:    "Duration of progress store mutations in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	StoreMutationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "progress_store_mutation_errors_total",
			Help: "Total number of failed progress store mutations",
		},
		[]string{"action"},
	)

	StoreCorruptRecoveries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "progress_store_corrupt_recoveries_total",
			Help: "Times a corrupt persisted progress value was replaced by an empty map",
		},
	)

	// Catalog Metrics
	CatalogItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_items",
			Help: "Number of items in the loaded catalog",
		},
	)

	// View and Recommendation Metrics
	ViewComputeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "view_compute_duration_seconds",
			Help:    "Duration of library view computations in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_duration_seconds",
			Help:    "Duration of recommendation computations in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	RecommendResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_results",
			Help:    "Number of recommendations returned per computation",
			Buckets: []float64{0, 1, 2, 3, 4, 5, 6},
		},
	)

	// WebSocket Metrics
	WSConnectedClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "websocket_connected_clients",
			Help: "Current number of connected WebSocket clients",
		},
	)

	WSBroadcastsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "websocket_broadcasts_total",
			Help: "Total number of WebSocket frames broadcast",
		},
		[]string{"frame_type"},
	)

	// Event Bus Metrics
	EventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "events_published_total",
			Help: "Total number of domain events published",
		},
		[]string{"event_type"},
	)

	EventsProcessedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "events_processed_total",
			Help: "Total number of domain events handled by subscribers",
		},
		[]string{"event_type"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordStoreMutation records one progress mutation with its outcome.
func RecordStoreMutation(action string, duration time.Duration, err error) {
	StoreMutationsTotal.WithLabelValues(action).Inc()
	StoreMutationDuration.Observe(duration.Seconds())
	if err != nil {
		StoreMutationErrors.WithLabelValues(action).Inc()
	}
}

// RecordViewComputation records one library view computation.
func RecordViewComputation(duration time.Duration) {
	ViewComputeDuration.Observe(duration.Seconds())
}

// RecordRecommendation records one recommendation computation.
func RecordRecommendation(duration time.Duration, results int) {
	RecommendDuration.Observe(duration.Seconds())
	RecommendResults.Observe(float64(results))
}

// RecordBroadcast records one hub broadcast by frame type.
func RecordBroadcast(frameType string) {
	WSBroadcastsTotal.WithLabelValues(frameType).Inc()
}

// TrackWSClient adjusts the connected-clients gauge.
func TrackWSClient(connected bool) {
	if connected {
		WSConnectedClients.Inc()
	} else {
		WSConnectedClients.Dec()
	}
}

// RecordEventPublished records a domain event publication.
func RecordEventPublished(eventType string) {
	EventsPublishedTotal.WithLabelValues(eventType).Inc()
}

// RecordEventProcessed records a handled domain event.
func RecordEventProcessed(eventType string) {
	EventsProcessedTotal.WithLabelValues(eventType).Inc()
}
