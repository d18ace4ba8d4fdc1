// Ludotheca - Self-Hosted Game Backlog Tracker and Recommender
// Copyright 2026 Ludotheca contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ludotheca/ludotheca

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ludotheca/ludotheca/internal/middleware"
)

// Router wires handlers and middleware into the HTTP routing tree.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a Router. A nil chiMW falls back to the default
// middleware configuration, which is what tests want.
func NewRouter(handler *Handler, chiMW *ChiMiddleware) *Router {
	if chiMW == nil {
		chiMW = NewChiMiddleware(nil)
	}
	return &Router{
		handler:       handler,
		chiMiddleware: chiMW,
	}
}

// chiMiddleware adapts http.HandlerFunc middleware to Chi's
// func(http.Handler) http.Handler, so the middleware package plugs into
// r.Use().
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// SetupChi configures all HTTP routes using the Chi router.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	// Applied to ALL routes in order
	r.Use(chiMiddleware(middleware.RequestID)) // X-Request-ID plus logging context
	r.Use(chimiddleware.RealIP)                // Extract real IP from X-Forwarded-For
	r.Use(chimiddleware.Recoverer)             // Recover from panics
	r.Use(router.chiMiddleware.CORS())         // CORS must be global to handle OPTIONS preflight

	// Unmatched routes and wrong verbs still answer with the JSON envelope.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
	})

	// ========================
	// Health Endpoints
	// ========================
	// Permissive rate limiting so monitoring tools can poll freely
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitCustom(RateLimitHealth))
		r.Use(APISecurityHeaders())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
		r.Get("/", router.handler.Health)
	})

	// ========================
	// Library Endpoints
	// ========================
	// Read-only views over the catalog; listings compress well
	r.Route("/api/v1/library", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		r.Use(chiMiddleware(middleware.Compression))

		r.Get("/", router.handler.Library)
		r.Get("/filters", router.handler.LibraryFilters)
		r.Get("/{id}", router.handler.LibraryItem)
	})

	// ========================
	// Progress Endpoints
	// ========================
	// Mutations plus export/import, all under the write rate limit
	r.Route("/api/v1/progress", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitCustom(RateLimitWrite))
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))

		r.Get("/", router.handler.ProgressExport)
		r.Put("/", router.handler.ProgressImport)

		r.Post("/{id}/played", router.handler.MarkPlayed)
		r.Delete("/{id}/played", router.handler.MarkUnplayed)
		r.Put("/{id}/rating", router.handler.SetRating)
		r.Delete("/{id}/rating", router.handler.ClearRating)
		r.Put("/{id}/notes", router.handler.SetNotes)
	})

	// ========================
	// Insight and Live Endpoints
	// ========================
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))

		r.Group(func(r chi.Router) {
			r.Use(chiMiddleware(middleware.Compression))
			r.Get("/stats", router.handler.Stats)
			r.Get("/recommendations", router.handler.Recommendations)
		})

		// No compression here: the upgrade needs the raw http.Hijacker.
		// The WebSocket limit caps the upgrade rate, not open connections.
		r.With(router.chiMiddleware.RateLimitCustom(RateLimitWebSocket)).Get("/ws", router.handler.WebSocket)
	})

	// ========================
	// Observability
	// ========================
	r.Handle("/metrics", promhttp.Handler())

	return r
}
