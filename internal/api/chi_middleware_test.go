// Ludotheca - Self-Hosted Game Backlog Tracker and Recommender
// Copyright 2026 Ludotheca contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ludotheca/ludotheca

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// =====================================================
// ChiMiddleware Configuration Tests
// =====================================================

func TestNewChiMiddleware_DefaultConfig(t *testing.T) {
	m := NewChiMiddleware(nil)

	if m == nil {
		t.Fatal("NewChiMiddleware returned nil")
	}
	if m.config == nil {
		t.Fatal("config is nil")
	}
	if len(m.config.CORSAllowedOrigins) != 1 || m.config.CORSAllowedOrigins[0] != "*" {
		t.Errorf("CORSAllowedOrigins = %v, want [*]", m.config.CORSAllowedOrigins)
	}
	if m.config.CORSMaxAge != 86400 {
		t.Errorf("CORSMaxAge = %d, want 86400", m.config.CORSMaxAge)
	}
	if m.config.RateLimitRequests != 100 {
		t.Errorf("RateLimitRequests = %d, want 100", m.config.RateLimitRequests)
	}
	if m.config.RateLimitWindow != time.Minute {
		t.Errorf("RateLimitWindow = %v, want 1m", m.config.RateLimitWindow)
	}
	if m.config.RateLimitDisabled {
		t.Error("RateLimitDisabled should default to false")
	}
}

func TestNewChiMiddleware_CustomConfig(t *testing.T) {
	config := &ChiMiddlewareConfig{
		CORSAllowedOrigins: []string{"https://games.example"},
		CORSAllowedMethods: []string{"GET", "POST"},
		CORSAllowedHeaders: []string{"Content-Type"},
		CORSMaxAge:         3600,
		RateLimitRequests:  50,
		RateLimitWindow:    time.Second * 30,
		RateLimitDisabled:  true,
	}

	m := NewChiMiddleware(config)

	if m.config.CORSAllowedOrigins[0] != "https://games.example" {
		t.Errorf("CORSAllowedOrigins = %v, want [https://games.example]", m.config.CORSAllowedOrigins)
	}
	if m.config.RateLimitRequests != 50 {
		t.Errorf("RateLimitRequests = %d, want 50", m.config.RateLimitRequests)
	}
	if !m.config.RateLimitDisabled {
		t.Error("RateLimitDisabled should be true")
	}
}

func TestNewChiMiddlewareFromSecurity(t *testing.T) {
	m := NewChiMiddlewareFromSecurity([]string{"https://games.example"}, 42, 30*time.Second, false)

	if m.config.CORSAllowedOrigins[0] != "https://games.example" {
		t.Errorf("CORSAllowedOrigins = %v, want [https://games.example]", m.config.CORSAllowedOrigins)
	}
	if m.config.CORSMaxAge != 86400 {
		t.Errorf("CORSMaxAge = %d, want 86400", m.config.CORSMaxAge)
	}
	if m.config.RateLimitRequests != 42 {
		t.Errorf("RateLimitRequests = %d, want 42", m.config.RateLimitRequests)
	}
	if m.config.RateLimitWindow != 30*time.Second {
		t.Errorf("RateLimitWindow = %v, want 30s", m.config.RateLimitWindow)
	}
	if m.config.RateLimitDisabled {
		t.Error("RateLimitDisabled should be false")
	}
}

// =====================================================
// CORS Middleware Tests
// =====================================================

func TestChiMiddleware_CORS_WildcardOrigin(t *testing.T) {
	m := NewChiMiddleware(nil)

	handlerCalled := false
	handler := m.CORS()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Origin", "https://games.example")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !handlerCalled {
		t.Error("Handler should be called")
	}

	allowOrigin := w.Header().Get("Access-Control-Allow-Origin")
	if allowOrigin != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", allowOrigin)
	}
}

func TestChiMiddleware_CORS_SpecificOrigin(t *testing.T) {
	config := &ChiMiddlewareConfig{
		CORSAllowedOrigins: []string{"https://allowed.example"},
		CORSAllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		CORSAllowedHeaders: []string{"Content-Type"},
		CORSMaxAge:         86400,
	}
	m := NewChiMiddleware(config)

	handler := m.CORS()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// Allowed origin is reflected back.
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Origin", "https://allowed.example")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://allowed.example" {
		t.Errorf("Access-Control-Allow-Origin = %q, want https://allowed.example", got)
	}

	// Disallowed origin gets no CORS headers; the browser blocks from there.
	req = httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Origin", "https://not-allowed.example")
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Access-Control-Allow-Origin should be empty for disallowed origin, got %q", got)
	}
}

func TestChiMiddleware_CORS_Preflight(t *testing.T) {
	config := &ChiMiddlewareConfig{
		CORSAllowedOrigins: []string{"https://allowed.example"},
		CORSAllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		CORSAllowedHeaders: []string{"Content-Type"},
		CORSMaxAge:         86400,
	}
	m := NewChiMiddleware(config)

	handlerCalled := false
	handler := m.CORS()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("OPTIONS", "/", nil)
	req.Header.Set("Origin", "https://allowed.example")
	req.Header.Set("Access-Control-Request-Method", "PUT")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://allowed.example" {
		t.Errorf("Access-Control-Allow-Origin = %q, want https://allowed.example", got)
	}
	if handlerCalled {
		t.Error("Handler should not be called for OPTIONS preflight")
	}
}

// =====================================================
// Rate Limiting Tests
// =====================================================

func TestChiMiddleware_RateLimit_Disabled(t *testing.T) {
	config := &ChiMiddlewareConfig{
		RateLimitDisabled: true,
		RateLimitRequests: 3,
		RateLimitWindow:   time.Second,
	}
	m := NewChiMiddleware(config)

	callCount := 0
	handler := m.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		callCount++
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 10; i++ {
		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = "192.168.1.1:12345"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Request %d: status = %d, want %d", i, w.Code, http.StatusOK)
		}
	}

	if callCount != 10 {
		t.Errorf("callCount = %d, want 10", callCount)
	}
}

func TestChiMiddleware_RateLimit_Enabled(t *testing.T) {
	config := &ChiMiddlewareConfig{
		RateLimitRequests: 3,
		RateLimitWindow:   time.Minute, // Long window for test stability
	}
	m := NewChiMiddleware(config)

	handler := m.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	successCount := 0
	limitedCount := 0

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = "192.168.1.1:12345"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if w.Code == http.StatusOK {
			successCount++
		} else if w.Code == http.StatusTooManyRequests {
			limitedCount++
		}
	}

	if successCount != 3 {
		t.Errorf("successCount = %d, want 3", successCount)
	}
	if limitedCount != 2 {
		t.Errorf("limitedCount = %d, want 2", limitedCount)
	}
}

func TestChiMiddleware_RateLimit_DifferentIPs(t *testing.T) {
	config := &ChiMiddlewareConfig{
		RateLimitRequests: 2,
		RateLimitWindow:   time.Minute,
	}
	m := NewChiMiddleware(config)

	handler := m.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// Each IP gets its own budget.
	ips := []string{"192.168.1.1:12345", "192.168.1.2:12345", "192.168.1.3:12345"}

	for _, ip := range ips {
		for i := 0; i < 2; i++ {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = ip
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Errorf("IP %s request %d: status = %d, want %d", ip, i, w.Code, http.StatusOK)
			}
		}
	}
}

func TestChiMiddleware_RateLimitCustom(t *testing.T) {
	m := NewChiMiddleware(nil)

	handler := m.RateLimitCustom(RateLimitConfig{Requests: 1, Window: time.Minute})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "10.0.0.1:5000"
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("first request: status = %d, want %d", w.Code, http.StatusOK)
	}

	req = httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "10.0.0.1:5000"
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("second request: status = %d, want %d", w.Code, http.StatusTooManyRequests)
	}
}

func TestRateLimitProfiles(t *testing.T) {
	tests := []struct {
		name         string
		config       RateLimitConfig
		wantRequests int
	}{
		{"api", RateLimitAPI, 100},
		{"write", RateLimitWrite, 30},
		{"health", RateLimitHealth, 1000},
		{"websocket", RateLimitWebSocket, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.config.Requests != tt.wantRequests {
				t.Errorf("Requests = %d, want %d", tt.config.Requests, tt.wantRequests)
			}
			if tt.config.Window != time.Minute {
				t.Errorf("Window = %v, want 1m", tt.config.Window)
			}
		})
	}
}

// =====================================================
// Security Header Tests
// =====================================================

func TestAPISecurityHeaders(t *testing.T) {
	handler := APISecurityHeaders()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("plain http", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		want := map[string]string{
			"X-Content-Type-Options": "nosniff",
			"X-Frame-Options":        "DENY",
			"Referrer-Policy":        "strict-origin-when-cross-origin",
		}
		for name, value := range want {
			if got := w.Header().Get(name); got != value {
				t.Errorf("%s = %q, want %q", name, got, value)
			}
		}

		if got := w.Header().Get("Strict-Transport-Security"); got != "" {
			t.Errorf("HSTS should not be set over plain HTTP, got %q", got)
		}
	})

	t.Run("behind TLS-terminating proxy", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("X-Forwarded-Proto", "https")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if got := w.Header().Get("Strict-Transport-Security"); got == "" {
			t.Error("HSTS should be set when X-Forwarded-Proto is https")
		}
	})
}
