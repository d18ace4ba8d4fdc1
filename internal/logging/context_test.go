// Ludotheca - Self-Hosted Game Backlog Tracker and Recommender
// Copyright 2026 Ludotheca contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ludotheca/ludotheca

package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestGenerateCorrelationID(t *testing.T) {
	id1 := GenerateCorrelationID()
	id2 := GenerateCorrelationID()

	if len(id1) != 8 {
		t.Errorf("expected correlation ID length 8, got %d", len(id1))
	}
	if id1 == id2 {
		t.Error("expected unique correlation IDs")
	}
}

func TestGenerateRequestID(t *testing.T) {
	id := GenerateRequestID()

	// UUID format: 8-4-4-4-12
	if len(id) != 36 {
		t.Errorf("expected request ID length 36, got %d", len(id))
	}
	if strings.Count(id, "-") != 4 {
		t.Errorf("expected UUID format, got %s", id)
	}
}

func TestCorrelationIDRoundTrip(t *testing.T) {
	ctx := context.Background()

	if got := CorrelationIDFromContext(ctx); got != "" {
		t.Errorf("expected empty correlation ID from bare context, got %q", got)
	}

	ctx = ContextWithCorrelationID(ctx, "abc12345")
	if got := CorrelationIDFromContext(ctx); got != "abc12345" {
		t.Errorf("CorrelationIDFromContext = %q, want %q", got, "abc12345")
	}
}

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := context.Background()

	if got := RequestIDFromContext(ctx); got != "" {
		t.Errorf("expected empty request ID from bare context, got %q", got)
	}

	ctx = ContextWithRequestID(ctx, "req-1")
	if got := RequestIDFromContext(ctx); got != "req-1" {
		t.Errorf("RequestIDFromContext = %q, want %q", got, "req-1")
	}
}

func TestCtxAddsIdentifiers(t *testing.T) {
	var buf bytes.Buffer

	SetLogger(zerolog.New(&buf).With().Timestamp().Logger())
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	ctx := ContextWithCorrelationID(context.Background(), "corr1234")
	ctx = ContextWithRequestID(ctx, "req-uuid")

	Ctx(ctx).Info().Msg("with context")

	output := buf.String()
	if !strings.Contains(output, `"correlation_id":"corr1234"`) {
		t.Errorf("expected correlation_id in output: %s", output)
	}
	if !strings.Contains(output, `"request_id":"req-uuid"`) {
		t.Errorf("expected request_id in output: %s", output)
	}
}

func TestLoggerFromContextFallsBack(t *testing.T) {
	// A bare context must yield a usable logger, not panic.
	logger := LoggerFromContext(context.Background())
	logger.Debug().Msg("no-op")
}

func TestContextWithLogger(t *testing.T) {
	var buf bytes.Buffer
	custom := zerolog.New(&buf)

	ctx := ContextWithLogger(context.Background(), custom)
	stored := LoggerFromContext(ctx)
	stored.Info().Msg("stored logger")

	if !strings.Contains(buf.String(), "stored logger") {
		t.Errorf("expected stored logger output, got: %s", buf.String())
	}
}
