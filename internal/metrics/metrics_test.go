// Ludotheca - Self-Hosted Game Backlog Tracker and Recommender
// Copyright 2026 Ludotheca contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ludotheca/ludotheca

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	io_prometheus_client "github.com/prometheus/client_model/go"
)

// getCounterValue extracts the value from a Prometheus counter
func getCounterValue(counter prometheus.Counter) float64 {
	var m io_prometheus_client.Metric
	if err := counter.Write(&m); err != nil {
		return 0
	}
	return m.GetCounter().GetValue()
}

// getGaugeValue extracts the value from a Prometheus gauge
func getGaugeValue(gauge prometheus.Gauge) float64 {
	var m io_prometheus_client.Metric
	if err := gauge.Write(&m); err != nil {
		return 0
	}
	return m.GetGauge().GetValue()
}

func TestRecordAPIRequest(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		endpoint   string
		statusCode string
		duration   time.Duration
	}{
		{"fast GET", "GET", "/api/v1/library", "200", 5 * time.Millisecond},
		{"slow recommendation", "GET", "/api/v1/recommendations", "200", 250 * time.Millisecond},
		{"rejected rating", "PUT", "/api/v1/progress/{id}/rating", "400", time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.CollectAndCount(APIRequestsTotal)
			RecordAPIRequest(tt.method, tt.endpoint, tt.statusCode, tt.duration)
			if after := testutil.CollectAndCount(APIRequestsTotal); after < before {
				t.Errorf("APIRequestsTotal series count went from %d to %d", before, after)
			}
		})
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := getGaugeValue(APIActiveRequests)

	TrackActiveRequest(true)
	if got := getGaugeValue(APIActiveRequests); got != before+1 {
		t.Errorf("APIActiveRequests = %v, want %v", got, before+1)
	}

	TrackActiveRequest(false)
	if got := getGaugeValue(APIActiveRequests); got != before {
		t.Errorf("APIActiveRequests = %v, want %v", got, before)
	}
}

func TestRecordStoreMutation(t *testing.T) {
	RecordStoreMutation("rate", 2*time.Millisecond, nil)

	errBefore := getCounterValue(StoreMutationErrors.WithLabelValues("rate"))
	RecordStoreMutation("rate", time.Millisecond, errors.New("disk full"))
	if got := getCounterValue(StoreMutationErrors.WithLabelValues("rate")); got != errBefore+1 {
		t.Errorf("StoreMutationErrors = %v, want %v", got, errBefore+1)
	}
}

func TestTrackWSClient(t *testing.T) {
	before := getGaugeValue(WSConnectedClients)

	TrackWSClient(true)
	TrackWSClient(true)
	TrackWSClient(false)

	if got := getGaugeValue(WSConnectedClients); got != before+1 {
		t.Errorf("WSConnectedClients = %v, want %v", got, before+1)
	}
}

func TestRecordBroadcast(t *testing.T) {
	before := getCounterValue(WSBroadcastsTotal.WithLabelValues("progress_updated"))
	RecordBroadcast("progress_updated")
	if got := getCounterValue(WSBroadcastsTotal.WithLabelValues("progress_updated")); got != before+1 {
		t.Errorf("WSBroadcastsTotal = %v, want %v", got, before+1)
	}
}

func TestRecordEventCounters(t *testing.T) {
	pubBefore := getCounterValue(EventsPublishedTotal.WithLabelValues("ProgressUpdated"))
	procBefore := getCounterValue(EventsProcessedTotal.WithLabelValues("ProgressUpdated"))

	RecordEventPublished("ProgressUpdated")
	RecordEventProcessed("ProgressUpdated")

	if got := getCounterValue(EventsPublishedTotal.WithLabelValues("ProgressUpdated")); got != pubBefore+1 {
		t.Errorf("EventsPublishedTotal = %v, want %v", got, pubBefore+1)
	}
	if got := getCounterValue(EventsProcessedTotal.WithLabelValues("ProgressUpdated")); got != procBefore+1 {
		t.Errorf("EventsProcessedTotal = %v, want %v", got, procBefore+1)
	}
}

func TestRecordRecommendation(t *testing.T) {
	// Histogram observations should not panic across the bucket range.
	for _, results := range []int{0, 3, 6} {
		RecordRecommendation(10*time.Millisecond, results)
	}
}

// TestMetricGathering verifies collector consistency across the registry.
func TestMetricGathering(t *testing.T) {
	RecordAPIRequest("GET", "/test", "200", time.Millisecond)
	RecordStoreMutation("import", time.Millisecond, nil)
	RecordViewComputation(time.Millisecond)

	problems, err := testutil.GatherAndLint(prometheus.DefaultGatherer)
	if err != nil {
		t.Logf("Lint errors (may be expected): %v", err)
	}
	for _, p := range problems {
		t.Logf("Metric lint problem: %s", p.Text)
	}
}
