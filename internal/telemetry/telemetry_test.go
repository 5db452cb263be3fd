package telemetry_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kaapav/kaapav-bot/internal/config"
	"github.com/kaapav/kaapav-bot/internal/telemetry"
)

func TestQueue_RunsAndSwallowsErrors(t *testing.T) {
	q := telemetry.NewQueue(10, 2, time.Second, zap.NewNop())
	q.Start()

	var ran int32
	var wg sync.WaitGroup
	wg.Add(3)
	q.Submit("ok", func(ctx context.Context) error { atomic.AddInt32(&ran, 1); wg.Done(); return nil })
	q.Submit("fails", func(ctx context.Context) error { wg.Done(); return errors.New("sink down") })
	q.Submit("panics", func(ctx context.Context) error { wg.Done(); panic("boom") })
	wg.Wait()

	q.Stop(context.Background())

	stats := q.Stats()
	assert.Equal(t, int64(3), stats.Submitted)
	assert.Equal(t, int64(2), stats.Failed)
	assert.Equal(t, int32(1), atomic.LoadInt32(&ran))
}

func TestQueue_DropsWhenFull(t *testing.T) {
	q := telemetry.NewQueue(1, 1, time.Second, zap.NewNop())

	assert.True(t, q.Submit("first", func(ctx context.Context) error { return nil }))
	assert.False(t, q.Submit("second", func(ctx context.Context) error { return nil }), "buffer holds one task and no worker is running")
	assert.Equal(t, int64(1), q.Stats().Dropped)

	q.Start()
	q.Stop(context.Background())
	assert.False(t, q.Submit("after stop", func(ctx context.Context) error { return nil }))
	assert.Equal(t, int64(2), q.Stats().Dropped)
}

func TestSinks(t *testing.T) {
	var webhookHits, sheetHits int32
	var lastRow []any

	webhook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.Header.Get("x-auth-key"))
		var ev telemetry.Event
		require.NoError(t, json.NewDecoder(r.Body).Decode(&ev))
		assert.Equal(t, "919876543210", ev.Phone)
		atomic.AddInt32(&webhookHits, 1)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer webhook.Close()

	sheets := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		lastRow, _ = body["row"].([]any)
		atomic.AddInt32(&sheetHits, 1)
		w.WriteHeader(http.StatusOK)
	}))
	defer sheets.Close()

	cfg := config.TelemetryConfig{
		SheetsURL:      sheets.URL,
		WebhookURL:     webhook.URL,
		WebhookAuthKey: "secret",
		Timeout:        5,
		CircuitBreaker: config.CircuitBreakerConfig{MaxRequests: 3, Interval: 60, Timeout: 60, FailureRatio: 0.6, ConsecutiveFails: 5},
	}
	sinks := telemetry.Sinks(cfg, zap.NewNop())
	require.Len(t, sinks, 2)

	q := telemetry.NewQueue(10, 1, time.Second, zap.NewNop())
	q.Start()
	telemetry.Fanout(q, sinks, telemetry.Event{
		Type:        "message",
		Phone:       "919876543210",
		Direction:   "outgoing",
		MessageType: "text",
		Content:     "hello",
		Status:      "sent",
		At:          time.Now(),
	})
	q.Stop(context.Background())

	assert.Equal(t, int32(1), atomic.LoadInt32(&webhookHits))
	assert.Equal(t, int32(1), atomic.LoadInt32(&sheetHits))
	require.Len(t, lastRow, 8)
	assert.Equal(t, "hello", lastRow[4])
}

func TestSink_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	sink := telemetry.NewWebhookSink(config.TelemetryConfig{
		WebhookURL:     server.URL,
		CircuitBreaker: config.CircuitBreakerConfig{MaxRequests: 1, Interval: 60, Timeout: 60, FailureRatio: 0.6, ConsecutiveFails: 5},
	}, zap.NewNop())

	err := sink.Deliver(context.Background(), telemetry.Event{Phone: "919876543210"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status code: 500")
}
