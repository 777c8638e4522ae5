package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shenikar/agri_incident_tracker/internal/config"
	"github.com/shenikar/agri_incident_tracker/internal/metrics"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestWorker создает воркер без Redis, с мгновенными паузами между попытками
func newTestWorker(t *testing.T, cfg *config.Config) (*WebhookWorker, *[]time.Duration) {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	w := NewWebhookWorker(nil, logger, cfg, metrics.NewMetrics(prometheus.NewRegistry()))
	delays := make([]time.Duration, 0)
	w.wait = func(_ context.Context, d time.Duration) bool {
		delays = append(delays, d)
		return true
	}
	return w, &delays
}

func encodeEvent(t *testing.T, event IncidentEvent) string {
	t.Helper()
	payload, err := json.Marshal(event)
	require.NoError(t, err)
	return string(payload)
}

func TestProcessWebhookEvent_Delivered(t *testing.T) {
	event := NewIncidentEvent("inc-000001", "created", "2025-01-01T00:00:00.000Z")
	payload := encodeEvent(t, event)

	var gotBody []byte
	var gotHeaders http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	worker, delays := newTestWorker(t, &config.Config{
		WebhookURL:        server.URL,
		WebhookSecret:     "secret",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	})

	status := worker.processWebhookEvent(context.Background(), event, payload)

	assert.Equal(t, deliveryStatusDelivered, status)
	assert.Empty(t, *delays)
	assert.JSONEq(t, payload, string(gotBody))
	assert.Equal(t, "application/json", gotHeaders.Get("Content-Type"))
	assert.Equal(t, event.ID.String(), gotHeaders.Get("X-Webhook-Delivery"))
	assert.Equal(t, generateHMACSHA256(payload, "secret"), gotHeaders.Get("X-Webhook-Signature"))
}

func TestProcessWebhookEvent_RetriesWithBackoff(t *testing.T) {
	event := NewIncidentEvent("inc-000001", "resource_requested", "2025-01-01T00:00:00.000Z")

	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	worker, delays := newTestWorker(t, &config.Config{
		WebhookURL:        server.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  10 * time.Millisecond,
	})

	status := worker.processWebhookEvent(context.Background(), event, encodeEvent(t, event))

	assert.Equal(t, deliveryStatusDelivered, status)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	assert.Equal(t, []time.Duration{10 * time.Millisecond, 20 * time.Millisecond}, *delays)
}

func TestProcessWebhookEvent_GivesUp(t *testing.T) {
	event := NewIncidentEvent("inc-000001", "created", "2025-01-01T00:00:00.000Z")

	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	worker, _ := newTestWorker(t, &config.Config{
		WebhookURL:        server.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 2,
		WebhookBaseDelay:  time.Millisecond,
	})

	status := worker.processWebhookEvent(context.Background(), event, encodeEvent(t, event))

	assert.Equal(t, deliveryStatusFailed, status)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestProcessWebhookEvent_NoURL(t *testing.T) {
	event := NewIncidentEvent("inc-000001", "created", "2025-01-01T00:00:00.000Z")
	worker, _ := newTestWorker(t, &config.Config{WebhookMaxRetries: 3})

	status := worker.processWebhookEvent(context.Background(), event, encodeEvent(t, event))

	assert.Equal(t, deliveryStatusSkipped, status)
}

func TestNewIncidentEvent(t *testing.T) {
	a := NewIncidentEvent("inc-000001", "created", "at")
	b := NewIncidentEvent("inc-000001", "created", "at")

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, "inc-000001", a.IncidentID)
	assert.Equal(t, "created", a.Event)
	assert.Equal(t, "at", a.At)
}

func TestProcessWebhookEvent_StopsBackoffOnCancel(t *testing.T) {
	event := NewIncidentEvent("inc-000001", "created", "2025-01-01T00:00:00.000Z")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		cancel() // Остановка сервиса во время первой попытки
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	worker := NewWebhookWorker(nil, logger, &config.Config{
		WebhookURL:        server.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Hour,
	}, nil)

	start := time.Now()
	status := worker.processWebhookEvent(ctx, event, encodeEvent(t, event))

	assert.Equal(t, deliveryStatusFailed, status)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Less(t, time.Since(start), 10*time.Second)
}

func TestWaitContext(t *testing.T) {
	assert.True(t, waitContext(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.False(t, waitContext(ctx, time.Hour))
}
