package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveOperation(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.ObserveOperation("set_status", true)
	m.ObserveOperation("set_status", true)
	m.ObserveOperation("set_status", false)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.operations.WithLabelValues("set_status", OutcomeApplied)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.operations.WithLabelValues("set_status", OutcomeSkipped)))
}

func TestGaugesAndCounters(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.SetStoredIncidents(5)
	m.ObserveWebhookDelivery("delivered")
	m.ObserveSideEffectError("")

	assert.Equal(t, float64(5), testutil.ToFloat64(m.storedIncidents))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.webhookDeliveries.WithLabelValues("delivered")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.sideEffectErrors.WithLabelValues("unknown")))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveOperation("create", true)
		m.SetStoredIncidents(1)
		m.ObserveWebhookDelivery("failed")
		m.ObserveSideEffectError("archive")
	})
}
