package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeApplied = "applied"
	OutcomeSkipped = "skipped"
)

// Metrics - метрики Prometheus для инцидентов и доставки вебхуков
type Metrics struct {
	operations        *prometheus.CounterVec
	storedIncidents   prometheus.Gauge
	webhookDeliveries *prometheus.CounterVec
	sideEffectErrors  *prometheus.CounterVec
}

// NewMetrics создает и регистрирует метрики в переданном реестре
func NewMetrics(reg prometheus.Registerer) *Metrics {
	operations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "agri_incident_operations_total",
		Help: "Incident mutations by operation and outcome.",
	}, []string{"operation", "outcome"})

	storedIncidents := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "agri_incidents_stored",
		Help: "Number of incidents currently held in the store.",
	})

	webhookDeliveries := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "agri_webhook_deliveries_total",
		Help: "Webhook delivery attempts by final status.",
	}, []string{"status"})

	sideEffectErrors := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "agri_side_effect_errors_total",
		Help: "Failed event publications and audit archive writes.",
	}, []string{"sink"})

	reg.MustRegister(operations, storedIncidents, webhookDeliveries, sideEffectErrors)

	return &Metrics{
		operations:        operations,
		storedIncidents:   storedIncidents,
		webhookDeliveries: webhookDeliveries,
		sideEffectErrors:  sideEffectErrors,
	}
}

// ObserveOperation учитывает мутацию; applied=false означает, что инцидент не найден
func (m *Metrics) ObserveOperation(operation string, applied bool) {
	if m == nil {
		return
	}
	outcome := OutcomeApplied
	if !applied {
		outcome = OutcomeSkipped
	}
	m.operations.WithLabelValues(sanitizeLabel(operation), outcome).Inc()
}

func (m *Metrics) SetStoredIncidents(count int) {
	if m == nil {
		return
	}
	m.storedIncidents.Set(float64(count))
}

func (m *Metrics) ObserveWebhookDelivery(status string) {
	if m == nil {
		return
	}
	m.webhookDeliveries.WithLabelValues(sanitizeLabel(status)).Inc()
}

func (m *Metrics) ObserveSideEffectError(sink string) {
	if m == nil {
		return
	}
	m.sideEffectErrors.WithLabelValues(sanitizeLabel(sink)).Inc()
}

func sanitizeLabel(val string) string {
	if val == "" {
		return "unknown"
	}
	return val
}
