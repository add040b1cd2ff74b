// Package metrics holds the Prometheus collectors of the registry.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/heartmarshall/inspection-registry/internal/domain"
)

const namespace = "inspection_registry"

// Metrics holds all Prometheus metrics for the application.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	EntitiesCreated     *prometheus.CounterVec
	EntitiesDeleted     *prometheus.CounterVec
	SerialCodes         prometheus.Counter
	ReportsArchived     prometheus.Counter
}

// New creates the metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests, labeled by route pattern, method and status.",
		}, []string{"route", "method", "status"}),
		HTTPRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latency of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		EntitiesCreated: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entities_created_total",
			Help:      "Total number of registry entities created, labeled by entity type.",
		}, []string{"entity"}),
		EntitiesDeleted: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entities_deleted_total",
			Help:      "Total number of registry entities deleted, labeled by entity type.",
		}, []string{"entity"}),
		SerialCodes: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "serial_codes_generated_total",
			Help:      "Total number of product serial codes issued.",
		}),
		ReportsArchived: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_archived_total",
			Help:      "Total number of inspection reports written to the archive.",
		}),
	}
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(route, method string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(route, method).Observe(d.Seconds())
}

// EntitiesCreatedAdd counts n created entities of the given type.
func (m *Metrics) EntitiesCreatedAdd(entity domain.EntityType, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.EntitiesCreated.WithLabelValues(entity.String()).Add(float64(n))
}

// EntitiesDeletedAdd counts n deleted entities of the given type.
func (m *Metrics) EntitiesDeletedAdd(entity domain.EntityType, n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.EntitiesDeleted.WithLabelValues(entity.String()).Add(float64(n))
}

// SerialIssued counts one issued serial code. Usable as a serial.Generator issue hook.
func (m *Metrics) SerialIssued() {
	if m == nil {
		return
	}
	m.SerialCodes.Inc()
}

// ReportArchived counts one archived report.
func (m *Metrics) ReportArchived() {
	if m == nil {
		return
	}
	m.ReportsArchived.Inc()
}
