package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics métricas Prometheus de la API sobre un registry propio (no el global).
type Metrics struct {
	registry *prometheus.Registry

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	dbDuration      *prometheus.HistogramVec
	dbErrors        *prometheus.CounterVec
	entityOps       *prometheus.CounterVec
}

// New registra las métricas con el prefijo (namespace) indicado.
func New(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		dbDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "db_statement_duration_seconds",
			Help:      "Duration of SQL statements in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"table", "operation"}),
		dbErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "db_statement_errors_total",
			Help:      "Total number of failed SQL statements",
		}, []string{"table", "operation"}),
		entityOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entity_operations_total",
			Help:      "Total number of entity service operations by outcome",
		}, []string{"entity", "operation", "outcome"}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests, m.requestDuration, m.dbDuration, m.dbErrors, m.entityOps,
	)
	return m
}

// ObserveRequest registra una petición HTTP ya respondida.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveStatement registra una sentencia SQL (implementa sqlstore.Observer).
func (m *Metrics) ObserveStatement(table, op string, elapsed time.Duration, err error) {
	m.dbDuration.WithLabelValues(table, op).Observe(elapsed.Seconds())
	if err != nil {
		m.dbErrors.WithLabelValues(table, op).Inc()
	}
}

// ObserveOperation registra el resultado de una operación de servicio (ok, not_found, invalid, ...).
func (m *Metrics) ObserveOperation(entity, op, outcome string) {
	m.entityOps.WithLabelValues(entity, op, outcome).Inc()
}

// Registry expone el registry (tests).
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler handler HTTP en formato de exposición Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
