// Package metrics - Prometheus метрики сервиса.
// Каждый экземпляр Metrics держит собственный registry, поэтому New можно вызывать многократно.
package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "shareit"

// Metrics набор метрик HTTP, БД и бизнес-событий
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	dbQueryDuration *prometheus.HistogramVec
	dbOpenConns     prometheus.Gauge
	dbInUseConns    prometheus.Gauge
	dbIdleConns     prometheus.Gauge

	bookingTransitions *prometheus.CounterVec
	rateLimited        *prometheus.CounterVec
	upstreamErrors     prometheus.Counter
}

// New создает и регистрирует метрики с лейблом service=serviceName
func New(serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "http_requests_total",
			Help:        "HTTP requests by method, route and status code.",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency.",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency by operation.",
			ConstLabels: labels,
			Buckets:     []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation", "status"}),
		dbOpenConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "db_open_connections",
			Help:        "Open connections in the pool.",
			ConstLabels: labels,
		}),
		dbInUseConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "db_in_use_connections",
			Help:        "Connections currently in use.",
			ConstLabels: labels,
		}),
		dbIdleConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "db_idle_connections",
			Help:        "Idle connections in the pool.",
			ConstLabels: labels,
		}),
		bookingTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "booking_status_transitions_total",
			Help:        "Bookings moved into a status.",
			ConstLabels: labels,
		}, []string{"status"}),
		rateLimited: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "rate_limited_requests_total",
			Help:        "Requests rejected by the rate limiter.",
			ConstLabels: labels,
		}, []string{"route"}),
		upstreamErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "upstream_errors_total",
			Help:        "Failed calls from the gateway to the server.",
			ConstLabels: labels,
		}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.dbQueryDuration,
		m.dbOpenConns,
		m.dbInUseConns,
		m.dbIdleConns,
		m.bookingTransitions,
		m.rateLimited,
		m.upstreamErrors,
	)

	return m
}

// Handler HTTP обработчик для scrape
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry нужен тестам для чтения значений
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveHTTP фиксирует завершенный HTTP запрос
func (m *Metrics) ObserveHTTP(method, route string, status int, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveQuery фиксирует выполненный SQL запрос
func (m *Metrics) ObserveQuery(operation string, duration time.Duration, err error) {
	status := "ok"
	if err != nil && err != sql.ErrNoRows {
		status = "error"
	}
	m.dbQueryDuration.WithLabelValues(operation, status).Observe(duration.Seconds())
}

// SetPoolStats обновляет метрики пула соединений
func (m *Metrics) SetPoolStats(stats sql.DBStats) {
	m.dbOpenConns.Set(float64(stats.OpenConnections))
	m.dbInUseConns.Set(float64(stats.InUse))
	m.dbIdleConns.Set(float64(stats.Idle))
}

// IncBookingTransition считает переход бронирования в статус
func (m *Metrics) IncBookingTransition(status string) {
	m.bookingTransitions.WithLabelValues(status).Inc()
}

// IncRateLimited считает отклоненный лимитером запрос
func (m *Metrics) IncRateLimited(route string) {
	m.rateLimited.WithLabelValues(route).Inc()
}

// IncUpstreamError считает неудачный вызов upstream сервиса
func (m *Metrics) IncUpstreamError() {
	m.upstreamErrors.Inc()
}
