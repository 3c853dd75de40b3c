package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор Prometheus коллекторов сервиса
// Все методы безопасны для nil-получателя: если метрики выключены, вызовы игнорируются
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration *prometheus.HistogramVec
	dbQueryErrors   *prometheus.CounterVec
	dbConnections   *prometheus.GaugeVec

	quotesCalculated   *prometheus.CounterVec
	occupancyChecks    *prometheus.CounterVec
	occupancyConflicts prometheus.Counter
	suggestionsServed  prometheus.Histogram
}

// New создает коллекторы и регистрирует их в глобальном регистре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает коллекторы и регистрирует их в переданном регистре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),
		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		dbQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_query_errors_total",
			Help:        "Total number of failed database queries",
			ConstLabels: constLabels,
		}, []string{"operation"}),
		dbConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections",
			Help:        "Database connection pool state",
			ConstLabels: constLabels,
		}, []string{"state"}),
		quotesCalculated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "quotes_calculated_total",
			Help:        "Total number of persisted quotes by cost band",
			ConstLabels: constLabels,
		}, []string{"cost_band"}),
		occupancyChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "occupancy_checks_total",
			Help:        "Total number of occupancy checks by outcome",
			ConstLabels: constLabels,
		}, []string{"occupied"}),
		occupancyConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "occupancy_conflicts_total",
			Help:        "Total number of rejected booking confirmations",
			ConstLabels: constLabels,
		}),
		suggestionsServed: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "structure_suggestions_returned",
			Help:        "Number of structures returned per suggestion request",
			ConstLabels: constLabels,
			Buckets:     []float64{0, 1, 3, 5, 10, 20, 50},
		}),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.dbQueryDuration,
		m.dbQueryErrors,
		m.dbConnections,
		m.quotesCalculated,
		m.occupancyChecks,
		m.occupancyConflicts,
		m.suggestionsServed,
	)

	return m
}

// ObserveHTTPRequest записывает результат HTTP запроса
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveDBQuery записывает длительность запроса к БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		m.dbQueryErrors.WithLabelValues(operation).Inc()
	}
}

// SetDBConnections обновляет состояние пула соединений
func (m *Metrics) SetDBConnections(open, inUse, idle int) {
	if m == nil {
		return
	}
	m.dbConnections.WithLabelValues("open").Set(float64(open))
	m.dbConnections.WithLabelValues("in_use").Set(float64(inUse))
	m.dbConnections.WithLabelValues("idle").Set(float64(idle))
}

// IncQuoteCalculated увеличивает счетчик рассчитанных смет
func (m *Metrics) IncQuoteCalculated(costBand string) {
	if m == nil {
		return
	}
	if costBand == "" {
		costBand = "unknown"
	}
	m.quotesCalculated.WithLabelValues(costBand).Inc()
}

// IncOccupancyCheck увеличивает счетчик проверок занятости
func (m *Metrics) IncOccupancyCheck(occupied bool) {
	if m == nil {
		return
	}
	m.occupancyChecks.WithLabelValues(strconv.FormatBool(occupied)).Inc()
}

// IncOccupancyConflict увеличивает счетчик отклоненных подтверждений
func (m *Metrics) IncOccupancyConflict() {
	if m == nil {
		return
	}
	m.occupancyConflicts.Inc()
}

// ObserveSuggestions записывает количество предложенных структур
func (m *Metrics) ObserveSuggestions(count int) {
	if m == nil {
		return
	}
	m.suggestionsServed.Observe(float64(count))
}
