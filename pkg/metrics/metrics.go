package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds every collector exported by the service. All methods are
// safe to call on a nil *Metrics, which records nothing.
type Metrics struct {
	// HTTP request metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	StatusCategoryTotal *prometheus.CounterVec

	// Authentication metrics
	AuthSuccessTotal prometheus.Counter
	AuthErrorsTotal  *prometheus.CounterVec

	// Database operation metrics
	DBOperationDuration *prometheus.HistogramVec

	// Record metrics
	RecordOperationsTotal *prometheus.CounterVec
	InventoryOnHand       *prometheus.GaugeVec
}

// New creates the collectors with the given name prefix and registers them on reg
func New(prefix string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		StatusCategoryTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_http_status_category_total",
				Help: "Total number of responses by status category (2xx, 4xx, 5xx)",
			},
			[]string{"category"},
		),
		AuthSuccessTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: prefix + "_auth_success_total",
				Help: "Total number of successful authentications",
			},
		),
		AuthErrorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_auth_errors_total",
				Help: "Total number of authentication errors",
			},
			[]string{"reason"},
		),
		DBOperationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_db_operation_duration_seconds",
				Help:    "Duration of database operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation_type"},
		),
		RecordOperationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_record_operations_total",
				Help: "Total number of record operations by entity",
			},
			[]string{"entity", "operation"},
		),
		InventoryOnHand: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: prefix + "_inventory_on_hand",
				Help: "Current quantity on hand per inventory item",
			},
			[]string{"inventory_item_id", "sku"},
		),
	}
}

// ObserveHTTP records one served request
func (m *Metrics) ObserveHTTP(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	statusStr := strconv.Itoa(status)
	m.HTTPRequestsTotal.WithLabelValues(method, path, statusStr).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path, statusStr).Observe(duration.Seconds())

	if category := statusCategory(status); category != "" {
		m.StatusCategoryTotal.WithLabelValues(category).Inc()
	}
}

func statusCategory(status int) string {
	switch {
	case status >= 200 && status < 300:
		return "2xx"
	case status >= 400 && status < 500:
		return "4xx"
	case status >= 500 && status < 600:
		return "5xx"
	default:
		return ""
	}
}

// RecordAuthSuccess counts an accepted bearer token
func (m *Metrics) RecordAuthSuccess() {
	if m == nil {
		return
	}
	m.AuthSuccessTotal.Inc()
}

// RecordAuthError counts a rejected request by reason
func (m *Metrics) RecordAuthError(reason string) {
	if m == nil {
		return
	}
	m.AuthErrorsTotal.WithLabelValues(reason).Inc()
}

// TrackDBOperation returns a function that records the duration of a database operation
func (m *Metrics) TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		if m == nil {
			return
		}
		m.DBOperationDuration.WithLabelValues(operationType).Observe(time.Since(startTime).Seconds())
	}
}

// RecordOperation increments the counter for entity operations
func (m *Metrics) RecordOperation(entity, operation string) {
	if m == nil {
		return
	}
	m.RecordOperationsTotal.WithLabelValues(entity, operation).Inc()
}

// SetInventoryOnHand updates the on-hand gauge of one item. Any series the
// item carried under a previous SKU is dropped.
func (m *Metrics) SetInventoryOnHand(itemID uint, sku string, quantity float64) {
	if m == nil {
		return
	}
	id := strconv.FormatUint(uint64(itemID), 10)
	m.InventoryOnHand.DeletePartialMatch(prometheus.Labels{"inventory_item_id": id})
	m.InventoryOnHand.WithLabelValues(id, sku).Set(quantity)
}

// ForgetInventory drops the on-hand gauge of a deleted item
func (m *Metrics) ForgetInventory(itemID uint) {
	if m == nil {
		return
	}
	m.InventoryOnHand.DeletePartialMatch(prometheus.Labels{
		"inventory_item_id": strconv.FormatUint(uint64(itemID), 10),
	})
}

// Handler returns an HTTP handler exposing the metrics gathered by g
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
