// Package metrics exposes the gateway's Prometheus series on a dedicated
// registry. All record methods are safe on a nil *Metrics.
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/dmitrijs2005/gatewayauth/internal/common"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Auth operation results used as the "result" label.
const (
	ResultOK           = "ok"
	ResultInvalidInput = "invalid_input"
	ResultConflict     = "conflict"
	ResultUnauthorized = "unauthorized"
	ResultError        = "error"
)

// Metrics contains gateway metrics.
type Metrics struct {
	registry *prometheus.Registry

	// authOperations counts AuthService calls by operation and result.
	authOperations *prometheus.CounterVec

	// httpDuration measures REST request duration.
	httpDuration *prometheus.HistogramVec

	// grpcDuration measures gRPC request duration.
	grpcDuration *prometheus.HistogramVec
}

// New creates the gateway metrics under namespace and registers them, along
// with the Go runtime and process collectors, on a fresh registry. uptime,
// if non-nil, backs the uptime_seconds gauge.
func New(namespace string, uptime func() float64) *Metrics {
	if namespace == "" {
		namespace = "gateway"
	}

	m := &Metrics{registry: prometheus.NewRegistry()}

	m.authOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_operations_total",
			Help:      "Total number of authentication operations",
		},
		[]string{"operation", "result"},
	)

	m.httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"method", "route", "status"},
	)

	m.grpcDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "grpc_request_duration_seconds",
			Help:      "gRPC request duration in seconds",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"method", "code"},
	)

	m.registry.MustRegister(
		m.authOperations,
		m.httpDuration,
		m.grpcDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	if uptime != nil {
		m.registry.MustRegister(prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "uptime_seconds",
				Help:      "Seconds since the gateway started",
			},
			uptime,
		))
	}

	return m
}

// Registry returns the registry holding all gateway series.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RecordAuth counts one AuthService call; err is classified into a result.
func (m *Metrics) RecordAuth(operation string, err error) {
	if m == nil || m.authOperations == nil {
		return
	}
	m.authOperations.WithLabelValues(operation, Result(err)).Inc()
}

// ObserveHTTP records one REST request.
func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	if m == nil || m.httpDuration == nil {
		return
	}
	m.httpDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}

// ObserveGRPC records one gRPC request.
func (m *Metrics) ObserveGRPC(method, code string, d time.Duration) {
	if m == nil || m.grpcDuration == nil {
		return
	}
	m.grpcDuration.WithLabelValues(method, code).Observe(d.Seconds())
}

// Result maps a service error to a metric label value.
func Result(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, common.ErrorInvalidInput):
		return ResultInvalidInput
	case errors.Is(err, common.ErrorConflict):
		return ResultConflict
	case errors.Is(err, common.ErrorUnauthorized):
		return ResultUnauthorized
	default:
		return ResultError
	}
}
