// Package metrics provides application-level metrics collection.
// Counters are kept both as atomics, for cheap in-process snapshots, and as
// Prometheus collectors in a private registry served on /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	addrerr "github.com/mrz1836/addrgen/pkg/errors"
)

// Operation names used as the "operation" label.
const (
	OpValidateMnemonic       = "validate_mnemonic"
	OpValidatePath           = "validate_path"
	OpValidateMultisigPolicy = "validate_multisig_policy"
	OpDeriveSegwitAddress    = "derive_segwit_address"
	OpDeriveMultisigAddress  = "derive_multisig_address"
)

// Outcome labels.
const (
	OutcomeOK       = "ok"
	OutcomeInvalid  = "invalid"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// Metrics holds application metrics. It is safe for concurrent use.
type Metrics struct {
	// Operation metrics
	opsTotal     atomic.Int64
	opsErrors    atomic.Int64
	opsLatencyNs atomic.Int64

	// Derivation metrics
	derivationsTotal   atomic.Int64
	derivationFailures atomic.Int64

	// HTTP metrics
	httpRequestsTotal atomic.Int64

	registry     *prometheus.Registry
	operations   *prometheus.CounterVec
	durations    *prometheus.HistogramVec
	httpRequests *prometheus.CounterVec
}

// New creates a Metrics with its own Prometheus registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "addrgen_operations_total",
				Help: "Number of address operations by outcome.",
			},
			[]string{"operation", "outcome"}),
		durations: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "addrgen_operation_duration_seconds",
				Help:    "Time spent in address operations.",
				Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
			},
			[]string{"operation"}),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "addrgen_http_requests_total",
				Help: "Number of HTTP requests by route and status code.",
			},
			[]string{"route", "code"}),
	}

	m.registry.MustRegister(m.operations, m.durations, m.httpRequests)
	return m
}

// Global is the global metrics instance.
// Use this for recording metrics throughout the application.
//
//nolint:gochecknoglobals // Intentional global for metrics access
var Global = New()

// Outcome maps an operation error to its outcome label.
func Outcome(err error) string {
	if err == nil {
		return OutcomeOK
	}
	switch addrerr.KindOf(err) {
	case addrerr.KindValidation, addrerr.KindInput:
		return OutcomeInvalid
	case addrerr.KindDerivation:
		if addrerr.Is(err, addrerr.ErrDerivationRejected) {
			return OutcomeRejected
		}
		return OutcomeFailed
	case addrerr.KindGeneral:
		return OutcomeFailed
	default:
		return OutcomeFailed
	}
}

// RecordOperation records one address operation with its duration and error.
func (m *Metrics) RecordOperation(operation string, duration time.Duration, err error) {
	outcome := Outcome(err)

	m.opsTotal.Add(1)
	m.opsLatencyNs.Add(duration.Nanoseconds())
	if err != nil {
		m.opsErrors.Add(1)
	}

	switch operation {
	case OpDeriveSegwitAddress, OpDeriveMultisigAddress:
		m.derivationsTotal.Add(1)
		if outcome == OutcomeFailed {
			m.derivationFailures.Add(1)
		}
	}

	m.operations.WithLabelValues(operation, outcome).Inc()
	m.durations.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordHTTPRequest records a served HTTP request.
func (m *Metrics) RecordHTTPRequest(route string, code int) {
	m.httpRequestsTotal.Add(1)
	m.httpRequests.WithLabelValues(route, strconv.Itoa(code)).Inc()
}

// Registry returns the Prometheus registry the collectors are registered in.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Snapshot is a point-in-time copy of the atomic counters.
type Snapshot struct {
	OperationsTotal    int64
	OperationErrors    int64
	OperationLatencyNs int64
	DerivationsTotal   int64
	DerivationFailures int64
	HTTPRequestsTotal  int64
}

// Snapshot returns a point-in-time copy of all metrics.
func (m *Metrics) Snapshot() Snapshot {
	return Snapshot{
		OperationsTotal:    m.opsTotal.Load(),
		OperationErrors:    m.opsErrors.Load(),
		OperationLatencyNs: m.opsLatencyNs.Load(),
		DerivationsTotal:   m.derivationsTotal.Load(),
		DerivationFailures: m.derivationFailures.Load(),
		HTTPRequestsTotal:  m.httpRequestsTotal.Load(),
	}
}

// LatencyAvgMs returns the average operation latency in milliseconds.
// Returns 0 if no operations have been recorded.
func (m *Metrics) LatencyAvgMs() float64 {
	ops := m.opsTotal.Load()
	if ops == 0 {
		return 0
	}
	return float64(m.opsLatencyNs.Load()) / float64(ops) / 1e6
}

