// Package metrics defines the Prometheus metrics of the backend client and the
// token store. Gateway HTTP metrics come from echoprometheus. Metrics are registered on the default registry at init
// through promauto.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "castmate"

// ── API client ───────────────────────────────────────────────────────────────

// ClientRequestsTotal counts backend calls.
// Labels:
//   - operation: logical call name (e.g. "login", "fetch_castings")
//   - outcome: "ok" or the error kind (e.g. "request_failed", "network_failure")
var ClientRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "client",
		Name:      "requests_total",
		Help:      "Total number of backend API calls, by operation and outcome.",
	},
	[]string{"operation", "outcome"},
)

// ClientRequestDuration measures backend call latency including decoding.
var ClientRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "client",
		Name:      "request_duration_seconds",
		Help:      "Duration of backend API calls from send to decoded result.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"operation"},
)

// ── Session ──────────────────────────────────────────────────────────────────

// TokenStoreOpsTotal counts token persistence operations.
// Labels:
//   - op: "get", "set", "clear"
//   - result: "ok", "miss", "error"
var TokenStoreOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "session",
		Name:      "token_store_ops_total",
		Help:      "Token store operations, by operation and result.",
	},
	[]string{"op", "result"},
)

// ObserveClientRequest records one backend call.
func ObserveClientRequest(operation, outcome string, d time.Duration) {
	if operation == "" {
		operation = "unnamed"
	}
	ClientRequestsTotal.WithLabelValues(operation, outcome).Inc()
	ClientRequestDuration.WithLabelValues(operation).Observe(d.Seconds())
}
