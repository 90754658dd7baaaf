// Package metrics exposes Prometheus metrics for the MCP server.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace = "tracker"
	subsystem = "mcp"
)

var (
	toolCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "tool_calls_total",
		Help:      "Tool invocations by tool name and outcome.",
	}, []string{"tool", "status"})

	toolLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "tool_call_duration_seconds",
		Help:      "Tool call latency by tool name.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"tool"})

	snapshotRows = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "snapshot",
		Name:      "rows",
		Help:      "Row count of the most recently served snapshot, by kind.",
	}, []string{"kind"})

	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by path.",
	}, []string{"path"})
)

// ObserveToolCall records one tool invocation.
func ObserveToolCall(tool string, err error, elapsed time.Duration) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	toolCalls.WithLabelValues(tool, status).Inc()
	toolLatency.WithLabelValues(tool).Observe(elapsed.Seconds())
}

// SetSnapshotRows tracks how many rows the named snapshot kind carried.
func SetSnapshotRows(kind string, n int) {
	snapshotRows.WithLabelValues(kind).Set(float64(n))
}

// CountRequest increments the per-path request counter.
func CountRequest(path string) {
	httpRequests.WithLabelValues(path).Inc()
}

// Handler serves the Prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
