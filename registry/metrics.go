package registry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Call status label values.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Metrics tracks tool call counts and durations.
type Metrics struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates and registers the registry's collectors.
// A nil registerer uses the default prometheus registerer.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tool_calls_total",
			Help: "Total tool calls by tool name and status.",
		}, []string{"tool", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tool_call_duration_seconds",
			Help:    "Tool call duration by tool name.",
			Buckets: prometheus.DefBuckets,
		}, []string{"tool"}),
	}

	registerer.MustRegister(m.calls, m.duration)
	return m
}

func (m *Metrics) observe(tool, status string, elapsed time.Duration) {
	m.calls.WithLabelValues(tool, status).Inc()
	m.duration.WithLabelValues(tool).Observe(elapsed.Seconds())
}
