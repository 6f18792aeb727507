package manager

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	upstreamRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ollamaapi",
			Subsystem: "upstream",
			Name:      "requests_total",
			Help:      "Daemon API calls by operation and result",
		},
		[]string{"op", "result"},
	)

	upstreamRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "ollamaapi",
			Subsystem: "upstream",
			Name:      "request_duration_seconds",
			Help:      "Duration of daemon API calls in seconds",
			// Generation and pulls run far longer than the default buckets.
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 14),
		},
		[]string{"op"},
	)
)

func init() {
	prometheus.MustRegister(upstreamRequestsTotal, upstreamRequestDuration)
}

func observe(op string, start time.Time, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	upstreamRequestsTotal.WithLabelValues(op, result).Inc()
	upstreamRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
