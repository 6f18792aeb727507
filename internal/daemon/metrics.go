package daemon

import "github.com/prometheus/client_golang/prometheus"

var (
	daemonState = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "ollamaapi",
			Subsystem: "daemon",
			Name:      "state",
			Help:      "Current daemon state (1 for the active state)",
		},
		[]string{"state"},
	)

	daemonStartsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ollamaapi",
			Subsystem: "daemon",
			Name:      "starts_total",
			Help:      "Daemon launch attempts by result",
		},
		[]string{"result"},
	)

	daemonProbesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ollamaapi",
			Subsystem: "daemon",
			Name:      "probes_total",
			Help:      "Daemon liveness probes by result",
		},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(daemonState, daemonStartsTotal, daemonProbesTotal)
}

func recordState(s State) {
	for _, v := range []State{StateNotRunning, StateStarting, StateReady} {
		val := 0.0
		if v == s {
			val = 1
		}
		daemonState.WithLabelValues(string(v)).Set(val)
	}
}
