// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ledger_faucet"

var (
	selectorProbeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "node_selector",
		Name:      "probes_total",
		Help:      "Count of node liveness probes.",
	}, []string{"node", "status"})

	selectorProbeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "node_selector",
		Name:      "probe_duration_seconds",
		Help:      "Duration of node liveness probes.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2, 5},
	}, []string{"node", "status"})

	selectorSelectTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "node_selector",
		Name:      "selections_total",
		Help:      "Count of node selections.",
	}, []string{"status"})

	selectorSelectProbes = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "node_selector",
		Name:      "probes_per_selection",
		Help:      "Number of probes issued per selection.",
		Buckets:   prometheus.LinearBuckets(1, 1, 10),
	})
)

// NodeSelector tracks liveness probing and node selection.
type NodeSelector struct{}

// NewNodeSelector creates a NodeSelector metrics collector.
func NewNodeSelector() *NodeSelector {
	return &NodeSelector{}
}

// ObserveProbe records one liveness probe against node.
func (m NodeSelector) ObserveProbe(node string, alive bool, started time.Time) {
	status := "alive"
	if !alive {
		status = "down"
	}
	if node == "" {
		node = "unknown"
	}
	selectorProbeTotal.WithLabelValues(node, status).Inc()
	selectorProbeDuration.WithLabelValues(node, status).Observe(time.Since(started).Seconds())
}

// ObserveSelect records a selection outcome and how many probes it took.
func (m NodeSelector) ObserveSelect(err error, probes int) {
	status := "success"
	if err != nil {
		status = "error"
	}
	selectorSelectTotal.WithLabelValues(status).Inc()
	selectorSelectProbes.Observe(float64(probes))
}
