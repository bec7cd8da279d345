package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	faucetTransferTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "faucet",
		Name:      "transfers_total",
		Help:      "Count of transfer requests by result.",
	}, []string{"result"})

	faucetTransferDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "faucet",
		Name:      "transfer_duration_seconds",
		Help:      "Duration of transfer orchestration from gate to submission.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"result"})

	faucetConfirmTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "faucet",
		Name:      "confirmations_total",
		Help:      "Count of confirmation requests by outcome.",
	}, []string{"outcome"})

	faucetConfirmAttempts = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "faucet",
		Name:      "confirmation_attempts",
		Help:      "Number of status polls per confirmation.",
		Buckets:   prometheus.LinearBuckets(1, 1, 10),
	}, []string{"outcome"})
)

// Faucet tracks transfer and confirmation outcomes.
type Faucet struct{}

// NewFaucet creates a Faucet metrics collector.
func NewFaucet() *Faucet {
	return &Faucet{}
}

// ObserveTransfer records the result class of one transfer request.
func (m Faucet) ObserveTransfer(result string, started time.Time) {
	if result == "" {
		result = "unknown"
	}
	faucetTransferTotal.WithLabelValues(result).Inc()
	faucetTransferDuration.WithLabelValues(result).Observe(time.Since(started).Seconds())
}

// ObserveConfirm records a confirmation outcome and the polls it took.
func (m Faucet) ObserveConfirm(outcome string, attempts int) {
	if outcome == "" {
		outcome = "error"
	}
	faucetConfirmTotal.WithLabelValues(outcome).Inc()
	faucetConfirmAttempts.WithLabelValues(outcome).Observe(float64(attempts))
}
