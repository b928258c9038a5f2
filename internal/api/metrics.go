package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the prometheus counters for the notifier.
type Metrics struct {
	// Deliveries counts email delivery attempts by outcome ("sent", "failed").
	Deliveries *prometheus.CounterVec
	// Rejected counts requests refused before any delivery attempt,
	// by reason ("method", "config").
	Rejected *prometheus.CounterVec
}

// NewMetrics registers the notifier counters on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Deliveries: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "notifier_deliveries_total",
			Help: "Email delivery attempts by outcome.",
		}, []string{"status"}),
		Rejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "notifier_requests_rejected_total",
			Help: "Requests rejected before a delivery attempt, by reason.",
		}, []string{"reason"}),
	}
}
