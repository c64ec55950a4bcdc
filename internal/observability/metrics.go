package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	ApiRequestsTotal   *prometheus.CounterVec
	ApiRequestDuration *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ApiRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "userdesk",
				Subsystem: "api_client",
				Name:      "requests_total",
				Help:      "Requests sent to the users API by operation and outcome.",
			},
			[]string{"op", "outcome"}, // outcome=ok|error
		),
		ApiRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "userdesk",
				Subsystem: "api_client",
				Name:      "request_duration_seconds",
				Help:      "Users API request latency by operation.",
				Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
			},
			[]string{"op"},
		),
	}
	reg.MustRegister(m.ApiRequestsTotal, m.ApiRequestDuration)
	return m
}
