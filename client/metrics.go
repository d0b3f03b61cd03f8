package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "journal_client",
			Name:      "requests_total",
			Help:      "API operations started by the client.",
		},
		[]string{"operation"},
	)

	failuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "journal_client",
			Name:      "request_failures_total",
			Help:      "API operations that failed after retries, by error category.",
		},
		[]string{"operation", "category"},
	)
)
