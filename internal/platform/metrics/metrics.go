// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "clinic_cash"

// Entry kinds used as the "kind" label of EntriesSaved.
const (
	KindOperation = "operation"
	KindRegister  = "register"
	KindManual    = "manual"
)

var (
	// EntriesSaved counts persisted entries by kind.
	EntriesSaved = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entries_saved_total",
		Help:      "Cash-register entries persisted, by kind.",
	}, []string{"kind"})

	// StatementsBuilt counts liquidation statements computed.
	StatementsBuilt = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "statements_built_total",
		Help:      "Professional liquidation statements computed.",
	})

	// HTTPRequestDuration observes request latency by route template and status.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)
