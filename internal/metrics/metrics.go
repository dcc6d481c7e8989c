// Package metrics holds the service's prometheus instruments.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EventsIngested = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "usage_events_ingested_total",
			Help: "Total number of usage events accepted and persisted",
		},
	)

	EventsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "usage_events_rejected_total",
			Help: "Total number of ingestion requests rejected before persistence",
		},
		[]string{"reason"}, // "unauthorized", "invalid", "error"
	)

	OverviewRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "usage_overview_requests_total",
			Help: "Total number of overview computations served",
		},
		[]string{"scope"}, // "project", "all"
	)

	OverviewDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "usage_overview_duration_seconds",
			Help:    "Duration of overview computations in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)
