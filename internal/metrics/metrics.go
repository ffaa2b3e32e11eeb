// Package metrics holds the Prometheus collectors of the analytics service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SnapshotDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "analytics_snapshot_duration_seconds",
			Help:    "Time to compute one analytics snapshot",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"outcome"}, // "ok", "invalid_argument", "unavailable"
	)

	FetchErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_fetch_errors_total",
			Help: "Failed store reads by operation",
		},
		[]string{"operation"},
	)

	DataQualityWarnings = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "analytics_data_quality_warnings_total",
			Help: "Order records or line items skipped during reduction",
		},
	)

	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "analytics_snapshot_cache_hits_total",
			Help: "Snapshot cache hits",
		},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "analytics_snapshot_cache_misses_total",
			Help: "Snapshot cache misses",
		},
	)

	CacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "analytics_snapshot_cache_entries",
			Help: "Snapshots currently cached",
		},
	)
)
