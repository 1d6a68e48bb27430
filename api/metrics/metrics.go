package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Pack change lifecycle
	ChangeRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "packs_change_requests_total",
			Help: "Total number of pack change attempts by change type and result kind",
		},
		[]string{"change_type", "kind"},
	)

	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "packs_notifications_total",
			Help: "Total number of notifications published by type",
		},
		[]string{"type"},
	)

	NotificationsDroppedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "packs_notifications_dropped_total",
			Help: "Total number of notifications dropped for slow subscribers",
		},
	)

	CatalogCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "packs_catalog_cache_total",
			Help: "Catalog cache lookups by table and outcome",
		},
		[]string{"table", "outcome"}, // hit, miss
	)
)

// ObserveChange records one finished pack change attempt
func ObserveChange(changeType, kind string) {
	if changeType == "" {
		changeType = "unknown"
	}
	ChangeRequestsTotal.WithLabelValues(changeType, kind).Inc()
}

// ObserveNotification records a published notification
func ObserveNotification(t string) {
	NotificationsTotal.WithLabelValues(t).Inc()
}

// ObserveDroppedNotification records a notification a subscriber was too slow to receive
func ObserveDroppedNotification() {
	NotificationsDroppedTotal.Inc()
}

// ObserveCache records a catalog cache hit or miss
func ObserveCache(table string, hit bool) {
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	CatalogCacheTotal.WithLabelValues(table, outcome).Inc()
}
