package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "loopline_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "loopline_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// LikeToggles counts like toggles by outcome (liked / unliked).
	LikeToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "loopline_like_toggles_total",
		Help: "Total number of like toggles by resulting state",
	}, []string{"result"})

	// FeedPagesServed counts feed page requests by viewer kind.
	FeedPagesServed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "loopline_feed_pages_served_total",
		Help: "Total number of feed pages served",
	}, []string{"viewer"})
)

// ObserveQuery records the latency of a database query.
func ObserveQuery(operation, table string, start time.Time) {
	DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
}
