package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ResolutionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mau",
		Subsystem: "resolver",
		Name:      "resolutions_total",
		Help:      "Update metadata resolutions by product and outcome.",
	}, []string{"product", "outcome"})

	FeedFetchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "mau",
		Subsystem: "feed",
		Name:      "fetch_duration_seconds",
		Help:      "Time spent fetching the vendor feed.",
		Buckets:   prometheus.DefBuckets,
	})
)
