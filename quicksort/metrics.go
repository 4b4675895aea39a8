package quicksort

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sortsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Namespace: "amp",
		Subsystem: "quicksort",
		Name:      "sorts_total",
		Help:      "Total number of quicksort calls, including empty and single-element input, by execution strategy",
	}, []string{"strategy"})

	elementsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Namespace: "amp",
		Subsystem: "quicksort",
		Name:      "elements_total",
		Help:      "Total number of elements passed to quicksort, by execution strategy",
	}, []string{"strategy"})

	partitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Namespace: "amp",
		Subsystem: "quicksort",
		Name:      "partitions_total",
		Help:      "Total number of partition passes, by execution strategy",
	}, []string{"strategy"})

	failuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Namespace: "amp",
		Subsystem: "quicksort",
		Name:      "failures_total",
		Help:      "Total number of quicksort calls that returned an error, by execution strategy",
	}, []string{"strategy"})

	sortDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Namespace: "amp",
		Subsystem: "quicksort",
		Name:      "duration_seconds",
		Help:      "Wall time of quicksort calls, by execution strategy",
		Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 12), //nolint:mnd
	}, []string{"strategy"})
)
