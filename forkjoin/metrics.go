package forkjoin

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	modeSpawned = "spawned"
	modeStolen  = "stolen"
	modeInline  = "inline"

	spawnPoolLabel = "spawn"
)

var (
	poolAlive = promauto.NewGaugeVec(prometheus.GaugeOpts{ //nolint:gochecknoglobals
		Name: "forkjoin_pool_alive",
		Help: "1 if the fork-join pool is accepting work",
	}, []string{"pool"})

	poolWorkers = promauto.NewGaugeVec(prometheus.GaugeOpts{ //nolint:gochecknoglobals
		Name: "forkjoin_pool_workers",
		Help: "The maximum number of workers in the fork-join pool",
	}, []string{"pool"})

	forks = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "forkjoin_forks_total",
		Help: "The total number of forked tasks, by how they were executed",
	}, []string{"pool", "mode"})

	panics = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "forkjoin_panics_total",
		Help: "The total number of panics recovered from forked tasks",
	}, []string{"pool"})

	spawnedForks = forks.WithLabelValues(spawnPoolLabel, modeSpawned) //nolint:gochecknoglobals
	spawnPanics  = panics.WithLabelValues(spawnPoolLabel)             //nolint:gochecknoglobals
)
