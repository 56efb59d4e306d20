package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Service-level counters, exposed on /metrics via promhttp.
var (
	BoxersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "boxing_boxers_created_total",
		Help: "Number of boxers registered.",
	})

	BoxersDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "boxing_boxers_deleted_total",
		Help: "Number of boxers removed from the registry.",
	})

	FightsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "boxing_fights_total",
		Help: "Number of fights resolved.",
	})

	RingEntries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "boxing_ring_entries_total",
		Help: "Number of successful ring entries.",
	})

	LeaderboardCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "boxing_leaderboard_cache_hits_total",
		Help: "Leaderboard reads served from Redis.",
	})

	LeaderboardCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "boxing_leaderboard_cache_misses_total",
		Help: "Leaderboard reads that fell through to Postgres.",
	})

	RandomFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "boxing_random_fallbacks_total",
		Help: "Fight draws that used the local PRNG after a random.org failure.",
	})
)
