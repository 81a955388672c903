// Package engine - Prometheus instrumentation.
package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for the admixture engine.
var (
	// SearchesTotal counts model searches by outcome ("ok" or "error").
	SearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admix_searches_total",
			Help: "Total number of admixture model searches by outcome",
		},
		[]string{"outcome"},
	)

	// SolverInvocationsTotal counts individual least-squares solves across
	// all searches.
	SolverInvocationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "admix_solver_invocations_total",
			Help: "Total number of proportion solver invocations",
		},
	)

	// SearchDurationSeconds observes wall-clock search duration.
	SearchDurationSeconds = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "admix_search_duration_seconds",
			Help:    "Wall-clock duration of admixture model searches",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		},
	)

	// DegenerateFitsTotal counts per-order winners whose fit clipped to the
	// all-zero proportions (unreliable models surfaced to the caller).
	DegenerateFitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "admix_degenerate_fits_total",
			Help: "Total number of winning fits with all-zero proportions",
		},
	)

	// TableSwapsTotal counts snapshot replacements by table.
	TableSwapsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admix_table_swaps_total",
			Help: "Total number of snapshot table replacements",
		},
		[]string{"table"},
	)
)
