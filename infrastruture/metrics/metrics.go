// Package metrics exports search statistics to Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	outcomeSolved     = "solved"
	outcomeNoSolution = "no_solution"
)

var (
	// searchTotal counts finished searches by strategy and outcome
	searchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vacuum_search_total",
		Help: "Total finished searches by strategy and outcome",
	}, []string{"strategy", "outcome"})

	// nodesGenerated tracks the generated node count per search
	nodesGenerated = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "vacuum_search_nodes_generated",
		Help:    "Nodes generated per search",
		Buckets: prometheus.ExponentialBuckets(1, 4, 12),
	}, []string{"strategy"})

	// nodesExpanded tracks the expanded node count per search
	nodesExpanded = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "vacuum_search_nodes_expanded",
		Help:    "Nodes expanded per search",
		Buckets: prometheus.ExponentialBuckets(1, 4, 12),
	}, []string{"strategy"})

	// planLength tracks the length of returned plans
	planLength = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "vacuum_search_plan_length",
		Help:    "Length of solved plans",
		Buckets: prometheus.ExponentialBuckets(1, 2, 10),
	}, []string{"strategy"})

	// searchDuration tracks wall time per search
	searchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "vacuum_search_duration_seconds",
		Help:    "Search duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
	}, []string{"strategy"})
)

// ObserveSearch records one finished search.
func ObserveSearch(strategy string, solved bool, generated, expanded, length int, d time.Duration) {
	outcome := outcomeNoSolution
	if solved {
		outcome = outcomeSolved
		planLength.WithLabelValues(strategy).Observe(float64(length))
	}
	searchTotal.WithLabelValues(strategy, outcome).Inc()
	nodesGenerated.WithLabelValues(strategy).Observe(float64(generated))
	nodesExpanded.WithLabelValues(strategy).Observe(float64(expanded))
	searchDuration.WithLabelValues(strategy).Observe(d.Seconds())
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
