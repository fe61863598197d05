package search

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// searchRunsTotal counts completed searches by strategy and result
	searchRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "search_runs_total",
		Help: "Total completed searches by strategy and result",
	}, []string{"strategy", "result"})

	// searchExpandedNodes tracks how many nodes a search expanded
	searchExpandedNodes = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "search_expanded_nodes",
		Help:    "Number of nodes expanded per search",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10), // 1 to ~260k
	}, []string{"strategy"})

	// searchDuration tracks search latency
	searchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "search_duration_seconds",
		Help:    "Search duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
	}, []string{"strategy"})

	// searchErrorsTotal counts rejected or aborted searches by error type
	searchErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "search_errors_total",
		Help: "Total searches rejected or aborted by error type",
	}, []string{"strategy", "error_type"})
)

func recordRun(strategy Strategy, found bool, expanded int, elapsed time.Duration) {
	result := "found"
	if !found {
		result = "no_path"
	}
	searchRunsTotal.WithLabelValues(strategy.String(), result).Inc()
	searchExpandedNodes.WithLabelValues(strategy.String()).Observe(float64(expanded))
	searchDuration.WithLabelValues(strategy.String()).Observe(elapsed.Seconds())
}

func recordError(strategy Strategy, err error) {
	errorType := "other"
	switch {
	case errors.Is(err, ErrNilProblem):
		errorType = "nil_problem"
	case errors.Is(err, ErrNegativeCost):
		errorType = "negative_cost"
	case errors.Is(err, ErrUnknownStrategy):
		errorType = "unknown_strategy"
	}
	searchErrorsTotal.WithLabelValues(strategy.String(), errorType).Inc()
}
