package astar

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
)

// Result labels for gridpath_search_total.
const (
	resultFound        = "found"
	resultNotFound     = "not_found"
	resultLimit        = "limit"
	resultCanceled     = "canceled"
	resultPrecondition = "precondition"
)

var tracer = otel.Tracer("github.com/katalvlaran/gridpath/astar")

var (
	// searchTotal counts searches by outcome.
	searchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gridpath_search_total",
		Help: "Total A* searches by result",
	}, []string{"result"})

	// searchExpanded tracks how many cells each search expanded.
	searchExpanded = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gridpath_search_expanded_cells",
		Help:    "Cells expanded per A* search",
		Buckets: prometheus.ExponentialBuckets(1, 2, 16), // 1 to 32768
	})

	// searchDuration tracks wall time per search.
	searchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gridpath_search_duration_seconds",
		Help:    "A* search duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 2, 16), // 10µs to ~0.3s
	})
)

// resultLabel classifies the outcome of a search run.
func resultLabel(err error) string {
	switch {
	case err == nil:
		return resultFound
	case errors.Is(err, ErrPrecondition), errors.Is(err, ErrOptionViolation):
		return resultPrecondition
	case errors.Is(err, ErrExpansionLimit):
		return resultLimit
	case errors.Is(err, ErrNotFound):
		return resultNotFound
	default:
		return resultCanceled
	}
}

func observe(expanded int, elapsed time.Duration, err error) {
	searchTotal.WithLabelValues(resultLabel(err)).Inc()
	if errors.Is(err, ErrPrecondition) || errors.Is(err, ErrOptionViolation) {
		return
	}
	searchExpanded.Observe(float64(expanded))
	searchDuration.Observe(elapsed.Seconds())
}
