package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SearchMetrics tracks per-adapter search outcomes.
type SearchMetrics struct {
	searches *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewSearchMetrics(reg prometheus.Registerer) *SearchMetrics {
	factory := promauto.With(reg)

	return &SearchMetrics{
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pricecrawl",
			Name:      "adapter_searches_total",
			Help:      "Adapter search invocations by terminal outcome.",
		}, []string{"adapter", "outcome"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pricecrawl",
			Name:      "adapter_search_duration_seconds",
			Help:      "Wall-clock duration of adapter search invocations.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"adapter"}),
	}
}

// ObserveSearch records one adapter invocation. nil err counts as success;
// deadline expiry is labeled separately from other failures.
func (m *SearchMetrics) ObserveSearch(adapter string, err error, elapsed time.Duration) {
	outcome := "success"
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		outcome = "timeout"
	case err != nil:
		outcome = "failure"
	}

	m.searches.WithLabelValues(adapter, outcome).Inc()
	m.duration.WithLabelValues(adapter).Observe(elapsed.Seconds())
}
