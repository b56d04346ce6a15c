// Package metrics provides the centralized Prometheus registry for the
// prop parlay service.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	SlatesGradedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "prop_parlay",
		Name:      "slates_graded_total",
		Help:      "Total number of game slates graded",
	})
	LegsMatchedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "prop_parlay",
		Name:      "legs_matched_total",
		Help:      "Total number of prop lines matched to predictions",
	})
	PropsDroppedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "prop_parlay",
		Name:      "props_dropped_total",
		Help:      "Total number of prop lines dropped (one-sided or no prediction)",
	})
	ParlaysBuiltTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "prop_parlay",
		Name:      "parlays_built_total",
		Help:      "Total number of parlay variants built and priced",
	})
	SlateCacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "prop_parlay",
		Name:      "slate_cache_hits_total",
		Help:      "Total number of slate cache hits",
	})
	SlateCacheMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "prop_parlay",
		Name:      "slate_cache_misses_total",
		Help:      "Total number of slate cache misses",
	})
	FeedErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "prop_parlay",
		Name:      "feed_errors_total",
		Help:      "Total number of upstream feed errors by feed name",
	}, []string{"feed"})
)

// Gauge metrics
var (
	CachedSlates = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "prop_parlay",
		Name:      "cached_slates",
		Help:      "Number of slates currently cached",
	})
	LastRefreshLegs = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "prop_parlay",
		Name:      "last_refresh_legs",
		Help:      "Number of graded legs produced by the most recent refresh of each game",
	}, []string{"game_id"})
)

// Histogram metrics
var (
	SlateGradingDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "prop_parlay",
		Name:      "slate_grading_duration_seconds",
		Help:      "Duration of a full grade-and-price run for one game",
		Buckets:   prometheus.DefBuckets,
	})
	FeedFetchDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "prop_parlay",
		Name:      "feed_fetch_duration_seconds",
		Help:      "Duration of upstream feed fetches by feed name",
		Buckets:   prometheus.DefBuckets,
	}, []string{"feed"})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(SlatesGradedTotal)
		registry.MustRegister(LegsMatchedTotal)
		registry.MustRegister(PropsDroppedTotal)
		registry.MustRegister(ParlaysBuiltTotal)
		registry.MustRegister(SlateCacheHitsTotal)
		registry.MustRegister(SlateCacheMissesTotal)
		registry.MustRegister(FeedErrorsTotal)

		registry.MustRegister(CachedSlates)
		registry.MustRegister(LastRefreshLegs)

		registry.MustRegister(SlateGradingDuration)
		registry.MustRegister(FeedFetchDuration)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}
