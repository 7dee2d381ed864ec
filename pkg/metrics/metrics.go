// Package metrics defines the Prometheus collectors for index builds and
// searches.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	BlocksProcessed  prometheus.Counter
	TokensCounted    prometheus.Counter
	PhaseDuration    *prometheus.HistogramVec
	IndexedWords     prometheus.Gauge
	SearchesTotal    *prometheus.CounterVec
	CacheHitsTotal   prometheus.Counter
	CacheMissesTotal prometheus.Counter
}

// New creates the collectors and registers them on reg. A nil reg leaves
// them unregistered.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		BlocksProcessed: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "wordcount_blocks_processed_total",
				Help: "Total number of corpus blocks tokenized.",
			},
		),
		TokensCounted: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "wordcount_tokens_total",
				Help: "Total number of word occurrences counted.",
			},
		),
		PhaseDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "wordcount_phase_duration_seconds",
				Help:    "Duration of each pipeline phase in seconds.",
				Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
			},
			[]string{"phase"},
		),
		IndexedWords: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "wordcount_indexed_words",
				Help: "Number of distinct words in the current inverted index.",
			},
		),
		SearchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wordcount_searches_total",
				Help: "Total searches by result (hit, miss).",
			},
			[]string{"result"},
		),
		CacheHitsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "wordcount_cache_hits_total",
				Help: "Total number of posting cache hits.",
			},
		),
		CacheMissesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "wordcount_cache_misses_total",
				Help: "Total number of posting cache misses.",
			},
		),
	}

	if reg != nil {
		reg.MustRegister(
			m.BlocksProcessed,
			m.TokensCounted,
			m.PhaseDuration,
			m.IndexedWords,
			m.SearchesTotal,
			m.CacheHitsTotal,
			m.CacheMissesTotal,
		)
	}
	return m
}

func (m *Metrics) ObservePhase(phase string, seconds float64) {
	m.PhaseDuration.WithLabelValues(phase).Observe(seconds)
}

func (m *Metrics) ObserveSearch(found bool) {
	if found {
		m.SearchesTotal.WithLabelValues("hit").Inc()
	} else {
		m.SearchesTotal.WithLabelValues("miss").Inc()
	}
}

func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
