package metrics

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"seoscope/internal/store"
)

var collectionSizeDesc = prometheus.NewDesc(
	"seoscope_collection_records",
	"Number of records per stored collection",
	[]string{"collection"},
	nil,
)

// StoreCollector is a custom Prometheus collector that reads collection
// sizes from the store on each scrape.
type StoreCollector struct {
	store *store.Store
}

// Describe sends the metric descriptor to the channel.
func (c *StoreCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collectionSizeDesc
}

// Collect reads every collection size and emits them as gauges.
func (c *StoreCollector) Collect(ch chan<- prometheus.Metric) {
	for name, size := range c.store.CollectionSizes(context.Background()) {
		ch <- prometheus.MustNewConstMetric(
			collectionSizeDesc,
			prometheus.GaugeValue,
			float64(size),
			name,
		)
	}
}

var (
	analysesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seoscope_analyses_total",
			Help: "Analyses performed, by source and outcome",
		},
		[]string{"source", "outcome"},
	)
	analysisDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "seoscope_analysis_duration_seconds",
			Help:    "Wall time of page analyses, fetch included",
			Buckets: prometheus.DefBuckets,
		},
	)

	initOnce sync.Once
)

// Init registers the custom collector and counters. Must be called once at
// startup.
func Init(s *store.Store) {
	initOnce.Do(func() {
		prometheus.MustRegister(&StoreCollector{store: s})
		prometheus.MustRegister(analysesTotal, analysisDuration)
	})
}

// RecordAnalysis records one analysis attempt.
func RecordAnalysis(source, outcome string, elapsed time.Duration) {
	analysesTotal.WithLabelValues(source, outcome).Inc()
	analysisDuration.Observe(elapsed.Seconds())
}
