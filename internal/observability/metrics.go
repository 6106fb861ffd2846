package observability

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Metrics holds the Prometheus counters and histograms for a batch
// run. Each Metrics carries its own registry: the tool is offline, so
// instead of a /metrics listener the registry is dumped in textfile-
// collector format via WriteTextfile, and tests never collide on a
// shared default registry.
type Metrics struct {
	registry *prometheus.Registry

	TilesParsed      prometheus.Counter
	TilesAnnotated   prometheus.Counter
	TilesSkipped     prometheus.Counter
	FilterMatches    prometheus.Counter
	AnnotateDuration prometheus.Histogram
}

// NewMetrics creates and registers all pipeline metrics.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		TilesParsed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tile_stats",
			Name:      "tiles_parsed_total",
			Help:      "Total tile records parsed from the snapshot.",
		}),
		TilesAnnotated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tile_stats",
			Name:      "tiles_annotated_total",
			Help:      "Total tiles annotated with a growing-day count.",
		}),
		TilesSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tile_stats",
			Name:      "tiles_skipped_total",
			Help:      "Tiles skipped from annotation for missing temperature fields.",
		}),
		FilterMatches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tile_stats",
			Name:      "filter_matches_total",
			Help:      "Tiles matching the applied filter criteria.",
		}),
		AnnotateDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "tile_stats",
			Name:      "annotate_duration_seconds",
			Help:      "Duration of the growing-day annotation pass.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
	}

	m.registry.MustRegister(
		m.TilesParsed,
		m.TilesAnnotated,
		m.TilesSkipped,
		m.FilterMatches,
		m.AnnotateDuration,
	)

	return m
}

// WriteTextfile dumps the registry in the node-exporter
// textfile-collector format.
func (m *Metrics) WriteTextfile(path string) error {
	families, err := m.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create metrics file %s: %w", path, err)
	}

	enc := expfmt.NewEncoder(f, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			f.Close()
			return fmt.Errorf("encode metrics: %w", err)
		}
	}
	return f.Close()
}
