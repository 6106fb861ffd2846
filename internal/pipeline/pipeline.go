// Package pipeline orchestrates one batch run over a parsed snapshot:
// annotate every complete tile with its growing-day count, gather
// world statistics, filter, and render the report.
package pipeline

import (
	"context"
	"log/slog"
	"sync"

	"github.com/couchcryptid/world-tile-stats/internal/domain"
	"github.com/couchcryptid/world-tile-stats/internal/observability"
)

// Stats are the aggregate world statistics for one snapshot.
type Stats struct {
	Total       int
	Annotated   int
	Incomplete  int
	YearRound   int
	WithRiver   int
	WithRoad    int
	Mountainous int
}

// Pipeline annotates and filters tile records against a fixed Tuning.
type Pipeline struct {
	tuning  domain.Tuning
	logger  *slog.Logger
	metrics *observability.Metrics
	workers int
}

// New creates a Pipeline. workers bounds the annotation worker pool;
// values below 1 are treated as 1.
func New(tuning domain.Tuning, logger *slog.Logger, metrics *observability.Metrics, workers int) *Pipeline {
	if workers < 1 {
		workers = 1
	}
	return &Pipeline{
		tuning:  tuning,
		logger:  logger,
		metrics: metrics,
		workers: workers,
	}
}

// Annotate computes growing days for every complete tile in place and
// returns the snapshot statistics. Each tile's computation depends
// only on that tile's own fields and the shared immutable tuning, so
// tiles are fanned out across the worker pool; no locking is needed
// because workers touch disjoint records. Tiles missing any of the
// three temperature fields stay in the set unannotated.
func (p *Pipeline) Annotate(ctx context.Context, tiles []domain.TileRecord) Stats {
	start := clock.Now()

	indexes := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				rec := &tiles[i]
				rec.GrowingDays = p.tuning.GrowingDaysFromExtremes(rec.MinTemperature, rec.MaxTemperature)
				rec.Annotated = true
			}
		}()
	}

dispatch:
	for i := range tiles {
		if !tiles[i].Complete {
			continue
		}
		select {
		case indexes <- i:
		case <-ctx.Done():
			break dispatch
		}
	}
	close(indexes)
	wg.Wait()

	stats := p.collectStats(tiles)
	elapsed := clock.Since(start)

	p.metrics.TilesAnnotated.Add(float64(stats.Annotated))
	p.metrics.TilesSkipped.Add(float64(stats.Incomplete))
	p.metrics.AnnotateDuration.Observe(elapsed.Seconds())
	p.logger.Info("annotated tiles",
		"total", stats.Total,
		"annotated", stats.Annotated,
		"incomplete", stats.Incomplete,
		"workers", p.workers,
		"elapsed", elapsed,
	)
	return stats
}

func (p *Pipeline) collectStats(tiles []domain.TileRecord) Stats {
	stats := Stats{Total: len(tiles)}
	for i := range tiles {
		rec := &tiles[i]
		if rec.Annotated {
			stats.Annotated++
			if rec.GrowingDays == int(p.tuning.DaysPerYear) {
				stats.YearRound++
			}
		} else {
			stats.Incomplete++
		}
		if rec.HasRiver {
			stats.WithRiver++
		}
		if rec.HasRoad {
			stats.WithRoad++
		}
		if rec.Hilliness == domain.HillinessMountainous {
			stats.Mountainous++
		}
	}
	return stats
}

// Filter returns the tiles matching the criteria, preserving the
// ascending tile ID order the parser established. Filtering an
// already-filtered set with the same criteria returns the same set.
func (p *Pipeline) Filter(tiles []domain.TileRecord, criteria Criteria) []domain.TileRecord {
	matches := make([]domain.TileRecord, 0)
	for i := range tiles {
		if criteria.Matches(&tiles[i]) {
			matches = append(matches, tiles[i])
		}
	}
	p.metrics.FilterMatches.Add(float64(len(matches)))
	p.logger.Info("applied filter", "criteria", criteria.String(), "in", len(tiles), "out", len(matches))
	return matches
}
