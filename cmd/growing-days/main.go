// Command growing-days analyzes a dumped world snapshot and reports
// per-tile growing-season lengths computed offline from the seasonal
// temperature model.
//
// Usage:
//
//	growing-days --about                 show algorithm documentation
//	growing-days --test                  run built-in validation scenarios
//	growing-days <snapshot>              analyze snapshot (summary only)
//	growing-days <snapshot> --filter     list tiles matching the default filter
//	growing-days <snapshot> --filter --criteria custom.yaml
//
// The default filter finds mountainous tiles with a river, a road, and
// year-round growing.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/couchcryptid/world-tile-stats/internal/config"
	"github.com/couchcryptid/world-tile-stats/internal/domain"
	"github.com/couchcryptid/world-tile-stats/internal/observability"
	"github.com/couchcryptid/world-tile-stats/internal/pipeline"
	"github.com/couchcryptid/world-tile-stats/internal/snapshot"
)

func main() {
	about := flag.Bool("about", false, "show detailed algorithm documentation")
	test := flag.Bool("test", false, "run built-in validation scenarios")
	applyFilter := flag.Bool("filter", false, "apply the default filter (river + road + mountainous + year-round)")
	criteriaPath := flag.String("criteria", "", "path to a YAML file overriding the default filter criteria")
	verbose := flag.Bool("verbose", false, "verbose output for matching tiles")
	flag.BoolVar(verbose, "v", *verbose, "verbose output for matching tiles (shorthand)")
	flag.Parse()

	if *about {
		fmt.Print(aboutText)
		return
	}
	if *test {
		os.Exit(runValidation(os.Stdout))
	}

	path := flag.Arg(0)
	if path == "" {
		flag.Usage()
		os.Exit(1)
	}

	os.Exit(run(path, *applyFilter, *criteriaPath, *verbose))
}

func run(path string, applyFilter bool, criteriaPath string, verbose bool) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load config: %v\n", err)
		return 1
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()
	tuning := domain.DefaultTuning()

	tiles, err := snapshot.NewParser(logger).ParseFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		return 1
	}
	metrics.TilesParsed.Add(float64(len(tiles)))

	p := pipeline.New(tuning, logger, metrics, cfg.Workers)
	stats := p.Annotate(context.Background(), tiles)

	rep := pipeline.Report{Stats: stats, Verbose: verbose}
	if applyFilter {
		criteria := pipeline.DefaultCriteria()
		if criteriaPath != "" {
			criteria, err = pipeline.LoadCriteria(criteriaPath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
				return 1
			}
		}
		rep.Criteria = &criteria
		rep.Matches = p.Filter(tiles, criteria)
	}

	pipeline.Render(os.Stdout, rep)

	if cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
			logger.Error("metrics export failed", "error", err)
		}
	}
	return 0
}
