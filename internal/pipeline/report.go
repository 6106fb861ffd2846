package pipeline

import (
	"fmt"
	"io"
	"sort"

	"github.com/couchcryptid/world-tile-stats/internal/domain"
)

// maxListedMatches caps the per-tile listing; the remainder is
// reported as a count.
const maxListedMatches = 50

// Report is the rendered outcome of one run. Criteria and Matches are
// set only when a filter was applied.
type Report struct {
	Stats    Stats
	Criteria *Criteria
	Matches  []domain.TileRecord
	Verbose  bool
}

// Render writes the human-readable report. Output is deterministic for
// a fixed input: tiles arrive in ascending ID order and attribute
// dumps are key-sorted.
func Render(w io.Writer, rep Report) {
	fmt.Fprintf(w, "Loaded %d tiles from snapshot\n", rep.Stats.Total)

	fmt.Fprintf(w, "\nWorld Statistics:\n")
	fmt.Fprintf(w, "  Year-round growing (60 days): %d tiles (%.1f%%)\n", rep.Stats.YearRound, percent(rep.Stats.YearRound, rep.Stats.Total))
	fmt.Fprintf(w, "  With river: %d tiles (%.1f%%)\n", rep.Stats.WithRiver, percent(rep.Stats.WithRiver, rep.Stats.Total))
	fmt.Fprintf(w, "  With road: %d tiles (%.1f%%)\n", rep.Stats.WithRoad, percent(rep.Stats.WithRoad, rep.Stats.Total))
	fmt.Fprintf(w, "  Mountainous: %d tiles (%.1f%%)\n", rep.Stats.Mountainous, percent(rep.Stats.Mountainous, rep.Stats.Total))
	if rep.Stats.Incomplete > 0 {
		fmt.Fprintf(w, "  Missing temperature data: %d tiles (%.1f%%)\n", rep.Stats.Incomplete, percent(rep.Stats.Incomplete, rep.Stats.Total))
	}

	if rep.Criteria == nil {
		return
	}

	fmt.Fprintf(w, "\nFilter: %s\n", rep.Criteria.String())
	fmt.Fprintf(w, "Tiles matching filter: %d\n", len(rep.Matches))
	if len(rep.Matches) == 0 {
		return
	}

	fmt.Fprintf(w, "\nMatching tiles:\n")
	for i, rec := range rep.Matches {
		if i == maxListedMatches {
			fmt.Fprintf(w, "  ... and %d more tiles\n", len(rep.Matches)-maxListedMatches)
			break
		}
		renderMatch(w, rec, rep.Verbose)
	}
}

func renderMatch(w io.Writer, rec domain.TileRecord, verbose bool) {
	biome := rec.Biome
	if biome == "" {
		biome = "Unknown"
	}
	fmt.Fprintf(w, "  Tile %d: %d days, temp %.1f°C (%.1f to %.1f), biome: %s\n",
		rec.ID, rec.GrowingDays, rec.Temperature, rec.MinTemperature, rec.MaxTemperature, biome)

	if !verbose {
		return
	}
	keys := make([]string, 0, len(rec.Attrs))
	for k := range rec.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "      %s: %s\n", k, rec.Attrs[k].String())
	}
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(part) / float64(total)
}
