// Package aggregate merges per-run world library summaries into a
// combined statistics document. It is independent of the per-tile
// engine; inputs are the category-count JSON files other runs emit.
package aggregate

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Entry is one named category with counts over all tiles and over the
// settleable subset. Percent fields are fractions of the respective
// totals, not ×100; downstream consumers format them.
type Entry struct {
	Name              string  `json:"name"`
	CountAll          int     `json:"count_all"`
	PercentAll        float64 `json:"percent_all"`
	CountSettleable   int     `json:"count_settleable"`
	PercentSettleable float64 `json:"percent_settleable"`
}

// Summary is the aggregated world-library document. Each category
// array is sorted descending by CountAll, ties keeping first-seen
// order.
type Summary struct {
	Generated       string  `json:"generated"`
	Samples         int     `json:"samples"`
	TotalTiles      int     `json:"total_tiles"`
	SettleableTiles int     `json:"settleable_tiles"`
	Biomes          []Entry `json:"biomes"`
	MapFeatures     []Entry `json:"map_features"`
	Rivers          []Entry `json:"rivers"`
	Roads           []Entry `json:"roads"`
}

// Load reads one summary JSON file.
func Load(path string) (Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Summary{}, fmt.Errorf("read summary %s: %w", path, err)
	}
	var s Summary
	if err := json.Unmarshal(data, &s); err != nil {
		return Summary{}, fmt.Errorf("parse summary %s: %w", path, err)
	}
	return s, nil
}

// counter accumulates category counts in first-seen order so the
// final tie ordering is reproducible across runs.
type counter struct {
	order   []string
	entries map[string]*Entry
}

func newCounter() *counter {
	return &counter{entries: make(map[string]*Entry)}
}

func (c *counter) add(entries []Entry) {
	for _, e := range entries {
		cur, ok := c.entries[e.Name]
		if !ok {
			cur = &Entry{Name: e.Name}
			c.entries[e.Name] = cur
			c.order = append(c.order, e.Name)
		}
		cur.CountAll += e.CountAll
		cur.CountSettleable += e.CountSettleable
	}
}

// finalize recomputes percentages against the merged totals and sorts
// descending by CountAll; the stable sort keeps first-seen order for
// ties.
func (c *counter) finalize(totalTiles, settleableTiles int) []Entry {
	out := make([]Entry, 0, len(c.order))
	for _, name := range c.order {
		e := *c.entries[name]
		if totalTiles > 0 {
			e.PercentAll = float64(e.CountAll) / float64(totalTiles)
		}
		if settleableTiles > 0 {
			e.PercentSettleable = float64(e.CountSettleable) / float64(settleableTiles)
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CountAll > out[j].CountAll })
	return out
}

// Merge combines summaries by exact category name, summing counts and
// totals. generated labels the output's provenance; by convention the
// caller passes the basename of the last input.
func Merge(summaries []Summary, generated string) Summary {
	merged := Summary{
		Generated: generated,
		Samples:   len(summaries),
	}
	biomes := newCounter()
	features := newCounter()
	rivers := newCounter()
	roads := newCounter()

	for _, s := range summaries {
		merged.TotalTiles += s.TotalTiles
		merged.SettleableTiles += s.SettleableTiles
		biomes.add(s.Biomes)
		features.add(s.MapFeatures)
		rivers.add(s.Rivers)
		roads.add(s.Roads)
	}

	merged.Biomes = biomes.finalize(merged.TotalTiles, merged.SettleableTiles)
	merged.MapFeatures = features.finalize(merged.TotalTiles, merged.SettleableTiles)
	merged.Rivers = rivers.finalize(merged.TotalTiles, merged.SettleableTiles)
	merged.Roads = roads.finalize(merged.TotalTiles, merged.SettleableTiles)
	return merged
}

// WriteFile writes the summary as indented JSON.
func (s Summary) WriteFile(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write summary %s: %w", path, err)
	}
	return nil
}
