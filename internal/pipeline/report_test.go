package pipeline

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/world-tile-stats/internal/domain"
)

func TestRenderStats(t *testing.T) {
	var buf strings.Builder
	Render(&buf, Report{
		Stats: Stats{
			Total:       200,
			Annotated:   195,
			Incomplete:  5,
			YearRound:   50,
			WithRiver:   30,
			WithRoad:    12,
			Mountainous: 44,
		},
	})
	out := buf.String()

	assert.Contains(t, out, "Loaded 200 tiles from snapshot")
	assert.Contains(t, out, "Year-round growing (60 days): 50 tiles (25.0%)")
	assert.Contains(t, out, "With river: 30 tiles (15.0%)")
	assert.Contains(t, out, "With road: 12 tiles (6.0%)")
	assert.Contains(t, out, "Mountainous: 44 tiles (22.0%)")
	assert.Contains(t, out, "Missing temperature data: 5 tiles (2.5%)")
	assert.NotContains(t, out, "Filter:")
}

func TestRenderOmitsMissingLineWhenComplete(t *testing.T) {
	var buf strings.Builder
	Render(&buf, Report{Stats: Stats{Total: 10, Annotated: 10}})
	assert.NotContains(t, buf.String(), "Missing temperature data")
}

func TestRenderEmptySnapshot(t *testing.T) {
	var buf strings.Builder
	Render(&buf, Report{})
	assert.Contains(t, buf.String(), "Loaded 0 tiles from snapshot")
	assert.Contains(t, buf.String(), "Year-round growing (60 days): 0 tiles (0.0%)")
}

func TestRenderFilterSection(t *testing.T) {
	criteria := DefaultCriteria()

	t.Run("no matches", func(t *testing.T) {
		var buf strings.Builder
		Render(&buf, Report{Stats: Stats{Total: 3}, Criteria: &criteria})
		out := buf.String()
		assert.Contains(t, out, "Filter: hilliness=Mountainous AND river=yes AND road=yes AND growingDays>=60")
		assert.Contains(t, out, "Tiles matching filter: 0")
		assert.NotContains(t, out, "Matching tiles:")
	})

	t.Run("lists matches with biome fallback", func(t *testing.T) {
		var buf strings.Builder
		Render(&buf, Report{
			Stats:    Stats{Total: 2},
			Criteria: &criteria,
			Matches: []domain.TileRecord{
				{ID: 4, GrowingDays: 60, Temperature: 20.5, MinTemperature: -3.5, MaxTemperature: 38, Biome: "BorealForest", Annotated: true},
				{ID: 9, GrowingDays: 60, Temperature: 18, Annotated: true},
			},
		})
		out := buf.String()
		assert.Contains(t, out, "  Tile 4: 60 days, temp 20.5°C (-3.5 to 38.0), biome: BorealForest")
		assert.Contains(t, out, "biome: Unknown")
	})

	t.Run("truncates after fifty", func(t *testing.T) {
		matches := make([]domain.TileRecord, 55)
		for i := range matches {
			matches[i] = domain.TileRecord{ID: i + 1, GrowingDays: 60, Annotated: true}
		}

		var buf strings.Builder
		Render(&buf, Report{Stats: Stats{Total: 55}, Criteria: &criteria, Matches: matches})
		out := buf.String()

		assert.Contains(t, out, "Tile 50:")
		assert.NotContains(t, out, "Tile 51:")
		assert.Contains(t, out, "... and 5 more tiles")
	})
}

func TestRenderVerbose(t *testing.T) {
	criteria := Criteria{}
	rec := domain.TileRecord{
		ID:          7,
		GrowingDays: 60,
		Annotated:   true,
		Attrs: map[string]domain.Value{
			"temperature": domain.IntValue(18),
			"Rivers":      domain.StringValue("[...]"),
			"elevation":   domain.FloatValue(850.5),
		},
	}

	var buf strings.Builder
	Render(&buf, Report{Stats: Stats{Total: 1}, Criteria: &criteria, Matches: []domain.TileRecord{rec}, Verbose: true})
	out := buf.String()

	require.Contains(t, out, "      Rivers: [...]")
	assert.Contains(t, out, "      elevation: 850.5")
	assert.Contains(t, out, "      temperature: 18")

	// Attribute dump is key-sorted.
	riverIdx := strings.Index(out, "Rivers:")
	elevIdx := strings.Index(out, "elevation:")
	tempIdx := strings.Index(out, "temperature:")
	assert.Less(t, riverIdx, elevIdx)
	assert.Less(t, elevIdx, tempIdx)
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0.0, percent(5, 0))
	assert.Equal(t, 50.0, percent(1, 2))
	assert.Equal(t, "33.3", fmt.Sprintf("%.1f", percent(1, 3)))
}
