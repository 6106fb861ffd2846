package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrowingDays(t *testing.T) {
	tun := DefaultTuning()

	tests := []struct {
		name string
		loc  Location
		want func(t *testing.T, days int)
	}{
		{
			name: "temperate equatorial tile grows year-round",
			loc:  Location{BaseTemperature: 25, EquatorDistance: 0, Latitude: 0},
			want: func(t *testing.T, days int) { assert.Equal(t, 60, days) },
		},
		{
			name: "polar tile loses twelfths to cold",
			loc:  Location{BaseTemperature: 0, EquatorDistance: 1, Latitude: 90},
			want: func(t *testing.T, days int) { assert.Less(t, days, 60) },
		},
		{
			name: "deep-frozen tile never grows",
			loc:  Location{BaseTemperature: -60, EquatorDistance: 1, Latitude: 90},
			want: func(t *testing.T, days int) { assert.Equal(t, 0, days) },
		},
		{
			name: "scorching tile never grows",
			loc:  Location{BaseTemperature: 80, EquatorDistance: 0.2, Latitude: 10},
			want: func(t *testing.T, days int) { assert.Equal(t, 0, days) },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.want(t, tun.GrowingDays(tt.loc))
		})
	}
}

func TestGrowingDaysMultiples(t *testing.T) {
	tun := DefaultTuning()

	for base := -40.0; base <= 40.0; base += 10 {
		for dist := 0.0; dist <= 1.0; dist += 0.25 {
			for _, lat := range []float64{60, -60} {
				loc := Location{BaseTemperature: base, EquatorDistance: dist, Latitude: lat}
				days := tun.GrowingDays(loc)
				assert.GreaterOrEqual(t, days, 0, "loc=%+v", loc)
				assert.LessOrEqual(t, days, 60, "loc=%+v", loc)
				assert.Zero(t, days%tun.DaysPerTwelfth(), "loc=%+v", loc)
			}
		}
	}
}

func TestYearRound(t *testing.T) {
	tun := DefaultTuning()

	tests := []struct {
		name     string
		min, max float64
		want     bool
	}{
		{"extremes inside band", 10, 35, true},
		{"minimum below band", 5, 35, false},
		{"maximum above band", 10, 45, false},
		{"extremes on band edges", 6, 42, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tun.YearRound(tt.min, tt.max))
		})
	}
}

func TestEstimateLocation(t *testing.T) {
	tun := DefaultTuning()

	t.Run("recovers mean and distance from extremes", func(t *testing.T) {
		// Spread 32 means amplitude 16, which the curve maps to 0.55.
		loc := tun.EstimateLocation(-6, 26, false)
		assert.InDelta(t, 10, loc.BaseTemperature, 1e-9)
		assert.InDelta(t, 0.55, loc.EquatorDistance, 1e-9)
		assert.InDelta(t, 49.5, loc.Latitude, 1e-9)
	})

	t.Run("southern flag flips latitude sign", func(t *testing.T) {
		loc := tun.EstimateLocation(-6, 26, true)
		assert.Negative(t, loc.Latitude)
	})

	t.Run("swapped extremes still yield positive amplitude", func(t *testing.T) {
		loc := tun.EstimateLocation(26, -6, false)
		assert.InDelta(t, 0.55, loc.EquatorDistance, 1e-9)
	})

	t.Run("tiny spread clamps to the equator", func(t *testing.T) {
		loc := tun.EstimateLocation(20, 22, false)
		assert.Zero(t, loc.EquatorDistance)
		assert.Zero(t, loc.Latitude)
	})
}

func TestGrowingDaysFromExtremes(t *testing.T) {
	tun := DefaultTuning()

	t.Run("mild extremes give a full season", func(t *testing.T) {
		assert.Equal(t, 60, tun.GrowingDaysFromExtremes(10, 35))
	})

	t.Run("cold extremes shorten the season", func(t *testing.T) {
		days := tun.GrowingDaysFromExtremes(-20, 15)
		assert.Less(t, days, 60)
		assert.Positive(t, days)
	})

	t.Run("round-trips the forward model", func(t *testing.T) {
		loc := Location{BaseTemperature: 12, EquatorDistance: 0.55, Latitude: 49.5}
		amplitude := tun.SeasonalAmplitude(loc)
		min := loc.BaseTemperature - amplitude
		max := loc.BaseTemperature + amplitude
		assert.Equal(t, tun.GrowingDays(loc), tun.GrowingDaysFromExtremes(min, max))
	})
}

// TestGrowingDaysShortcutAgreement checks the min/max shortcut against
// the exact computation over a grid of generated locations. The
// shortcut claiming year-round must imply the full 60 days; the
// reverse direction may diverge and is only reported.
func TestGrowingDaysShortcutAgreement(t *testing.T) {
	tun := DefaultTuning()

	divergences := 0
	for base := -10.0; base <= 40.0; base += 2.5 {
		for dist := 0.0; dist <= 1.0; dist += 0.1 {
			loc := Location{BaseTemperature: base, EquatorDistance: dist, Latitude: dist * 90}
			amplitude := math.Abs(tun.SeasonalAmplitude(loc))
			minTemp := base - amplitude
			maxTemp := base + amplitude

			days := tun.GrowingDays(loc)
			if tun.YearRound(minTemp, maxTemp) {
				assert.Equal(t, 60, days, "base=%g dist=%g", base, dist)
			} else if days == 60 {
				divergences++
				t.Logf("full season despite out-of-band extreme: base=%g dist=%g min=%g max=%g", base, dist, minTemp, maxTemp)
			}
		}
	}
	t.Logf("%d locations grow year-round without passing the shortcut", divergences)
}
