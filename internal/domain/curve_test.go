package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCurve(t *testing.T) SeasonalCurve {
	t.Helper()
	c, err := NewSeasonalCurve([]CurvePoint{{0, 3}, {0.1, 4}, {1, 28}})
	require.NoError(t, err)
	return c
}

func TestSeasonalCurveAmplitude(t *testing.T) {
	c := testCurve(t)

	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"below range clamps to first", -1, 3},
		{"above range clamps to last", 2, 28},
		{"interpolates first segment", 0.05, 3.5},
		{"exact first breakpoint", 0, 3},
		{"exact middle breakpoint", 0.1, 4},
		{"exact last breakpoint", 1, 28},
		{"interpolates second segment", 0.55, 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, c.Amplitude(tt.x), 1e-9)
		})
	}
}

func TestNewSeasonalCurveValidation(t *testing.T) {
	t.Run("too few points", func(t *testing.T) {
		_, err := NewSeasonalCurve([]CurvePoint{{0, 3}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least 2")
	})

	t.Run("must start at equator", func(t *testing.T) {
		_, err := NewSeasonalCurve([]CurvePoint{{0.1, 3}, {1, 28}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "X=0")
	})

	t.Run("non-increasing X", func(t *testing.T) {
		_, err := NewSeasonalCurve([]CurvePoint{{0, 3}, {0.1, 4}, {0.1, 5}})
		require.Error(t, err)
	})

	t.Run("decreasing amplitude", func(t *testing.T) {
		_, err := NewSeasonalCurve([]CurvePoint{{0, 4}, {0.5, 3}, {1, 28}})
		require.Error(t, err)
	})

	t.Run("negative amplitude", func(t *testing.T) {
		_, err := NewSeasonalCurve([]CurvePoint{{0, -1}, {1, 28}})
		require.Error(t, err)
	})
}

func TestDistanceForAmplitude(t *testing.T) {
	c := testCurve(t)

	tests := []struct {
		name      string
		amplitude float64
		want      float64
	}{
		{"at or below equator amplitude", 3, 0},
		{"well below equator amplitude", 1, 0},
		{"first segment midpoint", 3.5, 0.05},
		{"middle breakpoint", 4, 0.1},
		{"second segment", 16, 0.55},
		{"polar amplitude", 28, 1},
		{"beyond polar clamps", 40, 1},
		{"negative takes absolute value", -3.5, 0.05},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, c.DistanceForAmplitude(tt.amplitude), 1e-9)
		})
	}
}

func TestDistanceForAmplitudeRoundTrip(t *testing.T) {
	c := testCurve(t)

	// Forward then inverse is the identity inside the curve range.
	for _, x := range []float64{0, 0.05, 0.1, 0.3, 0.7, 1} {
		got := c.DistanceForAmplitude(c.Amplitude(x))
		assert.InDelta(t, x, got, 1e-9, "x=%g", x)
	}
}
