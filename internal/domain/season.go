package domain

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// defaultCurve is the simulator's seasonal variation curve:
// ±3°C swing at the equator, ±4°C at 10% distance, ±28°C at the poles.
var defaultCurve = MustCurve(
	CurvePoint{X: 0.0, Y: 3.0},
	CurvePoint{X: 0.1, Y: 4.0},
	CurvePoint{X: 1.0, Y: 28.0},
)

// Tuning is the immutable set of simulation constants the temperature
// engine runs on. Construct it once (normally via DefaultTuning) and
// pass it explicitly; nothing in this package reads mutable globals.
type Tuning struct {
	TicksPerDay     int64
	DaysPerYear     int64
	TwelfthsPerYear int

	// WinterPhase is the fraction of the year at which the seasonal
	// cosine peaks cold in the northern hemisphere.
	WinterPhase float64

	// Growth band, inclusive on both ends.
	GrowthMinTemp float64
	GrowthMaxTemp float64

	// SamplesPerTwelfth and SampleBaseOffset control the fixed-count
	// sampling integral over each twelfth. Both are load-bearing for
	// matching the simulator's numeric output exactly: 120 samples,
	// anchored half a day (30000 ticks) past the period boundary.
	SamplesPerTwelfth int64
	SampleBaseOffset  int64

	Curve SeasonalCurve
}

// DefaultTuning returns the constants recovered from the simulator:
// 60000 ticks per day, 60-day year, winter peak at 10/12 of the year,
// growth band [6°C, 42°C].
func DefaultTuning() Tuning {
	return Tuning{
		TicksPerDay:       60000,
		DaysPerYear:       60,
		TwelfthsPerYear:   12,
		WinterPhase:       10.0 / 12.0,
		GrowthMinTemp:     6.0,
		GrowthMaxTemp:     42.0,
		SamplesPerTwelfth: 120,
		SampleBaseOffset:  30000,
		Curve:             defaultCurve,
	}
}

// TicksPerYear returns the tick length of one in-world year.
func (t Tuning) TicksPerYear() int64 {
	return t.TicksPerDay * t.DaysPerYear
}

// TicksPerTwelfth returns the tick length of one twelfth of a year.
func (t Tuning) TicksPerTwelfth() int64 {
	return t.TicksPerYear() / int64(t.TwelfthsPerYear)
}

// DaysPerTwelfth returns the day length of one twelfth of a year.
func (t Tuning) DaysPerTwelfth() int {
	return int(t.DaysPerYear) / t.TwelfthsPerYear
}

// Location holds the parameters the forward temperature model needs
// for one world tile.
type Location struct {
	// BaseTemperature is the tile's annual mean in °C.
	BaseTemperature float64
	// EquatorDistance is the normalized [0,1] distance from the equator.
	EquatorDistance float64
	// Latitude in degrees. Only its sign matters to the model: a
	// negative latitude flips the seasonal cycle by half a year.
	Latitude float64
}

// SeasonalAmplitude returns the signed amplitude for a location:
// the curve amplitude at its equator distance, negated in the
// southern hemisphere to shift the coldest instant by six twelfths.
func (t Tuning) SeasonalAmplitude(loc Location) float64 {
	amplitude := t.Curve.Amplitude(loc.EquatorDistance)
	if loc.Latitude < 0 {
		return -amplitude
	}
	return amplitude
}

// SeasonalOffset returns the signed temperature offset from the
// location's mean at an absolute tick. Ticks beyond one year wrap.
// The cosine peaks at WinterPhase, where negating the amplitude
// produces the most-negative offset; half a year later it yields the
// warmest offset.
func (t Tuning) SeasonalOffset(tick int64, loc Location) float64 {
	yearPct := math.Mod(float64(tick)/float64(t.TicksPerDay), float64(t.DaysPerYear)) / float64(t.DaysPerYear)
	angle := 2 * math.Pi * (yearPct - t.WinterPhase)
	return math.Cos(angle) * -t.SeasonalAmplitude(loc)
}

// TemperatureAt returns the instantaneous temperature at an absolute tick.
func (t Tuning) TemperatureAt(tick int64, loc Location) float64 {
	return loc.BaseTemperature + t.SeasonalOffset(tick, loc)
}

// TwelfthAverage returns the mean temperature over twelfth k (0..11),
// sampling SamplesPerTwelfth evenly spaced ticks offset by
// SampleBaseOffset from the period start.
func (t Tuning) TwelfthAverage(loc Location, twelfth int) float64 {
	start := int64(twelfth) * t.TicksPerTwelfth()
	samples := make([]float64, t.SamplesPerTwelfth)
	for i := int64(0); i < t.SamplesPerTwelfth; i++ {
		tick := start + t.SampleBaseOffset + i*t.TicksPerTwelfth()/t.SamplesPerTwelfth
		samples[i] = t.TemperatureAt(tick, loc)
	}
	return stat.Mean(samples, nil)
}
