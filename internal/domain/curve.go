package domain

import (
	"fmt"

	"gonum.org/v1/gonum/interp"
)

// CurvePoint is one control point of a seasonal amplitude curve:
// X is the normalized distance from the equator, Y the amplitude in °C.
type CurvePoint struct {
	X float64
	Y float64
}

// SeasonalCurve maps normalized equator distance [0,1] to seasonal
// temperature amplitude. Interpolation is piecewise linear between
// control points with flat extrapolation beyond both ends, matching
// the simulator's SimpleCurve evaluation.
type SeasonalCurve struct {
	points []CurvePoint
	linear interp.PiecewiseLinear
}

// NewSeasonalCurve builds a curve from ordered control points.
// Points must start at X=0, be strictly increasing in X, and carry
// non-negative, non-decreasing amplitudes; the inverse lookup in
// DistanceForAmplitude relies on that monotonicity.
func NewSeasonalCurve(points []CurvePoint) (SeasonalCurve, error) {
	if len(points) < 2 {
		return SeasonalCurve{}, fmt.Errorf("seasonal curve needs at least 2 control points, got %d", len(points))
	}
	if points[0].X != 0 {
		return SeasonalCurve{}, fmt.Errorf("seasonal curve must start at the equator (X=0), got X=%g", points[0].X)
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, pt := range points {
		if i > 0 {
			if pt.X <= points[i-1].X {
				return SeasonalCurve{}, fmt.Errorf("seasonal curve control points must be strictly increasing in X (point %d)", i)
			}
			if pt.Y < points[i-1].Y {
				return SeasonalCurve{}, fmt.Errorf("seasonal curve amplitude must be non-decreasing (point %d)", i)
			}
		}
		if pt.Y < 0 {
			return SeasonalCurve{}, fmt.Errorf("seasonal curve amplitude must be non-negative (point %d)", i)
		}
		xs[i] = pt.X
		ys[i] = pt.Y
	}

	var linear interp.PiecewiseLinear
	if err := linear.Fit(xs, ys); err != nil {
		return SeasonalCurve{}, fmt.Errorf("fit seasonal curve: %w", err)
	}

	owned := make([]CurvePoint, len(points))
	copy(owned, points)
	return SeasonalCurve{points: owned, linear: linear}, nil
}

// MustCurve is like NewSeasonalCurve but panics on invalid points.
// Intended for package-level curve literals.
func MustCurve(points ...CurvePoint) SeasonalCurve {
	c, err := NewSeasonalCurve(points)
	if err != nil {
		panic(err)
	}
	return c
}

// Amplitude returns the seasonal amplitude at the given equator
// distance. Values outside the control-point range clamp to the
// first/last amplitude rather than extrapolating.
func (c SeasonalCurve) Amplitude(equatorDistance float64) float64 {
	return c.linear.Predict(equatorDistance)
}

// DistanceForAmplitude inverts the curve: given an observed seasonal
// amplitude it returns the equator distance the forward model would
// need. Amplitudes at or below the equator amplitude map to 0;
// amplitudes at or beyond the polar amplitude clamp to the last X.
func (c SeasonalCurve) DistanceForAmplitude(amplitude float64) float64 {
	if amplitude < 0 {
		amplitude = -amplitude
	}

	first := c.points[0]
	last := c.points[len(c.points)-1]
	if amplitude <= first.Y {
		return first.X
	}
	if amplitude >= last.Y {
		return last.X
	}

	for i := 0; i < len(c.points)-1; i++ {
		lo, hi := c.points[i], c.points[i+1]
		if amplitude > hi.Y {
			continue
		}
		// Flat segments cannot occur here: amplitude is strictly between
		// lo.Y and hi.Y, so hi.Y > lo.Y.
		t := (amplitude - lo.Y) / (hi.Y - lo.Y)
		return lo.X + t*(hi.X-lo.X)
	}
	return last.X
}

// Points returns a copy of the curve's control points.
func (c SeasonalCurve) Points() []CurvePoint {
	out := make([]CurvePoint, len(c.points))
	copy(out, c.points)
	return out
}
